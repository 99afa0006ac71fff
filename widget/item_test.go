// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"testing"

	"github.com/3v1n0/unity-sub005/geom"
	"github.com/stretchr/testify/assert"
)

type stubItem struct {
	Base
}

func newStubItem() *stubItem {
	s := &stubItem{}
	s.Base = NewBase(KindGeneric, s)
	return s
}

func (s *stubItem) Draw(any, any, geom.Rect)                {}
func (s *stubItem) Motion(geom.Point, int64)                 {}
func (s *stubItem) ButtonDown(geom.Point, int, int64)        {}
func (s *stubItem) ButtonUp(geom.Point, int, int64)          {}

func TestSetSizeSnapsClamps(t *testing.T) {
	it := newStubItem()
	it.SetSize(100, 40)
	assert.Equal(t, 100.0, it.Geometry().W)
	assert.Equal(t, 40.0, it.Geometry().H)
	assert.Equal(t, 100.0, it.MinSize().W)
	assert.Equal(t, 100.0, it.MaxSize().W)
}

func TestSetMinAboveMaxRaisesMax(t *testing.T) {
	it := newStubItem()
	it.SetMaxWidth(50)
	it.SetMinWidth(80)
	assert.Equal(t, 80.0, it.MaxSize().W)
	assert.Equal(t, 80.0, it.MinSize().W)
}

func TestSetMaxBelowMinLowersMin(t *testing.T) {
	it := newStubItem()
	it.SetMinWidth(80)
	it.SetMaxWidth(50)
	assert.Equal(t, 50.0, it.MinSize().W)
	assert.Equal(t, 50.0, it.MaxSize().W)
}

func TestVisibilityChangeFiresHookNotGeoChanged(t *testing.T) {
	it := newStubItem()
	var geoCalls, visCalls int
	it.OnGeoChanged(func() { geoCalls++ })
	it.OnVisibleChanged(func(bool) { visCalls++ })

	it.SetVisible(false)
	assert.Equal(t, 1, visCalls)
	assert.Equal(t, 0, geoCalls)

	it.SetCoords(5, 5)
	assert.Equal(t, 1, geoCalls)
}

func TestMouseOwnerTransitionFiresOnlyOnChange(t *testing.T) {
	it := newStubItem()
	var calls int
	it.OnMouseOwnerChanged(func(bool) { calls++ })
	it.SetMouseOwner(true)
	it.SetMouseOwner(true)
	it.SetMouseOwner(false)
	assert.Equal(t, 2, calls)
}
