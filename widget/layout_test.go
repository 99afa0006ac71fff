// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func naturalItem(w, h float64) *stubItem {
	it := newStubItem()
	it.SetNatural(w, h)
	it.SetMinWidth(0)
	it.SetMaxWidth(1e9)
	it.SetMinHeight(0)
	it.SetMaxHeight(1e9)
	it.setRectSize(w, h)
	return it
}

func TestLayoutAllChildrenFitNaturalWidth(t *testing.T) {
	l := NewLayout(nil)
	l.Padding = Padding{Inner: 5}
	l.SetSize(130, 30) // 3*40 + 2*5 = 130 exactly
	a, b, c := naturalItem(40, 20), naturalItem(40, 20), naturalItem(40, 20)
	l.AddChild(a)
	l.AddChild(b)
	l.AddChild(c)

	assert.Equal(t, 40.0, a.Geometry().W)
	assert.Equal(t, 40.0, b.Geometry().W)
	assert.Equal(t, 40.0, c.Geometry().W)
	assert.Equal(t, l.Geometry().X, a.Geometry().X)
	assert.Equal(t, a.Geometry().X+40+5, b.Geometry().X)
}

func TestLayoutOneWideChildTakesWidthOthersShrinkToNatural(t *testing.T) {
	l := NewLayout(nil)
	l.SetSize(200, 30)
	small := naturalItem(20, 20)
	wide := naturalItem(1000, 20)
	l.AddChild(small)
	l.AddChild(wide)

	assert.Equal(t, 20.0, small.Geometry().W)
	assert.True(t, wide.Geometry().W < 1000)
	assert.True(t, wide.Geometry().W+small.Geometry().W <= 200)
}

func TestLayoutInvisibleChildExcludedAndRelayoutOnToggle(t *testing.T) {
	l := NewLayout(nil)
	l.Padding = Padding{Inner: 5}
	l.SetSize(200, 30)
	a := naturalItem(40, 20)
	b := naturalItem(40, 20)
	l.AddChild(a)
	l.AddChild(b)
	b.SetVisible(false)
	l.Relayout()
	assert.Equal(t, l.Geometry().X, a.Geometry().X)

	b.SetVisible(true)
	assert.Equal(t, a.Geometry().X+40+5, b.Geometry().X)
}

func TestLayoutRelayoutIdempotent(t *testing.T) {
	l := NewLayout(nil)
	l.SetSize(200, 30)
	a := naturalItem(40, 20)
	l.AddChild(a)
	before := a.Geometry()
	l.Relayout()
	assert.Equal(t, before, a.Geometry())
}

func TestLayoutClampInvariant(t *testing.T) {
	l := NewLayout(nil)
	l.Padding = Padding{Inner: 2}
	l.SetSize(100, 30)
	items := []*stubItem{naturalItem(50, 20), naturalItem(50, 20), naturalItem(50, 20)}
	for _, it := range items {
		l.AddChild(it)
	}
	for _, it := range items {
		g := it.Geometry()
		assert.True(t, it.MinSize().W <= g.W, "width below min")
		assert.True(t, g.W <= it.MaxSize().W, "width above max")
	}
}
