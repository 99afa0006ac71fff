// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"testing"

	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/widget"
	"github.com/stretchr/testify/assert"
)

// recordingItem is a minimal widget.Item that records delivered calls,
// for asserting what the mixer routed where.
type recordingItem struct {
	widget.Base
	name    string
	motions int
	downs   int
	ups     int
}

func newRecordingItem(name string, x, y, w, h float64) *recordingItem {
	it := &recordingItem{name: name}
	it.Base = widget.NewBase(widget.KindGeneric, it)
	it.SetSize(w, h)
	it.SetCoords(x, y)
	return it
}

func (it *recordingItem) Draw(any, any, geom.Rect)         {}
func (it *recordingItem) Motion(geom.Point, int64)         { it.motions++ }
func (it *recordingItem) ButtonDown(geom.Point, int, int64) { it.downs++ }
func (it *recordingItem) ButtonUp(geom.Point, int, int64)   { it.ups++ }

func TestMixerPushRemoveNoDuplicates(t *testing.T) {
	m := NewMixer()
	a := newRecordingItem("a", 0, 0, 10, 10)
	b := newRecordingItem("b", 0, 0, 10, 10)
	m.PushFront(a)
	m.PushBack(b)
	assert.Len(t, m.items, 2)
	m.Remove(a)
	assert.Len(t, m.items, 1)
	assert.Equal(t, b, m.items[0])
}

func TestMixerMotionUpdatesOwnerOnEnterLeave(t *testing.T) {
	m := NewMixer()
	a := newRecordingItem("a", 0, 0, 10, 10)
	b := newRecordingItem("b", 20, 0, 10, 10)
	m.PushFront(a)
	m.PushFront(b)

	m.Motion(geom.Point{X: 5, Y: 5}, 0)
	assert.Equal(t, widget.Item(a), m.Owner())
	assert.True(t, a.IsMouseOwner())

	m.Motion(geom.Point{X: 25, Y: 5}, 1)
	assert.Equal(t, widget.Item(b), m.Owner())
	assert.False(t, a.IsMouseOwner())
	assert.True(t, b.IsMouseOwner())
}

func TestMixerImplicitGrabFreezesOwnerDuringDrag(t *testing.T) {
	m := NewMixer()
	a := newRecordingItem("a", 0, 0, 10, 10)
	m.PushFront(a)

	m.ButtonDown(geom.Point{X: 5, Y: 5}, 1, 0)
	assert.True(t, m.Grabbed())
	assert.Equal(t, 1, a.downs)

	// motion far outside a's rect must still be delivered to a while
	// the grab is held.
	m.Motion(geom.Point{X: 500, Y: 500}, 10)
	assert.Equal(t, 1, a.motions)
	assert.Equal(t, widget.Item(a), m.Owner())

	m.ButtonUp(geom.Point{X: 500, Y: 500}, 1, 20)
	assert.Equal(t, 1, a.ups)
	assert.False(t, m.Grabbed())

	// after release, motion re-hit-tests and a (no longer under the
	// pointer) loses ownership.
	m.Motion(geom.Point{X: 500, Y: 500}, 30)
	assert.Nil(t, m.Owner())
}

func TestMixerGapClickPassesThroughInsensitiveChild(t *testing.T) {
	l := widget.NewLayout(nil)
	l.SetSize(100, 20)
	child := newRecordingItem("child", 0, 0, 10, 10)
	child.SetSensitive(false)
	l.AddChild(child)

	m := NewMixer()
	m.PushFront(l)

	hit := hitTest(m.items, geom.Point{X: 5, Y: 5})
	assert.Nil(t, hit)
}

func TestMixerRemoveDuringGrabDropsGrabSilently(t *testing.T) {
	m := NewMixer()
	a := newRecordingItem("a", 0, 0, 10, 10)
	m.PushFront(a)
	m.ButtonDown(geom.Point{X: 5, Y: 5}, 1, 0)
	assert.True(t, m.Grabbed())

	m.Remove(a)
	assert.False(t, m.Grabbed())
	assert.Nil(t, m.Owner())

	// a subsequent button-up must not panic even with no owner.
	m.ButtonUp(geom.Point{X: 5, Y: 5}, 1, 10)
}

func TestMixerCancelGrabClearsOwnerWithoutSyntheticButtonUp(t *testing.T) {
	m := NewMixer()
	a := newRecordingItem("a", 0, 0, 10, 10)
	m.PushFront(a)
	m.ButtonDown(geom.Point{X: 5, Y: 5}, 1, 0)

	m.CancelGrab()
	assert.False(t, m.Grabbed())
	assert.Nil(t, m.Owner())
	assert.Equal(t, 0, a.ups)
}
