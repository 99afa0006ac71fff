// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input implements the hit-test mixer that routes a window's
// pointer events to its decoration widget tree (spec.md §4.2). It plays
// the role core/events.go's Events struct plays for the teacher's scene
// graph, trimmed to the single-button implicit-grab model a decoration
// frame needs instead of the teacher's full drag/long-hover/repeat-click
// event manager.
package input

import (
	"golang.org/x/exp/slices"

	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/widget"
)

// Mixer owns an ordered list of top-level items and the current mouse
// owner (spec.md §4.2). Front items are painted last and hit-tested
// first, matching the teacher's hover-stack convention in
// core/events.go.
type Mixer struct {
	items []widget.Item
	owner widget.Item

	// grabButton is the button held during an implicit grab; zero means
	// no grab is active.
	grabButton int
}

// NewMixer returns an empty Mixer.
func NewMixer() *Mixer { return &Mixer{} }

// PushFront inserts item at the front of the hit-test order (hit-tested
// first, painted last).
func (m *Mixer) PushFront(item widget.Item) {
	m.items = append([]widget.Item{item}, m.items...)
}

// PushBack appends item to the back of the hit-test order (hit-tested
// last, painted first).
func (m *Mixer) PushBack(item widget.Item) {
	m.items = append(m.items, item)
}

// Remove drops item from the list. If item currently holds the implicit
// grab, the grab is dropped silently (spec.md §4.2 "Failure semantics");
// if item is the current owner, ownership is cleared without a synthetic
// mouse_leave, matching the "destroyed during its own handler" rule.
func (m *Mixer) Remove(item widget.Item) {
	m.items = slices.DeleteFunc(m.items, func(it widget.Item) bool { return it == item })
	if m.owner == item {
		m.owner = nil
		m.grabButton = 0
	}
}

// hitTest walks the list front-to-back (items[0] first) and returns the
// first sensitive, visible item whose rect contains p. A Layout whose
// rect contains p but whose sensitive children all miss returns no hit
// at all — clicks on gaps pass through rather than landing on the
// container (spec.md §4.2).
func hitTest(items []widget.Item, p geom.Point) widget.Item {
	for _, it := range items {
		b := it.Base()
		if !b.IsVisible() {
			continue
		}
		if !b.Geometry().Contains(p) {
			continue
		}
		if l, ok := it.(*widget.Layout); ok {
			local := geom.Point{X: p.X - l.Geometry().X, Y: p.Y - l.Geometry().Y}
			if hit := hitTest(l.Children, local); hit != nil {
				return hit
			}
			continue
		}
		if b.IsSensitive() {
			return it
		}
	}
	return nil
}

// setOwner transitions mouse ownership, firing mouse_leave/mouse_enter
// (via SetMouseOwner, which a widget.SlidingLayout or similar hooks into
// with OnMouseOwnerChanged) on old and new owners.
func (m *Mixer) setOwner(next widget.Item) {
	if m.owner == next {
		return
	}
	if m.owner != nil {
		m.owner.Base().SetMouseOwner(false)
	}
	m.owner = next
	if m.owner != nil {
		m.owner.Base().SetMouseOwner(true)
	}
}

// Motion updates the mouse owner by hit-test, unless a grab is active —
// in which case motion is delivered to the frozen owner regardless of
// where p now falls (spec.md §4.2 implicit grab).
func (m *Mixer) Motion(p geom.Point, t int64) {
	if m.grabButton != 0 {
		if m.owner != nil {
			m.owner.Motion(p, t)
		}
		return
	}
	hit := hitTest(m.items, p)
	m.setOwner(hit)
	if m.owner != nil {
		m.owner.Motion(p, t)
	}
}

// ButtonDown hit-tests (unless already grabbed), delivers to the owner,
// and establishes an implicit grab for button that lasts until the
// matching ButtonUp (spec.md §4.2).
func (m *Mixer) ButtonDown(p geom.Point, button int, t int64) {
	if m.grabButton == 0 {
		hit := hitTest(m.items, p)
		m.setOwner(hit)
		m.grabButton = button
	}
	// Copy the strong reference before calling out: if the handler
	// destroys itself or removes it from the mixer, Remove above has
	// already cleared m.owner, and we must not touch it again here.
	owner := m.owner
	if owner == nil {
		return
	}
	owner.ButtonDown(p, button, t)
}

// ButtonUp delivers to the (possibly former) owner and, if button
// matches the grabbing button, releases the grab — after which the next
// Motion re-hit-tests (spec.md §4.2).
func (m *Mixer) ButtonUp(p geom.Point, button int, t int64) {
	owner := m.owner
	if owner != nil {
		owner.ButtonUp(p, button, t)
	}
	if m.grabButton == button {
		m.grabButton = 0
	}
}

// CancelGrab drops any pending grab without delivering a synthetic
// button-up, for a compositor focus-grab-out notification (spec.md §4.2).
// The current owner loses mouse_owner.
func (m *Mixer) CancelGrab() {
	m.grabButton = 0
	m.setOwner(nil)
}

// Owner returns the current mouse owner, or nil.
func (m *Mixer) Owner() widget.Item { return m.owner }

// Grabbed reports whether an implicit grab is currently held.
func (m *Mixer) Grabbed() bool { return m.grabButton != 0 }
