// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menu

import (
	"github.com/3v1n0/unity-sub005/compositor"
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/style"
	"github.com/3v1n0/unity-sub005/widget"
)

// dropdownIconWidth is the down-arrow glyph's fixed natural width
// (spec.md §4.6 "displays a down-arrow icon" — unlike a MenuEntry its
// size doesn't depend on any label).
const dropdownIconWidth = 16

// MenuDropdown retains the entries MenuLayout has pushed off the title
// strip for lack of room (spec.md §4.6).
type MenuDropdown struct {
	widget.Base

	Oracle *style.Oracle
	Source compositor.IndicatorSource
	Window compositor.XID

	hidden        []*MenuEntry
	pendingActive *MenuEntry
}

// NewMenuDropdown returns an empty, invisible dropdown.
func NewMenuDropdown(oracle *style.Oracle, source compositor.IndicatorSource, win compositor.XID) *MenuDropdown {
	d := &MenuDropdown{Oracle: oracle, Source: source, Window: win}
	d.Base = widget.NewBase(widget.KindMenuDropdown, d)
	d.SetNatural(dropdownIconWidth, dropdownIconWidth)
	d.SetVisible(false)
	return d
}

// Push adds entry to the tail of the hidden stack (spec.md §4.6
// "transferring ownership of the entry's parent reference" — Layout
// calls SetVisible(false) on the underlying widget when it does this).
func (d *MenuDropdown) Push(e *MenuEntry) {
	d.hidden = append(d.hidden, e)
	d.SetVisible(true)
}

// PeekTailWidth returns the natural width of the entry that would be
// popped next, or 0 if the dropdown is empty — MenuLayout uses this to
// decide whether there's room to pop an entry back (spec.md §8's
// "dropdown holds exactly one entry and available width grows by
// entry.natural_width + inner_padding" boundary case).
func (d *MenuDropdown) PeekTailWidth() float64 {
	if len(d.hidden) == 0 {
		return 0
	}
	return d.hidden[len(d.hidden)-1].NaturalWidth()
}

// Pop removes and returns the most recently pushed entry, hiding the
// dropdown icon once the stack is empty.
func (d *MenuDropdown) Pop() *MenuEntry {
	if len(d.hidden) == 0 {
		return nil
	}
	e := d.hidden[len(d.hidden)-1]
	d.hidden = d.hidden[:len(d.hidden)-1]
	if len(d.hidden) == 0 {
		d.SetVisible(false)
	}
	return e
}

// Len reports how many entries are currently hidden.
func (d *MenuDropdown) Len() int { return len(d.hidden) }

// Entries returns the hidden entries in original (push) order.
func (d *MenuDropdown) Entries() []*MenuEntry {
	out := make([]*MenuEntry, len(d.hidden))
	copy(out, d.hidden)
	return out
}

// ActivateChild marks entry as the pending active selection and opens
// the native dropdown positioned at it (spec.md §4.6).
func (d *MenuDropdown) ActivateChild(e *MenuEntry) {
	d.pendingActive = e
	d.openAt(e.Entry().ID)
}

func (d *MenuDropdown) openAt(entryID string) {
	if d.Source == nil {
		return
	}
	r := d.Geometry()
	d.Source.OpenMenu(entryID, geom.Point{X: r.X, Y: r.Bottom()})
}

// ButtonDown on button 1 opens the native dropdown listing every hidden
// entry, anchored at the dropdown icon's own position.
func (d *MenuDropdown) ButtonDown(p geom.Point, button int, t int64) {
	if button != 1 || len(d.hidden) == 0 {
		return
	}
	d.openAt(d.hidden[0].Entry().ID)
}

func (d *MenuDropdown) Draw(any, any, geom.Rect)      {}
func (d *MenuDropdown) Motion(geom.Point, int64)       {}
func (d *MenuDropdown) ButtonUp(geom.Point, int, int64) {}
