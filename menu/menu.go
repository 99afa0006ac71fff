// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package menu implements the application-menu indicator widgets
// (spec.md §4.6): one MenuEntry per indicator entry, a MenuDropdown
// overflow bucket, and the MenuLayout that shuffles entries between them
// as the title strip's available width changes. Grounded on
// core/menu.go's popup-menu scene (entries as buttons routed through a
// single OnChildAdded-style open/close policy), collapsed from the
// teacher's generic tree.Node-driven Scene popup down to the fixed,
// flat entry list an indicator feed actually hands the decoration core.
package menu

import (
	"github.com/3v1n0/unity-sub005/compositor"
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/style"
	"github.com/3v1n0/unity-sub005/widget"
)

// MenuEntry wraps one IndicatorEntry (spec.md §4.6).
type MenuEntry struct {
	widget.Base

	Oracle *style.Oracle
	Source compositor.IndicatorSource
	Window compositor.XID

	HPad, VPad float64

	entry compositor.IndicatorEntry
}

// NewMenuEntry returns a MenuEntry for entry, bound to oracle for sizing
// and source for the open-menu/action callbacks.
func NewMenuEntry(oracle *style.Oracle, source compositor.IndicatorSource, win compositor.XID, entry compositor.IndicatorEntry) *MenuEntry {
	e := &MenuEntry{Oracle: oracle, Source: source, Window: win, HPad: 6, VPad: 2}
	e.Base = widget.NewBase(widget.KindMenuEntry, e)
	e.SetEntry(entry)
	return e
}

// Entry returns the wrapped indicator entry data.
func (e *MenuEntry) Entry() compositor.IndicatorEntry { return e.entry }

// SetEntry replaces the wrapped entry data, recomputing natural size and
// visibility/sensitivity flags from it (spec.md §4.6: label/image
// sensitivity, visible, active, show-now all live on the entry).
func (e *MenuEntry) SetEntry(entry compositor.IndicatorEntry) {
	e.entry = entry
	e.SetVisible(entry.Visible)
	e.SetSensitive(entry.LabelSensitive || entry.ImageSensitive)
	w, h := e.Oracle.MenuItemNaturalSize(entry.Label)
	e.SetNatural(w+2*e.HPad, h+2*e.VPad)
}

// ShowNow reports the entry's show-now flag (spec.md §4.6 "show-now"),
// used by MenuLayout/SlidingLayout to decide whether the menu strip
// should stay visible without a mouse_owner crossfade.
func (e *MenuEntry) ShowNow() bool { return e.entry.ShowNow }

func (e *MenuEntry) Draw(any, any, geom.Rect) {}

// Motion is a no-op: entries have no hover-only visual state of their
// own beyond what the compositor's theme draws from Flags.
func (e *MenuEntry) Motion(geom.Point, int64) {}

// ButtonDown opens the menu on button 1 at the entry's bottom-left, and
// on buttons 2/3 first tries the bound WindowManagerAction before
// falling back to opening the menu (spec.md §4.6).
func (e *MenuEntry) ButtonDown(p geom.Point, button int, t int64) {
	switch button {
	case 1:
		e.openMenu()
	case 2:
		e.dispatch(style.MiddleClick)
	case 3:
		e.dispatch(style.RightClick)
	}
}

func (e *MenuEntry) dispatch(event style.ClickEvent) {
	action := e.Oracle.WindowManagerAction(event)
	if action == style.ActionNone {
		e.openMenu()
	}
	// Non-NONE bound actions for indicator entries have no window-level
	// effect to invoke here (spec.md §4.6 only names the NONE fallback);
	// a bound action is the compositor's own concern once dispatched.
}

func (e *MenuEntry) openMenu() {
	if e.Source == nil {
		return
	}
	r := e.Geometry()
	e.Source.OpenMenu(e.entry.ID, geom.Point{X: r.X, Y: r.Bottom()})
}

func (e *MenuEntry) ButtonUp(geom.Point, int, int64) {}
