// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menu

import (
	"github.com/3v1n0/unity-sub005/geom"
)

// MenuLayout holds an ordered list of MenuEntry plus one MenuDropdown
// and shuffles entries between them as available width changes
// (spec.md §4.6).
type MenuLayout struct {
	Entries  []*MenuEntry
	Dropdown *MenuDropdown

	InnerPadding float64

	rect geom.Rect
}

// NewMenuLayout returns a layout over entries, all initially visible,
// backed by dropdown for overflow.
func NewMenuLayout(entries []*MenuEntry, dropdown *MenuDropdown, innerPadding float64) *MenuLayout {
	return &MenuLayout{Entries: entries, Dropdown: dropdown, InnerPadding: innerPadding}
}

// Relayout fits the visible entries (plus the dropdown icon, if
// populated) into availableWidth, per spec.md §4.6:
//  1. sum the widths of visible entries (+ dropdown width if already
//     populated);
//  2. if the sum overflows, push entries from the tail into the
//     dropdown until it fits;
//  3. else, pop entries back from the dropdown while there's room,
//     preserving original order; remove the dropdown once it's empty.
func (l *MenuLayout) Relayout(rect geom.Rect, availableWidth float64) {
	l.rect = rect

	total := l.visibleEntriesWidth()
	if l.Dropdown.Len() > 0 {
		total += l.Dropdown.NaturalWidth()
	}

	if total > availableWidth {
		l.overflow(total, availableWidth)
	} else {
		l.reclaim(availableWidth)
	}
	l.position(rect)
}

func (l *MenuLayout) visibleEntriesWidth() float64 {
	var w float64
	for _, e := range l.Entries {
		if !e.entry.Visible {
			continue
		}
		w += e.NaturalWidth() + l.InnerPadding
	}
	return w
}

// overflow pushes entries from the tail of the visible list into the
// dropdown until the remaining sum (plus the now-populated dropdown
// icon) fits availableWidth.
func (l *MenuLayout) overflow(total, availableWidth float64) {
	// Walk from the tail to find which entries must go, but push them
	// into the dropdown in ascending (original) order afterward so
	// Dropdown.Entries() reads left-to-right like the title strip did.
	var toHide []*MenuEntry
	needDropdownWidth := l.Dropdown.Len() == 0
	for i := len(l.Entries) - 1; i >= 0 && total > availableWidth; i-- {
		e := l.Entries[i]
		if !e.entry.Visible {
			continue
		}
		total -= e.NaturalWidth() + l.InnerPadding
		toHide = append(toHide, e)
		if needDropdownWidth {
			total += l.Dropdown.NaturalWidth()
			needDropdownWidth = false
		}
	}
	for i := len(toHide) - 1; i >= 0; i-- {
		e := toHide[i]
		e.SetVisible(false)
		l.Dropdown.Push(e)
	}
}

// reclaim pops entries back from the dropdown, in original order, while
// there's room; it removes the dropdown from consideration once empty
// (spec.md §4.6 step 3).
func (l *MenuLayout) reclaim(availableWidth float64) {
	for l.Dropdown.Len() > 0 {
		tailWidth := l.Dropdown.PeekTailWidth() + l.InnerPadding
		used := l.visibleEntriesWidth()
		dropdownWidth := 0.0
		if l.Dropdown.Len() > 0 {
			dropdownWidth = l.Dropdown.NaturalWidth()
		}
		if used+tailWidth+dropdownWidth > availableWidth && l.Dropdown.Len() > 1 {
			break
		}
		if used+tailWidth > availableWidth {
			break
		}
		e := l.Dropdown.Pop()
		e.SetVisible(true)
	}
}

// position lays out the currently-visible entries left to right inside
// rect, followed by the dropdown icon if it holds any entries.
func (l *MenuLayout) position(rect geom.Rect) {
	x := rect.X
	for _, e := range l.Entries {
		if !e.entry.Visible {
			continue
		}
		w, h := e.NaturalWidth(), rect.H
		e.SetCoords(x, rect.Y)
		e.SetSize(w, h)
		x += w + l.InnerPadding
	}
	if l.Dropdown.Len() > 0 {
		l.Dropdown.SetCoords(x, rect.Y)
		l.Dropdown.SetSize(l.Dropdown.NaturalWidth(), rect.H)
	}
}
