// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/3v1n0/unity-sub005/compositor"
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/style"
)

const innerPadding = 4

func newTestLayout(t *testing.T) (*MenuLayout, *MenuEntry, *MenuEntry, *MenuEntry, *recordingSource) {
	t.Helper()
	oracle := style.New()
	src := &recordingSource{}
	e1 := NewMenuEntry(oracle, src, 0, compositor.IndicatorEntry{ID: "file", Label: "File", Visible: true})
	e2 := NewMenuEntry(oracle, src, 0, compositor.IndicatorEntry{ID: "edit", Label: "Edit", Visible: true})
	e3 := NewMenuEntry(oracle, src, 0, compositor.IndicatorEntry{ID: "help", Label: "Help", Visible: true})
	dropdown := NewMenuDropdown(oracle, src, 0)
	l := NewMenuLayout([]*MenuEntry{e1, e2, e3}, dropdown, innerPadding)
	return l, e1, e2, e3, src
}

func fullWidth(entries ...*MenuEntry) float64 {
	var w float64
	for _, e := range entries {
		w += e.NaturalWidth() + innerPadding
	}
	return w
}

func TestRelayoutFitsAllEntriesWithoutDropdown(t *testing.T) {
	l, e1, e2, e3, _ := newTestLayout(t)
	available := fullWidth(e1, e2, e3) + 50

	l.Relayout(geom.NewRect(0, 0, available, 20), available)

	assert.True(t, e1.IsVisible())
	assert.True(t, e2.IsVisible())
	assert.True(t, e3.IsVisible())
	assert.Equal(t, 0, l.Dropdown.Len())
	assert.False(t, l.Dropdown.IsVisible())
}

func TestRelayoutOverflowsTailEntriesIntoDropdown(t *testing.T) {
	l, e1, e2, e3, _ := newTestLayout(t)
	available := e1.NaturalWidth() + innerPadding + float64(dropdownIconWidth) + 1

	l.Relayout(geom.NewRect(0, 0, available, 20), available)

	assert.True(t, e1.IsVisible())
	assert.False(t, e2.IsVisible())
	assert.False(t, e3.IsVisible())
	assert.Equal(t, 2, l.Dropdown.Len())
	assert.True(t, l.Dropdown.IsVisible())
	// original order preserved among the hidden entries
	assert.Equal(t, []*MenuEntry{e2, e3}, l.Dropdown.Entries())
}

func TestRelayoutReclaimsEntriesWhenWidthGrowsBack(t *testing.T) {
	l, e1, e2, e3, _ := newTestLayout(t)
	tight := e1.NaturalWidth() + innerPadding + float64(dropdownIconWidth) + 1
	l.Relayout(geom.NewRect(0, 0, tight, 20), tight)
	assert.Equal(t, 2, l.Dropdown.Len())

	full := fullWidth(e1, e2, e3) + 50
	l.Relayout(geom.NewRect(0, 0, full, 20), full)

	assert.True(t, e1.IsVisible())
	assert.True(t, e2.IsVisible())
	assert.True(t, e3.IsVisible())
	assert.Equal(t, 0, l.Dropdown.Len())
	assert.False(t, l.Dropdown.IsVisible())
}

// TestRelayoutPopsLastEntryWhenWidthGrowsByExactlyItsShare covers spec.md
// §8's boundary case: the dropdown holds exactly one entry, and the
// available width grows by precisely entry.natural_width+inner_padding
// (the entry's own share) — once the dropdown itself also drops out,
// that's enough room, and the entry must come back.
func TestRelayoutPopsLastEntryWhenWidthGrowsByExactlyItsShare(t *testing.T) {
	l, e1, e2, e3, _ := newTestLayout(t)

	afterTwoVisible := e1.NaturalWidth() + e2.NaturalWidth() + 2*innerPadding
	tight := afterTwoVisible + float64(dropdownIconWidth)
	l.Relayout(geom.NewRect(0, 0, tight, 20), tight)
	assert.Equal(t, 1, l.Dropdown.Len())
	assert.False(t, e3.IsVisible())

	grown := tight + e3.NaturalWidth() + innerPadding
	l.Relayout(geom.NewRect(0, 0, grown, 20), grown)

	assert.True(t, e3.IsVisible())
	assert.Equal(t, 0, l.Dropdown.Len())
	assert.False(t, l.Dropdown.IsVisible())
}

func TestRelayoutPositionsVisibleEntriesLeftToRight(t *testing.T) {
	l, e1, e2, e3, _ := newTestLayout(t)
	available := fullWidth(e1, e2, e3) + 50
	rect := geom.NewRect(10, 3, available, 20)

	l.Relayout(rect, available)

	assert.Equal(t, geom.Point{X: 10, Y: 3}, geom.Point{X: e1.Geometry().X, Y: e1.Geometry().Y})
	assert.Equal(t, e1.Geometry().Right()+innerPadding, e2.Geometry().X)
	assert.Equal(t, e2.Geometry().Right()+innerPadding, e3.Geometry().X)
	for _, e := range []*MenuEntry{e1, e2, e3} {
		assert.Equal(t, rect.H, e.Geometry().H)
	}
}

func TestRelayoutPositionsDropdownAfterVisibleEntries(t *testing.T) {
	l, e1, e2, e3, _ := newTestLayout(t)
	available := e1.NaturalWidth() + innerPadding + float64(dropdownIconWidth) + 1
	rect := geom.NewRect(0, 0, available, 20)

	l.Relayout(rect, available)

	assert.Equal(t, e1.Geometry().Right()+innerPadding, l.Dropdown.Geometry().X)
	assert.Equal(t, float64(dropdownIconWidth), l.Dropdown.Geometry().W)
}
