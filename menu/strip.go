// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menu

import (
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/widget"
)

// Strip adapts a *MenuLayout into a widget.Item so it can sit as the
// Input side of a widget.SlidingLayout (spec.md §4.6 "crossfades with the
// title when the application menu is not always-shown"). Like
// edge.EdgeBorders, the wrapped MenuLayout is a plain layout/registry, not
// itself an Item: its individual MenuEntry/MenuDropdown widgets are
// pushed into the input.Mixer directly by the owning window.Controller,
// so Strip's own Motion/ButtonDown/ButtonUp are no-ops — only Draw and
// geometry plumbing are needed here.
type Strip struct {
	widget.Base

	Layout *MenuLayout
}

// NewStrip returns a Strip wrapping layout.
func NewStrip(layout *MenuLayout) *Strip {
	s := &Strip{Layout: layout}
	s.Base = widget.NewBase(widget.KindMenuStrip, s)
	s.OnGeoChanged(s.relayout)
	return s
}

func (s *Strip) relayout() {
	r := s.Geometry()
	s.Layout.Relayout(r, r.W)
}

// Draw renders every currently-visible entry plus the dropdown icon, if
// populated; the strip itself contributes no chrome of its own.
func (s *Strip) Draw(ctx any, transform any, clip geom.Rect) {
	for _, e := range s.Layout.Entries {
		if e.Base().IsVisible() {
			e.Draw(ctx, transform, clip)
		}
	}
	if s.Layout.Dropdown.Base().IsVisible() {
		s.Layout.Dropdown.Draw(ctx, transform, clip)
	}
}

func (s *Strip) Motion(geom.Point, int64)          {}
func (s *Strip) ButtonDown(geom.Point, int, int64) {}
func (s *Strip) ButtonUp(geom.Point, int, int64)   {}
