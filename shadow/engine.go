// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"image/color"

	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/texture"
)

// OutputExtentsUpdater is the per-window collaborator notified when the
// shadow's bounding rect grows or shrinks, so the compositor can expand
// its damage region (spec.md §4.9).
type OutputExtentsUpdater interface {
	UpdateOutputExtents()
}

// Engine recomputes a window's shadow quads, caching the last bounding
// rect so recompute only fires work (and notifies the window) when it
// actually changed — the cached variant spec.md's design notes (§9,
// item 1) call out as the one to adopt between the legacy source's two
// co-existing implementations (cache-on-change vs. recompute-every-paint).
type Engine struct {
	lastShadowRect geom.Rect
	window         OutputExtentsUpdater
}

// NewEngine returns an Engine that notifies window whenever the shadow
// bounding rect changes.
func NewEngine(window OutputExtentsUpdater) *Engine {
	return &Engine{window: window}
}

// LastShadowRect returns the most recently computed bounding rect.
func (e *Engine) LastShadowRect() geom.Rect { return e.lastShadowRect }

// RecomputeGeneric computes the four generic quads and updates the cached
// bounding rect, notifying the window if it changed.
func (e *Engine) RecomputeGeneric(b geom.Rect, radius float64, offset geom.Point, texSide float64, windowRegion geom.Rect, clientBorders geom.Insets) []Quad {
	quads := ComputeGenericQuads(b, radius, offset, texSide, windowRegion, clientBorders)
	bounds := geom.Rect{}
	for _, q := range quads {
		bounds = bounds.Union(q.Box)
	}
	e.setBounds(bounds)
	return quads
}

// RecomputeShaped builds the shaped-shadow quad (via BuildShapedShadow)
// and updates the cached bounding rect, notifying the window if it
// changed. Callers own the returned texture's lifetime.
func (e *Engine) RecomputeShaped(b geom.Rect, radius float64, offset geom.Point, shapeWidth, shapeHeight float64, rects []ShapeRect, col [4]uint8) (tex *texture.PixmapTexture, quad Quad) {
	pm, q := BuildShapedShadow(b, radius, offset, shapeWidth, shapeHeight, rects, color.RGBA{col[0], col[1], col[2], col[3]})
	e.setBounds(q.Box)
	return pm, q
}

func (e *Engine) setBounds(bounds geom.Rect) {
	if bounds == e.lastShadowRect {
		return
	}
	e.lastShadowRect = bounds
	if e.window != nil {
		e.window.UpdateOutputExtents()
	}
}
