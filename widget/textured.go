// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import "github.com/3v1n0/unity-sub005/geom"

// Texture is the minimal shape a TexturedItem needs from a backing
// texture (implemented by texture.PixmapTexture). Defined locally rather
// than imported so widget stays a leaf package — texture depends on
// widget's Draw contract, not the other way around.
type Texture interface {
	// Size returns the texture's pixel dimensions.
	Size() (w, h float64)
}

// QuadDrawer is the draw-time sink a TexturedItem submits its one textured
// quad to (spec.md §4.1: "draw issues one textured-quad command clipped to
// the current region"). A *texture.CairoContext / compositor paint batch
// implements this; widget only depends on the shape.
type QuadDrawer interface {
	DrawQuad(tex Texture, dst geom.Rect, clip geom.Rect)
}

// TexturedItem is an Item backed by a cached texture quad: its natural
// size is the texture's size (spec.md §4.1).
type TexturedItem struct {
	Base
	tex Texture
}

// NewTexturedItem returns a TexturedItem with the given backing texture.
// Passing a nil texture is valid (e.g. before the first theme load) and
// yields a zero natural size until SetTexture is called.
func NewTexturedItem(kind Kind, self Item, tex Texture) *TexturedItem {
	ti := &TexturedItem{Base: NewBase(kind, self)}
	ti.SetTexture(tex)
	return ti
}

// SetTexture swaps the backing texture and re-derives the natural size
// (spec.md §4.1); it does not fire geo_parameters_changed.
func (ti *TexturedItem) SetTexture(tex Texture) {
	ti.tex = tex
	if tex == nil {
		ti.SetNatural(0, 0)
		return
	}
	w, h := tex.Size()
	ti.SetNatural(w, h)
}

// Texture returns the current backing texture, or nil.
func (ti *TexturedItem) Texture() Texture { return ti.tex }

// Draw issues the one textured-quad command, clipped to clip intersected
// with this item's own rect. ctx must implement QuadDrawer.
func (ti *TexturedItem) Draw(ctx any, _ any, clip geom.Rect) {
	if ti.tex == nil {
		return
	}
	qd, ok := ctx.(QuadDrawer)
	if !ok {
		return
	}
	qd.DrawQuad(ti.tex, ti.Geometry(), clip)
}

// Motion is a no-op default; concrete widgets that need hover feedback
// override it by not embedding TexturedItem's Item methods directly (Go
// has no virtual override, so e.g. edge.Edge defines its own Motion and
// only reuses TexturedItem for sizing/draw).
func (ti *TexturedItem) Motion(geom.Point, int64)              {}
func (ti *TexturedItem) ButtonDown(geom.Point, int, int64)      {}
func (ti *TexturedItem) ButtonUp(geom.Point, int, int64)        {}
