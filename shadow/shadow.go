// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shadow implements the decoration core's shadow engine (spec.md
// §4.9): the four-quad generic shadow around a window's border rect, or a
// single shaped-shadow quad rasterized from the window's X shape
// rectangles. Grounded on paint/blur_test.go's use of
// github.com/anthonynsimon/bild/blur.Gaussian — the same "solid shape,
// then Gaussian-blur" recipe texture.buildGlowTexture already uses for the
// glow asset — generalized here to a window-sized shadow silhouette.
package shadow

import (
	"github.com/3v1n0/unity-sub005/geom"
)

// TexMatrix maps a quad's local box-space coordinates (0,0)..(box.W,box.H)
// onto the shared shadow texture's UV space (spec.md §4.9: "the texture
// matrix is the texture's native matrix, with axis flips for the
// right/bottom quads").
type TexMatrix struct {
	FlipX, FlipY bool
	TexSide      float64
}

// UV returns the texture coordinate for a point expressed in the quad's
// own local box space.
func (m TexMatrix) UV(local geom.Point, boxSize geom.Size) (u, v float64) {
	u = local.X / m.TexSide
	v = local.Y / m.TexSide
	if m.FlipX {
		u = 1 - local.X/boxSize.W
	}
	if m.FlipY {
		v = 1 - local.Y/boxSize.H
	}
	return u, v
}

// Quad is one of the four nine-patch pieces of a generic shadow, or the
// sole quad of a shaped shadow.
type Quad struct {
	Box    geom.Rect
	Matrix TexMatrix

	// WindowRegion is the window's own opaque rect, used to suppress
	// shadow drawn underneath the client (spec.md §4.9 "quad.box −
	// window.region"). Real region algebra needs a multi-rect clip list;
	// this core doesn't do compositor-side clipping (out of scope, §1),
	// so Visible approximates "box minus region" with a single
	// axis-aligned remainder strip (chosen by where the overlap sits, not
	// by size) rather than a full region subtraction —
	// sufficient for deciding whether a quad is worth drawing at all.
	WindowRegion geom.Rect
}

// Visible returns the portion of the quad's box not covered by its
// window region, or a zero Rect if the box is entirely covered.
func (q Quad) Visible() geom.Rect {
	overlap := q.Box.Intersect(q.WindowRegion)
	if overlap.W <= 0 || overlap.H <= 0 {
		return q.Box
	}
	if overlap == q.Box {
		return geom.Rect{}
	}
	// One remaining strip: on the axis the overlap doesn't fully span,
	// the strip past the overlap's far edge if the overlap touches the
	// box's near edge, otherwise the strip before the overlap.
	if overlap.H < q.Box.H {
		if overlap.Y == q.Box.Y {
			return geom.NewRect(q.Box.X, overlap.Bottom(), q.Box.W, q.Box.Bottom()-overlap.Bottom())
		}
		return geom.NewRect(q.Box.X, q.Box.Y, q.Box.W, overlap.Y-q.Box.Y)
	}
	if overlap.X == q.Box.X {
		return geom.NewRect(overlap.Right(), q.Box.Y, q.Box.Right()-overlap.Right(), q.Box.H)
	}
	return geom.NewRect(q.Box.X, q.Box.Y, overlap.X-q.Box.X, q.Box.H)
}

// ComputeGenericQuads builds the four nine-patch shadow quads around
// border rect b, per spec.md §4.9's generic-shadow algorithm. texSide is
// the (square) shadow texture's side length, 4*radius. windowRegion is the
// client's own opaque rect (suppressed from each quad); clientBorders
// shrinks and re-centers that suppression when the client draws its own
// rounded corners (spec.md: "the window region is shrunk by those corners
// and translated by half the difference before subtraction").
func ComputeGenericQuads(b geom.Rect, radius float64, offset geom.Point, texSide float64, windowRegion geom.Rect, clientBorders geom.Insets) []Quad {
	r := radius
	region := windowRegion
	if !clientBorders.IsZero() {
		shrunk := windowRegion.Shrink(clientBorders)
		dx := (windowRegion.W - shrunk.W) / 2
		dy := (windowRegion.H - shrunk.H) / 2
		region = shrunk.Translate(geom.Point{X: dx, Y: dy})
	}

	tl := geom.NewRect(
		b.X+offset.X-2*r,
		b.Y+offset.Y-2*r,
		b.W+offset.X,
		b.H+offset.Y,
	)

	if texSide > b.W {
		center := b.X + b.W/2
		if tl.Right() > center {
			tl.W = center - tl.X
		}
	}
	if texSide > b.H {
		center := b.Y + b.H/2
		if tl.Bottom() > center {
			tl.H = center - tl.Y
		}
	}

	tr := geom.NewRect(tl.Right(), tl.Y, texSide, tl.H)
	if texSide > b.W {
		center := b.X + b.W/2
		if tr.X < center {
			tr.X = center
		}
	}

	bl := geom.NewRect(tl.X, tl.Bottom(), tl.W, texSide)
	if texSide > b.H {
		center := b.Y + b.H/2
		if bl.Y < center {
			bl.Y = center
		}
	}

	br := geom.NewRect(tr.X, bl.Y, texSide, texSide)

	return []Quad{
		{Box: tl, Matrix: TexMatrix{TexSide: texSide}, WindowRegion: region},
		{Box: tr, Matrix: TexMatrix{TexSide: texSide, FlipX: true}, WindowRegion: region},
		{Box: bl, Matrix: TexMatrix{TexSide: texSide, FlipY: true}, WindowRegion: region},
		{Box: br, Matrix: TexMatrix{TexSide: texSide, FlipX: true, FlipY: true}, WindowRegion: region},
	}
}
