// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the shared 2-D value types used across the
// decoration core: points, rectangles and per-side insets. It plays the
// role that math32.Box2 / math32.Geom2DInt play in the teacher, expressed
// in float64 since decoration geometry is scaled by a fractional DPI factor.
package geom

import "fmt"

// Point is a 2-D coordinate.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return sqrt(dx*dx + dy*dy)
}

func sqrt(v float64) float64 {
	if v <= 0 {
		return 0
	}
	// Newton's method; avoids pulling in math just for this one call site
	// everywhere geom is used from a hot layout path.
	x := v
	if x < 1 {
		x = 1
	}
	for {
		next := 0.5 * (x + v/x)
		if !(next < x) {
			return x
		}
		x = next
	}
}

// Rect is an axis-aligned rectangle in the style of the teacher's
// math32.Box2: an origin plus a size, not a min/max corner pair, because
// every spec.md layout formula (§4.1, §4.5) is expressed as x,y,w,h.
type Rect struct {
	X, Y, W, H float64
}

// NewRect constructs a Rect from components.
func NewRect(x, y, w, h float64) Rect { return Rect{x, y, w, h} }

// Pos returns the rectangle's origin.
func (r Rect) Pos() Point { return Point{r.X, r.Y} }

// Right returns the X coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// IsZero reports whether the rectangle has zero size.
func (r Rect) IsZero() bool { return r.W == 0 && r.H == 0 }

// Contains reports whether p falls within r, inclusive of the near edges
// and exclusive of the far edges (the usual half-open convention so that
// adjacent widgets never double-claim a shared border pixel).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translate returns r shifted by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{r.X + d.X, r.Y + d.Y, r.W, r.H}
}

// Union returns the smallest Rect containing both r and o. A zero-size r
// or o is treated as absent so that accumulating a bounding box from an
// empty start value behaves as expected.
func (r Rect) Union(o Rect) Rect {
	if r.IsZero() {
		return o
	}
	if o.IsZero() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Intersect returns the overlap of r and o. If they don't overlap, the
// result has zero (or negative) W/H; callers that need to detect this
// should check W<=0||H<=0 rather than IsZero, since a real intersection
// at exactly zero width is otherwise indistinguishable from "no rect".
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.1f,%.1f %.1fx%.1f)", r.X, r.Y, r.W, r.H)
}

// Size is a 2-D extent, used for natural/min/max clamps.
type Size struct {
	W, H float64
}

// Clamp returns s restricted to [min,max] component-wise.
func (s Size) Clamp(min, max Size) Size {
	return Size{clamp(s.W, min.W, max.W), clamp(s.H, min.H, max.H)}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Insets holds four per-side pixel extents: the shape of a window border
// (spec.md §3 `border`) or an input-only frame enlargement (§3 `input`).
type Insets struct {
	Top, Left, Right, Bottom float64
}

// Add returns the component-wise sum of two Insets, used to compute the
// input-frame extents (`border + input_border`, spec.md §4.7 step 1).
func (i Insets) Add(o Insets) Insets {
	return Insets{i.Top + o.Top, i.Left + o.Left, i.Right + o.Right, i.Bottom + o.Bottom}
}

// IsZero reports whether all four sides are zero.
func (i Insets) IsZero() bool {
	return i.Top == 0 && i.Left == 0 && i.Right == 0 && i.Bottom == 0
}

// Shrink returns r shrunk on each side by i (used when the client owns
// rounded corners and the shadow region is shrunk accordingly, §4.9).
func (r Rect) Shrink(i Insets) Rect {
	return Rect{
		X: r.X + i.Left,
		Y: r.Y + i.Top,
		W: r.W - i.Left - i.Right,
		H: r.H - i.Top - i.Bottom,
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
