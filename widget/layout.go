// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"log/slog"

	"golang.org/x/exp/slices"

	"github.com/3v1n0/unity-sub005/geom"
)

// Padding holds the six spacing values a Layout owns (spec.md §3):
// inner spacing between items, plus left/right/top/bottom edge insets.
type Padding struct {
	Inner, Left, Right, Top, Bottom float64
}

// Layout is a horizontal container of Items (spec.md §4.1). Children are
// painted in reverse of hit-test order per the input mixer's convention
// (input.Mixer owns that ordering independently); Layout itself only
// cares about left-to-right positioning.
type Layout struct {
	Base
	Padding  Padding
	Children []Item

	// Relayout runs a fixed two passes and never loops further, even if
	// still over budget after the second (spec.md §4.1 step 4); the pass
	// count is not configurable.
}

// NewLayout returns an empty Layout. self should be the concrete embedder
// when Layout is itself embedded by a more specific widget (e.g.
// menu.Layout); pass nil to use the Layout itself as both Item and Base
// owner.
func NewLayout(self Item) *Layout {
	l := &Layout{}
	if self == nil {
		self = l
	}
	l.Base = NewBase(KindLayout, self)
	l.OnGeoChanged(l.Relayout)
	return l
}

// AddChild appends child to the layout and wires it in: parenting,
// visibility-change relayout trigger, and an initial relayout.
func (l *Layout) AddChild(child Item) {
	cb := child.Base()
	cb.setParent(&l.Base)
	l.Children = append(l.Children, child)
	cb.OnVisibleChanged(func(bool) { l.Relayout() })
	l.Relayout()
}

// RemoveChild detaches child from the layout, clearing its parent link.
func (l *Layout) RemoveChild(child Item) {
	i := slices.Index(l.Children, child)
	if i < 0 {
		return
	}
	child.Base().setParent(nil)
	l.Children = slices.Delete(l.Children, i, i+1)
	l.Relayout()
}

// contentWidth is the width available to children: own rect width minus
// left+right padding.
func (l *Layout) contentWidth() float64 {
	return l.Geometry().W - l.Padding.Left - l.Padding.Right
}

func (l *Layout) contentHeight() float64 {
	return l.Geometry().H - l.Padding.Top - l.Padding.Bottom
}

// Relayout runs the (at most) two-pass algorithm spec.md §4.1 describes.
// It is idempotent: calling it twice in a row with no intervening state
// change produces byte-identical child geometries (spec.md §8).
func (l *Layout) Relayout() {
	visible := make([]Item, 0, len(l.Children))
	for _, c := range l.Children {
		if c.Base().IsVisible() {
			visible = append(visible, c)
		}
	}
	if len(visible) == 0 {
		return
	}

	availW := l.contentWidth()
	availH := l.contentHeight()

	// Pass 1: give every child its natural width, clamp height to the
	// lesser of available height and natural height.
	total := 0.0
	maxChildH := 0.0
	for i, c := range visible {
		cb := c.Base()
		nh := cb.NaturalHeight()
		if nh > availH {
			nh = availH
		}
		cb.SetMinWidth(cb.NaturalWidth())
		cb.SetMaxWidth(availW)
		cb.SetMinHeight(nh)
		cb.SetMaxHeight(availH)
		cb.setRectSize(cb.NaturalWidth(), nh)
		if i > 0 {
			total += l.Padding.Inner
		}
		total += cb.Geometry().W
		if cb.Geometry().H > maxChildH {
			maxChildH = cb.Geometry().H
		}
	}

	// Pass 2: if the accumulated width overflows, shrink children from
	// the tail (reverse order), reclaiming inner padding first. Shrinking
	// a child's max_width below its pass-1 natural floor also lowers its
	// min_width to match (the same max-below-min clamp-crossing rule
	// SetMaxWidth applies everywhere else, spec.md §4.1), so the widest
	// trailing child can be pushed below its natural width while earlier
	// children the loop never reaches keep theirs.
	budget := availW - l.Padding.Right
	if total > budget {
		overflow := total - budget
		for i := len(visible) - 1; i >= 0 && overflow > 0; i-- {
			cb := visible[i].Base()
			if i > 0 {
				reclaim := l.Padding.Inner
				if reclaim > overflow {
					reclaim = overflow
				}
				overflow -= reclaim
				if overflow <= 0 {
					break
				}
			}
			w := cb.Geometry().W
			shrink := overflow
			if shrink > w {
				shrink = w
			}
			newMax := w - shrink
			cb.SetMaxWidth(newMax)
			cb.setRectSize(newMax, cb.Geometry().H)
			overflow -= shrink
		}
		if overflow > 0 {
			slog.Error("widget: layout overflow could not be resolved in two passes",
				"overflow", overflow)
		}
	}

	// Position children left-to-right, vertically centered.
	x := l.Geometry().X + l.Padding.Left
	for i, c := range visible {
		cb := c.Base()
		if i > 0 {
			x += l.Padding.Inner
		}
		y := l.Geometry().Y + l.Padding.Top + (maxChildH-cb.Geometry().H)/2
		cb.SetCoords(x, y)
		x += cb.Geometry().W
	}
}

// Draw renders every visible child, front-to-back per the Children
// ordering (spec.md §4.2 notes that input front = painted last; Layout
// draws in Children order, the owner is responsible for ordering
// Children so that visual stacking matches input.Mixer's list).
func (l *Layout) Draw(ctx any, transform any, clip geom.Rect) {
	for _, c := range l.Children {
		if !c.Base().IsVisible() {
			continue
		}
		c.Draw(ctx, transform, clip)
	}
}

func (l *Layout) Motion(geom.Point, int64)         {}
func (l *Layout) ButtonDown(geom.Point, int, int64) {}
func (l *Layout) ButtonUp(geom.Point, int, int64)   {}
