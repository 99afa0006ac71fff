// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/style"
)

func TestEdgeBordersResizableCreatesAllNine(t *testing.T) {
	b := NewEdgeBorders(true, nil, nil, style.New(), nil)
	assert.Len(t, b.Items(), 9)
}

func TestEdgeBordersNonResizableOnlyHasGrab(t *testing.T) {
	b := NewEdgeBorders(false, nil, nil, style.New(), nil)
	assert.Len(t, b.Items(), 1)
	assert.Equal(t, b.Grab, b.Items()[0])
}

func TestEdgeBordersRelayoutGrabRectSitsOverTitleArea(t *testing.T) {
	o := style.New()
	b := NewEdgeBorders(true, nil, nil, o, nil)

	rect := geom.NewRect(100, 100, 400, 300)
	b.Relayout(rect, o)

	border := o.Border()
	input := o.InputBorder()
	g := b.Grab.Geometry()
	assert.Equal(t, rect.X+input, g.X)
	assert.Equal(t, rect.Y+input-border.Top, g.Y)
	assert.Equal(t, rect.W-2*input, g.W)
	assert.Equal(t, border.Top, g.H)
}

func TestEdgeBordersRelayoutCornersAndEdgesTileThePerimeter(t *testing.T) {
	o := style.New()
	b := NewEdgeBorders(true, nil, nil, o, nil)

	rect := geom.NewRect(0, 0, 500, 400)
	b.Relayout(rect, o)

	tl, tr := b.TopLeft.Geometry(), b.TopRight.Geometry()
	top := b.Top.Geometry()
	left, right := b.Left.Geometry(), b.Right.Geometry()
	bl, br := b.BottomLeft.Geometry(), b.BottomRight.Geometry()
	bottom := b.Bottom.Geometry()

	assert.Equal(t, tl.W, top.X-rect.X)
	assert.Equal(t, top.X+top.W, tr.X)
	assert.Equal(t, rect.Right(), tr.Right())

	assert.Equal(t, tl.H, left.Y-rect.Y)
	assert.Equal(t, left.Y+left.H, bl.Y)
	assert.Equal(t, rect.Bottom(), bl.Bottom())

	assert.Equal(t, bl.W, bottom.X-rect.X)
	assert.Equal(t, bottom.X+bottom.W, br.X)
	assert.Equal(t, rect.Right(), br.Right())

	assert.Equal(t, tr.W, right.W)
	assert.Equal(t, left.W, right.W)
}

func TestEdgeBordersRelayoutNonResizableSkipsPlainEdges(t *testing.T) {
	o := style.New()
	b := NewEdgeBorders(false, nil, nil, o, nil)
	assert.NotPanics(t, func() {
		b.Relayout(geom.NewRect(0, 0, 200, 150), o)
	})
}

func TestEdgeBordersEffectiveEdgeWidthHonorsMinCornerFloor(t *testing.T) {
	o := style.New()
	o.SetDPIScale(4)
	b := NewEdgeBorders(true, nil, nil, o, nil)

	rect := geom.NewRect(0, 0, 500, 400)
	b.Relayout(rect, o)

	minCorner := 10 * o.DPIScale()
	assert.Equal(t, minCorner, b.Top.Geometry().H)
	assert.Equal(t, minCorner, b.Left.Geometry().W)
}
