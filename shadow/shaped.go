// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadow

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"

	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/texture"
)

// ShapeRect is one rectangle of a window's X shape (spec.md §4.9 "query
// the window's X shape rectangles"), in window-local coordinates.
type ShapeRect struct {
	XOffset, YOffset float64
	W, H             float64
}

// BuildShapedShadow rasterizes shape (a window's X shape rectangles) onto
// a PixmapTexture sized shape.width+4r by shape.height+4r, painting each
// rectangle in col at offset (r*2-x_offset, r*2-y_offset) and Gaussian-
// blurring the whole surface by radius r (spec.md §4.9 steps 2–4). Returns
// the single quad using it as the sole shadow quad, per spec's "box is
// (B.x+o.x-2r+shape.x_offset, B.y+o.y-2r+shape.y_offset, width, height)".
func BuildShapedShadow(b geom.Rect, radius float64, offset geom.Point, shapeWidth, shapeHeight float64, rects []ShapeRect, col color.RGBA) (*texture.PixmapTexture, Quad) {
	r := radius
	width := int(shapeWidth + 4*r)
	height := int(shapeHeight + 4*r)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	surface := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, rect := range rects {
		dst := image.Rect(
			int(2*r-rect.XOffset),
			int(2*r-rect.YOffset),
			int(2*r-rect.XOffset+rect.W),
			int(2*r-rect.YOffset+rect.H),
		)
		draw.Draw(surface, dst, &image.Uniform{C: col}, image.Point{}, draw.Over)
	}

	blurred := blur.Gaussian(surface, r)

	tex := texture.NewPixmapTexture(width, height)
	draw.Draw(tex.Image(), tex.Image().Bounds(), blurred, image.Point{}, draw.Src)

	var xOff, yOff float64
	if len(rects) > 0 {
		xOff, yOff = rects[0].XOffset, rects[0].YOffset
	}
	box := geom.NewRect(
		b.X+offset.X-2*r+xOff,
		b.Y+offset.Y-2*r+yOff,
		float64(width),
		float64(height),
	)

	return tex, Quad{Box: box, Matrix: TexMatrix{TexSide: float64(width)}}
}
