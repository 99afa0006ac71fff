// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blur"

	"github.com/3v1n0/unity-sub005/style"
)

// buildGlowTexture bakes a soft disc of radius size (rounded up) in the
// given color,
// the same "solid shape + Gaussian blur" recipe the shadow engine uses
// (paint/blur_test.go's use of bild/blur.Gaussian), rather than loading
// a real asset — the glow is purely decorative and has no themed
// variant to fall back from.
func buildGlowTexture(size float64, col color.RGBA) *PixmapTexture {
	d := int(math.Ceil(size)) * 2
	if d < 1 {
		d = 1
	}
	side := d * 2
	disc := image.NewRGBA(image.Rect(0, 0, side, side))
	center := float64(side) / 2
	radius := float64(d) / 2
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dx, dy := float64(x)+0.5-center, float64(y)+0.5-center
			if dx*dx+dy*dy <= radius*radius {
				disc.Set(x, y, col)
			}
		}
	}
	blurred := blur.Gaussian(disc, radius/2)
	tex := NewPixmapTexture(side, side)
	draw.Draw(tex.pix, tex.pix.Bounds(), blurred, image.Point{}, draw.Src)
	return tex
}

// drawWindowButtonFallback procedurally draws a window button glyph
// when the theme has none (spec.md §4.4 "generated by the style
// oracle's vector fallback (draw_window_button)"). The shapes are
// deliberately simple: a ring plus the type's glyph stroke.
func drawWindowButtonFallback(typ style.ButtonType, state style.ButtonState) *PixmapTexture {
	const sz = 24
	tex := NewPixmapTexture(sz, sz)
	ringColor := fallbackRingColor(typ, state)
	drawRing(tex.pix, sz, ringColor)
	drawGlyph(tex.pix, sz, typ, ringColor)
	return tex
}

func fallbackRingColor(typ style.ButtonType, state style.ButtonState) color.RGBA {
	base := color.RGBA{0x80, 0x80, 0x80, 0xff}
	if typ == style.ButtonClose {
		base = color.RGBA{0xe0, 0x40, 0x40, 0xff}
	}
	switch state {
	case style.StatePressed, style.StateBackdropPressed:
		base.A = 0xff
	case style.StateDisabled:
		base.A = 0x50
	case style.StateBackdrop, style.StateBackdropPrelight:
		base.A = 0xa0
	}
	return base
}

func drawRing(img *image.RGBA, sz int, col color.RGBA) {
	c := float64(sz) / 2
	r := c - 1.5
	for y := 0; y < sz; y++ {
		for x := 0; x < sz; x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			d := math.Sqrt(dx*dx + dy*dy)
			if d <= r && d >= r-1.5 {
				img.Set(x, y, col)
			}
		}
	}
}

func drawGlyph(img *image.RGBA, sz int, typ style.ButtonType, col color.RGBA) {
	c := sz / 2
	switch typ {
	case style.ButtonClose:
		for i := -4; i <= 4; i++ {
			img.Set(c+i, c+i, col)
			img.Set(c+i, c-i, col)
		}
	case style.ButtonMinimize:
		for i := -4; i <= 4; i++ {
			img.Set(c+i, c+4, col)
		}
	case style.ButtonMaximize, style.ButtonUnmaximize:
		for i := -4; i <= 4; i++ {
			img.Set(c+i, c-4, col)
			img.Set(c+i, c+4, col)
			img.Set(c-4, c+i, col)
			img.Set(c+4, c+i, col)
		}
	}
}
