// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rivo/uniseg"

	"github.com/3v1n0/unity-sub005/geom"
)

// DrawText implements style.Canvas: it draws text at full alpha up to
// fadeFrom, then grapheme-cluster by grapheme-cluster with linearly
// decreasing alpha to the end (spec.md §4.6 trailing title fade), using
// golang.org/x/image/font's Drawer the same way the teacher's text
// stack ultimately rasterizes onto an *image.RGBA.
func (c *CairoContext) DrawText(text string, at geom.Point, face font.Face, col [4]uint8, fadeFrom int) {
	if fadeFrom < 0 {
		fadeFrom = 0
	}
	if fadeFrom > len(text) {
		fadeFrom = len(text)
	}
	base := color.RGBA{col[0], col[1], col[2], c.scaledAlpha(col[3])}

	drawer := &font.Drawer{
		Dst:  c.tex.pix,
		Src:  image.NewUniform(base),
		Face: face,
		Dot:  fixed.P(int(at.X), int(at.Y)+face.Metrics().Ascent.Ceil()),
	}

	head := text[:fadeFrom]
	drawer.DrawString(head)

	tail := text[fadeFrom:]
	if tail == "" {
		return
	}

	clusters := graphemeClusters(tail)
	for i, cl := range clusters {
		frac := 1 - float64(i+1)/float64(len(clusters))
		faded := base
		faded.A = uint8(float64(faded.A) * frac)
		drawer.Src = image.NewUniform(faded)
		drawer.DrawString(cl)
	}
}

func graphemeClusters(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// DrawRoundedRect implements style.Canvas with a plain midpoint-circle
// corner mask; the decoration core's corners are small (a handful of
// pixels), so a per-pixel distance test is cheap enough and needs no
// extra rasterizer dependency.
func (c *CairoContext) DrawRoundedRect(r geom.Rect, radius float64, col [4]uint8) {
	rect := rectToImage(r)
	fill := color.RGBA{col[0], col[1], col[2], c.scaledAlpha(col[3])}
	if radius <= 0 {
		draw.Draw(c.tex.pix, rect, &image.Uniform{C: fill}, image.Point{}, draw.Over)
		return
	}
	rad := radius
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if !insideRoundedRect(x, y, rect, rad) {
				continue
			}
			c.tex.pix.Set(x, y, blendOver(c.tex.pix.RGBAAt(x, y), fill))
		}
	}
}

func insideRoundedRect(x, y int, rect image.Rectangle, radius float64) bool {
	cx, cy := clampCornerCenter(x, rect.Min.X, rect.Max.X, radius), clampCornerCenter(y, rect.Min.Y, rect.Max.Y, radius)
	if cx == float64(x) || cy == float64(y) {
		return true
	}
	dx, dy := float64(x)-cx, float64(y)-cy
	return dx*dx+dy*dy <= radius*radius
}

func clampCornerCenter(v, lo, hi int, radius float64) float64 {
	if float64(v) < float64(lo)+radius {
		return float64(lo) + radius
	}
	if float64(v) > float64(hi)-radius {
		return float64(hi) - radius
	}
	return float64(v)
}

func blendOver(dst color.RGBA, src color.RGBA) color.RGBA {
	if src.A == 0xff {
		return src
	}
	a := float64(src.A) / 255
	return color.RGBA{
		R: uint8(float64(src.R)*a + float64(dst.R)*(1-a)),
		G: uint8(float64(src.G)*a + float64(dst.G)*(1-a)),
		B: uint8(float64(src.B)*a + float64(dst.B)*(1-a)),
		A: uint8(math.Max(float64(src.A), float64(dst.A))),
	}
}

// DrawLine implements style.Canvas with a simple DDA rasterizer — used
// only for the thin decorative separators the window style draws, never
// for large fills.
func (c *CairoContext) DrawLine(from, to geom.Point, width float64, col [4]uint8) {
	fill := color.RGBA{col[0], col[1], col[2], c.scaledAlpha(col[3])}
	dx, dy := to.X-from.X, to.Y-from.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		steps = 1
	}
	half := width / 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x, y := from.X+dx*t, from.Y+dy*t
		r := image.Rect(int(x-half), int(y-half), int(x+half)+1, int(y+half)+1)
		draw.Draw(c.tex.pix, r, &image.Uniform{C: fill}, image.Point{}, draw.Over)
	}
}
