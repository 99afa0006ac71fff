// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rivo/uniseg"

	"github.com/3v1n0/unity-sub005/geom"
)

// Canvas is the off-screen 2-D context the draw-time functions render
// into (spec.md §4.3: "take an off-screen 2-D context and render one
// decoration element"). texture.CairoContext implements it; tests use a
// recording fake. DrawText's fadeFrom is a byte offset into text (as
// FadeBoundary returns): runes before it are drawn at full alpha, runes
// from it to the end are drawn under a linear fade to transparent;
// fadeFrom == len(text) draws flat.
type Canvas interface {
	DrawText(text string, at geom.Point, face font.Face, col [4]uint8, fadeFrom int)
	DrawRoundedRect(r geom.Rect, radius float64, col [4]uint8)
	DrawLine(from, to geom.Point, width float64, col [4]uint8)
}

// face returns the font.Face used for measurement and drawing. The
// decoration core doesn't ship a font rasterizer of its own (spec.md's
// non-goals exclude a general text-layout engine); basicfont.Face7x13
// stands in for whatever bitmap/outline face the compositor's toolkit
// theme provides, the same role a null object plays at an external
// boundary elsewhere in this package (compositor.ThemeProvider).
func face() font.Face { return basicfont.Face7x13 }

// TitleNaturalSize returns the natural (unclamped) size of a title
// string (spec.md §4.6 "Title ... natural size equals the oracle's
// title_natural_size(text)"). Shapes against the loaded titlebar font
// (LoadTitlebarFont) when one is available, falling back to the
// bitmap-measured basicfont face otherwise.
func (o *Oracle) TitleNaturalSize(text string) (w, h float64) {
	return o.measureLine(text)
}

// MenuItemNaturalSize returns a menu label's natural content size
// before the entry's own padding is added (spec.md §4.6).
func (o *Oracle) MenuItemNaturalSize(label string) (w, h float64) {
	return o.measureLine(label)
}

func (o *Oracle) measureLine(s string) (w, h float64) {
	o.mu.RLock()
	face := o.titleFace
	sizePt := o.data.TitlebarFont
	o.mu.RUnlock()
	if face != nil {
		f := ParseFont(sizePt)
		return face.measure(s, f.SizePt*96/72)
	}
	return measureLine(s)
}

func measureLine(s string) (w, h float64) {
	f := face()
	adv := font.MeasureString(f, s)
	return fixedToFloat(adv), float64(f.Metrics().Height.Ceil())
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// FadeBoundary returns the rune-safe cut point (a byte offset valid at a
// grapheme-cluster boundary) at which the last titleFadingPixels of
// text, measured from the right, begin — used to draw the trailing fade
// spec.md §4.6 describes without splitting a multi-rune grapheme
// cluster in two. Grounded on rivo/uniseg, the grapheme-cluster
// segmenter the teacher's text stack uses for exactly this kind of
// rune-safe truncation.
func FadeBoundary(text string, fadeWidth float64) int {
	if fadeWidth <= 0 {
		return len(text)
	}
	f := face()
	total := fixedToFloat(font.MeasureString(f, text))
	if total <= fadeWidth {
		return 0
	}
	target := total - fadeWidth

	gr := uniseg.NewGraphemes(text)
	consumed := 0.0
	last := 0
	for gr.Next() {
		cluster := gr.Str()
		consumed += fixedToFloat(font.MeasureString(f, cluster))
		_, to := gr.Positions()
		if consumed >= target {
			return to
		}
		last = to
	}
	return last
}
