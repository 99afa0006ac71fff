// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package title implements the window title widget (spec.md §4.6):
// text drawn by the style oracle's text measurement, alignment-driven
// placement within the title strip, and a linear-alpha fade instead of
// clipping when the rendered rect is narrower than the natural text
// width. Grounded on core/label.go's Text widget (SetText + natural
// size driven by the paint engine), collapsed from Text's full
// HTML/rich-text styling pipeline to the single-line, single-font case
// the decoration title strip needs.
package title

import (
	"golang.org/x/image/font/basicfont"

	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/style"
	"github.com/3v1n0/unity-sub005/widget"
)

// Title draws one line of window-title text (spec.md §4.6).
type Title struct {
	widget.Base

	Oracle *style.Oracle
	Color  [4]uint8

	text string
}

// NewTitle returns an empty Title bound to oracle.
func NewTitle(oracle *style.Oracle) *Title {
	t := &Title{Oracle: oracle, Color: [4]uint8{0xff, 0xff, 0xff, 0xff}}
	t.Base = widget.NewBase(widget.KindTitle, t)
	t.refreshNatural()
	return t
}

// SetText replaces the displayed text and recomputes natural size
// (spec.md §4.6 "Its natural size equals the oracle's
// title_natural_size(text)").
func (t *Title) SetText(s string) {
	if t.text == s {
		return
	}
	t.text = s
	t.refreshNatural()
}

// Text returns the current title text.
func (t *Title) Text() string { return t.text }

func (t *Title) refreshNatural() {
	w, h := t.Oracle.TitleNaturalSize(t.text)
	t.SetNatural(w, h)
}

// AlignX computes the clamped X position of the title within a content
// rect starting at given_x, per spec.md §4.6: "x = max(given_x,
// parent_content.x + (parent_content.w - natural_w) * f)" for
// CENTER/RIGHT/FLOATING(f); LEFT alignment places it at given_x
// unclamped.
func (t *Title) AlignX(givenX float64, contentX, contentW float64) float64 {
	align := t.Oracle.TitleAlignment()
	if align.Kind == style.AlignLeft {
		return givenX
	}
	natW, _ := t.Oracle.TitleNaturalSize(t.text)
	clamped := contentX + (contentW-natW)*align.F
	if clamped > givenX {
		return clamped
	}
	return givenX
}

// Draw paints the title text at the widget's current rect, fading the
// trailing title_fading_pixels to transparent when the rect is
// narrower than the natural text width (spec.md §4.6), otherwise
// drawing flat.
func (t *Title) Draw(ctx any, _ any, clip geom.Rect) {
	canvas, ok := ctx.(style.Canvas)
	if !ok {
		return
	}
	r := t.Geometry().Intersect(clip)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	natW, _ := t.Oracle.TitleNaturalSize(t.text)
	fadeFrom := len(t.text)
	if r.W < natW {
		fadeFrom = style.FadeBoundary(t.text, t.Oracle.TitleFadingPixels())
	}
	canvas.DrawText(t.text, geom.Point{X: r.X, Y: r.Y}, basicfont.Face7x13, t.Color, fadeFrom)
}

func (t *Title) Motion(geom.Point, int64)            {}
func (t *Title) ButtonDown(geom.Point, int, int64)    {}
func (t *Title) ButtonUp(geom.Point, int, int64)      {}
