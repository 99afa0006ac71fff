// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"os"

	"github.com/go-text/typesetting/di"
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shapedFace wraps a real loaded font file, shaped through
// go-text/typesetting's HarfBuzz-derived shaper — the teacher's own
// direct dependency (SPEC_FULL.md §3), used here instead of
// golang.org/x/image/font's bitmap measurement whenever a theme actually
// supplies a titlebar font file. basicfont remains the always-available
// fallback (the "standalone" palette named in SPEC_FULL.md §6) for when
// no font file is resolvable.
type shapedFace struct {
	font *gofont.Font
}

func loadShapedFace(path string) (*shapedFace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fnt, err := gofont.ParseTTF(f)
	if err != nil {
		return nil, err
	}
	return &shapedFace{font: fnt}, nil
}

// measure shapes text at sizePx and returns its advance width and the
// face's line height, both in pixels.
func (s *shapedFace) measure(text string, sizePx float64) (w, h float64) {
	face := gofont.Face{Font: s.font}
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      &face,
		Size:      fixed.I(int(sizePx)),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}
	shaper := shaping.HarfbuzzShaper{}
	out := shaper.Shape(input)
	return float64(out.Advance) / 64, sizePx * 1.2
}

// LoadTitlebarFont resolves titlebar_font (via ParseFont for its point
// size) against a real font file at path, loading it through go-text's
// shaper for TitleNaturalSize/MenuItemNaturalSize measurement (drawing
// keeps using the basicfont face either way). Call this once
// the compositor's ThemeProvider has resolved a concrete TTF/OTF path;
// until it is called (or if it fails), the oracle keeps using the
// basicfont fallback.
func (o *Oracle) LoadTitlebarFont(path string) error {
	face, err := loadShapedFace(path)
	if err != nil {
		return err
	}
	o.mu.Lock()
	o.titleFace = face
	o.mu.Unlock()
	o.fireThemeChanged()
	return nil
}
