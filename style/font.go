// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"strconv"
	"strings"
)

// Font is a parsed titlebar_font descriptor (spec.md §4.3 only exposes the
// raw Pango-style string; DecorationStyle::Font() in
// original_source/unity-shared/DecorationStyle.cpp splits it into these
// discrete fields before handing it to the text-shaping stack).
type Font struct {
	Family string
	Bold   bool
	Italic bool
	SizePt float64
}

// ParseFont parses a Pango font-description string ("Ubuntu Bold 11",
// "Sans Italic", "Sans Bold Italic 10.5") into discrete fields, grounded
// on the original's DecorationStyle::Font() rather than spec.md (which
// only names titlebar_font as an opaque style key). Unrecognized trailing
// tokens are folded back into Family rather than dropped, so an unusual
// family name ("Noto Sans Mono") still round-trips.
func ParseFont(desc string) Font {
	f := Font{SizePt: 11}
	fields := strings.Fields(desc)
	if len(fields) == 0 {
		return f
	}

	if size, err := strconv.ParseFloat(fields[len(fields)-1], 64); err == nil {
		f.SizePt = size
		fields = fields[:len(fields)-1]
	}

	var family []string
	for _, tok := range fields {
		switch strings.ToLower(tok) {
		case "bold":
			f.Bold = true
		case "italic", "oblique":
			f.Italic = true
		default:
			family = append(family, tok)
		}
	}
	f.Family = strings.Join(family, " ")
	return f
}
