// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"fmt"
	"image/color"
)

// HexColor is an RGBA color that (de)serializes as a "#rrggbbaa" TOML
// string, the format the style config's shadow/glow color keys use
// (spec.md §6.4 "{active,inactive}_shadow_color (RGBA)").
type HexColor color.RGBA

// RGBA returns the color as a standard image/color.RGBA.
func (h HexColor) RGBA() color.RGBA { return color.RGBA(h) }

func (h HexColor) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", h.R, h.G, h.B, h.A)), nil
}

func (h *HexColor) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("style: invalid hex color %q", string(text))
	}
	var r, g, b, a uint8
	a = 0xff
	if _, err := fmt.Sscanf(s[0:2], "%02x", &r); err != nil {
		return err
	}
	if _, err := fmt.Sscanf(s[2:4], "%02x", &g); err != nil {
		return err
	}
	if _, err := fmt.Sscanf(s[4:6], "%02x", &b); err != nil {
		return err
	}
	if len(s) == 8 {
		if _, err := fmt.Sscanf(s[6:8], "%02x", &a); err != nil {
			return err
		}
	}
	*h = HexColor{R: r, G: g, B: b, A: a}
	return nil
}
