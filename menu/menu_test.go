// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/3v1n0/unity-sub005/compositor"
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/style"
)

func TestNewMenuEntrySetsNaturalSizeAndFlags(t *testing.T) {
	src := &recordingSource{}
	e := NewMenuEntry(style.New(), src, 0, compositor.IndicatorEntry{
		ID: "a", Label: "File", Visible: true, LabelSensitive: true,
	})

	w, h := style.New().MenuItemNaturalSize("File")
	assert.Equal(t, w+2*e.HPad, e.NaturalWidth())
	assert.Equal(t, h+2*e.VPad, e.NaturalHeight())
	assert.True(t, e.IsVisible())
	assert.True(t, e.IsSensitive())
}

func TestSetEntryUpdatesVisibilitySensitivityAndShowNow(t *testing.T) {
	src := &recordingSource{}
	e := NewMenuEntry(style.New(), src, 0, compositor.IndicatorEntry{ID: "a", Visible: true})
	assert.False(t, e.ShowNow())

	e.SetEntry(compositor.IndicatorEntry{ID: "a", Visible: false, ImageSensitive: true, ShowNow: true})

	assert.False(t, e.IsVisible())
	assert.True(t, e.IsSensitive())
	assert.True(t, e.ShowNow())
}

func TestButtonDownOpensMenuOnButtonOne(t *testing.T) {
	src := &recordingSource{}
	e := NewMenuEntry(style.New(), src, 0, compositor.IndicatorEntry{ID: "file", Visible: true})
	e.SetCoords(20, 5)
	e.SetSize(40, 16)

	e.ButtonDown(geom.Point{X: 20, Y: 5}, 1, 0)

	assert.Equal(t, "file", src.openedID)
	assert.Equal(t, geom.Point{X: 20, Y: 21}, src.openedAt)
}

func TestButtonDownMiddleClickFallsBackToMenuWhenActionIsNone(t *testing.T) {
	src := &recordingSource{}
	oracle := style.New()
	cfg := filepath.Join(t.TempDir(), "style.toml")
	assert.NoError(t, os.WriteFile(cfg, []byte("action_middle_click_titlebar = \"none\"\n"), 0o644))
	assert.NoError(t, oracle.Load(cfg))

	e := NewMenuEntry(oracle, src, 0, compositor.IndicatorEntry{ID: "edit", Visible: true})
	e.ButtonDown(geom.Point{}, 2, 0)

	assert.Equal(t, 1, src.opens)
	assert.Equal(t, "edit", src.openedID)
}

func TestButtonDownRightClickWithBoundActionDoesNotOpenMenu(t *testing.T) {
	src := &recordingSource{}
	e := NewMenuEntry(style.New(), src, 0, compositor.IndicatorEntry{ID: "help", Visible: true})

	e.ButtonDown(geom.Point{}, 3, 0)

	assert.Equal(t, 0, src.opens)
}
