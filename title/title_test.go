// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package title

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font"

	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/style"
)

func TestSetTextUpdatesNaturalSize(t *testing.T) {
	o := style.New()
	title := NewTitle(o)
	title.SetText("Files")
	w1 := title.NaturalWidth()

	title.SetText("Files - a much longer window title")
	w2 := title.NaturalWidth()

	assert.True(t, w2 > w1)
}

func TestAlignXLeftDoesNotClamp(t *testing.T) {
	o := style.New()
	// Left alignment is title_alignment = 0 (floating with f = 0).
	path := filepath.Join(t.TempDir(), "style.toml")
	assert.NoError(t, os.WriteFile(path, []byte("title_alignment = 0.0\n"), 0o644))
	assert.NoError(t, o.Load(path))
	title := NewTitle(o)
	title.SetText("Files")
	x := title.AlignX(42, 0, 500)
	assert.Equal(t, 42.0, x)
}

type recordingCanvas struct {
	text     string
	fadeFrom int
	drawn    bool
}

func (c *recordingCanvas) DrawText(text string, at geom.Point, face font.Face, col [4]uint8, fadeFrom int) {
	c.text = text
	c.fadeFrom = fadeFrom
	c.drawn = true
}

func (c *recordingCanvas) DrawRoundedRect(r geom.Rect, radius float64, col [4]uint8) {}
func (c *recordingCanvas) DrawLine(from, to geom.Point, width float64, col [4]uint8) {}

func TestDrawFadesWhenNarrowerThanNatural(t *testing.T) {
	o := style.New()
	title := NewTitle(o)
	title.SetText("A fairly long window title that will not fit")
	natW := title.NaturalWidth()

	title.SetCoords(0, 0)
	title.SetSize(natW/2, 20)

	canvas := &recordingCanvas{}
	title.Draw(canvas, nil, geom.NewRect(0, 0, natW, 100))

	assert.True(t, canvas.drawn)
	assert.Less(t, canvas.fadeFrom, len(title.Text()))
}

func TestDrawFlatWhenWideEnough(t *testing.T) {
	o := style.New()
	title := NewTitle(o)
	title.SetText("Files")
	natW := title.NaturalWidth()

	title.SetCoords(0, 0)
	title.SetSize(natW+50, 20)

	canvas := &recordingCanvas{}
	title.Draw(canvas, nil, geom.NewRect(0, 0, natW+50, 100))

	assert.Equal(t, len(title.Text()), canvas.fadeFrom)
}

func TestDrawSkipsNonCanvasContext(t *testing.T) {
	o := style.New()
	title := NewTitle(o)
	title.SetText("Files")
	title.SetSize(100, 20)
	assert.NotPanics(t, func() {
		title.Draw("not a canvas", nil, geom.NewRect(0, 0, 100, 100))
	})
}
