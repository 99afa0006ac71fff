// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"

	"github.com/3v1n0/unity-sub005/geom"
)

func TestDrawTextFlatWhenFadeFromIsFullLength(t *testing.T) {
	tex := NewPixmapTexture(200, 30)
	ctx := NewCairoContext(tex)
	text := "Files"
	ctx.DrawText(text, geom.Point{X: 2, Y: 2}, basicfont.Face7x13, [4]uint8{255, 255, 255, 255}, len(text))

	var drawn bool
	b := tex.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y && !drawn; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := tex.Image().At(x, y).RGBA(); a > 0 {
				drawn = true
				break
			}
		}
	}
	assert.True(t, drawn)
}

func TestDrawTextFadesTrailingClusters(t *testing.T) {
	tex := NewPixmapTexture(300, 30)
	ctx := NewCairoContext(tex)
	text := "a long window title"
	ctx.DrawText(text, geom.Point{X: 2, Y: 2}, basicfont.Face7x13, [4]uint8{255, 255, 255, 255}, 5)
	assert.NotPanics(t, func() {
		ctx.DrawText(text, geom.Point{X: 2, Y: 2}, basicfont.Face7x13, [4]uint8{255, 255, 255, 255}, 0)
	})
}

func TestDrawRoundedRectFillsInterior(t *testing.T) {
	tex := NewPixmapTexture(40, 40)
	ctx := NewCairoContext(tex)
	ctx.DrawRoundedRect(geom.NewRect(5, 5, 20, 20), 4, [4]uint8{10, 20, 30, 255})
	_, _, _, a := tex.Image().At(15, 15).RGBA()
	assert.True(t, a > 0)
}

func TestDrawLineDrawsBetweenEndpoints(t *testing.T) {
	tex := NewPixmapTexture(40, 40)
	ctx := NewCairoContext(tex)
	ctx.DrawLine(geom.Point{X: 0, Y: 0}, geom.Point{X: 30, Y: 0}, 2, [4]uint8{255, 0, 0, 255})
	_, _, _, a := tex.Image().At(15, 0).RGBA()
	assert.True(t, a > 0)
}
