// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/3v1n0/unity-sub005/style"
)

func TestPixmapTextureResizeOnlyWhenSizeDiffers(t *testing.T) {
	tex := NewPixmapTexture(10, 10)
	before := tex.Image()
	assert.False(t, tex.Resize(10, 10))
	assert.Same(t, before, tex.Image())
	assert.True(t, tex.Resize(20, 10))
	assert.NotSame(t, before, tex.Image())
}

func TestPixmapTextureRefCounting(t *testing.T) {
	tex := NewPixmapTexture(4, 4)
	tex.Retain()
	tex.Retain()
	assert.False(t, tex.Release())
	assert.True(t, tex.Release())
}

func TestCairoContextClearHonorsOpacity(t *testing.T) {
	tex := NewPixmapTexture(4, 4)
	ctx := NewCairoContext(tex)
	ctx.SetOpacity(0.5)
	ctx.Clear(color.RGBA{255, 0, 0, 200})
	_, _, _, a := tex.Image().At(1, 1).RGBA()
	assert.True(t, a > 0 && a < 0xffff)
}

type fakeTheme struct {
	img image.Image
	err error
}

func (f *fakeTheme) LoadTexture(path string) (image.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.img, nil
}

func TestDataPoolButtonFallsBackWithoutThemeDir(t *testing.T) {
	o := style.New()
	pool := NewDataPool(o, &fakeTheme{err: errors.New("no theme")})
	tex := pool.Button(style.ButtonClose, style.StateNormal)
	assert.NotNil(t, tex)
	w, h := tex.Size()
	assert.True(t, w > 0 && h > 0)
}

func TestDataPoolCachesButtonLookup(t *testing.T) {
	o := style.New()
	pool := NewDataPool(o, &fakeTheme{err: errors.New("none")})
	a := pool.Button(style.ButtonClose, style.StateNormal)
	b := pool.Button(style.ButtonClose, style.StateNormal)
	assert.Same(t, a, b)
}

func TestDataPoolInvalidatePreservesGlow(t *testing.T) {
	o := style.New()
	pool := NewDataPool(o, &fakeTheme{err: errors.New("none")})
	glow := pool.Glow()
	pool.Button(style.ButtonClose, style.StateNormal)
	pool.Invalidate()
	assert.Same(t, glow, pool.Glow())
	assert.Empty(t, pool.buttons)
}
