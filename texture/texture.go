// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture implements the decoration core's texture cache
// (spec.md §4.4): a server-side pixmap wrapper (PixmapTexture), a
// software 2-D rendering context over one (CairoContext), and the
// process-wide DataPool of cached window-button and glow textures.
// Modeled on core/sprite.go's "lazily (re)allocated *image.RGBA backing
// store" idiom, generalized from a single overlay sprite to a keyed
// pool of many small decoration assets, and on golang.org/x/image/draw
// for compositing onto them.
package texture

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/3v1n0/unity-sub005/compositor"
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/style"
	"github.com/3v1n0/unity-sub005/widget"
)

// PixmapTexture owns a software-rendered ARGB32 surface and the
// reference count of whoever is drawing into or sampling it (spec.md
// §4.4: "its destruction releases the context but the PixmapTexture may
// outlive it"). There is no GPU handle here: the compositor-facing
// texture upload is the collaborator's job (compositor.ThemeProvider);
// this package owns only the CPU-side pixels.
type PixmapTexture struct {
	pix  *image.RGBA
	refs int
}

// NewPixmapTexture allocates a transparent w×h surface.
func NewPixmapTexture(w, h int) *PixmapTexture {
	return &PixmapTexture{pix: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size implements widget.Texture.
func (p *PixmapTexture) Size() (w, h float64) {
	b := p.pix.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Image returns the backing *image.RGBA for compositing or upload.
func (p *PixmapTexture) Image() *image.RGBA { return p.pix }

// Retain increments the reference count; Release decrements it and
// reports whether it reached zero (the caller should then drop the
// pixmap).
func (p *PixmapTexture) Retain()         { p.refs++ }
func (p *PixmapTexture) Release() bool   { p.refs--; return p.refs <= 0 }
func (p *PixmapTexture) RefCount() int   { return p.refs }

// Resize replaces the backing surface if w,h differ from the current
// size, clearing it to transparent (spec.md §4.7 "Re-render the four
// side decoration textures if their sizes changed" implies textures are
// resized in place, not reallocated every paint when unchanged).
func (p *PixmapTexture) Resize(w, h int) bool {
	b := p.pix.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return false
	}
	p.pix = image.NewRGBA(image.Rect(0, 0, w, h))
	return true
}

// CairoContext is an ARGB32 2-D rendering context over one
// PixmapTexture (spec.md §4.4). The name nods at the teacher's paint
// package's role, not at any actual cairo binding: drawing here is
// plain Go image/draw + golang.org/x/image/draw composition, which is
// all the flat rectangles, rounded corners and glyph blits a decoration
// surface needs.
type CairoContext struct {
	tex     *PixmapTexture
	opacity float32
}

// NewCairoContext constructs a context over a freshly retained tex.
func NewCairoContext(tex *PixmapTexture) *CairoContext {
	tex.Retain()
	return &CairoContext{tex: tex, opacity: 1}
}

// Close releases the context's hold on its texture; the PixmapTexture
// itself is only freed once every retainer has released it.
func (c *CairoContext) Close() bool { return c.tex.Release() }

// Texture returns the backing PixmapTexture.
func (c *CairoContext) Texture() *PixmapTexture { return c.tex }

// SetOpacity implements widget.OpacityContext (spec.md §4.1
// SlidingLayout crossfade).
func (c *CairoContext) SetOpacity(op float32) { c.opacity = op }

func (c *CairoContext) scaledAlpha(a uint8) uint8 {
	return uint8(float32(a) * c.opacity)
}

// Clear fills the whole surface with col, honoring the context's
// current opacity.
func (c *CairoContext) Clear(col color.RGBA) {
	col.A = c.scaledAlpha(col.A)
	draw.Draw(c.tex.pix, c.tex.pix.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// FillRect alpha-blends col into r.
func (c *CairoContext) FillRect(r image.Rectangle, col color.RGBA) {
	col.A = c.scaledAlpha(col.A)
	draw.Draw(c.tex.pix, r, &image.Uniform{C: col}, image.Point{}, draw.Over)
}

// DrawQuad implements widget.QuadDrawer: it scales tex's image onto the
// clipped destination rect using golang.org/x/image/draw's
// high-quality CatmullRom scaler, the same package the teacher's
// core/sprite.go composites overlay sprites with.
func (c *CairoContext) DrawQuad(tex widget.Texture, dst, clip geom.Rect) {
	src, ok := tex.(Sampler)
	if !ok {
		return
	}
	r := rectToImage(dst).Intersect(rectToImage(clip))
	if r.Empty() {
		return
	}
	xdraw.CatmullRom.Scale(c.tex.pix, r, src.Image(), src.Image().Bounds(), xdraw.Over, nil)
}

func rectToImage(r geom.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
}

// Sampler is anything DrawQuad can sample from: a PixmapTexture or a
// plain decoded image.
type Sampler interface {
	Image() *image.RGBA
}

// ThemeLoader adapts an Oracle and a compositor.ThemeProvider into the
// image loading DataPool needs, keeping texture free of any direct file
// I/O — the compositor owns the theme's actual asset directory
// (spec.md §6.1 ThemeProvider.LoadTexture).
type ThemeLoader interface {
	LoadTexture(path string) (image.Image, error)
}

// DataPool is the process-wide texture cache (spec.md §4.4): one glow
// texture, window buttons at 1.0 scale, and window buttons per distinct
// DPI scale active across monitors.
type DataPool struct {
	oracle *style.Oracle
	theme  ThemeLoader

	glow *PixmapTexture

	buttons       map[buttonKey]*PixmapTexture
	scaledButtons map[float64]map[buttonKey]*PixmapTexture
}

type buttonKey struct {
	typ   style.ButtonType
	state style.ButtonState
}

// NewDataPool returns an empty pool bound to oracle and theme.
func NewDataPool(oracle *style.Oracle, theme ThemeLoader) *DataPool {
	return &DataPool{
		oracle:        oracle,
		theme:         theme,
		buttons:       make(map[buttonKey]*PixmapTexture),
		scaledButtons: make(map[float64]map[buttonKey]*PixmapTexture),
	}
}

// Glow returns the cached glow texture, building it from a baked-in
// blurred disc the first time it's requested.
func (p *DataPool) Glow() *PixmapTexture {
	if p.glow == nil {
		p.glow = buildGlowTexture(p.oracle.GlowSize(), p.oracle.GlowColor())
	}
	return p.glow
}

// Button returns the 1.0-scale texture for (typ, state), loading and
// caching it on first use.
func (p *DataPool) Button(typ style.ButtonType, state style.ButtonState) *PixmapTexture {
	key := buttonKey{typ, state}
	if tex, ok := p.buttons[key]; ok {
		return tex
	}
	tex := p.loadButton(typ, state)
	p.buttons[key] = tex
	return tex
}

// ScaledButton returns the texture for (typ, state) at the given DPI
// scale, loading and caching it on first use.
func (p *DataPool) ScaledButton(scale float64, typ style.ButtonType, state style.ButtonState) *PixmapTexture {
	byKey, ok := p.scaledButtons[scale]
	if !ok {
		byKey = make(map[buttonKey]*PixmapTexture)
		p.scaledButtons[scale] = byKey
	}
	key := buttonKey{typ, state}
	if tex, ok := byKey[key]; ok {
		return tex
	}
	tex := p.loadButton(typ, state)
	if scale > 0 && scale != 1 {
		b := tex.pix.Bounds()
		scaled := NewPixmapTexture(int(float64(b.Dx())*scale+0.5), int(float64(b.Dy())*scale+0.5))
		xdraw.CatmullRom.Scale(scaled.pix, scaled.pix.Bounds(), tex.pix, b, xdraw.Src, nil)
		tex = scaled
	}
	byKey[key] = tex
	return tex
}

func (p *DataPool) loadButton(typ style.ButtonType, state style.ButtonState) *PixmapTexture {
	path := p.oracle.WindowButtonFile(typ, state)
	if path != "" && p.theme != nil {
		if img, err := p.theme.LoadTexture(path); err == nil {
			return fromImage(img)
		}
		// TransientVisualError (spec.md §7): fall through to the
		// procedural fallback and let DrawWindowButton cover the gap.
	}
	return drawWindowButtonFallback(typ, state)
}

// Invalidate drops every cached texture except the glow (spec.md §4.4:
// "(any rebuilds all button textures, preserving the glow_texture)").
// Callers trigger this on theme change, DPI change, or monitor
// plug/unplug.
func (p *DataPool) Invalidate() {
	p.buttons = make(map[buttonKey]*PixmapTexture)
	p.scaledButtons = make(map[float64]map[buttonKey]*PixmapTexture)
}

func fromImage(img image.Image) *PixmapTexture {
	b := img.Bounds()
	tex := NewPixmapTexture(b.Dx(), b.Dy())
	draw.Draw(tex.pix, tex.pix.Bounds(), img, b.Min, draw.Src)
	return tex
}

// cursorCacheFrom adapts compositor.Screen.CursorCache so edge widgets
// resolve a themed cursor handle without this package importing
// anything driver-specific (spec.md §4.4 "Cursor handles per edge type
// are resolved via the compositor's cursor cache, not stored by the
// pool").
func cursorCacheFrom(screen compositor.Screen, shape string) any {
	return screen.CursorCache(shape)
}
