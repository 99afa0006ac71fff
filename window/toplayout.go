// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"github.com/3v1n0/unity-sub005/compositor"
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/menu"
	"github.com/3v1n0/unity-sub005/style"
	"github.com/3v1n0/unity-sub005/texture"
	"github.com/3v1n0/unity-sub005/title"
	"github.com/3v1n0/unity-sub005/widget"
)

// buttonSpacing is the fixed gap between adjacent window buttons; the
// style oracle's Padding only covers the strip's own edge insets
// (spec.md §4.3 padding_left/right/top/bottom), not inter-button gaps.
const buttonSpacing = 4

// topLayout is the Close/Minimize/Maximize buttons, the title and the
// application-menu strip that spec.md §4.7 step 4 describes as
// "top_layout" (spec.md §4.6 "crossfades with the title"). Like
// edge.EdgeBorders and menu.Strip it is a plain layout/registry, not
// itself a widget.Item: title bar positioning needs a flexible child
// (the sliding layout fills all width the buttons don't use) that
// widget.Layout's fixed natural-size-then-shrink algorithm doesn't
// model, so top_layout lays its children out by hand instead of
// embedding widget.Layout.
type topLayout struct {
	Close, Minimize, Maximize *Button
	Title                     *title.Title
	MenuStrip                 *menu.Strip
	Sliding                   *widget.SlidingLayout

	oracle *style.Oracle
}

// newTopLayout builds the buttons allowed by actions, a title seeded
// with text, and the always-shown-or-crossfading menu strip wrapping
// entries (spec.md §4.7 step 4, §4.6 OverrideMainItem). onClose,
// onMinimize and onToggleMaximize are the respective button callbacks;
// any may be nil.
func newTopLayout(oracle *style.Oracle, pool *texture.DataPool, actions compositor.Actions, maximized, active bool, text string, entries []*menu.MenuEntry, win compositor.XID, source compositor.IndicatorSource, onClose, onMinimize, onToggleMaximize func()) *topLayout {
	tl := &topLayout{oracle: oracle}

	if actions.Close {
		tl.Close = NewButton(oracle, pool, style.ButtonClose, onClose)
	}
	if actions.Minimize {
		tl.Minimize = NewButton(oracle, pool, style.ButtonMinimize, onMinimize)
	}
	if actions.Maximize || actions.MaximizeH || actions.MaximizeV {
		typ := style.ButtonMaximize
		if maximized {
			typ = style.ButtonUnmaximize
		}
		tl.Maximize = NewButton(oracle, pool, typ, onToggleMaximize)
	}
	for _, b := range tl.buttons() {
		b.SetActive(active)
	}

	tl.Title = title.NewTitle(oracle)
	tl.Title.SetText(text)

	dropdown := menu.NewMenuDropdown(oracle, source, win)
	layout := menu.NewMenuLayout(entries, dropdown, 4)
	tl.MenuStrip = menu.NewStrip(layout)

	tl.Sliding = widget.NewSlidingLayout(tl.Title, tl.MenuStrip)
	tl.Sliding.FadeInMS, tl.Sliding.FadeOutMS = 150, 150

	return tl
}

func (tl *topLayout) buttons() []*Button {
	var out []*Button
	for _, b := range []*Button{tl.Close, tl.Minimize, tl.Maximize} {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

// Items returns every hit-testable leaf: the buttons and the individual
// menu entries/dropdown (never MenuStrip itself, never Sliding — both
// are plain Draw-only registries, spec.md §4.2's mixer only ever holds
// leaves).
func (tl *topLayout) Items() []widget.Item {
	items := make([]widget.Item, 0, len(tl.buttons())+len(tl.MenuStrip.Layout.Entries)+1)
	for _, b := range tl.buttons() {
		items = append(items, b)
	}
	for _, e := range tl.MenuStrip.Layout.Entries {
		items = append(items, e)
	}
	items = append(items, tl.MenuStrip.Layout.Dropdown)
	return items
}

// SetActive propagates the window active flag to every button
// (spec.md §4.7 "a window transitioning to active rebuilds its four
// side textures" — buttons follow the analogous NORMAL/BACKDROP split).
func (tl *topLayout) SetActive(active bool) {
	for _, b := range tl.buttons() {
		b.SetActive(active)
	}
}

// SetMaximized swaps the Maximize button's glyph between MAXIMIZE and
// UNMAXIMIZE.
func (tl *topLayout) SetMaximized(maximized bool) {
	if tl.Maximize == nil {
		return
	}
	if maximized {
		tl.Maximize.SetType(style.ButtonUnmaximize)
	} else {
		tl.Maximize.SetType(style.ButtonMaximize)
	}
}

// Relayout places the buttons at their natural size from the left edge
// of rect, then gives the sliding layout (title + menu) the rest of the
// width; within that, Title.AlignX computes its own clamped offset
// (spec.md §4.6), and the menu strip is relaid against the same content
// rect so MenuLayout.Relayout can push/pop overflow as width changes.
func (tl *topLayout) Relayout(rect geom.Rect) {
	pad := tl.oracle.Padding()
	x := rect.X + pad.Left
	contentY, contentH := rect.Y+pad.Top, rect.H-pad.Top-pad.Bottom

	for _, b := range tl.buttons() {
		w, h := b.NaturalWidth(), b.NaturalHeight()
		if h > contentH {
			h = contentH
		}
		b.SetCoords(x, contentY+(contentH-h)/2)
		b.SetSize(w, h)
		x += w + buttonSpacing
	}

	remaining := rect.Right() - pad.Right - x
	if remaining < 0 {
		remaining = 0
	}

	tl.Sliding.SetCoords(x, contentY)
	tl.Sliding.SetSize(remaining, contentH)

	titleX := tl.Title.AlignX(x+tl.oracle.TitleIndent(), x, remaining)
	tl.Title.SetCoords(titleX, contentY)
	titleW := remaining - (titleX - x)
	if titleW < 0 {
		titleW = 0
	}
	tl.Title.SetSize(titleW, contentH)

	tl.MenuStrip.SetCoords(x, contentY)
	tl.MenuStrip.SetSize(remaining, contentH)
}

// Draw renders the buttons then the title/menu crossfade, front-to-back
// matching the mixer's hit-test ordering in Items().
func (tl *topLayout) Draw(ctx any, transform any, clip geom.Rect) {
	for _, b := range tl.buttons() {
		b.Draw(ctx, transform, clip)
	}
	tl.Sliding.Draw(ctx, transform, clip)
}
