// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/style"
	"github.com/3v1n0/unity-sub005/texture"
	"github.com/3v1n0/unity-sub005/widget"
)

// Button is one of the Close/Minimize/Maximize/Unmaximize window buttons
// that make up part of top_layout (spec.md §4.7 step 4). It is a
// widget.TexturedItem whose texture is re-fetched from the texture.DataPool
// every time its style.ButtonState changes, mirroring the state-keyed
// lookup spec.md §4.3/§4.4 describe for window_button_file / DataPool.
type Button struct {
	*widget.TexturedItem

	Oracle *style.Oracle
	Pool   *texture.DataPool
	Type   style.ButtonType

	state   style.ButtonState
	active  bool
	onClick func()
}

// NewButton returns a Button of typ, bound to oracle/pool for texture
// lookup, invoking onClick on a completed button-1 press+release.
func NewButton(oracle *style.Oracle, pool *texture.DataPool, typ style.ButtonType, onClick func()) *Button {
	b := &Button{Oracle: oracle, Pool: pool, Type: typ, onClick: onClick, active: true}
	b.TexturedItem = widget.NewTexturedItem(widget.KindButton, b, nil)
	b.refreshTexture()
	return b
}

// SetType swaps the button's glyph/action kind — used to flip between
// Maximize and Unmaximize as the window's maximized state changes
// (spec.md §4.7 step 4's "Maximize" button covers both directions).
func (b *Button) SetType(t style.ButtonType) {
	if b.Type == t {
		return
	}
	b.Type = t
	b.refreshTexture()
}

// SetActive toggles between the NORMAL/BACKDROP state families, mirroring
// the window's own active flag (spec.md §4.7 "a window transitioning to
// active rebuilds its four side textures" — buttons follow the same
// active/backdrop split via style.ButtonState).
func (b *Button) SetActive(active bool) {
	if b.active == active {
		return
	}
	b.active = active
	b.refreshTexture()
}

func (b *Button) setState(s style.ButtonState) {
	if b.state == s {
		return
	}
	b.state = s
	b.refreshTexture()
}

// backdropState maps a plain state to its BACKDROP_* sibling when the
// window is inactive (spec.md §4.3 ButtonState enumerates both families).
func (b *Button) backdropState() style.ButtonState {
	if b.active {
		return b.state
	}
	switch b.state {
	case style.StatePrelight:
		return style.StateBackdropPrelight
	case style.StatePressed:
		return style.StateBackdropPressed
	default:
		return style.StateBackdrop
	}
}

func (b *Button) refreshTexture() {
	if !b.IsSensitive() {
		b.TexturedItem.SetTexture(b.Pool.Button(b.Type, style.StateDisabled))
		return
	}
	b.TexturedItem.SetTexture(b.Pool.Button(b.Type, b.backdropState()))
}

// SetSensitive overrides Base.SetSensitive so a disabled button also
// switches to the DISABLED texture (spec.md §4.4 ButtonState includes
// DISABLED as one of the seven render states).
func (b *Button) SetSensitive(v bool) {
	b.TexturedItem.Base().SetSensitive(v)
	b.refreshTexture()
}

// Motion tracks hover for the PRELIGHT state.
func (b *Button) Motion(p geom.Point, t int64) {
	if !b.IsSensitive() {
		return
	}
	if b.state != style.StatePressed {
		b.setState(style.StatePrelight)
	}
}

// ButtonDown enters the PRESSED state on button 1.
func (b *Button) ButtonDown(p geom.Point, button int, t int64) {
	if !b.IsSensitive() || button != 1 {
		return
	}
	b.setState(style.StatePressed)
}

// ButtonUp fires onClick if the release still lands on the button
// (spec.md §4.2 "button_up outside any widget is still delivered to the
// grabbed owner" — a release outside the rect is a drag-off-cancel, not a
// click).
func (b *Button) ButtonUp(p geom.Point, button int, t int64) {
	if button != 1 {
		return
	}
	wasPressed := b.state == style.StatePressed
	inside := b.Geometry().Contains(p)
	if inside {
		b.setState(style.StatePrelight)
	} else {
		b.setState(style.StateNormal)
	}
	if wasPressed && inside && b.onClick != nil {
		b.onClick()
	}
}
