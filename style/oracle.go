// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style implements the decoration core's single configuration
// reader, Oracle (spec.md §4.3): border/padding/corner-radius/shadow
// parameters, window-button asset paths, WM action bindings, and the
// title/menu measurement helpers every other package calls into rather
// than reading configuration itself. Modeled on core/settings.go's
// struct-tag default/min/step convention and its TOML-backed load/save
// path (base/iox/tomlx over github.com/pelletier/go-toml/v2), narrowed
// to the single always-on style sheet a decoration core needs instead
// of the teacher's many independently toggled *SettingsData groups.
package style

import (
	"image/color"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/jinzhu/copier"

	"github.com/3v1n0/unity-sub005/base/iox/tomlx"
	"github.com/3v1n0/unity-sub005/geom"
)

// Action is one of the window-manager actions a titlebar click can be
// bound to (spec.md §4.3 window_manager_action).
type Action string

const (
	ActionNone             Action = "none"
	ActionToggleShade      Action = "toggle_shade"
	ActionToggleMaximize   Action = "toggle_maximize"
	ActionToggleMaximizeH  Action = "toggle_maximize_h"
	ActionToggleMaximizeV  Action = "toggle_maximize_v"
	ActionMinimize         Action = "minimize"
	ActionShade            Action = "shade"
	ActionMenu             Action = "menu"
	ActionLower            Action = "lower"
)

// ClickEvent names which titlebar click a WM action binding applies to.
type ClickEvent int

const (
	DoubleClick ClickEvent = iota
	MiddleClick
	RightClick
)

// ButtonType identifies one of the four window-button kinds.
type ButtonType int

const (
	ButtonClose ButtonType = iota
	ButtonMinimize
	ButtonMaximize
	ButtonUnmaximize
)

// ButtonState identifies one of the seven button render states.
type ButtonState int

const (
	StateNormal ButtonState = iota
	StatePrelight
	StatePressed
	StateDisabled
	StateBackdrop
	StateBackdropPrelight
	StateBackdropPressed
)

// Alignment is the title widget's horizontal alignment policy.
type Alignment struct {
	// Kind selects among Left, Center, Right, Floating; Floating uses F.
	Kind AlignKind
	F    float64
}

type AlignKind int

const (
	AlignLeft AlignKind = iota
	AlignCenter
	AlignRight
	AlignFloating
)

// Data holds every tunable the oracle exposes, with struct tags giving
// the default/min/step the teacher's DeviceSettingsData convention uses
// (core/settings.go). Values are read by the config loader under the
// TOML key each field's explicit toml struct tag names.
type Data struct {
	BorderTop    float64 `toml:"border_top" default:"1" min:"0" step:"1"`
	BorderLeft   float64 `toml:"border_left" default:"1" min:"0" step:"1"`
	BorderRight  float64 `toml:"border_right" default:"1" min:"0" step:"1"`
	BorderBottom float64 `toml:"border_bottom" default:"28" min:"0" step:"1"`

	InputBorder float64 `toml:"input_border" default:"10" min:"0" max:"40" step:"1"`

	PaddingLeft   float64 `toml:"padding_left" default:"8" min:"0" step:"1"`
	PaddingRight  float64 `toml:"padding_right" default:"8" min:"0" step:"1"`
	PaddingTop    float64 `toml:"padding_top" default:"4" min:"0" step:"1"`
	PaddingBottom float64 `toml:"padding_bottom" default:"4" min:"0" step:"1"`

	CornerRadius float64 `toml:"corner_radius" default:"8" min:"0" max:"32" step:"1"`

	ShadowOffsetX float64 `toml:"shadow_offset_x" default:"0" step:"1"`
	ShadowOffsetY float64 `toml:"shadow_offset_y" default:"4" step:"1"`

	ActiveShadowRadius   float64 `toml:"active_shadow_radius" default:"16" min:"1" max:"64" step:"1"`
	InactiveShadowRadius float64 `toml:"inactive_shadow_radius" default:"10" min:"1" max:"64" step:"1"`
	ActiveShadowColor    HexColor `toml:"active_shadow_color" default:"#00000080"`
	InactiveShadowColor  HexColor `toml:"inactive_shadow_color" default:"#00000050"`

	GlowSize  float64  `toml:"glow_size" default:"8" min:"0" max:"32" step:"1"`
	GlowColor HexColor `toml:"glow_color" default:"#ffffffa0"`

	TitleAlignment         float64 `toml:"title_alignment" default:"0.5" min:"0" max:"1" step:"0.05"`
	TitleIndent            float64 `toml:"title_indent" default:"8" min:"0" step:"1"`
	TitleFadingPixels      float64 `toml:"title_fading_pixels" default:"24" min:"0" max:"128" step:"1"`
	TitlebarFont           string  `toml:"titlebar_font" default:"sans-serif bold 11"`
	TitlebarUsesSystemFont bool    `toml:"titlebar_uses_system_font" default:"true"`

	GrabWaitMS int `toml:"grab_wait_ms" default:"150" min:"0" max:"2000" step:"10"`

	DoubleClickMaxDistance    int `toml:"double_click_max_distance" default:"5" min:"0" max:"100" step:"1"`
	DoubleClickMaxTimeDeltaMS int `toml:"double_click_max_time_delta_ms" default:"400" min:"0" max:"2000" step:"10"`

	ActionDoubleClickTitlebar Action `toml:"action_double_click_titlebar" default:"toggle_maximize"`
	ActionMiddleClickTitlebar Action `toml:"action_middle_click_titlebar" default:"lower"`
	ActionRightClickTitlebar  Action `toml:"action_right_click_titlebar" default:"menu"`

	ButtonDir string `toml:"button_dir" default:""`
}

// Defaults resets d to its struct-tag defaults, mirroring the teacher's
// DeviceSettingsData.Defaults pattern (core/settings.go) but computed
// directly rather than through reflectx field-walking, since the
// decoration core's style sheet is a single flat struct, not a
// heterogeneous settings registry.
func (d *Data) Defaults() {
	*d = Data{
		BorderTop: 1, BorderLeft: 1, BorderRight: 1, BorderBottom: 28,
		InputBorder:   10,
		PaddingLeft:   8, PaddingRight: 8, PaddingTop: 4, PaddingBottom: 4,
		CornerRadius:  8,
		ShadowOffsetX: 0, ShadowOffsetY: 4,
		ActiveShadowRadius: 16, InactiveShadowRadius: 10,
		ActiveShadowColor:   HexColor{0, 0, 0, 0x80},
		InactiveShadowColor: HexColor{0, 0, 0, 0x50},
		GlowSize:            8,
		GlowColor:           HexColor{0xff, 0xff, 0xff, 0xa0},
		TitleAlignment:      0.5, TitleIndent: 8, TitleFadingPixels: 24,
		TitlebarFont:           "sans-serif bold 11",
		TitlebarUsesSystemFont: true,
		GrabWaitMS:                150,
		DoubleClickMaxDistance:    5,
		DoubleClickMaxTimeDeltaMS: 400,
		ActionDoubleClickTitlebar: ActionToggleMaximize,
		ActionMiddleClickTitlebar: ActionLower,
		ActionRightClickTitlebar:  ActionMenu,
	}
}

// Oracle is the process-wide style singleton (spec.md §4.3: "the oracle
// is the only component that reads configuration; all others receive
// its outputs"). The zero value is not usable; construct with New.
type Oracle struct {
	mu   sync.RWMutex
	data Data

	onThemeChanged []func()
	onDPIChanged   []func(scale float64)

	dpiScale  float64
	titleFace *shapedFace
}

// New returns an Oracle initialized to built-in defaults.
func New() *Oracle {
	o := &Oracle{dpiScale: 1}
	o.data.Defaults()
	return o
}

// Load reads the style sheet from filename (TOML), falling back to and
// logging a TransientVisualError (spec.md §7) if the file is missing or
// malformed — the oracle always has a usable, if stale, Data.
func (o *Oracle) Load(filename string) error {
	var next Data
	next.Defaults()
	if err := tomlx.Open(&next, filename); err != nil {
		slog.Warn("style: failed to load config, keeping previous values", "file", filename, "err", err)
		return err
	}
	o.mu.Lock()
	o.data = next
	o.mu.Unlock()
	o.fireThemeChanged()
	return nil
}

// Save writes the current style sheet to filename.
func (o *Oracle) Save(filename string) error {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return tomlx.Save(&o.data, filename)
}

// Reset restores built-in defaults via a deep copy (jinzhu/copier),
// matching the teacher's ResetSettings semantics (core/settings.go)
// without needing reflectx's generic field walk for a single flat
// struct.
func (o *Oracle) Reset() {
	var d Data
	d.Defaults()
	o.mu.Lock()
	copier.Copy(&o.data, &d)
	o.mu.Unlock()
	o.fireThemeChanged()
}

// Watch starts an fsnotify watch on filename, reloading it (and firing
// theme_changed) on every write, the way a desktop app watches its own
// settings file for external edits (SPEC_FULL.md §2). The returned stop
// func closes the watcher; errors from individual reloads are logged via
// Load itself and don't stop the watch.
func (o *Oracle) Watch(filename string) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(filename)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name == filename && (ev.Op&(fsnotify.Write|fsnotify.Create) != 0) {
					o.Load(filename)
				}
			case werr, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("style: watch error", "err", werr)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		w.Close()
	}, nil
}

// ConfigPath returns the default per-user style config path,
// ~/.config/<app>/style.toml, resolved via go-homedir so it also works
// when $HOME is unset but the OS user database has an entry.
func ConfigPath(app string) (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", app, "style.toml"), nil
}

// OnThemeChanged registers a callback fired after Load or Reset.
func (o *Oracle) OnThemeChanged(f func()) {
	o.onThemeChanged = append(o.onThemeChanged, f)
}

// OnDPIChanged registers a callback fired by SetDPIScale.
func (o *Oracle) OnDPIChanged(f func(scale float64)) {
	o.onDPIChanged = append(o.onDPIChanged, f)
}

func (o *Oracle) fireThemeChanged() {
	for _, f := range o.onThemeChanged {
		f()
	}
}

// SetDPIScale updates the active DPI scale and fires dpi_changed if it
// actually moved (spec.md §4.3).
func (o *Oracle) SetDPIScale(scale float64) {
	o.mu.Lock()
	changed := o.dpiScale != scale
	o.dpiScale = scale
	o.mu.Unlock()
	if changed {
		for _, f := range o.onDPIChanged {
			f(scale)
		}
	}
}

// DPIScale returns the current DPI scale.
func (o *Oracle) DPIScale() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.dpiScale
}

// Border returns the four decoration extents around the client area.
func (o *Oracle) Border() geom.Insets {
	o.mu.RLock()
	defer o.mu.RUnlock()
	d := o.data
	return geom.Insets{Top: d.BorderTop, Left: d.BorderLeft, Right: d.BorderRight, Bottom: d.BorderBottom}
}

// InputBorder returns the extra input-only frame pixels outside Border.
func (o *Oracle) InputBorder() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data.InputBorder
}

// Padding returns the inner spacing on all four sides.
func (o *Oracle) Padding() geom.Insets {
	o.mu.RLock()
	defer o.mu.RUnlock()
	d := o.data
	return geom.Insets{Left: d.PaddingLeft, Right: d.PaddingRight, Top: d.PaddingTop, Bottom: d.PaddingBottom}
}

// CornerRadius returns the decoration's corner radius, shared by all
// four corners (spec.md doesn't ask for per-corner radii on our own
// frame — only on a client's GTK-drawn one, see wire.GtkBorderRadius).
func (o *Oracle) CornerRadius() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data.CornerRadius
}

// ShadowOffset returns the shadow's offset from the border rect.
func (o *Oracle) ShadowOffset() geom.Point {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return geom.Point{X: o.data.ShadowOffsetX, Y: o.data.ShadowOffsetY}
}

// ActiveShadowColor, ActiveShadowRadius, InactiveShadowColor,
// InactiveShadowRadius, GlowSize and GlowColor are the shadow engine's
// remaining inputs (spec.md §4.3/§4.9).
func (o *Oracle) ActiveShadowColor() color.RGBA {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data.ActiveShadowColor.RGBA()
}

func (o *Oracle) ActiveShadowRadius() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data.ActiveShadowRadius
}

func (o *Oracle) InactiveShadowColor() color.RGBA {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data.InactiveShadowColor.RGBA()
}

func (o *Oracle) InactiveShadowRadius() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data.InactiveShadowRadius
}

func (o *Oracle) GlowSize() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data.GlowSize
}

func (o *Oracle) GlowColor() color.RGBA {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data.GlowColor.RGBA()
}

// TitleAlignment returns the configured title alignment as a Floating
// alignment at the configured fraction — spec.md §4.3 only exposes a
// single float in [0,1] from configuration; LEFT/CENTER/RIGHT are the
// f=0, f=0.5, f=1 special cases a caller may also construct directly.
func (o *Oracle) TitleAlignment() Alignment {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return Alignment{Kind: AlignFloating, F: o.data.TitleAlignment}
}

func (o *Oracle) TitleIndent() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data.TitleIndent
}

func (o *Oracle) TitleFadingPixels() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data.TitleFadingPixels
}

// GrabWait returns the grab_wait delay in milliseconds.
func (o *Oracle) GrabWait() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data.GrabWaitMS
}

// DoubleClickDistance and DoubleClickTimeDelta bound what counts as a
// double-click on the grab edge (spec.md §4.5).
func (o *Oracle) DoubleClickDistance() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data.DoubleClickMaxDistance
}

func (o *Oracle) DoubleClickTimeDelta() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.data.DoubleClickMaxTimeDeltaMS
}

// WindowManagerAction returns the Action bound to event.
func (o *Oracle) WindowManagerAction(event ClickEvent) Action {
	o.mu.RLock()
	defer o.mu.RUnlock()
	switch event {
	case DoubleClick:
		return o.data.ActionDoubleClickTitlebar
	case MiddleClick:
		return o.data.ActionMiddleClickTitlebar
	case RightClick:
		return o.data.ActionRightClickTitlebar
	default:
		return ActionNone
	}
}

// WindowButtonFile returns the themed asset path for (typ, state),
// falling back to the vector-drawn path (no file) when ButtonDir is
// empty — callers detect that case by checking for "" and fall back to
// DrawWindowButton (spec.md §4.4 "missing in the theme ... generated by
// the style oracle's vector fallback").
func (o *Oracle) WindowButtonFile(typ ButtonType, state ButtonState) string {
	o.mu.RLock()
	dir := o.data.ButtonDir
	o.mu.RUnlock()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, buttonFileName(typ, state))
}

func buttonFileName(typ ButtonType, state ButtonState) string {
	return buttonTypeName(typ) + "_" + buttonStateName(state) + ".png"
}

func buttonTypeName(t ButtonType) string {
	switch t {
	case ButtonClose:
		return "close"
	case ButtonMinimize:
		return "minimize"
	case ButtonMaximize:
		return "maximize"
	case ButtonUnmaximize:
		return "unmaximize"
	default:
		return "unknown"
	}
}

func buttonStateName(s ButtonState) string {
	switch s {
	case StateNormal:
		return "normal"
	case StatePrelight:
		return "prelight"
	case StatePressed:
		return "pressed"
	case StateDisabled:
		return "disabled"
	case StateBackdrop:
		return "backdrop"
	case StateBackdropPrelight:
		return "backdrop_prelight"
	case StateBackdropPressed:
		return "backdrop_pressed"
	default:
		return "unknown"
	}
}
