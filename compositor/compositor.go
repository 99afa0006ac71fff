// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compositor defines the contracts the decoration core consumes
// from, and exposes to, the compositor host (spec.md §1, §6). The host
// process itself — window lifecycle, the GL paint pump, the X event feed —
// is explicitly out of scope; only the interfaces it must satisfy (and the
// ones it calls into) live here.
package compositor

import (
	"time"

	"github.com/3v1n0/unity-sub005/cursor"
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/wire"
)

// XID is an opaque X11 window id, owned externally by the compositor.
type XID uint32

// PaintMask is the bitset of paint-pass flags from spec.md §6.1.
type PaintMask uint32

const (
	MaskScreenTransformed PaintMask = 1 << iota
	MaskWindowTransformed
	MaskWindowBlend
	MaskWindowTranslucent
)

// Has reports whether flag is set in m.
func (m PaintMask) Has(flag PaintMask) bool { return m&flag != 0 }

// PaintAttrib mirrors GLWindowPaintAttrib: the per-pass opacity/brightness
// attributes the compositor hands every window during a paint pass.
type PaintAttrib struct {
	Opacity    float32
	Brightness float32
	Saturation float32
}

// Matrix is a stand-in for the compositor's GLMatrix: an opaque transform
// applied to a paint pass. The core never inspects its contents, only
// threads it through to texture draw calls.
type Matrix [16]float32

// Identity returns the identity transform.
func Identity() Matrix {
	var m Matrix
	for i := 0; i < 4; i++ {
		m[i*4+i] = 1
	}
	return m
}

// Region is a compositor-side clip region: a set of rectangles. nil means
// "unbounded" (used under [MaskWindowTransformed], spec.md §4.7).
type Region []geom.Rect

// WindowState mirrors the small set of EWMH/ICCCM window state bits the
// core reasons about (spec.md §3 `elements` derivation inputs).
type WindowState struct {
	Maximized   bool
	Shaded      bool
	Fullscreen  bool
	Unredirected bool // DESIGN.md supplement: unredirected fullscreen skip
}

// Actions mirrors `_NET_WM_ALLOWED_ACTIONS` bits relevant to decoration
// (which buttons/edges to build, spec.md §4.5, §4.7).
type Actions struct {
	Move        bool
	Resize      bool
	Minimize    bool
	Maximize    bool
	MaximizeH   bool
	MaximizeV   bool
	Close       bool
	Shade       bool
}

// Window is the per-window accessor surface consumed from the compositor
// host (spec.md §6.1). Implementations are owned by the host; the core
// only ever holds and calls through this interface.
type Window interface {
	ID() XID
	Frame() XID
	IsViewable() bool
	Shaded() bool
	State() WindowState
	WindowActions() Actions
	MwmDecorated() bool
	OverrideRedirect() bool
	Alpha() bool

	Geometry() geom.Rect
	ServerGeometry() geom.Rect
	Border() geom.Insets
	Input() geom.Insets
	Region() compositorRegion
	DefaultViewport() int
	InputRect() geom.Rect
	BorderRect() geom.Rect

	Title() string

	SetWindowFrameExtents(border, input geom.Insets)
	UpdateFrameRegion()
	UpdateWindowOutputExtents()
	DamageOutputExtents()

	// SetCursor sets the pointer shape shown over this window's frame
	// (spec.md §4.5 "on hover, an edge sets the X cursor shape"); the
	// host owns the actual cursor theme lookup (compositor.Screen's
	// CursorCache), this only asks it to apply one.
	SetCursor(shape cursor.Shape)

	Close(t time.Time)
	Minimize()
	Maximize(stateBits int)
	Shade()
	Unshade()
}

// compositorRegion is the window's occupied screen region, used by the
// shadow engine to subtract the client area from the shadow quads
// (spec.md §4.9). It is a named alias (not geom.Rect) because a window
// region can be non-rectangular once shape is involved.
type compositorRegion = Region

// Screen is the process-wide "screen oracle" (spec.md §6.1).
type Screen interface {
	Display() any
	Root() XID
	Viewport() geom.Rect
	ActiveWindow() Window
	FindWindow(id XID) Window
	CursorCache(shape string) any
	ShapeRectangles(w Window) ([]geom.Rect, geom.Point, error)
	ShapeEventBase() int
}

// WindowManager is the subset of window-manager actions the core invokes
// directly (spec.md §6.1).
type WindowManager interface {
	MonitorGeometryIn(r geom.Rect) int
	GetWindowName(id XID) string
	GetStringProperty(id XID, atom string) (string, bool)
	GetCardinalProperty(id XID, atom string) ([]uint32, bool)
	IsScaleActive() bool
	Lower(id XID)
	Raise(id XID)

	// SendMoveResize emits a `_NET_WM_MOVERESIZE` client message
	// targeting win (spec.md §4.5, §6.3).
	SendMoveResize(win XID, m wire.MoveResize)
}

// ForceQuitDialog is the lifecycle hook into the (out-of-scope) rendered
// force-quit dialog: the core only drives creation/dismissal/positioning,
// never draws it (spec.md §1, §4.7). Reposition is called from
// update_decoration_position's step 5 ("reposition the force-quit dialog
// if present", spec.md §4.7) whenever the owning window's frame moves.
type ForceQuitDialog interface {
	Show(id XID, countdown time.Duration)
	Reposition(frame geom.Rect)
	Dismiss()
}

// IndicatorSource is the application-menu data feed (spec.md §1): entries
// and geometry sync, owned externally.
type IndicatorSource interface {
	Entries(id XID) []IndicatorEntry
	OpenMenu(entryID string, pos geom.Point)
	SyncGeometry(id XID, entryID string, rect geom.Rect)
}

// IndicatorEntry is one application-menu entry as exposed by the
// [IndicatorSource] (spec.md §4.6 `MenuEntry`).
type IndicatorEntry struct {
	ID              string
	Label           string
	LabelSensitive  bool
	ImageSensitive  bool
	Visible         bool
	Active          bool
	ShowNow         bool
}

// ThemeProvider is the icon/theme raster asset oracle (spec.md §1): file
// paths and cached textures, owned externally.
type ThemeProvider interface {
	IconPath(name string, size int) (string, bool)
	LoadTexture(path string) (any, error)
}
