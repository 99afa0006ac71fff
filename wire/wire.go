// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wire defines the EWMH-level constants and message payloads the
// decoration core exchanges with window-manager clients (spec.md §6.3).
// It owns no X11 connection of its own — encoding/decoding only — the
// connection itself is a [compositor] concern.
package wire

// Atom is an opaque interned X atom id, owned by the compositor host.
type Atom uint32

// Well-known atom names the core cares about. The compositor resolves
// these names to [Atom] values; the core never interns atoms itself.
const (
	AtomNetWMMoveResize        = "_NET_WM_MOVERESIZE"
	AtomNetRequestFrameExtents = "_NET_REQUEST_FRAME_EXTENTS"
	AtomNetFrameExtents        = "_NET_FRAME_EXTENTS"
	AtomUnityGtkBorderRadius   = "_UNITY_GTK_BORDER_RADIUS"
	AtomToolkitForceQuitDialog = "_TOOLKIT_ACTION_FORCE_QUIT_DIALOG"
	AtomNetActiveWindow        = "_NET_ACTIVE_WINDOW"
	AtomMwmHints               = "_MOTIF_WM_HINTS"
	AtomNetWMAllowedActions    = "_NET_WM_ALLOWED_ACTIONS"
	AtomWMName                 = "WM_NAME"
	AtomNetWMName              = "_NET_WM_NAME"
	AtomNetWMVisibleName       = "_NET_WM_VISIBLE_NAME"
)

// SupportedAtoms is the list [manager.Manager] appends to the compositor's
// `_NET_SUPPORTED` property (spec.md §6.2).
func SupportedAtoms() []string {
	return []string{AtomUnityGtkBorderRadius, AtomNetRequestFrameExtents}
}

// MoveResizeDirection is the `direction` field of a `_NET_WM_MOVERESIZE`
// client message, exact EWMH values per spec.md §6.3.
type MoveResizeDirection int32

const (
	SizeTopLeft     MoveResizeDirection = 0
	SizeTop         MoveResizeDirection = 1
	SizeTopRight    MoveResizeDirection = 2
	SizeRight       MoveResizeDirection = 3
	SizeBottomRight MoveResizeDirection = 4
	SizeBottom      MoveResizeDirection = 5
	SizeBottomLeft  MoveResizeDirection = 6
	SizeLeft        MoveResizeDirection = 7
	Move            MoveResizeDirection = 8
	SizeKeyboard    MoveResizeDirection = 9
	MoveKeyboard    MoveResizeDirection = 10
	Cancel          MoveResizeDirection = 11
)

// MoveResize is the decoded payload of a `_NET_WM_MOVERESIZE` client
// message: `l[0..4] = (root_x, root_y, direction, button, 1)`.
type MoveResize struct {
	RootX, RootY int32
	Direction    MoveResizeDirection
	Button       int32
}

// Encode returns the five `l[]` longs of the client message.
func (m MoveResize) Encode() [5]int32 {
	return [5]int32{m.RootX, m.RootY, int32(m.Direction), m.Button, 1}
}

// FrameExtents is the `_NET_FRAME_EXTENTS` reply property:
// `CARDINAL[4] = (left, right, top, bottom)`.
type FrameExtents struct {
	Left, Right, Top, Bottom uint32
}

// GtkBorderRadius is the `_UNITY_GTK_BORDER_RADIUS` client property:
// `CARDINAL[4] = (top_left, top_right, bottom_left, bottom_right)`.
type GtkBorderRadius struct {
	TopLeft, TopRight, BottomLeft, BottomRight uint32
}

// ClientBorders derives the four per-corner maxima spec.md §6.3 describes:
// "the four maxima are computed from adjacent values".
func (g GtkBorderRadius) ClientBorders() (top, left, right, bottom uint32) {
	top = maxU(g.TopLeft, g.TopRight)
	bottom = maxU(g.BottomLeft, g.BottomRight)
	left = maxU(g.TopLeft, g.BottomLeft)
	right = maxU(g.TopRight, g.BottomRight)
	return
}

func maxU(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// MaximizeState is the bitset window.Controller passes to
// compositor.Window.Maximize, mirroring `_NET_WM_STATE_MAXIMIZED_HORZ`
// and `_NET_WM_STATE_MAXIMIZED_VERT`.
type MaximizeState int

const (
	MaximizeHorz MaximizeState = 1 << iota
	MaximizeVert
	MaximizeBoth = MaximizeHorz | MaximizeVert
)

// ForceQuitDialog is the decoded payload of a
// `_TOOLKIT_ACTION_FORCE_QUIT_DIALOG` client message:
// `l[0] = action_atom, l[1] = time, l[2] = show(0/1)`.
type ForceQuitDialog struct {
	Action Atom
	Time   uint32
	Show   bool
}
