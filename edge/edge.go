// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edge implements the eight resize edges plus the one move/grab
// edge that ring a decorated window (spec.md §4.5). Edge itself is a
// thin widget.Item; GrabEdge adds the double-click/move-grab state
// machine. Grounded on the teacher's window-event plumbing
// (driver/desktop/window.go's sendWindowEvent) for the "translate a
// button-down into an outbound window action" shape, and on
// core/events.go's time.AfterFunc idiom for the grab_wait timer.
package edge

import (
	"time"

	"github.com/3v1n0/unity-sub005/cursor"
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/style"
	"github.com/3v1n0/unity-sub005/widget"
	"github.com/3v1n0/unity-sub005/wire"
)

// Type identifies one of the nine edge kinds.
type Type int

const (
	Top Type = iota
	TopLeft
	TopRight
	Left
	Right
	Bottom
	BottomLeft
	BottomRight
	Grab
)

func (t Type) direction() wire.MoveResizeDirection {
	switch t {
	case Top:
		return wire.SizeTop
	case TopLeft:
		return wire.SizeTopLeft
	case TopRight:
		return wire.SizeTopRight
	case Left:
		return wire.SizeLeft
	case Right:
		return wire.SizeRight
	case Bottom:
		return wire.SizeBottom
	case BottomLeft:
		return wire.SizeBottomLeft
	case BottomRight:
		return wire.SizeBottomRight
	default:
		return wire.Move
	}
}

func (t Type) cursorShape() cursor.Shape {
	switch t {
	case Top:
		return cursor.North
	case Bottom:
		return cursor.South
	case Left:
		return cursor.West
	case Right:
		return cursor.East
	case TopLeft:
		return cursor.NorthWest
	case TopRight:
		return cursor.NorthEast
	case BottomLeft:
		return cursor.SouthWest
	case BottomRight:
		return cursor.SouthEast
	default:
		return cursor.Move
	}
}

// MoveResizer is how an Edge asks the compositor to start a WM
// move/resize (spec.md §4.5 "sends the WM _NET_WM_MOVERESIZE client
// message"). Decoupled from compositor.Window so this package has no
// import cycle and tests can use a recording fake.
type MoveResizer interface {
	SendMoveResize(rootX, rootY int, direction wire.MoveResizeDirection, button int)
}

// Edge is one of the eight plain resize regions (spec.md §4.5). It
// carries no texture of its own — the four side decoration textures
// paint over it — so it embeds widget.Base directly rather than
// widget.TexturedItem.
type Edge struct {
	widget.Base
	Typ    Type
	Target MoveResizer
	Cursor cursor.Setter
}

// NewEdge returns an Edge of typ reporting to target and setting cur on
// hover.
func NewEdge(typ Type, target MoveResizer, cur cursor.Setter) *Edge {
	e := &Edge{Typ: typ, Target: target, Cursor: cur}
	e.Base = widget.NewBase(widget.KindEdge, e)
	return e
}

func (e *Edge) Draw(any, any, geom.Rect) {}

// Motion sets the compass cursor for as long as the pointer is over the
// edge (spec.md §4.5 "on hover, an edge sets the X cursor shape
// matching its type").
func (e *Edge) Motion(geom.Point, int64) {
	if e.Cursor != nil {
		e.Cursor.SetCursor(e.Typ.cursorShape())
	}
}

// ButtonDown on button 1 issues the matching WM move/resize immediately
// (spec.md §4.5); GrabEdge overrides this for the double-click policy.
func (e *Edge) ButtonDown(p geom.Point, button int, t int64) {
	if button != 1 || e.Target == nil {
		return
	}
	e.Target.SendMoveResize(int(p.X), int(p.Y), e.Typ.direction(), button)
}

func (e *Edge) ButtonUp(geom.Point, int, int64) {}

// grabState is GrabEdge's button-1 state machine (spec.md §4.5).
type grabState int

const (
	idle grabState = iota
	pending
	grabbing
)

// GrabEdge refines Edge with the double-click-to-maximize / hold-to-move
// policy spec.md §4.5 describes for the title-strip grab region.
type GrabEdge struct {
	Edge

	Oracle  *style.Oracle
	Actions Actions

	state      grabState
	timer      *time.Timer
	pressAt    geom.Point
	lastClick  geom.Point
	lastClickT int64
	hasLast    bool
}

// Actions is the subset of window-manager operations a GrabEdge can
// invoke when a configured titlebar action fires (spec.md §4.3
// window_manager_action outputs).
type Actions interface {
	ToggleShade()
	ToggleMaximize()
	ToggleMaximizeH()
	ToggleMaximizeV()
	Minimize()
	Shade()
	OpenMenu(at geom.Point)
	Lower()
}

// NewGrabEdge returns an IDLE GrabEdge.
func NewGrabEdge(target MoveResizer, cur cursor.Setter, oracle *style.Oracle, actions Actions) *GrabEdge {
	g := &GrabEdge{Oracle: oracle, Actions: actions}
	g.Edge = Edge{Typ: Grab, Target: target, Cursor: cur}
	g.Base = widget.NewBase(widget.KindGrabEdge, g)
	return g
}

// ButtonDown implements the IDLE/PENDING/GRABBING state machine
// (spec.md §4.5) for button 1; buttons 2 and 3 look up their bound
// action directly.
func (g *GrabEdge) ButtonDown(p geom.Point, button int, t int64) {
	switch button {
	case 1:
		g.buttonOneDown(p)
	case 2:
		g.dispatchClickAction(style.MiddleClick, p)
	case 3:
		g.dispatchClickAction(style.RightClick, p)
	}
}

// buttonOneDown always enters PENDING and arms the grab_wait timer
// (spec.md §4.5 state table: "IDLE --button_down(1)--> PENDING"). The
// double-click decision is made later, at the matching ButtonUp, by
// comparing against the previous completed click.
func (g *GrabEdge) buttonOneDown(p geom.Point) {
	if g.state != idle {
		return
	}
	g.state = pending
	g.pressAt = p
	wait := time.Duration(g.Oracle.GrabWait()) * time.Millisecond
	g.timer = time.AfterFunc(wait, func() { g.promoteToGrab() })
}

func (g *GrabEdge) promoteToGrab() {
	if g.state != pending {
		return
	}
	g.state = grabbing
	if g.Target != nil {
		g.Target.SendMoveResize(int(g.pressAt.X), int(g.pressAt.Y), wire.Move, 1)
	}
}

// Motion, while PENDING, promotes to GRABBING early if the pointer
// moves past the double-click distance threshold (spec.md §4.5 "if
// motion exceeds threshold ... promote to a WM move").
func (g *GrabEdge) Motion(p geom.Point, t int64) {
	g.Edge.Motion(p, t)
	if g.state == pending && !within(p, g.pressAt, g.Oracle.DoubleClickDistance()) {
		g.cancelTimer()
		g.promoteToGrab()
	}
}

// ButtonUp implements the PENDING/GRABBING exits of the state machine
// (spec.md §4.5): a PENDING release within double_click_max_distance and
// double_click_max_time_delta of the previous click emits DOUBLE_CLICK;
// otherwise it is remembered as "the previous click" for the next cycle.
// GRABBING always just ends.
func (g *GrabEdge) ButtonUp(p geom.Point, button int, t int64) {
	if button != 1 {
		return
	}
	g.cancelTimer()
	switch g.state {
	case pending:
		if g.hasLast && within(p, g.lastClick, g.Oracle.DoubleClickDistance()) &&
			withinMS(t, g.lastClickT, g.Oracle.DoubleClickTimeDelta()) {
			g.hasLast = false
			g.invokeAction(g.Oracle.WindowManagerAction(style.DoubleClick), p)
		} else {
			g.lastClick, g.lastClickT, g.hasLast = p, t, true
		}
	case grabbing:
		g.hasLast = false
	}
	g.state = idle
}

func (g *GrabEdge) cancelTimer() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

func (g *GrabEdge) dispatchClickAction(event style.ClickEvent, p geom.Point) {
	action := g.Oracle.WindowManagerAction(event)
	if action == style.ActionNone {
		if g.Actions != nil {
			g.Actions.OpenMenu(p)
		}
		return
	}
	g.invokeAction(action, p)
}

func (g *GrabEdge) invokeAction(action style.Action, p geom.Point) {
	if g.Actions == nil {
		return
	}
	switch action {
	case style.ActionToggleShade:
		g.Actions.ToggleShade()
	case style.ActionToggleMaximize:
		g.Actions.ToggleMaximize()
	case style.ActionToggleMaximizeH:
		g.Actions.ToggleMaximizeH()
	case style.ActionToggleMaximizeV:
		g.Actions.ToggleMaximizeV()
	case style.ActionMinimize:
		g.Actions.Minimize()
	case style.ActionShade:
		g.Actions.Shade()
	case style.ActionMenu:
		g.Actions.OpenMenu(p)
	case style.ActionLower:
		g.Actions.Lower()
	}
}

func within(a, b geom.Point, dist int) bool {
	return a.Dist(b) <= float64(dist)
}

func withinMS(t, prev int64, deltaMS int) bool {
	return t-prev <= int64(deltaMS)
}
