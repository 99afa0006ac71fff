// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edge

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/3v1n0/unity-sub005/cursor"
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/style"
	"github.com/3v1n0/unity-sub005/wire"
)

type recordingTarget struct {
	calls []wire.MoveResizeDirection
}

func (r *recordingTarget) SendMoveResize(rootX, rootY int, direction wire.MoveResizeDirection, button int) {
	r.calls = append(r.calls, direction)
}

type recordingCursor struct {
	last cursor.Shape
}

func (r *recordingCursor) SetCursor(shape cursor.Shape) { r.last = shape }

type recordingActions struct {
	toggled   string
	menuAt    geom.Point
	menuCalls int
}

func (r *recordingActions) ToggleShade()        { r.toggled = "shade" }
func (r *recordingActions) ToggleMaximize()      { r.toggled = "maximize" }
func (r *recordingActions) ToggleMaximizeH()     { r.toggled = "maximize_h" }
func (r *recordingActions) ToggleMaximizeV()     { r.toggled = "maximize_v" }
func (r *recordingActions) Minimize()            { r.toggled = "minimize" }
func (r *recordingActions) Shade()               { r.toggled = "shade_only" }
func (r *recordingActions) OpenMenu(p geom.Point) { r.menuAt = p; r.menuCalls++ }
func (r *recordingActions) Lower()               { r.toggled = "lower" }

func TestEdgeButtonDownSendsMatchingDirection(t *testing.T) {
	target := &recordingTarget{}
	e := NewEdge(TopRight, target, nil)
	e.ButtonDown(geom.Point{X: 5, Y: 5}, 1, 0)
	assert.Equal(t, []wire.MoveResizeDirection{wire.SizeTopRight}, target.calls)
}

func TestEdgeButtonDownIgnoresNonPrimaryButton(t *testing.T) {
	target := &recordingTarget{}
	e := NewEdge(Left, target, nil)
	e.ButtonDown(geom.Point{}, 2, 0)
	assert.Empty(t, target.calls)
}

func TestEdgeMotionSetsCompassCursor(t *testing.T) {
	cur := &recordingCursor{}
	e := NewEdge(BottomLeft, nil, cur)
	e.Motion(geom.Point{}, 0)
	assert.Equal(t, cursor.SouthWest, cur.last)
}

func TestGrabEdgeDoubleClickInvokesBoundAction(t *testing.T) {
	target := &recordingTarget{}
	actions := &recordingActions{}
	o := style.New()
	g := NewGrabEdge(target, nil, o, actions)

	p := geom.Point{X: 10, Y: 10}
	g.ButtonDown(p, 1, 0)
	g.ButtonUp(p, 1, 10)

	g.ButtonDown(p, 1, 20)
	g.ButtonUp(p, 1, 25)

	assert.Equal(t, "maximize", actions.toggled)
	assert.Empty(t, target.calls)
}

func TestGrabEdgePlainClickSendsNoAction(t *testing.T) {
	target := &recordingTarget{}
	actions := &recordingActions{}
	o := style.New()
	g := NewGrabEdge(target, nil, o, actions)

	p := geom.Point{X: 10, Y: 10}
	g.ButtonDown(p, 1, 0)
	g.ButtonUp(p, 1, 10)

	assert.Empty(t, actions.toggled)
	assert.Empty(t, target.calls)
}

func TestGrabEdgeTimerExpiryPromotesToMove(t *testing.T) {
	target := &recordingTarget{}
	o := style.New()
	g := NewGrabEdge(target, nil, o, &recordingActions{})

	p := geom.Point{X: 10, Y: 10}
	g.ButtonDown(p, 1, 0)
	time.Sleep(time.Duration(o.GrabWait()+50) * time.Millisecond)

	assert.Equal(t, []wire.MoveResizeDirection{wire.Move}, target.calls)
	g.ButtonUp(p, 1, 500)
}

func TestGrabEdgeMotionPastThresholdPromotesEarly(t *testing.T) {
	target := &recordingTarget{}
	o := style.New()
	g := NewGrabEdge(target, nil, o, &recordingActions{})

	p := geom.Point{X: 10, Y: 10}
	g.ButtonDown(p, 1, 0)
	far := geom.Point{X: 10 + float64(o.DoubleClickDistance()) + 5, Y: 10}
	g.Motion(far, 1)

	assert.Equal(t, []wire.MoveResizeDirection{wire.Move}, target.calls)
	g.ButtonUp(far, 1, 2)
}

func TestGrabEdgeMiddleClickDispatchesBoundAction(t *testing.T) {
	actions := &recordingActions{}
	o := style.New()
	g := NewGrabEdge(nil, nil, o, actions)
	g.ButtonDown(geom.Point{X: 1, Y: 1}, 2, 0)
	assert.Equal(t, "lower", actions.toggled)
}

func TestGrabEdgeRightClickOpensMenuWhenActionIsNone(t *testing.T) {
	actions := &recordingActions{}
	o := style.New()
	cfg := filepath.Join(t.TempDir(), "style.toml")
	assert.NoError(t, os.WriteFile(cfg, []byte("action_right_click_titlebar = \"none\"\n"), 0o644))
	assert.NoError(t, o.Load(cfg))

	g := NewGrabEdge(nil, nil, o, actions)
	g.ButtonDown(geom.Point{X: 3, Y: 4}, 3, 0)
	assert.Equal(t, 1, actions.menuCalls)
}
