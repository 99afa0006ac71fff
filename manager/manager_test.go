// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/3v1n0/unity-sub005/compositor"
	"github.com/3v1n0/unity-sub005/cursor"
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/style"
	"github.com/3v1n0/unity-sub005/texture"
	"github.com/3v1n0/unity-sub005/wire"
)

type fakeWindow struct {
	id, frame    compositor.XID
	state        compositor.WindowState
	actions      compositor.Actions
	mwmDecorated bool
	geometry     geom.Rect
	title        string

	closed bool
}

func (w *fakeWindow) ID() compositor.XID                  { return w.id }
func (w *fakeWindow) Frame() compositor.XID                { return w.frame }
func (w *fakeWindow) IsViewable() bool                     { return true }
func (w *fakeWindow) Shaded() bool                         { return w.state.Shaded }
func (w *fakeWindow) State() compositor.WindowState        { return w.state }
func (w *fakeWindow) WindowActions() compositor.Actions    { return w.actions }
func (w *fakeWindow) MwmDecorated() bool                   { return w.mwmDecorated }
func (w *fakeWindow) OverrideRedirect() bool                { return false }
func (w *fakeWindow) Alpha() bool                           { return false }
func (w *fakeWindow) Geometry() geom.Rect                   { return w.geometry }
func (w *fakeWindow) ServerGeometry() geom.Rect             { return w.geometry }
func (w *fakeWindow) Border() geom.Insets                   { return geom.Insets{} }
func (w *fakeWindow) Input() geom.Insets                    { return geom.Insets{} }
func (w *fakeWindow) Region() compositor.Region             { return compositor.Region{w.geometry} }
func (w *fakeWindow) DefaultViewport() int                  { return 0 }
func (w *fakeWindow) InputRect() geom.Rect                  { return w.geometry }
func (w *fakeWindow) BorderRect() geom.Rect                 { return w.geometry }
func (w *fakeWindow) Title() string                         { return w.title }
func (w *fakeWindow) SetWindowFrameExtents(border, input geom.Insets) {}
func (w *fakeWindow) UpdateFrameRegion()                    {}
func (w *fakeWindow) UpdateWindowOutputExtents()            {}
func (w *fakeWindow) DamageOutputExtents()                  {}
func (w *fakeWindow) SetCursor(shape cursor.Shape)          {}
func (w *fakeWindow) Close(t time.Time)                     { w.closed = true }
func (w *fakeWindow) Minimize()                             {}
func (w *fakeWindow) Maximize(bits int)                     { w.state.Maximized = bits != 0 }
func (w *fakeWindow) Shade()                                { w.state.Shaded = true }
func (w *fakeWindow) Unshade()                              { w.state.Shaded = false }

type fakeScreen struct{ activeID compositor.XID; windows map[compositor.XID]*fakeWindow }

func (s *fakeScreen) Display() any   { return nil }
func (s *fakeScreen) Root() compositor.XID { return 0 }
func (s *fakeScreen) Viewport() geom.Rect  { return geom.Rect{} }
func (s *fakeScreen) ActiveWindow() compositor.Window {
	if w, ok := s.windows[s.activeID]; ok {
		return w
	}
	return nil
}
func (s *fakeScreen) FindWindow(id compositor.XID) compositor.Window {
	if w, ok := s.windows[id]; ok {
		return w
	}
	return nil
}
func (s *fakeScreen) CursorCache(shape string) any { return nil }
func (s *fakeScreen) ShapeRectangles(w compositor.Window) ([]geom.Rect, geom.Point, error) {
	return nil, geom.Point{}, nil
}
func (s *fakeScreen) ShapeEventBase() int { return 0 }

type fakeWM struct {
	lowered    compositor.XID
	cardinals  map[string][]uint32
}

func (m *fakeWM) MonitorGeometryIn(r geom.Rect) int { return 0 }
func (m *fakeWM) GetWindowName(id compositor.XID) string { return "" }
func (m *fakeWM) GetStringProperty(id compositor.XID, atom string) (string, bool) { return "", false }
func (m *fakeWM) GetCardinalProperty(id compositor.XID, atom string) ([]uint32, bool) {
	v, ok := m.cardinals[atom]
	return v, ok
}
func (m *fakeWM) IsScaleActive() bool                                { return false }
func (m *fakeWM) Lower(id compositor.XID)                            { m.lowered = id }
func (m *fakeWM) Raise(id compositor.XID)                            {}
func (m *fakeWM) SendMoveResize(win compositor.XID, mr wire.MoveResize) {}

func newTestManager() (*Manager, *fakeScreen, *fakeWM) {
	oracle := style.New()
	pool := texture.NewDataPool(oracle, nil)
	screen := &fakeScreen{windows: map[compositor.XID]*fakeWindow{}}
	wm := &fakeWM{cardinals: map[string][]uint32{}}
	return New(screen, wm, oracle, pool, nil, nil), screen, wm
}

func decoratedWindow(id compositor.XID) *fakeWindow {
	return &fakeWindow{
		id: id, frame: id + 1000,
		geometry:     geom.Rect{X: 0, Y: 0, W: 200, H: 150},
		mwmDecorated: true,
		actions:      compositor.Actions{Close: true, Minimize: true, Maximize: true, Resize: true, Move: true},
	}
}

func TestHandleWindowRegistersByIDAndFrame(t *testing.T) {
	m, _, _ := newTestManager()
	win := decoratedWindow(1)
	c := m.HandleWindow(win)
	assert.Same(t, c, m.Window(1))
	assert.Same(t, c, m.frameController(1001))
}

func TestUnhandleWindowRemovesBothEntries(t *testing.T) {
	m, _, _ := newTestManager()
	win := decoratedWindow(1)
	m.HandleWindow(win)
	m.UnhandleWindow(1)
	assert.Nil(t, m.Window(1))
	assert.Nil(t, m.frameController(1001))
}

func TestMotionAndButtonRouteToOwningFrame(t *testing.T) {
	m, _, _ := newTestManager()
	win := decoratedWindow(1)
	m.HandleWindow(win)

	consumed := m.HandleEventBefore(Event{Type: EventButtonPress, Window: 1001, Point: geom.Point{X: 5, Y: 5}, Button: 1})
	assert.True(t, consumed)

	consumed = m.HandleEventBefore(Event{Type: EventMotion, Window: 1001, Point: geom.Point{X: 6, Y: 5}})
	assert.True(t, consumed)
}

func TestButtonReleaseOutsideFrameRoutesToLastPressed(t *testing.T) {
	m, _, _ := newTestManager()
	win := decoratedWindow(1)
	m.HandleWindow(win)

	m.HandleEventBefore(Event{Type: EventButtonPress, Window: 1001, Point: geom.Point{X: 5, Y: 5}, Button: 1})
	consumed := m.HandleEventBefore(Event{Type: EventButtonRelease, Window: 0, Point: geom.Point{X: 500, Y: 500}, Button: 1})
	assert.True(t, consumed)
}

func TestFocusOutGrabCancelsLastPressedGrab(t *testing.T) {
	m, _, _ := newTestManager()
	win := decoratedWindow(1)
	m.HandleWindow(win)

	m.HandleEventBefore(Event{Type: EventButtonPress, Window: 1001, Point: geom.Point{X: 5, Y: 5}, Button: 1})
	consumed := m.HandleEventBefore(Event{Type: EventFocusOutGrab})
	assert.True(t, consumed)
	assert.Nil(t, m.lastPressed)
}

func TestClientMessageFrameExtentsRequestIsConsumed(t *testing.T) {
	m, _, _ := newTestManager()
	win := decoratedWindow(1)
	m.HandleWindow(win)

	consumed := m.HandleEventBefore(Event{Type: EventClientMessage, Window: 1, Atom: wire.AtomNetRequestFrameExtents})
	assert.True(t, consumed)
}

func TestForceQuitClientMessageDrivesDialogLifecycle(t *testing.T) {
	m, _, _ := newTestManager()
	win := decoratedWindow(1)
	m.HandleWindow(win)

	consumed := m.HandleEventBefore(Event{
		Type: EventClientMessage, Window: 1, Atom: wire.AtomToolkitForceQuitDialog,
		ForceQuit: wire.ForceQuitDialog{Show: true},
	})
	assert.True(t, consumed)
}

func TestActiveWindowPropertyFlipsActiveFlag(t *testing.T) {
	m, screen, _ := newTestManager()
	win1 := decoratedWindow(1)
	win2 := decoratedWindow(2)
	screen.windows[1] = win1
	screen.windows[2] = win2
	c1 := m.HandleWindow(win1)
	c2 := m.HandleWindow(win2)

	screen.activeID = 1
	m.HandleEventAfter(Event{Type: EventPropertyNotify, Atom: wire.AtomNetActiveWindow})
	assert.Same(t, c1, m.active)

	screen.activeID = 2
	m.HandleEventAfter(Event{Type: EventPropertyNotify, Atom: wire.AtomNetActiveWindow})
	assert.Same(t, c2, m.active)
}

func TestConfigureNotifyCallsUpdate(t *testing.T) {
	m, _, _ := newTestManager()
	win := decoratedWindow(1)
	m.HandleWindow(win)
	// Should not panic and should leave the window decorated.
	m.HandleEventAfter(Event{Type: EventConfigureNotify, Window: 1})
	assert.NotEqual(t, 0, int(m.Window(1).Elements()))
}

func TestBorderRadiusPropertyUpdatesClientBorders(t *testing.T) {
	m, _, wm := newTestManager()
	win := decoratedWindow(1)
	m.HandleWindow(win)
	wm.cardinals[wire.AtomUnityGtkBorderRadius] = []uint32{2, 3, 4, 5}

	m.HandleEventAfter(Event{Type: EventPropertyNotify, Window: 1, Atom: wire.AtomUnityGtkBorderRadius})
	// No exported getter for clientBorders; this just exercises the path
	// without panicking, matching the Controller's own field privacy.
}

func TestAddSupportedAtomsAppendsWireAtoms(t *testing.T) {
	m, _, _ := newTestManager()
	var atoms []string
	m.AddSupportedAtoms(&atoms)
	assert.Contains(t, atoms, wire.AtomNetRequestFrameExtents)
	assert.Contains(t, atoms, wire.AtomUnityGtkBorderRadius)
}
