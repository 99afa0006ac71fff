// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command unitydecor is a thin, standalone smoke-runner for the
// decoration core (spec.md §0). It is not the compositor host — that
// process is out of scope (spec.md §1, §6) — it is a local harness that
// wires a minimal in-process Screen/WindowManager/Window so the full
// handle_window → update → paint path can be exercised without a real
// X server, the way the teacher's own `cmd/*` smoke programs exercise a
// RenderWindow without a real display driver.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/3v1n0/unity-sub005/compositor"
	"github.com/3v1n0/unity-sub005/cursor"
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/manager"
	"github.com/3v1n0/unity-sub005/style"
	"github.com/3v1n0/unity-sub005/texture"
	"github.com/3v1n0/unity-sub005/wire"
)

func main() {
	styleFile := flag.String("style", "", "path to a style.toml override (spec.md §4.3); empty uses built-in defaults")
	flag.Parse()

	oracle := style.New()
	if *styleFile != "" {
		if err := oracle.Load(*styleFile); err != nil {
			slog.Warn("style load failed, continuing with defaults", "path", *styleFile, "err", err)
		}
	}
	pool := texture.NewDataPool(oracle, nil)
	screen := newDemoScreen()
	wm := &demoWM{}
	mgr := manager.New(screen, wm, oracle, pool, nil, nil)

	win := &demoWindow{
		id: 1, frame: 2,
		geometry: geom.Rect{X: 100, Y: 100, W: 640, H: 480},
		title:    "unitydecor smoke window",
		actions: compositor.Actions{
			Move: true, Resize: true, Minimize: true, Maximize: true, Close: true,
		},
		mwmDecorated: true,
	}
	screen.windows[win.id] = win

	c := mgr.HandleWindow(win)
	slog.Info("window handled", "elements", c.Elements(), "title", c.Title())

	mgr.HandleEventBefore(manager.Event{
		Type: manager.EventMotion, Window: win.frame,
		Point: geom.Point{X: win.geometry.X + 10, Y: win.geometry.Y + 5},
		Time:  time.Now().UnixMilli(),
	})
	mgr.HandleEventBefore(manager.Event{
		Type: manager.EventButtonPress, Window: win.frame,
		Point: geom.Point{X: win.geometry.X + 10, Y: win.geometry.Y + 5},
		Button: 1, Time: time.Now().UnixMilli(),
	})
	mgr.HandleEventBefore(manager.Event{
		Type: manager.EventButtonRelease, Window: win.frame,
		Point: geom.Point{X: win.geometry.X + 10, Y: win.geometry.Y + 5},
		Button: 1, Time: time.Now().UnixMilli(),
	})

	screen.activeID = win.id
	mgr.HandleEventAfter(manager.Event{Type: manager.EventPropertyNotify, Window: win.id, Atom: wire.AtomNetActiveWindow})

	c.Paint(0, compositor.MaskWindowBlend)
	slog.Info("smoke run complete", "elements", c.Elements())
	os.Exit(0)
}

// The types below are a minimal, in-process stand-in for the compositor
// host (spec.md §6.1's Screen/WindowManager/Window contracts), scoped to
// exactly what a single demo window needs — not a reusable test double,
// unlike window/controller_test.go's and manager/manager_test.go's fakes,
// which exercise edge cases this smoke window never hits.

type demoWindow struct {
	id, frame    compositor.XID
	geometry     geom.Rect
	title        string
	actions      compositor.Actions
	mwmDecorated bool
	state        compositor.WindowState
}

func (w *demoWindow) ID() compositor.XID               { return w.id }
func (w *demoWindow) Frame() compositor.XID             { return w.frame }
func (w *demoWindow) IsViewable() bool                  { return true }
func (w *demoWindow) Shaded() bool                      { return w.state.Shaded }
func (w *demoWindow) State() compositor.WindowState     { return w.state }
func (w *demoWindow) WindowActions() compositor.Actions { return w.actions }
func (w *demoWindow) MwmDecorated() bool                { return w.mwmDecorated }
func (w *demoWindow) OverrideRedirect() bool            { return false }
func (w *demoWindow) Alpha() bool                       { return false }
func (w *demoWindow) Geometry() geom.Rect               { return w.geometry }
func (w *demoWindow) ServerGeometry() geom.Rect         { return w.geometry }
func (w *demoWindow) Border() geom.Insets               { return geom.Insets{} }
func (w *demoWindow) Input() geom.Insets                { return geom.Insets{} }
func (w *demoWindow) Region() compositor.Region         { return compositor.Region{w.geometry} }
func (w *demoWindow) DefaultViewport() int              { return 0 }
func (w *demoWindow) InputRect() geom.Rect              { return w.geometry }
func (w *demoWindow) BorderRect() geom.Rect             { return w.geometry }
func (w *demoWindow) Title() string                     { return w.title }
func (w *demoWindow) SetWindowFrameExtents(border, input geom.Insets) {
	slog.Debug("frame extents set", "border", border, "input", input)
}
func (w *demoWindow) UpdateFrameRegion()         {}
func (w *demoWindow) UpdateWindowOutputExtents() {}
func (w *demoWindow) DamageOutputExtents()       {}
func (w *demoWindow) SetCursor(shape cursor.Shape) {
	slog.Debug("cursor set", "shape", shape)
}
func (w *demoWindow) Close(t time.Time) { slog.Info("window closed", "id", w.id, "at", t) }
func (w *demoWindow) Minimize()         { slog.Info("window minimized", "id", w.id) }
func (w *demoWindow) Maximize(bits int) { w.state.Maximized = bits != 0 }
func (w *demoWindow) Shade()            { w.state.Shaded = true }
func (w *demoWindow) Unshade()          { w.state.Shaded = false }

type demoScreen struct {
	activeID compositor.XID
	windows  map[compositor.XID]*demoWindow
}

func newDemoScreen() *demoScreen {
	return &demoScreen{windows: make(map[compositor.XID]*demoWindow)}
}

func (s *demoScreen) Display() any       { return nil }
func (s *demoScreen) Root() compositor.XID { return 0 }
func (s *demoScreen) Viewport() geom.Rect  { return geom.Rect{X: 0, Y: 0, W: 1920, H: 1080} }
func (s *demoScreen) ActiveWindow() compositor.Window {
	if w, ok := s.windows[s.activeID]; ok {
		return w
	}
	return nil
}
func (s *demoScreen) FindWindow(id compositor.XID) compositor.Window {
	if w, ok := s.windows[id]; ok {
		return w
	}
	return nil
}
func (s *demoScreen) CursorCache(shape string) any { return nil }
func (s *demoScreen) ShapeRectangles(w compositor.Window) ([]geom.Rect, geom.Point, error) {
	return nil, geom.Point{}, nil
}
func (s *demoScreen) ShapeEventBase() int { return 0 }

type demoWM struct{}

func (m *demoWM) MonitorGeometryIn(r geom.Rect) int                        { return 0 }
func (m *demoWM) GetWindowName(id compositor.XID) string                  { return "" }
func (m *demoWM) GetStringProperty(id compositor.XID, atom string) (string, bool) {
	return "", false
}
func (m *demoWM) GetCardinalProperty(id compositor.XID, atom string) ([]uint32, bool) {
	return nil, false
}
func (m *demoWM) IsScaleActive() bool { return false }
func (m *demoWM) Lower(id compositor.XID) { slog.Debug("lower", "id", id) }
func (m *demoWM) Raise(id compositor.XID) { slog.Debug("raise", "id", id) }
func (m *demoWM) SendMoveResize(win compositor.XID, mr wire.MoveResize) {}
