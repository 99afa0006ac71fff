// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manager implements the process-wide window registry and event
// demultiplexer spec.md §4.8 names Manager: it holds the xid→Controller
// and frame_xid→Controller maps, routes each compositor event to the
// owning window (or drops it), and reacts to process-wide style changes.
// Grounded on core/windowlists.go's map-of-maps registry shape (its
// mutex is dropped: spec.md §5 makes this core single-threaded and
// cooperative on the compositor's event-loop thread) and core/stages.go's
// stage-to-scene event dispatch, collapsed to the fixed before/after
// hook pair the compositor event pump calls into.
package manager

import (
	"github.com/3v1n0/unity-sub005/compositor"
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/style"
	"github.com/3v1n0/unity-sub005/texture"
	"github.com/3v1n0/unity-sub005/window"
	"github.com/3v1n0/unity-sub005/wire"
)

// EventType discriminates the X event kinds spec.md §4.8's
// handle_event_before/handle_event_after switch over.
type EventType int

const (
	EventClientMessage EventType = iota
	EventMotion
	EventEnter
	EventLeave
	EventButtonPress
	EventButtonRelease
	EventFocusOutGrab
	EventPropertyNotify
	EventConfigureNotify
	EventShapeNotify
)

// Event is the compositor's X event envelope, reduced to the fields
// spec.md §4.8's dispatch actually reads out of it. Window is the event
// target: a client id for ClientMessage/PropertyNotify/ConfigureNotify,
// a frame id for Motion/Enter/Leave/ButtonPress/ButtonRelease/ShapeNotify.
type Event struct {
	Type   EventType
	Window compositor.XID
	Atom   string
	Point  geom.Point
	Button int
	Time   int64

	// ForceQuit is the decoded _TOOLKIT_ACTION_FORCE_QUIT_DIALOG payload,
	// valid when Type == EventClientMessage && Atom == wire.AtomToolkitForceQuitDialog.
	ForceQuit wire.ForceQuitDialog
}

// DialogFactory builds the (out-of-scope, toolkit-rendered) force-quit
// dialog for a newly handled window; may be nil if the host never wants
// one (spec.md §1).
type DialogFactory func(id compositor.XID) compositor.ForceQuitDialog

// Manager is the process-wide registry and event demultiplexer (spec.md
// §4.8). The zero value is not usable; construct with New.
type Manager struct {
	screen    compositor.Screen
	wm        compositor.WindowManager
	oracle    *style.Oracle
	pool      *texture.DataPool
	indicator compositor.IndicatorSource
	newDialog DialogFactory

	windows map[compositor.XID]*window.Controller
	frames  map[compositor.XID]*window.Controller

	active      *window.Controller
	lastPressed *window.Controller
}

// New returns a Manager wired to the given process-wide collaborators
// and subscribes it to style changes (spec.md §4.8 "on any style
// change... regenerates the affected pixmap and redraws all windows").
func New(screen compositor.Screen, wm compositor.WindowManager, oracle *style.Oracle, pool *texture.DataPool, indicator compositor.IndicatorSource, newDialog DialogFactory) *Manager {
	m := &Manager{
		screen: screen, wm: wm, oracle: oracle, pool: pool, indicator: indicator, newDialog: newDialog,
		windows: make(map[compositor.XID]*window.Controller),
		frames:  make(map[compositor.XID]*window.Controller),
	}
	oracle.OnThemeChanged(m.onThemeChanged)
	return m
}

// HandleWindow registers win and returns its new Controller, run through
// one Update() so it is already decorated (or correctly left bare) by
// the time the caller paints it (spec.md §4.8 handle_window).
func (m *Manager) HandleWindow(win compositor.Window) *window.Controller {
	var dialog compositor.ForceQuitDialog
	if m.newDialog != nil {
		dialog = m.newDialog(win.ID())
	}
	c := window.NewController(win, m.screen, m.wm, m.oracle, m.pool, m.indicator, dialog)
	m.windows[win.ID()] = c
	m.frames[win.Frame()] = c
	c.Update()
	return c
}

// UnhandleWindow drops win from both maps (spec.md §4.8 unhandle_window).
// The strong parent→child ownership this implies means the Controller
// becomes collectible the moment no other reference survives; there is
// no weak back-pointer to clear since Controller never stores one.
func (m *Manager) UnhandleWindow(id compositor.XID) {
	c, ok := m.windows[id]
	if !ok {
		return
	}
	delete(m.windows, id)
	delete(m.frames, c.CompWindow().Frame())
	if m.active == c {
		m.active = nil
	}
	if m.lastPressed == c {
		m.lastPressed = nil
	}
}

// Window returns the Controller registered for client id, or nil.
func (m *Manager) Window(id compositor.XID) *window.Controller { return m.windows[id] }

// frameController returns the Controller registered for frame id, or nil.
func (m *Manager) frameController(frame compositor.XID) *window.Controller { return m.frames[frame] }

// AddSupportedAtoms appends the atoms this core adds to `_NET_SUPPORTED`
// (spec.md §4.8 add_supported_atoms).
func (m *Manager) AddSupportedAtoms(atoms *[]string) {
	*atoms = append(*atoms, wire.SupportedAtoms()...)
}

// HandleEventBefore implements spec.md §4.8's pre-composite hook. It
// returns true when the event was consumed and should not reach the
// compositor's own handler.
func (m *Manager) HandleEventBefore(ev Event) bool {
	switch ev.Type {
	case EventClientMessage:
		return m.handleClientMessage(ev)
	case EventMotion, EventEnter, EventLeave:
		c := m.frameController(ev.Window)
		if c == nil {
			return false
		}
		c.HandleMotion(ev.Point, ev.Time)
		return true
	case EventButtonPress:
		c := m.frameController(ev.Window)
		if c == nil {
			return false
		}
		c.HandleButtonDown(ev.Point, ev.Button, ev.Time)
		m.lastPressed = c
		return true
	case EventButtonRelease:
		c := m.frameController(ev.Window)
		if c == nil {
			// ButtonRelease outside any frame closes the implicit grab
			// opened by the last ButtonPress (spec.md §4.8).
			c = m.lastPressed
		}
		if c == nil {
			return false
		}
		c.HandleButtonUp(ev.Point, ev.Button, ev.Time)
		if !c.Grabbed() {
			m.lastPressed = nil
		}
		return true
	case EventFocusOutGrab:
		if m.lastPressed != nil {
			m.lastPressed.CancelGrab()
			m.lastPressed = nil
		}
		return true
	}
	return false
}

func (m *Manager) handleClientMessage(ev Event) bool {
	switch ev.Atom {
	case wire.AtomNetRequestFrameExtents:
		c := m.windows[ev.Window]
		if c == nil {
			return false
		}
		c.HandleFrameExtentsRequest()
		return true
	case wire.AtomToolkitForceQuitDialog:
		c := m.windows[ev.Window]
		if c == nil {
			return false
		}
		c.HandleForceQuitDialog(ev.ForceQuit)
		return true
	}
	return false
}

// HandleEventAfter implements spec.md §4.8's post-composite hook.
func (m *Manager) HandleEventAfter(ev Event) {
	switch ev.Type {
	case EventPropertyNotify:
		m.handlePropertyNotify(ev)
	case EventConfigureNotify:
		if c := m.windows[ev.Window]; c != nil {
			c.Update()
		}
	case EventShapeNotify:
		if c := m.frameController(ev.Window); c != nil {
			c.Update()
		}
	}
}

func (m *Manager) handlePropertyNotify(ev Event) {
	switch ev.Atom {
	case wire.AtomNetActiveWindow:
		m.handleActiveWindowChange()
	case wire.AtomMwmHints, wire.AtomNetWMAllowedActions:
		if c := m.windows[ev.Window]; c != nil {
			c.Update()
		}
	case wire.AtomWMName, wire.AtomNetWMName, wire.AtomNetWMVisibleName:
		if c := m.windows[ev.Window]; c != nil {
			c.SetTitle(c.CompWindow().Title())
		}
	case wire.AtomUnityGtkBorderRadius:
		if c := m.windows[ev.Window]; c != nil {
			m.syncClientBorders(c, ev.Window)
		}
	}
}

// handleActiveWindowChange flips the active flag on the old and new
// active windows (spec.md §4.8), read back through Screen.ActiveWindow
// rather than carried on the event itself.
func (m *Manager) handleActiveWindowChange() {
	var next *window.Controller
	if aw := m.screen.ActiveWindow(); aw != nil {
		next = m.windows[aw.ID()]
	}
	if m.active == next {
		return
	}
	if m.active != nil {
		m.active.SetActive(false)
	}
	m.active = next
	if m.active != nil {
		m.active.SetActive(true)
	}
}

// syncClientBorders re-reads `_UNITY_GTK_BORDER_RADIUS` and updates c's
// client-side-decoration state (spec.md §4.8, §6.3).
func (m *Manager) syncClientBorders(c *window.Controller, id compositor.XID) {
	vals, ok := m.wm.GetCardinalProperty(id, wire.AtomUnityGtkBorderRadius)
	if !ok || len(vals) < 4 {
		return
	}
	c.SetClientBorders(wire.GtkBorderRadius{
		TopLeft: vals[0], TopRight: vals[1], BottomLeft: vals[2], BottomRight: vals[3],
	})
}

// onThemeChanged re-derives every window's shadow and side textures on
// a style change (spec.md §4.8). The spec's shared active/inactive
// shadow pixmap pair is not modeled as a separate manager-owned
// resource here — each Controller already owns its own shadow texture
// (window.Controller.recomputeShadow) rebuilt from the same oracle, so
// "regenerate the affected pixmap" collapses to asking every window to
// recompute its own from the now-current style (see DESIGN.md).
func (m *Manager) onThemeChanged() {
	for _, c := range m.windows {
		c.MarkFrameDirty()
		c.UpdateDecorationPosition()
	}
}
