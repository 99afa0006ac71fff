// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window implements the per-window decoration state machine
// (spec.md §4.7): Controller owns a window's elements set, its frame
// geometry, shadow quads, and the top_layout/edge widget tree, reacting
// to the window-manager events the owning manager.Manager demuxes to it.
// Grounded on core/renderwindow.go's per-RenderWindow lifecycle
// (HandleEvent dispatch, a RenderWindow paint method, geometry-changed
// hooks) and core/windowgeometry.go's dirty-position bookkeeping,
// collapsed from the teacher's generic GUI-window/scene model down to
// the fixed "four strips plus a shadow plus a top layout" shape a
// compositing-shell decoration actually has.
package window

import (
	"time"

	"github.com/jinzhu/copier"

	"github.com/3v1n0/unity-sub005/compositor"
	"github.com/3v1n0/unity-sub005/cursor"
	"github.com/3v1n0/unity-sub005/edge"
	"github.com/3v1n0/unity-sub005/errs"
	"github.com/3v1n0/unity-sub005/geom"
	"github.com/3v1n0/unity-sub005/input"
	"github.com/3v1n0/unity-sub005/menu"
	"github.com/3v1n0/unity-sub005/shadow"
	"github.com/3v1n0/unity-sub005/style"
	"github.com/3v1n0/unity-sub005/texture"
	"github.com/3v1n0/unity-sub005/widget"
	"github.com/3v1n0/unity-sub005/wire"
)

// Elements is the bitset spec.md §3 names: "elements: bitset { BORDER,
// EDGE, SHADOW, SHAPED }".
type Elements uint8

const (
	Border Elements = 1 << iota
	Edge
	Shadow
	Shaped
)

// Has reports whether flag is set in e.
func (e Elements) Has(flag Elements) bool { return e&flag != 0 }

// side indexes the four background strip textures the border paints
// (spec.md §4.7 "re-render the four side decoration textures").
type side int

const (
	sideTop side = iota
	sideLeft
	sideRight
	sideBottom
	numSides
)

// Controller is the per-window decoration state machine (spec.md §4.7).
// The zero value is not usable; construct with NewController.
type Controller struct {
	win       compositor.Window
	screen    compositor.Screen
	wm        compositor.WindowManager
	oracle    *style.Oracle
	pool      *texture.DataPool
	indicator compositor.IndicatorSource
	dialog    compositor.ForceQuitDialog

	frame         compositor.XID
	frameRegion   []geom.Rect
	active        bool
	scaled        bool
	monitor       int
	dpiScale      float64
	elements      Elements
	clientBorders geom.Insets

	shadowEngine *shadow.Engine
	shadowQuads  []shadow.Quad
	shadowTex    *texture.PixmapTexture

	bgTextures [numSides]*texture.PixmapTexture

	mixer         *input.Mixer
	mixerItems    []widget.Item
	edgeBorders   *edge.EdgeBorders
	edgeResizable bool
	top           *topLayout

	forceQuit *ForceQuitTimer

	title string

	prevActions compositor.Actions
	prevState   compositor.WindowState

	dirtyFrame bool
	dirtyGeo   bool
}

// NewController returns a Controller for win, wired to the given
// process-wide collaborators. Update must be called at least once
// before the window is painted.
func NewController(win compositor.Window, screen compositor.Screen, wm compositor.WindowManager, oracle *style.Oracle, pool *texture.DataPool, indicator compositor.IndicatorSource, dialog compositor.ForceQuitDialog) *Controller {
	c := &Controller{
		win: win, screen: screen, wm: wm, oracle: oracle, pool: pool,
		indicator: indicator, dialog: dialog,
		dpiScale: 1,
		title:    win.Title(),
	}
	c.shadowEngine = shadow.NewEngine(c)
	return c
}

// CompWindow returns the wrapped compositor.Window (spec.md §4.7
// get_comp_window).
func (c *Controller) CompWindow() compositor.Window { return c.win }

// Title returns the current window title.
func (c *Controller) Title() string { return c.title }

// SetTitle replaces the title and refreshes the title widget if one
// exists (spec.md §4.7 WM interactions "on title property change, title
// is re-fetched").
func (c *Controller) SetTitle(t string) {
	c.title = t
	if c.top != nil && c.top.Title != nil {
		c.top.Title.SetText(t)
	}
}

// Scaled reports whether this window is currently on a HiDPI-scaled
// monitor in the sense spec.md §4.7 step 1 means by "not scaled" (the
// gate that forces elements = ∅ while maximized).
func (c *Controller) Scaled() bool { return c.scaled }

// SetScaled updates the scaled flag and re-derives elements (spec.md
// §4.7 step 1).
func (c *Controller) SetScaled(v bool) {
	if c.scaled == v {
		return
	}
	c.scaled = v
	c.Update()
}

// DPIScale returns the DPI scale last captured by
// UpdateDecorationPosition.
func (c *Controller) DPIScale() float64 { return c.dpiScale }

// Elements returns the currently computed elements set.
func (c *Controller) Elements() Elements { return c.elements }

// Update implements spec.md §4.7's top-level algorithm: recompute
// elements, decorate or undecorate, and snapshot actions/state for
// change detection.
func (c *Controller) Update() {
	elements := c.computeElements()
	state := c.win.State()
	if (state.Maximized && !c.scaled) || state.Unredirected {
		elements = 0
	}
	c.elements = elements

	if elements.Has(Edge) || elements.Has(Border) {
		c.decorate()
	} else {
		c.undecorate()
	}

	c.snapshot()
}

// snapshot records the window's current Actions/state via jinzhu/copier
// (already used the same way by style.Oracle.Reset), so the next
// Update() call's decorate() can compare the window's current Actions
// with prevActions and skip tearing down and rebuilding the top layout
// when they are unchanged.
func (c *Controller) snapshot() {
	actions := c.win.WindowActions()
	state := c.win.State()
	copier.Copy(&c.prevActions, &actions)
	copier.Copy(&c.prevState, &state)
}

// snapshotChanged reports whether the window's Actions/state moved since
// the last snapshot.
func (c *Controller) snapshotChanged() bool {
	return c.prevActions != c.win.WindowActions() || c.prevState != c.win.State()
}

// computeElements derives the new elements set from the window's
// decoration eligibility (spec.md §4.7 step 1: "the compositor's
// decoration policy and client-side-decoration hint"). Policy is read
// from the two boolean accessors compositor.Window already exposes for
// it (mwm_decor, override_redirect); SHAPED vs SHADOW is decided by
// whether the window currently has a non-rectangular X shape (spec.md
// §4.9 "When SHAPED ∈ elements": the only input the spec gives for that
// membership is the shape query itself).
func (c *Controller) computeElements() Elements {
	if c.win.OverrideRedirect() || !c.win.MwmDecorated() {
		return 0
	}
	el := Border | Edge
	if c.hasShape() {
		el |= Shaped
	} else {
		el |= Shadow
	}
	return el
}

func (c *Controller) hasShape() bool {
	rects, _, err := c.screen.ShapeRectangles(c.win)
	if err != nil {
		errs.Log(err)
		return false
	}
	return len(rects) > 0
}

// decorate implements spec.md §4.7 decorate(): compute and apply frame
// extents, (re)build the frame region, and ensure the widget tree
// matches the current elements set.
func (c *Controller) decorate() {
	border := geom.Insets{}
	if c.elements.Has(Border) {
		border = c.oracle.Border()
	}
	inputExtents := border
	if c.elements.Has(Edge) {
		ib := c.oracle.InputBorder()
		inputExtents = border.Add(geom.Insets{Top: ib, Left: ib, Right: ib, Bottom: ib})
	}
	c.win.SetWindowFrameExtents(border, inputExtents)
	c.frame = c.win.Frame()

	c.rebuildFrameRegion(border)
	c.win.UpdateFrameRegion()

	if c.mixer == nil {
		c.mixer = input.NewMixer()
	}

	actions := c.win.WindowActions()
	resizable := actions.Resize
	if c.edgeBorders == nil || c.edgeResizable != resizable {
		c.destroyEdgeBorders()
		if c.elements.Has(Edge) {
			c.edgeBorders = edge.NewEdgeBorders(resizable, c, c, c.oracle, c)
			c.edgeResizable = resizable
		}
	}

	if c.elements.Has(Border) {
		if c.top == nil || actions != c.prevActions {
			c.destroyTopLayout()
			c.buildTopLayout()
		}
	} else {
		c.destroyTopLayout()
	}

	c.syncMixerItems()
}

// undecorate implements spec.md §4.7 undecorate(): signal the host to
// drop the frame (by zeroing its extents — the host owns actual X
// window creation/destruction, spec.md §6.1) and tear down every cached
// widget and texture.
func (c *Controller) undecorate() {
	c.win.SetWindowFrameExtents(geom.Insets{}, geom.Insets{})
	c.frame = 0
	c.frameRegion = nil

	c.destroyEdgeBorders()
	c.destroyTopLayout()
	c.mixer = nil
	c.mixerItems = nil

	for i := range c.bgTextures {
		c.bgTextures[i] = nil
	}
	c.shadowTex = nil
	c.shadowQuads = nil
}

// rebuildFrameRegion stitches the four border strips around the
// window's border rect, covering only the border and never the client
// area (spec.md §4.7 step 3).
func (c *Controller) rebuildFrameRegion(border geom.Insets) {
	r := c.win.BorderRect()
	if border.IsZero() {
		c.frameRegion = nil
		return
	}
	c.frameRegion = []geom.Rect{
		{X: r.X, Y: r.Y, W: r.W, H: border.Top},
		{X: r.X, Y: r.Bottom() - border.Bottom, W: r.W, H: border.Bottom},
		{X: r.X, Y: r.Y + border.Top, W: border.Left, H: r.H - border.Top - border.Bottom},
		{X: r.Right() - border.Right, Y: r.Y + border.Top, W: border.Right, H: r.H - border.Top - border.Bottom},
	}
}

// UpdateFrameRegion fills out with the current frame strips, spec.md
// §4.7's `update_frame_region(&mut Region)`.
func (c *Controller) UpdateFrameRegion(out *compositor.Region) {
	*out = append((*out)[:0], c.frameRegion...)
}

func (c *Controller) buildTopLayout() {
	actions := c.win.WindowActions()
	entries := c.buildMenuEntries()
	c.top = newTopLayout(c.oracle, c.pool, actions, c.win.State().Maximized, c.active,
		c.title, entries, c.win.ID(), c.indicator, c.Close, c.Minimize, c.ToggleMaximize)
}

func (c *Controller) destroyTopLayout() {
	c.top = nil
}

func (c *Controller) destroyEdgeBorders() {
	c.edgeBorders = nil
}

func (c *Controller) buildMenuEntries() []*menu.MenuEntry {
	if c.indicator == nil {
		return nil
	}
	raw := c.indicator.Entries(c.win.ID())
	out := make([]*menu.MenuEntry, 0, len(raw))
	for _, e := range raw {
		out = append(out, menu.NewMenuEntry(c.oracle, c.indicator, c.win.ID(), e))
	}
	return out
}

// syncMixerItems rebuilds the flat list of hit-testable leaves pushed
// into the mixer (edge widgets, buttons, menu entries): none of
// edge.EdgeBorders, topLayout or menu.Strip is itself a widget.Item, so
// their leaves are pushed individually (spec.md §4.2's mixer only ever
// holds leaves, the same pattern edge.EdgeBorders documents for itself).
func (c *Controller) syncMixerItems() {
	if c.mixer == nil {
		return
	}
	for _, it := range c.mixerItems {
		c.mixer.Remove(it)
	}
	c.mixerItems = c.mixerItems[:0]

	if c.edgeBorders != nil {
		for _, it := range c.edgeBorders.Items() {
			c.mixer.PushFront(it)
			c.mixerItems = append(c.mixerItems, it)
		}
	}
	if c.top != nil {
		for _, it := range c.top.Items() {
			c.mixer.PushFront(it)
			c.mixerItems = append(c.mixerItems, it)
		}
	}
}

// HandleMotion routes a Motion/Enter/Leave event to the input mixer
// (spec.md §4.8 handle_event_before); a no-op on an undecorated window.
func (c *Controller) HandleMotion(p geom.Point, t int64) {
	if c.mixer != nil {
		c.mixer.Motion(p, t)
	}
}

// HandleButtonDown routes a ButtonPress event to the input mixer.
func (c *Controller) HandleButtonDown(p geom.Point, button int, t int64) {
	if c.mixer != nil {
		c.mixer.ButtonDown(p, button, t)
	}
}

// HandleButtonUp routes a ButtonRelease event to the input mixer.
func (c *Controller) HandleButtonUp(p geom.Point, button int, t int64) {
	if c.mixer != nil {
		c.mixer.ButtonUp(p, button, t)
	}
}

// CancelGrab drops any implicit grab held by this window's mixer, for a
// FocusOut-with-NotifyGrab event (spec.md §4.8).
func (c *Controller) CancelGrab() {
	if c.mixer != nil {
		c.mixer.CancelGrab()
	}
}

// Grabbed reports whether this window's mixer currently holds an
// implicit button grab (spec.md §4.8's "last mixer that received a
// ButtonPress" bookkeeping is owned by the caller, this just exposes
// the state needed to know when that bookkeeping should clear).
func (c *Controller) Grabbed() bool {
	return c.mixer != nil && c.mixer.Grabbed()
}

// SetClientBorders updates the client-side-decoration corner radii used
// by the generic shadow algorithm's client-borders subtraction (spec.md
// §4.9, §6.3 _UNITY_GTK_BORDER_RADIUS).
func (c *Controller) SetClientBorders(g wire.GtkBorderRadius) {
	top, left, right, bottom := g.ClientBorders()
	c.clientBorders = geom.Insets{Top: float64(top), Left: float64(left), Right: float64(right), Bottom: float64(bottom)}
}

// MarkFrameDirty flags the top layout for reconstruction at the next
// paint (spec.md §4.7 WM interactions: "on mwmHints or wmAllowedActions
// change, the controller marks dirty_frame = true and damages its
// output extents").
func (c *Controller) MarkFrameDirty() {
	c.dirtyFrame = true
	c.win.DamageOutputExtents()
}

// SetActive flips the active flag, rebuilding the four side textures
// and refreshing button state (spec.md §4.7 WM interactions: "a window
// transitioning to active rebuilds its four side textures").
func (c *Controller) SetActive(active bool) {
	if c.active == active {
		return
	}
	c.active = active
	if c.top != nil {
		c.top.SetActive(active)
	}
	for i := range c.bgTextures {
		c.bgTextures[i] = nil
	}
}

// HandleFrameExtentsRequest implements spec.md §4.7's "_NET_REQUEST_FRAME_EXTENTS
// client message" handler: it answers with the border extents without
// decorating, supporting "ask before map" clients.
func (c *Controller) HandleFrameExtentsRequest() wire.FrameExtents {
	b := c.oracle.Border()
	return wire.FrameExtents{Left: uint32(b.Left), Right: uint32(b.Right), Top: uint32(b.Top), Bottom: uint32(b.Bottom)}
}

// HandleForceQuitDialog implements spec.md §4.7's toolkit ForceQuitDialog
// message handler: creates or dismisses the countdown dialog.
func (c *Controller) HandleForceQuitDialog(msg wire.ForceQuitDialog) {
	if !msg.Show {
		c.dismissForceQuit()
		return
	}
	c.forceQuit = NewForceQuitTimer(c.win.ID(), c.dialog, c.closeUnresponsive)
	c.forceQuit.Start()
}

func (c *Controller) dismissForceQuit() {
	if c.forceQuit != nil {
		c.forceQuit.Stop()
		c.forceQuit = nil
	}
	if c.dialog != nil {
		c.dialog.Dismiss()
	}
}

func (c *Controller) closeUnresponsive() {
	c.win.Close(time.Now())
}

// UpdateDecorationPosition implements spec.md §4.7's per-paint-with-
// dirty-geometry algorithm: refresh the monitor/DPI, recompute shadow
// quads, relayout edges, re-render side textures if their size changed,
// and reposition the force-quit dialog.
func (c *Controller) UpdateDecorationPosition() {
	c.monitor = c.wm.MonitorGeometryIn(c.win.Geometry())
	c.recomputeShadow()
	if c.edgeBorders != nil {
		c.edgeBorders.Relayout(c.win.BorderRect(), c.oracle)
	}
	if c.top != nil {
		c.top.Relayout(c.borderRect())
	}
	c.rebuildSideTextures()
	if c.forceQuit != nil {
		c.forceQuit.Reposition(c.win.BorderRect())
	}
}

func (c *Controller) borderRect() geom.Rect {
	r := c.win.BorderRect()
	b := c.oracle.Border()
	return geom.Rect{X: r.X, Y: r.Bottom() - b.Bottom, W: r.W, H: b.Bottom}
}

func (c *Controller) recomputeShadow() {
	if !c.elements.Has(Shadow) && !c.elements.Has(Shaped) {
		c.shadowQuads = nil
		c.shadowTex = nil
		return
	}
	offset := c.oracle.ShadowOffset()
	col := c.shadowColor()
	radius := c.shadowRadius()

	if c.elements.Has(Shaped) {
		rects, origin, err := c.screen.ShapeRectangles(c.win)
		if err != nil {
			errs.Log(err)
			return
		}
		var bounds geom.Rect
		shapeRects := make([]shadow.ShapeRect, len(rects))
		for i, rr := range rects {
			local := geom.Rect{X: rr.X - origin.X, Y: rr.Y - origin.Y, W: rr.W, H: rr.H}
			shapeRects[i] = shadow.ShapeRect{XOffset: local.X, YOffset: local.Y, W: local.W, H: local.H}
			bounds = bounds.Union(local)
		}
		r := c.win.BorderRect()
		tex, quad := c.shadowEngine.RecomputeShaped(r, radius, offset, bounds.W, bounds.H, shapeRects, col)
		c.shadowTex = tex
		c.shadowQuads = []shadow.Quad{quad}
		return
	}

	texSide := radius * 4
	r := c.win.BorderRect()
	c.shadowQuads = c.shadowEngine.RecomputeGeneric(r, radius, offset, texSide, rectOf(c.win.Region()), c.clientBorders)
}

func rectOf(r compositor.Region) geom.Rect {
	var out geom.Rect
	for _, rr := range r {
		out = out.Union(rr)
	}
	return out
}

func (c *Controller) shadowColor() [4]uint8 {
	col := c.oracle.ActiveShadowColor()
	if !c.active {
		col = c.oracle.InactiveShadowColor()
	}
	return [4]uint8{col.R, col.G, col.B, col.A}
}

func (c *Controller) shadowRadius() float64 {
	if c.active {
		return c.oracle.ActiveShadowRadius()
	}
	return c.oracle.InactiveShadowRadius()
}

// rebuildSideTextures re-renders the four background strip textures if
// their sizes changed (spec.md §4.7 step 4 of update_decoration_position).
func (c *Controller) rebuildSideTextures() {
	b := c.oracle.Border()
	r := c.win.BorderRect()
	sizes := [numSides][2]float64{
		sideTop:    {r.W, b.Top},
		sideBottom: {r.W, b.Bottom},
		sideLeft:   {b.Left, r.H},
		sideRight:  {b.Right, r.H},
	}
	for s, sz := range sizes {
		if sz[0] <= 0 || sz[1] <= 0 {
			c.bgTextures[s] = nil
			continue
		}
		if c.bgTextures[s] == nil {
			c.bgTextures[s] = texture.NewPixmapTexture(int(sz[0]), int(sz[1]))
		} else {
			c.bgTextures[s].Resize(int(sz[0]), int(sz[1]))
		}
	}
}

// UpdateOutputExtents implements shadow.OutputExtentsUpdater: the shadow
// engine calls this whenever its cached bounding rect changes.
func (c *Controller) UpdateOutputExtents() {
	c.win.UpdateWindowOutputExtents()
	c.win.DamageOutputExtents()
}

// Paint implements spec.md §4.7's paint protocol first call: skip
// windows on a different viewport during an untransformed pass,
// reconstruct the top layout if dirty, then refresh decoration
// position.
func (c *Controller) Paint(viewport int, mask compositor.PaintMask) {
	if viewport != c.win.DefaultViewport() && !mask.Has(compositor.MaskWindowTransformed) {
		return
	}
	if c.dirtyFrame {
		c.destroyTopLayout()
		if c.elements.Has(Border) {
			c.buildTopLayout()
		}
		c.syncMixerItems()
		c.dirtyFrame = false
	}
	c.UpdateDecorationPosition()
	c.dirtyGeo = false
}

// Draw implements spec.md §4.7's draw protocol: shadow first, then the
// four side textures, then the top layout.
func (c *Controller) Draw(ctx any, region compositor.Region, mask compositor.PaintMask) {
	clip := effectiveClip(region, mask)
	c.drawShadow(ctx, clip)
	c.drawSideTextures(ctx, clip)
	if c.top != nil {
		c.top.Draw(ctx, nil, clip)
	}
}

func effectiveClip(region compositor.Region, mask compositor.PaintMask) geom.Rect {
	if mask.Has(compositor.MaskWindowTransformed) || len(region) == 0 {
		const inf = 1 << 30
		return geom.Rect{X: -inf, Y: -inf, W: 2 * inf, H: 2 * inf}
	}
	var r geom.Rect
	for _, rr := range region {
		r = r.Union(rr)
	}
	return r
}

// drawShadow draws each shadow quad's visible remainder (spec.md §4.9
// "the drawn region is quad.box − window.region"); a real compositor
// paint batch samples the shadow texture through this quad, which this
// package only records the geometry for.
func (c *Controller) drawShadow(ctx any, clip geom.Rect) {
	qd, ok := ctx.(widget.QuadDrawer)
	if !ok || c.shadowTex == nil {
		return
	}
	for _, q := range c.shadowQuads {
		vis := q.Visible()
		if vis.W <= 0 || vis.H <= 0 {
			continue
		}
		qd.DrawQuad(c.shadowTex, vis, clip)
	}
}

func (c *Controller) drawSideTextures(ctx any, clip geom.Rect) {
	qd, ok := ctx.(widget.QuadDrawer)
	if !ok {
		return
	}
	b := c.oracle.Border()
	r := c.win.BorderRect()
	dsts := [numSides]geom.Rect{
		sideTop:    {X: r.X, Y: r.Y, W: r.W, H: b.Top},
		sideBottom: {X: r.X, Y: r.Bottom() - b.Bottom, W: r.W, H: b.Bottom},
		sideLeft:   {X: r.X, Y: r.Y, W: b.Left, H: r.H},
		sideRight:  {X: r.Right() - b.Right, Y: r.Y, W: b.Right, H: r.H},
	}
	for s, tex := range c.bgTextures {
		if tex == nil {
			continue
		}
		qd.DrawQuad(tex, dsts[s], clip)
	}
}

// --- edge.Actions / edge.MoveResizer / cursor.Setter ---

// SendMoveResize implements edge.MoveResizer.
func (c *Controller) SendMoveResize(rootX, rootY int, direction wire.MoveResizeDirection, button int) {
	if c.wm == nil {
		return
	}
	c.wm.SendMoveResize(c.win.ID(), wire.MoveResize{
		RootX: int32(rootX), RootY: int32(rootY), Direction: direction, Button: int32(button),
	})
}

// SetCursor implements cursor.Setter.
func (c *Controller) SetCursor(shape cursor.Shape) { c.win.SetCursor(shape) }

// ToggleShade implements edge.Actions.
func (c *Controller) ToggleShade() {
	if c.win.State().Shaded {
		c.win.Unshade()
	} else {
		c.win.Shade()
	}
}

// Shade implements edge.Actions.
func (c *Controller) Shade() { c.win.Shade() }

// Minimize implements edge.Actions and is also the Minimize button's
// click callback.
func (c *Controller) Minimize() { c.win.Minimize() }

// Close is the Close button's click callback (spec.md §4.7 step 4).
func (c *Controller) Close() { c.win.Close(time.Now()) }

// ToggleMaximize implements edge.Actions and is also the Maximize
// button's click callback.
func (c *Controller) ToggleMaximize() {
	c.toggleMaximizeBits(wire.MaximizeBoth)
}

// ToggleMaximizeH implements edge.Actions.
func (c *Controller) ToggleMaximizeH() { c.toggleMaximizeBits(wire.MaximizeHorz) }

// ToggleMaximizeV implements edge.Actions.
func (c *Controller) ToggleMaximizeV() { c.toggleMaximizeBits(wire.MaximizeVert) }

// toggleMaximizeBits toggles against the coarse Maximized flag
// compositor.WindowState exposes: spec.md doesn't give the controller a
// per-axis maximize readback, only a per-axis *setter*
// (compositor.Window.Maximize(stateBits)), so a toggle can only ask "is
// the window maximized at all" and flip the full state rather than one
// axis independently. Approximated in both directions by the full
// bitset; this is recorded as an Open Question resolution in DESIGN.md.
func (c *Controller) toggleMaximizeBits(bits wire.MaximizeState) {
	if c.win.State().Maximized {
		c.win.Maximize(0)
	} else {
		c.win.Maximize(int(bits))
	}
	if c.top != nil {
		c.top.SetMaximized(c.win.State().Maximized)
	}
}

// OpenMenu implements edge.Actions.
func (c *Controller) OpenMenu(at geom.Point) {
	if c.indicator != nil {
		c.indicator.OpenMenu("", at)
	}
}

// Lower implements edge.Actions.
func (c *Controller) Lower() {
	if c.wm != nil {
		c.wm.Lower(c.win.ID())
	}
}

