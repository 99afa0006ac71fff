// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widget implements the retained 2-D widget tree shared by every
// decoration element: geometry, min/max/natural sizing, visibility, and the
// paint-call protocol (spec.md §4.1). It plays the role core/widget.go and
// core/layout.go play in the teacher, collapsed to the two-pass horizontal
// layout spec.md actually needs instead of the teacher's full
// SizeUp/SizeDown/SizeFinal/Position/ScenePos pipeline.
package widget

import (
	"log/slog"

	"github.com/3v1n0/unity-sub005/geom"
)

// Flags is a bitflag of the per-item state spec.md §3 lists on every Item:
// {visible, focused, sensitive, mouse_owner}. Adapted from the teacher's
// abilities.Abilities bitflag idiom (abilities/abilities.go), trimmed to
// the four flags the decoration core actually needs.
type Flags uint8

const (
	Visible Flags = 1 << iota
	Focused
	Sensitive
	MouseOwner
)

// Has reports whether flag is set.
func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

// Set returns f with flag set to on.
func (f Flags) Set(flag Flags, on bool) Flags {
	if on {
		return f | flag
	}
	return f &^ flag
}

// Kind tags the closed set of Item subtypes (spec.md §9 "dynamic dispatch
// across Item subtypes ... a tagged variant is sufficient"). Used only for
// introspection (spec.md §6.2) and debugging; dispatch itself is done
// through the Item interface and Go-level embedding, not by switching on
// Kind.
type Kind uint8

const (
	KindGeneric Kind = iota
	KindEdge
	KindGrabEdge
	KindTitle
	KindButton
	KindMenuEntry
	KindMenuDropdown
	KindMenuStrip
	KindLayout
	KindSlidingLayout
)

func (k Kind) String() string {
	switch k {
	case KindEdge:
		return "Edge"
	case KindGrabEdge:
		return "GrabEdge"
	case KindTitle:
		return "Title"
	case KindButton:
		return "Button"
	case KindMenuEntry:
		return "MenuEntry"
	case KindMenuDropdown:
		return "MenuDropdown"
	case KindMenuStrip:
		return "MenuStrip"
	case KindLayout:
		return "Layout"
	case KindSlidingLayout:
		return "SlidingLayout"
	default:
		return "Item"
	}
}

// Item is the interface every decoration widget implements (spec.md §4.1).
type Item interface {
	// Base returns the embedded Base so generic tree code (parenting,
	// input mixing) can manipulate common state without a type switch.
	Base() *Base

	// Draw issues this item's paint-call(s). ctx is opaque to the tree —
	// concrete items (Edge, Title, ...) type-assert it to whatever their
	// package needs (a *texture.CairoContext, typically).
	Draw(ctx any, transform any, clip geom.Rect)

	// Motion, ButtonDown and ButtonUp are the input callbacks spec.md
	// §4.1 lists; point is already in the item's local coordinate space.
	Motion(p geom.Point, t int64)
	ButtonDown(p geom.Point, button int, t int64)
	ButtonUp(p geom.Point, button int, t int64)
}

// Base is the common state every Item embeds: geometry, sizing clamps,
// flags, parent back-reference and the geometry-changed signal. Modeled
// on the teacher's "observable cell with getter/setter and change
// notification" idiom (spec.md §9) collapsed into plain fields plus an
// explicit OnGeoChanged hook, since the decoration tree is shallow (≤4
// levels, ≤20 widgets/window per spec.md §9) and does not need a generic
// observable-property framework.
type Base struct {
	kind Kind

	rect    geom.Rect
	natural geom.Size
	min     geom.Size
	max     geom.Size

	flags Flags

	// parent is a plain pointer, not a weak reference: spec.md §9 notes
	// that for a tree this shallow and this small, indirection overhead
	// is irrelevant, so we skip the arena+handle scheme and rely on the
	// invariant that a child never outlives the parent that owns its
	// slot (enforced by Layout.RemoveChild / Mixer.Remove before drop).
	parent *Base
	self   Item

	onGeoChanged        []func()
	onVisibleChanged    []func(bool)
	onMouseOwnerChanged []func(bool)
}

// NewBase returns a Base ready to be embedded in a concrete Item, with
// self set so Base methods can call back into the full Item (e.g. to
// fire draw-dirty recomputation hooks a concrete type registers).
func NewBase(kind Kind, self Item) Base {
	return Base{kind: kind, self: self, flags: Visible | Sensitive}
}

// Base returns b itself, satisfying the Item interface for any type that
// embeds Base directly (promoted method).
func (b *Base) Base() *Base { return b }

// Kind returns the tagged variant this Base belongs to.
func (b *Base) Kind() Kind { return b.kind }

// Self returns the outer Item this Base is embedded in.
func (b *Base) Self() Item { return b.self }

// Parent returns the enclosing Layout's Base, or nil at the root.
func (b *Base) Parent() *Base { return b.parent }

// GetTopParent walks Parent links to the root ancestor (spec.md §9).
func (b *Base) GetTopParent() *Base {
	cur := b
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Geometry returns the item's current rect.
func (b *Base) Geometry() geom.Rect { return b.rect }

// NaturalWidth returns the item's unconstrained preferred width.
func (b *Base) NaturalWidth() float64 { return b.natural.W }

// NaturalHeight returns the item's unconstrained preferred height.
func (b *Base) NaturalHeight() float64 { return b.natural.H }

// SetCoords moves the item without resizing it.
func (b *Base) SetCoords(x, y float64) {
	if b.rect.X == x && b.rect.Y == y {
		return
	}
	b.rect.X, b.rect.Y = x, y
	b.fireGeoChanged()
}

// SetSize resizes the item and, per spec.md §4.1, snaps both the min and
// max clamps to exactly (w,h) — an explicit SetSize always wins ties with
// whatever clamp was previously in force.
func (b *Base) SetSize(w, h float64) {
	b.min = geom.Size{W: w, H: h}
	b.max = geom.Size{W: w, H: h}
	b.setRectSize(w, h)
}

// SetWidth resizes only the width, respecting the existing clamps.
func (b *Base) SetWidth(w float64) { b.setRectSize(w, b.rect.H) }

// SetHeight resizes only the height, respecting the existing clamps.
func (b *Base) SetHeight(h float64) { b.setRectSize(b.rect.W, h) }

func (b *Base) setRectSize(w, h float64) {
	clamped := geom.Size{W: w, H: h}.Clamp(b.min, b.max)
	if b.rect.W == clamped.W && b.rect.H == clamped.H {
		return
	}
	b.rect.W, b.rect.H = clamped.W, clamped.H
	b.fireGeoChanged()
}

// SetMinWidth sets the minimum width clamp. Per spec.md §4.1, "setting min
// above max raises max to min" — the two clamps are kept from crossing.
func (b *Base) SetMinWidth(w float64) {
	b.min.W = w
	if b.max.W < w {
		b.max.W = w
	}
	b.setRectSize(b.rect.W, b.rect.H)
}

// SetMaxWidth sets the maximum width clamp, lowering min to match if max
// drops below it (the symmetric half of the spec.md §4.1 rule).
func (b *Base) SetMaxWidth(w float64) {
	b.max.W = w
	if b.min.W > w {
		b.min.W = w
	}
	b.setRectSize(b.rect.W, b.rect.H)
}

// SetMinHeight sets the minimum height clamp, raising max to match if
// needed.
func (b *Base) SetMinHeight(h float64) {
	b.min.H = h
	if b.max.H < h {
		b.max.H = h
	}
	b.setRectSize(b.rect.W, b.rect.H)
}

// SetMaxHeight sets the maximum height clamp, lowering min to match if
// needed.
func (b *Base) SetMaxHeight(h float64) {
	b.max.H = h
	if b.min.H > h {
		b.min.H = h
	}
	b.setRectSize(b.rect.W, b.rect.H)
}

// SetNatural sets the item's natural (unconstrained) size.
func (b *Base) SetNatural(w, h float64) { b.natural = geom.Size{W: w, H: h} }

// MinSize returns the current minimum-size clamp.
func (b *Base) MinSize() geom.Size { return b.min }

// MaxSize returns the current maximum-size clamp.
func (b *Base) MaxSize() geom.Size { return b.max }

// Flags returns the current flag bitset.
func (b *Base) Flags() Flags { return b.flags }

// SetVisible sets the Visible flag, firing the visibility-changed signal
// so an enclosing Layout relayouts (spec.md §4.1 "relayouts whenever any
// child's visibility changes"). This is deliberately a distinct signal
// from geo_parameters_changed: a Layout's own relayout pass sets each
// child's rect, which must not itself re-trigger a relayout, only an
// explicit visibility flip should.
func (b *Base) SetVisible(v bool) {
	if b.flags.Has(Visible) == v {
		return
	}
	b.flags = b.flags.Set(Visible, v)
	for _, f := range b.onVisibleChanged {
		f(v)
	}
}

// OnVisibleChanged registers a callback fired when the Visible flag
// flips, passing the new value.
func (b *Base) OnVisibleChanged(f func(bool)) {
	b.onVisibleChanged = append(b.onVisibleChanged, f)
}

// IsVisible reports the Visible flag.
func (b *Base) IsVisible() bool { return b.flags.Has(Visible) }

// SetSensitive sets whether the item can be hit-tested (spec.md §4.2).
func (b *Base) SetSensitive(v bool) { b.flags = b.flags.Set(Sensitive, v) }

// IsSensitive reports the Sensitive flag.
func (b *Base) IsSensitive() bool { return b.flags.Has(Sensitive) }

// SetFocused sets the Focused flag.
func (b *Base) SetFocused(v bool) { b.flags = b.flags.Set(Focused, v) }

// SetMouseOwner sets the MouseOwner flag, firing any registered
// OnMouseOwnerChanged hooks on a real transition (e.g. SlidingLayout's
// crossfade, spec.md §4.1).
func (b *Base) SetMouseOwner(v bool) {
	if b.flags.Has(MouseOwner) == v {
		return
	}
	b.flags = b.flags.Set(MouseOwner, v)
	for _, f := range b.onMouseOwnerChanged {
		f(v)
	}
}

// IsMouseOwner reports the MouseOwner flag.
func (b *Base) IsMouseOwner() bool { return b.flags.Has(MouseOwner) }

// OnMouseOwnerChanged registers a callback fired on a MouseOwner
// transition, passing the new value.
func (b *Base) OnMouseOwnerChanged(f func(bool)) {
	b.onMouseOwnerChanged = append(b.onMouseOwnerChanged, f)
}

// OnGeoChanged registers a callback fired whenever any geometry attribute
// mutates (spec.md §4.1 "geo_parameters_changed").
func (b *Base) OnGeoChanged(f func()) { b.onGeoChanged = append(b.onGeoChanged, f) }

func (b *Base) fireGeoChanged() {
	for _, f := range b.onGeoChanged {
		f()
	}
}

// Damage marks the item as needing repaint. The decoration core has no
// partial-repaint tracking of its own (that lives in the compositor); this
// is a no-op hook concrete widgets can override by shadowing Base.Damage
// is intentionally absent — callers damage through the owning
// window.Controller, which knows the compositor's damage API.
func (b *Base) Damage() {}

// setParent is called by Layout when a child is added/removed; it is
// unexported because parenting is tree-exclusive (spec.md §3: "a child has
// at most one parent; cycles are forbidden") and must only ever be done
// through Layout's own bookkeeping.
func (b *Base) setParent(p *Base) {
	if b.parent != nil && p != nil && b.parent != p {
		slog.Error("widget: item re-parented without being removed first", "kind", b.kind)
	}
	b.parent = p
}
