// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"time"

	"github.com/3v1n0/unity-sub005/geom"
)

// OpacityContext is implemented by a draw context that supports per-call
// opacity modulation (spec.md §4.1: "Draw uses both children with
// complementary opacities during the animation"). texture.CairoContext
// implements this.
type OpacityContext interface {
	SetOpacity(op float32)
}

// SlidingLayout holds exactly two items, Main and Input, and crossfades
// between them on a MouseOwner transition (spec.md §4.1). "Input" names
// the indicator/menu side of the crossfade described in spec.md §4.6 (the
// application-menu layout), "Main" the title.
type SlidingLayout struct {
	Base

	Main  Item
	Input Item

	FadeInMS  int
	FadeOutMS int

	// OverrideMainItem forces Input to occupy the whole strip regardless
	// of MouseOwner (spec.md §4.6: "when the application menu is
	// always-shown").
	OverrideMainItem bool

	fadingIn   bool
	fadeStart  time.Time
	targetMain bool // true once steady-state shows Main

	now func() time.Time
}

// NewSlidingLayout returns a SlidingLayout with main initially shown.
func NewSlidingLayout(main, input Item) *SlidingLayout {
	sl := &SlidingLayout{Main: main, Input: input, targetMain: true, now: time.Now}
	sl.Base = NewBase(KindSlidingLayout, sl)
	sl.OnMouseOwnerChanged(sl.onOwnerChanged)
	return sl
}

func (sl *SlidingLayout) onOwnerChanged(owner bool) {
	sl.fadeStart = sl.now()
	sl.fadingIn = owner
	sl.targetMain = !owner
}

// progress returns the current animation progress in [0,1] and whether an
// animation is in flight.
func (sl *SlidingLayout) progress() (p float64, animating bool) {
	if sl.fadeStart.IsZero() {
		return 1, false
	}
	dur := sl.FadeOutMS
	if sl.fadingIn {
		dur = sl.FadeInMS
	}
	if dur <= 0 {
		return 1, false
	}
	elapsed := sl.now().Sub(sl.fadeStart)
	p = float64(elapsed) / float64(time.Duration(dur)*time.Millisecond)
	if p >= 1 {
		return 1, false
	}
	if p < 0 {
		p = 0
	}
	return p, true
}

// Draw renders Main and Input with complementary opacities while an
// animation is in flight, and only the steady-state target otherwise
// (spec.md §4.1).
func (sl *SlidingLayout) Draw(ctx any, transform any, clip geom.Rect) {
	oc, hasOpacity := ctx.(OpacityContext)

	if sl.OverrideMainItem {
		sl.Input.Draw(ctx, transform, clip)
		return
	}

	p, animating := sl.progress()
	if !animating {
		if sl.targetMain {
			sl.Main.Draw(ctx, transform, clip)
		} else {
			sl.Input.Draw(ctx, transform, clip)
		}
		return
	}

	// fadingIn means Input is coming in (MouseOwner became true): Input
	// opacity rises with p, Main falls.
	inputOp, mainOp := p, 1-p
	if !sl.fadingIn {
		inputOp, mainOp = 1-p, p
	}
	if hasOpacity {
		oc.SetOpacity(float32(mainOp))
	}
	sl.Main.Draw(ctx, transform, clip)
	if hasOpacity {
		oc.SetOpacity(float32(inputOp))
	}
	sl.Input.Draw(ctx, transform, clip)
	if hasOpacity {
		oc.SetOpacity(1)
	}
}

func (sl *SlidingLayout) Motion(geom.Point, int64)         {}
func (sl *SlidingLayout) ButtonDown(geom.Point, int, int64) {}
func (sl *SlidingLayout) ButtonUp(geom.Point, int, int64)   {}
