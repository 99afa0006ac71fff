// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"time"

	"github.com/3v1n0/unity-sub005/compositor"
	"github.com/3v1n0/unity-sub005/geom"
)

// forceQuitCountdown is the lifetime of a force-quit dialog before its
// owning window is force-closed, matching the unresponsive-client grace
// period the original DecorationsForceQuitDialog's countdown label
// ticks down from (SPEC_FULL.md §6's "countdown label" supplement).
const forceQuitCountdown = 10 * time.Second

// ForceQuitTimer drives a force-quit dialog's lifecycle: a 1Hz countdown
// shown via compositor.ForceQuitDialog, force-closing the window on
// expiry (spec.md §4.7 "on a toolkit ForceQuitDialog message, creates or
// dismisses the dialog"). Grounded on edge.GrabEdge's time.AfterFunc
// single-shot timer idiom, generalized to a repeating 1Hz tick.
type ForceQuitTimer struct {
	win      compositor.XID
	dialog   compositor.ForceQuitDialog
	onExpire func()

	remaining time.Duration
	timer     *time.Timer
	stopped   bool
}

// NewForceQuitTimer returns a ForceQuitTimer for win, not yet started.
func NewForceQuitTimer(win compositor.XID, dialog compositor.ForceQuitDialog, onExpire func()) *ForceQuitTimer {
	return &ForceQuitTimer{win: win, dialog: dialog, onExpire: onExpire, remaining: forceQuitCountdown}
}

// Start shows the dialog at the full countdown and arms the first tick.
func (f *ForceQuitTimer) Start() {
	if f.dialog != nil {
		f.dialog.Show(f.win, f.remaining)
	}
	f.arm()
}

func (f *ForceQuitTimer) arm() {
	f.timer = time.AfterFunc(time.Second, f.tick)
}

// tick runs on a runtime-managed goroutine (SPEC_FULL.md §7); its only
// job is to update the countdown and, on expiry, invoke onExpire — never
// to touch widget state directly.
func (f *ForceQuitTimer) tick() {
	if f.stopped {
		return
	}
	f.remaining -= time.Second
	if f.remaining <= 0 {
		if f.onExpire != nil {
			f.onExpire()
		}
		return
	}
	if f.dialog != nil {
		f.dialog.Show(f.win, f.remaining)
	}
	f.arm()
}

// Stop cancels the countdown without dismissing the dialog (the caller,
// Controller.dismissForceQuit, owns calling Dismiss separately).
func (f *ForceQuitTimer) Stop() {
	f.stopped = true
	if f.timer != nil {
		f.timer.Stop()
	}
}

// Reposition forwards the window's new frame rect to the dialog, per
// spec.md §4.7's update_decoration_position step 5.
func (f *ForceQuitTimer) Reposition(frame geom.Rect) {
	if f.dialog != nil {
		f.dialog.Reposition(frame)
	}
}
