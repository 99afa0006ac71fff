// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs holds the four sentinel error categories spec.md §7
// defines and the small Log/Log1 logging-pass-through helpers every
// other package calls at a fallible boundary. Grounded on
// base/errors/errors.go's Log/Log1 idiom, narrowed from that package's
// full Must/Ignore/Log2 surface to the two forms the decoration core's
// single-threaded, never-panic error policy actually uses: this core
// never wants Must (a bug here is InvariantViolation, not a fatal
// panic), so that half of the teacher's helper set has no home.
package errs

import (
	"errors"
	"log/slog"
)

// The four categories are sentinel values, not types (spec.md §7, §9):
// a package wraps its own specific error around one of these with
// fmt.Errorf("...: %w", category) so callers can still test the
// category with errors.Is without caring about the specific message.
var (
	// TransientVisual marks a missing theme file, failed texture load,
	// or unexpected empty X shape extents. Recovery: fall back to a
	// procedurally drawn asset; log once per key.
	TransientVisual = errors.New("transient visual error")

	// InvalidWMRequest marks client-message parameters out of range or
	// an unknown window id. Policy: drop silently, never propagate.
	InvalidWMRequest = errors.New("invalid wm request")

	// XProtocol marks an XChangeProperty/XSendEvent/XCreateWindow
	// failure. Policy: revert the in-memory state change that caused
	// the call; the next update() retries.
	XProtocol = errors.New("x protocol error")

	// InvariantViolation marks impossible internal state (a child
	// without a parent, a layout loop exceeding two passes). Policy:
	// log, abandon the affected subtree, continue running.
	InvariantViolation = errors.New("invariant violation")
)

// Log logs err (if non-nil) via slog and returns it unchanged, mirroring
// base/errors/errors.go's Log — the intended call shape is
// `return errs.Log(doThing())`.
func Log(err error) error {
	if err != nil {
		slog.Warn(err.Error())
	}
	return err
}

// Log1 logs err (if non-nil) and returns v regardless, the same
// log-and-keep-going shape as base/errors/errors.go's Log1 — used where
// a fallible call still has a usable zero/fallback value to hand back
// (spec.md §7: "a window that fails to acquire a frame remains
// un-decorated but still functional").
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Warn(err.Error())
	}
	return v
}
