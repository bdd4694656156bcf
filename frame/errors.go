// SPDX-License-Identifier: MIT
// Package: driftgraph/frame
//
// errors.go - sentinel errors for the frame driver.
//
// Policy:
//   - Sentinels only; callers match with errors.Is.
//   - Context is added with %w at the call site.

package frame

import "errors"

var (
	// ErrNotRunning indicates Step was called before Init.
	ErrNotRunning = errors.New("frame: driver not initialised")

	// ErrAlreadyInitialized indicates Init was called more than once.
	ErrAlreadyInitialized = errors.New("frame: driver already initialised")

	// ErrStopped indicates the driver was stopped and will not step again.
	ErrStopped = errors.New("frame: driver stopped")

	// ErrStepFailed wraps an unexpected failure inside a step. It is fatal:
	// the driver moves to Stopped.
	ErrStepFailed = errors.New("frame: step failed")
)
