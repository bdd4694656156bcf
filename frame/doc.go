// SPDX-License-Identifier: MIT
// Package: driftgraph/frame
//
// Package frame drives the simulation: one Step turns the previous node and
// edge collections plus the current viewport into the next frame, and Run
// repeats that on a fixed interval, handing every frame to a Renderer.
//
// State machine:
//
//	Idle ──Init──▶ Running ──Stop / fatal step──▶ Stopped
//
// Contract:
//   - Exactly one step runs at a time. A single timer is reset after each
//     render, so at most one step is ever pending.
//   - A panic inside a step is recovered, reported as ErrStepFailed, and the
//     driver stops. Live state is only replaced after a step completes.
//   - SetParams validates before swapping; invalid parameters never reach a
//     step.
//   - The Driver is safe for use from several goroutines (host UI, signal
//     handler, ...): a mutex guards all state.
//
// Collaborators are tiny interfaces (DimensionProvider, Renderer) with
// function adapters, so hosts can wire a terminal, an SVG writer or a test
// double without extra types.
package frame
