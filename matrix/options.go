// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the power-iteration engine.
// This file defines:
//   - PowerOption / powerOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherPowerOptions helper (internal).
//
// Design goals:
//   - Defaults reproduce the bare algorithm exactly: a fixed iteration count,
//     no convergence test, NaN propagation on a zero norm.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance disables early stopping: every requested iteration runs.
	DefaultTolerance = 0.0

	// DefaultCheckDegenerateNorm keeps the bare semantics: a zero or non-finite
	// norm divides through and NaN/Inf flows into the result.
	DefaultCheckDegenerateNorm = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "matrix: WithTolerance: eps must be finite and > 0"
	panicObserverNil      = "matrix: WithObserver: observer must not be nil"
)

// Observer receives the Rayleigh estimate xᵀ·A·x after iteration iter (1-based).
type Observer func(iter int, estimate float32)

// PowerOption mutates power-iteration options. Safe to apply repeatedly.
type PowerOption func(*powerOptions)

// powerOptions stores the effective configuration after applying setters.
type powerOptions struct {
	tolerance float32  // > 0 enables early stop; DefaultTolerance disables it
	checkNorm bool     // DefaultCheckDegenerateNorm
	observer  Observer // nil unless WithObserver
}

// WithTolerance enables early stopping once two consecutive Rayleigh
// estimates differ by at most eps. The iteration count stays an upper bound.
//
// Behavior highlights:
//   - Each iteration then costs one extra matrix-vector product for the estimate.
//
// Errors:
//   - Panics when eps is NaN, ±Inf or ≤ 0.
func WithTolerance(eps float32) PowerOption {
	e := float64(eps)
	if math.IsNaN(e) || math.IsInf(e, 0) || eps <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *powerOptions) { o.tolerance = eps }
}

// WithDegenerateNormCheck makes normalization fail with ErrDegenerateNorm
// instead of dividing by a zero or non-finite norm.
func WithDegenerateNormCheck() PowerOption {
	return func(o *powerOptions) { o.checkNorm = true }
}

// WithObserver registers a callback that receives the Rayleigh estimate after
// every iteration. Panics on a nil observer.
func WithObserver(fn Observer) PowerOption {
	if fn == nil {
		panic(panicObserverNil)
	}

	return func(o *powerOptions) { o.observer = fn }
}

// gatherPowerOptions applies user setters on top of the defaults (last-writer-wins).
func gatherPowerOptions(user ...PowerOption) powerOptions {
	o := powerOptions{
		tolerance: DefaultTolerance,
		checkNorm: DefaultCheckDegenerateNorm,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// tracksEstimate reports whether every iteration must compute a Rayleigh estimate.
func (o powerOptions) tracksEstimate() bool {
	return o.tolerance > 0 || o.observer != nil
}
