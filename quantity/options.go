// SPDX-License-Identifier: MIT

// Package quantity: functional configuration for approximate comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package quantity

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRelTol is the relative tolerance used by Close.
	DefaultRelTol = 1e-9

	// DefaultAbsTol is the absolute tolerance used by Close, in canonical units.
	// Zero means only the relative term applies; set it when comparing near zero.
	DefaultAbsTol = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRelTolInvalid = "quantity: WithRelTol: tolerance must be finite, non-negative"
	panicAbsTolInvalid = "quantity: WithAbsTol: tolerance must be finite, non-negative"
	panicZeroRatio     = "quantity: Linear: zero ratio not allowed"
	panicBadRatio      = "quantity: Linear: ratio must be finite"
	panicNilEquation   = "quantity: Equation: forward and inverse must be non-nil"
	panicEmptySymbol   = "quantity: Define: unit symbol must be non-empty"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; callers go through the WithX constructors.
type Options struct {
	relTol float64 // >= 0; DefaultRelTol
	absTol float64 // >= 0; DefaultAbsTol
}

// WithRelTol sets the relative tolerance of Close.
//
// Panics with a stable message when rtol is negative, NaN or infinite.
func WithRelTol(rtol float64) Option {
	if isNonFinite(rtol) || rtol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = rtol }
}

// WithAbsTol sets the absolute tolerance of Close, in canonical units of the
// family being compared.
//
// Panics with a stable message when atol is negative, NaN or infinite.
func WithAbsTol(atol float64) Option {
	if isNonFinite(atol) || atol < 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.absTol = atol }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		relTol: DefaultRelTol,
		absTol: DefaultAbsTol,
	}
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
