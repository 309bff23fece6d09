// SPDX-License-Identifier: MIT

// Package si holds the decimal SI prefix scale factors used to define
// metric-prefixed units.
//
// The constants are untyped, so they stay exact until they meet a float64,
// and a catalog entry such as Linear(si.Kilo) or Linear(si.Centi*si.Centi)
// folds at compile time.
package si

// Multiples.
const (
	Giga  = 1e9
	Mega  = 1e6
	Kilo  = 1e3
	Hecto = 1e2
	Deca  = 1e1
)

// Submultiples.
const (
	Deci  = 1e-1
	Centi = 1e-2
	Milli = 1e-3
	Micro = 1e-6
	Nano  = 1e-9
	Pico  = 1e-12
)
