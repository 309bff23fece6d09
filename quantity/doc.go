// SPDX-License-Identifier: MIT

// Package quantity is the generic core of lvunits: the quantity kernel and the
// unit view generator every physical family is built from.
//
// 🚀 What is a quantity here?
//
//	A family (Length, Time, Mass, …) is a named float64 type whose value IS the
//	canonical scalar of that dimension (metres, seconds, grams, …). All
//	arithmetic happens on that scalar, so two lengths typed in different
//	units can never be added "in the wrong unit".
//
//	A unit view is View[F, U]: a family value seen through one named unit U.
//	U is a zero-size marker type whose Def method carries the conversion law
//	and the display symbol. The view stores only the canonical scalar; every
//	Value() call applies the inverse law afresh.
//
// ✨ Key features:
//   - Kernel over any ~float64 family: Zero, Add, Sub, Neg, Scale, Compare, Close.
//   - Linear laws (raw*ratio) and arbitrary equation pairs (affine, log, power).
//   - Display-value comparison against bare numbers on views (Less(3), Equal(5)).
//   - fmt.Stringer / fmt.Formatter rendering as "<value><symbol>", e.g. "5deg".
//   - YAML (gopkg.in/yaml.v3) marshalling of views as plain numbers.
//
// ⚙️ Usage:
//
//	type Length float64
//
//	type FeetUnit struct{}
//
//	var feetDef = quantity.Define[Length]("ft", quantity.Linear(0.3048))
//
//	func (FeetUnit) Def() quantity.Def[Length] { return feetDef }
//
//	ft := quantity.Make[Length, FeetUnit](3)  // 3ft, stored as 0.9144 m
//	fmt.Println(ft, float64(ft.Base()))       // 3ft 0.9144
//
// Errors & panics:
//   - Linear(0), Equation(nil, …), Define(""), WithRelTol(-1) panic: they are
//     configuration errors and are meant to fire during package initialisation.
//   - Numeric edge cases (log of zero, overflow) follow IEEE-754 and are not
//     reported; NaN and ±Inf propagate.
//   - ErrNotNumeric is the only runtime error (YAML decoding).
//
// Concurrency:
//
//	Every value is an immutable scalar copy; no state is shared, no locks exist.
package quantity
