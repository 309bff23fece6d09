// Package lvunits is a dimensional-analysis toolkit: physical quantities as
// distinct Go types, units as typed views over them, and the arithmetic
// between families checked by the compiler.
//
// 🚀 What is lvunits?
//
//	A small, zero-allocation library that brings together:
//		• Families: Length, Time, Speed, Mass, Force, Angle, Temperature, …
//		  each a named float64 holding one canonical unit
//		• Views: Feet, Knots, Fahrenheit, DecibelMilliwatts, … over a family,
//		  with linear or arbitrary (affine, logarithmic, power) laws
//		• Operators: Length.DivTime → Speed, Mass.MulAcceleration → Force, …
//		• Angles: in-place normalisation to [0, 360) or (-180, 180]
//
// ✨ Why choose lvunits?
//
//   - Mixing families does not compile: a Length cannot be added to a Time
//   - One source of truth: only the canonical scalar is stored, views convert
//   - Pure Go: generics, no reflection, no registry
//
// Under the hood, everything is organized under four packages:
//
//	quantity/       the generic kernel: Family, Law, Def, View, Close
//	si/             decimal prefix constants (Giga … Pico)
//	units/          the fifteen families, their operators and the unit catalog
//	units/literal/  short, symbol-named constructors (Ft, DegC, DBm, …)
//
// Quick example:
//
//	d := units.NauticalMiles(120).Base()
//	t := units.Minutes(45).Base()
//	fmt.Println(units.KnotsOf(d.DivTime(t)))   // 160kt
//
//	go get github.com/katalvlaran/lvunits
package lvunits
