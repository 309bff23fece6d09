// SPDX-License-Identifier: MIT

package quantity

import "math"

// Law is a conversion law between a unit's raw display value and the family's
// canonical scalar.
//
// Two shapes exist:
//   - linear:   canonical = raw * ratio,  raw = canonical * (1/ratio)
//   - equation: canonical = toBase(raw),  raw = fromBase(canonical)
//
// The zero Law is not usable; build one with Linear or Equation.
type Law struct {
	ratio    float64 // linear only; 0 for equation laws
	inverse  float64 // 1/ratio, computed once
	toBase   func(float64) float64
	fromBase func(float64) float64
}

// Linear returns the proportional law canonical = raw*ratio.
//
// A ratio of exactly zero would make the unit unreadable and is rejected by
// panicking; NaN and ±Inf ratios are rejected the same way. Catalog laws are
// built in package-level variable declarations, so a bad ratio stops program
// initialisation before any value of the unit can be constructed.
func Linear(ratio float64) Law {
	if ratio == 0 {
		panic(panicZeroRatio)
	}
	if isNonFinite(ratio) {
		panic(panicBadRatio)
	}

	return Law{ratio: ratio, inverse: 1.0 / ratio}
}

// Equation returns a law built from an explicit forward/inverse pair.
//
// toBase maps the unit's raw value to the canonical scalar, fromBase maps it
// back. No validation of domain is done: a logarithmic fromBase applied to a
// zero canonical value yields whatever math.Log10 yields (-Inf), by contract.
func Equation(toBase, fromBase func(float64) float64) Law {
	if toBase == nil || fromBase == nil {
		panic(panicNilEquation)
	}

	return Law{toBase: toBase, fromBase: fromBase}
}

// ToBase applies the forward law.
func (l Law) ToBase(raw float64) float64 {
	if l.toBase != nil {
		return l.toBase(raw)
	}

	return raw * l.ratio
}

// FromBase applies the inverse law.
func (l Law) FromBase(canonical float64) float64 {
	if l.fromBase != nil {
		return l.fromBase(canonical)
	}

	return canonical * l.inverse
}

// IsLinear reports whether l is a proportional law.
func (l Law) IsLinear() bool {
	return l.toBase == nil && l.ratio != 0
}

// Ratio returns the linear ratio, or NaN for equation laws.
func (l Law) Ratio() float64 {
	if !l.IsLinear() {
		return math.NaN()
	}

	return l.ratio
}

// Def is the definition of one named unit of family F: its display symbol and
// its conversion law. The type parameter ties the unit to exactly one family.
type Def[F Family] struct {
	symbol string
	law    Law
}

// Define builds a unit definition for family F.
//
// Panics when symbol is empty or law is the zero Law.
func Define[F Family](symbol string, law Law) Def[F] {
	if symbol == "" {
		panic(panicEmptySymbol)
	}
	if law.toBase == nil && law.ratio == 0 {
		panic(panicZeroRatio)
	}

	return Def[F]{symbol: symbol, law: law}
}

// Symbol returns the display tag, e.g. "ft".
func (d Def[F]) Symbol() string { return d.symbol }

// Law returns the conversion law.
func (d Def[F]) Law() Law { return d.law }

// Unit is implemented by the zero-size marker type of every named unit of F.
//
// The marker's type, not any stored field, decides which law a View applies.
type Unit[F Family] interface {
	Def() Def[F]
}
