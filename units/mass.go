package units

import "github.com/katalvlaran/lvunits/quantity"

// Mass is a mass in grams.
//
// Grams rather than kilograms is the canonical unit, which makes every
// operator pairing Mass with Force carry a factor of 1000.
type Mass float64

// gramsPerKilogram bridges the gram-based Mass and the kilogram-based newton.
const gramsPerKilogram = 1000.0

// String renders the canonical value, e.g. "5g".
func (m Mass) String() string { return quantity.FormatScalar(float64(m), "g") }

// MulAcceleration returns the force accelerating m at a: F = (m/1000)·a.
func (m Mass) MulAcceleration(a Acceleration) Force {
	return Force(float64(m) / gramsPerKilogram * float64(a))
}
