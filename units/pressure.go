package units

import "github.com/katalvlaran/lvunits/quantity"

// Pressure is a pressure in pascals.
type Pressure float64

// String renders the canonical value, e.g. "5Pa".
func (p Pressure) String() string { return quantity.FormatScalar(float64(p), "Pa") }

// MulArea returns the force p exerts on a.
func (p Pressure) MulArea(a Area) Force {
	return Force(float64(p) * float64(a))
}

// DivForce returns the area on which f produces pressure p, i.e. f / p.
func (p Pressure) DivForce(f Force) Area {
	return f.DivPressure(p)
}
