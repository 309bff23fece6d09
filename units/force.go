package units

import "github.com/katalvlaran/lvunits/quantity"

// Force is a force in newtons.
type Force float64

// String renders the canonical value, e.g. "5N".
func (f Force) String() string { return quantity.FormatScalar(float64(f), "N") }

// DivMass returns the acceleration f imparts on m.
func (f Force) DivMass(m Mass) Acceleration {
	return Acceleration(float64(f) / (float64(m) / gramsPerKilogram))
}

// DivAcceleration returns the mass that f accelerates at a.
func (f Force) DivAcceleration(a Acceleration) Mass {
	return Mass(float64(f) / float64(a) * gramsPerKilogram)
}

// DivArea returns the pressure of f spread over a.
func (f Force) DivArea(a Area) Pressure {
	return Pressure(float64(f) / float64(a))
}

// DivPressure returns the area over which f produces p.
func (f Force) DivPressure(p Pressure) Area {
	return Area(float64(f) / float64(p))
}
