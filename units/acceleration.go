package units

import "github.com/katalvlaran/lvunits/quantity"

// Acceleration is an acceleration in metres per second squared.
type Acceleration float64

// String renders the canonical value, e.g. "5mps2".
func (a Acceleration) String() string { return quantity.FormatScalar(float64(a), "mps2") }

// MulTime returns the speed gained under a during t.
func (a Acceleration) MulTime(t Time) Speed {
	return Speed(float64(a) * float64(t))
}

// MulMass returns the force accelerating m at a. Same as m.MulAcceleration(a).
func (a Acceleration) MulMass(m Mass) Force {
	return m.MulAcceleration(a)
}
