package units

import "github.com/katalvlaran/lvunits/quantity"

// AngularSpeed is an angular speed in degrees per second.
type AngularSpeed float64

// String renders the canonical value, e.g. "5deg_s".
func (w AngularSpeed) String() string { return quantity.FormatScalar(float64(w), "deg_s") }

// MulTime returns the angle swept at w during t. The result is not limited.
func (w AngularSpeed) MulTime(t Time) Angle {
	return Angle(float64(w) * float64(t))
}

// DivTime returns the average angular acceleration reaching w in t.
func (w AngularSpeed) DivTime(t Time) AngularAcceleration {
	return AngularAcceleration(float64(w) / float64(t))
}
