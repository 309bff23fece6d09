package units

import "github.com/katalvlaran/lvunits/quantity"

// AngularAcceleration is an angular acceleration in degrees per second squared.
type AngularAcceleration float64

// String renders the canonical value, e.g. "5deg_s2".
func (a AngularAcceleration) String() string { return quantity.FormatScalar(float64(a), "deg_s2") }

// MulTime returns the angular speed gained under a during t.
func (a AngularAcceleration) MulTime(t Time) AngularSpeed {
	return AngularSpeed(float64(a) * float64(t))
}
