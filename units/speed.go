package units

import "github.com/katalvlaran/lvunits/quantity"

// Speed is a speed in metres per second.
type Speed float64

// SpeedOfLight is the speed of light in vacuum, exact by definition of the metre.
const SpeedOfLight Speed = 299792458

// String renders the canonical value, e.g. "5mps".
func (s Speed) String() string { return quantity.FormatScalar(float64(s), "mps") }

// MulTime returns the distance covered at s during t.
func (s Speed) MulTime(t Time) Length {
	return Length(float64(s) * float64(t))
}

// DivTime returns the average acceleration reaching s in t.
func (s Speed) DivTime(t Time) Acceleration {
	return Acceleration(float64(s) / float64(t))
}
