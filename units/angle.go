package units

import (
	"math"

	"github.com/katalvlaran/lvunits/quantity"
)

// Angle is a plane angle in degrees.
type Angle float64

// Turn fractions in canonical degrees.
const (
	FullCircle Angle = 360
	HalfCircle Angle = 180
)

// String renders the canonical value, e.g. "5deg".
func (a Angle) String() string { return quantity.FormatScalar(float64(a), "deg") }

// DivTime returns the average angular speed sweeping a in t.
func (a Angle) DivTime(t Time) AngularSpeed {
	return AngularSpeed(float64(a) / float64(t))
}

// LimitPositive wraps a into [0, 360) in place and returns a.
func (a *Angle) LimitPositive() *Angle {
	r := Angle(math.Mod(float64(*a), float64(FullCircle)))
	if r < 0 {
		r += FullCircle
	}
	// -tiny + 360 rounds to 360 in float64.
	if r >= FullCircle {
		r = 0
	}
	*a = r

	return a
}

// Limit360 is LimitPositive.
func (a *Angle) Limit360() *Angle { return a.LimitPositive() }

// Limit wraps a into (-180, 180] in place and returns a.
func (a *Angle) Limit() *Angle {
	a.LimitPositive()
	if *a > HalfCircle {
		*a -= FullCircle
	}

	return a
}

// Sign limits a in place, then reports +1, -1 or 0.
// A half turn is +1. NaN reports 0.
func (a *Angle) Sign() int {
	a.Limit()
	switch {
	case *a > 0:
		return 1
	case *a < 0:
		return -1
	default:
		return 0
	}
}
