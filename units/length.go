package units

import "github.com/katalvlaran/lvunits/quantity"

// Length is a distance in metres.
type Length float64

// Distance is an alias of Length.
type Distance = Length

// String renders the canonical value, e.g. "5m".
func (l Length) String() string { return quantity.FormatScalar(float64(l), "m") }

// MulLength returns the area of an l × o rectangle.
func (l Length) MulLength(o Length) Area {
	return Area(float64(l) * float64(o))
}

// DivTime returns the average speed covering l in t.
func (l Length) DivTime(t Time) Speed {
	return Speed(float64(l) / float64(t))
}

// DivSpeed returns the time needed to cover l at s.
func (l Length) DivSpeed(s Speed) Time {
	return Time(float64(l) / float64(s))
}
