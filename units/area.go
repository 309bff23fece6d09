package units

import "github.com/katalvlaran/lvunits/quantity"

// Area is an area in square metres.
type Area float64

// litersPerCubicMeter bridges the metre-based Area/Length and the litre-based Volume.
const litersPerCubicMeter = 1000.0

// String renders the canonical value, e.g. "5m2".
func (a Area) String() string { return quantity.FormatScalar(float64(a), "m2") }

// DivLength returns the other side of a rectangle of area a and side l.
func (a Area) DivLength(l Length) Length {
	return Length(float64(a) / float64(l))
}

// MulLength returns the volume of a prism of base a and height l.
func (a Area) MulLength(l Length) Volume {
	return Volume(float64(a) * float64(l) * litersPerCubicMeter)
}
