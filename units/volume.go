package units

import "github.com/katalvlaran/lvunits/quantity"

// Volume is a volume in litres.
type Volume float64

// String renders the canonical value, e.g. "5L".
func (v Volume) String() string { return quantity.FormatScalar(float64(v), "L") }

// DivLength returns the base area of a prism of volume v and height l.
func (v Volume) DivLength(l Length) Area {
	return Area(float64(v) / litersPerCubicMeter / float64(l))
}
