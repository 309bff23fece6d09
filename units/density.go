package units

import "github.com/katalvlaran/lvunits/quantity"

// Density is a mass density in kilograms per cubic metre.
type Density float64

// String renders the canonical value, e.g. "5kg_m3".
func (d Density) String() string { return quantity.FormatScalar(float64(d), "kg_m3") }

// MulVolume returns the mass of v at density d.
// One kg/m³ over one litre is exactly one gram, so no factor is needed.
func (d Density) MulVolume(v Volume) Mass {
	return Mass(float64(d) * float64(v))
}
