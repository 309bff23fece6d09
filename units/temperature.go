package units

import "github.com/katalvlaran/lvunits/quantity"

// Temperature is a temperature in degrees Celsius.
//
// Kelvin, Fahrenheit and Rankine are affine views: their zero is not the
// canonical zero. Adding two Temperatures adds Celsius readings.
type Temperature float64

// String renders the canonical value, e.g. "5degC".
func (t Temperature) String() string { return quantity.FormatScalar(float64(t), "degC") }
