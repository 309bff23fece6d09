package units

import "github.com/katalvlaran/lvunits/quantity"

// Power is a power in watts.
type Power float64

// String renders the canonical value, e.g. "5W".
func (p Power) String() string { return quantity.FormatScalar(float64(p), "W") }
