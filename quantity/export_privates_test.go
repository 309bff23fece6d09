// SPDX-License-Identifier: MIT

package quantity

// Test bridge (white-box) for panic messages and option resolution.
//
// Purpose:
//   - Expose unexported panic constants so quantity_test asserts exact values
//     without magic strings.
//   - Expose resolved tolerances so defaults and "last writer wins" are testable.
//
// Build policy:
//   - The _test.go suffix keeps this file out of production builds.

// Panic message exports.
const (
	PanicRelTolInvalid_TestOnly = panicRelTolInvalid
	PanicAbsTolInvalid_TestOnly = panicAbsTolInvalid
	PanicZeroRatio_TestOnly     = panicZeroRatio
	PanicBadRatio_TestOnly      = panicBadRatio
	PanicNilEquation_TestOnly   = panicNilEquation
	PanicEmptySymbol_TestOnly   = panicEmptySymbol
)

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	RelTol float64
	AbsTol float64
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{RelTol: o.relTol, AbsTol: o.absTol}
}
