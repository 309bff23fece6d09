// SPDX-License-Identifier: MIT
// Package quantity_test contains test fixtures.
//
// Purpose:
//   • Two tiny families (a linear one and an affine one) so the generic kernel
//     and view generator are exercised without importing the catalog.

package quantity_test

import "github.com/katalvlaran/lvunits/quantity"

// distance is a linear test family in metres.
type distance float64

// temp is an affine test family in degrees Celsius.
type temp float64

type meterUnit struct{}

type footUnit struct{}

type kiloUnit struct{}

type celsiusUnit struct{}

type fahrenheitUnit struct{}

var (
	meterDef = quantity.Define[distance]("m", quantity.Linear(1))
	footDef  = quantity.Define[distance]("ft", quantity.Linear(0.3048))
	kiloDef  = quantity.Define[distance]("km", quantity.Linear(1000))

	celsiusDef    = quantity.Define[temp]("degC", quantity.Linear(1))
	fahrenheitDef = quantity.Define[temp]("degF", quantity.Equation(
		func(f float64) float64 { return (5.0 / 9.0) * (f - 32.0) },
		func(c float64) float64 { return (9.0/5.0)*c + 32.0 },
	))
)

func (meterUnit) Def() quantity.Def[distance] { return meterDef }
func (footUnit) Def() quantity.Def[distance] { return footDef }
func (kiloUnit) Def() quantity.Def[distance] { return kiloDef }
func (celsiusUnit) Def() quantity.Def[temp] { return celsiusDef }
func (fahrenheitUnit) Def() quantity.Def[temp] { return fahrenheitDef }

func meters(x float64) quantity.View[distance, meterUnit] {
	return quantity.Make[distance, meterUnit](x)
}

func feet(x float64) quantity.View[distance, footUnit] {
	return quantity.Make[distance, footUnit](x)
}

func fahrenheit(x float64) quantity.View[temp, fahrenheitUnit] {
	return quantity.Make[temp, fahrenheitUnit](x)
}
