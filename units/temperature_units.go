// SPDX-License-Identifier: MIT

package units

import "github.com/katalvlaran/lvunits/quantity"

const (
	kelvinOffset  = 273.15
	rankineOffset = 491.67
)

var (
	celsiusDef = quantity.Define[Temperature]("degC", quantity.Linear(1))

	kelvinDef = quantity.Define[Temperature]("degK", quantity.Equation(
		func(k float64) float64 { return k - kelvinOffset },
		func(c float64) float64 { return c + kelvinOffset },
	))

	fahrenheitDef = quantity.Define[Temperature]("degF", quantity.Equation(
		func(f float64) float64 { return (f - 32) * 5 / 9 },
		func(c float64) float64 { return c*9/5 + 32 },
	))

	rankineDef = quantity.Define[Temperature]("degR", quantity.Equation(
		func(r float64) float64 { return (r - rankineOffset) * 5 / 9 },
		func(c float64) float64 { return c*9/5 + rankineOffset },
	))
)

type (
	// CelsiusUnit views a temperature in celsius (degC).
	CelsiusUnit struct{}

	// KelvinUnit views a temperature in kelvin (degK).
	KelvinUnit struct{}

	// FahrenheitUnit views a temperature in fahrenheit (degF).
	FahrenheitUnit struct{}

	// RankineUnit views a temperature in rankine (degR).
	RankineUnit struct{}
)

func (CelsiusUnit) Def() quantity.Def[Temperature] { return celsiusDef }
func (KelvinUnit) Def() quantity.Def[Temperature] { return kelvinDef }
func (FahrenheitUnit) Def() quantity.Def[Temperature] { return fahrenheitDef }
func (RankineUnit) Def() quantity.Def[Temperature] { return rankineDef }

// Celsius returns x celsius.
func Celsius(x float64) quantity.View[Temperature, CelsiusUnit] {
	return quantity.Make[Temperature, CelsiusUnit](x)
}

// CelsiusOf views t in celsius.
func CelsiusOf(t Temperature) quantity.View[Temperature, CelsiusUnit] {
	return quantity.ViewOf[CelsiusUnit](t)
}

// Kelvin returns x kelvin.
func Kelvin(x float64) quantity.View[Temperature, KelvinUnit] {
	return quantity.Make[Temperature, KelvinUnit](x)
}

// KelvinOf views t in kelvin.
func KelvinOf(t Temperature) quantity.View[Temperature, KelvinUnit] {
	return quantity.ViewOf[KelvinUnit](t)
}

// Fahrenheit returns x fahrenheit.
func Fahrenheit(x float64) quantity.View[Temperature, FahrenheitUnit] {
	return quantity.Make[Temperature, FahrenheitUnit](x)
}

// FahrenheitOf views t in fahrenheit.
func FahrenheitOf(t Temperature) quantity.View[Temperature, FahrenheitUnit] {
	return quantity.ViewOf[FahrenheitUnit](t)
}

// Rankine returns x rankine.
func Rankine(x float64) quantity.View[Temperature, RankineUnit] {
	return quantity.Make[Temperature, RankineUnit](x)
}

// RankineOf views t in rankine.
func RankineOf(t Temperature) quantity.View[Temperature, RankineUnit] {
	return quantity.ViewOf[RankineUnit](t)
}
