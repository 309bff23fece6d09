// SPDX-License-Identifier: MIT

package units

import "github.com/katalvlaran/lvunits/quantity"

var (
	kilogramsPerCubicMeterDef  = quantity.Define[Density]("kg_m3", quantity.Linear(1))
	kilogramsPerLiterDef       = quantity.Define[Density]("kg_L", quantity.Linear(1000))
	gramsPerCubicCentimeterDef = quantity.Define[Density]("g_cm3", quantity.Linear(1000))
	gramsPerMilliliterDef      = quantity.Define[Density]("g_mL", quantity.Linear(1000))
	tonnesPerCubicMeterDef     = quantity.Define[Density]("t_m3", quantity.Linear(1000))
)

type (
	// KilogramsPerCubicMeterUnit views a density in kilograms per cubic meter (kg_m3).
	KilogramsPerCubicMeterUnit struct{}

	// KilogramsPerLiterUnit views a density in kilograms per liter (kg_L).
	KilogramsPerLiterUnit struct{}

	// GramsPerCubicCentimeterUnit views a density in grams per cubic centimeter (g_cm3).
	GramsPerCubicCentimeterUnit struct{}

	// GramsPerMilliliterUnit views a density in grams per milliliter (g_mL).
	GramsPerMilliliterUnit struct{}

	// TonnesPerCubicMeterUnit views a density in tonnes per cubic meter (t_m3).
	TonnesPerCubicMeterUnit struct{}
)

func (KilogramsPerCubicMeterUnit) Def() quantity.Def[Density] { return kilogramsPerCubicMeterDef }
func (KilogramsPerLiterUnit) Def() quantity.Def[Density] { return kilogramsPerLiterDef }
func (GramsPerCubicCentimeterUnit) Def() quantity.Def[Density] { return gramsPerCubicCentimeterDef }
func (GramsPerMilliliterUnit) Def() quantity.Def[Density] { return gramsPerMilliliterDef }
func (TonnesPerCubicMeterUnit) Def() quantity.Def[Density] { return tonnesPerCubicMeterDef }

// KilogramsPerCubicMeter returns x kilograms per cubic meter.
func KilogramsPerCubicMeter(x float64) quantity.View[Density, KilogramsPerCubicMeterUnit] {
	return quantity.Make[Density, KilogramsPerCubicMeterUnit](x)
}

// KilogramsPerCubicMeterOf views d in kilograms per cubic meter.
func KilogramsPerCubicMeterOf(d Density) quantity.View[Density, KilogramsPerCubicMeterUnit] {
	return quantity.ViewOf[KilogramsPerCubicMeterUnit](d)
}

// KilogramsPerLiter returns x kilograms per liter.
func KilogramsPerLiter(x float64) quantity.View[Density, KilogramsPerLiterUnit] {
	return quantity.Make[Density, KilogramsPerLiterUnit](x)
}

// KilogramsPerLiterOf views d in kilograms per liter.
func KilogramsPerLiterOf(d Density) quantity.View[Density, KilogramsPerLiterUnit] {
	return quantity.ViewOf[KilogramsPerLiterUnit](d)
}

// GramsPerCubicCentimeter returns x grams per cubic centimeter.
func GramsPerCubicCentimeter(x float64) quantity.View[Density, GramsPerCubicCentimeterUnit] {
	return quantity.Make[Density, GramsPerCubicCentimeterUnit](x)
}

// GramsPerCubicCentimeterOf views d in grams per cubic centimeter.
func GramsPerCubicCentimeterOf(d Density) quantity.View[Density, GramsPerCubicCentimeterUnit] {
	return quantity.ViewOf[GramsPerCubicCentimeterUnit](d)
}

// GramsPerMilliliter returns x grams per milliliter.
func GramsPerMilliliter(x float64) quantity.View[Density, GramsPerMilliliterUnit] {
	return quantity.Make[Density, GramsPerMilliliterUnit](x)
}

// GramsPerMilliliterOf views d in grams per milliliter.
func GramsPerMilliliterOf(d Density) quantity.View[Density, GramsPerMilliliterUnit] {
	return quantity.ViewOf[GramsPerMilliliterUnit](d)
}

// TonnesPerCubicMeter returns x tonnes per cubic meter.
func TonnesPerCubicMeter(x float64) quantity.View[Density, TonnesPerCubicMeterUnit] {
	return quantity.Make[Density, TonnesPerCubicMeterUnit](x)
}

// TonnesPerCubicMeterOf views d in tonnes per cubic meter.
func TonnesPerCubicMeterOf(d Density) quantity.View[Density, TonnesPerCubicMeterUnit] {
	return quantity.ViewOf[TonnesPerCubicMeterUnit](d)
}
