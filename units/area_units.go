// SPDX-License-Identifier: MIT

package units

import (
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/si"
)

const squareMetersPerSquareInch = metersPerFoot * metersPerFoot / 144

var (
	hectaresDef          = quantity.Define[Area]("ha", quantity.Linear(si.Hecto*si.Hecto))
	squareFeetDef        = quantity.Define[Area]("ft2", quantity.Linear(metersPerFoot*metersPerFoot))
	squareInchesDef      = quantity.Define[Area]("in2", quantity.Linear(squareMetersPerSquareInch))
	squareGigametersDef  = quantity.Define[Area]("Gm2", quantity.Linear(si.Giga*si.Giga))
	squareMegametersDef  = quantity.Define[Area]("Mm2", quantity.Linear(si.Mega*si.Mega))
	squareKilometersDef  = quantity.Define[Area]("km2", quantity.Linear(si.Kilo*si.Kilo))
	squareHectometersDef = quantity.Define[Area]("hm2", quantity.Linear(si.Hecto*si.Hecto))
	squareDecametersDef  = quantity.Define[Area]("dam2", quantity.Linear(si.Deca*si.Deca))
	squareMetersDef      = quantity.Define[Area]("m2", quantity.Linear(1))
	squareDecimetersDef  = quantity.Define[Area]("dm2", quantity.Linear(si.Deci*si.Deci))
	squareCentimetersDef = quantity.Define[Area]("cm2", quantity.Linear(si.Centi*si.Centi))
	squareMillimetersDef = quantity.Define[Area]("mm2", quantity.Linear(si.Milli*si.Milli))
	squareMicrometersDef = quantity.Define[Area]("um2", quantity.Linear(si.Micro*si.Micro))
	squareNanometersDef  = quantity.Define[Area]("nm2", quantity.Linear(si.Nano*si.Nano))
	squarePicometersDef  = quantity.Define[Area]("pm2", quantity.Linear(si.Pico*si.Pico))
)

type (
	// HectaresUnit views an area in hectares (ha).
	HectaresUnit struct{}

	// SquareFeetUnit views an area in square feet (ft2).
	SquareFeetUnit struct{}

	// SquareInchesUnit views an area in square inches (in2).
	SquareInchesUnit struct{}

	// SquareGigametersUnit views an area in square gigameters (Gm2).
	SquareGigametersUnit struct{}

	// SquareMegametersUnit views an area in square megameters (Mm2).
	SquareMegametersUnit struct{}

	// SquareKilometersUnit views an area in square kilometers (km2).
	SquareKilometersUnit struct{}

	// SquareHectometersUnit views an area in square hectometers (hm2).
	SquareHectometersUnit struct{}

	// SquareDecametersUnit views an area in square decameters (dam2).
	SquareDecametersUnit struct{}

	// SquareMetersUnit views an area in square meters (m2).
	SquareMetersUnit struct{}

	// SquareDecimetersUnit views an area in square decimeters (dm2).
	SquareDecimetersUnit struct{}

	// SquareCentimetersUnit views an area in square centimeters (cm2).
	SquareCentimetersUnit struct{}

	// SquareMillimetersUnit views an area in square millimeters (mm2).
	SquareMillimetersUnit struct{}

	// SquareMicrometersUnit views an area in square micrometers (um2).
	SquareMicrometersUnit struct{}

	// SquareNanometersUnit views an area in square nanometers (nm2).
	SquareNanometersUnit struct{}

	// SquarePicometersUnit views an area in square picometers (pm2).
	SquarePicometersUnit struct{}
)

func (HectaresUnit) Def() quantity.Def[Area] { return hectaresDef }
func (SquareFeetUnit) Def() quantity.Def[Area] { return squareFeetDef }
func (SquareInchesUnit) Def() quantity.Def[Area] { return squareInchesDef }
func (SquareGigametersUnit) Def() quantity.Def[Area] { return squareGigametersDef }
func (SquareMegametersUnit) Def() quantity.Def[Area] { return squareMegametersDef }
func (SquareKilometersUnit) Def() quantity.Def[Area] { return squareKilometersDef }
func (SquareHectometersUnit) Def() quantity.Def[Area] { return squareHectometersDef }
func (SquareDecametersUnit) Def() quantity.Def[Area] { return squareDecametersDef }
func (SquareMetersUnit) Def() quantity.Def[Area] { return squareMetersDef }
func (SquareDecimetersUnit) Def() quantity.Def[Area] { return squareDecimetersDef }
func (SquareCentimetersUnit) Def() quantity.Def[Area] { return squareCentimetersDef }
func (SquareMillimetersUnit) Def() quantity.Def[Area] { return squareMillimetersDef }
func (SquareMicrometersUnit) Def() quantity.Def[Area] { return squareMicrometersDef }
func (SquareNanometersUnit) Def() quantity.Def[Area] { return squareNanometersDef }
func (SquarePicometersUnit) Def() quantity.Def[Area] { return squarePicometersDef }

// Hectares returns x hectares.
func Hectares(x float64) quantity.View[Area, HectaresUnit] {
	return quantity.Make[Area, HectaresUnit](x)
}

// HectaresOf views a in hectares.
func HectaresOf(a Area) quantity.View[Area, HectaresUnit] {
	return quantity.ViewOf[HectaresUnit](a)
}

// SquareFeet returns x square feet.
func SquareFeet(x float64) quantity.View[Area, SquareFeetUnit] {
	return quantity.Make[Area, SquareFeetUnit](x)
}

// SquareFeetOf views a in square feet.
func SquareFeetOf(a Area) quantity.View[Area, SquareFeetUnit] {
	return quantity.ViewOf[SquareFeetUnit](a)
}

// SquareInches returns x square inches.
func SquareInches(x float64) quantity.View[Area, SquareInchesUnit] {
	return quantity.Make[Area, SquareInchesUnit](x)
}

// SquareInchesOf views a in square inches.
func SquareInchesOf(a Area) quantity.View[Area, SquareInchesUnit] {
	return quantity.ViewOf[SquareInchesUnit](a)
}

// SquareGigameters returns x square gigameters.
func SquareGigameters(x float64) quantity.View[Area, SquareGigametersUnit] {
	return quantity.Make[Area, SquareGigametersUnit](x)
}

// SquareGigametersOf views a in square gigameters.
func SquareGigametersOf(a Area) quantity.View[Area, SquareGigametersUnit] {
	return quantity.ViewOf[SquareGigametersUnit](a)
}

// SquareMegameters returns x square megameters.
func SquareMegameters(x float64) quantity.View[Area, SquareMegametersUnit] {
	return quantity.Make[Area, SquareMegametersUnit](x)
}

// SquareMegametersOf views a in square megameters.
func SquareMegametersOf(a Area) quantity.View[Area, SquareMegametersUnit] {
	return quantity.ViewOf[SquareMegametersUnit](a)
}

// SquareKilometers returns x square kilometers.
func SquareKilometers(x float64) quantity.View[Area, SquareKilometersUnit] {
	return quantity.Make[Area, SquareKilometersUnit](x)
}

// SquareKilometersOf views a in square kilometers.
func SquareKilometersOf(a Area) quantity.View[Area, SquareKilometersUnit] {
	return quantity.ViewOf[SquareKilometersUnit](a)
}

// SquareHectometers returns x square hectometers.
func SquareHectometers(x float64) quantity.View[Area, SquareHectometersUnit] {
	return quantity.Make[Area, SquareHectometersUnit](x)
}

// SquareHectometersOf views a in square hectometers.
func SquareHectometersOf(a Area) quantity.View[Area, SquareHectometersUnit] {
	return quantity.ViewOf[SquareHectometersUnit](a)
}

// SquareDecameters returns x square decameters.
func SquareDecameters(x float64) quantity.View[Area, SquareDecametersUnit] {
	return quantity.Make[Area, SquareDecametersUnit](x)
}

// SquareDecametersOf views a in square decameters.
func SquareDecametersOf(a Area) quantity.View[Area, SquareDecametersUnit] {
	return quantity.ViewOf[SquareDecametersUnit](a)
}

// SquareMeters returns x square meters.
func SquareMeters(x float64) quantity.View[Area, SquareMetersUnit] {
	return quantity.Make[Area, SquareMetersUnit](x)
}

// SquareMetersOf views a in square meters.
func SquareMetersOf(a Area) quantity.View[Area, SquareMetersUnit] {
	return quantity.ViewOf[SquareMetersUnit](a)
}

// SquareDecimeters returns x square decimeters.
func SquareDecimeters(x float64) quantity.View[Area, SquareDecimetersUnit] {
	return quantity.Make[Area, SquareDecimetersUnit](x)
}

// SquareDecimetersOf views a in square decimeters.
func SquareDecimetersOf(a Area) quantity.View[Area, SquareDecimetersUnit] {
	return quantity.ViewOf[SquareDecimetersUnit](a)
}

// SquareCentimeters returns x square centimeters.
func SquareCentimeters(x float64) quantity.View[Area, SquareCentimetersUnit] {
	return quantity.Make[Area, SquareCentimetersUnit](x)
}

// SquareCentimetersOf views a in square centimeters.
func SquareCentimetersOf(a Area) quantity.View[Area, SquareCentimetersUnit] {
	return quantity.ViewOf[SquareCentimetersUnit](a)
}

// SquareMillimeters returns x square millimeters.
func SquareMillimeters(x float64) quantity.View[Area, SquareMillimetersUnit] {
	return quantity.Make[Area, SquareMillimetersUnit](x)
}

// SquareMillimetersOf views a in square millimeters.
func SquareMillimetersOf(a Area) quantity.View[Area, SquareMillimetersUnit] {
	return quantity.ViewOf[SquareMillimetersUnit](a)
}

// SquareMicrometers returns x square micrometers.
func SquareMicrometers(x float64) quantity.View[Area, SquareMicrometersUnit] {
	return quantity.Make[Area, SquareMicrometersUnit](x)
}

// SquareMicrometersOf views a in square micrometers.
func SquareMicrometersOf(a Area) quantity.View[Area, SquareMicrometersUnit] {
	return quantity.ViewOf[SquareMicrometersUnit](a)
}

// SquareNanometers returns x square nanometers.
func SquareNanometers(x float64) quantity.View[Area, SquareNanometersUnit] {
	return quantity.Make[Area, SquareNanometersUnit](x)
}

// SquareNanometersOf views a in square nanometers.
func SquareNanometersOf(a Area) quantity.View[Area, SquareNanometersUnit] {
	return quantity.ViewOf[SquareNanometersUnit](a)
}

// SquarePicometers returns x square picometers.
func SquarePicometers(x float64) quantity.View[Area, SquarePicometersUnit] {
	return quantity.Make[Area, SquarePicometersUnit](x)
}

// SquarePicometersOf views a in square picometers.
func SquarePicometersOf(a Area) quantity.View[Area, SquarePicometersUnit] {
	return quantity.ViewOf[SquarePicometersUnit](a)
}
