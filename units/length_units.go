// SPDX-License-Identifier: MIT

package units

import (
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/si"
)

// metersPerFoot is the international foot; most customary units hang off it.
const metersPerFoot = 0.3048

var (
	flightLevelsDef      = quantity.Define[Length]("fl", quantity.Linear(100*metersPerFoot))
	astronomicalUnitsDef = quantity.Define[Length]("au", quantity.Linear(149597870700))
	dataMilesDef         = quantity.Define[Length]("data_mile", quantity.Linear(6000*metersPerFoot))
	nauticalMilesDef     = quantity.Define[Length]("nmi", quantity.Linear(1852))
	milesDef             = quantity.Define[Length]("mi", quantity.Linear(5280*metersPerFoot))
	leaguesDef           = quantity.Define[Length]("league", quantity.Linear(3*5280*metersPerFoot))
	fathomsDef           = quantity.Define[Length]("fathom", quantity.Linear(6*metersPerFoot))
	furlongsDef          = quantity.Define[Length]("furlong", quantity.Linear(660*metersPerFoot))
	yardsDef             = quantity.Define[Length]("yd", quantity.Linear(3*metersPerFoot))
	kiloFeetDef          = quantity.Define[Length]("kft", quantity.Linear(1000*metersPerFoot))
	feetDef              = quantity.Define[Length]("ft", quantity.Linear(metersPerFoot))
	usSurveyFeetDef      = quantity.Define[Length]("survey_ft", quantity.Linear(1200.0/3937.0))
	inchesDef            = quantity.Define[Length]("in", quantity.Linear(metersPerFoot/12))
	gigametersDef        = quantity.Define[Length]("Gm", quantity.Linear(si.Giga))
	megametersDef        = quantity.Define[Length]("Mm", quantity.Linear(si.Mega))
	kilometersDef        = quantity.Define[Length]("km", quantity.Linear(si.Kilo))
	hectometersDef       = quantity.Define[Length]("hm", quantity.Linear(si.Hecto))
	decametersDef        = quantity.Define[Length]("dam", quantity.Linear(si.Deca))
	metersDef            = quantity.Define[Length]("m", quantity.Linear(1))
	decimetersDef        = quantity.Define[Length]("dm", quantity.Linear(si.Deci))
	centimetersDef       = quantity.Define[Length]("cm", quantity.Linear(si.Centi))
	millimetersDef       = quantity.Define[Length]("mm", quantity.Linear(si.Milli))
	micrometersDef       = quantity.Define[Length]("um", quantity.Linear(si.Micro))
	nanometersDef        = quantity.Define[Length]("nm", quantity.Linear(si.Nano))
	picometersDef        = quantity.Define[Length]("pm", quantity.Linear(si.Pico))
)

type (
	// FlightLevelsUnit views a length in flight levels (fl).
	// 100 ft of pressure altitude.
	FlightLevelsUnit struct{}

	// AstronomicalUnitsUnit views a length in astronomical units (au).
	// Exact by IAU 2012 definition.
	AstronomicalUnitsUnit struct{}

	// DataMilesUnit views a length in data miles (data_mile).
	// 6000 ft, the radar data mile.
	DataMilesUnit struct{}

	// NauticalMilesUnit views a length in nautical miles (nmi).
	NauticalMilesUnit struct{}

	// MilesUnit views a length in miles (mi).
	// The international statute mile.
	MilesUnit struct{}

	// LeaguesUnit views a length in leagues (league).
	// Three statute miles.
	LeaguesUnit struct{}

	// FathomsUnit views a length in fathoms (fathom).
	FathomsUnit struct{}

	// FurlongsUnit views a length in furlongs (furlong).
	FurlongsUnit struct{}

	// YardsUnit views a length in yards (yd).
	YardsUnit struct{}

	// KiloFeetUnit views a length in thousands of feet (kft).
	KiloFeetUnit struct{}

	// FeetUnit views a length in feet (ft).
	// The international foot.
	FeetUnit struct{}

	// USSurveyFeetUnit views a length in US survey feet (survey_ft).
	USSurveyFeetUnit struct{}

	// InchesUnit views a length in inches (in).
	InchesUnit struct{}

	// GigametersUnit views a length in gigameters (Gm).
	GigametersUnit struct{}

	// MegametersUnit views a length in megameters (Mm).
	MegametersUnit struct{}

	// KilometersUnit views a length in kilometers (km).
	KilometersUnit struct{}

	// HectometersUnit views a length in hectometers (hm).
	HectometersUnit struct{}

	// DecametersUnit views a length in decameters (dam).
	DecametersUnit struct{}

	// MetersUnit views a length in meters (m).
	MetersUnit struct{}

	// DecimetersUnit views a length in decimeters (dm).
	DecimetersUnit struct{}

	// CentimetersUnit views a length in centimeters (cm).
	CentimetersUnit struct{}

	// MillimetersUnit views a length in millimeters (mm).
	MillimetersUnit struct{}

	// MicrometersUnit views a length in micrometers (um).
	MicrometersUnit struct{}

	// NanometersUnit views a length in nanometers (nm).
	NanometersUnit struct{}

	// PicometersUnit views a length in picometers (pm).
	PicometersUnit struct{}
)

func (FlightLevelsUnit) Def() quantity.Def[Length] { return flightLevelsDef }
func (AstronomicalUnitsUnit) Def() quantity.Def[Length] { return astronomicalUnitsDef }
func (DataMilesUnit) Def() quantity.Def[Length] { return dataMilesDef }
func (NauticalMilesUnit) Def() quantity.Def[Length] { return nauticalMilesDef }
func (MilesUnit) Def() quantity.Def[Length] { return milesDef }
func (LeaguesUnit) Def() quantity.Def[Length] { return leaguesDef }
func (FathomsUnit) Def() quantity.Def[Length] { return fathomsDef }
func (FurlongsUnit) Def() quantity.Def[Length] { return furlongsDef }
func (YardsUnit) Def() quantity.Def[Length] { return yardsDef }
func (KiloFeetUnit) Def() quantity.Def[Length] { return kiloFeetDef }
func (FeetUnit) Def() quantity.Def[Length] { return feetDef }
func (USSurveyFeetUnit) Def() quantity.Def[Length] { return usSurveyFeetDef }
func (InchesUnit) Def() quantity.Def[Length] { return inchesDef }
func (GigametersUnit) Def() quantity.Def[Length] { return gigametersDef }
func (MegametersUnit) Def() quantity.Def[Length] { return megametersDef }
func (KilometersUnit) Def() quantity.Def[Length] { return kilometersDef }
func (HectometersUnit) Def() quantity.Def[Length] { return hectometersDef }
func (DecametersUnit) Def() quantity.Def[Length] { return decametersDef }
func (MetersUnit) Def() quantity.Def[Length] { return metersDef }
func (DecimetersUnit) Def() quantity.Def[Length] { return decimetersDef }
func (CentimetersUnit) Def() quantity.Def[Length] { return centimetersDef }
func (MillimetersUnit) Def() quantity.Def[Length] { return millimetersDef }
func (MicrometersUnit) Def() quantity.Def[Length] { return micrometersDef }
func (NanometersUnit) Def() quantity.Def[Length] { return nanometersDef }
func (PicometersUnit) Def() quantity.Def[Length] { return picometersDef }

// FlightLevels returns x flight levels.
func FlightLevels(x float64) quantity.View[Length, FlightLevelsUnit] {
	return quantity.Make[Length, FlightLevelsUnit](x)
}

// FlightLevelsOf views l in flight levels.
func FlightLevelsOf(l Length) quantity.View[Length, FlightLevelsUnit] {
	return quantity.ViewOf[FlightLevelsUnit](l)
}

// AstronomicalUnits returns x astronomical units.
func AstronomicalUnits(x float64) quantity.View[Length, AstronomicalUnitsUnit] {
	return quantity.Make[Length, AstronomicalUnitsUnit](x)
}

// AstronomicalUnitsOf views l in astronomical units.
func AstronomicalUnitsOf(l Length) quantity.View[Length, AstronomicalUnitsUnit] {
	return quantity.ViewOf[AstronomicalUnitsUnit](l)
}

// DataMiles returns x data miles.
func DataMiles(x float64) quantity.View[Length, DataMilesUnit] {
	return quantity.Make[Length, DataMilesUnit](x)
}

// DataMilesOf views l in data miles.
func DataMilesOf(l Length) quantity.View[Length, DataMilesUnit] {
	return quantity.ViewOf[DataMilesUnit](l)
}

// NauticalMiles returns x nautical miles.
func NauticalMiles(x float64) quantity.View[Length, NauticalMilesUnit] {
	return quantity.Make[Length, NauticalMilesUnit](x)
}

// NauticalMilesOf views l in nautical miles.
func NauticalMilesOf(l Length) quantity.View[Length, NauticalMilesUnit] {
	return quantity.ViewOf[NauticalMilesUnit](l)
}

// Miles returns x miles.
func Miles(x float64) quantity.View[Length, MilesUnit] {
	return quantity.Make[Length, MilesUnit](x)
}

// MilesOf views l in miles.
func MilesOf(l Length) quantity.View[Length, MilesUnit] {
	return quantity.ViewOf[MilesUnit](l)
}

// Leagues returns x leagues.
func Leagues(x float64) quantity.View[Length, LeaguesUnit] {
	return quantity.Make[Length, LeaguesUnit](x)
}

// LeaguesOf views l in leagues.
func LeaguesOf(l Length) quantity.View[Length, LeaguesUnit] {
	return quantity.ViewOf[LeaguesUnit](l)
}

// Fathoms returns x fathoms.
func Fathoms(x float64) quantity.View[Length, FathomsUnit] {
	return quantity.Make[Length, FathomsUnit](x)
}

// FathomsOf views l in fathoms.
func FathomsOf(l Length) quantity.View[Length, FathomsUnit] {
	return quantity.ViewOf[FathomsUnit](l)
}

// Furlongs returns x furlongs.
func Furlongs(x float64) quantity.View[Length, FurlongsUnit] {
	return quantity.Make[Length, FurlongsUnit](x)
}

// FurlongsOf views l in furlongs.
func FurlongsOf(l Length) quantity.View[Length, FurlongsUnit] {
	return quantity.ViewOf[FurlongsUnit](l)
}

// Yards returns x yards.
func Yards(x float64) quantity.View[Length, YardsUnit] {
	return quantity.Make[Length, YardsUnit](x)
}

// YardsOf views l in yards.
func YardsOf(l Length) quantity.View[Length, YardsUnit] {
	return quantity.ViewOf[YardsUnit](l)
}

// KiloFeet returns x thousands of feet.
func KiloFeet(x float64) quantity.View[Length, KiloFeetUnit] {
	return quantity.Make[Length, KiloFeetUnit](x)
}

// KiloFeetOf views l in thousands of feet.
func KiloFeetOf(l Length) quantity.View[Length, KiloFeetUnit] {
	return quantity.ViewOf[KiloFeetUnit](l)
}

// Feet returns x feet.
func Feet(x float64) quantity.View[Length, FeetUnit] {
	return quantity.Make[Length, FeetUnit](x)
}

// FeetOf views l in feet.
func FeetOf(l Length) quantity.View[Length, FeetUnit] {
	return quantity.ViewOf[FeetUnit](l)
}

// USSurveyFeet returns x US survey feet.
func USSurveyFeet(x float64) quantity.View[Length, USSurveyFeetUnit] {
	return quantity.Make[Length, USSurveyFeetUnit](x)
}

// USSurveyFeetOf views l in US survey feet.
func USSurveyFeetOf(l Length) quantity.View[Length, USSurveyFeetUnit] {
	return quantity.ViewOf[USSurveyFeetUnit](l)
}

// Inches returns x inches.
func Inches(x float64) quantity.View[Length, InchesUnit] {
	return quantity.Make[Length, InchesUnit](x)
}

// InchesOf views l in inches.
func InchesOf(l Length) quantity.View[Length, InchesUnit] {
	return quantity.ViewOf[InchesUnit](l)
}

// Gigameters returns x gigameters.
func Gigameters(x float64) quantity.View[Length, GigametersUnit] {
	return quantity.Make[Length, GigametersUnit](x)
}

// GigametersOf views l in gigameters.
func GigametersOf(l Length) quantity.View[Length, GigametersUnit] {
	return quantity.ViewOf[GigametersUnit](l)
}

// Megameters returns x megameters.
func Megameters(x float64) quantity.View[Length, MegametersUnit] {
	return quantity.Make[Length, MegametersUnit](x)
}

// MegametersOf views l in megameters.
func MegametersOf(l Length) quantity.View[Length, MegametersUnit] {
	return quantity.ViewOf[MegametersUnit](l)
}

// Kilometers returns x kilometers.
func Kilometers(x float64) quantity.View[Length, KilometersUnit] {
	return quantity.Make[Length, KilometersUnit](x)
}

// KilometersOf views l in kilometers.
func KilometersOf(l Length) quantity.View[Length, KilometersUnit] {
	return quantity.ViewOf[KilometersUnit](l)
}

// Hectometers returns x hectometers.
func Hectometers(x float64) quantity.View[Length, HectometersUnit] {
	return quantity.Make[Length, HectometersUnit](x)
}

// HectometersOf views l in hectometers.
func HectometersOf(l Length) quantity.View[Length, HectometersUnit] {
	return quantity.ViewOf[HectometersUnit](l)
}

// Decameters returns x decameters.
func Decameters(x float64) quantity.View[Length, DecametersUnit] {
	return quantity.Make[Length, DecametersUnit](x)
}

// DecametersOf views l in decameters.
func DecametersOf(l Length) quantity.View[Length, DecametersUnit] {
	return quantity.ViewOf[DecametersUnit](l)
}

// Meters returns x meters.
func Meters(x float64) quantity.View[Length, MetersUnit] {
	return quantity.Make[Length, MetersUnit](x)
}

// MetersOf views l in meters.
func MetersOf(l Length) quantity.View[Length, MetersUnit] {
	return quantity.ViewOf[MetersUnit](l)
}

// Decimeters returns x decimeters.
func Decimeters(x float64) quantity.View[Length, DecimetersUnit] {
	return quantity.Make[Length, DecimetersUnit](x)
}

// DecimetersOf views l in decimeters.
func DecimetersOf(l Length) quantity.View[Length, DecimetersUnit] {
	return quantity.ViewOf[DecimetersUnit](l)
}

// Centimeters returns x centimeters.
func Centimeters(x float64) quantity.View[Length, CentimetersUnit] {
	return quantity.Make[Length, CentimetersUnit](x)
}

// CentimetersOf views l in centimeters.
func CentimetersOf(l Length) quantity.View[Length, CentimetersUnit] {
	return quantity.ViewOf[CentimetersUnit](l)
}

// Millimeters returns x millimeters.
func Millimeters(x float64) quantity.View[Length, MillimetersUnit] {
	return quantity.Make[Length, MillimetersUnit](x)
}

// MillimetersOf views l in millimeters.
func MillimetersOf(l Length) quantity.View[Length, MillimetersUnit] {
	return quantity.ViewOf[MillimetersUnit](l)
}

// Micrometers returns x micrometers.
func Micrometers(x float64) quantity.View[Length, MicrometersUnit] {
	return quantity.Make[Length, MicrometersUnit](x)
}

// MicrometersOf views l in micrometers.
func MicrometersOf(l Length) quantity.View[Length, MicrometersUnit] {
	return quantity.ViewOf[MicrometersUnit](l)
}

// Nanometers returns x nanometers.
func Nanometers(x float64) quantity.View[Length, NanometersUnit] {
	return quantity.Make[Length, NanometersUnit](x)
}

// NanometersOf views l in nanometers.
func NanometersOf(l Length) quantity.View[Length, NanometersUnit] {
	return quantity.ViewOf[NanometersUnit](l)
}

// Picometers returns x picometers.
func Picometers(x float64) quantity.View[Length, PicometersUnit] {
	return quantity.Make[Length, PicometersUnit](x)
}

// PicometersOf views l in picometers.
func PicometersOf(l Length) quantity.View[Length, PicometersUnit] {
	return quantity.ViewOf[PicometersUnit](l)
}
