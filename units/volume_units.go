// SPDX-License-Identifier: MIT

package units

import (
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/si"
)

// litersPerGallon is the US liquid gallon.
const litersPerGallon = 3.785411784

var (
	gallonsDef          = quantity.Define[Volume]("gal", quantity.Linear(litersPerGallon))
	imperialGallonsDef  = quantity.Define[Volume]("impgal", quantity.Linear(4.54609))
	quartsDef           = quantity.Define[Volume]("quart", quantity.Linear(litersPerGallon/4))
	pintsDef            = quantity.Define[Volume]("pint", quantity.Linear(litersPerGallon/8))
	fluidOuncesDef      = quantity.Define[Volume]("floz", quantity.Linear(litersPerGallon/128))
	fifthsDef           = quantity.Define[Volume]("fifth", quantity.Linear(litersPerGallon/5))
	cubicMetersDef      = quantity.Define[Volume]("m3", quantity.Linear(litersPerCubicMeter))
	cubicCentimetersDef = quantity.Define[Volume]("cm3", quantity.Linear(si.Milli))
	cubicYardsDef       = quantity.Define[Volume]("yd3", quantity.Linear(27*1728*litersPerGallon/231))
	cubicInchesDef      = quantity.Define[Volume]("in3", quantity.Linear(litersPerGallon/231))
	gigalitersDef       = quantity.Define[Volume]("GL", quantity.Linear(si.Giga))
	megalitersDef       = quantity.Define[Volume]("ML", quantity.Linear(si.Mega))
	kilolitersDef       = quantity.Define[Volume]("kL", quantity.Linear(si.Kilo))
	hectolitersDef      = quantity.Define[Volume]("hL", quantity.Linear(si.Hecto))
	decalitersDef       = quantity.Define[Volume]("daL", quantity.Linear(si.Deca))
	litersDef           = quantity.Define[Volume]("L", quantity.Linear(1))
	decilitersDef       = quantity.Define[Volume]("dL", quantity.Linear(si.Deci))
	centilitersDef      = quantity.Define[Volume]("cL", quantity.Linear(si.Centi))
	millilitersDef      = quantity.Define[Volume]("mL", quantity.Linear(si.Milli))
	microlitersDef      = quantity.Define[Volume]("uL", quantity.Linear(si.Micro))
	nanolitersDef       = quantity.Define[Volume]("nL", quantity.Linear(si.Nano))
	picolitersDef       = quantity.Define[Volume]("pL", quantity.Linear(si.Pico))
)

type (
	// GallonsUnit views a volume in gallons (gal).
	// The US liquid gallon, 231 in³.
	GallonsUnit struct{}

	// ImperialGallonsUnit views a volume in imperial gallons (impgal).
	ImperialGallonsUnit struct{}

	// QuartsUnit views a volume in quarts (quart).
	QuartsUnit struct{}

	// PintsUnit views a volume in pints (pint).
	PintsUnit struct{}

	// FluidOuncesUnit views a volume in fluid ounces (floz).
	// The US fluid ounce.
	FluidOuncesUnit struct{}

	// FifthsUnit views a volume in fifths (fifth).
	FifthsUnit struct{}

	// CubicMetersUnit views a volume in cubic meters (m3).
	CubicMetersUnit struct{}

	// CubicCentimetersUnit views a volume in cubic centimeters (cm3).
	CubicCentimetersUnit struct{}

	// CubicYardsUnit views a volume in cubic yards (yd3).
	CubicYardsUnit struct{}

	// CubicInchesUnit views a volume in cubic inches (in3).
	CubicInchesUnit struct{}

	// GigalitersUnit views a volume in gigaliters (GL).
	GigalitersUnit struct{}

	// MegalitersUnit views a volume in megaliters (ML).
	MegalitersUnit struct{}

	// KilolitersUnit views a volume in kiloliters (kL).
	KilolitersUnit struct{}

	// HectolitersUnit views a volume in hectoliters (hL).
	HectolitersUnit struct{}

	// DecalitersUnit views a volume in decaliters (daL).
	DecalitersUnit struct{}

	// LitersUnit views a volume in liters (L).
	LitersUnit struct{}

	// DecilitersUnit views a volume in deciliters (dL).
	DecilitersUnit struct{}

	// CentilitersUnit views a volume in centiliters (cL).
	CentilitersUnit struct{}

	// MillilitersUnit views a volume in milliliters (mL).
	MillilitersUnit struct{}

	// MicrolitersUnit views a volume in microliters (uL).
	MicrolitersUnit struct{}

	// NanolitersUnit views a volume in nanoliters (nL).
	NanolitersUnit struct{}

	// PicolitersUnit views a volume in picoliters (pL).
	PicolitersUnit struct{}
)

func (GallonsUnit) Def() quantity.Def[Volume] { return gallonsDef }
func (ImperialGallonsUnit) Def() quantity.Def[Volume] { return imperialGallonsDef }
func (QuartsUnit) Def() quantity.Def[Volume] { return quartsDef }
func (PintsUnit) Def() quantity.Def[Volume] { return pintsDef }
func (FluidOuncesUnit) Def() quantity.Def[Volume] { return fluidOuncesDef }
func (FifthsUnit) Def() quantity.Def[Volume] { return fifthsDef }
func (CubicMetersUnit) Def() quantity.Def[Volume] { return cubicMetersDef }
func (CubicCentimetersUnit) Def() quantity.Def[Volume] { return cubicCentimetersDef }
func (CubicYardsUnit) Def() quantity.Def[Volume] { return cubicYardsDef }
func (CubicInchesUnit) Def() quantity.Def[Volume] { return cubicInchesDef }
func (GigalitersUnit) Def() quantity.Def[Volume] { return gigalitersDef }
func (MegalitersUnit) Def() quantity.Def[Volume] { return megalitersDef }
func (KilolitersUnit) Def() quantity.Def[Volume] { return kilolitersDef }
func (HectolitersUnit) Def() quantity.Def[Volume] { return hectolitersDef }
func (DecalitersUnit) Def() quantity.Def[Volume] { return decalitersDef }
func (LitersUnit) Def() quantity.Def[Volume] { return litersDef }
func (DecilitersUnit) Def() quantity.Def[Volume] { return decilitersDef }
func (CentilitersUnit) Def() quantity.Def[Volume] { return centilitersDef }
func (MillilitersUnit) Def() quantity.Def[Volume] { return millilitersDef }
func (MicrolitersUnit) Def() quantity.Def[Volume] { return microlitersDef }
func (NanolitersUnit) Def() quantity.Def[Volume] { return nanolitersDef }
func (PicolitersUnit) Def() quantity.Def[Volume] { return picolitersDef }

// Gallons returns x gallons.
func Gallons(x float64) quantity.View[Volume, GallonsUnit] {
	return quantity.Make[Volume, GallonsUnit](x)
}

// GallonsOf views v in gallons.
func GallonsOf(v Volume) quantity.View[Volume, GallonsUnit] {
	return quantity.ViewOf[GallonsUnit](v)
}

// ImperialGallons returns x imperial gallons.
func ImperialGallons(x float64) quantity.View[Volume, ImperialGallonsUnit] {
	return quantity.Make[Volume, ImperialGallonsUnit](x)
}

// ImperialGallonsOf views v in imperial gallons.
func ImperialGallonsOf(v Volume) quantity.View[Volume, ImperialGallonsUnit] {
	return quantity.ViewOf[ImperialGallonsUnit](v)
}

// Quarts returns x quarts.
func Quarts(x float64) quantity.View[Volume, QuartsUnit] {
	return quantity.Make[Volume, QuartsUnit](x)
}

// QuartsOf views v in quarts.
func QuartsOf(v Volume) quantity.View[Volume, QuartsUnit] {
	return quantity.ViewOf[QuartsUnit](v)
}

// Pints returns x pints.
func Pints(x float64) quantity.View[Volume, PintsUnit] {
	return quantity.Make[Volume, PintsUnit](x)
}

// PintsOf views v in pints.
func PintsOf(v Volume) quantity.View[Volume, PintsUnit] {
	return quantity.ViewOf[PintsUnit](v)
}

// FluidOunces returns x fluid ounces.
func FluidOunces(x float64) quantity.View[Volume, FluidOuncesUnit] {
	return quantity.Make[Volume, FluidOuncesUnit](x)
}

// FluidOuncesOf views v in fluid ounces.
func FluidOuncesOf(v Volume) quantity.View[Volume, FluidOuncesUnit] {
	return quantity.ViewOf[FluidOuncesUnit](v)
}

// Fifths returns x fifths.
func Fifths(x float64) quantity.View[Volume, FifthsUnit] {
	return quantity.Make[Volume, FifthsUnit](x)
}

// FifthsOf views v in fifths.
func FifthsOf(v Volume) quantity.View[Volume, FifthsUnit] {
	return quantity.ViewOf[FifthsUnit](v)
}

// CubicMeters returns x cubic meters.
func CubicMeters(x float64) quantity.View[Volume, CubicMetersUnit] {
	return quantity.Make[Volume, CubicMetersUnit](x)
}

// CubicMetersOf views v in cubic meters.
func CubicMetersOf(v Volume) quantity.View[Volume, CubicMetersUnit] {
	return quantity.ViewOf[CubicMetersUnit](v)
}

// CubicCentimeters returns x cubic centimeters.
func CubicCentimeters(x float64) quantity.View[Volume, CubicCentimetersUnit] {
	return quantity.Make[Volume, CubicCentimetersUnit](x)
}

// CubicCentimetersOf views v in cubic centimeters.
func CubicCentimetersOf(v Volume) quantity.View[Volume, CubicCentimetersUnit] {
	return quantity.ViewOf[CubicCentimetersUnit](v)
}

// CubicYards returns x cubic yards.
func CubicYards(x float64) quantity.View[Volume, CubicYardsUnit] {
	return quantity.Make[Volume, CubicYardsUnit](x)
}

// CubicYardsOf views v in cubic yards.
func CubicYardsOf(v Volume) quantity.View[Volume, CubicYardsUnit] {
	return quantity.ViewOf[CubicYardsUnit](v)
}

// CubicInches returns x cubic inches.
func CubicInches(x float64) quantity.View[Volume, CubicInchesUnit] {
	return quantity.Make[Volume, CubicInchesUnit](x)
}

// CubicInchesOf views v in cubic inches.
func CubicInchesOf(v Volume) quantity.View[Volume, CubicInchesUnit] {
	return quantity.ViewOf[CubicInchesUnit](v)
}

// Gigaliters returns x gigaliters.
func Gigaliters(x float64) quantity.View[Volume, GigalitersUnit] {
	return quantity.Make[Volume, GigalitersUnit](x)
}

// GigalitersOf views v in gigaliters.
func GigalitersOf(v Volume) quantity.View[Volume, GigalitersUnit] {
	return quantity.ViewOf[GigalitersUnit](v)
}

// Megaliters returns x megaliters.
func Megaliters(x float64) quantity.View[Volume, MegalitersUnit] {
	return quantity.Make[Volume, MegalitersUnit](x)
}

// MegalitersOf views v in megaliters.
func MegalitersOf(v Volume) quantity.View[Volume, MegalitersUnit] {
	return quantity.ViewOf[MegalitersUnit](v)
}

// Kiloliters returns x kiloliters.
func Kiloliters(x float64) quantity.View[Volume, KilolitersUnit] {
	return quantity.Make[Volume, KilolitersUnit](x)
}

// KilolitersOf views v in kiloliters.
func KilolitersOf(v Volume) quantity.View[Volume, KilolitersUnit] {
	return quantity.ViewOf[KilolitersUnit](v)
}

// Hectoliters returns x hectoliters.
func Hectoliters(x float64) quantity.View[Volume, HectolitersUnit] {
	return quantity.Make[Volume, HectolitersUnit](x)
}

// HectolitersOf views v in hectoliters.
func HectolitersOf(v Volume) quantity.View[Volume, HectolitersUnit] {
	return quantity.ViewOf[HectolitersUnit](v)
}

// Decaliters returns x decaliters.
func Decaliters(x float64) quantity.View[Volume, DecalitersUnit] {
	return quantity.Make[Volume, DecalitersUnit](x)
}

// DecalitersOf views v in decaliters.
func DecalitersOf(v Volume) quantity.View[Volume, DecalitersUnit] {
	return quantity.ViewOf[DecalitersUnit](v)
}

// Liters returns x liters.
func Liters(x float64) quantity.View[Volume, LitersUnit] {
	return quantity.Make[Volume, LitersUnit](x)
}

// LitersOf views v in liters.
func LitersOf(v Volume) quantity.View[Volume, LitersUnit] {
	return quantity.ViewOf[LitersUnit](v)
}

// Deciliters returns x deciliters.
func Deciliters(x float64) quantity.View[Volume, DecilitersUnit] {
	return quantity.Make[Volume, DecilitersUnit](x)
}

// DecilitersOf views v in deciliters.
func DecilitersOf(v Volume) quantity.View[Volume, DecilitersUnit] {
	return quantity.ViewOf[DecilitersUnit](v)
}

// Centiliters returns x centiliters.
func Centiliters(x float64) quantity.View[Volume, CentilitersUnit] {
	return quantity.Make[Volume, CentilitersUnit](x)
}

// CentilitersOf views v in centiliters.
func CentilitersOf(v Volume) quantity.View[Volume, CentilitersUnit] {
	return quantity.ViewOf[CentilitersUnit](v)
}

// Milliliters returns x milliliters.
func Milliliters(x float64) quantity.View[Volume, MillilitersUnit] {
	return quantity.Make[Volume, MillilitersUnit](x)
}

// MillilitersOf views v in milliliters.
func MillilitersOf(v Volume) quantity.View[Volume, MillilitersUnit] {
	return quantity.ViewOf[MillilitersUnit](v)
}

// Microliters returns x microliters.
func Microliters(x float64) quantity.View[Volume, MicrolitersUnit] {
	return quantity.Make[Volume, MicrolitersUnit](x)
}

// MicrolitersOf views v in microliters.
func MicrolitersOf(v Volume) quantity.View[Volume, MicrolitersUnit] {
	return quantity.ViewOf[MicrolitersUnit](v)
}

// Nanoliters returns x nanoliters.
func Nanoliters(x float64) quantity.View[Volume, NanolitersUnit] {
	return quantity.Make[Volume, NanolitersUnit](x)
}

// NanolitersOf views v in nanoliters.
func NanolitersOf(v Volume) quantity.View[Volume, NanolitersUnit] {
	return quantity.ViewOf[NanolitersUnit](v)
}

// Picoliters returns x picoliters.
func Picoliters(x float64) quantity.View[Volume, PicolitersUnit] {
	return quantity.Make[Volume, PicolitersUnit](x)
}

// PicolitersOf views v in picoliters.
func PicolitersOf(v Volume) quantity.View[Volume, PicolitersUnit] {
	return quantity.ViewOf[PicolitersUnit](v)
}
