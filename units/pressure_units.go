// SPDX-License-Identifier: MIT

package units

import (
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/si"
)

const pascalsPerAtmosphere = 101325.0

var (
	atmospheresDef          = quantity.Define[Pressure]("atm", quantity.Linear(pascalsPerAtmosphere))
	technicalAtmospheresDef = quantity.Define[Pressure]("at", quantity.Linear(98066.5))
	barsDef                 = quantity.Define[Pressure]("bar", quantity.Linear(1e5))
	poundsPerSquareInchDef  = quantity.Define[Pressure]("psi", quantity.Linear(newtonsPerPoundForce/squareMetersPerSquareInch))
	torrDef                 = quantity.Define[Pressure]("Torr", quantity.Linear(pascalsPerAtmosphere/760))
	millimetersMercuryDef   = quantity.Define[Pressure]("mmHg", quantity.Linear(133.322387415))
	gigaPascalsDef          = quantity.Define[Pressure]("GPa", quantity.Linear(si.Giga))
	megaPascalsDef          = quantity.Define[Pressure]("MPa", quantity.Linear(si.Mega))
	kiloPascalsDef          = quantity.Define[Pressure]("kPa", quantity.Linear(si.Kilo))
	hectoPascalsDef         = quantity.Define[Pressure]("hPa", quantity.Linear(si.Hecto))
	decaPascalsDef          = quantity.Define[Pressure]("daPa", quantity.Linear(si.Deca))
	pascalsDef              = quantity.Define[Pressure]("Pa", quantity.Linear(1))
	deciPascalsDef          = quantity.Define[Pressure]("dPa", quantity.Linear(si.Deci))
	centiPascalsDef         = quantity.Define[Pressure]("cPa", quantity.Linear(si.Centi))
	milliPascalsDef         = quantity.Define[Pressure]("mPa", quantity.Linear(si.Milli))
	microPascalsDef         = quantity.Define[Pressure]("uPa", quantity.Linear(si.Micro))
	nanoPascalsDef          = quantity.Define[Pressure]("nPa", quantity.Linear(si.Nano))
	picoPascalsDef          = quantity.Define[Pressure]("pPa", quantity.Linear(si.Pico))
)

type (
	// AtmospheresUnit views a pressure in atmospheres (atm).
	// The standard atmosphere.
	AtmospheresUnit struct{}

	// TechnicalAtmospheresUnit views a pressure in technical atmospheres (at).
	// One kilogram-force per square centimetre.
	TechnicalAtmospheresUnit struct{}

	// BarsUnit views a pressure in bars (bar).
	BarsUnit struct{}

	// PoundsPerSquareInchUnit views a pressure in pounds per square inch (psi).
	PoundsPerSquareInchUnit struct{}

	// TorrUnit views a pressure in torr (Torr).
	TorrUnit struct{}

	// MillimetersMercuryUnit views a pressure in millimeters mercury (mmHg).
	// The conventional millimetre of mercury.
	MillimetersMercuryUnit struct{}

	// GigaPascalsUnit views a pressure in gigapascals (GPa).
	GigaPascalsUnit struct{}

	// MegaPascalsUnit views a pressure in megapascals (MPa).
	MegaPascalsUnit struct{}

	// KiloPascalsUnit views a pressure in kilopascals (kPa).
	KiloPascalsUnit struct{}

	// HectoPascalsUnit views a pressure in hectopascals (hPa).
	HectoPascalsUnit struct{}

	// DecaPascalsUnit views a pressure in decapascals (daPa).
	DecaPascalsUnit struct{}

	// PascalsUnit views a pressure in pascals (Pa).
	PascalsUnit struct{}

	// DeciPascalsUnit views a pressure in decipascals (dPa).
	DeciPascalsUnit struct{}

	// CentiPascalsUnit views a pressure in centipascals (cPa).
	CentiPascalsUnit struct{}

	// MilliPascalsUnit views a pressure in millipascals (mPa).
	MilliPascalsUnit struct{}

	// MicroPascalsUnit views a pressure in micropascals (uPa).
	MicroPascalsUnit struct{}

	// NanoPascalsUnit views a pressure in nanopascals (nPa).
	NanoPascalsUnit struct{}

	// PicoPascalsUnit views a pressure in picopascals (pPa).
	PicoPascalsUnit struct{}
)

func (AtmospheresUnit) Def() quantity.Def[Pressure] { return atmospheresDef }
func (TechnicalAtmospheresUnit) Def() quantity.Def[Pressure] { return technicalAtmospheresDef }
func (BarsUnit) Def() quantity.Def[Pressure] { return barsDef }
func (PoundsPerSquareInchUnit) Def() quantity.Def[Pressure] { return poundsPerSquareInchDef }
func (TorrUnit) Def() quantity.Def[Pressure] { return torrDef }
func (MillimetersMercuryUnit) Def() quantity.Def[Pressure] { return millimetersMercuryDef }
func (GigaPascalsUnit) Def() quantity.Def[Pressure] { return gigaPascalsDef }
func (MegaPascalsUnit) Def() quantity.Def[Pressure] { return megaPascalsDef }
func (KiloPascalsUnit) Def() quantity.Def[Pressure] { return kiloPascalsDef }
func (HectoPascalsUnit) Def() quantity.Def[Pressure] { return hectoPascalsDef }
func (DecaPascalsUnit) Def() quantity.Def[Pressure] { return decaPascalsDef }
func (PascalsUnit) Def() quantity.Def[Pressure] { return pascalsDef }
func (DeciPascalsUnit) Def() quantity.Def[Pressure] { return deciPascalsDef }
func (CentiPascalsUnit) Def() quantity.Def[Pressure] { return centiPascalsDef }
func (MilliPascalsUnit) Def() quantity.Def[Pressure] { return milliPascalsDef }
func (MicroPascalsUnit) Def() quantity.Def[Pressure] { return microPascalsDef }
func (NanoPascalsUnit) Def() quantity.Def[Pressure] { return nanoPascalsDef }
func (PicoPascalsUnit) Def() quantity.Def[Pressure] { return picoPascalsDef }

// Atmospheres returns x atmospheres.
func Atmospheres(x float64) quantity.View[Pressure, AtmospheresUnit] {
	return quantity.Make[Pressure, AtmospheresUnit](x)
}

// AtmospheresOf views p in atmospheres.
func AtmospheresOf(p Pressure) quantity.View[Pressure, AtmospheresUnit] {
	return quantity.ViewOf[AtmospheresUnit](p)
}

// TechnicalAtmospheres returns x technical atmospheres.
func TechnicalAtmospheres(x float64) quantity.View[Pressure, TechnicalAtmospheresUnit] {
	return quantity.Make[Pressure, TechnicalAtmospheresUnit](x)
}

// TechnicalAtmospheresOf views p in technical atmospheres.
func TechnicalAtmospheresOf(p Pressure) quantity.View[Pressure, TechnicalAtmospheresUnit] {
	return quantity.ViewOf[TechnicalAtmospheresUnit](p)
}

// Bars returns x bars.
func Bars(x float64) quantity.View[Pressure, BarsUnit] {
	return quantity.Make[Pressure, BarsUnit](x)
}

// BarsOf views p in bars.
func BarsOf(p Pressure) quantity.View[Pressure, BarsUnit] {
	return quantity.ViewOf[BarsUnit](p)
}

// PoundsPerSquareInch returns x pounds per square inch.
func PoundsPerSquareInch(x float64) quantity.View[Pressure, PoundsPerSquareInchUnit] {
	return quantity.Make[Pressure, PoundsPerSquareInchUnit](x)
}

// PoundsPerSquareInchOf views p in pounds per square inch.
func PoundsPerSquareInchOf(p Pressure) quantity.View[Pressure, PoundsPerSquareInchUnit] {
	return quantity.ViewOf[PoundsPerSquareInchUnit](p)
}

// Torr returns x torr.
func Torr(x float64) quantity.View[Pressure, TorrUnit] {
	return quantity.Make[Pressure, TorrUnit](x)
}

// TorrOf views p in torr.
func TorrOf(p Pressure) quantity.View[Pressure, TorrUnit] {
	return quantity.ViewOf[TorrUnit](p)
}

// MillimetersMercury returns x millimeters mercury.
func MillimetersMercury(x float64) quantity.View[Pressure, MillimetersMercuryUnit] {
	return quantity.Make[Pressure, MillimetersMercuryUnit](x)
}

// MillimetersMercuryOf views p in millimeters mercury.
func MillimetersMercuryOf(p Pressure) quantity.View[Pressure, MillimetersMercuryUnit] {
	return quantity.ViewOf[MillimetersMercuryUnit](p)
}

// GigaPascals returns x gigapascals.
func GigaPascals(x float64) quantity.View[Pressure, GigaPascalsUnit] {
	return quantity.Make[Pressure, GigaPascalsUnit](x)
}

// GigaPascalsOf views p in gigapascals.
func GigaPascalsOf(p Pressure) quantity.View[Pressure, GigaPascalsUnit] {
	return quantity.ViewOf[GigaPascalsUnit](p)
}

// MegaPascals returns x megapascals.
func MegaPascals(x float64) quantity.View[Pressure, MegaPascalsUnit] {
	return quantity.Make[Pressure, MegaPascalsUnit](x)
}

// MegaPascalsOf views p in megapascals.
func MegaPascalsOf(p Pressure) quantity.View[Pressure, MegaPascalsUnit] {
	return quantity.ViewOf[MegaPascalsUnit](p)
}

// KiloPascals returns x kilopascals.
func KiloPascals(x float64) quantity.View[Pressure, KiloPascalsUnit] {
	return quantity.Make[Pressure, KiloPascalsUnit](x)
}

// KiloPascalsOf views p in kilopascals.
func KiloPascalsOf(p Pressure) quantity.View[Pressure, KiloPascalsUnit] {
	return quantity.ViewOf[KiloPascalsUnit](p)
}

// HectoPascals returns x hectopascals.
func HectoPascals(x float64) quantity.View[Pressure, HectoPascalsUnit] {
	return quantity.Make[Pressure, HectoPascalsUnit](x)
}

// HectoPascalsOf views p in hectopascals.
func HectoPascalsOf(p Pressure) quantity.View[Pressure, HectoPascalsUnit] {
	return quantity.ViewOf[HectoPascalsUnit](p)
}

// DecaPascals returns x decapascals.
func DecaPascals(x float64) quantity.View[Pressure, DecaPascalsUnit] {
	return quantity.Make[Pressure, DecaPascalsUnit](x)
}

// DecaPascalsOf views p in decapascals.
func DecaPascalsOf(p Pressure) quantity.View[Pressure, DecaPascalsUnit] {
	return quantity.ViewOf[DecaPascalsUnit](p)
}

// Pascals returns x pascals.
func Pascals(x float64) quantity.View[Pressure, PascalsUnit] {
	return quantity.Make[Pressure, PascalsUnit](x)
}

// PascalsOf views p in pascals.
func PascalsOf(p Pressure) quantity.View[Pressure, PascalsUnit] {
	return quantity.ViewOf[PascalsUnit](p)
}

// DeciPascals returns x decipascals.
func DeciPascals(x float64) quantity.View[Pressure, DeciPascalsUnit] {
	return quantity.Make[Pressure, DeciPascalsUnit](x)
}

// DeciPascalsOf views p in decipascals.
func DeciPascalsOf(p Pressure) quantity.View[Pressure, DeciPascalsUnit] {
	return quantity.ViewOf[DeciPascalsUnit](p)
}

// CentiPascals returns x centipascals.
func CentiPascals(x float64) quantity.View[Pressure, CentiPascalsUnit] {
	return quantity.Make[Pressure, CentiPascalsUnit](x)
}

// CentiPascalsOf views p in centipascals.
func CentiPascalsOf(p Pressure) quantity.View[Pressure, CentiPascalsUnit] {
	return quantity.ViewOf[CentiPascalsUnit](p)
}

// MilliPascals returns x millipascals.
func MilliPascals(x float64) quantity.View[Pressure, MilliPascalsUnit] {
	return quantity.Make[Pressure, MilliPascalsUnit](x)
}

// MilliPascalsOf views p in millipascals.
func MilliPascalsOf(p Pressure) quantity.View[Pressure, MilliPascalsUnit] {
	return quantity.ViewOf[MilliPascalsUnit](p)
}

// MicroPascals returns x micropascals.
func MicroPascals(x float64) quantity.View[Pressure, MicroPascalsUnit] {
	return quantity.Make[Pressure, MicroPascalsUnit](x)
}

// MicroPascalsOf views p in micropascals.
func MicroPascalsOf(p Pressure) quantity.View[Pressure, MicroPascalsUnit] {
	return quantity.ViewOf[MicroPascalsUnit](p)
}

// NanoPascals returns x nanopascals.
func NanoPascals(x float64) quantity.View[Pressure, NanoPascalsUnit] {
	return quantity.Make[Pressure, NanoPascalsUnit](x)
}

// NanoPascalsOf views p in nanopascals.
func NanoPascalsOf(p Pressure) quantity.View[Pressure, NanoPascalsUnit] {
	return quantity.ViewOf[NanoPascalsUnit](p)
}

// PicoPascals returns x picopascals.
func PicoPascals(x float64) quantity.View[Pressure, PicoPascalsUnit] {
	return quantity.Make[Pressure, PicoPascalsUnit](x)
}

// PicoPascalsOf views p in picopascals.
func PicoPascalsOf(p Pressure) quantity.View[Pressure, PicoPascalsUnit] {
	return quantity.ViewOf[PicoPascalsUnit](p)
}
