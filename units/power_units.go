// SPDX-License-Identifier: MIT

package units

import (
	"math"

	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/si"
)

var (
	horsePowerDef = quantity.Define[Power]("hp", quantity.Linear(745.69987158227022))
	gigaWattsDef  = quantity.Define[Power]("GW", quantity.Linear(si.Giga))
	megaWattsDef  = quantity.Define[Power]("MW", quantity.Linear(si.Mega))
	kiloWattsDef  = quantity.Define[Power]("kW", quantity.Linear(si.Kilo))
	hectoWattsDef = quantity.Define[Power]("hW", quantity.Linear(si.Hecto))
	decaWattsDef  = quantity.Define[Power]("daW", quantity.Linear(si.Deca))
	wattsDef      = quantity.Define[Power]("W", quantity.Linear(1))
	deciWattsDef  = quantity.Define[Power]("dW", quantity.Linear(si.Deci))
	centiWattsDef = quantity.Define[Power]("cW", quantity.Linear(si.Centi))
	milliWattsDef = quantity.Define[Power]("mW", quantity.Linear(si.Milli))
	microWattsDef = quantity.Define[Power]("uW", quantity.Linear(si.Micro))
	nanoWattsDef  = quantity.Define[Power]("nW", quantity.Linear(si.Nano))
	picoWattsDef  = quantity.Define[Power]("pW", quantity.Linear(si.Pico))

	decibelWattsDef = quantity.Define[Power]("dBW", quantity.Equation(
		func(db float64) float64 { return math.Pow(10, db/10) },
		func(w float64) float64 { return 10 * math.Log10(w) },
	))

	decibelMilliwattsDef = quantity.Define[Power]("dBm", quantity.Equation(
		func(db float64) float64 { return math.Pow(10, db/10) * si.Milli },
		func(w float64) float64 { return 10 * math.Log10(w/si.Milli) },
	))
)

type (
	// HorsePowerUnit views a power in horsepower (hp).
	// The mechanical horsepower, 550 ft·lbf/s.
	HorsePowerUnit struct{}

	// DecibelWattsUnit views a power in decibel watts (dBW).
	// Decibels relative to one watt. Zero watts reads as -Inf.
	DecibelWattsUnit struct{}

	// DecibelMilliwattsUnit views a power in decibel milliwatts (dBm).
	// Decibels relative to one milliwatt. Zero watts reads as -Inf.
	DecibelMilliwattsUnit struct{}

	// GigaWattsUnit views a power in gigawatts (GW).
	GigaWattsUnit struct{}

	// MegaWattsUnit views a power in megawatts (MW).
	MegaWattsUnit struct{}

	// KiloWattsUnit views a power in kilowatts (kW).
	KiloWattsUnit struct{}

	// HectoWattsUnit views a power in hectowatts (hW).
	HectoWattsUnit struct{}

	// DecaWattsUnit views a power in decawatts (daW).
	DecaWattsUnit struct{}

	// WattsUnit views a power in watts (W).
	WattsUnit struct{}

	// DeciWattsUnit views a power in deciwatts (dW).
	DeciWattsUnit struct{}

	// CentiWattsUnit views a power in centiwatts (cW).
	CentiWattsUnit struct{}

	// MilliWattsUnit views a power in milliwatts (mW).
	MilliWattsUnit struct{}

	// MicroWattsUnit views a power in microwatts (uW).
	MicroWattsUnit struct{}

	// NanoWattsUnit views a power in nanowatts (nW).
	NanoWattsUnit struct{}

	// PicoWattsUnit views a power in picowatts (pW).
	PicoWattsUnit struct{}
)

func (HorsePowerUnit) Def() quantity.Def[Power] { return horsePowerDef }
func (DecibelWattsUnit) Def() quantity.Def[Power] { return decibelWattsDef }
func (DecibelMilliwattsUnit) Def() quantity.Def[Power] { return decibelMilliwattsDef }
func (GigaWattsUnit) Def() quantity.Def[Power] { return gigaWattsDef }
func (MegaWattsUnit) Def() quantity.Def[Power] { return megaWattsDef }
func (KiloWattsUnit) Def() quantity.Def[Power] { return kiloWattsDef }
func (HectoWattsUnit) Def() quantity.Def[Power] { return hectoWattsDef }
func (DecaWattsUnit) Def() quantity.Def[Power] { return decaWattsDef }
func (WattsUnit) Def() quantity.Def[Power] { return wattsDef }
func (DeciWattsUnit) Def() quantity.Def[Power] { return deciWattsDef }
func (CentiWattsUnit) Def() quantity.Def[Power] { return centiWattsDef }
func (MilliWattsUnit) Def() quantity.Def[Power] { return milliWattsDef }
func (MicroWattsUnit) Def() quantity.Def[Power] { return microWattsDef }
func (NanoWattsUnit) Def() quantity.Def[Power] { return nanoWattsDef }
func (PicoWattsUnit) Def() quantity.Def[Power] { return picoWattsDef }

// HorsePower returns x horsepower.
func HorsePower(x float64) quantity.View[Power, HorsePowerUnit] {
	return quantity.Make[Power, HorsePowerUnit](x)
}

// HorsePowerOf views p in horsepower.
func HorsePowerOf(p Power) quantity.View[Power, HorsePowerUnit] {
	return quantity.ViewOf[HorsePowerUnit](p)
}

// DecibelWatts returns x decibel watts.
func DecibelWatts(x float64) quantity.View[Power, DecibelWattsUnit] {
	return quantity.Make[Power, DecibelWattsUnit](x)
}

// DecibelWattsOf views p in decibel watts.
func DecibelWattsOf(p Power) quantity.View[Power, DecibelWattsUnit] {
	return quantity.ViewOf[DecibelWattsUnit](p)
}

// DecibelMilliwatts returns x decibel milliwatts.
func DecibelMilliwatts(x float64) quantity.View[Power, DecibelMilliwattsUnit] {
	return quantity.Make[Power, DecibelMilliwattsUnit](x)
}

// DecibelMilliwattsOf views p in decibel milliwatts.
func DecibelMilliwattsOf(p Power) quantity.View[Power, DecibelMilliwattsUnit] {
	return quantity.ViewOf[DecibelMilliwattsUnit](p)
}

// GigaWatts returns x gigawatts.
func GigaWatts(x float64) quantity.View[Power, GigaWattsUnit] {
	return quantity.Make[Power, GigaWattsUnit](x)
}

// GigaWattsOf views p in gigawatts.
func GigaWattsOf(p Power) quantity.View[Power, GigaWattsUnit] {
	return quantity.ViewOf[GigaWattsUnit](p)
}

// MegaWatts returns x megawatts.
func MegaWatts(x float64) quantity.View[Power, MegaWattsUnit] {
	return quantity.Make[Power, MegaWattsUnit](x)
}

// MegaWattsOf views p in megawatts.
func MegaWattsOf(p Power) quantity.View[Power, MegaWattsUnit] {
	return quantity.ViewOf[MegaWattsUnit](p)
}

// KiloWatts returns x kilowatts.
func KiloWatts(x float64) quantity.View[Power, KiloWattsUnit] {
	return quantity.Make[Power, KiloWattsUnit](x)
}

// KiloWattsOf views p in kilowatts.
func KiloWattsOf(p Power) quantity.View[Power, KiloWattsUnit] {
	return quantity.ViewOf[KiloWattsUnit](p)
}

// HectoWatts returns x hectowatts.
func HectoWatts(x float64) quantity.View[Power, HectoWattsUnit] {
	return quantity.Make[Power, HectoWattsUnit](x)
}

// HectoWattsOf views p in hectowatts.
func HectoWattsOf(p Power) quantity.View[Power, HectoWattsUnit] {
	return quantity.ViewOf[HectoWattsUnit](p)
}

// DecaWatts returns x decawatts.
func DecaWatts(x float64) quantity.View[Power, DecaWattsUnit] {
	return quantity.Make[Power, DecaWattsUnit](x)
}

// DecaWattsOf views p in decawatts.
func DecaWattsOf(p Power) quantity.View[Power, DecaWattsUnit] {
	return quantity.ViewOf[DecaWattsUnit](p)
}

// Watts returns x watts.
func Watts(x float64) quantity.View[Power, WattsUnit] {
	return quantity.Make[Power, WattsUnit](x)
}

// WattsOf views p in watts.
func WattsOf(p Power) quantity.View[Power, WattsUnit] {
	return quantity.ViewOf[WattsUnit](p)
}

// DeciWatts returns x deciwatts.
func DeciWatts(x float64) quantity.View[Power, DeciWattsUnit] {
	return quantity.Make[Power, DeciWattsUnit](x)
}

// DeciWattsOf views p in deciwatts.
func DeciWattsOf(p Power) quantity.View[Power, DeciWattsUnit] {
	return quantity.ViewOf[DeciWattsUnit](p)
}

// CentiWatts returns x centiwatts.
func CentiWatts(x float64) quantity.View[Power, CentiWattsUnit] {
	return quantity.Make[Power, CentiWattsUnit](x)
}

// CentiWattsOf views p in centiwatts.
func CentiWattsOf(p Power) quantity.View[Power, CentiWattsUnit] {
	return quantity.ViewOf[CentiWattsUnit](p)
}

// MilliWatts returns x milliwatts.
func MilliWatts(x float64) quantity.View[Power, MilliWattsUnit] {
	return quantity.Make[Power, MilliWattsUnit](x)
}

// MilliWattsOf views p in milliwatts.
func MilliWattsOf(p Power) quantity.View[Power, MilliWattsUnit] {
	return quantity.ViewOf[MilliWattsUnit](p)
}

// MicroWatts returns x microwatts.
func MicroWatts(x float64) quantity.View[Power, MicroWattsUnit] {
	return quantity.Make[Power, MicroWattsUnit](x)
}

// MicroWattsOf views p in microwatts.
func MicroWattsOf(p Power) quantity.View[Power, MicroWattsUnit] {
	return quantity.ViewOf[MicroWattsUnit](p)
}

// NanoWatts returns x nanowatts.
func NanoWatts(x float64) quantity.View[Power, NanoWattsUnit] {
	return quantity.Make[Power, NanoWattsUnit](x)
}

// NanoWattsOf views p in nanowatts.
func NanoWattsOf(p Power) quantity.View[Power, NanoWattsUnit] {
	return quantity.ViewOf[NanoWattsUnit](p)
}

// PicoWatts returns x picowatts.
func PicoWatts(x float64) quantity.View[Power, PicoWattsUnit] {
	return quantity.Make[Power, PicoWattsUnit](x)
}

// PicoWattsOf views p in picowatts.
func PicoWattsOf(p Power) quantity.View[Power, PicoWattsUnit] {
	return quantity.ViewOf[PicoWattsUnit](p)
}
