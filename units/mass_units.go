// SPDX-License-Identifier: MIT

package units

import (
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/si"
)

// gramsPerPound is the international avoirdupois pound.
const gramsPerPound = 453.59237

var (
	grainsDef     = quantity.Define[Mass]("gr", quantity.Linear(gramsPerPound/7000))
	poundsDef     = quantity.Define[Mass]("lb", quantity.Linear(gramsPerPound))
	ouncesDef     = quantity.Define[Mass]("oz", quantity.Linear(gramsPerPound/16))
	stonesDef     = quantity.Define[Mass]("st", quantity.Linear(14*gramsPerPound))
	shortTonsDef  = quantity.Define[Mass]("ton_us", quantity.Linear(2000*gramsPerPound))
	longTonsDef   = quantity.Define[Mass]("ton_uk", quantity.Linear(2240*gramsPerPound))
	tonnesDef     = quantity.Define[Mass]("t", quantity.Linear(si.Mega))
	gigagramsDef  = quantity.Define[Mass]("Gg", quantity.Linear(si.Giga))
	megagramsDef  = quantity.Define[Mass]("Mg", quantity.Linear(si.Mega))
	kilogramsDef  = quantity.Define[Mass]("kg", quantity.Linear(si.Kilo))
	hectogramsDef = quantity.Define[Mass]("hg", quantity.Linear(si.Hecto))
	decagramsDef  = quantity.Define[Mass]("dag", quantity.Linear(si.Deca))
	gramsDef      = quantity.Define[Mass]("g", quantity.Linear(1))
	decigramsDef  = quantity.Define[Mass]("dg", quantity.Linear(si.Deci))
	centigramsDef = quantity.Define[Mass]("cg", quantity.Linear(si.Centi))
	milligramsDef = quantity.Define[Mass]("mg", quantity.Linear(si.Milli))
	microgramsDef = quantity.Define[Mass]("ug", quantity.Linear(si.Micro))
	nanogramsDef  = quantity.Define[Mass]("ng", quantity.Linear(si.Nano))
	picogramsDef  = quantity.Define[Mass]("pg", quantity.Linear(si.Pico))
)

type (
	// GrainsUnit views a mass in grains (gr).
	GrainsUnit struct{}

	// PoundsUnit views a mass in pounds (lb).
	// The international avoirdupois pound.
	PoundsUnit struct{}

	// OuncesUnit views a mass in ounces (oz).
	OuncesUnit struct{}

	// StonesUnit views a mass in stones (st).
	StonesUnit struct{}

	// ShortTonsUnit views a mass in short tons (ton_us).
	ShortTonsUnit struct{}

	// LongTonsUnit views a mass in long tons (ton_uk).
	LongTonsUnit struct{}

	// TonnesUnit views a mass in tonnes (t).
	TonnesUnit struct{}

	// GigagramsUnit views a mass in gigagrams (Gg).
	GigagramsUnit struct{}

	// MegagramsUnit views a mass in megagrams (Mg).
	MegagramsUnit struct{}

	// KilogramsUnit views a mass in kilograms (kg).
	KilogramsUnit struct{}

	// HectogramsUnit views a mass in hectograms (hg).
	HectogramsUnit struct{}

	// DecagramsUnit views a mass in decagrams (dag).
	DecagramsUnit struct{}

	// GramsUnit views a mass in grams (g).
	GramsUnit struct{}

	// DecigramsUnit views a mass in decigrams (dg).
	DecigramsUnit struct{}

	// CentigramsUnit views a mass in centigrams (cg).
	CentigramsUnit struct{}

	// MilligramsUnit views a mass in milligrams (mg).
	MilligramsUnit struct{}

	// MicrogramsUnit views a mass in micrograms (ug).
	MicrogramsUnit struct{}

	// NanogramsUnit views a mass in nanograms (ng).
	NanogramsUnit struct{}

	// PicogramsUnit views a mass in picograms (pg).
	PicogramsUnit struct{}
)

func (GrainsUnit) Def() quantity.Def[Mass] { return grainsDef }
func (PoundsUnit) Def() quantity.Def[Mass] { return poundsDef }
func (OuncesUnit) Def() quantity.Def[Mass] { return ouncesDef }
func (StonesUnit) Def() quantity.Def[Mass] { return stonesDef }
func (ShortTonsUnit) Def() quantity.Def[Mass] { return shortTonsDef }
func (LongTonsUnit) Def() quantity.Def[Mass] { return longTonsDef }
func (TonnesUnit) Def() quantity.Def[Mass] { return tonnesDef }
func (GigagramsUnit) Def() quantity.Def[Mass] { return gigagramsDef }
func (MegagramsUnit) Def() quantity.Def[Mass] { return megagramsDef }
func (KilogramsUnit) Def() quantity.Def[Mass] { return kilogramsDef }
func (HectogramsUnit) Def() quantity.Def[Mass] { return hectogramsDef }
func (DecagramsUnit) Def() quantity.Def[Mass] { return decagramsDef }
func (GramsUnit) Def() quantity.Def[Mass] { return gramsDef }
func (DecigramsUnit) Def() quantity.Def[Mass] { return decigramsDef }
func (CentigramsUnit) Def() quantity.Def[Mass] { return centigramsDef }
func (MilligramsUnit) Def() quantity.Def[Mass] { return milligramsDef }
func (MicrogramsUnit) Def() quantity.Def[Mass] { return microgramsDef }
func (NanogramsUnit) Def() quantity.Def[Mass] { return nanogramsDef }
func (PicogramsUnit) Def() quantity.Def[Mass] { return picogramsDef }

// Grains returns x grains.
func Grains(x float64) quantity.View[Mass, GrainsUnit] {
	return quantity.Make[Mass, GrainsUnit](x)
}

// GrainsOf views m in grains.
func GrainsOf(m Mass) quantity.View[Mass, GrainsUnit] {
	return quantity.ViewOf[GrainsUnit](m)
}

// Pounds returns x pounds.
func Pounds(x float64) quantity.View[Mass, PoundsUnit] {
	return quantity.Make[Mass, PoundsUnit](x)
}

// PoundsOf views m in pounds.
func PoundsOf(m Mass) quantity.View[Mass, PoundsUnit] {
	return quantity.ViewOf[PoundsUnit](m)
}

// Ounces returns x ounces.
func Ounces(x float64) quantity.View[Mass, OuncesUnit] {
	return quantity.Make[Mass, OuncesUnit](x)
}

// OuncesOf views m in ounces.
func OuncesOf(m Mass) quantity.View[Mass, OuncesUnit] {
	return quantity.ViewOf[OuncesUnit](m)
}

// Stones returns x stones.
func Stones(x float64) quantity.View[Mass, StonesUnit] {
	return quantity.Make[Mass, StonesUnit](x)
}

// StonesOf views m in stones.
func StonesOf(m Mass) quantity.View[Mass, StonesUnit] {
	return quantity.ViewOf[StonesUnit](m)
}

// ShortTons returns x short tons.
func ShortTons(x float64) quantity.View[Mass, ShortTonsUnit] {
	return quantity.Make[Mass, ShortTonsUnit](x)
}

// ShortTonsOf views m in short tons.
func ShortTonsOf(m Mass) quantity.View[Mass, ShortTonsUnit] {
	return quantity.ViewOf[ShortTonsUnit](m)
}

// LongTons returns x long tons.
func LongTons(x float64) quantity.View[Mass, LongTonsUnit] {
	return quantity.Make[Mass, LongTonsUnit](x)
}

// LongTonsOf views m in long tons.
func LongTonsOf(m Mass) quantity.View[Mass, LongTonsUnit] {
	return quantity.ViewOf[LongTonsUnit](m)
}

// Tonnes returns x tonnes.
func Tonnes(x float64) quantity.View[Mass, TonnesUnit] {
	return quantity.Make[Mass, TonnesUnit](x)
}

// TonnesOf views m in tonnes.
func TonnesOf(m Mass) quantity.View[Mass, TonnesUnit] {
	return quantity.ViewOf[TonnesUnit](m)
}

// Gigagrams returns x gigagrams.
func Gigagrams(x float64) quantity.View[Mass, GigagramsUnit] {
	return quantity.Make[Mass, GigagramsUnit](x)
}

// GigagramsOf views m in gigagrams.
func GigagramsOf(m Mass) quantity.View[Mass, GigagramsUnit] {
	return quantity.ViewOf[GigagramsUnit](m)
}

// Megagrams returns x megagrams.
func Megagrams(x float64) quantity.View[Mass, MegagramsUnit] {
	return quantity.Make[Mass, MegagramsUnit](x)
}

// MegagramsOf views m in megagrams.
func MegagramsOf(m Mass) quantity.View[Mass, MegagramsUnit] {
	return quantity.ViewOf[MegagramsUnit](m)
}

// Kilograms returns x kilograms.
func Kilograms(x float64) quantity.View[Mass, KilogramsUnit] {
	return quantity.Make[Mass, KilogramsUnit](x)
}

// KilogramsOf views m in kilograms.
func KilogramsOf(m Mass) quantity.View[Mass, KilogramsUnit] {
	return quantity.ViewOf[KilogramsUnit](m)
}

// Hectograms returns x hectograms.
func Hectograms(x float64) quantity.View[Mass, HectogramsUnit] {
	return quantity.Make[Mass, HectogramsUnit](x)
}

// HectogramsOf views m in hectograms.
func HectogramsOf(m Mass) quantity.View[Mass, HectogramsUnit] {
	return quantity.ViewOf[HectogramsUnit](m)
}

// Decagrams returns x decagrams.
func Decagrams(x float64) quantity.View[Mass, DecagramsUnit] {
	return quantity.Make[Mass, DecagramsUnit](x)
}

// DecagramsOf views m in decagrams.
func DecagramsOf(m Mass) quantity.View[Mass, DecagramsUnit] {
	return quantity.ViewOf[DecagramsUnit](m)
}

// Grams returns x grams.
func Grams(x float64) quantity.View[Mass, GramsUnit] {
	return quantity.Make[Mass, GramsUnit](x)
}

// GramsOf views m in grams.
func GramsOf(m Mass) quantity.View[Mass, GramsUnit] {
	return quantity.ViewOf[GramsUnit](m)
}

// Decigrams returns x decigrams.
func Decigrams(x float64) quantity.View[Mass, DecigramsUnit] {
	return quantity.Make[Mass, DecigramsUnit](x)
}

// DecigramsOf views m in decigrams.
func DecigramsOf(m Mass) quantity.View[Mass, DecigramsUnit] {
	return quantity.ViewOf[DecigramsUnit](m)
}

// Centigrams returns x centigrams.
func Centigrams(x float64) quantity.View[Mass, CentigramsUnit] {
	return quantity.Make[Mass, CentigramsUnit](x)
}

// CentigramsOf views m in centigrams.
func CentigramsOf(m Mass) quantity.View[Mass, CentigramsUnit] {
	return quantity.ViewOf[CentigramsUnit](m)
}

// Milligrams returns x milligrams.
func Milligrams(x float64) quantity.View[Mass, MilligramsUnit] {
	return quantity.Make[Mass, MilligramsUnit](x)
}

// MilligramsOf views m in milligrams.
func MilligramsOf(m Mass) quantity.View[Mass, MilligramsUnit] {
	return quantity.ViewOf[MilligramsUnit](m)
}

// Micrograms returns x micrograms.
func Micrograms(x float64) quantity.View[Mass, MicrogramsUnit] {
	return quantity.Make[Mass, MicrogramsUnit](x)
}

// MicrogramsOf views m in micrograms.
func MicrogramsOf(m Mass) quantity.View[Mass, MicrogramsUnit] {
	return quantity.ViewOf[MicrogramsUnit](m)
}

// Nanograms returns x nanograms.
func Nanograms(x float64) quantity.View[Mass, NanogramsUnit] {
	return quantity.Make[Mass, NanogramsUnit](x)
}

// NanogramsOf views m in nanograms.
func NanogramsOf(m Mass) quantity.View[Mass, NanogramsUnit] {
	return quantity.ViewOf[NanogramsUnit](m)
}

// Picograms returns x picograms.
func Picograms(x float64) quantity.View[Mass, PicogramsUnit] {
	return quantity.Make[Mass, PicogramsUnit](x)
}

// PicogramsOf views m in picograms.
func PicogramsOf(m Mass) quantity.View[Mass, PicogramsUnit] {
	return quantity.ViewOf[PicogramsUnit](m)
}
