// SPDX-License-Identifier: MIT

package units

import (
	"math"

	"github.com/katalvlaran/lvunits/quantity"
)

const degreesPerRadian = 180 / math.Pi

var (
	degreesDef      = quantity.Define[Angle]("deg", quantity.Linear(1))
	radiansDef      = quantity.Define[Angle]("rad", quantity.Linear(degreesPerRadian))
	milliradiansDef = quantity.Define[Angle]("mil", quantity.Linear(float64(FullCircle)/6400))
	bamsDef         = quantity.Define[Angle]("bams", quantity.Linear(float64(HalfCircle)))
	revolutionsDef  = quantity.Define[Angle]("rev", quantity.Linear(float64(FullCircle)))
	arcMinutesDef   = quantity.Define[Angle]("arcmin", quantity.Linear(1.0/60.0))
	arcSecondsDef   = quantity.Define[Angle]("arcsec", quantity.Linear(1.0/3600.0))
)

type (
	// DegreesUnit views an angle in degrees (deg).
	DegreesUnit struct{}

	// RadiansUnit views an angle in radians (rad).
	RadiansUnit struct{}

	// MilliradiansUnit views an angle in milliradians (mil).
	// The NATO mil, 6400 to the turn.
	MilliradiansUnit struct{}

	// BAMSUnit views an angle in BAMS (bams).
	// Binary angular measure, 2 to the turn.
	BAMSUnit struct{}

	// RevolutionsUnit views an angle in revolutions (rev).
	RevolutionsUnit struct{}

	// ArcMinutesUnit views an angle in arc minutes (arcmin).
	ArcMinutesUnit struct{}

	// ArcSecondsUnit views an angle in arc seconds (arcsec).
	ArcSecondsUnit struct{}
)

func (DegreesUnit) Def() quantity.Def[Angle] { return degreesDef }
func (RadiansUnit) Def() quantity.Def[Angle] { return radiansDef }
func (MilliradiansUnit) Def() quantity.Def[Angle] { return milliradiansDef }
func (BAMSUnit) Def() quantity.Def[Angle] { return bamsDef }
func (RevolutionsUnit) Def() quantity.Def[Angle] { return revolutionsDef }
func (ArcMinutesUnit) Def() quantity.Def[Angle] { return arcMinutesDef }
func (ArcSecondsUnit) Def() quantity.Def[Angle] { return arcSecondsDef }

// Degrees returns x degrees.
func Degrees(x float64) quantity.View[Angle, DegreesUnit] {
	return quantity.Make[Angle, DegreesUnit](x)
}

// DegreesOf views a in degrees.
func DegreesOf(a Angle) quantity.View[Angle, DegreesUnit] {
	return quantity.ViewOf[DegreesUnit](a)
}

// Radians returns x radians.
func Radians(x float64) quantity.View[Angle, RadiansUnit] {
	return quantity.Make[Angle, RadiansUnit](x)
}

// RadiansOf views a in radians.
func RadiansOf(a Angle) quantity.View[Angle, RadiansUnit] {
	return quantity.ViewOf[RadiansUnit](a)
}

// Milliradians returns x milliradians.
func Milliradians(x float64) quantity.View[Angle, MilliradiansUnit] {
	return quantity.Make[Angle, MilliradiansUnit](x)
}

// MilliradiansOf views a in milliradians.
func MilliradiansOf(a Angle) quantity.View[Angle, MilliradiansUnit] {
	return quantity.ViewOf[MilliradiansUnit](a)
}

// BAMS returns x BAMS.
func BAMS(x float64) quantity.View[Angle, BAMSUnit] {
	return quantity.Make[Angle, BAMSUnit](x)
}

// BAMSOf views a in BAMS.
func BAMSOf(a Angle) quantity.View[Angle, BAMSUnit] {
	return quantity.ViewOf[BAMSUnit](a)
}

// Revolutions returns x revolutions.
func Revolutions(x float64) quantity.View[Angle, RevolutionsUnit] {
	return quantity.Make[Angle, RevolutionsUnit](x)
}

// RevolutionsOf views a in revolutions.
func RevolutionsOf(a Angle) quantity.View[Angle, RevolutionsUnit] {
	return quantity.ViewOf[RevolutionsUnit](a)
}

// ArcMinutes returns x arc minutes.
func ArcMinutes(x float64) quantity.View[Angle, ArcMinutesUnit] {
	return quantity.Make[Angle, ArcMinutesUnit](x)
}

// ArcMinutesOf views a in arc minutes.
func ArcMinutesOf(a Angle) quantity.View[Angle, ArcMinutesUnit] {
	return quantity.ViewOf[ArcMinutesUnit](a)
}

// ArcSeconds returns x arc seconds.
func ArcSeconds(x float64) quantity.View[Angle, ArcSecondsUnit] {
	return quantity.Make[Angle, ArcSecondsUnit](x)
}

// ArcSecondsOf views a in arc seconds.
func ArcSecondsOf(a Angle) quantity.View[Angle, ArcSecondsUnit] {
	return quantity.ViewOf[ArcSecondsUnit](a)
}
