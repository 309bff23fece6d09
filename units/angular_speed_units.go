// SPDX-License-Identifier: MIT

package units

import "github.com/katalvlaran/lvunits/quantity"

var (
	degreesPerSecondDef      = quantity.Define[AngularSpeed]("deg_s", quantity.Linear(1))
	degreesPerMinuteDef      = quantity.Define[AngularSpeed]("deg_m", quantity.Linear(1.0/60.0))
	degreesPerHourDef        = quantity.Define[AngularSpeed]("deg_hr", quantity.Linear(1.0/3600.0))
	radiansPerSecondDef      = quantity.Define[AngularSpeed]("rad_s", quantity.Linear(degreesPerRadian))
	milliradiansPerSecondDef = quantity.Define[AngularSpeed]("mil_s", quantity.Linear(float64(FullCircle)/6400))
	bamsPerSecondDef         = quantity.Define[AngularSpeed]("bams_s", quantity.Linear(float64(HalfCircle)))
	revolutionsPerSecondDef  = quantity.Define[AngularSpeed]("rps", quantity.Linear(float64(FullCircle)))
	revolutionsPerMinuteDef  = quantity.Define[AngularSpeed]("rpm", quantity.Linear(float64(FullCircle)/60))
	revolutionsPerHourDef    = quantity.Define[AngularSpeed]("rph", quantity.Linear(float64(FullCircle)/3600))
)

type (
	// DegreesPerSecondUnit views an angular speed in degrees per second (deg_s).
	DegreesPerSecondUnit struct{}

	// DegreesPerMinuteUnit views an angular speed in degrees per minute (deg_m).
	DegreesPerMinuteUnit struct{}

	// DegreesPerHourUnit views an angular speed in degrees per hour (deg_hr).
	DegreesPerHourUnit struct{}

	// RadiansPerSecondUnit views an angular speed in radians per second (rad_s).
	RadiansPerSecondUnit struct{}

	// MilliradiansPerSecondUnit views an angular speed in milliradians per second (mil_s).
	MilliradiansPerSecondUnit struct{}

	// BAMSPerSecondUnit views an angular speed in BAMS per second (bams_s).
	BAMSPerSecondUnit struct{}

	// RevolutionsPerSecondUnit views an angular speed in revolutions per second (rps).
	RevolutionsPerSecondUnit struct{}

	// RevolutionsPerMinuteUnit views an angular speed in revolutions per minute (rpm).
	RevolutionsPerMinuteUnit struct{}

	// RevolutionsPerHourUnit views an angular speed in revolutions per hour (rph).
	RevolutionsPerHourUnit struct{}
)

func (DegreesPerSecondUnit) Def() quantity.Def[AngularSpeed] { return degreesPerSecondDef }
func (DegreesPerMinuteUnit) Def() quantity.Def[AngularSpeed] { return degreesPerMinuteDef }
func (DegreesPerHourUnit) Def() quantity.Def[AngularSpeed] { return degreesPerHourDef }
func (RadiansPerSecondUnit) Def() quantity.Def[AngularSpeed] { return radiansPerSecondDef }
func (MilliradiansPerSecondUnit) Def() quantity.Def[AngularSpeed] { return milliradiansPerSecondDef }
func (BAMSPerSecondUnit) Def() quantity.Def[AngularSpeed] { return bamsPerSecondDef }
func (RevolutionsPerSecondUnit) Def() quantity.Def[AngularSpeed] { return revolutionsPerSecondDef }
func (RevolutionsPerMinuteUnit) Def() quantity.Def[AngularSpeed] { return revolutionsPerMinuteDef }
func (RevolutionsPerHourUnit) Def() quantity.Def[AngularSpeed] { return revolutionsPerHourDef }

// DegreesPerSecond returns x degrees per second.
func DegreesPerSecond(x float64) quantity.View[AngularSpeed, DegreesPerSecondUnit] {
	return quantity.Make[AngularSpeed, DegreesPerSecondUnit](x)
}

// DegreesPerSecondOf views w in degrees per second.
func DegreesPerSecondOf(w AngularSpeed) quantity.View[AngularSpeed, DegreesPerSecondUnit] {
	return quantity.ViewOf[DegreesPerSecondUnit](w)
}

// DegreesPerMinute returns x degrees per minute.
func DegreesPerMinute(x float64) quantity.View[AngularSpeed, DegreesPerMinuteUnit] {
	return quantity.Make[AngularSpeed, DegreesPerMinuteUnit](x)
}

// DegreesPerMinuteOf views w in degrees per minute.
func DegreesPerMinuteOf(w AngularSpeed) quantity.View[AngularSpeed, DegreesPerMinuteUnit] {
	return quantity.ViewOf[DegreesPerMinuteUnit](w)
}

// DegreesPerHour returns x degrees per hour.
func DegreesPerHour(x float64) quantity.View[AngularSpeed, DegreesPerHourUnit] {
	return quantity.Make[AngularSpeed, DegreesPerHourUnit](x)
}

// DegreesPerHourOf views w in degrees per hour.
func DegreesPerHourOf(w AngularSpeed) quantity.View[AngularSpeed, DegreesPerHourUnit] {
	return quantity.ViewOf[DegreesPerHourUnit](w)
}

// RadiansPerSecond returns x radians per second.
func RadiansPerSecond(x float64) quantity.View[AngularSpeed, RadiansPerSecondUnit] {
	return quantity.Make[AngularSpeed, RadiansPerSecondUnit](x)
}

// RadiansPerSecondOf views w in radians per second.
func RadiansPerSecondOf(w AngularSpeed) quantity.View[AngularSpeed, RadiansPerSecondUnit] {
	return quantity.ViewOf[RadiansPerSecondUnit](w)
}

// MilliradiansPerSecond returns x milliradians per second.
func MilliradiansPerSecond(x float64) quantity.View[AngularSpeed, MilliradiansPerSecondUnit] {
	return quantity.Make[AngularSpeed, MilliradiansPerSecondUnit](x)
}

// MilliradiansPerSecondOf views w in milliradians per second.
func MilliradiansPerSecondOf(w AngularSpeed) quantity.View[AngularSpeed, MilliradiansPerSecondUnit] {
	return quantity.ViewOf[MilliradiansPerSecondUnit](w)
}

// BAMSPerSecond returns x BAMS per second.
func BAMSPerSecond(x float64) quantity.View[AngularSpeed, BAMSPerSecondUnit] {
	return quantity.Make[AngularSpeed, BAMSPerSecondUnit](x)
}

// BAMSPerSecondOf views w in BAMS per second.
func BAMSPerSecondOf(w AngularSpeed) quantity.View[AngularSpeed, BAMSPerSecondUnit] {
	return quantity.ViewOf[BAMSPerSecondUnit](w)
}

// RevolutionsPerSecond returns x revolutions per second.
func RevolutionsPerSecond(x float64) quantity.View[AngularSpeed, RevolutionsPerSecondUnit] {
	return quantity.Make[AngularSpeed, RevolutionsPerSecondUnit](x)
}

// RevolutionsPerSecondOf views w in revolutions per second.
func RevolutionsPerSecondOf(w AngularSpeed) quantity.View[AngularSpeed, RevolutionsPerSecondUnit] {
	return quantity.ViewOf[RevolutionsPerSecondUnit](w)
}

// RevolutionsPerMinute returns x revolutions per minute.
func RevolutionsPerMinute(x float64) quantity.View[AngularSpeed, RevolutionsPerMinuteUnit] {
	return quantity.Make[AngularSpeed, RevolutionsPerMinuteUnit](x)
}

// RevolutionsPerMinuteOf views w in revolutions per minute.
func RevolutionsPerMinuteOf(w AngularSpeed) quantity.View[AngularSpeed, RevolutionsPerMinuteUnit] {
	return quantity.ViewOf[RevolutionsPerMinuteUnit](w)
}

// RevolutionsPerHour returns x revolutions per hour.
func RevolutionsPerHour(x float64) quantity.View[AngularSpeed, RevolutionsPerHourUnit] {
	return quantity.Make[AngularSpeed, RevolutionsPerHourUnit](x)
}

// RevolutionsPerHourOf views w in revolutions per hour.
func RevolutionsPerHourOf(w AngularSpeed) quantity.View[AngularSpeed, RevolutionsPerHourUnit] {
	return quantity.ViewOf[RevolutionsPerHourUnit](w)
}
