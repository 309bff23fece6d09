// SPDX-License-Identifier: MIT

package units

import "github.com/katalvlaran/lvunits/quantity"

var (
	degreesPerSecondSquaredDef      = quantity.Define[AngularAcceleration]("deg_s2", quantity.Linear(1))
	degreesPerMinuteSquaredDef      = quantity.Define[AngularAcceleration]("deg_m2", quantity.Linear(1.0/60/60))
	degreesPerHourSquaredDef        = quantity.Define[AngularAcceleration]("deg_hr2", quantity.Linear(1.0/3600/3600))
	radiansPerSecondSquaredDef      = quantity.Define[AngularAcceleration]("rad_s2", quantity.Linear(degreesPerRadian))
	milliradiansPerSecondSquaredDef = quantity.Define[AngularAcceleration]("mil_s2", quantity.Linear(float64(FullCircle)/6400))
	bamsPerSecondSquaredDef         = quantity.Define[AngularAcceleration]("bams_s2", quantity.Linear(float64(HalfCircle)))
	revolutionsPerSecondSquaredDef  = quantity.Define[AngularAcceleration]("rps2", quantity.Linear(float64(FullCircle)))
	revolutionsPerMinuteSquaredDef  = quantity.Define[AngularAcceleration]("rpm2", quantity.Linear(float64(FullCircle)/60/60))
	revolutionsPerHourSquaredDef    = quantity.Define[AngularAcceleration]("rph2", quantity.Linear(float64(FullCircle)/3600/3600))
)

type (
	// DegreesPerSecondSquaredUnit views an angular acceleration in degrees per second squared (deg_s2).
	DegreesPerSecondSquaredUnit struct{}

	// DegreesPerMinuteSquaredUnit views an angular acceleration in degrees per minute squared (deg_m2).
	DegreesPerMinuteSquaredUnit struct{}

	// DegreesPerHourSquaredUnit views an angular acceleration in degrees per hour squared (deg_hr2).
	DegreesPerHourSquaredUnit struct{}

	// RadiansPerSecondSquaredUnit views an angular acceleration in radians per second squared (rad_s2).
	RadiansPerSecondSquaredUnit struct{}

	// MilliradiansPerSecondSquaredUnit views an angular acceleration in milliradians per second squared (mil_s2).
	MilliradiansPerSecondSquaredUnit struct{}

	// BAMSPerSecondSquaredUnit views an angular acceleration in BAMS per second squared (bams_s2).
	BAMSPerSecondSquaredUnit struct{}

	// RevolutionsPerSecondSquaredUnit views an angular acceleration in revolutions per second squared (rps2).
	RevolutionsPerSecondSquaredUnit struct{}

	// RevolutionsPerMinuteSquaredUnit views an angular acceleration in revolutions per minute squared (rpm2).
	RevolutionsPerMinuteSquaredUnit struct{}

	// RevolutionsPerHourSquaredUnit views an angular acceleration in revolutions per hour squared (rph2).
	RevolutionsPerHourSquaredUnit struct{}
)

func (DegreesPerSecondSquaredUnit) Def() quantity.Def[AngularAcceleration] { return degreesPerSecondSquaredDef }
func (DegreesPerMinuteSquaredUnit) Def() quantity.Def[AngularAcceleration] { return degreesPerMinuteSquaredDef }
func (DegreesPerHourSquaredUnit) Def() quantity.Def[AngularAcceleration] { return degreesPerHourSquaredDef }
func (RadiansPerSecondSquaredUnit) Def() quantity.Def[AngularAcceleration] { return radiansPerSecondSquaredDef }
func (MilliradiansPerSecondSquaredUnit) Def() quantity.Def[AngularAcceleration] { return milliradiansPerSecondSquaredDef }
func (BAMSPerSecondSquaredUnit) Def() quantity.Def[AngularAcceleration] { return bamsPerSecondSquaredDef }
func (RevolutionsPerSecondSquaredUnit) Def() quantity.Def[AngularAcceleration] { return revolutionsPerSecondSquaredDef }
func (RevolutionsPerMinuteSquaredUnit) Def() quantity.Def[AngularAcceleration] { return revolutionsPerMinuteSquaredDef }
func (RevolutionsPerHourSquaredUnit) Def() quantity.Def[AngularAcceleration] { return revolutionsPerHourSquaredDef }

// DegreesPerSecondSquared returns x degrees per second squared.
func DegreesPerSecondSquared(x float64) quantity.View[AngularAcceleration, DegreesPerSecondSquaredUnit] {
	return quantity.Make[AngularAcceleration, DegreesPerSecondSquaredUnit](x)
}

// DegreesPerSecondSquaredOf views a in degrees per second squared.
func DegreesPerSecondSquaredOf(a AngularAcceleration) quantity.View[AngularAcceleration, DegreesPerSecondSquaredUnit] {
	return quantity.ViewOf[DegreesPerSecondSquaredUnit](a)
}

// DegreesPerMinuteSquared returns x degrees per minute squared.
func DegreesPerMinuteSquared(x float64) quantity.View[AngularAcceleration, DegreesPerMinuteSquaredUnit] {
	return quantity.Make[AngularAcceleration, DegreesPerMinuteSquaredUnit](x)
}

// DegreesPerMinuteSquaredOf views a in degrees per minute squared.
func DegreesPerMinuteSquaredOf(a AngularAcceleration) quantity.View[AngularAcceleration, DegreesPerMinuteSquaredUnit] {
	return quantity.ViewOf[DegreesPerMinuteSquaredUnit](a)
}

// DegreesPerHourSquared returns x degrees per hour squared.
func DegreesPerHourSquared(x float64) quantity.View[AngularAcceleration, DegreesPerHourSquaredUnit] {
	return quantity.Make[AngularAcceleration, DegreesPerHourSquaredUnit](x)
}

// DegreesPerHourSquaredOf views a in degrees per hour squared.
func DegreesPerHourSquaredOf(a AngularAcceleration) quantity.View[AngularAcceleration, DegreesPerHourSquaredUnit] {
	return quantity.ViewOf[DegreesPerHourSquaredUnit](a)
}

// RadiansPerSecondSquared returns x radians per second squared.
func RadiansPerSecondSquared(x float64) quantity.View[AngularAcceleration, RadiansPerSecondSquaredUnit] {
	return quantity.Make[AngularAcceleration, RadiansPerSecondSquaredUnit](x)
}

// RadiansPerSecondSquaredOf views a in radians per second squared.
func RadiansPerSecondSquaredOf(a AngularAcceleration) quantity.View[AngularAcceleration, RadiansPerSecondSquaredUnit] {
	return quantity.ViewOf[RadiansPerSecondSquaredUnit](a)
}

// MilliradiansPerSecondSquared returns x milliradians per second squared.
func MilliradiansPerSecondSquared(x float64) quantity.View[AngularAcceleration, MilliradiansPerSecondSquaredUnit] {
	return quantity.Make[AngularAcceleration, MilliradiansPerSecondSquaredUnit](x)
}

// MilliradiansPerSecondSquaredOf views a in milliradians per second squared.
func MilliradiansPerSecondSquaredOf(a AngularAcceleration) quantity.View[AngularAcceleration, MilliradiansPerSecondSquaredUnit] {
	return quantity.ViewOf[MilliradiansPerSecondSquaredUnit](a)
}

// BAMSPerSecondSquared returns x BAMS per second squared.
func BAMSPerSecondSquared(x float64) quantity.View[AngularAcceleration, BAMSPerSecondSquaredUnit] {
	return quantity.Make[AngularAcceleration, BAMSPerSecondSquaredUnit](x)
}

// BAMSPerSecondSquaredOf views a in BAMS per second squared.
func BAMSPerSecondSquaredOf(a AngularAcceleration) quantity.View[AngularAcceleration, BAMSPerSecondSquaredUnit] {
	return quantity.ViewOf[BAMSPerSecondSquaredUnit](a)
}

// RevolutionsPerSecondSquared returns x revolutions per second squared.
func RevolutionsPerSecondSquared(x float64) quantity.View[AngularAcceleration, RevolutionsPerSecondSquaredUnit] {
	return quantity.Make[AngularAcceleration, RevolutionsPerSecondSquaredUnit](x)
}

// RevolutionsPerSecondSquaredOf views a in revolutions per second squared.
func RevolutionsPerSecondSquaredOf(a AngularAcceleration) quantity.View[AngularAcceleration, RevolutionsPerSecondSquaredUnit] {
	return quantity.ViewOf[RevolutionsPerSecondSquaredUnit](a)
}

// RevolutionsPerMinuteSquared returns x revolutions per minute squared.
func RevolutionsPerMinuteSquared(x float64) quantity.View[AngularAcceleration, RevolutionsPerMinuteSquaredUnit] {
	return quantity.Make[AngularAcceleration, RevolutionsPerMinuteSquaredUnit](x)
}

// RevolutionsPerMinuteSquaredOf views a in revolutions per minute squared.
func RevolutionsPerMinuteSquaredOf(a AngularAcceleration) quantity.View[AngularAcceleration, RevolutionsPerMinuteSquaredUnit] {
	return quantity.ViewOf[RevolutionsPerMinuteSquaredUnit](a)
}

// RevolutionsPerHourSquared returns x revolutions per hour squared.
func RevolutionsPerHourSquared(x float64) quantity.View[AngularAcceleration, RevolutionsPerHourSquaredUnit] {
	return quantity.Make[AngularAcceleration, RevolutionsPerHourSquaredUnit](x)
}

// RevolutionsPerHourSquaredOf views a in revolutions per hour squared.
func RevolutionsPerHourSquaredOf(a AngularAcceleration) quantity.View[AngularAcceleration, RevolutionsPerHourSquaredUnit] {
	return quantity.ViewOf[RevolutionsPerHourSquaredUnit](a)
}
