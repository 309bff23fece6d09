// SPDX-License-Identifier: MIT

package units

import (
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/si"
)

var (
	standardGravityDef          = quantity.Define[Acceleration]("g0", quantity.Linear(9.80665))
	metersPerHourSquaredDef     = quantity.Define[Acceleration]("meter_per_hour_2", quantity.Linear(1.0/3600/3600))
	feetPerMinuteSquaredDef     = quantity.Define[Acceleration]("fpm2", quantity.Linear(metersPerFoot/60/60))
	feetPerSecondSquaredDef     = quantity.Define[Acceleration]("fps2", quantity.Linear(metersPerFoot))
	milesPerHourSquaredDef      = quantity.Define[Acceleration]("mph2", quantity.Linear(5280*metersPerFoot/3600/3600))
	kilometersPerHourSquaredDef = quantity.Define[Acceleration]("kph2", quantity.Linear(si.Kilo/3600/3600))
	inchesPerSecondSquaredDef   = quantity.Define[Acceleration]("inps2", quantity.Linear(metersPerFoot/12))
	galsDef                     = quantity.Define[Acceleration]("Gal", quantity.Linear(si.Centi))
	metersPerSecondSquaredDef   = quantity.Define[Acceleration]("mps2", quantity.Linear(1))
)

type (
	// StandardGravityUnit views an acceleration in standard gravity (g0).
	// Standard acceleration of free fall.
	StandardGravityUnit struct{}

	// MetersPerHourSquaredUnit views an acceleration in meters per hour squared (meter_per_hour_2).
	MetersPerHourSquaredUnit struct{}

	// FeetPerMinuteSquaredUnit views an acceleration in feet per minute squared (fpm2).
	FeetPerMinuteSquaredUnit struct{}

	// FeetPerSecondSquaredUnit views an acceleration in feet per second squared (fps2).
	FeetPerSecondSquaredUnit struct{}

	// MilesPerHourSquaredUnit views an acceleration in miles per hour squared (mph2).
	MilesPerHourSquaredUnit struct{}

	// KilometersPerHourSquaredUnit views an acceleration in kilometers per hour squared (kph2).
	KilometersPerHourSquaredUnit struct{}

	// InchesPerSecondSquaredUnit views an acceleration in inches per second squared (inps2).
	InchesPerSecondSquaredUnit struct{}

	// GalsUnit views an acceleration in gals (Gal).
	// The CGS galileo, 1 cm/s².
	GalsUnit struct{}

	// MetersPerSecondSquaredUnit views an acceleration in meters per second squared (mps2).
	MetersPerSecondSquaredUnit struct{}
)

func (StandardGravityUnit) Def() quantity.Def[Acceleration] { return standardGravityDef }
func (MetersPerHourSquaredUnit) Def() quantity.Def[Acceleration] { return metersPerHourSquaredDef }
func (FeetPerMinuteSquaredUnit) Def() quantity.Def[Acceleration] { return feetPerMinuteSquaredDef }
func (FeetPerSecondSquaredUnit) Def() quantity.Def[Acceleration] { return feetPerSecondSquaredDef }
func (MilesPerHourSquaredUnit) Def() quantity.Def[Acceleration] { return milesPerHourSquaredDef }
func (KilometersPerHourSquaredUnit) Def() quantity.Def[Acceleration] { return kilometersPerHourSquaredDef }
func (InchesPerSecondSquaredUnit) Def() quantity.Def[Acceleration] { return inchesPerSecondSquaredDef }
func (GalsUnit) Def() quantity.Def[Acceleration] { return galsDef }
func (MetersPerSecondSquaredUnit) Def() quantity.Def[Acceleration] { return metersPerSecondSquaredDef }

// StandardGravity returns x standard gravity.
func StandardGravity(x float64) quantity.View[Acceleration, StandardGravityUnit] {
	return quantity.Make[Acceleration, StandardGravityUnit](x)
}

// StandardGravityOf views a in standard gravity.
func StandardGravityOf(a Acceleration) quantity.View[Acceleration, StandardGravityUnit] {
	return quantity.ViewOf[StandardGravityUnit](a)
}

// MetersPerHourSquared returns x meters per hour squared.
func MetersPerHourSquared(x float64) quantity.View[Acceleration, MetersPerHourSquaredUnit] {
	return quantity.Make[Acceleration, MetersPerHourSquaredUnit](x)
}

// MetersPerHourSquaredOf views a in meters per hour squared.
func MetersPerHourSquaredOf(a Acceleration) quantity.View[Acceleration, MetersPerHourSquaredUnit] {
	return quantity.ViewOf[MetersPerHourSquaredUnit](a)
}

// FeetPerMinuteSquared returns x feet per minute squared.
func FeetPerMinuteSquared(x float64) quantity.View[Acceleration, FeetPerMinuteSquaredUnit] {
	return quantity.Make[Acceleration, FeetPerMinuteSquaredUnit](x)
}

// FeetPerMinuteSquaredOf views a in feet per minute squared.
func FeetPerMinuteSquaredOf(a Acceleration) quantity.View[Acceleration, FeetPerMinuteSquaredUnit] {
	return quantity.ViewOf[FeetPerMinuteSquaredUnit](a)
}

// FeetPerSecondSquared returns x feet per second squared.
func FeetPerSecondSquared(x float64) quantity.View[Acceleration, FeetPerSecondSquaredUnit] {
	return quantity.Make[Acceleration, FeetPerSecondSquaredUnit](x)
}

// FeetPerSecondSquaredOf views a in feet per second squared.
func FeetPerSecondSquaredOf(a Acceleration) quantity.View[Acceleration, FeetPerSecondSquaredUnit] {
	return quantity.ViewOf[FeetPerSecondSquaredUnit](a)
}

// MilesPerHourSquared returns x miles per hour squared.
func MilesPerHourSquared(x float64) quantity.View[Acceleration, MilesPerHourSquaredUnit] {
	return quantity.Make[Acceleration, MilesPerHourSquaredUnit](x)
}

// MilesPerHourSquaredOf views a in miles per hour squared.
func MilesPerHourSquaredOf(a Acceleration) quantity.View[Acceleration, MilesPerHourSquaredUnit] {
	return quantity.ViewOf[MilesPerHourSquaredUnit](a)
}

// KilometersPerHourSquared returns x kilometers per hour squared.
func KilometersPerHourSquared(x float64) quantity.View[Acceleration, KilometersPerHourSquaredUnit] {
	return quantity.Make[Acceleration, KilometersPerHourSquaredUnit](x)
}

// KilometersPerHourSquaredOf views a in kilometers per hour squared.
func KilometersPerHourSquaredOf(a Acceleration) quantity.View[Acceleration, KilometersPerHourSquaredUnit] {
	return quantity.ViewOf[KilometersPerHourSquaredUnit](a)
}

// InchesPerSecondSquared returns x inches per second squared.
func InchesPerSecondSquared(x float64) quantity.View[Acceleration, InchesPerSecondSquaredUnit] {
	return quantity.Make[Acceleration, InchesPerSecondSquaredUnit](x)
}

// InchesPerSecondSquaredOf views a in inches per second squared.
func InchesPerSecondSquaredOf(a Acceleration) quantity.View[Acceleration, InchesPerSecondSquaredUnit] {
	return quantity.ViewOf[InchesPerSecondSquaredUnit](a)
}

// Gals returns x gals.
func Gals(x float64) quantity.View[Acceleration, GalsUnit] {
	return quantity.Make[Acceleration, GalsUnit](x)
}

// GalsOf views a in gals.
func GalsOf(a Acceleration) quantity.View[Acceleration, GalsUnit] {
	return quantity.ViewOf[GalsUnit](a)
}

// MetersPerSecondSquared returns x meters per second squared.
func MetersPerSecondSquared(x float64) quantity.View[Acceleration, MetersPerSecondSquaredUnit] {
	return quantity.Make[Acceleration, MetersPerSecondSquaredUnit](x)
}

// MetersPerSecondSquaredOf views a in meters per second squared.
func MetersPerSecondSquaredOf(a Acceleration) quantity.View[Acceleration, MetersPerSecondSquaredUnit] {
	return quantity.ViewOf[MetersPerSecondSquaredUnit](a)
}
