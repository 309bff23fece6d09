// SPDX-License-Identifier: MIT

package units

import (
	"math"

	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/si"
)

// warpExponent relates warp factor to light speed: v = w^(3/5)·c.
const warpExponent = 3.0 / 5.0

var (
	machDef              = quantity.Define[Speed]("mach", quantity.Linear(340.3))
	knotsDef             = quantity.Define[Speed]("kt", quantity.Linear(1852.0/3600.0))
	metersPerHourDef     = quantity.Define[Speed]("meter_per_hour", quantity.Linear(1.0/3600.0))
	feetPerMinuteDef     = quantity.Define[Speed]("fpm", quantity.Linear(metersPerFoot/60))
	feetPerSecondDef     = quantity.Define[Speed]("fps", quantity.Linear(metersPerFoot))
	milesPerHourDef      = quantity.Define[Speed]("mph", quantity.Linear(5280*metersPerFoot/3600))
	kilometersPerHourDef = quantity.Define[Speed]("kph", quantity.Linear(si.Kilo/3600.0))
	metersPerSecondDef   = quantity.Define[Speed]("mps", quantity.Linear(1))

	warpFactorDef = quantity.Define[Speed]("wf", quantity.Equation(
		func(w float64) float64 { return float64(SpeedOfLight) * math.Pow(w, warpExponent) },
		func(v float64) float64 { return math.Pow(v/float64(SpeedOfLight), 1/warpExponent) },
	))
)

type (
	// MachUnit views a speed in mach (mach).
	// Speed of sound at sea level in the standard atmosphere.
	MachUnit struct{}

	// KnotsUnit views a speed in knots (kt).
	KnotsUnit struct{}

	// MetersPerHourUnit views a speed in meters per hour (meter_per_hour).
	MetersPerHourUnit struct{}

	// FeetPerMinuteUnit views a speed in feet per minute (fpm).
	FeetPerMinuteUnit struct{}

	// FeetPerSecondUnit views a speed in feet per second (fps).
	FeetPerSecondUnit struct{}

	// MilesPerHourUnit views a speed in miles per hour (mph).
	MilesPerHourUnit struct{}

	// KilometersPerHourUnit views a speed in kilometers per hour (kph).
	KilometersPerHourUnit struct{}

	// MetersPerSecondUnit views a speed in meters per second (mps).
	MetersPerSecondUnit struct{}

	// WarpFactorUnit views a speed in warp factor (wf).
	// Warp factor w travels at w^(3/5) times the speed of light.
	WarpFactorUnit struct{}
)

func (MachUnit) Def() quantity.Def[Speed] { return machDef }
func (KnotsUnit) Def() quantity.Def[Speed] { return knotsDef }
func (MetersPerHourUnit) Def() quantity.Def[Speed] { return metersPerHourDef }
func (FeetPerMinuteUnit) Def() quantity.Def[Speed] { return feetPerMinuteDef }
func (FeetPerSecondUnit) Def() quantity.Def[Speed] { return feetPerSecondDef }
func (MilesPerHourUnit) Def() quantity.Def[Speed] { return milesPerHourDef }
func (KilometersPerHourUnit) Def() quantity.Def[Speed] { return kilometersPerHourDef }
func (MetersPerSecondUnit) Def() quantity.Def[Speed] { return metersPerSecondDef }
func (WarpFactorUnit) Def() quantity.Def[Speed] { return warpFactorDef }

// Mach returns x mach.
func Mach(x float64) quantity.View[Speed, MachUnit] {
	return quantity.Make[Speed, MachUnit](x)
}

// MachOf views s in mach.
func MachOf(s Speed) quantity.View[Speed, MachUnit] {
	return quantity.ViewOf[MachUnit](s)
}

// Knots returns x knots.
func Knots(x float64) quantity.View[Speed, KnotsUnit] {
	return quantity.Make[Speed, KnotsUnit](x)
}

// KnotsOf views s in knots.
func KnotsOf(s Speed) quantity.View[Speed, KnotsUnit] {
	return quantity.ViewOf[KnotsUnit](s)
}

// MetersPerHour returns x meters per hour.
func MetersPerHour(x float64) quantity.View[Speed, MetersPerHourUnit] {
	return quantity.Make[Speed, MetersPerHourUnit](x)
}

// MetersPerHourOf views s in meters per hour.
func MetersPerHourOf(s Speed) quantity.View[Speed, MetersPerHourUnit] {
	return quantity.ViewOf[MetersPerHourUnit](s)
}

// FeetPerMinute returns x feet per minute.
func FeetPerMinute(x float64) quantity.View[Speed, FeetPerMinuteUnit] {
	return quantity.Make[Speed, FeetPerMinuteUnit](x)
}

// FeetPerMinuteOf views s in feet per minute.
func FeetPerMinuteOf(s Speed) quantity.View[Speed, FeetPerMinuteUnit] {
	return quantity.ViewOf[FeetPerMinuteUnit](s)
}

// FeetPerSecond returns x feet per second.
func FeetPerSecond(x float64) quantity.View[Speed, FeetPerSecondUnit] {
	return quantity.Make[Speed, FeetPerSecondUnit](x)
}

// FeetPerSecondOf views s in feet per second.
func FeetPerSecondOf(s Speed) quantity.View[Speed, FeetPerSecondUnit] {
	return quantity.ViewOf[FeetPerSecondUnit](s)
}

// MilesPerHour returns x miles per hour.
func MilesPerHour(x float64) quantity.View[Speed, MilesPerHourUnit] {
	return quantity.Make[Speed, MilesPerHourUnit](x)
}

// MilesPerHourOf views s in miles per hour.
func MilesPerHourOf(s Speed) quantity.View[Speed, MilesPerHourUnit] {
	return quantity.ViewOf[MilesPerHourUnit](s)
}

// KilometersPerHour returns x kilometers per hour.
func KilometersPerHour(x float64) quantity.View[Speed, KilometersPerHourUnit] {
	return quantity.Make[Speed, KilometersPerHourUnit](x)
}

// KilometersPerHourOf views s in kilometers per hour.
func KilometersPerHourOf(s Speed) quantity.View[Speed, KilometersPerHourUnit] {
	return quantity.ViewOf[KilometersPerHourUnit](s)
}

// MetersPerSecond returns x meters per second.
func MetersPerSecond(x float64) quantity.View[Speed, MetersPerSecondUnit] {
	return quantity.Make[Speed, MetersPerSecondUnit](x)
}

// MetersPerSecondOf views s in meters per second.
func MetersPerSecondOf(s Speed) quantity.View[Speed, MetersPerSecondUnit] {
	return quantity.ViewOf[MetersPerSecondUnit](s)
}

// WarpFactor returns x warp factor.
func WarpFactor(x float64) quantity.View[Speed, WarpFactorUnit] {
	return quantity.Make[Speed, WarpFactorUnit](x)
}

// WarpFactorOf views s in warp factor.
func WarpFactorOf(s Speed) quantity.View[Speed, WarpFactorUnit] {
	return quantity.ViewOf[WarpFactorUnit](s)
}
