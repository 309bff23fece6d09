// SPDX-License-Identifier: MIT

package literal

import (
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/units"
)

// Time.

// LeapYr is units.LeapYears.
func LeapYr(x float64) quantity.View[units.Time, units.LeapYearsUnit] { return units.LeapYears(x) }

// NonLeapYr is units.NonLeapYears.
func NonLeapYr(x float64) quantity.View[units.Time, units.NonLeapYearsUnit] { return units.NonLeapYears(x) }

// Yr is units.Years.
func Yr(x float64) quantity.View[units.Time, units.YearsUnit] { return units.Years(x) }

// NonLeapYrMon is units.NonLeapYearMonths.
func NonLeapYrMon(x float64) quantity.View[units.Time, units.NonLeapYearMonthsUnit] { return units.NonLeapYearMonths(x) }

// Mon is units.Months.
func Mon(x float64) quantity.View[units.Time, units.MonthsUnit] { return units.Months(x) }

// Wk is units.Weeks.
func Wk(x float64) quantity.View[units.Time, units.WeeksUnit] { return units.Weeks(x) }

// Day is units.Days.
func Day(x float64) quantity.View[units.Time, units.DaysUnit] { return units.Days(x) }

// Hr is units.Hours.
func Hr(x float64) quantity.View[units.Time, units.HoursUnit] { return units.Hours(x) }

// Min is units.Minutes.
func Min(x float64) quantity.View[units.Time, units.MinutesUnit] { return units.Minutes(x) }

// S is units.Seconds.
func S(x float64) quantity.View[units.Time, units.SecondsUnit] { return units.Seconds(x) }

// Ms is units.Milliseconds.
func Ms(x float64) quantity.View[units.Time, units.MillisecondsUnit] { return units.Milliseconds(x) }

// Us is units.Microseconds.
func Us(x float64) quantity.View[units.Time, units.MicrosecondsUnit] { return units.Microseconds(x) }

// Ns is units.Nanoseconds.
func Ns(x float64) quantity.View[units.Time, units.NanosecondsUnit] { return units.Nanoseconds(x) }

// Ps is units.Picoseconds.
func Ps(x float64) quantity.View[units.Time, units.PicosecondsUnit] { return units.Picoseconds(x) }

// Length.

// Fl is units.FlightLevels.
func Fl(x float64) quantity.View[units.Length, units.FlightLevelsUnit] { return units.FlightLevels(x) }

// Au is units.AstronomicalUnits.
func Au(x float64) quantity.View[units.Length, units.AstronomicalUnitsUnit] { return units.AstronomicalUnits(x) }

// DataMile is units.DataMiles.
func DataMile(x float64) quantity.View[units.Length, units.DataMilesUnit] { return units.DataMiles(x) }

// Nmi is units.NauticalMiles.
func Nmi(x float64) quantity.View[units.Length, units.NauticalMilesUnit] { return units.NauticalMiles(x) }

// Mi is units.Miles.
func Mi(x float64) quantity.View[units.Length, units.MilesUnit] { return units.Miles(x) }

// League is units.Leagues.
func League(x float64) quantity.View[units.Length, units.LeaguesUnit] { return units.Leagues(x) }

// Fathom is units.Fathoms.
func Fathom(x float64) quantity.View[units.Length, units.FathomsUnit] { return units.Fathoms(x) }

// Furlong is units.Furlongs.
func Furlong(x float64) quantity.View[units.Length, units.FurlongsUnit] { return units.Furlongs(x) }

// Yd is units.Yards.
func Yd(x float64) quantity.View[units.Length, units.YardsUnit] { return units.Yards(x) }

// Kft is units.KiloFeet.
func Kft(x float64) quantity.View[units.Length, units.KiloFeetUnit] { return units.KiloFeet(x) }

// Ft is units.Feet.
func Ft(x float64) quantity.View[units.Length, units.FeetUnit] { return units.Feet(x) }

// SurveyFt is units.USSurveyFeet.
func SurveyFt(x float64) quantity.View[units.Length, units.USSurveyFeetUnit] { return units.USSurveyFeet(x) }

// In is units.Inches.
func In(x float64) quantity.View[units.Length, units.InchesUnit] { return units.Inches(x) }

// Gm is units.Gigameters.
func Gm(x float64) quantity.View[units.Length, units.GigametersUnit] { return units.Gigameters(x) }

// MegaM is units.Megameters.
func MegaM(x float64) quantity.View[units.Length, units.MegametersUnit] { return units.Megameters(x) }

// Km is units.Kilometers.
func Km(x float64) quantity.View[units.Length, units.KilometersUnit] { return units.Kilometers(x) }

// Hm is units.Hectometers.
func Hm(x float64) quantity.View[units.Length, units.HectometersUnit] { return units.Hectometers(x) }

// Dam is units.Decameters.
func Dam(x float64) quantity.View[units.Length, units.DecametersUnit] { return units.Decameters(x) }

// M is units.Meters.
func M(x float64) quantity.View[units.Length, units.MetersUnit] { return units.Meters(x) }

// Dm is units.Decimeters.
func Dm(x float64) quantity.View[units.Length, units.DecimetersUnit] { return units.Decimeters(x) }

// Cm is units.Centimeters.
func Cm(x float64) quantity.View[units.Length, units.CentimetersUnit] { return units.Centimeters(x) }

// Mm is units.Millimeters.
func Mm(x float64) quantity.View[units.Length, units.MillimetersUnit] { return units.Millimeters(x) }

// Um is units.Micrometers.
func Um(x float64) quantity.View[units.Length, units.MicrometersUnit] { return units.Micrometers(x) }

// Nm is units.Nanometers.
func Nm(x float64) quantity.View[units.Length, units.NanometersUnit] { return units.Nanometers(x) }

// Pm is units.Picometers.
func Pm(x float64) quantity.View[units.Length, units.PicometersUnit] { return units.Picometers(x) }

// Speed.

// Mach is units.Mach.
func Mach(x float64) quantity.View[units.Speed, units.MachUnit] { return units.Mach(x) }

// Kt is units.Knots.
func Kt(x float64) quantity.View[units.Speed, units.KnotsUnit] { return units.Knots(x) }

// MeterPerHour is units.MetersPerHour.
func MeterPerHour(x float64) quantity.View[units.Speed, units.MetersPerHourUnit] { return units.MetersPerHour(x) }

// Fpm is units.FeetPerMinute.
func Fpm(x float64) quantity.View[units.Speed, units.FeetPerMinuteUnit] { return units.FeetPerMinute(x) }

// Fps is units.FeetPerSecond.
func Fps(x float64) quantity.View[units.Speed, units.FeetPerSecondUnit] { return units.FeetPerSecond(x) }

// Mph is units.MilesPerHour.
func Mph(x float64) quantity.View[units.Speed, units.MilesPerHourUnit] { return units.MilesPerHour(x) }

// Kph is units.KilometersPerHour.
func Kph(x float64) quantity.View[units.Speed, units.KilometersPerHourUnit] { return units.KilometersPerHour(x) }

// Mps is units.MetersPerSecond.
func Mps(x float64) quantity.View[units.Speed, units.MetersPerSecondUnit] { return units.MetersPerSecond(x) }

// Wf is units.WarpFactor.
func Wf(x float64) quantity.View[units.Speed, units.WarpFactorUnit] { return units.WarpFactor(x) }

// Acceleration.

// G0 is units.StandardGravity.
func G0(x float64) quantity.View[units.Acceleration, units.StandardGravityUnit] { return units.StandardGravity(x) }

// MeterPerHour2 is units.MetersPerHourSquared.
func MeterPerHour2(x float64) quantity.View[units.Acceleration, units.MetersPerHourSquaredUnit] { return units.MetersPerHourSquared(x) }

// Fpm2 is units.FeetPerMinuteSquared.
func Fpm2(x float64) quantity.View[units.Acceleration, units.FeetPerMinuteSquaredUnit] { return units.FeetPerMinuteSquared(x) }

// Fps2 is units.FeetPerSecondSquared.
func Fps2(x float64) quantity.View[units.Acceleration, units.FeetPerSecondSquaredUnit] { return units.FeetPerSecondSquared(x) }

// Mph2 is units.MilesPerHourSquared.
func Mph2(x float64) quantity.View[units.Acceleration, units.MilesPerHourSquaredUnit] { return units.MilesPerHourSquared(x) }

// Kph2 is units.KilometersPerHourSquared.
func Kph2(x float64) quantity.View[units.Acceleration, units.KilometersPerHourSquaredUnit] { return units.KilometersPerHourSquared(x) }

// Inps2 is units.InchesPerSecondSquared.
func Inps2(x float64) quantity.View[units.Acceleration, units.InchesPerSecondSquaredUnit] { return units.InchesPerSecondSquared(x) }

// Galileo is units.Gals.
func Galileo(x float64) quantity.View[units.Acceleration, units.GalsUnit] { return units.Gals(x) }

// Mps2 is units.MetersPerSecondSquared.
func Mps2(x float64) quantity.View[units.Acceleration, units.MetersPerSecondSquaredUnit] { return units.MetersPerSecondSquared(x) }

// Mass.

// Gr is units.Grains.
func Gr(x float64) quantity.View[units.Mass, units.GrainsUnit] { return units.Grains(x) }

// Lb is units.Pounds.
func Lb(x float64) quantity.View[units.Mass, units.PoundsUnit] { return units.Pounds(x) }

// Oz is units.Ounces.
func Oz(x float64) quantity.View[units.Mass, units.OuncesUnit] { return units.Ounces(x) }

// St is units.Stones.
func St(x float64) quantity.View[units.Mass, units.StonesUnit] { return units.Stones(x) }

// TonUs is units.ShortTons.
func TonUs(x float64) quantity.View[units.Mass, units.ShortTonsUnit] { return units.ShortTons(x) }

// TonUk is units.LongTons.
func TonUk(x float64) quantity.View[units.Mass, units.LongTonsUnit] { return units.LongTons(x) }

// T is units.Tonnes.
func T(x float64) quantity.View[units.Mass, units.TonnesUnit] { return units.Tonnes(x) }

// Gg is units.Gigagrams.
func Gg(x float64) quantity.View[units.Mass, units.GigagramsUnit] { return units.Gigagrams(x) }

// MegaG is units.Megagrams.
func MegaG(x float64) quantity.View[units.Mass, units.MegagramsUnit] { return units.Megagrams(x) }

// Kg is units.Kilograms.
func Kg(x float64) quantity.View[units.Mass, units.KilogramsUnit] { return units.Kilograms(x) }

// Hg is units.Hectograms.
func Hg(x float64) quantity.View[units.Mass, units.HectogramsUnit] { return units.Hectograms(x) }

// Dag is units.Decagrams.
func Dag(x float64) quantity.View[units.Mass, units.DecagramsUnit] { return units.Decagrams(x) }

// G is units.Grams.
func G(x float64) quantity.View[units.Mass, units.GramsUnit] { return units.Grams(x) }

// Dg is units.Decigrams.
func Dg(x float64) quantity.View[units.Mass, units.DecigramsUnit] { return units.Decigrams(x) }

// Cg is units.Centigrams.
func Cg(x float64) quantity.View[units.Mass, units.CentigramsUnit] { return units.Centigrams(x) }

// Mg is units.Milligrams.
func Mg(x float64) quantity.View[units.Mass, units.MilligramsUnit] { return units.Milligrams(x) }

// Ug is units.Micrograms.
func Ug(x float64) quantity.View[units.Mass, units.MicrogramsUnit] { return units.Micrograms(x) }

// Ng is units.Nanograms.
func Ng(x float64) quantity.View[units.Mass, units.NanogramsUnit] { return units.Nanograms(x) }

// Pg is units.Picograms.
func Pg(x float64) quantity.View[units.Mass, units.PicogramsUnit] { return units.Picograms(x) }

// Force.

// N is units.Newtons.
func N(x float64) quantity.View[units.Force, units.NewtonsUnit] { return units.Newtons(x) }

// Dyn is units.Dynes.
func Dyn(x float64) quantity.View[units.Force, units.DynesUnit] { return units.Dynes(x) }

// Kgf is units.KilogramsForce.
func Kgf(x float64) quantity.View[units.Force, units.KilogramsForceUnit] { return units.KilogramsForce(x) }

// Lbf is units.PoundsForce.
func Lbf(x float64) quantity.View[units.Force, units.PoundsForceUnit] { return units.PoundsForce(x) }

// Area.

// Ha is units.Hectares.
func Ha(x float64) quantity.View[units.Area, units.HectaresUnit] { return units.Hectares(x) }

// Ft2 is units.SquareFeet.
func Ft2(x float64) quantity.View[units.Area, units.SquareFeetUnit] { return units.SquareFeet(x) }

// In2 is units.SquareInches.
func In2(x float64) quantity.View[units.Area, units.SquareInchesUnit] { return units.SquareInches(x) }

// Gm2 is units.SquareGigameters.
func Gm2(x float64) quantity.View[units.Area, units.SquareGigametersUnit] { return units.SquareGigameters(x) }

// MegaM2 is units.SquareMegameters.
func MegaM2(x float64) quantity.View[units.Area, units.SquareMegametersUnit] { return units.SquareMegameters(x) }

// Km2 is units.SquareKilometers.
func Km2(x float64) quantity.View[units.Area, units.SquareKilometersUnit] { return units.SquareKilometers(x) }

// Hm2 is units.SquareHectometers.
func Hm2(x float64) quantity.View[units.Area, units.SquareHectometersUnit] { return units.SquareHectometers(x) }

// Dam2 is units.SquareDecameters.
func Dam2(x float64) quantity.View[units.Area, units.SquareDecametersUnit] { return units.SquareDecameters(x) }

// M2 is units.SquareMeters.
func M2(x float64) quantity.View[units.Area, units.SquareMetersUnit] { return units.SquareMeters(x) }

// Dm2 is units.SquareDecimeters.
func Dm2(x float64) quantity.View[units.Area, units.SquareDecimetersUnit] { return units.SquareDecimeters(x) }

// Cm2 is units.SquareCentimeters.
func Cm2(x float64) quantity.View[units.Area, units.SquareCentimetersUnit] { return units.SquareCentimeters(x) }

// Mm2 is units.SquareMillimeters.
func Mm2(x float64) quantity.View[units.Area, units.SquareMillimetersUnit] { return units.SquareMillimeters(x) }

// Um2 is units.SquareMicrometers.
func Um2(x float64) quantity.View[units.Area, units.SquareMicrometersUnit] { return units.SquareMicrometers(x) }

// Nm2 is units.SquareNanometers.
func Nm2(x float64) quantity.View[units.Area, units.SquareNanometersUnit] { return units.SquareNanometers(x) }

// Pm2 is units.SquarePicometers.
func Pm2(x float64) quantity.View[units.Area, units.SquarePicometersUnit] { return units.SquarePicometers(x) }

// Volume.

// Gal is units.Gallons.
func Gal(x float64) quantity.View[units.Volume, units.GallonsUnit] { return units.Gallons(x) }

// Impgal is units.ImperialGallons.
func Impgal(x float64) quantity.View[units.Volume, units.ImperialGallonsUnit] { return units.ImperialGallons(x) }

// Quart is units.Quarts.
func Quart(x float64) quantity.View[units.Volume, units.QuartsUnit] { return units.Quarts(x) }

// Pint is units.Pints.
func Pint(x float64) quantity.View[units.Volume, units.PintsUnit] { return units.Pints(x) }

// Floz is units.FluidOunces.
func Floz(x float64) quantity.View[units.Volume, units.FluidOuncesUnit] { return units.FluidOunces(x) }

// Fifth is units.Fifths.
func Fifth(x float64) quantity.View[units.Volume, units.FifthsUnit] { return units.Fifths(x) }

// M3 is units.CubicMeters.
func M3(x float64) quantity.View[units.Volume, units.CubicMetersUnit] { return units.CubicMeters(x) }

// Cm3 is units.CubicCentimeters.
func Cm3(x float64) quantity.View[units.Volume, units.CubicCentimetersUnit] { return units.CubicCentimeters(x) }

// Yd3 is units.CubicYards.
func Yd3(x float64) quantity.View[units.Volume, units.CubicYardsUnit] { return units.CubicYards(x) }

// In3 is units.CubicInches.
func In3(x float64) quantity.View[units.Volume, units.CubicInchesUnit] { return units.CubicInches(x) }

// GL is units.Gigaliters.
func GL(x float64) quantity.View[units.Volume, units.GigalitersUnit] { return units.Gigaliters(x) }

// MegaL is units.Megaliters.
func MegaL(x float64) quantity.View[units.Volume, units.MegalitersUnit] { return units.Megaliters(x) }

// KL is units.Kiloliters.
func KL(x float64) quantity.View[units.Volume, units.KilolitersUnit] { return units.Kiloliters(x) }

// HL is units.Hectoliters.
func HL(x float64) quantity.View[units.Volume, units.HectolitersUnit] { return units.Hectoliters(x) }

// DaL is units.Decaliters.
func DaL(x float64) quantity.View[units.Volume, units.DecalitersUnit] { return units.Decaliters(x) }

// L is units.Liters.
func L(x float64) quantity.View[units.Volume, units.LitersUnit] { return units.Liters(x) }

// DL is units.Deciliters.
func DL(x float64) quantity.View[units.Volume, units.DecilitersUnit] { return units.Deciliters(x) }

// CL is units.Centiliters.
func CL(x float64) quantity.View[units.Volume, units.CentilitersUnit] { return units.Centiliters(x) }

// ML is units.Milliliters.
func ML(x float64) quantity.View[units.Volume, units.MillilitersUnit] { return units.Milliliters(x) }

// UL is units.Microliters.
func UL(x float64) quantity.View[units.Volume, units.MicrolitersUnit] { return units.Microliters(x) }

// NL is units.Nanoliters.
func NL(x float64) quantity.View[units.Volume, units.NanolitersUnit] { return units.Nanoliters(x) }

// PL is units.Picoliters.
func PL(x float64) quantity.View[units.Volume, units.PicolitersUnit] { return units.Picoliters(x) }

// Density.

// KgM3 is units.KilogramsPerCubicMeter.
func KgM3(x float64) quantity.View[units.Density, units.KilogramsPerCubicMeterUnit] { return units.KilogramsPerCubicMeter(x) }

// KgL is units.KilogramsPerLiter.
func KgL(x float64) quantity.View[units.Density, units.KilogramsPerLiterUnit] { return units.KilogramsPerLiter(x) }

// GCm3 is units.GramsPerCubicCentimeter.
func GCm3(x float64) quantity.View[units.Density, units.GramsPerCubicCentimeterUnit] { return units.GramsPerCubicCentimeter(x) }

// GML is units.GramsPerMilliliter.
func GML(x float64) quantity.View[units.Density, units.GramsPerMilliliterUnit] { return units.GramsPerMilliliter(x) }

// TM3 is units.TonnesPerCubicMeter.
func TM3(x float64) quantity.View[units.Density, units.TonnesPerCubicMeterUnit] { return units.TonnesPerCubicMeter(x) }

// Pressure.

// Atm is units.Atmospheres.
func Atm(x float64) quantity.View[units.Pressure, units.AtmospheresUnit] { return units.Atmospheres(x) }

// At is units.TechnicalAtmospheres.
func At(x float64) quantity.View[units.Pressure, units.TechnicalAtmospheresUnit] { return units.TechnicalAtmospheres(x) }

// Bar is units.Bars.
func Bar(x float64) quantity.View[units.Pressure, units.BarsUnit] { return units.Bars(x) }

// Psi is units.PoundsPerSquareInch.
func Psi(x float64) quantity.View[units.Pressure, units.PoundsPerSquareInchUnit] { return units.PoundsPerSquareInch(x) }

// Torr is units.Torr.
func Torr(x float64) quantity.View[units.Pressure, units.TorrUnit] { return units.Torr(x) }

// MmHg is units.MillimetersMercury.
func MmHg(x float64) quantity.View[units.Pressure, units.MillimetersMercuryUnit] { return units.MillimetersMercury(x) }

// GPa is units.GigaPascals.
func GPa(x float64) quantity.View[units.Pressure, units.GigaPascalsUnit] { return units.GigaPascals(x) }

// MegaPa is units.MegaPascals.
func MegaPa(x float64) quantity.View[units.Pressure, units.MegaPascalsUnit] { return units.MegaPascals(x) }

// KPa is units.KiloPascals.
func KPa(x float64) quantity.View[units.Pressure, units.KiloPascalsUnit] { return units.KiloPascals(x) }

// HPa is units.HectoPascals.
func HPa(x float64) quantity.View[units.Pressure, units.HectoPascalsUnit] { return units.HectoPascals(x) }

// DaPa is units.DecaPascals.
func DaPa(x float64) quantity.View[units.Pressure, units.DecaPascalsUnit] { return units.DecaPascals(x) }

// Pa is units.Pascals.
func Pa(x float64) quantity.View[units.Pressure, units.PascalsUnit] { return units.Pascals(x) }

// DPa is units.DeciPascals.
func DPa(x float64) quantity.View[units.Pressure, units.DeciPascalsUnit] { return units.DeciPascals(x) }

// CPa is units.CentiPascals.
func CPa(x float64) quantity.View[units.Pressure, units.CentiPascalsUnit] { return units.CentiPascals(x) }

// MPa is units.MilliPascals.
func MPa(x float64) quantity.View[units.Pressure, units.MilliPascalsUnit] { return units.MilliPascals(x) }

// UPa is units.MicroPascals.
func UPa(x float64) quantity.View[units.Pressure, units.MicroPascalsUnit] { return units.MicroPascals(x) }

// NPa is units.NanoPascals.
func NPa(x float64) quantity.View[units.Pressure, units.NanoPascalsUnit] { return units.NanoPascals(x) }

// PPa is units.PicoPascals.
func PPa(x float64) quantity.View[units.Pressure, units.PicoPascalsUnit] { return units.PicoPascals(x) }

// Power.

// Hp is units.HorsePower.
func Hp(x float64) quantity.View[units.Power, units.HorsePowerUnit] { return units.HorsePower(x) }

// DBW is units.DecibelWatts.
func DBW(x float64) quantity.View[units.Power, units.DecibelWattsUnit] { return units.DecibelWatts(x) }

// DBm is units.DecibelMilliwatts.
func DBm(x float64) quantity.View[units.Power, units.DecibelMilliwattsUnit] { return units.DecibelMilliwatts(x) }

// GW is units.GigaWatts.
func GW(x float64) quantity.View[units.Power, units.GigaWattsUnit] { return units.GigaWatts(x) }

// MegaW is units.MegaWatts.
func MegaW(x float64) quantity.View[units.Power, units.MegaWattsUnit] { return units.MegaWatts(x) }

// KW is units.KiloWatts.
func KW(x float64) quantity.View[units.Power, units.KiloWattsUnit] { return units.KiloWatts(x) }

// HW is units.HectoWatts.
func HW(x float64) quantity.View[units.Power, units.HectoWattsUnit] { return units.HectoWatts(x) }

// DaW is units.DecaWatts.
func DaW(x float64) quantity.View[units.Power, units.DecaWattsUnit] { return units.DecaWatts(x) }

// W is units.Watts.
func W(x float64) quantity.View[units.Power, units.WattsUnit] { return units.Watts(x) }

// DW is units.DeciWatts.
func DW(x float64) quantity.View[units.Power, units.DeciWattsUnit] { return units.DeciWatts(x) }

// CW is units.CentiWatts.
func CW(x float64) quantity.View[units.Power, units.CentiWattsUnit] { return units.CentiWatts(x) }

// MW is units.MilliWatts.
func MW(x float64) quantity.View[units.Power, units.MilliWattsUnit] { return units.MilliWatts(x) }

// UW is units.MicroWatts.
func UW(x float64) quantity.View[units.Power, units.MicroWattsUnit] { return units.MicroWatts(x) }

// NW is units.NanoWatts.
func NW(x float64) quantity.View[units.Power, units.NanoWattsUnit] { return units.NanoWatts(x) }

// PW is units.PicoWatts.
func PW(x float64) quantity.View[units.Power, units.PicoWattsUnit] { return units.PicoWatts(x) }

// Temperature.

// DegC is units.Celsius.
func DegC(x float64) quantity.View[units.Temperature, units.CelsiusUnit] { return units.Celsius(x) }

// DegK is units.Kelvin.
func DegK(x float64) quantity.View[units.Temperature, units.KelvinUnit] { return units.Kelvin(x) }

// DegF is units.Fahrenheit.
func DegF(x float64) quantity.View[units.Temperature, units.FahrenheitUnit] { return units.Fahrenheit(x) }

// DegR is units.Rankine.
func DegR(x float64) quantity.View[units.Temperature, units.RankineUnit] { return units.Rankine(x) }

// Angle.

// Deg is units.Degrees.
func Deg(x float64) quantity.View[units.Angle, units.DegreesUnit] { return units.Degrees(x) }

// Rad is units.Radians.
func Rad(x float64) quantity.View[units.Angle, units.RadiansUnit] { return units.Radians(x) }

// Mil is units.Milliradians.
func Mil(x float64) quantity.View[units.Angle, units.MilliradiansUnit] { return units.Milliradians(x) }

// Bams is units.BAMS.
func Bams(x float64) quantity.View[units.Angle, units.BAMSUnit] { return units.BAMS(x) }

// Rev is units.Revolutions.
func Rev(x float64) quantity.View[units.Angle, units.RevolutionsUnit] { return units.Revolutions(x) }

// Arcmin is units.ArcMinutes.
func Arcmin(x float64) quantity.View[units.Angle, units.ArcMinutesUnit] { return units.ArcMinutes(x) }

// Arcsec is units.ArcSeconds.
func Arcsec(x float64) quantity.View[units.Angle, units.ArcSecondsUnit] { return units.ArcSeconds(x) }

// AngularSpeed.

// DegS is units.DegreesPerSecond.
func DegS(x float64) quantity.View[units.AngularSpeed, units.DegreesPerSecondUnit] { return units.DegreesPerSecond(x) }

// DegM is units.DegreesPerMinute.
func DegM(x float64) quantity.View[units.AngularSpeed, units.DegreesPerMinuteUnit] { return units.DegreesPerMinute(x) }

// DegHr is units.DegreesPerHour.
func DegHr(x float64) quantity.View[units.AngularSpeed, units.DegreesPerHourUnit] { return units.DegreesPerHour(x) }

// RadS is units.RadiansPerSecond.
func RadS(x float64) quantity.View[units.AngularSpeed, units.RadiansPerSecondUnit] { return units.RadiansPerSecond(x) }

// MilS is units.MilliradiansPerSecond.
func MilS(x float64) quantity.View[units.AngularSpeed, units.MilliradiansPerSecondUnit] { return units.MilliradiansPerSecond(x) }

// BamsS is units.BAMSPerSecond.
func BamsS(x float64) quantity.View[units.AngularSpeed, units.BAMSPerSecondUnit] { return units.BAMSPerSecond(x) }

// Rps is units.RevolutionsPerSecond.
func Rps(x float64) quantity.View[units.AngularSpeed, units.RevolutionsPerSecondUnit] { return units.RevolutionsPerSecond(x) }

// Rpm is units.RevolutionsPerMinute.
func Rpm(x float64) quantity.View[units.AngularSpeed, units.RevolutionsPerMinuteUnit] { return units.RevolutionsPerMinute(x) }

// Rph is units.RevolutionsPerHour.
func Rph(x float64) quantity.View[units.AngularSpeed, units.RevolutionsPerHourUnit] { return units.RevolutionsPerHour(x) }

// AngularAcceleration.

// DegS2 is units.DegreesPerSecondSquared.
func DegS2(x float64) quantity.View[units.AngularAcceleration, units.DegreesPerSecondSquaredUnit] { return units.DegreesPerSecondSquared(x) }

// DegM2 is units.DegreesPerMinuteSquared.
func DegM2(x float64) quantity.View[units.AngularAcceleration, units.DegreesPerMinuteSquaredUnit] { return units.DegreesPerMinuteSquared(x) }

// DegHr2 is units.DegreesPerHourSquared.
func DegHr2(x float64) quantity.View[units.AngularAcceleration, units.DegreesPerHourSquaredUnit] { return units.DegreesPerHourSquared(x) }

// RadS2 is units.RadiansPerSecondSquared.
func RadS2(x float64) quantity.View[units.AngularAcceleration, units.RadiansPerSecondSquaredUnit] { return units.RadiansPerSecondSquared(x) }

// MilS2 is units.MilliradiansPerSecondSquared.
func MilS2(x float64) quantity.View[units.AngularAcceleration, units.MilliradiansPerSecondSquaredUnit] { return units.MilliradiansPerSecondSquared(x) }

// BamsS2 is units.BAMSPerSecondSquared.
func BamsS2(x float64) quantity.View[units.AngularAcceleration, units.BAMSPerSecondSquaredUnit] { return units.BAMSPerSecondSquared(x) }

// Rps2 is units.RevolutionsPerSecondSquared.
func Rps2(x float64) quantity.View[units.AngularAcceleration, units.RevolutionsPerSecondSquaredUnit] { return units.RevolutionsPerSecondSquared(x) }

// Rpm2 is units.RevolutionsPerMinuteSquared.
func Rpm2(x float64) quantity.View[units.AngularAcceleration, units.RevolutionsPerMinuteSquaredUnit] { return units.RevolutionsPerMinuteSquared(x) }

// Rph2 is units.RevolutionsPerHourSquared.
func Rph2(x float64) quantity.View[units.AngularAcceleration, units.RevolutionsPerHourSquaredUnit] { return units.RevolutionsPerHourSquared(x) }
