package units_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvunits/units"
)

// TestCatalog_ToCanonical checks one reading per named unit against its
// canonical value. Inputs are rounded published conversions, hence the deltas.
func TestCatalog_ToCanonical(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		got   float64
		want  float64
		delta float64
	}{
		// Time (s)
		{"leap years", float64(units.LeapYears(0.3162315321).Base()), 1e7, 0.01},
		{"non-leap years", float64(units.NonLeapYears(0.3170979198).Base()), 1e7, 0.01},
		{"years", float64(units.Years(0.3168808781402895).Base()), 1e7, 0.01},
		{"weeks", float64(units.Weeks(0.16534392).Base()), 1e5, 0.01},
		{"days", float64(units.Days(0.1157407).Base()), 1e4, 0.01},
		{"hours", float64(units.Hours(0.000277778).Base()), 1, 0.01},
		{"minutes", float64(units.Minutes(0.0166667).Base()), 1, 0.01},
		{"picoseconds", float64(units.Picoseconds(1e12).Base()), 1, 1e-9},

		// Length (m)
		{"astronomical units", float64(units.AstronomicalUnits(0.66845871222684).Base()), 1e11, 0.01},
		{"data miles", float64(units.DataMiles(0.546806649).Base()), 1000, 0.01},
		{"nautical miles", float64(units.NauticalMiles(0.539957).Base()), 1000, 0.01},
		{"miles", float64(units.Miles(0.621371).Base()), 1000, 0.01},
		{"leagues", float64(units.Leagues(0.207123727).Base()), 1000, 0.01},
		{"fathoms", float64(units.Fathoms(0.546807).Base()), 1, 0.01},
		{"furlongs", float64(units.Furlongs(0.497097).Base()), 100, 0.01},
		{"yards", float64(units.Yards(1.09361).Base()), 1, 0.01},
		{"kilofeet", float64(units.KiloFeet(0.32808399).Base()), 100, 0.01},
		{"feet", float64(units.Feet(3.28084).Base()), 1, 0.01},
		{"US survey feet", float64(units.USSurveyFeet(3.2808333333).Base()), 1, 0.01},
		{"inches", float64(units.Inches(39.3701).Base()), 1, 0.01},
		{"flight levels", float64(units.FlightLevels(350).Base()), 10668, 1e-9},

		// Speed (m/s)
		{"mach", float64(units.Mach(0.293867).Base()), 100, 0.01},
		{"knots", float64(units.Knots(1.94384).Base()), 1, 0.01},
		{"meters per hour", float64(units.MetersPerHour(3600).Base()), 1, 1e-12},
		{"feet per minute", float64(units.FeetPerMinute(196.85).Base()), 1, 0.01},
		{"feet per second", float64(units.FeetPerSecond(3.28084).Base()), 1, 0.01},
		{"miles per hour", float64(units.MilesPerHour(2.236936292054402).Base()), 1, 1e-12},
		{"kilometers per hour", float64(units.KilometersPerHour(3.6).Base()), 1, 1e-12},

		// Acceleration (m/s²)
		{"standard gravity", float64(units.StandardGravity(10.19716213).Base()), 100, 0.01},
		{"meters per hour squared", float64(units.MetersPerHourSquared(1296000000).Base()), 100, 0.01},
		{"feet per minute squared", float64(units.FeetPerMinuteSquared(1181102.36).Base()), 100, 0.01},
		{"feet per second squared", float64(units.FeetPerSecondSquared(328.08399).Base()), 100, 0.01},
		{"miles per hour squared", float64(units.MilesPerHourSquared(805297.065).Base()), 100, 0.01},
		{"kilometers per hour squared", float64(units.KilometersPerHourSquared(1296000).Base()), 100, 0.01},
		{"inches per second squared", float64(units.InchesPerSecondSquared(3937.00787).Base()), 100, 0.01},
		{"gals", float64(units.Gals(10000).Base()), 100, 0.01},

		// Mass (g)
		{"grains", float64(units.Grains(15.4324).Base()), 1, 0.01},
		{"pounds", float64(units.Pounds(0.220462).Base()), 100, 0.01},
		{"ounces", float64(units.Ounces(0.35274).Base()), 10, 0.01},
		{"stones", float64(units.Stones(0.157473).Base()), 1000, 0.01},
		{"short tons", float64(units.ShortTons(0.11023113).Base()), 100000, 0.01},
		{"long tons", float64(units.LongTons(0.098420653).Base()), 100000, 0.01},
		{"tonnes", float64(units.Tonnes(1e-6).Base()), 1, 1e-9},

		// Force (N)
		{"dynes", float64(units.Dynes(100000).Base()), 1, 0.01},
		{"kilograms force", float64(units.KilogramsForce(0.101972).Base()), 1, 0.01},
		{"pounds force", float64(units.PoundsForce(0.224809).Base()), 1, 0.01},

		// Area (m²)
		{"hectares", float64(units.Hectares(0.0001).Base()), 1, 0.01},
		{"square feet", float64(units.SquareFeet(10.7639).Base()), 1, 0.01},
		{"square inches", float64(units.SquareInches(1550).Base()), 1, 0.01},

		// Volume (L)
		{"gallons", float64(units.Gallons(0.264172).Base()), 1, 0.01},
		{"imperial gallons", float64(units.ImperialGallons(0.219969).Base()), 1, 0.01},
		{"quarts", float64(units.Quarts(1.05669).Base()), 1, 0.01},
		{"pints", float64(units.Pints(2.11338).Base()), 1, 0.01},
		{"fluid ounces", float64(units.FluidOunces(33.814).Base()), 1, 0.01},
		{"fifths", float64(units.Fifths(1.3208602562078).Base()), 1, 0.01},
		{"cubic meters", float64(units.CubicMeters(0.001).Base()), 1, 1e-12},
		{"cubic centimeters", float64(units.CubicCentimeters(1000).Base()), 1, 1e-12},
		{"cubic yards", float64(units.CubicYards(0.130795).Base()), 100, 0.01},
		{"cubic inches", float64(units.CubicInches(61.0237).Base()), 1, 0.01},

		// Pressure (Pa)
		{"atmospheres", float64(units.Atmospheres(0.98692327).Base()), 100000, 0.01},
		{"technical atmospheres", float64(units.TechnicalAtmospheres(0.1019716213).Base()), 10000, 0.01},
		{"bars", float64(units.Bars(0.001).Base()), 100, 1e-9},
		{"psi", float64(units.PoundsPerSquareInch(0.0145038).Base()), 100, 0.01},
		{"torr", float64(units.Torr(0.750062).Base()), 100, 0.01},
		{"mmHg", float64(units.MillimetersMercury(0.750062).Base()), 100, 0.01},

		// Power (W)
		{"horsepower", float64(units.HorsePower(0.134102).Base()), 100, 0.01},

		// Angle (deg)
		{"radians", float64(units.Radians(0.174533).Base()), 10, 0.01},
		{"revolutions", float64(units.Revolutions(0.277778).Base()), 100, 0.01},
		{"arc minutes", float64(units.ArcMinutes(60).Base()), 1, 1e-12},
		{"arc seconds", float64(units.ArcSeconds(3600).Base()), 1, 1e-12},
		{"milliradians", float64(units.Milliradians(6400).Base()), 360, 1e-9},
		{"bams", float64(units.BAMS(2).Base()), 360, 1e-12},

		// AngularSpeed (deg/s)
		{"degrees per minute", float64(units.DegreesPerMinute(60).Base()), 1, 1e-12},
		{"degrees per hour", float64(units.DegreesPerHour(3600).Base()), 1, 1e-12},
		{"radians per second", float64(units.RadiansPerSecond(0.174533).Base()), 10, 0.01},
		{"revolutions per second", float64(units.RevolutionsPerSecond(0.277778).Base()), 100, 0.01},
		{"revolutions per minute", float64(units.RevolutionsPerMinute(0.166667).Base()), 1, 0.01},
		{"revolutions per hour", float64(units.RevolutionsPerHour(10).Base()), 1, 1e-12},

		// AngularAcceleration (deg/s²)
		{"degrees per minute squared", float64(units.DegreesPerMinuteSquared(3600).Base()), 1, 1e-12},
		{"degrees per hour squared", float64(units.DegreesPerHourSquared(12960000).Base()), 1, 1e-9},
		{"radians per second squared", float64(units.RadiansPerSecondSquared(0.1745329252).Base()), 10, 0.01},
		{"revolutions per second squared", float64(units.RevolutionsPerSecondSquared(0.277777777778).Base()), 100, 0.01},
		{"revolutions per minute squared", float64(units.RevolutionsPerMinuteSquared(10).Base()), 1, 1e-12},
		{"revolutions per hour squared", float64(units.RevolutionsPerHourSquared(36000).Base()), 1, 1e-9},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, tc.got, tc.delta, tc.name)
	}
}

// TestCatalog_MetricPrefixes checks each prefixed family reads one canonical
// unit back through its prefixed views.
func TestCatalog_MetricPrefixes(t *testing.T) {
	t.Parallel()

	m := units.Meters(1).Base()
	assert.InDelta(t, 1e-9, units.GigametersOf(m).Value(), 1e-24)
	assert.InDelta(t, 1e-3, units.KilometersOf(m).Value(), 1e-18)
	assert.InDelta(t, 10.0, units.DecimetersOf(m).Value(), 1e-12)
	assert.InDelta(t, 1e12, units.PicometersOf(m).Value(), 1e-3)

	g := units.Grams(1).Base()
	assert.InDelta(t, 1e-6, units.MegagramsOf(g).Value(), 1e-21)
	assert.InDelta(t, 1000.0, units.MilligramsOf(g).Value(), 1e-9)

	a := units.SquareMeters(1).Base()
	assert.InDelta(t, 1e-6, units.SquareKilometersOf(a).Value(), 1e-21)
	assert.InDelta(t, 1e4, units.SquareCentimetersOf(a).Value(), 1e-9)
	assert.InDelta(t, 1e24, units.SquarePicometersOf(a).Value(), 1e9)

	v := units.Liters(1).Base()
	assert.InDelta(t, 1000.0, units.MillilitersOf(v).Value(), 1e-9)
	assert.InDelta(t, 1e-3, units.KilolitersOf(v).Value(), 1e-18)

	p := units.Pascals(1).Base()
	assert.InDelta(t, 0.01, units.HectoPascalsOf(p).Value(), 1e-15)
	assert.InDelta(t, 1e-9, units.GigaPascalsOf(p).Value(), 1e-24)

	w := units.Watts(1).Base()
	assert.InDelta(t, 1e-3, units.KiloWattsOf(w).Value(), 1e-18)
	assert.InDelta(t, 1e6, units.MicroWattsOf(w).Value(), 1e-6)

	assert.InDelta(t, 1e-3, float64(units.Milliseconds(1).Base()), 1e-18)
	assert.InDelta(t, 1e-6, float64(units.Microseconds(1).Base()), 1e-21)
	assert.InDelta(t, 1e-9, float64(units.Nanoseconds(1).Base()), 1e-24)
}

// TestCatalog_ExactIdentities covers the conversions that are exact by definition.
func TestCatalog_ExactIdentities(t *testing.T) {
	t.Parallel()

	assert.Equal(t, units.Days(365.25).Base(), units.Years(1).Base())
	assert.InDelta(t, float64(units.Years(1).Base()), float64(units.Months(12).Base()), 1e-6)
	assert.InDelta(t, float64(units.Days(30.4375).Base()), float64(units.Months(1).Base()), 1e-9)
	assert.InDelta(t, float64(units.NonLeapYears(1).Base()), float64(units.NonLeapYearMonths(12).Base()), 1e-6)
	assert.Equal(t, units.Length(149597870700), units.AstronomicalUnits(1).Base())
	assert.Equal(t, units.Length(1852), units.NauticalMiles(1).Base())
	assert.InDelta(t, 1.0, units.KiloFeetOf(units.Feet(1000).Base()).Value(), 1e-12)
	assert.InDelta(t, 1609.344, float64(units.Feet(5280).Base()), 1e-11)
	assert.InDelta(t, 1.0, units.MilesOf(units.Meters(1609.344).Base()).Value(), 1e-12)
	assert.Equal(t, units.Speed(1852.0/3600.0), units.Knots(1).Base())
	assert.Equal(t, units.Speed(340.3), units.Mach(1).Base())
	assert.InDelta(t, 6400.0, units.MilliradiansOf(units.Radians(2*math.Pi).Base()).Value(), 1e-9)
	assert.InDelta(t, 360.0, float64(units.Radians(2*math.Pi).Base()), 1e-12)
	assert.Equal(t, units.Mass(1e6), units.Tonnes(1).Base())
	assert.Equal(t, units.Density(1000), units.KilogramsPerLiter(1).Base())
	assert.Equal(t, units.GramsPerCubicCentimeter(1).Base(), units.GramsPerMilliliter(1).Base())
	assert.Equal(t, units.TonnesPerCubicMeter(1).Base(), units.KilogramsPerLiter(1).Base())
	assert.Equal(t, units.Atmospheres(1).Base(), units.Torr(760).Base())
	assert.InDelta(t, 101325.0/760, float64(units.Torr(1).Base()), 1e-12)
	assert.Equal(t, units.Time(2628000), units.NonLeapYearMonths(1).Base())
}

// TestCatalog_Symbols spot-checks display tags and the family Stringers.
func TestCatalog_Symbols(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5deg", units.Degrees(5).String())
	assert.Equal(t, "5deg", units.Angle(5).String())
	assert.Equal(t, "ft", units.Feet(1).Symbol())
	assert.Equal(t, "g", units.Grams(1).Symbol())
	assert.Equal(t, "dBm", units.DecibelMilliwatts(1).Symbol())
	assert.Equal(t, "survey_ft", units.USSurveyFeet(1).Symbol())
	assert.Equal(t, "Gal", units.Gals(1).Symbol())
	assert.Equal(t, "gal", units.Gallons(1).Symbol())
	assert.Equal(t, "3mps", units.Speed(3).String())
	assert.Equal(t, "9.80665N", units.Force(9.80665).String())
	assert.Equal(t, "-40degC", units.Temperature(-40).String())
	assert.Equal(t, "1.5L", units.Volume(1.5).String())
	assert.Equal(t, "2kg_m3", units.Density(2).String())
	assert.Equal(t, "0.5deg_s2", units.AngularAcceleration(0.5).String())
}

// TestTemperature_Affine covers the offset laws in both directions.
func TestTemperature_Affine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, units.Temperature(0), units.Fahrenheit(32).Base())
	assert.Equal(t, units.Temperature(0), units.Kelvin(273.15).Base())
	assert.Equal(t, units.Temperature(0), units.Rankine(491.67).Base())
	assert.Equal(t, units.Temperature(100), units.Fahrenheit(212).Base())
	assert.Equal(t, units.Temperature(-40), units.Fahrenheit(-40).Base())

	assert.Equal(t, 212.0, units.FahrenheitOf(units.Celsius(100).Base()).Value())
	assert.Equal(t, 273.15, units.KelvinOf(units.Celsius(0).Base()).Value())
	assert.Equal(t, 491.67, units.RankineOf(units.Celsius(0).Base()).Value())

	assert.InDelta(t, 20.0, float64(units.Kelvin(293.15).Base()), 1e-9)
	assert.InDelta(t, 20.0, float64(units.Fahrenheit(68).Base()), 1e-9)
	assert.InDelta(t, 20.0, float64(units.Rankine(527.67).Base()), 1e-9)
}

// TestPower_Decibels covers the logarithmic laws, including zero watts.
func TestPower_Decibels(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, units.GigaWattsOf(units.DecibelMilliwatts(120).Base()).Value(), 1e-9)
	assert.InDelta(t, 100.0, units.KiloWattsOf(units.DecibelMilliwatts(80).Base()).Value(), 1e-9)
	assert.InDelta(t, 10.0, float64(units.DecibelWatts(10).Base()), 1e-12)
	assert.InDelta(t, 1e6, float64(units.DecibelWatts(60).Base()), 1e-6)
	assert.InDelta(t, 1.5, float64(units.DecibelWatts(1.761).Base()), 0.01)
	assert.InDelta(t, 1.5, float64(units.DecibelMilliwatts(31.7609125906).Base()), 0.01)
	assert.InDelta(t, 30.0, units.DecibelMilliwattsOf(units.Watts(1).Base()).Value(), 1e-12)

	zero := units.Watts(0).Base()
	assert.True(t, math.IsInf(units.DecibelWattsOf(zero).Value(), -1))
	assert.True(t, math.IsInf(units.DecibelMilliwattsOf(zero).Value(), -1))
}

// TestSpeed_WarpFactor covers the power law anchored at the speed of light.
func TestSpeed_WarpFactor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, units.SpeedOfLight, units.WarpFactor(1).Base())
	assert.Equal(t, 1.0, units.WarpFactorOf(units.SpeedOfLight).Value())
	assert.InDelta(t, 9.0, units.WarpFactorOf(units.WarpFactor(9).Base()).Value(), 1e-12)
	assert.Greater(t, float64(units.WarpFactor(2).Base()), float64(units.SpeedOfLight))
	assert.Less(t, float64(units.WarpFactor(0.5).Base()), float64(units.SpeedOfLight))

	// w^(3/5): warp 2 is about 1.5157 c.
	assert.InDelta(t, 454400395.1054727, float64(units.WarpFactor(2).Base()), 1e-3)
	assert.InDelta(t, 2.0, units.WarpFactorOf(units.Speed(454400395.1054727)).Value(), 1e-12)
}

// TestView_RoundTripConvergence verifies Make then Value returns the raw input.
func TestView_RoundTripConvergence(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{-1234.5, -1, 0, 1e-9, 0.3048, 1, 42, 1e9} {
		tol := 1e-12 * math.Max(1, math.Abs(x))
		assert.InDelta(t, x, units.Feet(x).Value(), tol, "ft %v", x)
		assert.InDelta(t, x, units.NauticalMiles(x).Value(), tol, "nmi %v", x)
		assert.InDelta(t, x, units.Fahrenheit(x).Value(), tol, "degF %v", x)
		assert.InDelta(t, x, units.Kelvin(x).Value(), tol, "degK %v", x)
		assert.InDelta(t, x, units.Radians(x).Value(), tol, "rad %v", x)
	}
}

// TestView_AdditiveIdentity verifies adding a zero of any unit changes nothing.
func TestView_AdditiveIdentity(t *testing.T) {
	t.Parallel()

	d := units.Feet(123.25)
	assert.Equal(t, d, d.Add(units.Meters(0).Base()))
	assert.Equal(t, d, d.Sub(units.NauticalMiles(0).Base()))
	assert.Equal(t, d.Base(), d.Base()+units.Kilometers(0).Base())
}

// TestView_FeetMetersStability runs ten thousand ft→m→ft round trips.
func TestView_FeetMetersStability(t *testing.T) {
	t.Parallel()

	l := units.Feet(1).Base()
	for i := 0; i < 10000; i++ {
		l = units.Meters(units.MetersOf(l).Value()).Base()
		l = units.Feet(units.FeetOf(l).Value()).Base()
	}
	require.InDelta(t, 1.0, units.FeetOf(l).Value(), 1e-12)
}
