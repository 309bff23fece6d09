package units_test

import (
	"fmt"

	"github.com/katalvlaran/lvunits/units"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFeet
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	An altitude typed in feet is read back in metres and flight levels; the
//	stored value is metres either way.
func ExampleFeet() {
	alt := units.Feet(35000)

	fmt.Printf("%.1f\n", units.MetersOf(alt.Base()))
	fmt.Println(units.FlightLevelsOf(alt.Base()))
	fmt.Printf("%.0f\n", alt)
	// Output:
	// 10668.0m
	// 350fl
	// 35000ft
}

// ExampleLength_DivTime derives a speed from a distance and a duration.
func ExampleLength_DivTime() {
	d := units.NauticalMiles(120).Base()
	t := units.Minutes(45).Base()

	fmt.Printf("%.1f\n", units.KnotsOf(d.DivTime(t)))
	// Output:
	// 160.0kt
}

// ExampleMass_MulAcceleration shows the gram/kilogram bridge behind F = m·a.
func ExampleMass_MulAcceleration() {
	m := units.Kilograms(1).Base()
	a := units.StandardGravity(1).Base()

	fmt.Println(m.MulAcceleration(a))
	fmt.Println(m)
	// Output:
	// 9.80665N
	// 1000g
}

// ExampleAngle_Limit wraps a heading into (-180, 180].
func ExampleAngle_Limit() {
	h := units.Degrees(350).Base()
	fmt.Println(h.Limit(), h.Sign())

	b := units.BAMS(-0.5).Base()
	fmt.Println(b.LimitPositive())
	// Output:
	// -10deg -1
	// 270deg
}

// ExampleFahrenheit converts between the affine temperature scales.
func ExampleFahrenheit() {
	body := units.Fahrenheit(98.6)

	fmt.Printf("%.1f\n", units.CelsiusOf(body.Base()))
	fmt.Printf("%.2f\n", units.KelvinOf(body.Base()))
	// Output:
	// 37.0degC
	// 310.15degK
}

// ExampleDecibelMilliwatts reads a transmitter power on the log scale.
func ExampleDecibelMilliwatts() {
	tx := units.Watts(5).Base()

	fmt.Printf("%.2f\n", units.DecibelMilliwattsOf(tx))
	fmt.Printf("%.2f\n", units.DecibelWattsOf(tx))
	// Output:
	// 36.99dBm
	// 6.99dBW
}
