// SPDX-License-Identifier: MIT

package quantity_test

import (
	"fmt"

	"github.com/katalvlaran/lvunits/quantity"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMake
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A runway is typed in feet, a taxiway in metres; both are the same family,
//	so they add on the canonical scalar and read back in either unit.
func ExampleMake() {
	runway := feet(9000)
	taxiway := meters(450)

	total := runway.Add(taxiway.Base())
	fmt.Printf("%.1f\n", total)
	fmt.Printf("%.1f\n", quantity.Convert[meterUnit](total))
	// Output:
	// 10476.4ft
	// 3193.2m
}

// ExampleEquation shows an affine unit built from an explicit law pair.
func ExampleEquation() {
	boiling := fahrenheit(212)
	fmt.Println(quantity.Convert[celsiusUnit](boiling))
	fmt.Println(boiling)
	// Output:
	// 100degC
	// 212degF
}

// ExampleClose compares two values of one family with a tolerance.
func ExampleClose() {
	a := feet(1).Base()
	b := meters(0.3048).Base()
	fmt.Println(quantity.Close(a, b))
	fmt.Println(quantity.Close(a, b+1e-6, quantity.WithAbsTol(1e-3)))
	// Output:
	// true
	// true
}
