// SPDX-License-Identifier: MIT

// Package units defines the physical families, the operators between them,
// and the catalog of named units.
//
// 🚀 Families and their canonical scalar:
//
//	Time                 seconds          Length (Distance)  metres
//	Speed                metres/second    Acceleration       metres/second²
//	Mass                 grams            Force              newtons
//	Area                 square metres    Volume             litres
//	Density              kg/m³            Pressure           pascals
//	Power                watts            Temperature        degrees Celsius
//	Angle                degrees          AngularSpeed       degrees/second
//	AngularAcceleration  degrees/second²
//
// Each family is a named float64 holding that scalar. Units are views:
//
//	d := units.Feet(5280)                       // view in feet
//	fmt.Println(units.MilesOf(d.Base()))        // 1mi
//	fmt.Println(float64(d.Base()))              // 1609.344 (metres)
//
// ✨ Cross-family operators are methods on the left operand:
//
//	v := units.Meters(6).Base().DivTime(units.Seconds(2).Base())      // Speed 3
//	f := units.Kilograms(1).Base().MulAcceleration(units.StandardGravity(1).Base())
//
// Mass is stored in grams while Force is kilogram-based, so the Mass/Force
// operators carry a factor of 1000; every other operator is SI-coherent.
//
// ⚙️ Angles:
//
//	Angle is degree-based (FullCircle = 360). LimitPositive, Limit360, Limit
//	and Sign normalise in place and are the only mutating operations here.
//
// Each unit comes with a marker type (FeetUnit), a constructor (Feet) and an
// Of reader (FeetOf). Shorthand constructors live in units/literal.
package units
