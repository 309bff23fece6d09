// SPDX-License-Identifier: MIT

// Package literal provides short constructors for every unit in package units,
// named after the unit symbol:
//
//	import . "github.com/katalvlaran/lvunits/units/literal"
//
//	alt := Ft(35000)        // units.Feet(35000)
//	oat := DegC(-56.5)      // units.Celsius(-56.5)
//	rx := DBm(-90)          // units.DecibelMilliwatts(-90)
//
// Names upper-case the first letter of the symbol and drop underscores
// (kg_m3 → KgM3, meter_per_hour → MeterPerHour). Where that would make a mega
// prefix collide with milli, the mega form is spelled out (MegaM for Mm, Mm
// for mm). The galileo is Galileo so that Gal stays the US gallon.
package literal
