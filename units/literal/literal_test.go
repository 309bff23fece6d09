// SPDX-License-Identifier: MIT

package literal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/katalvlaran/lvunits/units/literal"

	"github.com/katalvlaran/lvunits/units"
)

// TestLiterals_MatchCatalog verifies shorthands build the same views as the catalog.
func TestLiterals_MatchCatalog(t *testing.T) {
	t.Parallel()

	assert.Equal(t, units.Feet(1), Ft(1))
	assert.Equal(t, units.Inches(1), In(1))
	assert.Equal(t, units.Degrees(90), Deg(90))
	assert.Equal(t, units.Celsius(-56.5), DegC(-56.5))
	assert.Equal(t, units.DecibelMilliwatts(-90), DBm(-90))
	assert.Equal(t, units.MetersPerSecond(3), Mps(3))
	assert.Equal(t, units.StandardGravity(1), G0(1))
	assert.Equal(t, units.KilogramsPerCubicMeter(2), KgM3(2))
	assert.Equal(t, units.MetersPerHourSquared(1), MeterPerHour2(1))
}

// TestLiterals_PrefixCollisions covers the spellings that keep mega and milli apart.
func TestLiterals_PrefixCollisions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, units.Megameters(1), MegaM(1))
	assert.Equal(t, units.Millimeters(1), Mm(1))
	assert.Equal(t, units.Megagrams(1), MegaG(1))
	assert.Equal(t, units.Milligrams(1), Mg(1))
	assert.Equal(t, units.Megaliters(1), MegaL(1))
	assert.Equal(t, units.Milliliters(1), ML(1))
	assert.Equal(t, units.MegaWatts(1), MegaW(1))
	assert.Equal(t, units.MilliWatts(1), MW(1))
	assert.Equal(t, units.MegaPascals(1), MegaPa(1))
	assert.Equal(t, units.MilliPascals(1), MPa(1))
	assert.Equal(t, units.SquareMegameters(1), MegaM2(1))
	assert.Equal(t, units.SquareMillimeters(1), Mm2(1))
	assert.Equal(t, units.Decameters(1), Dam(1))
	assert.Equal(t, units.Decaliters(1), DaL(1))
	assert.Equal(t, units.Gallons(1), Gal(1))
	assert.Equal(t, units.Gals(1), Galileo(1))
}

// TestLiterals_ReadLikeQuantities checks a short calculation written with literals.
func TestLiterals_ReadLikeQuantities(t *testing.T) {
	t.Parallel()

	v := Km(12).Base().DivTime(Min(10).Base())
	assert.Equal(t, units.Speed(20), v)
	assert.Equal(t, "72kph", units.KilometersPerHourOf(v).String())
}
