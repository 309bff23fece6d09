// SPDX-License-Identifier: MIT

package quantity_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvunits/quantity"
)

// LawSuite covers law construction and the definition-time rejections.
type LawSuite struct {
	suite.Suite
}

// TestLinear_ZeroRatioRejected verifies a zero ratio never yields a usable law.
func (s *LawSuite) TestLinear_ZeroRatioRejected() {
	require.PanicsWithValue(s.T(), quantity.PanicZeroRatio_TestOnly, func() { quantity.Linear(0) })
	require.PanicsWithValue(s.T(), quantity.PanicZeroRatio_TestOnly, func() { quantity.Linear(-0.0) })
	require.PanicsWithValue(s.T(), quantity.PanicBadRatio_TestOnly, func() { quantity.Linear(math.NaN()) })
	require.PanicsWithValue(s.T(), quantity.PanicBadRatio_TestOnly, func() { quantity.Linear(math.Inf(-1)) })
}

// TestEquation_NilRejected verifies both halves of an equation are required.
func (s *LawSuite) TestEquation_NilRejected() {
	id := func(x float64) float64 { return x }
	require.PanicsWithValue(s.T(), quantity.PanicNilEquation_TestOnly, func() { quantity.Equation(nil, id) })
	require.PanicsWithValue(s.T(), quantity.PanicNilEquation_TestOnly, func() { quantity.Equation(id, nil) })
}

// TestDefine_Rejections covers the empty symbol and the zero Law.
func (s *LawSuite) TestDefine_Rejections() {
	require.PanicsWithValue(s.T(), quantity.PanicEmptySymbol_TestOnly, func() {
		quantity.Define[distance]("", quantity.Linear(1))
	})
	require.PanicsWithValue(s.T(), quantity.PanicZeroRatio_TestOnly, func() {
		quantity.Define[distance]("x", quantity.Law{})
	})
}

// TestLaw_Accessors checks IsLinear, Ratio and both directions.
func (s *LawSuite) TestLaw_Accessors() {
	lin := quantity.Linear(0.3048)
	s.True(lin.IsLinear())
	s.Equal(0.3048, lin.Ratio())
	s.Equal(0.3048, lin.ToBase(1))
	s.InDelta(1.0, lin.FromBase(0.3048), 1e-15)

	eq := fahrenheitDef.Law()
	s.False(eq.IsLinear())
	s.True(math.IsNaN(eq.Ratio()))
	s.Equal(100.0, eq.ToBase(212))
	s.Equal(212.0, eq.FromBase(100))
	s.Equal("degF", fahrenheitDef.Symbol())
}

func TestLawSuite(t *testing.T) {
	suite.Run(t, new(LawSuite))
}

// TestView_MakeValueBase checks forward law at construction and inverse law on read.
func TestView_MakeValueBase(t *testing.T) {
	t.Parallel()

	ft := feet(10)
	assert.InDelta(t, 3.048, float64(ft.Base()), 1e-15)
	assert.InDelta(t, 10.0, ft.Value(), 1e-12)
	assert.Equal(t, "ft", ft.Symbol())

	var zero quantity.View[distance, kiloUnit]
	assert.Equal(t, 0.0, zero.Value())
}

// TestView_ViewOfAndConvert verifies re-reading through another unit copies the scalar.
func TestView_ViewOfAndConvert(t *testing.T) {
	t.Parallel()

	km := quantity.ViewOf[kiloUnit](meters(1500).Base())
	assert.Equal(t, 1.5, km.Value())

	ft := quantity.Convert[footUnit](km)
	assert.Equal(t, km.Base(), ft.Base(), "conversion never touches the canonical scalar")
	assert.InDelta(t, 4921.259842519685, ft.Value(), 1e-9)
}

// TestView_RoundTripMatchesRatio checks U2(U1(x)) ≈ (r1/r2)·x for the linear units.
func TestView_RoundTripMatchesRatio(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0, 1, -3.5, 1234.5678, 1e-9, 1e12} {
		got := quantity.Convert[kiloUnit](feet(x)).Value()
		want := (footDef.Law().Ratio() / kiloDef.Law().Ratio()) * x
		assert.True(t, quantity.Close(got, want, quantity.WithRelTol(1e-8), quantity.WithAbsTol(1e-300)),
			"x=%v got=%v want=%v", x, got, want)
	}
}

// TestView_AffineLaw verifies equation units convert through the canonical scalar.
func TestView_AffineLaw(t *testing.T) {
	t.Parallel()

	assert.Equal(t, temp(0), fahrenheit(32).Base())
	assert.Equal(t, temp(100), fahrenheit(212).Base())
	assert.Equal(t, 212.0, quantity.ViewOf[fahrenheitUnit](temp(100)).Value())
	assert.InDelta(t, -40.0, quantity.Convert[celsiusUnit](fahrenheit(-40)).Value(), 1e-12)
}

// TestView_ScalarMulDivUseDisplayValue verifies Mul/Div act on the display value.
func TestView_ScalarMulDivUseDisplayValue(t *testing.T) {
	t.Parallel()

	// linear: 2 × 3 ft is 6 ft
	assert.InDelta(t, 6.0, feet(3).Mul(2).Value(), 1e-12)
	assert.InDelta(t, 1.5, feet(3).Div(2).Value(), 1e-12)

	// affine: 2 × 50 °F is 100 °F (not 2 × 10 °C)
	f := fahrenheit(50).Mul(2)
	assert.InDelta(t, 100.0, f.Value(), 1e-12)
	assert.InDelta(t, 37.77777777777778, float64(f.Base()), 1e-12)
}

// TestView_ArithmeticStaysInUnit covers Add, Sub and Neg on canonical scalars.
func TestView_ArithmeticStaysInUnit(t *testing.T) {
	t.Parallel()

	sum := feet(1).Add(meters(0.3048).Base())
	assert.InDelta(t, 2.0, sum.Value(), 1e-12)
	assert.Equal(t, "ft", sum.Symbol())

	diff := sum.Sub(feet(2).Base())
	assert.InDelta(t, 0.0, diff.Value(), 1e-12)

	assert.InDelta(t, -1.0, feet(1).Neg().Value(), 1e-12)
}

// TestView_CompareAgainstBareNumberUsesDisplayValue verifies comparisons use Value().
func TestView_CompareAgainstBareNumberUsesDisplayValue(t *testing.T) {
	t.Parallel()

	v := quantity.Make[distance, kiloUnit](2) // 2000 m canonical
	assert.True(t, v.Equal(2))
	assert.False(t, v.Equal(2000))
	assert.True(t, v.NotEqual(2000))
	assert.True(t, v.Less(3))
	assert.True(t, v.LessEqual(2))
	assert.True(t, v.Greater(1))
	assert.True(t, v.GreaterEqual(2))
	assert.Equal(t, -1, v.Cmp(3))
	assert.Equal(t, 0, v.Cmp(2))
	assert.Equal(t, 1, v.Cmp(1))
}

// TestView_StringAndFormat covers "<value><symbol>" rendering.
func TestView_StringAndFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5km", quantity.Make[distance, kiloUnit](5).String())
	assert.Equal(t, "0.5km", quantity.Make[distance, kiloUnit](0.5).String())
	assert.Equal(t, "1e+06km", quantity.Make[distance, kiloUnit](1e6).String())
	assert.Equal(t, "212degF", quantity.ViewOf[fahrenheitUnit](temp(100)).String())

	v := quantity.Make[distance, kiloUnit](1.23456)
	assert.Equal(t, "1.23456km", fmt.Sprint(v))
	assert.Equal(t, "1.23456km", fmt.Sprintf("%v", v))
	assert.Equal(t, "1.23km", fmt.Sprintf("%.2f", v))
	assert.Equal(t, "  1.2km", fmt.Sprintf("%5.1f", v))
	assert.Equal(t, "1.235e+00km", fmt.Sprintf("%.3e", v))
	assert.Equal(t, "[1.23456km]", fmt.Sprintf("%v", []quantity.View[distance, kiloUnit]{v}))

	assert.Equal(t, "5m", quantity.FormatScalar(5, "m"))
}
