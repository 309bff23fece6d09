package units_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvunits/units"
)

// OperatorsSuite covers every cross-family operator on canonical scalars.
type OperatorsSuite struct {
	suite.Suite
}

// TestKinematics covers Length, Time, Speed and Acceleration.
func (s *OperatorsSuite) TestKinematics() {
	eight := units.Meters(8).Base()
	four := units.Seconds(4).Base()
	two := units.MetersPerSecond(2).Base()

	s.Equal(eight, four.MulSpeed(two))
	s.Equal(eight, two.MulTime(four))
	s.Equal(units.MetersPerSecond(3).Base(), units.Meters(6).Base().DivTime(units.Seconds(2).Base()))
	s.Equal(four, eight.DivSpeed(two))

	s.Equal(units.Acceleration(0.5), two.DivTime(four))
	s.Equal(two, units.Acceleration(0.5).MulTime(four))

	// 10 km in an hour.
	v := units.Kilometers(10).Base().DivTime(units.Hours(1).Base())
	s.InDelta(10.0, units.KilometersPerHourOf(v).Value(), 1e-12)
}

// TestGeometry covers Length, Area and Volume, including the m³/L factor.
func (s *OperatorsSuite) TestGeometry() {
	three := units.Meters(3).Base()
	six := units.Meters(2).Base().MulLength(three)
	s.Equal(units.SquareMeters(6).Base(), six)
	s.Equal(units.Meters(2).Base(), six.DivLength(three))

	vol := six.MulLength(units.Meters(1).Base())
	s.Equal(units.Volume(6000), vol)
	s.InDelta(6.0, units.CubicMetersOf(vol).Value(), 1e-12)
	s.Equal(six, vol.DivLength(units.Meters(1).Base()))
	s.Equal(units.Area(2), units.Liters(6000).Base().DivLength(three))
}

// TestMassForceBridge covers the gram/kilogram factor on every Mass/Force operator.
func (s *OperatorsSuite) TestMassForceBridge() {
	kg := units.Kilograms(1).Base()
	g0 := units.MetersPerSecondSquared(9.80665).Base()

	f := kg.MulAcceleration(g0)
	s.Equal(units.Force(9.80665), f)
	s.Equal(f, g0.MulMass(kg))
	s.InDelta(1.0, units.KilogramsForceOf(f).Value(), 1e-12)
	s.Equal(g0, f.DivMass(kg))
	s.InDelta(1.0, units.KilogramsOf(f.DivAcceleration(g0)).Value(), 1e-12)

	// 1 lb under standard gravity is 1 lbf.
	lbf := units.Pounds(1).Base().MulAcceleration(units.StandardGravity(1).Base())
	s.InDelta(1.0, units.PoundsForceOf(lbf).Value(), 1e-12)
}

// TestPressure covers Force, Area and Pressure.
func (s *OperatorsSuite) TestPressure() {
	ten := units.Pascals(10).Base()
	two := units.SquareMeters(2).Base()

	f := ten.MulArea(two)
	s.Equal(units.Newtons(20).Base(), f)
	s.Equal(two, ten.DivForce(f))
	s.Equal(two, f.DivPressure(ten))
	s.Equal(ten, f.DivArea(two))

	psi := units.PoundsForce(1).Base().DivArea(units.SquareInches(1).Base())
	s.InDelta(1.0, units.PoundsPerSquareInchOf(psi).Value(), 1e-12)
}

// TestDensity covers the coherent kg/m³ × L = g product.
func (s *OperatorsSuite) TestDensity() {
	water := units.KilogramsPerLiter(1).Base()
	m := water.MulVolume(units.Liters(2).Base())
	s.Equal(units.Mass(2000), m)
	s.InDelta(2.0, units.KilogramsOf(m).Value(), 1e-12)
}

// TestRotation covers Angle, AngularSpeed and AngularAcceleration.
func (s *OperatorsSuite) TestRotation() {
	two := units.Seconds(2).Base()

	w := units.Degrees(90).Base().DivTime(two)
	s.Equal(units.AngularSpeed(45), w)
	s.Equal(units.Angle(90), w.MulTime(two))

	alpha := w.DivTime(two)
	s.Equal(units.AngularAcceleration(22.5), alpha)
	s.Equal(w, alpha.MulTime(two))

	s.InDelta(7.5, units.RevolutionsPerMinuteOf(w).Value(), 1e-12)
}

func TestOperatorsSuite(t *testing.T) {
	suite.Run(t, new(OperatorsSuite))
}

// TestTime_Duration covers the bridge to time.Duration.
func TestTime_Duration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1500*time.Millisecond, units.Seconds(1.5).Base().Duration())
	assert.Equal(t, units.Minutes(1.5).Base(), units.FromDuration(90*time.Second))
	assert.Equal(t, time.Duration(0), units.Time(0).Duration())
}
