package units_test

import (
	"testing"

	"github.com/katalvlaran/lvunits/units"
)

var (
	sinkFloat float64
	sinkAngle units.Angle
)

// BenchmarkFeetToMeters measures a linear catalog conversion.
func BenchmarkFeetToMeters(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkFloat = units.MetersOf(units.Feet(float64(i)).Base()).Value()
	}
}

// BenchmarkFahrenheitToKelvin measures two affine laws back to back.
func BenchmarkFahrenheitToKelvin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkFloat = units.KelvinOf(units.Fahrenheit(float64(i)).Base()).Value()
	}
}

// BenchmarkMassTimesAcceleration measures a bridged cross-family operator.
func BenchmarkMassTimesAcceleration(b *testing.B) {
	a := units.StandardGravity(1).Base()
	for i := 0; i < b.N; i++ {
		sinkFloat = float64(units.Kilograms(float64(i)).Base().MulAcceleration(a))
	}
}

// BenchmarkAngleLimit measures the in-place (-180, 180] wrap.
func BenchmarkAngleLimit(b *testing.B) {
	for i := 0; i < b.N; i++ {
		a := units.Angle(i)
		sinkAngle = *a.Limit()
	}
}
