// SPDX-License-Identifier: MIT

package quantity

import "math"

// Family is the constraint satisfied by every physical family type.
//
// A family is a named float64 whose value is the canonical scalar of its
// dimension. The type identity alone distinguishes Length from Time; the
// scalar never records a display unit.
type Family interface {
	~float64
}

// Zero returns the additive identity of F.
func Zero[F Family]() F {
	return 0
}

// Add returns a+b on canonical scalars.
func Add[F Family](a, b F) F {
	return a + b
}

// Sub returns a-b on canonical scalars.
func Sub[F Family](a, b F) F {
	return a - b
}

// AddAssign adds v to *dst in place and returns dst for chaining.
//
// v is received by value, so AddAssign(&x, x) doubles x exactly once.
func AddAssign[F Family](dst *F, v F) *F {
	*dst += v

	return dst
}

// SubAssign subtracts v from *dst in place and returns dst for chaining.
//
// v is received by value, so SubAssign(&x, x) leaves x at zero.
func SubAssign[F Family](dst *F, v F) *F {
	*dst -= v

	return dst
}

// Pos is unary plus.
func Pos[F Family](a F) F {
	return a
}

// Neg is unary minus.
func Neg[F Family](a F) F {
	return -a
}

// Abs returns |a|.
func Abs[F Family](a F) F {
	return F(math.Abs(float64(a)))
}

// Scale multiplies a by the dimensionless factor k.
func Scale[F Family](a F, k float64) F {
	return F(float64(a) * k)
}

// Divide divides a by the dimensionless factor k. Division by zero follows IEEE-754.
func Divide[F Family](a F, k float64) F {
	return F(float64(a) / k)
}

// Ratio returns the dimensionless quotient a/b of two values of one family.
func Ratio[F Family](a, b F) float64 {
	return float64(a) / float64(b)
}

// Sum adds xs left to right. Sum() is Zero.
func Sum[F Family](xs ...F) F {
	var total F
	for _, x := range xs {
		total += x
	}

	return total
}

// Min returns the smaller of a and b.
func Min[F Family](a, b F) F {
	if b < a {
		return b
	}

	return a
}

// Max returns the larger of a and b.
func Max[F Family](a, b F) F {
	if b > a {
		return b
	}

	return a
}

// Compare returns -1, 0 or +1 ordering a against b.
// NaN compares as equal to nothing and yields 0, like the raw operators would
// report false for both < and >.
func Compare[F Family](a, b F) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports a == b on canonical scalars.
func Equal[F Family](a, b F) bool { return a == b }

// NotEqual reports a != b on canonical scalars.
func NotEqual[F Family](a, b F) bool { return a != b }

// Less reports a < b.
func Less[F Family](a, b F) bool { return a < b }

// LessEqual reports a <= b.
func LessEqual[F Family](a, b F) bool { return a <= b }

// Greater reports a > b.
func Greater[F Family](a, b F) bool { return a > b }

// GreaterEqual reports a >= b.
func GreaterEqual[F Family](a, b F) bool { return a >= b }

// Close reports whether a and b agree within |a-b| ≤ atol + rtol·|b|.
//
// Tolerances come from opts (DefaultRelTol, DefaultAbsTol otherwise). The
// comparison is on canonical scalars, so units never matter. Any NaN operand
// yields false; equal infinities yield true.
func Close[F Family](a, b F, opts ...Option) bool {
	o := gatherOptions(opts...)
	x, y := float64(a), float64(b)
	if x == y {
		return true
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}

	return math.Abs(x-y) <= o.absTol+o.relTol*math.Abs(y)
}
