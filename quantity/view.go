// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"
	"io"
	"strconv"
)

// View is a value of family F seen through the named unit U.
//
// Only the canonical scalar is stored. The marker type U supplies the law:
// construction applies the forward law once, and every Value call applies the
// inverse law again (never cached). Views of the same family interoperate
// through Base and ViewOf; there is no implicit conversion to float64.
//
// The zero View is the family's zero read through U.
type View[F Family, U Unit[F]] struct {
	base F
}

// Make constructs a view from a raw value expressed in unit U.
func Make[F Family, U Unit[F]](raw float64) View[F, U] {
	return View[F, U]{base: F(defOf[F, U]().law.ToBase(raw))}
}

// ViewOf reads the family value f through unit U. The canonical scalar is
// copied as is; only later Value calls convert.
//
// F is inferred from f, so callers write ViewOf[units.FeetUnit](length).
func ViewOf[U Unit[F], F Family](f F) View[F, U] {
	return View[F, U]{base: f}
}

// Convert re-reads a view of family F, typed in unit W, through unit U.
// Only the type changes; the canonical scalar is copied as is.
func Convert[U Unit[F], F Family, W Unit[F]](v View[F, W]) View[F, U] {
	return View[F, U]{base: v.base}
}

// defOf returns the definition carried by marker type U.
func defOf[F Family, U Unit[F]]() Def[F] {
	var u U

	return u.Def()
}

// Base returns the canonical family value.
func (v View[F, U]) Base() F { return v.base }

// Value returns the display value in unit U, recomputed from the canonical scalar.
func (v View[F, U]) Value() float64 {
	return defOf[F, U]().law.FromBase(float64(v.base))
}

// Symbol returns the unit tag, e.g. "ft".
func (v View[F, U]) Symbol() string { return defOf[F, U]().symbol }

// Mul scales the display value by k and stays in unit U.
//
// For linear units this equals scaling the canonical scalar; for equation
// units it does not (2 × 10 dBW is 20 dBW, not 20 W).
func (v View[F, U]) Mul(k float64) View[F, U] {
	return Make[F, U](v.Value() * k)
}

// Div divides the display value by k and stays in unit U.
func (v View[F, U]) Div(k float64) View[F, U] {
	return Make[F, U](v.Value() / k)
}

// Add adds a family value on canonical scalars; pass other views via Base.
func (v View[F, U]) Add(f F) View[F, U] {
	return View[F, U]{base: v.base + f}
}

// Sub subtracts a family value on canonical scalars.
func (v View[F, U]) Sub(f F) View[F, U] {
	return View[F, U]{base: v.base - f}
}

// Neg negates the canonical scalar.
func (v View[F, U]) Neg() View[F, U] {
	return View[F, U]{base: -v.base}
}

// Cmp orders the display value against the bare number x: -1, 0 or +1.
//
// Comparing against a bare number only makes sense in a known unit, so the
// display value, not the canonical scalar, is used.
func (v View[F, U]) Cmp(x float64) int {
	val := v.Value()
	switch {
	case val < x:
		return -1
	case val > x:
		return 1
	default:
		return 0
	}
}

// Equal reports Value() == x.
func (v View[F, U]) Equal(x float64) bool { return v.Value() == x }

// NotEqual reports Value() != x.
func (v View[F, U]) NotEqual(x float64) bool { return v.Value() != x }

// Less reports Value() < x.
func (v View[F, U]) Less(x float64) bool { return v.Value() < x }

// LessEqual reports Value() <= x.
func (v View[F, U]) LessEqual(x float64) bool { return v.Value() <= x }

// Greater reports Value() > x.
func (v View[F, U]) Greater(x float64) bool { return v.Value() > x }

// GreaterEqual reports Value() >= x.
func (v View[F, U]) GreaterEqual(x float64) bool { return v.Value() >= x }

// String renders "<value><symbol>", e.g. "5deg".
func (v View[F, U]) String() string {
	return FormatScalar(v.Value(), v.Symbol())
}

// Format implements fmt.Formatter.
//
// %v and %s print String(); numeric verbs (%f, %.3e, %8.2g, …) format the
// display value with the given flags and append the symbol.
func (v View[F, U]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(s, fmt.FormatString(s, 's'), v.String())
	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), v.Value())
		_, _ = io.WriteString(s, v.Symbol())
	}
}

// FormatScalar renders x followed by symbol, using the shortest decimal form
// that reads back to x.
func FormatScalar(x float64, symbol string) string {
	return strconv.FormatFloat(x, 'g', -1, 64) + symbol
}
