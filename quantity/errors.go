// SPDX-License-Identifier: MIT

// Package quantity: sentinel error set.
// Every message is prefixed with "quantity: ". Wrap with
// fmt.Errorf("ctx: %w", ErrX) when context helps; callers match with errors.Is.
//
// Configuration mistakes (zero ratio, nil equation, empty symbol, bad
// tolerance) are NOT errors: they panic, see the panic* constants in options.go.

package quantity

import "errors"

var (
	// ErrNotNumeric is returned when a serialized view is not a plain number.
	// Unit-suffixed strings such as "5ft" are rejected; the field type names the unit.
	ErrNotNumeric = errors.New("quantity: value is not a numeric scalar")
)
