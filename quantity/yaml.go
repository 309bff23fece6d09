// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML emits the display value as a plain YAML number.
//
// The unit is implied by the Go type holding the field, e.g.
//
//	type Leg struct {
//	    Distance quantity.View[units.Length, units.NauticalMilesUnit] `yaml:"distance_nmi"`
//	}
func (v View[F, U]) MarshalYAML() (interface{}, error) {
	return v.Value(), nil
}

// UnmarshalYAML reads a plain YAML number as a raw value in unit U and applies
// the forward law. Strings (including "5ft"), sequences and maps fail with an
// error wrapping ErrNotNumeric.
func (v *View[F, U]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%s: yaml node kind %d: %w", v.Symbol(), node.Kind, ErrNotNumeric)
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
	default:
		return fmt.Errorf("%s: yaml %s %q: %w", v.Symbol(), node.ShortTag(), node.Value, ErrNotNumeric)
	}

	var raw float64
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%s: %v: %w", v.Symbol(), err, ErrNotNumeric)
	}
	*v = Make[F, U](raw)

	return nil
}
