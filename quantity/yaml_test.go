// SPDX-License-Identifier: MIT

package quantity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvunits/quantity"
)

type leg struct {
	Distance quantity.View[distance, kiloUnit]    `yaml:"distance_km"`
	Climb    quantity.View[distance, footUnit]    `yaml:"climb_ft"`
	Outside  quantity.View[temp, fahrenheitUnit] `yaml:"outside_f"`
}

// TestYAML_RoundTripInDisplayUnits verifies fields are written and read as display values.
func TestYAML_RoundTripInDisplayUnits(t *testing.T) {
	t.Parallel()

	in := leg{
		Distance: quantity.Make[distance, kiloUnit](12.5),
		Climb:    feet(1000),
		Outside:  fahrenheit(212),
	}
	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "distance_km: 12.5")
	assert.Contains(t, string(out), "outside_f: 212")

	var back leg
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.InDelta(t, 12500.0, float64(back.Distance.Base()), 1e-9)
	assert.InDelta(t, 304.8, float64(back.Climb.Base()), 1e-9)
	assert.InDelta(t, 100.0, float64(back.Outside.Base()), 1e-9)
}

// TestYAML_IntegerNode verifies integer scalars are accepted as raw values.
func TestYAML_IntegerNode(t *testing.T) {
	t.Parallel()

	var l leg
	require.NoError(t, yaml.Unmarshal([]byte("climb_ft: 10\n"), &l))
	assert.InDelta(t, 3.048, float64(l.Climb.Base()), 1e-12)
}

// TestYAML_RejectsNonNumeric verifies unit strings and collections are not parsed.
func TestYAML_RejectsNonNumeric(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{
		"climb_ft: 5ft\n",
		"climb_ft: \"5\"\n",
		"climb_ft: [1, 2]\n",
		"climb_ft: {v: 1}\n",
	} {
		var l leg
		err := yaml.Unmarshal([]byte(doc), &l)
		assert.ErrorIs(t, err, quantity.ErrNotNumeric, "doc %q", doc)
	}
}
