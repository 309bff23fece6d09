// SPDX-License-Identifier: MIT

package si_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvunits/si"
)

// TestPrefixes_AreDecimalPowers checks each prefix against its neighbours.
func TestPrefixes_AreDecimalPowers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, si.Kilo*si.Milli)
	assert.Equal(t, 1.0, si.Mega*si.Micro)
	assert.Equal(t, 1.0, si.Giga*si.Nano)
	assert.Equal(t, 10.0, si.Deca)
	assert.Equal(t, si.Deca*si.Deca, si.Hecto)
	assert.Equal(t, si.Deci*si.Deci, si.Centi)
	assert.Equal(t, 1e-24, si.Pico*si.Pico)
}
