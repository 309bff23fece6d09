package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/units"
)

type approach struct {
	Altitude quantity.View[units.Length, units.FeetUnit]                   `yaml:"altitude_ft"`
	Speed    quantity.View[units.Speed, units.KnotsUnit]                   `yaml:"speed_kt"`
	QNH      quantity.View[units.Pressure, units.HectoPascalsUnit]         `yaml:"qnh_hpa"`
	OAT      quantity.View[units.Temperature, units.FahrenheitUnit]        `yaml:"oat_f"`
	Track    quantity.View[units.Angle, units.DegreesUnit]                 `yaml:"track_deg"`
	Fuel     quantity.View[units.Volume, units.GallonsUnit]                `yaml:"fuel_gal"`
	Turn     quantity.View[units.AngularSpeed, units.DegreesPerSecondUnit] `yaml:"turn_deg_s"`
}

// TestYAML_CatalogUnits verifies catalog views decode display values into canonical scalars.
func TestYAML_CatalogUnits(t *testing.T) {
	t.Parallel()

	doc := []byte(`
altitude_ft: 3000
speed_kt: 140
qnh_hpa: 1013.25
oat_f: 59
track_deg: 275
fuel_gal: 20
turn_deg_s: 3
`)
	var a approach
	require.NoError(t, yaml.Unmarshal(doc, &a))

	assert.InDelta(t, 914.4, float64(a.Altitude.Base()), 1e-9)
	assert.InDelta(t, 140*1852.0/3600.0, float64(a.Speed.Base()), 1e-9)
	assert.InDelta(t, 101325.0, float64(a.QNH.Base()), 1e-6)
	assert.InDelta(t, 15.0, float64(a.OAT.Base()), 1e-9)
	assert.InDelta(t, 1.0, units.AtmospheresOf(a.QNH.Base()).Value(), 1e-12)
	assert.InDelta(t, 75.708235680, float64(a.Fuel.Base()), 1e-9)

	track := a.Track.Base()
	assert.Equal(t, -1, track.Sign())

	out, err := yaml.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(out), "oat_f: 59")
	assert.Contains(t, string(out), "track_deg: 275")
	assert.Contains(t, string(out), "turn_deg_s: 3")
}
