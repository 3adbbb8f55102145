package soil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jihenghu/canort/pkg/constants"
	"github.com/jihenghu/canort/pkg/dielectric"
	"github.com/jihenghu/canort/pkg/errors"
)

func TestNewDefaults(t *testing.T) {
	s, err := New(290)
	require.NoError(t, err)

	assert.Equal(t, 290.0, s.Temperature())
	assert.Equal(t, constants.DefaultSoilMoisture, s.Moisture())
	assert.Equal(t, constants.DefaultSandFraction, s.Sand())
	assert.Equal(t, constants.DefaultClayFraction, s.Clay())
	assert.Equal(t, constants.DefaultRMSHeight, s.RMSHeight())
	assert.Equal(t, constants.DefaultCorrelationLength, s.CorrelationLength())
	assert.Equal(t, constants.DefaultSoilBulkDensity, s.BulkDensity())
	assert.Equal(t, constants.DefaultSoilSpecificDensity, s.SpecificDensity())
	assert.Equal(t, dielectric.Dobson, s.Model())
	assert.InDelta(t, 0.3, s.Silt(), 1e-12)
	assert.InDelta(t, 1-1.3/2.65, s.Porosity(), 1e-12)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		temp  float64
		opts  []Option
		code  errors.Code
		field string
	}{
		{"zero temperature", 0, nil, errors.ErrCodeInvalidParameter, FieldTemperature},
		{"moisture above one", 290, []Option{WithMoisture(1.2)}, errors.ErrCodeInvalidParameter, FieldMoisture},
		{"negative sand", 290, []Option{WithTexture(-0.1, 0.2)}, errors.ErrCodeInvalidParameter, FieldSand},
		{"texture sum", 290, []Option{WithTexture(0.7, 0.5)}, errors.ErrCodeInvalidParameter, "texture"},
		{"flat surface", 290, []Option{WithRoughness(0, 0.1)}, errors.ErrCodeInvalidParameter, FieldRMSHeight},
		{"zero correlation", 290, []Option{WithRoughness(0.01, 0)}, errors.ErrCodeInvalidParameter, FieldCorrelationLength},
		{"zero bulk density", 290, []Option{WithBulkDensity(0)}, errors.ErrCodeInvalidParameter, FieldBulkDensity},
		{"NaN specific density", 290, []Option{WithSpecificDensity(math.NaN())}, errors.ErrCodeInvalidType, FieldSpecificDensity},
		{"unknown model", 290, []Option{WithModel("topp")}, errors.ErrCodeUnsupported, "dielectric_model"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.temp, tt.opts...)
			assert.Nil(t, s)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
			var e *errors.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.field, e.Field)
		})
	}
}

func TestDielectricUsesModel(t *testing.T) {
	dobson, err := New(293.15)
	require.NoError(t, err)
	wang, err := New(293.15, WithModel("Wang"))
	require.NoError(t, err)

	assert.NotEqual(t, dobson.Dielectric(1.4), wang.Dielectric(1.4))

	want := 1 + (dielectric.Water(1.4, 293.15)-1)*complex(0.2, 0)
	assert.Equal(t, want, wang.Dielectric(1.4))
}

func TestDielectrics(t *testing.T) {
	s, err := New(293.15)
	require.NoError(t, err)
	freqs := []float64{1.4, 6.925, 36.5}
	got := s.Dielectrics(freqs)
	require.Len(t, got, len(freqs))
	for i, f := range freqs {
		assert.Equal(t, s.Dielectric(f), got[i])
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name     string
		build    func(float64, ...Option) (*Soil, error)
		sand     float64
		clay     float64
		moisture float64
	}{
		{"sandy", Sandy, 0.8, 0.1, 0.15},
		{"clayey", Clayey, 0.2, 0.6, 0.25},
		{"loamy", Loamy, 0.4, 0.2, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.build(293.15)
			require.NoError(t, err)
			assert.Equal(t, tt.sand, s.Sand())
			assert.Equal(t, tt.clay, s.Clay())
			assert.Equal(t, tt.moisture, s.Moisture())

			byName, err := Preset(tt.name, 293.15)
			require.NoError(t, err)
			assert.Equal(t, s.String(), byName.String())
		})
	}
}

func TestPresetOverrides(t *testing.T) {
	s, err := Sandy(280, WithMoisture(0.05), WithModel(dielectric.Mironov))
	require.NoError(t, err)
	assert.Equal(t, 0.05, s.Moisture())
	assert.Equal(t, 0.8, s.Sand())
	assert.Equal(t, dielectric.Mironov, s.Model())
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("peat", 290)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported))
	assert.Equal(t, []string{"clayey", "loamy", "sandy"}, Presets())
}

func TestString(t *testing.T) {
	s, err := Loamy(293.15)
	require.NoError(t, err)
	assert.Equal(t,
		"Soil(temperature=293.15K, rms_height=0.010m, correlation_length=0.100m, moisture=0.200, sand=0.400, clay=0.200, silt=0.400, model=dobson)",
		s.String())
}
