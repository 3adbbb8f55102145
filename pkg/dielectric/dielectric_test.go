package dielectric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jihenghu/canort/pkg/errors"
)

func TestWater(t *testing.T) {
	tests := []struct {
		name     string
		freq     float64
		temp     float64
		wantReal float64
		wantImag float64
	}{
		{"L-band 20C", 1.4, 293.15, 79.5915, 6.0948},
		{"X-band 0C", 10.65, 273.15, 39.5474, 40.9917},
		{"Ka-band 27C", 36.5, 300, 22.4422, 31.0983},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Water(tt.freq, tt.temp)
			assert.InDelta(t, tt.wantReal, real(got), 1e-3)
			assert.InDelta(t, tt.wantImag, imag(got), 1e-3)
		})
	}
}

func TestWaterLimits(t *testing.T) {
	const temp = 293.15
	static := WaterStatic(temp)
	assert.InDelta(t, 80.0888, static, 1e-4)

	low := Water(1e-6, temp)
	assert.InDelta(t, static, real(low), 1e-6)
	assert.InDelta(t, 0, imag(low), 1e-3)

	high := Water(1e6, temp)
	assert.InDelta(t, WaterHighFrequencyLimit, real(high), 1e-3)

	// Loss peaks near the relaxation frequency.
	peak := 1 / (WaterRelaxation(temp) * 1e9)
	assert.Greater(t, imag(Water(peak, temp)), imag(Water(peak/4, temp)))
	assert.Greater(t, imag(Water(peak, temp)), imag(Water(peak*4, temp)))
}

type sample struct {
	temperature, moisture, sand, clay, bulk, specific float64
}

func (s sample) Temperature() float64     { return s.temperature }
func (s sample) Moisture() float64        { return s.moisture }
func (s sample) Sand() float64            { return s.sand }
func (s sample) Clay() float64            { return s.clay }
func (s sample) BulkDensity() float64     { return s.bulk }
func (s sample) SpecificDensity() float64 { return s.specific }

func TestSoilModels(t *testing.T) {
	s := sample{temperature: 293.15, moisture: 0.2, sand: 0.5, clay: 0.2, bulk: 1.3, specific: 2.65}

	tests := []struct {
		model    string
		wantReal float64
		wantImag float64
	}{
		{Dobson, 29.6049, 2.1411},
		{Mironov, 16.7183, 1.2190},
		{Wang, 16.7183, 1.2190},
		{"DOBSON", 29.6049, 2.1411},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			fn, err := Soil(tt.model)
			require.NoError(t, err)
			got := fn(s, 1.4)
			assert.InDelta(t, tt.wantReal, real(got), 1e-3)
			assert.InDelta(t, tt.wantImag, imag(got), 1e-3)
		})
	}
}

func TestSoilDrySample(t *testing.T) {
	dry := sample{temperature: 293.15, bulk: 1.3, specific: 2.65}
	fn, err := Soil(Mironov)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), fn(dry, 10))
}

func TestSoilUnknownModel(t *testing.T) {
	fn, err := Soil("topp")
	assert.Nil(t, fn)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupported), "err = %v", err)
	assert.Contains(t, err.Error(), "dobson, mironov, wang")
}

func TestSoilModelsSorted(t *testing.T) {
	assert.Equal(t, []string{Dobson, Mironov, Wang}, SoilModels())
}

func TestLossTangent(t *testing.T) {
	assert.Equal(t, 0.5, LossTangent(complex(4, 2)))
	assert.True(t, math.IsInf(LossTangent(complex(0, 1)), 1))
}
