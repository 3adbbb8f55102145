package scene

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jihenghu/canort/pkg/errors"
	"github.com/jihenghu/canort/pkg/observability"
)

const arraysScene = `
name = "maize"

[canopy]
thicknesses       = [0.5, 1, 1.0]
leaf_thicknesses  = [0.001, 0.002, 0.001]
temperatures      = [293.15, 294.15, 295.15]
leaf_area_indices = [0.2, 0.5, 0.8]
water_fraction    = 0.6

[soil]
preset = "loamy"
temperature = 290
model = "mironov"

[sensor]
preset = "smap"
angles = [30.0, 40.0]
`

func TestReadArrays(t *testing.T) {
	s, err := Read(strings.NewReader(arraysScene))
	require.NoError(t, err)

	assert.Equal(t, "maize", s.Name)
	assert.Equal(t, 3, s.Canopy.LayerCount())
	assert.Equal(t, 2.5, s.Canopy.TotalHeight())
	assert.Equal(t, []float64{0.6, 0.6, 0.6}, s.Canopy.WaterFractions())

	require.NotNil(t, s.Soil)
	assert.Equal(t, 290.0, s.Soil.Temperature())
	assert.Equal(t, 0.4, s.Soil.Sand())
	assert.Equal(t, "mironov", s.Soil.Model())

	require.NotNil(t, s.Sensor)
	assert.Equal(t, "SMAP", s.Sensor.Name())
	assert.Equal(t, []float64{1.41}, s.Sensor.Frequencies())
	assert.Equal(t, []float64{30, 40}, s.Sensor.Angles())
}

func TestReadUniform(t *testing.T) {
	s, err := Read(strings.NewReader(`
[canopy.uniform]
layers = 4
total_thickness = 2
leaf_area_index = 0.5
leaf_thickness = 0.0002
temperature = 295
`))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, s.Canopy.Thicknesses())
	assert.Nil(t, s.Soil)
	assert.Nil(t, s.Sensor)
}

func TestReadLayerList(t *testing.T) {
	s, err := Read(strings.NewReader(`
[canopy]
dry_mass_density = 0.4

[[canopy.layer]]
thickness = 0.3
leaf_area_index = 0.1
leaf_thickness = 0.0002
temperature = 290

[[canopy.layer]]
thickness = 1.2
leaf_area_index = 2.5
leaf_thickness = 0.0003
temperature = 292
water_fraction = 0.7
`))
	require.NoError(t, err)
	require.Equal(t, 2, s.Canopy.LayerCount())
	assert.Equal(t, []float64{0, 0.3, 1.5}, s.Canopy.Interfaces())

	top, err := s.Canopy.LayerAt(1)
	require.NoError(t, err)
	assert.Equal(t, 0.7, top.WaterFraction())
	assert.Equal(t, 0.4, top.DryMassDensity())
}

func TestReadSensorWithoutPreset(t *testing.T) {
	s, err := Read(strings.NewReader(`
[canopy.uniform]
layers = 1
layer_thickness = 1
leaf_area_index = 1
leaf_thickness = 0.0002
temperature = 295

[sensor]
name = "tower radiometer"
frequencies = [1.4, 6.8]
angles = [45.0]
polarizations = ["h"]
`))
	require.NoError(t, err)
	assert.Equal(t, "tower radiometer", s.Sensor.Name())
	assert.Equal(t, 2, s.Sensor.Channels())
}

func TestReadErrors(t *testing.T) {
	const uniform = `
[canopy.uniform]
layers = 2
layer_thickness = 1
leaf_area_index = 1
leaf_thickness = 0.0002
temperature = 295
`
	tests := []struct {
		name    string
		input   string
		code    errors.Code
		wantMsg string
	}{
		{
			name:    "syntax",
			input:   "[canopy\nthicknesses = [1",
			code:    errors.ErrCodeInvalidConfig,
			wantMsg: "decode scene",
		},
		{
			name:    "unknown key",
			input:   "[canopy]\nthicknesses = [1.0]\nleaf_thicknesses = [0.001]\ntemperatures = [290.0]\nleaf_area_indexes = [1.0]\n",
			code:    errors.ErrCodeInvalidConfig,
			wantMsg: "canopy.leaf_area_indexes",
		},
		{
			name:    "no canopy",
			input:   `name = "bare"`,
			code:    errors.ErrCodeInvalidConfig,
			wantMsg: "canopy:",
		},
		{
			name:    "two forms",
			input:   uniform + "\n[[canopy.layer]]\nthickness = 1\nleaf_area_index = 1\nleaf_thickness = 0.0002\ntemperature = 295\n",
			code:    errors.ErrCodeInvalidConfig,
			wantMsg: "mutually exclusive",
		},
		{
			name:    "string element",
			input:   "[canopy]\nthicknesses = [1.0, 1.0]\nleaf_thicknesses = [0.001, 0.001]\ntemperatures = [290.0, \"warm\"]\nleaf_area_indices = [1.0, 1.0]\n",
			code:    errors.ErrCodeInvalidType,
			wantMsg: "canopy.temperatures[1]",
		},
		{
			name:    "length mismatch",
			input:   "[canopy]\nthicknesses = [1.0, 1.0]\nleaf_thicknesses = [0.001, 0.001]\ntemperatures = [290.0]\nleaf_area_indices = [1.0, 1.0]\n",
			code:    errors.ErrCodeLengthMismatch,
			wantMsg: "canopy.temperatures",
		},
		{
			name:    "negative thickness",
			input:   "[canopy]\nthicknesses = [1.0, -1.0]\nleaf_thicknesses = [0.001, 0.001]\ntemperatures = [290.0, 290.0]\nleaf_area_indices = [1.0, 1.0]\n",
			code:    errors.ErrCodeInvalidParameter,
			wantMsg: "canopy.thicknesses[1]",
		},
		{
			name:    "bad layer entry",
			input:   "[[canopy.layer]]\nthickness = 1\nleaf_area_index = 1\nleaf_thickness = 0.0002\ntemperature = 295\n[[canopy.layer]]\nthickness = 0\nleaf_area_index = 1\nleaf_thickness = 0.0002\ntemperature = 295\n",
			code:    errors.ErrCodeInvalidParameter,
			wantMsg: "canopy.layer[1].thickness",
		},
		{
			name:    "zero uniform layers",
			input:   strings.Replace(uniform, "layers = 2", "layers = 0", 1),
			code:    errors.ErrCodeEmptyCanopy,
			wantMsg: "canopy:",
		},
		{
			name:    "half texture",
			input:   uniform + "\n[soil]\nsand = 0.5\n",
			code:    errors.ErrCodeInvalidConfig,
			wantMsg: "soil.texture",
		},
		{
			name:    "soil moisture",
			input:   uniform + "\n[soil]\nmoisture = 1.5\n",
			code:    errors.ErrCodeInvalidParameter,
			wantMsg: "soil.moisture",
		},
		{
			name:    "unknown soil model",
			input:   uniform + "\n[soil]\nmodel = \"topp\"\n",
			code:    errors.ErrCodeUnsupported,
			wantMsg: "soil.dielectric_model",
		},
		{
			name:    "unknown sensor",
			input:   uniform + "\n[sensor]\npreset = \"TRMM\"\n",
			code:    errors.ErrCodeUnsupported,
			wantMsg: "sensor.preset",
		},
		{
			name:    "sensor in MHz",
			input:   uniform + "\n[sensor]\nfrequencies = [1400.0, 0.1]\nangles = [40.0]\n",
			code:    errors.ErrCodeInvalidParameter,
			wantMsg: "sensor.frequencies",
		},
		{
			name:    "bad polarization",
			input:   uniform + "\n[sensor]\npreset = \"SMOS\"\npolarizations = [\"V\", \"RHC\"]\n",
			code:    errors.ErrCodeInvalidParameter,
			wantMsg: "sensor.polarizations[1]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Read(strings.NewReader(tt.input))
			assert.Nil(t, s)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err), "err = %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestWriteExampleReadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Example()))

	s, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, "maize", s.Name)
	assert.Equal(t, 3, s.Canopy.LayerCount())
	assert.Equal(t, 0.25, s.Soil.Moisture())
	assert.Equal(t, "SMAP", s.Sensor.Name())
}

func TestImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maize.toml")
	require.NoError(t, os.WriteFile(path, []byte(arraysScene), 0o644))

	hooks := &recordingHooks{}
	observability.SetSceneHooks(hooks)
	t.Cleanup(observability.Reset)

	s, err := Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Canopy.LayerCount())
	assert.Equal(t, []string{"start " + path, "done 3"}, hooks.events)
}

func TestImportMissingFile(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetSceneHooks(hooks)
	t.Cleanup(observability.Reset)

	_, err := Import(context.Background(), filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "err = %v", err)
	require.Len(t, hooks.events, 2)
	assert.Equal(t, "failed", hooks.events[1])
}

type recordingHooks struct {
	observability.NoopSceneHooks
	events []string
}

func (h *recordingHooks) OnLoadStart(_ context.Context, source string) {
	h.events = append(h.events, "start "+source)
}

func (h *recordingHooks) OnLoadComplete(_ context.Context, _ string, layers int, _ time.Duration, err error) {
	if err != nil {
		h.events = append(h.events, "failed")
		return
	}
	h.events = append(h.events, "done "+strconv.Itoa(layers))
}

func TestExampleScenes(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "scenes", "*.toml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := Import(context.Background(), path)
			require.NoError(t, err)
			assert.NotEmpty(t, s.Name)
			assert.NotNil(t, s.Soil)
			assert.NotNil(t, s.Sensor)
			assert.Equal(t, s.Canopy.TotalHeight(), s.Canopy.Interfaces()[s.Canopy.LayerCount()])
		})
	}
}
