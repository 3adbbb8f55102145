package scene

// Document is the TOML schema of a scene file.
//
//	name = "maize"
//
//	[canopy]
//	thicknesses       = [0.5, 1.0, 1.0]
//	leaf_thicknesses  = [0.0002, 0.0002, 0.0002]
//	temperatures      = [293.15, 294.15, 295.15]
//	leaf_area_indices = [0.2, 0.5, 0.8]
//
//	[soil]
//	preset = "loamy"
//	temperature = 291
//
//	[sensor]
//	preset = "SMAP"
//
// The canopy is given in exactly one of three forms: the four parallel
// arrays above, a [canopy.uniform] table, or a list of [[canopy.layer]]
// tables. water_fraction and dry_mass_density in [canopy] apply to every
// layer that does not set its own. [soil] and [sensor] are optional.
type Document struct {
	Name        string         `toml:"name,omitempty"`
	Description string         `toml:"description,omitempty"`
	Canopy      CanopySection  `toml:"canopy"`
	Soil        *SoilSection   `toml:"soil,omitempty"`
	Sensor      *SensorSection `toml:"sensor,omitempty"`
}

// CanopySection is the [canopy] table. The arrays are untyped so that a
// string or boolean element is reported as INVALID_TYPE with its index
// instead of as a decode failure.
type CanopySection struct {
	Thicknesses     []any `toml:"thicknesses,omitempty"`
	LeafThicknesses []any `toml:"leaf_thicknesses,omitempty"`
	Temperatures    []any `toml:"temperatures,omitempty"`
	LeafAreaIndices []any `toml:"leaf_area_indices,omitempty"`

	WaterFraction  *float64 `toml:"water_fraction,omitempty"`
	DryMassDensity *float64 `toml:"dry_mass_density,omitempty"`

	Uniform *UniformSection `toml:"uniform,omitempty"`
	Layers  []LayerSection  `toml:"layer,omitempty"`
}

// UniformSection is the [canopy.uniform] table.
type UniformSection struct {
	Layers         int     `toml:"layers"`
	LayerThickness float64 `toml:"layer_thickness,omitempty"`
	TotalThickness float64 `toml:"total_thickness,omitempty"`
	LeafAreaIndex  float64 `toml:"leaf_area_index"`
	LeafThickness  float64 `toml:"leaf_thickness"`
	Temperature    float64 `toml:"temperature"`
}

// LayerSection is one [[canopy.layer]] entry, listed bottom first.
type LayerSection struct {
	Thickness      float64  `toml:"thickness"`
	LeafAreaIndex  float64  `toml:"leaf_area_index"`
	LeafThickness  float64  `toml:"leaf_thickness"`
	Temperature    float64  `toml:"temperature"`
	WaterFraction  *float64 `toml:"water_fraction,omitempty"`
	DryMassDensity *float64 `toml:"dry_mass_density,omitempty"`
}

// SoilSection is the [soil] table. A preset supplies texture and moisture;
// explicit keys override it. sand and clay must be given together.
type SoilSection struct {
	Preset            string   `toml:"preset,omitempty"`
	Model             string   `toml:"model,omitempty"`
	Temperature       *float64 `toml:"temperature,omitempty"`
	Moisture          *float64 `toml:"moisture,omitempty"`
	Sand              *float64 `toml:"sand,omitempty"`
	Clay              *float64 `toml:"clay,omitempty"`
	RMSHeight         *float64 `toml:"rms_height,omitempty"`
	CorrelationLength *float64 `toml:"correlation_length,omitempty"`
	BulkDensity       *float64 `toml:"bulk_density,omitempty"`
	SpecificDensity   *float64 `toml:"specific_density,omitempty"`
}

// SensorSection is the [sensor] table. Without a preset, frequencies and
// angles are required.
type SensorSection struct {
	Preset        string    `toml:"preset,omitempty"`
	Name          string    `toml:"name,omitempty"`
	Frequencies   []float64 `toml:"frequencies,omitempty"`
	Angles        []float64 `toml:"angles,omitempty"`
	Polarizations []string  `toml:"polarizations,omitempty"`
}

// Example returns a small, valid scene used by `canort init`.
func Example() Document {
	moisture := 0.25
	return Document{
		Name:        "maize",
		Description: "three-layer maize canopy over loam, seen by SMAP",
		Canopy: CanopySection{
			Thicknesses:     []any{0.5, 1.0, 1.0},
			LeafThicknesses: []any{0.0002, 0.0002, 0.0002},
			Temperatures:    []any{293.15, 294.15, 295.15},
			LeafAreaIndices: []any{0.2, 0.5, 0.8},
		},
		Soil: &SoilSection{
			Preset:   "loamy",
			Moisture: &moisture,
		},
		Sensor: &SensorSection{
			Preset: "SMAP",
		},
	}
}
