package scene

import (
	"fmt"

	"github.com/jihenghu/canort/pkg/canopy"
	"github.com/jihenghu/canort/pkg/constants"
	"github.com/jihenghu/canort/pkg/errors"
	"github.com/jihenghu/canort/pkg/medium"
	"github.com/jihenghu/canort/pkg/sensor"
	"github.com/jihenghu/canort/pkg/soil"
)

func (c CanopySection) hasArrays() bool {
	return c.Thicknesses != nil || c.LeafThicknesses != nil || c.Temperatures != nil || c.LeafAreaIndices != nil
}

// layerOptions returns the canopy-wide options shared by every layer.
func (c CanopySection) layerOptions() []canopy.LayerOption {
	var opts []canopy.LayerOption
	if c.WaterFraction != nil {
		opts = append(opts, canopy.WithWaterFraction(*c.WaterFraction))
	}
	if c.DryMassDensity != nil {
		opts = append(opts, canopy.WithDryMassDensity(*c.DryMassDensity))
	}
	return opts
}

func buildCanopy(c CanopySection) (*canopy.Canopy, error) {
	forms := 0
	for _, present := range []bool{c.hasArrays(), c.Uniform != nil, len(c.Layers) > 0} {
		if present {
			forms++
		}
	}
	switch {
	case forms == 0:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"give layer arrays, a [canopy.uniform] table or [[canopy.layer]] entries")
	case forms > 1:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"layer arrays, [canopy.uniform] and [[canopy.layer]] are mutually exclusive")
	}

	opts := c.layerOptions()
	switch {
	case c.Uniform != nil:
		u := c.Uniform
		return medium.Uniform(medium.UniformCanopy{
			Layers:         u.Layers,
			LayerThickness: u.LayerThickness,
			TotalThickness: u.TotalThickness,
			LeafAreaIndex:  u.LeafAreaIndex,
			LeafThickness:  u.LeafThickness,
			Temperature:    u.Temperature,
		}, opts...)
	case len(c.Layers) > 0:
		return buildLayers(c.Layers, opts)
	}
	return medium.MakeCanopyValues(c.Thicknesses, c.LeafThicknesses, c.Temperatures, c.LeafAreaIndices, opts...)
}

func buildLayers(sections []LayerSection, shared []canopy.LayerOption) (*canopy.Canopy, error) {
	layers := make([]canopy.Layer, len(sections))
	for i, s := range sections {
		opts := append([]canopy.LayerOption(nil), shared...)
		if s.WaterFraction != nil {
			opts = append(opts, canopy.WithWaterFraction(*s.WaterFraction))
		}
		if s.DryMassDensity != nil {
			opts = append(opts, canopy.WithDryMassDensity(*s.DryMassDensity))
		}
		l, err := canopy.NewLayer(s.Thickness, s.LeafAreaIndex, s.LeafThickness, s.Temperature, opts...)
		if err != nil {
			return nil, errors.Prefix(err, fmt.Sprintf("layer[%d]", i))
		}
		layers[i] = l
	}
	return canopy.New(layers)
}

func buildSoil(s SoilSection) (*soil.Soil, error) {
	if (s.Sand == nil) != (s.Clay == nil) {
		return nil, errors.Field(errors.ErrCodeInvalidConfig, "texture", "sand and clay must be given together")
	}

	var opts []soil.Option
	if s.Model != "" {
		opts = append(opts, soil.WithModel(s.Model))
	}
	if s.Moisture != nil {
		opts = append(opts, soil.WithMoisture(*s.Moisture))
	}
	if s.Sand != nil {
		opts = append(opts, soil.WithTexture(*s.Sand, *s.Clay))
	}
	if s.RMSHeight != nil || s.CorrelationLength != nil {
		opts = append(opts, soil.WithRoughness(
			valueOr(s.RMSHeight, constants.DefaultRMSHeight),
			valueOr(s.CorrelationLength, constants.DefaultCorrelationLength)))
	}
	if s.BulkDensity != nil {
		opts = append(opts, soil.WithBulkDensity(*s.BulkDensity))
	}
	if s.SpecificDensity != nil {
		opts = append(opts, soil.WithSpecificDensity(*s.SpecificDensity))
	}

	temperature := valueOr(s.Temperature, constants.DefaultSoilTemperature)
	if s.Preset != "" {
		return soil.Preset(s.Preset, temperature, opts...)
	}
	return soil.New(temperature, opts...)
}

func buildSensor(s SensorSection) (*sensor.Sensor, error) {
	var opts []sensor.Option
	if s.Name != "" {
		opts = append(opts, sensor.WithName(s.Name))
	}
	if len(s.Polarizations) > 0 {
		ps := make([]sensor.Polarization, len(s.Polarizations))
		for i, p := range s.Polarizations {
			parsed, err := sensor.ParsePolarization(p)
			if err != nil {
				return nil, errors.AtIndex(err, sensor.FieldPolarizations, i)
			}
			ps[i] = parsed
		}
		opts = append(opts, sensor.WithPolarizations(ps...))
	}

	if s.Preset != "" {
		if s.Frequencies != nil {
			opts = append(opts, sensor.WithFrequencies(s.Frequencies...))
		}
		if s.Angles != nil {
			opts = append(opts, sensor.WithAngles(s.Angles...))
		}
		return sensor.Preset(s.Preset, opts...)
	}
	return sensor.Passive(s.Frequencies, s.Angles, opts...)
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
