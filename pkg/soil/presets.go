package soil

import (
	"slices"
	"strings"

	"github.com/jihenghu/canort/pkg/errors"
)

type preset struct {
	sand, clay, moisture float64
}

var presets = map[string]preset{
	"sandy":  {sand: 0.8, clay: 0.1, moisture: 0.15},
	"clayey": {sand: 0.2, clay: 0.6, moisture: 0.25},
	"loamy":  {sand: 0.4, clay: 0.2, moisture: 0.2},
}

// Preset builds a named soil type. The preset's texture and moisture are
// applied before opts, so any of them can be overridden.
func Preset(name string, temperature float64, opts ...Option) (*Soil, error) {
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, errors.Field(errors.ErrCodeUnsupported, "preset",
			"unknown soil preset %q (available: %s)", name, strings.Join(Presets(), ", "))
	}
	base := []Option{WithTexture(p.sand, p.clay), WithMoisture(p.moisture)}
	return New(temperature, append(base, opts...)...)
}

// Presets lists the soil preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sandy returns an 80% sand, 10% clay soil at 0.15 m³/m³ moisture.
func Sandy(temperature float64, opts ...Option) (*Soil, error) {
	return Preset("sandy", temperature, opts...)
}

// Clayey returns a 20% sand, 60% clay soil at 0.25 m³/m³ moisture.
func Clayey(temperature float64, opts ...Option) (*Soil, error) {
	return Preset("clayey", temperature, opts...)
}

// Loamy returns a 40% sand, 20% clay soil at 0.2 m³/m³ moisture.
func Loamy(temperature float64, opts ...Option) (*Soil, error) {
	return Preset("loamy", temperature, opts...)
}
