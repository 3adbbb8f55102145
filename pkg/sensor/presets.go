package sensor

import (
	"slices"
	"strings"

	"github.com/jihenghu/canort/pkg/errors"
)

// Mission is the nominal configuration of a spaceborne radiometer.
type Mission struct {
	Name        string
	Frequencies []float64 // GHz
	Angle       float64   // degrees
}

// Missions in listing order.
var missions = []Mission{
	{Name: "AMSR-E", Frequencies: []float64{6.925, 10.65, 18.7, 23.8, 36.5, 89.0}, Angle: 55.0},
	{Name: "AMSR2", Frequencies: []float64{6.925, 7.3, 10.65, 18.7, 23.8, 36.5, 89.0}, Angle: 55.0},
	{Name: "SMAP", Frequencies: []float64{1.41}, Angle: 40.0},
	{Name: "SMOS", Frequencies: []float64{1.4}, Angle: 42.5},
	{Name: "GMI", Frequencies: []float64{10.65, 18.7, 23.8, 36.5, 89.0, 166.0, 183.31}, Angle: 52.8},
	{Name: "SSMIS", Frequencies: []float64{19.35, 22.235, 37.0, 91.655, 150.0, 183.31}, Angle: 53.1},
	{Name: "MWRI", Frequencies: []float64{10.65, 18.7, 23.8, 36.5, 89.0}, Angle: 55.0},
}

// Missions returns the known radiometers.
func Missions() []Mission {
	out := make([]Mission, len(missions))
	for i, m := range missions {
		m.Frequencies = slices.Clone(m.Frequencies)
		out[i] = m
	}
	return out
}

// LookupMission finds a mission by name, ignoring case and dashes
// ("amsre" matches "AMSR-E").
func LookupMission(name string) (Mission, bool) {
	key := normalize(name)
	for _, m := range missions {
		if normalize(m.Name) == key {
			m.Frequencies = slices.Clone(m.Frequencies)
			return m, true
		}
	}
	return Mission{}, false
}

func normalize(name string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", ""))
}

// Preset builds a passive sensor with a mission's nominal frequencies and
// angle. opts may override any of them.
func Preset(name string, opts ...Option) (*Sensor, error) {
	m, ok := LookupMission(name)
	if !ok {
		names := make([]string, len(missions))
		for i, m := range missions {
			names[i] = m.Name
		}
		return nil, errors.Field(errors.ErrCodeUnsupported, "preset",
			"unknown sensor %q (available: %s)", name, strings.Join(names, ", "))
	}
	base := []Option{WithName(m.Name)}
	return Passive(m.Frequencies, []float64{m.Angle}, append(base, opts...)...)
}
