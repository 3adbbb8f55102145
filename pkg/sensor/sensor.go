// Package sensor describes passive microwave radiometers: channel
// frequencies, incidence angles and polarizations.
//
// [New] builds a generic sensor, [Passive] additionally rejects frequencies
// below the microwave range, and [Preset] returns the configuration of a
// known spaceborne radiometer (AMSR-E, SMAP, ...).
package sensor

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/jihenghu/canort/pkg/constants"
	"github.com/jihenghu/canort/pkg/errors"
)

// Field names used in validation errors and scene files.
const (
	FieldFrequencies   = "frequencies"
	FieldAngles        = "angles"
	FieldPolarizations = "polarizations"
)

// Polarization is a linear receive polarization.
type Polarization string

const (
	Vertical   Polarization = "V"
	Horizontal Polarization = "H"
)

// ParsePolarization accepts "V" or "H" in either case.
func ParsePolarization(s string) (Polarization, error) {
	switch p := Polarization(strings.ToUpper(strings.TrimSpace(s))); p {
	case Vertical, Horizontal:
		return p, nil
	}
	return "", errors.Field(errors.ErrCodeInvalidParameter, FieldPolarizations,
		"unknown polarization %q (want V or H)", s)
}

// Sensor is a validated radiometer configuration. Frequencies are in GHz and
// angles in degrees from nadir.
type Sensor struct {
	name          string
	frequencies   []float64
	angles        []float64
	polarizations []Polarization
}

type config struct {
	name          string
	frequencies   []float64
	angles        []float64
	polarizations []Polarization
}

// Option configures a Sensor. Options are applied after the positional
// arguments of New, so later values win.
type Option func(*config)

// WithName labels the sensor.
func WithName(name string) Option { return func(c *config) { c.name = name } }

// WithPolarizations replaces the default V and H pair.
func WithPolarizations(ps ...Polarization) Option {
	return func(c *config) { c.polarizations = slices.Clone(ps) }
}

// WithFrequencies replaces the channel frequencies, in GHz.
func WithFrequencies(fs ...float64) Option {
	return func(c *config) { c.frequencies = slices.Clone(fs) }
}

// WithAngles replaces the incidence angles, in degrees.
func WithAngles(as ...float64) Option {
	return func(c *config) { c.angles = slices.Clone(as) }
}

// New builds a sensor observing at every frequency and angle given. Each
// frequency must be positive and each angle within [0, 90] degrees.
func New(frequencies, angles []float64, opts ...Option) (*Sensor, error) {
	c := config{
		frequencies:   slices.Clone(frequencies),
		angles:        slices.Clone(angles),
		polarizations: []Polarization{Vertical, Horizontal},
	}
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &Sensor{
		name:          c.name,
		frequencies:   c.frequencies,
		angles:        c.angles,
		polarizations: c.polarizations,
	}, nil
}

// Passive is New plus a check that every frequency lies in the microwave
// range. A frequency under 0.3 GHz usually means it was given in Hz or MHz.
func Passive(frequencies, angles []float64, opts ...Option) (*Sensor, error) {
	s, err := New(frequencies, angles, opts...)
	if err != nil {
		return nil, err
	}
	if lo := floats.Min(s.frequencies); lo < constants.MinMicrowaveFrequency {
		return nil, errors.Field(errors.ErrCodeInvalidParameter, FieldFrequencies,
			"%g GHz is not in the microwave range (check units are GHz)", lo)
	}
	return s, nil
}

func (c *config) validate() error {
	if len(c.frequencies) == 0 {
		return errors.Field(errors.ErrCodeInvalidParameter, FieldFrequencies, "at least one frequency is required")
	}
	for i, f := range c.frequencies {
		if err := errors.ValidatePositive(FieldFrequencies, f); err != nil {
			return errors.AtIndex(err, FieldFrequencies, i)
		}
	}
	if len(c.angles) == 0 {
		return errors.Field(errors.ErrCodeInvalidParameter, FieldAngles, "at least one angle is required")
	}
	for i, a := range c.angles {
		if err := errors.ValidateRange(FieldAngles, a, 0, constants.MaxIncidenceAngle); err != nil {
			return errors.AtIndex(err, FieldAngles, i)
		}
	}
	if len(c.polarizations) == 0 {
		return errors.Field(errors.ErrCodeInvalidParameter, FieldPolarizations, "at least one polarization is required")
	}
	for i, p := range c.polarizations {
		parsed, err := ParsePolarization(string(p))
		if err != nil {
			return errors.AtIndex(err, FieldPolarizations, i)
		}
		c.polarizations[i] = parsed
	}
	return nil
}

func (s *Sensor) Name() string { return s.name }

// Frequencies returns the channel frequencies in GHz.
func (s *Sensor) Frequencies() []float64 { return slices.Clone(s.frequencies) }

// Angles returns the incidence angles in degrees.
func (s *Sensor) Angles() []float64 { return slices.Clone(s.angles) }

func (s *Sensor) Polarizations() []Polarization { return slices.Clone(s.polarizations) }

// Wavelengths returns the free-space wavelength of each channel in meters.
func (s *Sensor) Wavelengths() []float64 {
	out := make([]float64, len(s.frequencies))
	for i, f := range s.frequencies {
		out[i] = constants.SpeedOfLight / (f * constants.GHz)
	}
	return out
}

// Wavenumbers returns 2π/λ for each channel in rad/m.
func (s *Sensor) Wavenumbers() []float64 {
	out := make([]float64, len(s.frequencies))
	return floats.ScaleTo(out, 2*math.Pi*constants.GHz/constants.SpeedOfLight, s.frequencies)
}

// Cosines returns cos θ for each incidence angle.
func (s *Sensor) Cosines() []float64 {
	out := make([]float64, len(s.angles))
	for i, a := range s.angles {
		out[i] = math.Cos(a * math.Pi / 180)
	}
	return out
}

// Channels returns the number of frequency and polarization combinations.
func (s *Sensor) Channels() int { return len(s.frequencies) * len(s.polarizations) }

func (s *Sensor) String() string {
	var b strings.Builder
	b.WriteString("Sensor(")
	if s.name != "" {
		fmt.Fprintf(&b, "name=%s, ", s.name)
	}
	fmt.Fprintf(&b, "frequencies=%v GHz, angles=%v deg, polarizations=%v)", s.frequencies, s.angles, s.polarizations)
	return b.String()
}
