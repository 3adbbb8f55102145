// Package soil describes the rough soil surface beneath a canopy: its
// temperature, moisture, texture, roughness and densities, and the dielectric
// model used to turn those into a permittivity.
//
// A [Soil] is validated once at construction and is immutable afterwards.
// The dielectric model is resolved at construction too, so an unknown model
// name is reported by [New] rather than on first use.
package soil

import (
	"fmt"

	"github.com/jihenghu/canort/pkg/constants"
	"github.com/jihenghu/canort/pkg/dielectric"
	"github.com/jihenghu/canort/pkg/errors"
)

// Field names used in validation errors and scene files.
const (
	FieldTemperature       = "temperature"
	FieldMoisture          = "moisture"
	FieldSand              = "sand"
	FieldClay              = "clay"
	FieldRMSHeight         = "rms_height"
	FieldCorrelationLength = "correlation_length"
	FieldBulkDensity       = "bulk_density"
	FieldSpecificDensity   = "specific_density"
)

// Soil is a validated soil surface.
type Soil struct {
	temperature       float64 // K
	moisture          float64 // m³/m³
	sand              float64
	clay              float64
	rmsHeight         float64 // m
	correlationLength float64 // m
	bulkDensity       float64 // g/cm³
	specificDensity   float64 // g/cm³
	model             string
	permittivity      dielectric.SoilFunc
}

// Option configures a Soil.
type Option func(*Soil)

// WithMoisture sets the volumetric moisture in m³/m³.
func WithMoisture(m float64) Option { return func(s *Soil) { s.moisture = m } }

// WithTexture sets the sand and clay fractions. Silt is the remainder.
func WithTexture(sand, clay float64) Option {
	return func(s *Soil) { s.sand, s.clay = sand, clay }
}

// WithRoughness sets the RMS height and correlation length in meters.
func WithRoughness(rmsHeight, correlationLength float64) Option {
	return func(s *Soil) { s.rmsHeight, s.correlationLength = rmsHeight, correlationLength }
}

// WithBulkDensity sets the dry bulk density in g/cm³.
func WithBulkDensity(d float64) Option { return func(s *Soil) { s.bulkDensity = d } }

// WithSpecificDensity sets the mineral specific density in g/cm³.
func WithSpecificDensity(d float64) Option { return func(s *Soil) { s.specificDensity = d } }

// WithModel selects the dielectric model by name (see dielectric.SoilModels).
func WithModel(name string) Option { return func(s *Soil) { s.model = name } }

// New builds a soil at temperature kelvin. Unset properties take the package
// defaults from pkg/constants and the Dobson dielectric model.
func New(temperature float64, opts ...Option) (*Soil, error) {
	s := &Soil{
		temperature:       temperature,
		moisture:          constants.DefaultSoilMoisture,
		sand:              constants.DefaultSandFraction,
		clay:              constants.DefaultClayFraction,
		rmsHeight:         constants.DefaultRMSHeight,
		correlationLength: constants.DefaultCorrelationLength,
		bulkDensity:       constants.DefaultSoilBulkDensity,
		specificDensity:   constants.DefaultSoilSpecificDensity,
		model:             dielectric.Dobson,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	fn, err := dielectric.Soil(s.model)
	if err != nil {
		return nil, err
	}
	s.permittivity = fn
	return s, nil
}

func (s *Soil) validate() error {
	checks := []error{
		errors.ValidatePositive(FieldTemperature, s.temperature),
		errors.ValidateFraction(FieldMoisture, s.moisture),
		errors.ValidateFraction(FieldSand, s.sand),
		errors.ValidateFraction(FieldClay, s.clay),
		errors.ValidatePositive(FieldRMSHeight, s.rmsHeight),
		errors.ValidatePositive(FieldCorrelationLength, s.correlationLength),
		errors.ValidatePositive(FieldBulkDensity, s.bulkDensity),
		errors.ValidatePositive(FieldSpecificDensity, s.specificDensity),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	if s.sand+s.clay > 1 {
		return errors.Field(errors.ErrCodeInvalidParameter, "texture",
			"sand (%g) and clay (%g) fractions sum above 1", s.sand, s.clay)
	}
	return nil
}

func (s *Soil) Temperature() float64       { return s.temperature }
func (s *Soil) Moisture() float64          { return s.moisture }
func (s *Soil) Sand() float64              { return s.sand }
func (s *Soil) Clay() float64              { return s.clay }
func (s *Soil) RMSHeight() float64         { return s.rmsHeight }
func (s *Soil) CorrelationLength() float64 { return s.correlationLength }
func (s *Soil) BulkDensity() float64       { return s.bulkDensity }
func (s *Soil) SpecificDensity() float64   { return s.specificDensity }
func (s *Soil) Model() string              { return s.model }

// Silt returns the silt fraction, 1 − sand − clay.
func (s *Soil) Silt() float64 { return 1 - s.sand - s.clay }

// Porosity returns 1 − bulk/specific density.
func (s *Soil) Porosity() float64 { return 1 - s.bulkDensity/s.specificDensity }

// Dielectric returns the soil permittivity at frequencyGHz.
func (s *Soil) Dielectric(frequencyGHz float64) complex128 {
	return s.permittivity(s, frequencyGHz)
}

// Dielectrics evaluates Dielectric at each frequency.
func (s *Soil) Dielectrics(frequenciesGHz []float64) []complex128 {
	out := make([]complex128, len(frequenciesGHz))
	for i, f := range frequenciesGHz {
		out[i] = s.Dielectric(f)
	}
	return out
}

func (s *Soil) String() string {
	return fmt.Sprintf("Soil(temperature=%.2fK, rms_height=%.3fm, correlation_length=%.3fm, moisture=%.3f, sand=%.3f, clay=%.3f, silt=%.3f, model=%s)",
		s.temperature, s.rmsHeight, s.correlationLength, s.moisture, s.sand, s.clay, s.Silt(), s.model)
}
