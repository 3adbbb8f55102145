package dielectric

import (
	"math"
	"slices"
	"strings"

	"github.com/jihenghu/canort/pkg/errors"
)

// Soil dielectric model names.
const (
	Dobson  = "dobson"
	Mironov = "mironov"
	Wang    = "wang"
)

// SoilProperties is the view of a soil sample a dielectric model needs.
type SoilProperties interface {
	Temperature() float64     // K
	Moisture() float64        // volumetric, m³/m³
	Sand() float64            // fraction
	Clay() float64            // fraction
	BulkDensity() float64     // g/cm³
	SpecificDensity() float64 // g/cm³
}

// SoilFunc computes the permittivity of a soil sample at a frequency in GHz.
type SoilFunc func(s SoilProperties, frequencyGHz float64) complex128

var soilModels = map[string]SoilFunc{
	Dobson:  dobson,
	Mironov: linearMixing,
	Wang:    linearMixing,
}

// Soil returns the named soil model. Names are case-insensitive. An unknown
// name fails with ErrCodeUnsupported.
func Soil(model string) (SoilFunc, error) {
	fn, ok := soilModels[strings.ToLower(model)]
	if !ok {
		return nil, errors.Field(errors.ErrCodeUnsupported, "dielectric_model",
			"unknown soil dielectric model %q (available: %s)", model, strings.Join(SoilModels(), ", "))
	}
	return fn, nil
}

// SoilModels lists the registered soil model names in sorted order.
func SoilModels() []string {
	names := make([]string, 0, len(soilModels))
	for name := range soilModels {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// dobson is the semi-empirical mixing of Dobson et al. (1985) in its
// simplified single-exponent form: ε = 1 + 0.65ρb + m^0.65·εw − m.
func dobson(s SoilProperties, frequencyGHz float64) complex128 {
	m := s.Moisture()
	ew := Water(frequencyGHz, s.Temperature())
	return complex(1+0.65*s.BulkDensity()-m, 0) + complex(math.Pow(m, 0.65), 0)*ew
}

// linearMixing weights water against vacuum by volumetric moisture:
// ε = 1 + (εw − 1)·m.
func linearMixing(s SoilProperties, frequencyGHz float64) complex128 {
	ew := Water(frequencyGHz, s.Temperature())
	return 1 + (ew-1)*complex(s.Moisture(), 0)
}
