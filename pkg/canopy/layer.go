package canopy

import (
	"fmt"

	"github.com/jihenghu/canort/pkg/constants"
	"github.com/jihenghu/canort/pkg/errors"
)

// Field names used in validation errors.
const (
	FieldThickness      = "thickness"
	FieldHeight         = "height"
	FieldLeafAreaIndex  = "leaf_area_index"
	FieldLeafThickness  = "leaf_thickness"
	FieldTemperature    = "temperature"
	FieldWaterFraction  = "water_fraction"
	FieldDryMassDensity = "dry_mass_density"
)

// Layer is one horizontal slab of the canopy with uniform parameters.
//
// The zero value is not a valid layer; use [NewLayer].
type Layer struct {
	thickness      float64 // m
	height         float64 // m, elevation of the lower boundary
	leafAreaIndex  float64 // m²/m²
	leafThickness  float64 // m
	temperature    float64 // K
	waterFraction  float64 // m³/m³
	dryMassDensity float64 // g/cm³
}

// LayerOption sets an optional layer parameter.
type LayerOption func(*Layer)

// WithHeight sets the elevation of the layer's lower boundary. It only holds
// for a standalone layer; [New] reassigns it when stacking.
func WithHeight(h float64) LayerOption {
	return func(l *Layer) { l.height = h }
}

// WithWaterFraction sets the leaf volumetric moisture content (m³/m³).
func WithWaterFraction(v float64) LayerOption {
	return func(l *Layer) { l.waterFraction = v }
}

// WithDryMassDensity sets the density of the dry leaf material (g/cm³).
func WithDryMassDensity(d float64) LayerOption {
	return func(l *Layer) { l.dryMassDensity = d }
}

// NewLayer constructs a validated layer.
//
// thickness, leafThickness and temperature must be strictly positive and
// leafAreaIndex must be non-negative; violations return an
// ErrCodeInvalidParameter error naming the field. NaN or infinite values
// return ErrCodeInvalidType. Nothing is clamped.
func NewLayer(thickness, leafAreaIndex, leafThickness, temperature float64, opts ...LayerOption) (Layer, error) {
	l := Layer{
		thickness:      thickness,
		leafAreaIndex:  leafAreaIndex,
		leafThickness:  leafThickness,
		temperature:    temperature,
		waterFraction:  constants.DefaultWaterFraction,
		dryMassDensity: constants.DefaultDryMassDensity,
	}
	for _, opt := range opts {
		opt(&l)
	}
	if err := l.validate(); err != nil {
		return Layer{}, err
	}
	return l, nil
}

func (l Layer) validate() error {
	checks := []error{
		errors.ValidatePositive(FieldThickness, l.thickness),
		errors.ValidateFinite(FieldHeight, l.height),
		errors.ValidateNonNegative(FieldLeafAreaIndex, l.leafAreaIndex),
		errors.ValidatePositive(FieldLeafThickness, l.leafThickness),
		errors.ValidatePositive(FieldTemperature, l.temperature),
		errors.ValidateFraction(FieldWaterFraction, l.waterFraction),
		errors.ValidatePositive(FieldDryMassDensity, l.dryMassDensity),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// Thickness returns the geometric thickness in meters.
func (l Layer) Thickness() float64 { return l.thickness }

// Height returns the elevation of the lower boundary in meters.
func (l Layer) Height() float64 { return l.height }

// Bottom is an alias for Height.
func (l Layer) Bottom() float64 { return l.height }

// Top returns the elevation of the upper boundary in meters.
func (l Layer) Top() float64 { return l.height + l.thickness }

// Middle returns the elevation of the layer midpoint in meters.
func (l Layer) Middle() float64 { return l.height + l.thickness/2 }

// LeafAreaIndex returns the one-sided leaf area per unit ground area.
func (l Layer) LeafAreaIndex() float64 { return l.leafAreaIndex }

// LeafThickness returns the representative scatterer thickness in meters.
func (l Layer) LeafThickness() float64 { return l.leafThickness }

// Temperature returns the physical temperature in kelvin.
func (l Layer) Temperature() float64 { return l.temperature }

// WaterFraction returns the leaf volumetric moisture content in m³/m³.
func (l Layer) WaterFraction() float64 { return l.waterFraction }

// DryMassDensity returns the dry leaf material density in g/cm³.
func (l Layer) DryMassDensity() float64 { return l.dryMassDensity }

// WaterContent returns the leaf water mass per unit ground area in kg/m²:
// Vw · ρw · LAI · Ld.
func (l Layer) WaterContent() float64 {
	return l.waterFraction * constants.WaterDensityKgM3 * l.leafAreaIndex * l.leafThickness
}

// Biomass returns the dry above-ground biomass per unit ground area in kg/m²:
// (1 − Vw) · ρd · LAI · Ld.
func (l Layer) Biomass() float64 {
	return (1 - l.waterFraction) * l.dryMassDensity * constants.GCm3ToKgM3 * l.leafAreaIndex * l.leafThickness
}

// LFMC returns the live fuel moisture content (water mass over dry mass) in
// kg/kg. A layer without biomass has an LFMC of zero.
func (l Layer) LFMC() float64 {
	agb := l.Biomass()
	if agb == 0 {
		return 0
	}
	return l.WaterContent() / agb
}

// withHeight returns a copy of l with its lower boundary at h.
func (l Layer) withHeight(h float64) Layer {
	l.height = h
	return l
}

// String returns a one-line summary of the layer.
func (l Layer) String() string {
	return fmt.Sprintf(
		"Layer(bottom=%.2fm, thickness=%.2fm, LAI=%.2f, leaf_thickness=%.3gm, temperature=%.2fK, water_fraction=%.3f, dry_mass_density=%.3fg/cm³)",
		l.height, l.thickness, l.leafAreaIndex, l.leafThickness, l.temperature, l.waterFraction, l.dryMassDensity,
	)
}
