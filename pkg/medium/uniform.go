package medium

import (
	"slices"

	"github.com/jihenghu/canort/pkg/canopy"
	"github.com/jihenghu/canort/pkg/errors"
)

// UniformCanopy describes N identical layers. Exactly one of LayerThickness
// and TotalThickness must be set; with TotalThickness each layer is
// TotalThickness/Layers thick.
type UniformCanopy struct {
	Layers         int
	LayerThickness float64 // m
	TotalThickness float64 // m
	LeafAreaIndex  float64 // per layer, m²/m²
	LeafThickness  float64 // m
	Temperature    float64 // K
}

// perLayerThickness resolves the thickness shared by every layer.
func (u UniformCanopy) perLayerThickness() (float64, error) {
	switch {
	case u.LayerThickness != 0 && u.TotalThickness != 0:
		return 0, errors.Field(errors.ErrCodeInvalidParameter, "thickness",
			"set either layer thickness or total thickness, not both")
	case u.LayerThickness != 0:
		return u.LayerThickness, nil
	case u.TotalThickness != 0:
		if err := errors.ValidatePositive("total_thickness", u.TotalThickness); err != nil {
			return 0, err
		}
		return u.TotalThickness / float64(u.Layers), nil
	}
	return 0, errors.Field(errors.ErrCodeInvalidParameter, "thickness",
		"one of layer thickness or total thickness is required")
}

// Uniform builds a canopy of u.Layers identical layers. The scalar parameters
// are replicated into arrays and passed through [MakeCanopy]'s construction
// path, so the result is identical to calling MakeCanopy with those arrays.
// opts apply to every layer.
func Uniform(u UniformCanopy, opts ...canopy.LayerOption) (*canopy.Canopy, error) {
	if u.Layers < 0 {
		return nil, errors.Field(errors.ErrCodeInvalidParameter, "layers", "must be non-negative, got %d", u.Layers)
	}
	if u.Layers == 0 {
		return nil, errors.New(errors.ErrCodeEmptyCanopy, "canopy requires at least one layer")
	}
	thickness, err := u.perLayerThickness()
	if err != nil {
		return nil, err
	}
	return makeCanopy(columns{
		thicknesses:     slices.Repeat([]float64{thickness}, u.Layers),
		leafThicknesses: slices.Repeat([]float64{u.LeafThickness}, u.Layers),
		temperatures:    slices.Repeat([]float64{u.Temperature}, u.Layers),
		leafAreaIndices: slices.Repeat([]float64{u.LeafAreaIndex}, u.Layers),
	}, opts)
}
