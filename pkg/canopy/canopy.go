package canopy

import (
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/jihenghu/canort/pkg/constants"
	"github.com/jihenghu/canort/pkg/errors"
)

// Canopy is an ordered, non-empty stack of layers. Index 0 is the
// ground-adjacent layer.
//
// The zero value is not usable; use [New]. A Canopy is immutable and safe for
// concurrent readers.
type Canopy struct {
	layers []Layer
	total  float64 // m, top of the highest layer
}

// New builds a canopy from layers ordered bottom to top. The input slice is
// copied; the caller keeps ownership of it.
//
// Every layer's elevation is reassigned so that the stack starts at ground
// level and adjacent layers share a boundary. Returns ErrCodeEmptyCanopy
// when layers is empty, and ErrCodeInvalidParameter (located at the offending
// index) when a layer was not produced by [NewLayer].
func New(layers []Layer) (*Canopy, error) {
	if len(layers) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyCanopy, "canopy requires at least one layer")
	}
	for i, l := range layers {
		if err := l.validate(); err != nil {
			return nil, errors.AtIndex(err, "layers", i)
		}
	}
	return stack(layers), nil
}

// stack assigns cumulative elevations to already validated layers.
func stack(layers []Layer) *Canopy {
	out := make([]Layer, len(layers))
	var z float64
	for i, l := range layers {
		out[i] = l.withHeight(z)
		z += l.thickness
	}
	return &Canopy{layers: out, total: z}
}

// LayerCount returns the number of layers.
func (c *Canopy) LayerCount() int { return len(c.layers) }

// TotalHeight returns the sum of the layer thicknesses in meters, which is
// also the elevation of the canopy top.
func (c *Canopy) TotalHeight() float64 { return c.total }

// Layers returns a copy of the layers, bottom to top.
func (c *Canopy) Layers() []Layer { return slices.Clone(c.layers) }

// LayerAt returns the layer at index i (0 = bottom). Returns
// ErrCodeOutOfRange when i is not in [0, LayerCount()).
func (c *Canopy) LayerAt(i int) (Layer, error) {
	if i < 0 || i >= len(c.layers) {
		return Layer{}, errors.New(errors.ErrCodeOutOfRange, "layer index %d out of range [0, %d)", i, len(c.layers))
	}
	return c.layers[i], nil
}

// IndexAtHeight returns the index of the layer containing elevation z.
//
// Each layer covers [bottom, top); the top layer covers [bottom, top]. An
// elevation on an internal boundary therefore belongs to the layer above it.
// Returns ErrCodeOutOfRange when z < 0 or z > TotalHeight, and
// ErrCodeInvalidType when z is NaN.
func (c *Canopy) IndexAtHeight(z float64) (int, error) {
	if math.IsNaN(z) {
		return 0, errors.Field(errors.ErrCodeInvalidType, "z", "elevation is not a number")
	}
	if z < 0 || z > c.total {
		return 0, errors.Field(errors.ErrCodeOutOfRange, "z", "elevation %g outside canopy [0, %g]", z, c.total)
	}
	// First layer whose bottom lies above z; the one before it contains z.
	i := sort.Search(len(c.layers), func(i int) bool { return c.layers[i].height > z })
	return i - 1, nil
}

// LayerAtHeight returns the layer containing elevation z. See
// [Canopy.IndexAtHeight] for the interval rule and errors.
func (c *Canopy) LayerAtHeight(z float64) (Layer, error) {
	i, err := c.IndexAtHeight(z)
	if err != nil {
		return Layer{}, err
	}
	return c.layers[i], nil
}

func (c *Canopy) collect(f func(Layer) float64) []float64 {
	out := make([]float64, len(c.layers))
	for i, l := range c.layers {
		out[i] = f(l)
	}
	return out
}

// Thicknesses returns the layer thicknesses, bottom to top.
func (c *Canopy) Thicknesses() []float64 { return c.collect(Layer.Thickness) }

// Bottoms returns the lower boundary elevation of each layer.
func (c *Canopy) Bottoms() []float64 { return c.collect(Layer.Bottom) }

// Tops returns the upper boundary elevation of each layer.
func (c *Canopy) Tops() []float64 { return c.collect(Layer.Top) }

// Middles returns the midpoint elevation of each layer.
func (c *Canopy) Middles() []float64 { return c.collect(Layer.Middle) }

// Interfaces returns the LayerCount()+1 boundary elevations, starting at the
// ground (0) and ending at TotalHeight.
func (c *Canopy) Interfaces() []float64 {
	return append([]float64{0}, c.Tops()...)
}

// LeafAreaIndices returns the leaf area index of each layer.
func (c *Canopy) LeafAreaIndices() []float64 { return c.collect(Layer.LeafAreaIndex) }

// LeafThicknesses returns the leaf thickness of each layer.
func (c *Canopy) LeafThicknesses() []float64 { return c.collect(Layer.LeafThickness) }

// Temperatures returns the temperature of each layer.
func (c *Canopy) Temperatures() []float64 { return c.collect(Layer.Temperature) }

// WaterFractions returns the leaf volumetric moisture of each layer.
func (c *Canopy) WaterFractions() []float64 { return c.collect(Layer.WaterFraction) }

// TotalLAI returns the canopy leaf area index, the sum over layers.
func (c *Canopy) TotalLAI() float64 { return floats.Sum(c.LeafAreaIndices()) }

// TotalWaterContent returns the vegetation water content in kg/m².
func (c *Canopy) TotalWaterContent() float64 { return floats.Sum(c.collect(Layer.WaterContent)) }

// TotalBiomass returns the dry above-ground biomass in kg/m².
func (c *Canopy) TotalBiomass() float64 { return floats.Sum(c.collect(Layer.Biomass)) }

// MeanLFMC returns the canopy live fuel moisture content in kg/kg, the ratio
// of total water content to total biomass. Zero when there is no biomass.
func (c *Canopy) MeanLFMC() float64 {
	agb := c.TotalBiomass()
	if agb == 0 {
		return 0
	}
	return c.TotalWaterContent() / agb
}

// MeanTemperature returns the thickness-weighted mean temperature in kelvin.
func (c *Canopy) MeanTemperature() float64 {
	return stat.Mean(c.Temperatures(), c.Thicknesses())
}

// Append returns a new canopy with l stacked on top.
func (c *Canopy) Append(l Layer) (*Canopy, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	return stack(append(c.Layers(), l)), nil
}

// Remove returns a new canopy without the layer at index i. Layers above it
// move down. Removing the last remaining layer returns ErrCodeEmptyCanopy.
func (c *Canopy) Remove(i int) (*Canopy, error) {
	if _, err := c.LayerAt(i); err != nil {
		return nil, err
	}
	if len(c.layers) == 1 {
		return nil, errors.New(errors.ErrCodeEmptyCanopy, "cannot remove the only layer")
	}
	return stack(slices.Delete(c.Layers(), i, i+1)), nil
}

// Replace returns a new canopy with the layer at index i replaced by l.
func (c *Canopy) Replace(i int, l Layer) (*Canopy, error) {
	if _, err := c.LayerAt(i); err != nil {
		return nil, err
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	layers := c.Layers()
	layers[i] = l
	return stack(layers), nil
}

// Resize returns a new canopy with exactly n layers. Surplus layers are
// dropped from the top; missing layers are added on top with a thickness of
// 1 m, a temperature of 300 K and default leaf parameters.
func (c *Canopy) Resize(n int) (*Canopy, error) {
	if n < 1 {
		return nil, errors.New(errors.ErrCodeEmptyCanopy, "canopy requires at least one layer, got %d", n)
	}
	if n <= len(c.layers) {
		return stack(c.layers[:n]), nil
	}
	filler, err := NewLayer(
		constants.ResizeLayerThickness,
		constants.DefaultLAI,
		constants.DefaultLeafThickness,
		constants.ResizeLayerTemperature,
	)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "default layer")
	}
	layers := c.Layers()
	for len(layers) < n {
		layers = append(layers, filler)
	}
	return stack(layers), nil
}

// Stack returns a new canopy with the layers of upper placed on top of the
// layers of lower. Neither input is modified.
func Stack(lower, upper *Canopy) *Canopy {
	return stack(slices.Concat(lower.layers, upper.layers))
}
