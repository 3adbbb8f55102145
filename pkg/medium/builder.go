// Package medium builds validated canopy layers and canopies from raw
// physical parameters.
//
// It is the single entry point at which scalar or array measurements are
// checked before a [canopy.Layer] or [canopy.Canopy] exists:
//
//   - [MakeLayer] builds one layer from scalars.
//   - [MakeCanopy] builds a canopy from four parallel arrays, one element per
//     layer, ordered bottom to top.
//   - [Uniform] replicates one scalar parameter set across N layers.
//   - [MakeCanopyValues] accepts untyped values (for example decoded from a
//     configuration file) and rejects anything that is not a number before
//     building.
//
// Failures are reported immediately with a code from pkg/errors. Array
// failures name the offending array and element index, e.g.
// "INVALID_PARAMETER: thicknesses[2]: must be positive, got -1". Input
// slices are never modified.
package medium

import (
	"github.com/jihenghu/canort/pkg/canopy"
	"github.com/jihenghu/canort/pkg/errors"
)

// Names of the parallel arrays accepted by MakeCanopy, as used in errors and
// configuration files.
const (
	Thicknesses     = "thicknesses"
	LeafThicknesses = "leaf_thicknesses"
	Temperatures    = "temperatures"
	LeafAreaIndices = "leaf_area_indices"
)

// MakeLayer builds a standalone layer whose lower boundary sits at height.
// It applies the same validation as [canopy.NewLayer]. Extra options (water
// fraction, dry mass density) may be supplied; a height option in opts is
// overridden by the height argument.
func MakeLayer(height, thickness, leafAreaIndex, leafThickness, temperature float64, opts ...canopy.LayerOption) (canopy.Layer, error) {
	opts = append(opts[:len(opts):len(opts)], canopy.WithHeight(height))
	return canopy.NewLayer(thickness, leafAreaIndex, leafThickness, temperature, opts...)
}

// MakeCanopy builds a canopy from parallel per-layer arrays ordered bottom to
// top. All arrays must have the same length; the thicknesses array is the
// reference for length mismatches.
//
// Layer i is built as NewLayer(thicknesses[i], leafAreaIndices[i],
// leafThicknesses[i], temperatures[i]) and the resulting sequence is handed
// to [canopy.New], which assigns elevations.
func MakeCanopy(thicknesses, leafThicknesses, temperatures, leafAreaIndices []float64) (*canopy.Canopy, error) {
	return makeCanopy(columns{
		thicknesses:     thicknesses,
		leafThicknesses: leafThicknesses,
		temperatures:    temperatures,
		leafAreaIndices: leafAreaIndices,
	}, nil)
}

// columns holds the parallel arrays of a canopy description.
type columns struct {
	thicknesses     []float64
	leafThicknesses []float64
	temperatures    []float64
	leafAreaIndices []float64
}

func (c columns) checkLengths() error {
	n := len(c.thicknesses)
	others := []struct {
		name string
		len  int
	}{
		{LeafThicknesses, len(c.leafThicknesses)},
		{Temperatures, len(c.temperatures)},
		{LeafAreaIndices, len(c.leafAreaIndices)},
	}
	for _, o := range others {
		if o.len != n {
			return errors.Field(errors.ErrCodeLengthMismatch, o.name,
				"has %d elements, %s has %d", o.len, Thicknesses, n)
		}
	}
	if n == 0 {
		return errors.New(errors.ErrCodeEmptyCanopy, "canopy requires at least one layer")
	}
	return nil
}

// fieldArrays maps a layer field to the array it was read from, so element
// errors name the array the caller supplied.
var fieldArrays = map[string]string{
	canopy.FieldThickness:     Thicknesses,
	canopy.FieldLeafThickness: LeafThicknesses,
	canopy.FieldTemperature:   Temperatures,
	canopy.FieldLeafAreaIndex: LeafAreaIndices,
}

// makeCanopy validates lengths, builds each layer in order and stacks them.
// opts are applied to every layer.
func makeCanopy(c columns, opts []canopy.LayerOption) (*canopy.Canopy, error) {
	if err := c.checkLengths(); err != nil {
		return nil, err
	}
	layers := make([]canopy.Layer, len(c.thicknesses))
	for i := range layers {
		l, err := canopy.NewLayer(c.thicknesses[i], c.leafAreaIndices[i], c.leafThicknesses[i], c.temperatures[i], opts...)
		if err != nil {
			return nil, locate(err, i)
		}
		layers[i] = l
	}
	return canopy.New(layers)
}

// locate attributes a layer error to the input array and element it came from.
func locate(err error, i int) error {
	var field string
	if e, ok := err.(*errors.Error); ok {
		field = e.Field
	}
	if name, ok := fieldArrays[field]; ok {
		return errors.AtIndex(err, name, i)
	}
	if field == "" {
		field = "layers"
	}
	return errors.AtIndex(err, field, i)
}
