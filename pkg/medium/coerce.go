package medium

import (
	"encoding/json"

	"github.com/jihenghu/canort/pkg/canopy"
	"github.com/jihenghu/canort/pkg/errors"
)

// Float converts an untyped value to float64. Go integer and floating-point
// kinds and json.Number are accepted. Strings, booleans, nil and every other
// type, as well as NaN and infinities, fail with ErrCodeInvalidType.
func Float(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidType, err, "%q is not a number", n.String())
		}
		f = parsed
	case nil:
		return 0, errors.New(errors.ErrCodeInvalidType, "missing value")
	default:
		return 0, errors.New(errors.ErrCodeInvalidType, "%v (%T) is not a number", v, v)
	}
	if err := errors.ValidateFinite("", f); err != nil {
		return 0, err
	}
	return f, nil
}

// Floats converts a sequence of untyped values, reporting the first bad
// element as field[i].
func Floats(field string, vs []any) ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		f, err := Float(v)
		if err != nil {
			return nil, errors.AtIndex(err, field, i)
		}
		out[i] = f
	}
	return out, nil
}

// MakeCanopyValues is [MakeCanopy] for untyped input. Every element is
// coerced with [Float] before any layer is built, so a non-numeric value
// fails with ErrCodeInvalidType even if another element is also out of range.
// Lengths are checked first.
func MakeCanopyValues(thicknesses, leafThicknesses, temperatures, leafAreaIndices []any, opts ...canopy.LayerOption) (*canopy.Canopy, error) {
	raw := []struct {
		name string
		vs   []any
	}{
		{Thicknesses, thicknesses},
		{LeafThicknesses, leafThicknesses},
		{Temperatures, temperatures},
		{LeafAreaIndices, leafAreaIndices},
	}
	for _, r := range raw[1:] {
		if len(r.vs) != len(thicknesses) {
			return nil, errors.Field(errors.ErrCodeLengthMismatch, r.name,
				"has %d elements, %s has %d", len(r.vs), Thicknesses, len(thicknesses))
		}
	}

	cols := make([][]float64, len(raw))
	for i, r := range raw {
		fs, err := Floats(r.name, r.vs)
		if err != nil {
			return nil, err
		}
		cols[i] = fs
	}
	return makeCanopy(columns{
		thicknesses:     cols[0],
		leafThicknesses: cols[1],
		temperatures:    cols[2],
		leafAreaIndices: cols[3],
	}, opts)
}
