// Package scene loads complete model scenes (canopy, soil and sensor) from
// TOML files.
//
// Decoding is strict: keys the schema does not know are rejected with
// INVALID_CONFIG, so a misspelled "leaf_area_indexes" cannot silently fall
// back to a default. Canopy arrays go through [medium.MakeCanopyValues], so
// every element must be a number.
//
// See [Document] for the file format.
package scene

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jihenghu/canort/pkg/canopy"
	"github.com/jihenghu/canort/pkg/errors"
	"github.com/jihenghu/canort/pkg/observability"
	"github.com/jihenghu/canort/pkg/sensor"
	"github.com/jihenghu/canort/pkg/soil"
)

// Scene is a validated model configuration. Soil and Sensor are nil when the
// file has no [soil] or [sensor] table.
type Scene struct {
	Name        string
	Description string
	Canopy      *canopy.Canopy
	Soil        *soil.Soil
	Sensor      *sensor.Sensor
}

// Read decodes a TOML scene from r and builds it.
//
// Read returns INVALID_CONFIG for malformed TOML, unknown keys or an
// ambiguous canopy form, and the construction error code (INVALID_PARAMETER,
// INVALID_TYPE, LENGTH_MISMATCH, ...) when a value is rejected. Field names
// in errors are qualified by their table, e.g. "canopy.thicknesses[2]".
func Read(r io.Reader) (*Scene, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return Build(doc)
}

// Import reads the scene file at path. A missing file is reported as
// FILE_NOT_FOUND. Load events are sent to the registered scene hooks.
func Import(ctx context.Context, path string) (s *Scene, err error) {
	hooks := observability.Scene()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()
	defer func() {
		layers := 0
		if s != nil {
			layers = s.Canopy.LayerCount()
		}
		hooks.OnLoadComplete(ctx, path, layers, time.Since(start), err)
	}()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open scene %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Write encodes doc as TOML.
func Write(w io.Writer, doc Document) error {
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode scene")
	}
	return nil
}

// Build validates a decoded document and constructs the scene.
func Build(doc Document) (*Scene, error) {
	c, err := buildCanopy(doc.Canopy)
	if err != nil {
		return nil, errors.Prefix(err, "canopy")
	}
	s := &Scene{Name: doc.Name, Description: doc.Description, Canopy: c}
	if doc.Soil != nil {
		if s.Soil, err = buildSoil(*doc.Soil); err != nil {
			return nil, errors.Prefix(err, "soil")
		}
	}
	if doc.Sensor != nil {
		if s.Sensor, err = buildSensor(*doc.Sensor); err != nil {
			return nil, errors.Prefix(err, "sensor")
		}
	}
	return s, nil
}
