// Package pkg provides the core libraries for canort, a layered vegetation
// canopy model for passive microwave radiative transfer.
//
// # Overview
//
// A canopy is a stack of horizontally homogeneous layers resting on the
// ground. Radiative transfer solvers consume it as an ordered, contiguous,
// validated and immutable sequence. The pkg directory is organized as:
//
//  1. [canopy] - Layer and Canopy types, elevation lookup, aggregates
//  2. [medium] - Builders: per-layer arrays, uniform canopies, untyped input
//  3. [soil], [sensor], [dielectric] - Ground, radiometer and permittivity models
//  4. [scene] - TOML scene files tying canopy, soil and sensor together
//  5. [render] - Stack diagrams (DOT/SVG)
//  6. [errors], [observability], [constants], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	scene.toml / parameter arrays
//	         ↓
//	    [medium] package (validate, build layers)
//	         ↓
//	    [canopy] package (assign elevations, immutable canopy)
//	         ↓
//	    RT solver / [render] / CLI
//
// # Quick Start
//
// Build a three-layer canopy and find the layer at 1.5 m:
//
//	import "github.com/jihenghu/canort/pkg/medium"
//
//	c, err := medium.MakeCanopy(
//	    []float64{0.5, 1.0, 1.0},          // thicknesses, m
//	    []float64{0.0002, 0.0002, 0.0003}, // leaf thicknesses, m
//	    []float64{293.15, 294.15, 295.15}, // temperatures, K
//	    []float64{0.2, 0.5, 0.8},          // leaf area indices
//	)
//	if err != nil {
//	    return err
//	}
//	l, err := c.LayerAtHeight(1.5) // layer 2: boundaries belong to the layer above
//
// [canopy]: github.com/jihenghu/canort/pkg/canopy
// [medium]: github.com/jihenghu/canort/pkg/medium
// [soil]: github.com/jihenghu/canort/pkg/soil
// [sensor]: github.com/jihenghu/canort/pkg/sensor
// [dielectric]: github.com/jihenghu/canort/pkg/dielectric
// [scene]: github.com/jihenghu/canort/pkg/scene
// [render]: github.com/jihenghu/canort/pkg/render
// [errors]: github.com/jihenghu/canort/pkg/errors
// [observability]: github.com/jihenghu/canort/pkg/observability
// [constants]: github.com/jihenghu/canort/pkg/constants
// [buildinfo]: github.com/jihenghu/canort/pkg/buildinfo
package pkg
