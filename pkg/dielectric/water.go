// Package dielectric computes complex relative permittivities of liquid water
// and moist soil at microwave frequencies.
//
// Permittivities are returned as complex128 with a positive imaginary part
// (ε = ε' + iε''), the loss convention used throughout canort. Frequencies are
// in GHz and temperatures in kelvin.
//
// # Water
//
// [Water] implements the single-Debye model of Ulaby and Long (2014, P4.1):
// static permittivity from Klein and Swift (1977), high-frequency limit from
// Lane and Saxton (1952) and relaxation time from Stogryn (1971).
//
// # Soil
//
// Soil models are looked up by name with [Soil]. Each is a [SoilFunc] that
// reads texture, moisture and density from any value implementing
// [SoilProperties], so the soil package can pass itself without an import
// cycle.
package dielectric

import (
	"math"

	"github.com/jihenghu/canort/pkg/constants"
)

// WaterHighFrequencyLimit is ε∞ of liquid water.
const WaterHighFrequencyLimit = 4.9

// WaterStatic returns the static permittivity of water at temperatureK.
func WaterStatic(temperatureK float64) float64 {
	t := temperatureK - constants.ZeroCelsiusK
	return 88.045 - 0.4147*t + 6.295e-4*t*t + 1.075e-5*t*t*t
}

// WaterRelaxation returns 2πτ for water at temperatureK, in seconds.
func WaterRelaxation(temperatureK float64) float64 {
	t := temperatureK - constants.ZeroCelsiusK
	return 1.1109e-10 - 3.824e-12*t + 6.938e-14*t*t - 5.096e-16*t*t*t
}

// Water returns the complex permittivity of pure liquid water.
func Water(frequencyGHz, temperatureK float64) complex128 {
	es := WaterStatic(temperatureK)
	// f·2πτ is ωτ.
	x := frequencyGHz * constants.GHz * WaterRelaxation(temperatureK)
	d := 1 + x*x
	re := WaterHighFrequencyLimit + (es-WaterHighFrequencyLimit)/d
	im := (es - WaterHighFrequencyLimit) * x / d
	return complex(re, im)
}

// LossTangent returns ε''/ε'.
func LossTangent(eps complex128) float64 {
	if real(eps) == 0 {
		return math.Inf(1)
	}
	return imag(eps) / real(eps)
}
