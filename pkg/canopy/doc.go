// Package canopy provides the layered vegetation medium consumed by microwave
// radiative-transfer computations.
//
// # Overview
//
// A vegetated scene is modelled as a vertical stack of horizontal slabs. Each
// slab is a [Layer] with uniform physical parameters: geometric thickness,
// leaf area index, leaf thickness, temperature and (optionally) leaf water
// fraction and dry mass density. A [Canopy] owns an ordered, non-empty
// sequence of layers and assigns their elevations.
//
// # Conventions
//
// Units are part of the contract: thickness, height and leaf thickness in
// meters, temperature in kelvin, leaf area index dimensionless.
//
// Index 0 is the ground-adjacent (bottom-most) layer; index LayerCount()-1 is
// the top of the canopy. Elevation is measured from the ground (0) upward.
//
// Elevations are authoritative only inside a Canopy. [New] walks the layers
// bottom to top, setting each layer's bottom to the running sum of the
// thicknesses below it. A height supplied with [WithHeight] is advisory and is
// overwritten when the layer is stacked. Because each bottom is the same
// floating-point value as the top of the layer beneath it, adjacent layers
// are contiguous exactly, with no gap or overlap.
//
// # Elevation lookup
//
// [Canopy.LayerAtHeight] resolves an elevation z in [0, TotalHeight] to the
// layer whose half-open interval [bottom, top) contains it. At an internal
// boundary the layer above is returned. The topmost layer's interval is
// closed so that z == TotalHeight resolves to the top layer.
//
// # Immutability
//
// Layers are values with unexported fields and Canopy never exposes its
// backing slice, so neither can change after construction. Operations such as
// [Canopy.Append], [Canopy.Remove] and [Stack] return a new Canopy. A Canopy
// can therefore be read by any number of goroutines without locking.
package canopy
