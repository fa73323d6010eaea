// Package healpix declares the narrow collaborator interfaces this module
// calls into for HEALPix NESTED primitives (cell neighbours, cone/polygon
// rasterization, great-circle geometry). RING<->NESTED conversion is not
// provided. The actual pixelization math is explicitly out of scope for the core
// engine (spec.md §1): this package only defines the contract and the
// transient BMOC type the rasterizer produces, plus a pure-Go reference
// Rasterizer good enough for cones/rings on low-order grids so the engine
// is runnable without an external HEALPix binding.
package healpix
