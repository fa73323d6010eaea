// Package region builds RangeMOC values from geometric regions and
// position lists. Each shape constructor (Cone, Ring, Ellipse, Box, Zone,
// Polygon) rasterizes via a healpix.Rasterizer (the Reference
// implementation by default) into a BMOC, then promotes the flagged cells
// into a normalized RangeMOC through moc.FromCells. FromPositions and
// FromValuedCells build their cell lists directly and also finish with
// moc.FromCells.
//
// The constructor surface mirrors builder's topology factories: small,
// independently testable functions taking a depth plus shape parameters
// and a set of functional Options, rather than a single do-everything
// entry point.
package region
