// Package gomoc implements Multi-Order Coverage maps (MOC): hierarchical
// sets of sky, time, or frequency intervals represented as sorted,
// disjoint, half-open ranges over a deepest-level index space.
//
// Under the hood, the module is organized into focused subpackages:
//
//	qty/      — the Space/Time/Frequency quantity abstraction (depth, base, k)
//	rangeset/ — the disjoint sorted-range container shared by every MOC
//	moc/      — the 1-D RangeMOC container and its lazy operator algebra
//	moc2/     — the 2-D (outer × inner) product MOC engine
//	healpix/  — NESTED-scheme HEALPix indexing and rasterization
//	region/   — cone/polygon/box/ellipse/ring/zone MOC construction
//	spatial/  — borders, extend/contract, and connected-component split
//	stcs/     — STC-S AST evaluation into spatial MOCs
//	codec/    — ASCII, JSON, stream, and FITS serialization
//	mocset/   — the persistent, file-backed MOC-set store
//	registry/ — the in-process, reference-counted MOC handle table
//
// Every operator streams over disjoint ranges rather than materializing
// per-cell sets, so algebra on deep, large MOCs stays close to linear in
// the number of ranges involved rather than the number of cells.
package gomoc
