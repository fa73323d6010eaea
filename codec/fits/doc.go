// Package fits implements the two MOC FITS binary-table variants: v2.0
// RANGE (a flat lo,hi interval list) and v1.0 UNIQ (a NUNIQ cell list).
// Both are plain FITS binary table extensions following a minimal primary
// HDU, big-endian integer data, 80-byte header cards padded to 2880-byte
// blocks. Gzip-wrapped input (magic bytes 1f 8b) is transparently
// unwrapped before parsing.
package fits
