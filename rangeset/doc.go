// Package rangeset implements the minimal sorted, disjoint range domain
// that every RangeMOC is built on: insertion with lazy normalization,
// containment queries and depth-bounded cell iteration.
//
// Ranges are half-open [lo, hi) values in a single Index type; callers may
// submit unordered, overlapping or touching input, and Normalize produces
// the unique canonical form (stable sort by lo, then a single merging
// pass, dropping any hi <= lo entry).
package rangeset
