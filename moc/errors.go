// SPDX-License-Identifier: MIT
// Package moc: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All constructors
// MUST return these sentinels and tests MUST check them via errors.Is.
// Operators never return errors: their inputs are already-validated
// RangeMOC values (spec.md §7 propagation policy).
package moc

import "errors"

var (
	// ErrInvalidDepth is returned when a requested declared depth exceeds
	// the quantity's Dmax.
	ErrInvalidDepth = errors.New("moc: invalid depth")

	// ErrIndexOutOfBounds is returned when a cell index is out of range
	// for its depth.
	ErrIndexOutOfBounds = errors.New("moc: index out of bounds")

	// ErrAlignment is returned by FromRanges in strict mode when an
	// endpoint is not a multiple of 2^shift(dMax).
	ErrAlignment = errors.New("moc: range endpoints not aligned to declared depth")
)
