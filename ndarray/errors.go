// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All entry points return these sentinels and tests match them via
// errors.Is. Shape errors are raised before any numeric work begins.
// Panics are reserved for programmer errors in private helpers.

package ndarray

import "errors"

var (
	// ErrShapeMismatch indicates that a secondary argument's shape is
	// incompatible with the primary beyond scalar broadcasting or
	// reduced-axis (per-station) alignment, or that a result buffer does
	// not fit the shape it is being restored into.
	ErrShapeMismatch = errors.New("ndarray: incompatible shapes")

	// ErrEmpty indicates an array with zero elements where data is required.
	ErrEmpty = errors.New("ndarray: array must be non-empty")

	// ErrRagged indicates nested-slice input whose rows differ in length.
	ErrRagged = errors.New("ndarray: rows must have equal length")

	// ErrOutOfRange indicates an element index or axis outside valid bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrNotScalar indicates scalar extraction from a non-scalar array.
	ErrNotScalar = errors.New("ndarray: array is not a scalar")
)
