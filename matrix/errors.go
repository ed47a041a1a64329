// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All builders and accessors return these sentinels (optionally wrapped with
// call-site context); callers match with errors.Is. Nothing here panics on
// user input.

package matrix

import "errors"

var (
	// ErrBadShape is returned for an invalid arena size or vector shape request.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Add) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrUnknownVertex indicates that a referenced vertex ID is not present
	// in the active node order (edge endpoint, target, or reference vertex).
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrDuplicateVertex indicates that a node order lists the same ID twice.
	ErrDuplicateVertex = errors.New("matrix: duplicate vertex id in order")

	// ErrInvalidWeight indicates an edge weight is NaN or ±Inf at ingestion.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
