// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels and the codec MUST return these sentinels (optionally
// wrapped with context) and tests MUST check them via errors.Is. No function
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ...". Call sites wrap with
// fmt.Errorf("ctx: %w", ErrX); callers match with errors.Is.
//
// Check order: nil -> shape/index -> dimension mismatch -> I/O -> format.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive or too large to allocate.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set) MUST return this, not panic, and never clamp or wrap.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub/Hadamard of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrIO indicates that an import source or export destination could not be
	// opened, read, written or closed. The underlying OS error is joined, so
	// errors.Is(err, fs.ErrNotExist) keeps working.
	ErrIO = errors.New("matrix: i/o failure")

	// ErrFormat indicates malformed serialized input: wrong type tag, bad
	// dimensions, truncated element list or a non-numeric token.
	ErrFormat = errors.New("matrix: malformed input")
)
