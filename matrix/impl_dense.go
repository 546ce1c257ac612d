// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Value semantics: every Dense owns its buffer; constructors copy caller slices.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"reflect"
)

// maxDenseBytes bounds the backing buffer of a single Dense.
const maxDenseBytes uint64 = 1 << 47

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxRow  = "Row" // method tag used in error wrappers
	ctxFrom = "NewDenseFrom"
	ctxRows = "FromRows"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over a numeric element type T.
//   - r,c hold dimensions (rows, cols), both >= 1 and fixed after construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense is not safe for concurrent mutation; distinct instances never share storage.
type Dense[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for Shaped & fmt.Stringer conformance.
var (
	_ Shaped       = (*Dense[float64])(nil)
	_ fmt.Stringer = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: reject shapes whose rows*cols overflows int or whose buffer
//     exceeds maxDenseBytes.
//   - Stage 3: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (non-positive or unrepresentable shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("NewDense(%d,%d): rows*cols overflows int: %w", rows, cols, ErrInvalidDimensions)
	}
	limit := maxDenseBytes
	if uint64(math.MaxInt) < limit {
		limit = uint64(math.MaxInt)
	}
	if uint64(rows*cols) > limit/uint64(reflect.TypeOf((*T)(nil)).Elem().Size()) {
		return nil, fmt.Errorf("NewDense(%d,%d): buffer exceeds %d bytes: %w", rows, cols, limit, ErrInvalidDimensions)
	}

	// make() zero-fills deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFrom builds an r×c matrix from a row-major slice.
// The slice is copied; later writes to data do not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols <= 0.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom[T Number](rows, cols int, data []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: len(data)=%d, want %d: %w", ctxFrom, len(data), rows*cols, ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// FromRows builds a matrix from a rectangular row literal, e.g.
//
//	FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxRows, ErrInvalidDimensions)
	}
	m, err := NewDense[T](len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRows, err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxRows, i, len(row), m.c, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrIndexOutOfBounds.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col.
//
// Returns a bare sentinel; public methods (At/Set) wrap with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfBounds.
//
// Errors:
//   - ErrIndexOutOfBounds when row ∉ [0,Rows) or col ∉ [0,Cols).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfBounds.
// On error the matrix is left untouched.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row i.
//
// Errors:
//   - ErrIndexOutOfBounds when i ∉ [0,Rows).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrIndexOutOfBounds)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the clone do not affect the original and vice versa.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and every element compares ==.
// Two nil matrices are equal; nil and non-nil are not. NaN never equals NaN.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != o.data[idx] {
			return false
		}
	}

	return true
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}
