// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels of Dense: element-wise
// addition, subtraction and product, matrix multiplication, transpose and
// scalar scaling. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - Loop orders are fixed so floating-point results are bit-reproducible.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elementwise computes out[idx] = f(a[idx], b[idx]) over two same-shape operands.
// Internal helper for Add/Sub/Hadamard to share validation, allocation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: single flat loop 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func elementwise[T Number](a, b *Dense[T], opTag string, f func(x, y T) T) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense[T](a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data {
		res.data[idx] = f(a.data[idx], b.data[idx])
	}

	return res, nil
}

// Add returns a + b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(a, b, opAdd, func(x, y T) T { return x + y })
}

// Sub returns a − b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(a, b, opSub, func(x, y T) T { return x - y })
}

// Hadamard computes the element-wise product (a ⊙ b) with a fresh result.
// Hadamard ≠ matrix multiplication; use Mul for A×B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Hadamard[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(a, b, opHadamard, func(x, y T) T { return x * y })
}

// Mul computes the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate Dense(a.Rows, b.Cols).
//   - Stage 2: triple loop i→j→k; each cell starts at the zero value and
//     accumulates a[i,k]*b[k,j] for k ascending.
//
// Behavior highlights:
//   - No zero-skipping: NaN/Inf in either operand propagate as in the naive loop.
//   - Accumulation order is fixed, so float results are bit-reproducible.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		rowOffsetA int
		sum        T
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			sum = 0
			for k = 0; k < aCols; k++ {
				// a.data layout: i*aCols + k; b.data layout: k*bCols + j
				sum += a.data[rowOffsetA+k] * b.data[k*bCols+j]
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// res(j,i) = m(i,j); the result never aliases m.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res, err := NewDense[T](cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale[T Number](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense[T](m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range m.data {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}
