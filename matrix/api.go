// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Each facade delegates to the canonical kernel without extra logic.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros[T Number](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity[T Number](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.r, m.c)
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Number](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Number](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Number](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
func HadamardProd[T Number](a, b *Dense[T]) (*Dense[T], error) { return Hadamard(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T[E Number](m *Dense[E]) (*Dense[E], error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy[T Number](m *Dense[T], alpha T) (*Dense[T], error) { return Scale(m, alpha) }
