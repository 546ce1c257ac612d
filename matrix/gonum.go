// SPDX-License-Identifier: MIT

// Package matrix - bridge to gonum.org/v1/gonum/mat.
//
// Both directions copy; neither side aliases the other's storage.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense with the same shape.
// Returns nil for a nil m.
// Complexity: O(r*c).
func ToGonum(m *Dense[float64]) *mat.Dense {
	if m == nil {
		return nil
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// FromGonum copies any gonum mat.Matrix into a new Dense[float64].
//
// Errors:
//   - ErrNilMatrix for a nil g.
//   - ErrInvalidDimensions for a zero-sized g.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense[float64], error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := g.Dims()
	m, err := NewDense[float64](r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.data[i*c+j] = g.At(i, j)
		}
	}

	return m, nil
}
