// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and the codec.
//   • Keep all data finite and well-formed unless a test states otherwise.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense[T matrix.Number](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err)

	return m
}

// MustRows builds a matrix from a row literal or fails the test.
func MustRows[T matrix.Number](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// RandomDense fills an r×c float64 matrix from a seeded source in [-10, 10).
// Deterministic for a given seed.
func RandomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense[float64](tb, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, rng.Float64()*20-10))
		}
	}

	return m
}

// RequireAllClose asserts equal shapes and |a-b| ≤ tol element-wise.
func RequireAllClose(tb testing.TB, want, got *matrix.Dense[float64], tol float64) {
	tb.Helper()
	require.Equal(tb, want.Rows(), got.Rows(), "rows")
	require.Equal(tb, want.Cols(), got.Cols(), "cols")
	want.Do(func(i, j int, w float64) bool {
		g, err := got.At(i, j)
		require.NoError(tb, err)
		require.InDeltaf(tb, w, g, tol, "element (%d,%d)", i, j)
		return true
	})
}

// scenarioA and scenarioB are the 2×3 operands of the reference run.
func scenarioA(tb testing.TB) *matrix.Dense[float64] {
	return MustRows(tb, [][]float64{{1, 2, 3}, {4, 5, 6}})
}

func scenarioB(tb testing.TB) *matrix.Dense[float64] {
	return MustRows(tb, [][]float64{{6, 5, 4}, {3, 2, 1}})
}

// scenarioG is the 3×2 right operand of the reference multiplication.
func scenarioG(tb testing.TB) *matrix.Dense[float64] {
	return MustRows(tb, [][]float64{{1, 2}, {3, 4}, {5, 6}})
}
