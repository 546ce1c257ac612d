package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSameShape(t *testing.T) {
	a := MustDense[float64](t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, MustDense[float64](t, 2, 3)))

	err := matrix.ValidateSameShape(a, MustDense[float64](t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.EqualError(t, err, "ValidateSameShape: 2x3 vs 3x2: matrix: dimension mismatch")
}

func TestValidateBinarySameShape(t *testing.T) {
	a := MustDense[int](t, 1, 2)
	var n *matrix.Dense[int]
	require.ErrorIs(t, matrix.ValidateBinarySameShape(n, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, n), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, MustDense[int](t, 2, 1)), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateBinarySameShape(a, a))
}

func TestValidateMulCompatible(t *testing.T) {
	a := MustDense[int](t, 2, 3)
	require.NoError(t, matrix.ValidateMulCompatible(a, MustDense[int](t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	var n *matrix.Dense[int]
	require.ErrorIs(t, matrix.ValidateMulCompatible(n, a), matrix.ErrNilMatrix)
}
