// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 5}, {5, 0}, {-1, 3}, {3, -2}, {0, 0}} {
		m, err := matrix.NewDense[float64](tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %dx%d", tc.r, tc.c)
		require.Nil(t, m)
	}
}

// TestNewDenseUnrepresentableShape rejects shapes whose element count overflows
// int or whose buffer cannot be allocated, instead of panicking.
func TestNewDenseUnrepresentableShape(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{1 << 32, 1 << 32}, {1 << 31, 1 << 31}, {math.MaxInt, 2}, {2, math.MaxInt}} {
		m, err := matrix.NewDense[float64](tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %dx%d", tc.r, tc.c)
		require.Nil(t, m)
	}

	_, err := matrix.NewIdentity[float64](1 << 32)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() report the construction shape.
func TestRowsCols(t *testing.T) {
	m := MustDense[int](t, 3, 4)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestZeroInitialized checks every element starts at the zero value.
func TestZeroInitialized(t *testing.T) {
	m := MustDense[float32](t, 2, 3)
	n := 0
	m.Do(func(_, _ int, v float32) bool {
		require.Zero(t, v)
		n++
		return true
	})
	require.Equal(t, 6, n)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense[float64](t, 2, 3)

	cases := []struct{ i, j int }{{2, 0}, {-1, 0}, {0, 3}, {0, -1}, {5, 5}}
	for _, tc := range cases {
		_, err := m.At(tc.i, tc.j)
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "At(%d,%d)", tc.i, tc.j)

		err = m.Set(tc.i, tc.j, 1.23)
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "Set(%d,%d)", tc.i, tc.j)
	}

	// failed writes never touch the buffer
	require.True(t, m.Equal(MustDense[float64](t, 2, 3)))
}

// TestAtErrorContext checks the wrapped message carries method and coordinates.
func TestAtErrorContext(t *testing.T) {
	m := MustDense[float64](t, 2, 3)
	_, err := m.At(2, 0)
	require.EqualError(t, err, "Dense.At(2,0): matrix: index out of bounds")
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense[float64](t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestNewDenseFrom covers the copying constructor.
func TestNewDenseFrom(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, src)
	require.NoError(t, err)

	src[0] = 100 // caller slice is not aliased
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4, v)

	_, err = matrix.NewDenseFrom(2, 3, []int{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(0, 3, []int{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFromRows covers literal construction, ragged and empty input.
func TestFromRows(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows[float64](nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowCopy ensures Row returns an independent copy.
func TestRowCopy(t *testing.T) {
	m := scenarioA(t)
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	row[0] = -1
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense[float64](t, 2, 2)
	require.NoError(t, m.Set(0, 0, 1.0))
	require.NoError(t, m.Set(1, 1, 2.0))

	clone := m.Clone()
	require.True(t, clone.Equal(m))

	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestEqual covers shape and value differences plus nil handling.
func TestEqual(t *testing.T) {
	a := scenarioA(t)
	require.True(t, a.Equal(scenarioA(t)))
	require.False(t, a.Equal(scenarioB(t)))
	require.False(t, a.Equal(MustDense[float64](t, 3, 2)))
	require.False(t, a.Equal(nil))

	var n1, n2 *matrix.Dense[float64]
	require.True(t, n1.Equal(n2))
}

// TestDoEarlyStop checks row-major visiting order and early exit.
func TestDoEarlyStop(t *testing.T) {
	m := scenarioA(t)
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 4
	})
	require.Equal(t, []float64{1, 2, 3, 4}, seen)
}
