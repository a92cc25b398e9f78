// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementor.
package matrix_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](0, 5)             // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense[float64](5, 0)              // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense[complex128](-1, 2)          // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseAllocation ensures oversized buffers surface ErrAllocation instead of panicking.
func TestNewDenseAllocation(t *testing.T) {
	_, err := matrix.NewDense[float64](matrix.MaxElements, 2) // above the element cap
	require.ErrorIs(t, err, matrix.ErrAllocation)

	_, err = matrix.AllocBuffer_TestOnly(math.MaxInt, 3) // product overflows int
	require.ErrorIs(t, err, matrix.ErrAllocation)

	buf, err := matrix.AllocBuffer_TestOnly(0, 4) // zero-area buffers are legal internally
	require.NoError(t, err)
	require.Empty(t, buf)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense[float64](3, 4) // create a Dense matrix of size 3x4
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, []int{3, 4}, []int{r, c})
	require.Equal(t, matrix.ColumnMajor, m.StorageOrder())
	require.Equal(t, matrix.SchemeDense, m.StorageScheme())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0) // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)                           // column out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestColumnMajorLayout pins the offset formula i + j*rows.
func TestColumnMajorLayout(t *testing.T) {
	d, err := matrix.NewDenseFrom(2, 3, []float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	require.Equal(t, 1.0, mustAt[float64](t, d, 1, 0)) // offset 1
	require.Equal(t, 2.0, mustAt[float64](t, d, 0, 1)) // offset 2
	require.Equal(t, 5.0, mustAt[float64](t, d, 1, 2)) // offset 5
	require.Equal(t, []float64{0, 1, 2, 3, 4, 5}, storageOf(t, d))
}

// TestNewDenseFromValidation covers length and numeric-policy checks.
func TestNewDenseFromValidation(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf) // default policy rejects NaN

	d, err := matrix.NewDenseFrom(1, 2, []float64{1, math.Inf(1)}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err) // policy off admits ±Inf
	require.True(t, math.IsInf(mustAt[float64](t, d, 0, 1), 1))
}

// TestSetNaNPolicy verifies Set rejects non-finite values and leaves data unchanged.
func TestSetNaNPolicy(t *testing.T) {
	d, err := matrix.NewDense[complex128](1, 1)
	require.NoError(t, err)

	err = d.Set(0, 0, cmplx.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, complex(0, 0), mustAt[complex128](t, d, 0, 0))

	require.NoError(t, d.Set(0, 0, 2+3i))
	require.Equal(t, 2+3i, mustAt[complex128](t, d, 0, 0))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	d, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 0, 1))

	c := d.Clone()
	require.NoError(t, d.Set(0, 0, 9)) // mutate the original after cloning

	require.Equal(t, 1.0, mustAt[float64](t, c, 0, 0)) // clone keeps the old value
}

// TestStorageIsCopy ensures Storage() never exposes the live buffer.
func TestStorageIsCopy(t *testing.T) {
	d, err := matrix.NewDenseFrom(1, 2, []float64{1, 2})
	require.NoError(t, err)

	s, err := d.Storage()
	require.NoError(t, err)
	s[0] = 100
	require.Equal(t, 1.0, mustAt[float64](t, d, 0, 0))
}

// TestApplyAllOrNothing verifies Apply writes nothing when any result violates the policy.
func TestApplyAllOrNothing(t *testing.T) {
	d, err := matrix.NewDenseFrom(2, 1, []float64{1, 0})
	require.NoError(t, err)

	err = d.Apply(func(_, _ int, v float64) float64 { return 1 / v }) // 1/0 = +Inf
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, []float64{1, 0}, storageOf(t, d)) // untouched

	require.NoError(t, d.Apply(func(i, j int, v float64) float64 { return v + float64(i) }))
	require.Equal(t, []float64{1, 1}, storageOf(t, d))
}

// TestFillAndDo covers Fill and the row-major Do visitor with early stop.
func TestFillAndDo(t *testing.T) {
	d, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, d.Fill(7))

	var visited int
	d.Do(func(i, j int, v float64) bool {
		require.Equal(t, 7.0, v)
		visited++
		return visited < 3 // stop after three elements
	})
	require.Equal(t, 3, visited)

	require.ErrorIs(t, d.Fill(math.NaN()), matrix.ErrNaNInf)
}

// TestDenseString checks the row-wise diagnostic rendering.
func TestDenseString(t *testing.T) {
	d, err := matrix.NewDenseFrom(2, 2, []float64{1, 3, 2, 4})
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4]\n", d.String())
}
