// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for the Matrix handle and the Readonly facade.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestFromRowsLayout checks row literals land in column-major order.
func TestFromRowsLayout(t *testing.T) {
	m := mustRows(t, [][]float64{{0, 2, 4}, {1, 3, 5}})

	require.Equal(t, []float64{0, 1, 2, 3, 4, 5}, storageOf(t, m))
	require.Equal(t, matrix.SchemeDense, m.StorageScheme())
	require.True(t, matrix.Equal[float64](m, fixture2x3(t)))
}

// TestFromRowsErrors covers empty and ragged input.
func TestFromRowsErrors(t *testing.T) {
	_, err := matrix.FromRows[float64](nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestWrapSharesDense verifies two handles over one Dense see the same data.
func TestWrapSharesDense(t *testing.T) {
	d, err := matrix.NewDense[float64](1, 1)
	require.NoError(t, err)
	a, err := matrix.Wrap(d)
	require.NoError(t, err)
	b, err := matrix.Wrap(d)
	require.NoError(t, err)

	require.NoError(t, a.Set(0, 0, 5))
	require.Equal(t, 5.0, mustAt[float64](t, b, 0, 0))

	_, err = matrix.Wrap[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCloneOfView returns an independent Dense copy without touching the view.
func TestCloneOfView(t *testing.T) {
	d := fixture2x3(t)
	v, err := d.View([]int{1}, nil)
	require.NoError(t, err)

	c, err := v.Clone()
	require.NoError(t, err)
	require.Equal(t, matrix.SchemeDense, c.StorageScheme())
	require.Equal(t, matrix.SchemeView, v.StorageScheme()) // clone does not detach
	require.Equal(t, [][]float64{{1, 3, 5}}, rowsOf[float64](t, c))

	require.NoError(t, c.Set(0, 0, 8))
	require.Equal(t, 1.0, mustAt[float64](t, d, 1, 0))
}

// TestApplyOnViewWritesThrough maps a view in place and reaches the root.
func TestApplyOnViewWritesThrough(t *testing.T) {
	d := fixture2x3(t)
	v, err := d.Col(1)
	require.NoError(t, err)

	require.NoError(t, v.Apply(func(_, _ int, x float64) float64 { return -x }))

	require.Equal(t, [][]float64{{0, -2, 4}, {1, -3, 5}}, rowsOf[float64](t, d))
}

// TestFillOnView fills only the selected cells.
func TestFillOnView(t *testing.T) {
	d := fixture2x3(t)
	v, err := d.Row(0)
	require.NoError(t, err)

	require.NoError(t, v.Fill(9))
	require.Equal(t, [][]float64{{9, 9, 9}, {1, 3, 5}}, rowsOf[float64](t, d))
}

// TestMatrixString prefixes the scheme and shape.
func TestMatrixString(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}})
	require.Equal(t, "Dense 1x2\n[1, 2]\n", m.String())

	v, err := m.View(nil, []int{1})
	require.NoError(t, err)
	require.Equal(t, "View 1x1\n[2]\n", v.String())
}

// TestReadonlyNonInterference: wrapping never subscribes and never writes.
func TestReadonlyNonInterference(t *testing.T) {
	d := fixture2x3(t)
	ro := d.Readonly()
	require.Equal(t, 0, d.Subscribers())

	require.NoError(t, d.Set(0, 0, 11))
	require.Equal(t, 11.0, mustAt[float64](t, ro, 0, 0)) // sees the live handle
	require.Equal(t, 2, ro.Rows())
	require.Equal(t, 3, ro.Cols())
	require.Equal(t, matrix.SchemeDense, ro.StorageScheme())
	require.Equal(t, matrix.ColumnMajor, ro.StorageOrder())

	_, ok := any(ro).(interface{ Set(int, int, float64) error })
	require.False(t, ok) // no write surface
}

// TestReadonlyFollowsMaterialization: a facade over a view reads the snapshot.
func TestReadonlyFollowsMaterialization(t *testing.T) {
	d := fixture2x3(t)
	v, err := d.View(nil, nil)
	require.NoError(t, err)
	ro, err := matrix.NewReadonly(v)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 2, -1))
	require.Equal(t, 5.0, mustAt[float64](t, ro, 1, 2))
	require.Equal(t, matrix.SchemeDense, ro.StorageScheme())
	require.Equal(t, "[0, 2, 4]\n[1, 3, 5]\n", ro.String())

	_, err = matrix.NewReadonly[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestShapeInvariant: shape is fixed for the life of a handle, across materialization.
func TestShapeInvariant(t *testing.T) {
	d := fixture2x3(t)
	v, err := d.View([]int{0, 1, 0}, []int{2})
	require.NoError(t, err)
	require.Equal(t, []int{3, 1}, []int{v.Rows(), v.Cols()})

	require.NoError(t, d.Fill(0))
	require.Equal(t, []int{3, 1}, []int{v.Rows(), v.Cols()})
	require.Equal(t, []float64{4, 5, 4}, storageOf(t, v))
}

// TestEqual handles shape mismatch and nil.
func TestEqual(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	b := mustRows(t, [][]float64{{1}, {2}})

	require.False(t, matrix.Equal[float64](a, b))
	require.False(t, matrix.Equal[float64](a, nil))
	require.True(t, matrix.Equal[float64](a, a.Readonly()))
}

// TestApplyOnViewWithDuplicateRows: a parent cell selected twice is mapped once,
// from the value it had before the call.
func TestApplyOnViewWithDuplicateRows(t *testing.T) {
	d := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	v, err := d.View([]int{0, 0}, nil)
	require.NoError(t, err)

	require.NoError(t, matrix.ScaleInPlace(v, 2.0))
	require.Equal(t, [][]float64{{2, 4}, {3, 4}}, rowsOf[float64](t, d))
	require.Equal(t, [][]float64{{2, 4}, {2, 4}}, rowsOf[float64](t, v))
	require.True(t, matrix.IsLinked_TestOnly(v))
}

// TestApplyOnViewAllOrNothing: a non-finite result anywhere leaves the parent untouched.
func TestApplyOnViewAllOrNothing(t *testing.T) {
	d := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	v, err := d.View(nil, nil)
	require.NoError(t, err)

	err = v.Apply(func(i, j int, x float64) float64 {
		if i == 1 && j == 1 {
			return math.NaN()
		}
		return 10 * x
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, []float64{1, 3, 2, 4}, storageOf(t, d))
	require.True(t, matrix.IsLinked_TestOnly(v))

	require.NoError(t, v.Apply(func(_, _ int, x float64) float64 { return 10 * x }))
	require.Equal(t, []float64{10, 30, 20, 40}, storageOf(t, d))
}

// TestStorageReportsAllocationFailure: an oversized duplicate view surfaces
// ErrAllocation from Storage on every facade instead of a nil slice.
func TestStorageReportsAllocationFailure(t *testing.T) {
	d := mustRows(t, [][]float64{{7}})
	dup := make([]int, 40000) // 40000×40000 > MaxElements
	v, err := d.View(dup, dup)
	require.NoError(t, err)

	_, err = v.Storage()
	require.ErrorIs(t, err, matrix.ErrAllocation)
	_, err = v.Readonly().Storage()
	require.ErrorIs(t, err, matrix.ErrAllocation)
	_, err = v.Implementor().Storage()
	require.ErrorIs(t, err, matrix.ErrAllocation)
}

// TestViewExposesParentAndSelectors checks the introspection accessors.
func TestViewExposesParentAndSelectors(t *testing.T) {
	d := fixture2x3(t)
	h, err := d.View([]int{1, 1}, []int{2, 0})
	require.NoError(t, err)

	v, ok := h.Implementor().(*matrix.View[float64])
	require.True(t, ok)
	require.Same(t, d, v.Parent())
	rows := v.Mapping().RowIndices()
	require.Equal(t, []int{1, 1}, rows)
	require.Equal(t, []int{2, 0}, v.Mapping().ColIndices())

	rows[0] = 0 // a copy, the view is unaffected
	require.Equal(t, []int{1, 1}, v.Mapping().RowIndices())
}
