// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestGonumRoundTrip converts through mat.Dense preserving orientation.
func TestGonumRoundTrip(t *testing.T) {
	d := fixture2x3(t)
	v, err := d.View(nil, []int{2, 0})
	require.NoError(t, err)

	g, err := matrix.ToGonum(v)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, []int{2, 2}, []int{r, c})
	require.Equal(t, 4.0, g.At(0, 0))
	require.Equal(t, 1.0, g.At(1, 1))

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	require.True(t, matrix.Equal[float64](v, back))

	g.Set(0, 0, 100) // no aliasing in either direction
	require.Equal(t, 4.0, mustAt[float64](t, back, 0, 0))
}

// TestGonumErrors covers nil and zero-area inputs.
func TestGonumErrors(t *testing.T) {
	_, err := matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := fixture2x3(t).View([]int{}, nil)
	require.NoError(t, err)
	_, err = matrix.ToGonum(empty)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestGonumComplex exports complex matrices to mat.CDense.
func TestGonumComplex(t *testing.T) {
	m := mustRows(t, [][]complex128{{1, 2i}})
	g, err := matrix.ToGonumComplex(m)
	require.NoError(t, err)
	require.Equal(t, 2i, g.At(0, 1))

	var _ mat.CMatrix = g
}
