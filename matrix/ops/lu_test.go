// SPDX-License-Identifier: MIT
package ops_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/matrix/ops"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestLUReconstructs(t *testing.T) {
	A := mustRows(t, [][]float64{{0, 2, 1}, {1, 1, 0}, {3, 0, 1}}) // zero leading pivot
	f, err := ops.LU(A)
	require.NoError(t, err)

	L, err := f.L()
	require.NoError(t, err)
	U, err := f.U()
	require.NoError(t, err)
	LU, err := matrix.Mul[float64](L, U)
	require.NoError(t, err)

	piv := f.Pivot()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, err := A.At(piv[i], j)
			require.NoError(t, err)
			got, err := LU.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-12)
		}
	}
	require.InDelta(t, -5.0, f.Det(), 1e-12)
}

func TestInverseAndSolve(t *testing.T) {
	A := mustRows(t, [][]float64{{4, 7}, {2, 6}})
	inv, err := ops.Inverse(A)
	require.NoError(t, err)
	want := mustRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}})
	ok, err := matrix.AllClose[float64](inv, want, 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	f, err := ops.LU(A)
	require.NoError(t, err)
	x, err := f.SolveVec([]float64{1, 2})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{-0.8, 0.6}, x, 1e-12)

	X, err := f.Solve(mustRows(t, [][]float64{{1, 0}, {2, 1}}))
	require.NoError(t, err)
	require.InDelta(t, -0.8, mustAt(t, X, 0, 0), 1e-12)
	require.InDelta(t, 0.4, mustAt(t, X, 1, 1), 1e-12)

	_, err = f.SolveVec([]float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverseOfView(t *testing.T) {
	base := mustRows(t, [][]float64{{2, 0, 9}, {0, 4, 9}})
	v, err := base.Window(0, 0, 2, 2)
	require.NoError(t, err)

	inv, err := ops.Inverse(v)
	require.NoError(t, err)
	require.InDelta(t, 0.5, mustAt(t, inv, 0, 0), 1e-15)
	require.InDelta(t, 0.25, mustAt(t, inv, 1, 1), 1e-15)
	require.Equal(t, 1, base.Subscribers()) // reading keeps the view linked
}

func TestLUErrors(t *testing.T) {
	_, err := ops.LU(mustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = ops.Inverse(mustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	d, err := ops.Det(mustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	require.Zero(t, d)

	var nilM *matrix.Matrix[float64]
	_, err = ops.Det(nilM)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func mustAt(t *testing.T, m matrix.Reader[float64], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
