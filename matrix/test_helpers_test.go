// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels and views.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Reader to hide its concrete type from type assertions.
// Use hide[T]{X} in tests to force the generic (non-Dense) kernel paths.
type hide[T matrix.Element] struct{ matrix.Reader[T] }

// mustRows builds a Dense-backed matrix from row literals or fails the test.
func mustRows[T matrix.Element](t *testing.T, rows [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt[T matrix.Element](t *testing.T, m matrix.Reader[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// rowsOf renders m as [][]T for readable equality assertions.
func rowsOf[T matrix.Element](t *testing.T, m matrix.Reader[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			out[i][j] = mustAt(t, m, i, j)
		}
	}

	return out
}

// fixture2x3 returns the 2×3 matrix whose column-major storage is [0,1,2,3,4,5]:
//
//	[0 2 4]
//	[1 3 5]
func fixture2x3(t *testing.T) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.FromColumnMajor(2, 3, []float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	return m
}

// storageOf returns Storage() of a real Dense, View, Matrix or Readonly, failing on error.
func storageOf(t *testing.T, s interface{ Storage() ([]float64, error) }) []float64 {
	t.Helper()
	out, err := s.Storage()
	require.NoError(t, err)

	return out
}
