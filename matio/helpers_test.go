// SPDX-License-Identifier: MIT
package matio_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func mustAt(t *testing.T, m matrix.Reader[float64], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func gather(t *testing.T, m matrix.Reader[float64]) []float64 {
	t.Helper()
	data, err := matrix.Gather(m)
	require.NoError(t, err)

	return data
}

func nan() float64 { return math.NaN() }
