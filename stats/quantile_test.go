// SPDX-License-Identifier: MIT
package stats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/stats"
	"github.com/stretchr/testify/require"
)

func TestQuantileMethods(t *testing.T) {
	x := []float64{4, 1, 3, 2} // unsorted on purpose

	tests := []struct {
		name string
		p    float64
		m    stats.QuantileMethod
		want float64
	}{
		{"empirical min", 0, stats.Empirical, 1},
		{"empirical half", 0.5, stats.Empirical, 2},
		{"empirical 0.75", 0.75, stats.Empirical, 3},
		{"empirical max", 1, stats.Empirical, 4},
		{"lininterp 0.6", 0.6, stats.LinInterp, 2.4},
		{"lininterp 0.75", 0.75, stats.LinInterp, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := stats.Quantile(x, tc.p, stats.WithQuantileMethod(tc.m))
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-12)
		})
	}
	require.Equal(t, []float64{4, 1, 3, 2}, x) // input untouched
}

func TestQuantileErrors(t *testing.T) {
	_, err := stats.Quantile(nil, 0.5)
	require.ErrorIs(t, err, stats.ErrEmpty)

	_, err = stats.Quantile([]float64{1}, 1.5)
	require.ErrorIs(t, err, stats.ErrProbability)

	_, err = stats.Quantile([]float64{1}, math.NaN())
	require.ErrorIs(t, err, stats.ErrProbability)

	_, err = stats.Quantile([]float64{1, math.Inf(1)}, 0.5)
	require.ErrorIs(t, err, stats.ErrNonFinite)
}

func TestMedian(t *testing.T) {
	m, err := stats.Median([]float64{5, 1, 3})
	require.NoError(t, err)
	require.Equal(t, 3.0, m)

	m, err = stats.Median([]float64{4, 1, 3, 2})
	require.NoError(t, err)
	require.Equal(t, 2.5, m)

	_, err = stats.Median(nil)
	require.ErrorIs(t, err, stats.ErrEmpty)
}

func TestColumnQuantiles(t *testing.T) {
	X, err := matrix.FromRows([][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}})
	require.NoError(t, err)

	q, err := stats.ColumnQuantiles(X.Readonly(), 0.75)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 30}, q)
}

func TestParseQuantileMethod(t *testing.T) {
	m, err := stats.ParseQuantileMethod("lininterp")
	require.NoError(t, err)
	require.Equal(t, stats.LinInterp, m)
	require.Equal(t, "lininterp", m.String())

	_, err = stats.ParseQuantileMethod("bogus")
	require.ErrorIs(t, err, stats.ErrUnknownMethod)
}
