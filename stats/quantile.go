// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	opQuantile        = "Quantile"
	opColumnQuantiles = "ColumnQuantiles"
	opMedian          = "Median"
)

// Quantile returns the p-quantile of x (x is not modified).
// The method defaults to Empirical; WithQuantileMethod(LinInterp) interpolates.
// Errors: ErrEmpty, ErrProbability, ErrNonFinite. O(n log n).
func Quantile(x []float64, p float64, opts ...Option) (float64, error) {
	if len(x) == 0 {
		return 0, statsErrorf(opQuantile, ErrEmpty)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, statsErrorf(opQuantile, ErrProbability)
	}
	if floats.HasNaN(x) || hasInf(x) {
		return 0, statsErrorf(opQuantile, ErrNonFinite)
	}
	o := gatherOptions(opts...)
	sorted := slices.Clone(x)
	slices.Sort(sorted)

	return stat.Quantile(p, o.method.kind(), sorted, nil), nil
}

// Median returns the middle order statistic of x, or the mean of the two
// middle ones for even-length samples.
// Errors: ErrEmpty, ErrNonFinite.
func Median(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, statsErrorf(opMedian, ErrEmpty)
	}
	if floats.HasNaN(x) || hasInf(x) {
		return 0, statsErrorf(opMedian, ErrNonFinite)
	}
	sorted := slices.Clone(x)
	slices.Sort(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2], nil
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2, nil
}

// ColumnQuantiles returns the p-quantile of every column of X.
// Errors: matrix.ErrNilMatrix plus those of Quantile. O(c · r log r).
func ColumnQuantiles(X matrix.Reader[float64], p float64, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, statsErrorf(opColumnQuantiles, err)
	}
	out := make([]float64, X.Cols())
	for j := range out {
		col, err := matrix.Column(X, j)
		if err != nil {
			return nil, statsErrorf(opColumnQuantiles, err)
		}
		if out[j], err = Quantile(col, p, opts...); err != nil {
			return nil, statsErrorf(opColumnQuantiles, err)
		}
	}

	return out, nil
}

func hasInf(x []float64) bool {
	for _, v := range x {
		if math.IsInf(v, 0) {
			return true
		}
	}

	return false
}
