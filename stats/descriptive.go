// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Column statistics (means, standard deviations, centering, covariance,
//     correlation) as deterministic compositions over the matrix kernels
//     (CenterColumns → Transpose → Mul → Scale).
//   - Inputs are any matrix.Reader[float64]: Dense handles, views and
//     Readonly facades share one code path and are never mutated.
//
// Determinism & Performance:
//   - Fixed column-major traversal; no randomness.
//   - Covariance costs O(r*c^2) time and O(r*c + c^2) space.
//
// AI-Hints:
//   - Sanitize inputs first (matrix.ReplaceInfNaN) if NaN/Inf propagation is undesired.
//   - Pass WithPopulation() for n-denominator estimators; the default is n-1.

package stats

import (
	"math"

	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping.
const (
	opColumnMeans   = "ColumnMeans"
	opColumnStdDevs = "ColumnStdDevs"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// ColumnMeans returns the arithmetic mean of every column.
// Errors: matrix.ErrNilMatrix; ErrEmpty when X has no rows. O(r*c).
func ColumnMeans(X matrix.Reader[float64]) ([]float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, statsErrorf(opColumnMeans, err)
	}
	if X.Rows() == 0 {
		return nil, statsErrorf(opColumnMeans, ErrEmpty)
	}

	return matrix.ColMeans(X)
}

// ColumnStdDevs returns the per-column standard deviation (sample by default).
// Errors: ErrTooFewObservations when rows ≤ ddof. O(r*c).
func ColumnStdDevs(X matrix.Reader[float64], opts ...Option) ([]float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, statsErrorf(opColumnStdDevs, err)
	}
	o := gatherOptions(opts...)
	if X.Rows() <= o.ddof() {
		return nil, statsErrorf(opColumnStdDevs, ErrTooFewObservations)
	}
	out := make([]float64, X.Cols())
	for j := range out {
		col, err := matrix.Column(X, j)
		if err != nil {
			return nil, statsErrorf(opColumnStdDevs, err)
		}
		if o.population {
			_, out[j] = stat.PopMeanStdDev(col, nil)
		} else {
			_, out[j] = stat.MeanStdDev(col, nil)
		}
	}

	return out, nil
}

// CenterColumns returns Xc = X − colMeans and the means.
// Errors: matrix.ErrNilMatrix, ErrEmpty.
func CenterColumns(X matrix.Reader[float64]) (*matrix.Matrix[float64], []float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, nil, statsErrorf(opCenterColumns, err)
	}
	if X.Rows() == 0 {
		return nil, nil, statsErrorf(opCenterColumns, ErrEmpty)
	}
	Xc, means, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, nil, statsErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// Covariance returns the c×c covariance matrix of the columns of X and the column means.
// MAIN DESCRIPTION:
//   - Cov = (Xcᵀ Xc) / (r − ddof), ddof = 1 (sample, default) or 0 (population).
//
// Implementation:
//   - Stage 1: validate X, require c > 0 and r > ddof.
//   - Stage 2: center columns.
//   - Stage 3: Transpose → Mul → Scale.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape (no columns), ErrTooFewObservations.
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
//
// AI-Hints:
//   - Result is positive semi-definite on well-formed data (modulo numeric noise).
func Covariance(X matrix.Reader[float64], opts ...Option) (*matrix.Matrix[float64], []float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, nil, statsErrorf(opCovariance, err)
	}
	o := gatherOptions(opts...)
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		return nil, nil, statsErrorf(opCovariance, matrix.ErrBadShape)
	}
	if r <= o.ddof() {
		return nil, nil, statsErrorf(opCovariance, ErrTooFewObservations)
	}

	Xc, means, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, nil, statsErrorf(opCovariance, err)
	}
	Xct, err := matrix.Transpose[float64](Xc)
	if err != nil {
		return nil, nil, statsErrorf(opCovariance, err)
	}
	G, err := matrix.Mul[float64](Xct, Xc)
	if err != nil {
		return nil, nil, statsErrorf(opCovariance, err)
	}
	cov, err := matrix.Scale[float64](G, 1.0/float64(r-o.ddof()))
	if err != nil {
		return nil, nil, statsErrorf(opCovariance, err)
	}

	return cov, means, nil
}

// Correlation returns the Pearson correlation of the columns of X,
// the column means and the (sample) column standard deviations.
// MAIN DESCRIPTION:
//   - Corr = (Zᵀ Z)/(r−1), Z = (X − mean) · diag(1/std).
//
// Behavior highlights:
//   - Symmetric; diagonal is 1 for non-degenerate columns.
//   - Degenerate columns (std == 0) become zero rows/columns.
//   - Scale-invariant: Corr(α·X) == Corr(X) for α > 0.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape (no columns), ErrTooFewObservations (r < 2).
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
func Correlation(X matrix.Reader[float64]) (*matrix.Matrix[float64], []float64, []float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, nil, nil, statsErrorf(opCorrelation, err)
	}
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		return nil, nil, nil, statsErrorf(opCorrelation, matrix.ErrBadShape)
	}
	if r < 2 {
		return nil, nil, nil, statsErrorf(opCorrelation, ErrTooFewObservations)
	}

	Xc, means, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, nil, nil, statsErrorf(opCorrelation, err)
	}

	stds := make([]float64, c)
	inv := make([]float64, c)
	for j := 0; j < c; j++ {
		col, err := matrix.Column[float64](Xc, j)
		if err != nil {
			return nil, nil, nil, statsErrorf(opCorrelation, err)
		}
		stds[j] = math.Sqrt(floats.Dot(col, col) / float64(r-1))
		if stds[j] > 0 {
			inv[j] = 1 / stds[j]
		}
	}

	Z, err := matrix.ScaleColumns[float64](Xc, inv)
	if err != nil {
		return nil, nil, nil, statsErrorf(opCorrelation, err)
	}
	Zt, err := matrix.Transpose[float64](Z)
	if err != nil {
		return nil, nil, nil, statsErrorf(opCorrelation, err)
	}
	G, err := matrix.Mul[float64](Zt, Z)
	if err != nil {
		return nil, nil, nil, statsErrorf(opCorrelation, err)
	}
	corr, err := matrix.Scale[float64](G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, nil, statsErrorf(opCorrelation, err)
	}
	// pin the diagonal against rounding drift
	for j := 0; j < c; j++ {
		if stds[j] > 0 {
			if err = corr.Set(j, j, 1); err != nil {
				return nil, nil, nil, statsErrorf(opCorrelation, err)
			}
		}
	}

	return corr, means, stds, nil
}
