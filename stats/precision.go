// SPDX-License-Identifier: MIT

package stats

import (
	"math"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/matrix/ops"
)

const (
	opPrecision   = "Precision"
	opPartialCorr = "PartialCorrelation"
)

// Precision returns the inverse of the covariance matrix of X.
// Errors: those of Covariance, matrix.ErrSingular (collinear columns or
// fewer observations than variables).
func Precision(X matrix.Reader[float64], opts ...Option) (*matrix.Matrix[float64], error) {
	cov, _, err := Covariance(X, opts...)
	if err != nil {
		return nil, statsErrorf(opPrecision, err)
	}
	prec, err := ops.Inverse(cov)
	if err != nil {
		return nil, statsErrorf(opPrecision, err)
	}

	return prec, nil
}

// PartialCorrelation returns ρ_ij·rest = −p_ij / sqrt(p_ii p_jj) from the
// precision matrix, with a unit diagonal.
// Errors: those of Precision.
func PartialCorrelation(X matrix.Reader[float64]) (*matrix.Matrix[float64], error) {
	prec, err := Precision(X)
	if err != nil {
		return nil, statsErrorf(opPartialCorr, err)
	}
	p, err := matrix.Gather(prec)
	if err != nil {
		return nil, statsErrorf(opPartialCorr, err)
	}
	n := prec.Rows()
	out := make([]float64, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if i == j {
				out[i+j*n] = 1
				continue
			}
			out[i+j*n] = -p[i+j*n] / math.Sqrt(p[i+i*n]*p[j+j*n])
		}
	}
	pc, err := matrix.FromColumnMajor(n, n, out)
	if err != nil {
		return nil, statsErrorf(opPartialCorr, err)
	}

	return pc, nil
}
