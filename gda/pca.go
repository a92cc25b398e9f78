// SPDX-License-Identifier: MIT
// Package: gda
//
// PCA (principal component analysis) by thin SVD of the centered data.
//
// Implementation:
//   - Stage 1: center columns (optionally divide by the sample std).
//   - Stage 2: Xs = U Σ Vᵀ; loadings = V[:, :k]; scores = Xs · loadings.
//   - Stage 3: eigenvalues λ_i = σ_i² / (n−1); explained ratio λ_i / Σλ.
//   - Stage 4: align component signs (largest |loading| positive).
//
// Complexity:
//   - Time O(n·p·min(n,p)), Space O(n·p).

package gda

import (
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opPCA          = "PCA"
	opPCATransform = "PCA.Transform"
)

// PCAResult holds a fitted principal component analysis.
type PCAResult struct {
	Scores            *matrix.Matrix[float64] // n×k row coordinates
	Loadings          *matrix.Matrix[float64] // p×k principal axes (unit columns)
	Eigenvalues       []float64               // variance along each kept axis
	ExplainedVariance []float64               // Eigenvalues / total variance
	Means             []float64               // column means used for centering
	Scales            []float64               // column std devs; nil unless standardized

	inv []float64
}

// PCA fits a principal component analysis on the rows of X (observations × variables).
// Errors: matrix.ErrNilMatrix, ErrTooFewObservations (n < 2), ErrDegenerate
// (no variance), ErrFactorization.
func PCA(X matrix.Reader[float64], opts ...Option) (*PCAResult, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, gdaErrorf(opPCA, err)
	}
	o := gatherOptions(opts...)
	n, p := X.Rows(), X.Cols()
	if n < 2 {
		return nil, gdaErrorf(opPCA, ErrTooFewObservations)
	}
	if p == 0 {
		return nil, gdaErrorf(opPCA, ErrDegenerate)
	}

	Xc, means, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, gdaErrorf(opPCA, err)
	}
	res := &PCAResult{Means: means}
	if o.standardize {
		if res.Scales, err = stats.ColumnStdDevs(X); err != nil {
			return nil, gdaErrorf(opPCA, err)
		}
		res.inv = make([]float64, p)
		for j, s := range res.Scales {
			if s > 0 {
				res.inv[j] = 1 / s
			}
		}
		if Xc, err = matrix.ScaleColumns[float64](Xc, res.inv); err != nil {
			return nil, gdaErrorf(opPCA, err)
		}
	}

	g, err := matrix.ToGonum(Xc)
	if err != nil {
		return nil, gdaErrorf(opPCA, err)
	}
	_, sv, v, err := thinSVD(g)
	if err != nil {
		return nil, gdaErrorf(opPCA, err)
	}
	available := countAbove(sv, o.tol)
	if available == 0 {
		return nil, gdaErrorf(opPCA, ErrDegenerate)
	}
	k := o.keep(available)

	load := leading(v, k)
	var scores mat.Dense
	scores.Mul(g, load)
	alignSigns(k, load, &scores)

	all := make([]float64, len(sv))
	for i, s := range sv {
		all[i] = s * s / float64(n-1)
	}
	total := floats.Sum(all)
	res.Eigenvalues = append([]float64(nil), all[:k]...)
	res.ExplainedVariance = append([]float64(nil), all[:k]...)
	floats.Scale(1/total, res.ExplainedVariance)

	if res.Scores, err = toMatrix(opPCA, &scores); err != nil {
		return nil, err
	}
	if res.Loadings, err = toMatrix(opPCA, load); err != nil {
		return nil, err
	}

	return res, nil
}

// Components returns the number of kept axes.
func (r *PCAResult) Components() int { return len(r.Eigenvalues) }

// Transform projects new observations onto the fitted axes.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (column count differs).
func (r *PCAResult) Transform(X matrix.Reader[float64]) (*matrix.Matrix[float64], error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, gdaErrorf(opPCATransform, err)
	}
	if X.Cols() != len(r.Means) {
		return nil, gdaErrorf(opPCATransform, matrix.ErrDimensionMismatch)
	}
	Xc, err := matrix.SubColumns(X, r.Means)
	if err != nil {
		return nil, gdaErrorf(opPCATransform, err)
	}
	if r.inv != nil {
		if Xc, err = matrix.ScaleColumns[float64](Xc, r.inv); err != nil {
			return nil, gdaErrorf(opPCATransform, err)
		}
	}
	out, err := matrix.Mul[float64](Xc, r.Loadings)
	if err != nil {
		return nil, gdaErrorf(opPCATransform, err)
	}

	return out, nil
}
