// SPDX-License-Identifier: MIT
// Package: gda
//
// Classical (Torgerson) multidimensional scaling.
//
// Implementation:
//   - Stage 1: validate a symmetric n×n distance matrix with a zero diagonal.
//   - Stage 2: B = −½ J D⁽²⁾ J with J = I − 11ᵀ/n (double centering).
//   - Stage 3: eigendecompose B (gonum EigenSym), order eigenvalues descending.
//   - Stage 4: coordinates X_k = V_k · sqrt(λ_k) over positive eigenvalues.
//
// Complexity:
//   - Time O(n³), Space O(n²).

package gda

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/gonum/mat"
)

const (
	opMDS       = "ClassicalMDS"
	opDistances = "EuclideanDistances"
)

// MDSResult holds a classical MDS embedding.
type MDSResult struct {
	Coords      *matrix.Matrix[float64] // n×k embedding
	Eigenvalues []float64               // all n eigenvalues of B, descending (may be negative)
}

// ClassicalMDS embeds the points described by the distance matrix D.
// The number of dimensions defaults to DefaultMDSDims; WithComponents overrides it.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry,
// matrix.ErrBadShape (non-zero diagonal), ErrTooFewObservations (n < 2),
// ErrDegenerate (no positive eigenvalue), ErrFactorization.
func ClassicalMDS(D matrix.Reader[float64], opts ...Option) (*MDSResult, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSymmetric(D, o.tol); err != nil {
		return nil, gdaErrorf(opMDS, err)
	}
	n := D.Rows()
	if n < 2 {
		return nil, gdaErrorf(opMDS, ErrTooFewObservations)
	}
	data, err := matrix.Gather(D)
	if err != nil {
		return nil, gdaErrorf(opMDS, err)
	}
	for i := 0; i < n; i++ {
		if math.Abs(data[i+i*n]) > o.tol {
			return nil, gdaErrorf(opMDS, matrix.ErrBadShape)
		}
	}

	// Squared distances with row, column and grand means for double centering.
	sq := make([]float64, n*n)
	rowMean := make([]float64, n)
	var grand float64
	var i, j int
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			d := data[i+j*n]
			sq[i+j*n] = d * d
			rowMean[i] += d * d / float64(n)
		}
	}
	for _, m := range rowMean {
		grand += m / float64(n)
	}
	B := mat.NewSymDense(n, nil)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			// D² is symmetric, so column means equal row means.
			B.SetSym(i, j, -0.5*(sq[i+j*n]-rowMean[i]-rowMean[j]+grand))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(B, true); !ok {
		return nil, gdaErrorf(opMDS, ErrFactorization)
	}
	values := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	order := make([]int, n)
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] > values[order[b]] })
	sorted := make([]float64, n)
	for k, idx := range order {
		sorted[k] = values[idx]
	}

	want := DefaultMDSDims
	if o.components != componentsAllAxes {
		want = o.components
	}
	k := min(want, countAbove(sorted, o.tol))
	if k == 0 {
		return nil, gdaErrorf(opMDS, ErrDegenerate)
	}

	X := mat.NewDense(n, k, nil)
	for a := 0; a < k; a++ {
		scale := math.Sqrt(sorted[a])
		for i = 0; i < n; i++ {
			X.Set(i, a, vecs.At(i, order[a])*scale)
		}
	}
	alignSigns(k, X)

	coords, err := toMatrix(opMDS, X)
	if err != nil {
		return nil, err
	}

	return &MDSResult{Coords: coords, Eigenvalues: sorted}, nil
}

// EuclideanDistances returns the n×n matrix of Euclidean distances between the rows of X.
// Errors: matrix.ErrNilMatrix, ErrTooFewObservations (no rows). O(n²·p).
func EuclideanDistances(X matrix.Reader[float64]) (*matrix.Matrix[float64], error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, gdaErrorf(opDistances, err)
	}
	n, p := X.Rows(), X.Cols()
	if n == 0 {
		return nil, gdaErrorf(opDistances, ErrTooFewObservations)
	}
	data, err := matrix.Gather(X)
	if err != nil {
		return nil, gdaErrorf(opDistances, err)
	}
	out := make([]float64, n*n)
	var i, j, c int
	for j = 0; j < n; j++ {
		for i = j + 1; i < n; i++ {
			var acc float64
			for c = 0; c < p; c++ {
				d := data[i+c*n] - data[j+c*n]
				acc += d * d
			}
			dist := math.Sqrt(acc)
			out[i+j*n] = dist
			out[j+i*n] = dist
		}
	}
	D, err := matrix.FromColumnMajor(n, n, out)
	if err != nil {
		return nil, gdaErrorf(opDistances, err)
	}

	return D, nil
}
