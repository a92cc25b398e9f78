// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) shared by
//     the public facade in api.go and by the stats/gda packages through it.
//   - Keep all loops deterministic and cache-friendly over column-major buffers.
//
// Determinism & Performance:
//   - Fixed loop orders (j→i, matching the column-major layout).
//   - Inputs are gathered once; no hidden allocations beyond the output Dense.
//
// AI-Hints:
//   - Keep broadcast arrays (colMeans/scale) precomputed and reused across calls.

package matrix

import (
	"fmt"
	"math"
)

const (
	opBroadcastSubCols = "broadcastSubCols"
	opScaleCols        = "scaleCols"
	opReplaceNonFinite = "replaceInfNaN"
	opClip             = "clipRange"
	opAllClose         = "allClose"
)

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// Time: O(r*c). Space: O(r*c).
//
// AI-Hint: Use for column-centering and z-scoring.
func ewBroadcastSubCols[T Element](X Reader[T], colMeans []T) (*Matrix[T], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	if len(colMeans) != X.Cols() {
		return nil, matrixErrorf(opBroadcastSubCols, ErrDimensionMismatch)
	}
	rows := X.Rows()

	return mapIndexed(X, opBroadcastSubCols, func(k int, v T) (T, error) {
		return v - colMeans[k/rows], nil
	})
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
func ewScaleCols[T Element](X Reader[T], scale []T) (*Matrix[T], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if len(scale) != X.Cols() {
		return nil, matrixErrorf(opScaleCols, ErrDimensionMismatch)
	}
	rows := X.Rows()

	return mapIndexed(X, opScaleCols, func(k int, v T) (T, error) {
		return v * scale[k/rows], nil
	})
}

// ewReplaceInfNaN replaces every non-finite element with val.
func ewReplaceInfNaN[T Element](X Reader[T], val T) (*Matrix[T], error) {
	if isNonFiniteElem(val) {
		return nil, matrixErrorf(opReplaceNonFinite, ErrNaNInf)
	}

	return mapWith(X, opReplaceNonFinite, func(v T) (T, error) {
		if isNonFiniteElem(v) {
			return val, nil
		}
		return v, nil
	})
}

// ewClipRange clamps every real element into [lo, hi].
// Bounds given as lo > hi are swapped; NaN bounds are rejected (ErrNaNInf).
func ewClipRange(X Reader[float64], lo, hi float64) (*Matrix[float64], error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, matrixErrorf(opClip, fmt.Errorf("lo=%g hi=%g: %w", lo, hi, ErrNaNInf))
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return mapWith(X, opClip, func(v float64) (float64, error) {
		return min(max(v, lo), hi), nil
	})
}

// ewAllClose reports |a-b| ≤ atol + rtol*|b| for every element.
// NaN matches nothing; equal infinities match. Complex elements compare by modulus.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ewAllClose[T Element](a, b Reader[T], rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	av, err := Gather(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bv, err := Gather(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for k := range av {
		if av[k] == bv[k] {
			continue // covers equal infinities
		}
		if isNonFiniteElem(av[k]) || isNonFiniteElem(bv[k]) {
			return false, nil // NaN never matches; unequal infinities differ
		}
		if absElem(av[k]-bv[k]) > atol+rtol*absElem(bv[k]) {
			return false, nil
		}
	}

	return true, nil
}

// mapIndexed is mapWith with the flat column-major offset passed to f.
func mapIndexed[T Element](m Reader[T], tag string, f func(k int, v T) (T, error)) (*Matrix[T], error) {
	src, err := Gather(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res, err := newResult[T](m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for k, v := range src {
		if res.data[k], err = f(k, v); err != nil {
			return nil, matrixErrorf(tag, err)
		}
	}

	return &Matrix[T]{impl: res}, nil
}
