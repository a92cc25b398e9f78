// SPDX-License-Identifier: MIT

package gda

import (
	"math"

	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/gonum/mat"
)

// thinSVD factorizes a and returns U, singular values and V (thin).
func thinSVD(a mat.Matrix) (*mat.Dense, []float64, *mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, nil, nil, ErrFactorization
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	return &u, svd.Values(nil), &v, nil
}

// countAbove returns how many leading values exceed tol (values sorted descending).
func countAbove(values []float64, tol float64) int {
	n := 0
	for _, s := range values {
		if s <= tol {
			break
		}
		n++
	}

	return n
}

// alignSigns flips each of the first k components in every given matrix so
// that the largest-magnitude entry of that column in ref is positive. Results become deterministic
// across LAPACK sign conventions.
func alignSigns(k int, ref *mat.Dense, others ...*mat.Dense) {
	rows, _ := ref.Dims()
	for j := 0; j < k; j++ {
		best := 0.0
		for i := 0; i < rows; i++ {
			best = math.Max(best, math.Abs(ref.At(i, j)))
		}
		// first entry within rounding of the maximum, so ties resolve by position
		at := 0
		for i := 0; i < rows; i++ {
			if math.Abs(ref.At(i, j)) >= best*(1-1e-9) {
				at = i
				break
			}
		}
		if ref.At(at, j) >= 0 {
			continue
		}
		for _, m := range append([]*mat.Dense{ref}, others...) {
			r, _ := m.Dims()
			for i := 0; i < r; i++ {
				m.Set(i, j, -m.At(i, j))
			}
		}
	}
}

// leading returns a copy of the first k columns of m.
func leading(m *mat.Dense, k int) *mat.Dense {
	r, _ := m.Dims()
	out := mat.NewDense(r, k, nil)
	out.Copy(m.Slice(0, r, 0, k))

	return out
}

// toMatrix converts a gonum result back to an lvmat handle.
func toMatrix(tag string, m mat.Matrix) (*matrix.Matrix[float64], error) {
	out, err := matrix.FromGonum(m)
	if err != nil {
		return nil, gdaErrorf(tag, err)
	}

	return out, nil
}
