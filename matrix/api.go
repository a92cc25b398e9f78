// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Pass Dense-backed handles to unlock fast-paths in kernels (flat-slice loops).
//   - Use Identity/Zeros to build matrices with explicit shape and neutral elements.

package matrix

// ---------- Constructors & Utilities ----------

// Zeros returns a new zero-initialized rows×cols matrix.
// Thin alias of New with an intention-revealing name.
func Zeros[T Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return New[T](rows, cols, opts...)
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T Element](n int, opts ...Option) (*Matrix[T], error) {
	d, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	one := fromFloat[T](1)
	for i := 0; i < n; i++ {
		d.data[i+i*n] = one // no views exist yet; write the buffer directly
	}

	return &Matrix[T]{impl: d}, nil
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike[T Element](m Reader[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return New[T](m.Rows(), m.Cols())
}

// ---------- Convenience facades (compositions only; no loop duplication) ----------

// Symmetrize returns (m + mᵀ)/2. Deterministic composition: Transpose → Add → Scale.
// Complexity: O(rc).
//
// AI-Hints: Useful in spectral methods (PCA, MDS) to repair asymmetry drift.
func Symmetrize(m Reader[float64]) (*Matrix[float64], error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add[float64](m, mt)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return Scale[float64](sum, 0.5)
}

// RowSums returns r[i] = sum_j m[i,j] via MatVec(m, ones). O(rc).
func RowSums[T Element](m Reader[T]) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}

	return MatVec(m, ones[T](m.Cols()))
}

// ColSums returns c[j] = sum_i m[i,j] via Transpose then MatVec. O(rc).
//
// AI-Hints: Useful for column-normalization and PCA centering.
func ColSums[T Element](m Reader[T]) ([]T, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}

	return MatVec[T](mt, ones[T](mt.Cols()))
}

// ColMeans returns the per-column arithmetic means. ErrBadShape when m has no rows.
func ColMeans[T Element](m Reader[T]) ([]T, error) {
	sums, err := ColSums(m)
	if err != nil {
		return nil, matrixErrorf("ColMeans", err)
	}
	rows := m.Rows()
	if rows == 0 {
		return nil, matrixErrorf("ColMeans", ErrBadShape)
	}
	n := fromFloat[T](float64(rows))
	for j := range sums {
		sums[j] /= n
	}

	return sums, nil
}

// ---------- Broadcast, sanitization & numeric compare (thin wrappers → ew*) ----------

// CenterColumns returns Xc = X − mean(X, by columns) and the column means.
// Time: O(r*c). Space: O(r*c).
//
// AI-Hints: feed means into PCA/Regression; reuse for z-scoring.
func CenterColumns[T Element](X Reader[T]) (*Matrix[T], []T, error) {
	means, err := ColMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf("CenterColumns", err)
	}
	out, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf("CenterColumns", err)
	}

	return out, means, nil
}

// SubColumns returns out[i,j] = X[i,j] − v[j].
func SubColumns[T Element](X Reader[T], v []T) (*Matrix[T], error) {
	return ewBroadcastSubCols(X, v)
}

// ScaleColumns returns out[i,j] = X[i,j] · s[j].
func ScaleColumns[T Element](X Reader[T], s []T) (*Matrix[T], error) {
	return ewScaleCols(X, s)
}

// Clip returns a copy of m with elements clamped into [lo, hi].
//
//	out[i,j] = min(max(A[i,j], lo), hi).
//
// Policy: If lo > hi, bounds are swapped (normalized). NaN bounds are rejected.
// AI-Hints:
//   - helps enforce constraints (e.g., probabilities ∈ [0,1]) before normalization.
func Clip(m Reader[float64], lo, hi float64) (*Matrix[float64], error) {
	return ewClipRange(m, lo, hi)
}

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} are replaced by 'val' (finite).
// Time: O(r*c). Space: O(r*c).
//
// Policy: 'val' must be finite; otherwise ErrNaNInf is returned.
// AI-Hints:
//   - Use ReplaceInfNaN before statistics to avoid NaN propagation.
func ReplaceInfNaN[T Element](m Reader[T], val T) (*Matrix[T], error) {
	return ewReplaceInfNaN(m, val)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose[T Element](a, b Reader[T], rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// ones returns a length-n vector of multiplicative identities.
func ones[T Element](n int) []T {
	out := make([]T, n)
	one := fromFloat[T](1)
	for i := range out {
		out[i] = one
	}

	return out
}

// fromFloat converts a real scalar into the element type.
func fromFloat[T Element](x float64) T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = x
	case *complex128:
		*p = complex(x, 0)
	}

	return v
}
