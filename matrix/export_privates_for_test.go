// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels, Options and Notifier State
//
// Purpose:
//   - Expose UNEXPORTED ew* micro-kernels, the internal options snapshot and the
//     subscription state of views to matrix_test ONLY.
//   - The _test.go suffix keeps this surface out of production builds.
//
// AI-Hints:
//   - Keep ALL test-only bridges co-located here to avoid clutter across files.
//   - If a private helper changes signature, mirror the change here once, not across many tests.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
)

// --- ew* micro-kernel bridges -------------------------------------------------

// EwBroadcastSubCols_TestOnly forwards to ewBroadcastSubCols.
func EwBroadcastSubCols_TestOnly(X Reader[float64], colMeans []float64) (*Matrix[float64], error) {
	return ewBroadcastSubCols(X, colMeans)
}

// EwScaleCols_TestOnly forwards to ewScaleCols.
func EwScaleCols_TestOnly(X Reader[float64], scale []float64) (*Matrix[float64], error) {
	return ewScaleCols(X, scale)
}

// EwAllClose_TestOnly forwards to ewAllClose.
func EwAllClose_TestOnly(a, b Reader[float64], rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// AllocBuffer_TestOnly forwards to allocBuffer.
func AllocBuffer_TestOnly(rows, cols int) ([]float64, error) {
	return allocBuffer[float64](rows, cols)
}

// --- notifier bridge ----------------------------------------------------------

// IsLinked_TestOnly reports whether m is a view still registered on an ancestor.
func IsLinked_TestOnly[T Element](m *Matrix[T]) bool {
	v, ok := m.impl.(*View[T])
	return ok && v.Linked()
}

// ParentImpl_TestOnly returns the Implementor a view currently delegates to
// (nil for Dense handles).
func ParentImpl_TestOnly[T Element](m *Matrix[T]) Implementor[T] {
	if v, ok := m.impl.(*View[T]); ok {
		return v.parent.impl
	}

	return nil
}

// --- options snapshot bridge --------------------------------------------------

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// NewMatrixOptionsSnapshot_TestOnly builds Options via public Option funcs and returns a snapshot.
func NewMatrixOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(NewMatrixOptions(opts...))
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}
