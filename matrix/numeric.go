// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"math/cmplx"
)

// isNonFinite reports NaN or ±Inf for a real scalar.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// isNonFiniteElem reports whether v violates the finite-only policy.
// Complex values are non-finite when either part is NaN or infinite.
func isNonFiniteElem[T Element](v T) bool {
	switch x := any(v).(type) {
	case float64:
		return isNonFinite(x)
	case complex128:
		return cmplx.IsNaN(x) || cmplx.IsInf(x)
	}

	return false
}

// absElem returns |v| (modulus for complex values).
func absElem[T Element](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	}

	return 0
}

// isZeroElem reports v == 0 without relying on a typed zero constant.
func isZeroElem[T Element](v T) bool {
	var zero T
	return v == zero
}

// allocBuffer returns a zeroed column-major buffer for rows×cols elements.
// Negative dimensions yield ErrInvalidDimensions; products above MaxElements
// (including int overflow) yield ErrAllocation.
func allocBuffer[T Element](rows, cols int) ([]T, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if cols != 0 && rows > MaxElements/cols {
		return nil, ErrAllocation
	}

	return make([]T, rows*cols), nil
}
