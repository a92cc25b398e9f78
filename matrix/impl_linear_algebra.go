// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Reader implementation,
// including element-wise addition, subtraction, multiplication, division,
// matrix multiplication, transpose and scalar operations. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - One generic code path for the writable/read-only × matrix/matrix,
//     matrix/scalar operator table over real and complex elements.
//   - Results are always fresh Dense-backed handles; operands are never mutated.
//   - In-place variants go through Set/Apply so they honor the copy-on-write protocol.
//
// Notes:
//   - Dense (or Dense-backed handle / Readonly over Dense) operands unlock flat-slice fast paths.
//   - Both operands share the column-major layout, so element-wise fast paths are a single flat loop.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMulElem   = "MulElem"
	opDivElem   = "DivElem"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opMulScalar = "MulScalar"
	opDivScalar = "DivScalar"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opGather    = "Gather"
	opInPlace   = "InPlace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseOf unwraps the Dense behind a Reader when one is directly reachable.
func denseOf[T Element](r Reader[T]) (*Dense[T], bool) {
	switch x := r.(type) {
	case *Dense[T]:
		return x, true
	case *Matrix[T]:
		d, ok := x.impl.(*Dense[T])
		return d, ok
	case *Readonly[T]:
		d, ok := x.m.impl.(*Dense[T])
		return d, ok
	}

	return nil, false
}

// newResult allocates a result Dense (zero-area allowed) with the default policy.
func newResult[T Element](rows, cols int) (*Dense[T], error) {
	return newDenseZeroOK[T](rows, cols, DefaultValidateNaNInf)
}

// Gather returns the elements of r as a column-major slice (copy).
// Complexity: O(r*c).
func Gather[T Element](r Reader[T]) ([]T, error) {
	if err := ValidateNotNil(r); err != nil {
		return nil, matrixErrorf(opGather, err)
	}
	if d, ok := denseOf(r); ok {
		return d.Storage()
	}
	rows, cols := r.Rows(), r.Cols()
	out, err := allocBuffer[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opGather, err)
	}
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if out[i+j*rows], err = r.At(i, j); err != nil {
				return nil, matrixErrorf(opGather, err)
			}
		}
	}

	return out, nil
}

// Column returns column j of r as a slice (copy).
func Column[T Element](r Reader[T], j int) ([]T, error) {
	if err := ValidateNotNil(r); err != nil {
		return nil, matrixErrorf(opGather, err)
	}
	if j < 0 || j >= r.Cols() {
		return nil, matrixErrorf(opGather, fmt.Errorf("column %d: %w", j, ErrOutOfRange))
	}
	rows := r.Rows()
	out := make([]T, rows)
	if d, ok := denseOf(r); ok {
		copy(out, d.data[j*rows:(j+1)*rows])
		return out, nil
	}
	var err error
	for i := 0; i < rows; i++ {
		if out[i], err = r.At(i, j); err != nil {
			return nil, matrixErrorf(opGather, err)
		}
	}

	return out, nil
}

// zipWith computes out[i,j] = f(a[i,j], b[i,j]) into a fresh Dense.
// MAIN DESCRIPTION:
//   - Shared kernel for the matrix/matrix element-wise operators.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate result.
//   - Stage 2: fast path if both are Dense-backed - single flat loop 0..n-1.
//     Otherwise fallback At with fixed column-major order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, and whatever f reports.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func zipWith[T Element](a, b Reader[T], tag string, f func(x, y T) (T, error)) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := newResult[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	da, okA := denseOf(a)
	db, okB := denseOf(b)
	if okA && okB {
		for k := range res.data {
			if res.data[k], err = f(da.data[k], db.data[k]); err != nil {
				return nil, matrixErrorf(tag, denseErrorf(ctxAt, k%max(rows, 1), k/max(rows, 1), err))
			}
		}
		return &Matrix[T]{impl: res}, nil
	}

	var i, j int
	var av, bv T
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if res.data[i+j*rows], err = f(av, bv); err != nil {
				return nil, matrixErrorf(tag, denseErrorf(ctxAt, i, j, err))
			}
		}
	}

	return &Matrix[T]{impl: res}, nil
}

// mapWith computes out[i,j] = f(m[i,j]) into a fresh Dense.
func mapWith[T Element](m Reader[T], tag string, f func(x T) (T, error)) (*Matrix[T], error) {
	src, err := Gather(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newResult[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for k, v := range src {
		if res.data[k], err = f(v); err != nil {
			return nil, matrixErrorf(tag, denseErrorf(ctxAt, k%max(rows, 1), k/max(rows, 1), err))
		}
	}

	return &Matrix[T]{impl: res}, nil
}

// Add returns a + b. Errors: ErrNilMatrix, ErrDimensionMismatch. O(r*c).
func Add[T Element](a, b Reader[T]) (*Matrix[T], error) {
	return zipWith(a, b, opAdd, func(x, y T) (T, error) { return x + y, nil })
}

// Sub returns a − b. Errors: ErrNilMatrix, ErrDimensionMismatch. O(r*c).
func Sub[T Element](a, b Reader[T]) (*Matrix[T], error) {
	return zipWith(a, b, opSub, func(x, y T) (T, error) { return x - y, nil })
}

// MulElem returns the element-wise (Hadamard) product a ⊙ b. O(r*c).
func MulElem[T Element](a, b Reader[T]) (*Matrix[T], error) {
	return zipWith(a, b, opMulElem, func(x, y T) (T, error) { return x * y, nil })
}

// Hadamard is an alias for MulElem.
func Hadamard[T Element](a, b Reader[T]) (*Matrix[T], error) { return MulElem(a, b) }

// DivElem returns the element-wise quotient a ⊘ b.
// Errors: ErrDivideByZero when any b[i,j] == 0. O(r*c).
func DivElem[T Element](a, b Reader[T]) (*Matrix[T], error) {
	return zipWith(a, b, opDivElem, func(x, y T) (T, error) {
		if isZeroElem(y) {
			var zero T
			return zero, ErrDivideByZero
		}
		return x / y, nil
	})
}

// AddScalar returns m + s element-wise.
func AddScalar[T Element](m Reader[T], s T) (*Matrix[T], error) {
	return mapWith(m, opAddScalar, func(x T) (T, error) { return x + s, nil })
}

// SubScalar returns m − s element-wise.
func SubScalar[T Element](m Reader[T], s T) (*Matrix[T], error) {
	return mapWith(m, opSubScalar, func(x T) (T, error) { return x - s, nil })
}

// MulScalar returns s·m.
func MulScalar[T Element](m Reader[T], s T) (*Matrix[T], error) {
	return mapWith(m, opMulScalar, func(x T) (T, error) { return x * s, nil })
}

// Scale is an alias for MulScalar.
func Scale[T Element](m Reader[T], alpha T) (*Matrix[T], error) { return MulScalar(m, alpha) }

// DivScalar returns m / s element-wise. Errors: ErrDivideByZero when s == 0.
func DivScalar[T Element](m Reader[T], s T) (*Matrix[T], error) {
	if isZeroElem(s) {
		return nil, matrixErrorf(opDivScalar, ErrDivideByZero)
	}

	return mapWith(m, opDivScalar, func(x T) (T, error) { return x / s, nil })
}

// Mul returns the matrix product a × b.
// MAIN DESCRIPTION:
//   - Dense fast path walks columns of b and a (j→k→i) over flat buffers.
//   - Fallback uses At with fixed i→j→k order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Element](a, b Reader[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newResult[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, j, k int
	var av, bv, acc T

	da, okA := denseOf(a)
	db, okB := denseOf(b)
	if okA && okB {
		var colA, colB, colR int
		for j = 0; j < bCols; j++ {
			colB = j * aCols
			colR = j * aRows
			for k = 0; k < aCols; k++ {
				bv = db.data[colB+k]
				if isZeroElem(bv) {
					continue // skip zero for performance
				}
				colA = k * aRows
				for i = 0; i < aRows; i++ {
					res.data[colR+i] += da.data[colA+i] * bv
				}
			}
		}
		return &Matrix[T]{impl: res}, nil
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			var zero T
			acc = zero
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			res.data[i+j*aRows] = acc
		}
	}

	return &Matrix[T]{impl: res}, nil
}

// Transpose returns mᵀ as a fresh Dense. O(r*c).
func Transpose[T Element](m Reader[T]) (*Matrix[T], error) {
	src, err := Gather(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newResult[T](cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			// src(i,j) at i + j*rows lands at res(j,i) = j + i*cols
			res.data[j+i*cols] = src[i+j*rows]
		}
	}

	return &Matrix[T]{impl: res}, nil
}

// MatVec returns y = m·x. Errors: ErrNilMatrix, ErrDimensionMismatch. O(r*c).
func MatVec[T Element](m Reader[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	src, err := Gather(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]T, rows)
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			y[i] += src[i+j*rows] * x[j]
		}
	}

	return y, nil
}

// AddInPlace performs dst += b through dst's own write path, so views over
// dst are isolated before the update and a view dst writes through to its parent.
func AddInPlace[T Element](dst *Matrix[T], b Reader[T]) error {
	if err := ValidateBinarySameShape[T](dst, b); err != nil {
		return matrixErrorf(opInPlace, err)
	}
	src, err := Gather(b)
	if err != nil {
		return matrixErrorf(opInPlace, err)
	}
	rows := dst.Rows()

	return dst.Apply(func(i, j int, v T) T { return v + src[i+j*rows] })
}

// ScaleInPlace performs dst *= alpha through dst's own write path.
func ScaleInPlace[T Element](dst *Matrix[T], alpha T) error {
	if err := ValidateNotNil[T](dst); err != nil {
		return matrixErrorf(opInPlace, err)
	}

	return dst.Apply(func(_, _ int, v T) T { return v * alpha })
}
