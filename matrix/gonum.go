// SPDX-License-Identifier: MIT

// Package matrix - bridge to gonum/mat.
//
// gonum stores row-major; the bridge re-lays elements in both directions, so
// neither side aliases the other's buffer.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies a real matrix into a new *mat.Dense.
// Errors: ErrNilMatrix; ErrBadShape for zero-area inputs (gonum rejects them).
func ToGonum(m Reader[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return nil, matrixErrorf(opToGonum, ErrBadShape)
	}
	src, err := Gather(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	out := mat.NewDense(rows, cols, nil)
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			out.Set(i, j, src[i+j*rows])
		}
	}

	return out, nil
}

// FromGonum copies any mat.Matrix into a new Dense-backed handle.
// Errors: ErrNilMatrix, ErrNaNInf (when the numeric policy is on).
func FromGonum(g mat.Matrix, opts ...Option) (*Matrix[float64], error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := g.Dims()
	data := make([]float64, rows*cols)
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			data[i+j*rows] = g.At(i, j)
		}
	}
	m, err := FromColumnMajor(rows, cols, data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}

	return m, nil
}

// ToGonumComplex copies a complex matrix into a new *mat.CDense.
func ToGonumComplex(m Reader[complex128]) (*mat.CDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return nil, matrixErrorf(opToGonum, ErrBadShape)
	}
	src, err := Gather(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	out := mat.NewCDense(rows, cols, nil)
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			out.Set(i, j, src[i+j*rows])
		}
	}

	return out, nil
}
