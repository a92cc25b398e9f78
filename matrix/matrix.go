// SPDX-License-Identifier: MIT

// Package matrix - the public handle.
//
// What & Why:
//
//	A Matrix is a single mutable slot holding its current Implementor
//	(*Dense or *View). Views delegate through their parent's slot rather
//	than through the Implementor object, so when a view materializes and its
//	slot switches from View to Dense, the handle keeps its identity and every
//	descendant resolves through the new Dense without being touched.
//
// Complexity:
//
//	Rows/Cols/StorageScheme are O(1); At/Set cost O(depth of the view chain).
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is the public handle over an Implementor.
// The zero value is not usable; build one with New, FromColumnMajor, FromRows or Wrap.
type Matrix[T Element] struct {
	impl Implementor[T]
}

var (
	_ Reader[float64]    = (*Matrix[float64])(nil)
	_ Reader[complex128] = (*Matrix[complex128])(nil)
)

// New returns a rows×cols zero matrix backed by a fresh Dense.
func New[T Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	d, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	return &Matrix[T]{impl: d}, nil
}

// FromColumnMajor builds a matrix from a column-major slice (copied).
// Errors: ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
func FromColumnMajor[T Element](rows, cols int, data []T, opts ...Option) (*Matrix[T], error) {
	d, err := NewDenseFrom(rows, cols, data, opts...)
	if err != nil {
		return nil, err
	}

	return &Matrix[T]{impl: d}, nil
}

// FromRows builds a matrix from a slice of equally long rows.
// Errors: ErrInvalidDimensions (empty input), ErrDimensionMismatch (ragged rows), ErrNaNInf.
func FromRows[T Element](rows [][]T, opts ...Option) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	data := make([]T, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		for j, v := range row {
			data[i+j*r] = v
		}
	}

	return FromColumnMajor(r, c, data, opts...)
}

// Wrap places an existing Dense into a new handle. The Dense keeps its
// subscribers; several handles may share one Dense.
func Wrap[T Element](d *Dense[T]) (*Matrix[T], error) {
	if d == nil {
		return nil, ErrNilMatrix
	}

	return &Matrix[T]{impl: d}, nil
}

// Implementor returns the current backing Implementor (Dense or View).
// The result may change after the matrix is materialized.
func (m *Matrix[T]) Implementor() Implementor[T] { return m.impl }

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.impl.Rows() }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.impl.Cols() }

// At reads element (i,j).
func (m *Matrix[T]) At(i, j int) (T, error) { return m.impl.At(i, j) }

// Set writes element (i,j); views write through to their parent.
func (m *Matrix[T]) Set(i, j int, v T) error { return m.impl.Set(i, j, v) }

// StorageOrder reports the order of the root buffer.
func (m *Matrix[T]) StorageOrder() Order { return m.impl.StorageOrder() }

// StorageScheme reports whether the handle is currently Dense or a View.
func (m *Matrix[T]) StorageScheme() Scheme { return m.impl.StorageScheme() }

// Storage returns a column-major snapshot copy (GetStorage).
func (m *Matrix[T]) Storage() ([]T, error) { return m.impl.Storage() }

// View returns a view selecting rows and cols (nil selects all).
func (m *Matrix[T]) View(rows, cols []int) (*Matrix[T], error) {
	return NewView(m, rows, cols)
}

// Window returns a contiguous view [r0, r0+h) × [c0, c0+w).
// Errors: ErrBadShape when the window exceeds the matrix.
func (m *Matrix[T]) Window(r0, c0, h, w int) (*Matrix[T], error) {
	if r0 < 0 || c0 < 0 || h < 0 || w < 0 || r0+h > m.Rows() || c0+w > m.Cols() {
		return nil, fmt.Errorf("Matrix.Window(%d,%d,%d,%d): %w", r0, c0, h, w, ErrBadShape)
	}

	return NewView(m, Range(r0, r0+h-1), Range(c0, c0+w-1))
}

// Row returns a 1×cols view of row i.
func (m *Matrix[T]) Row(i int) (*Matrix[T], error) { return NewView(m, []int{i}, nil) }

// Col returns a rows×1 view of column j.
func (m *Matrix[T]) Col(j int) (*Matrix[T], error) { return NewView(m, nil, []int{j}) }

// Clone returns an independent Dense-backed copy of the visible data.
func (m *Matrix[T]) Clone() (*Matrix[T], error) {
	switch impl := m.impl.(type) {
	case *Dense[T]:
		return &Matrix[T]{impl: impl.Clone()}, nil
	case *View[T]:
		data, err := impl.snapshot()
		if err != nil {
			return nil, err
		}
		return &Matrix[T]{impl: &Dense[T]{r: impl.Rows(), c: impl.Cols(), data: data, validateNaNInf: impl.numericPolicy()}}, nil
	}

	return nil, ErrNilMatrix
}

// Detach materializes a view handle now (explicit copy request).
// No-op on Dense handles.
func (m *Matrix[T]) Detach() error {
	if v, ok := m.impl.(*View[T]); ok {
		return v.materialize()
	}

	return nil
}

// Subscribers reports how many live views are registered on the current Implementor.
func (m *Matrix[T]) Subscribers() int { return m.impl.changes().live() }

// Apply replaces each element with f(i,j,v).
// Dense handles notify once. View handles evaluate f over a snapshot taken
// before any write, reject non-finite results up front, and only then write
// through Set; cells repeated by duplicate selectors see the old value.
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) error {
	switch impl := m.impl.(type) {
	case *Dense[T]:
		return impl.Apply(f)
	case *View[T]:
		return impl.apply(f)
	}

	return ErrNilMatrix
}

// Fill sets every element to v.
func (m *Matrix[T]) Fill(v T) error {
	if d, ok := m.impl.(*Dense[T]); ok {
		return d.Fill(v)
	}

	return m.Apply(func(int, int, T) T { return v })
}

// Readonly returns a read-only facade over this handle.
func (m *Matrix[T]) Readonly() *Readonly[T] { return &Readonly[T]{m: m} }

// String renders rows for diagnostics, prefixed with the storage scheme.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	b.WriteString(m.impl.StorageScheme().String())
	b.WriteString(fmt.Sprintf(" %dx%d\n", m.Rows(), m.Cols()))
	b.WriteString(formatRows[T](m))

	return b.String()
}

// Equal reports element-wise equality of shape and values.
func Equal[T Element](a, b Reader[T]) bool {
	if a == nil || b == nil || a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false
			}
			bv, err := b.At(i, j)
			if err != nil || av != bv {
				return false
			}
		}
	}

	return true
}
