// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Readonly is a non-owning read facade over a Matrix.
// It exposes no Set, never subscribes and never fires a notifier, so wrapping
// a handle does not alter the invalidation protocol of what it wraps. Because
// it holds the handle (not the Implementor), it follows materializations.
type Readonly[T Element] struct {
	m *Matrix[T]
}

var _ Reader[float64] = (*Readonly[float64])(nil)

// NewReadonly wraps m. Errors: ErrNilMatrix.
func NewReadonly[T Element](m *Matrix[T]) (*Readonly[T], error) {
	if m == nil || m.impl == nil {
		return nil, fmt.Errorf("Readonly: %w", ErrNilMatrix)
	}

	return &Readonly[T]{m: m}, nil
}

// Rows returns the number of rows.
func (r *Readonly[T]) Rows() int { return r.m.Rows() }

// Cols returns the number of columns.
func (r *Readonly[T]) Cols() int { return r.m.Cols() }

// At reads element (i,j).
func (r *Readonly[T]) At(i, j int) (T, error) { return r.m.At(i, j) }

// StorageOrder reports the order of the root buffer.
func (r *Readonly[T]) StorageOrder() Order { return r.m.StorageOrder() }

// StorageScheme reports the scheme of the wrapped handle.
func (r *Readonly[T]) StorageScheme() Scheme { return r.m.StorageScheme() }

// Storage returns a column-major snapshot copy.
func (r *Readonly[T]) Storage() ([]T, error) { return r.m.Storage() }

// String renders rows for diagnostics.
func (r *Readonly[T]) String() string { return formatRows[T](r) }
