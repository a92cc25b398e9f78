// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the storage engine and the kernels.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Element is the set of supported element domains: real and complex.
// Both satisfy + - * / so every kernel is written once.
type Element interface {
	float64 | complex128
}

// Order describes the physical layout of a Buffer.
type Order int

const (
	// ColumnMajor stores element (r,c) at offset r + c*rows.
	ColumnMajor Order = iota
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case ColumnMajor:
		return "ColumnMajor"
	default:
		return "Order(?)"
	}
}

// Scheme is the observable storage tag of an Implementor.
type Scheme int

const (
	// SchemeDense marks an Implementor that owns its Buffer.
	SchemeDense Scheme = iota
	// SchemeView marks an Implementor that delegates to a parent through an IndexMapping.
	SchemeView
)

// String implements fmt.Stringer.
func (s Scheme) String() string {
	switch s {
	case SchemeDense:
		return "Dense"
	case SchemeView:
		return "View"
	default:
		return "Scheme(?)"
	}
}

// Reader is the uniform read-only element-access contract.
// Kernels (ops, statistics, GDA) accept Reader so that writable matrices,
// views and Readonly wrappers share one code path.
//
// Complexity notes: Rows/Cols are O(1); At is O(depth of the view chain).
type Reader[T Element] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)
}

// Implementor is the internal storage-and-access object behind a Matrix:
// either a *Dense or a *View. The unexported methods seal the set.
type Implementor[T Element] interface {
	Reader[T]

	// Set assigns v at (i, j). Fires the change notifier before mutating.
	Set(i, j int, v T) error

	// StorageOrder reports the layout of the root Buffer.
	StorageOrder() Order

	// StorageScheme reports Dense or View.
	StorageScheme() Scheme

	// Storage returns a column-major snapshot copy of the visible elements.
	// Errors: ErrAllocation when the snapshot cannot be allocated, read errors
	// from the delegation path.
	Storage() ([]T, error)

	changes() *notifier[T]
	numericPolicy() bool
}
