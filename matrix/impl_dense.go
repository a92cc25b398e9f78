// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous column-major buffer with the explicit index formula i + j*rows.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Fire the change notifier BEFORE every in-place mutation so that views
//     created over this Dense snapshot the pre-mutation state (copy-on-write).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Kernels fast-path on *Dense and walk the flat data slice directly.
//   - Bulk writers (Apply, Fill) notify once, not once per element.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1) + notification; Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxApply   = "Apply"   // method tag used in error wrappers
	ctxFill    = "Fill"    // method tag used in error wrappers
	ctxNewFrom = "NewFrom" // ctor tag for NewDenseFrom
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is the terminal Implementor of every view chain.
//   - r,c hold dimensions (rows, cols); zero is legal for internal/materialized shapes.
//   - data is a flat buffer of length r*c in column-major order (offset = i + j*r).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
//   - subs lists the views that alias this buffer.
type Dense[T Element] struct {
	r, c           int
	data           []T
	validateNaNInf bool
	subs           notifier[T]
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Implementor[float64]    = (*Dense[float64])(nil)
	_ Implementor[complex128] = (*Dense[complex128])(nil)
	_ fmt.Stringer            = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using column-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer (ErrAllocation above MaxElements).
//   - Stage 3: resolve numeric policy from options.
//
// Errors:
//   - ErrInvalidDimensions, ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	buf, err := allocBuffer[T](rows, cols)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &Dense[T]{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// NewDenseFrom builds an r×c Dense from a column-major slice (copied).
// MAIN DESCRIPTION:
//   - Ingestion entry point: validates shape, length and numeric policy.
//
// Implementation:
//   - Stage 1: NewDense(rows, cols, opts...).
//   - Stage 2: len(data) must equal rows*cols (ErrDimensionMismatch).
//   - Stage 3: reject NaN/Inf when the policy is on; copy.
//
// Errors:
//   - ErrInvalidDimensions, ErrAllocation, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom[T Element](rows, cols int, data []T, opts ...Option) (*Dense[T], error) {
	d, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("Dense.%s: len(data)=%d, want %d: %w", ctxNewFrom, len(data), rows*cols, ErrDimensionMismatch)
	}
	if d.validateNaNInf {
		for k, v := range data {
			if isNonFiniteElem(v) {
				return nil, denseErrorf(ctxNewFrom, k%rows, k/rows, ErrNaNInf)
			}
		}
	}
	copy(d.data, data)

	return d, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Used by the materializer (zero-area views) and kernels with legal empty results.
func newDenseZeroOK[T Element](rows, cols int, validateNaNInf bool) (*Dense[T], error) {
	buf, err := allocBuffer[T](rows, cols)
	if err != nil {
		return nil, err
	}

	return &Dense[T]{r: rows, c: cols, data: buf, validateNaNInf: validateNaNInf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// StorageOrder is always ColumnMajor for a Dense root.
func (m *Dense[T]) StorageOrder() Order { return ColumnMajor }

// StorageScheme reports SchemeDense.
func (m *Dense[T]) StorageScheme() Scheme { return SchemeDense }

func (m *Dense[T]) changes() *notifier[T] { return &m.subs }

func (m *Dense[T]) numericPolicy() bool { return m.validateNaNInf }

// indexOf computes the column-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap with coordinates.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Column-major offset: i + j*r.
	return row + col*m.r, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics; Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy and copy-on-write notification.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: fire the change notifier; subscribed views materialize now.
//   - Stage 4: write into the flat buffer.
//
// Behavior highlights:
//   - The write happens strictly after every subscriber has snapshotted, so
//     no view can observe it. If a subscriber fails, the write is skipped.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf, ErrAllocation (from materialization).
//
// Complexity:
//   - Time O(1) without subscribers; O(Σ view sizes) on the first write after views were created.
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFiniteElem(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	if err = m.subs.fire(); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy, no subscribers).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// Storage returns a column-major snapshot copy of the buffer. Never fails.
func (m *Dense[T]) Storage() ([]T, error) {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp, nil
}

// Apply replaces each element with f(i,j,v).
// MAIN DESCRIPTION:
//   - All-or-nothing in-place map with one notification.
//
// Implementation:
//   - Stage 1: compute every new value into a scratch buffer (column-major walk).
//   - Stage 2: reject non-finite results when the policy is on (nothing written).
//   - Stage 3: fire the notifier once, then copy the scratch buffer in.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) scratch.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	next := make([]T, len(m.data))
	var i, j, base int
	var nv T
	for j = 0; j < m.c; j++ {
		base = j * m.r
		for i = 0; i < m.r; i++ {
			nv = f(i, j, m.data[base+i])
			if m.validateNaNInf && isNonFiniteElem(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			next[base+i] = nv
		}
	}
	if err := m.subs.fire(); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxApply, err)
	}
	copy(m.data, next)

	return nil
}

// Fill sets every element to v (one notification).
func (m *Dense[T]) Fill(v T) error {
	if m.validateNaNInf && isNonFiniteElem(v) {
		return fmt.Errorf("Dense.%s: %w", ctxFill, ErrNaNInf)
	}
	if err := m.subs.fire(); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxFill, err)
	}
	for k := range m.data {
		m.data[k] = v
	}

	return nil
}

// Do visits each element in row-major order and calls f(i,j,v);
// stops early when f returns false. Read-only; no allocations.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[i+j*m.r]) {
				return
			}
		}
	}
}

// String provides a readable row-wise dump for diagnostics.
// Not for hot paths. Complexity: O(r*c).
func (m *Dense[T]) String() string {
	return formatRows[T](m)
}

// formatRows renders any Reader row by row ("[a, b]\n").
func formatRows[T Element](r Reader[T]) string {
	var b strings.Builder
	var i, j int
	rows, cols := r.Rows(), r.Cols()
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < cols; j++ {
			v, err := r.At(i, j)
			if err != nil {
				b.WriteString("?")
			} else {
				b.WriteString(fmt.Sprintf("%g", v))
			}
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
