// SPDX-License-Identifier: MIT

// Package matrix - View implementor (index-mapped delegation, no buffer).
//
// Purpose:
//   - Let a sub-selection of rows/columns behave as an independent matrix while
//     physically sharing its parent's buffer.
//   - Delegate through the parent's stable slot (*Matrix), so a rebind of the
//     parent is picked up lazily by every descendant.
//
// Contract:
//   - At walks the mapping and recurses through any number of view layers.
//   - Set fires this view's own notifier (children snapshot first), then
//     writes through to the parent with translated coordinates. The writer and
//     every view on its delegation path stay linked; only off-path views are
//     isolated.
//   - A parent mutation materializes the view (see materialize.go).
//
// Complexity quicksheet:
//   - NewView: O(len(rows)+len(cols)); At/Set: O(depth).
package matrix

import "fmt"

const (
	ctxView      = "View"    // ctor tag for NewView
	ctxViewAt    = "View.At" // method tag used in error wrappers
	ctxViewSet   = "View.Set"
	ctxViewApply = "View.Apply"
)

// View delegates element access to a parent through an IndexMapping.
//   - parent: the slot the view reads through (Dense or View behind it).
//   - owner : this view's own slot; materialization swaps its content.
//   - source: the notifier this view is registered on (nil once detached).
//   - writing: set while a write through this view is in flight.
type View[T Element] struct {
	parent  *Matrix[T]
	mapping IndexMapping
	owner   *Matrix[T]
	subs    notifier[T]
	source  *notifier[T]
	writing bool
}

var (
	_ Implementor[float64]    = (*View[float64])(nil)
	_ Implementor[complex128] = (*View[complex128])(nil)
)

// NewView creates a view over parent selecting the given rows and columns.
// MAIN DESCRIPTION:
//   - Sub-selection constructor (CreateView); the result shares storage with parent.
//
// Implementation:
//   - Stage 1: validate parent (ErrNilMatrix).
//   - Stage 2: nil selectors mean "all"; copy selectors into an IndexMapping.
//   - Stage 3: validate every entry against the parent's current extents.
//   - Stage 4: allocate the owner slot and subscribe to the parent's notifier.
//
// Behavior highlights:
//   - Duplicated and permuted indices are allowed.
//   - An empty (non-nil) selector yields a zero-area view; it still subscribes.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(len(rows)+len(cols)), Space O(len(rows)+len(cols)).
func NewView[T Element](parent *Matrix[T], rows, cols []int) (*Matrix[T], error) {
	if parent == nil || parent.impl == nil {
		return nil, fmt.Errorf("%s: %w", ctxView, ErrNilMatrix)
	}
	if rows == nil {
		rows = All(parent.Rows())
	}
	if cols == nil {
		cols = All(parent.Cols())
	}
	mapping := NewIndexMapping(rows, cols)
	if err := mapping.validate(parent.Rows(), parent.Cols()); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxView, err)
	}

	v := &View[T]{parent: parent, mapping: mapping}
	slot := &Matrix[T]{impl: v}
	v.owner = slot
	parent.impl.changes().subscribe(v)

	return slot, nil
}

// Rows returns len(row selector). Complexity: O(1).
func (v *View[T]) Rows() int { return v.mapping.Rows() }

// Cols returns len(col selector). Complexity: O(1).
func (v *View[T]) Cols() int { return v.mapping.Cols() }

// Parent returns the slot this view currently delegates through.
func (v *View[T]) Parent() *Matrix[T] { return v.parent }

// Mapping returns the current index mapping.
func (v *View[T]) Mapping() IndexMapping { return v.mapping }

// Linked reports whether the view is still registered on an ancestor notifier.
func (v *View[T]) Linked() bool { return v.source != nil }

// StorageOrder reports the order of the root buffer.
func (v *View[T]) StorageOrder() Order { return v.parent.StorageOrder() }

// StorageScheme reports SchemeView.
func (v *View[T]) StorageScheme() Scheme { return SchemeView }

func (v *View[T]) changes() *notifier[T] { return &v.subs }

func (v *View[T]) numericPolicy() bool { return v.parent.impl.numericPolicy() }

func (v *View[T]) inBounds(i, j int) bool {
	return i >= 0 && i < v.mapping.Rows() && j >= 0 && j < v.mapping.Cols()
}

// At reads (i,j) through the mapping.
// Never panics; ErrOutOfRange on invalid view coordinates.
func (v *View[T]) At(i, j int) (T, error) {
	if !v.inBounds(i, j) {
		var zero T
		return zero, fmt.Errorf("%s(%d,%d): %w", ctxViewAt, i, j, ErrOutOfRange)
	}

	return v.parent.At(v.mapping.rows[i], v.mapping.cols[j])
}

// Set writes (i,j) through to the parent.
// MAIN DESCRIPTION:
//   - Write-through with copy-on-write isolation of every view not on the write path.
//
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: fire this view's notifier (children materialize).
//   - Stage 3: mark writing, delegate to the parent slot, unmark.
//
// Behavior highlights:
//   - The parent slot is re-read after delegation; nothing is cached across it.
//
// Errors:
//   - ErrOutOfRange, plus whatever the root Set returns (ErrNaNInf, ErrAllocation).
func (v *View[T]) Set(i, j int, val T) error {
	if !v.inBounds(i, j) {
		return fmt.Errorf("%s(%d,%d): %w", ctxViewSet, i, j, ErrOutOfRange)
	}
	if err := v.subs.fire(); err != nil {
		return fmt.Errorf("%s(%d,%d): %w", ctxViewSet, i, j, err)
	}

	v.writing = true
	err := v.parent.Set(v.mapping.rows[i], v.mapping.cols[j], val)
	v.writing = false

	return err
}

// Storage gathers the visible elements into a column-major snapshot.
// Errors: ErrAllocation (duplicate selectors can exceed MaxElements), read
// errors from the delegation path.
func (v *View[T]) Storage() ([]T, error) {
	out, err := v.snapshot()
	if err != nil {
		return nil, fmt.Errorf("View.Storage: %w", err)
	}

	return out, nil
}

// apply is the view side of Matrix.Apply.
// Implementation:
//   - Stage 1: snapshot the visible data once.
//   - Stage 2: compute every new value from the snapshot; reject non-finite
//     results under the root policy before anything is written.
//   - Stage 3: write the results through Set (copy-on-write still applies).
func (v *View[T]) apply(f func(i, j int, v T) T) error {
	next, err := v.snapshot()
	if err != nil {
		return fmt.Errorf("%s: %w", ctxViewApply, err)
	}
	r, c := v.Rows(), v.Cols()
	strict := v.numericPolicy()
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			nv := f(i, j, next[i+j*r])
			if strict && isNonFiniteElem(nv) {
				return fmt.Errorf("%s(%d,%d): %w", ctxViewApply, i, j, ErrNaNInf)
			}
			next[i+j*r] = nv
		}
	}
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			if err = v.Set(i, j, next[i+j*r]); err != nil {
				return err
			}
		}
	}

	return nil
}

// snapshot reads the visible data column by column through the current
// delegation path.
func (v *View[T]) snapshot() ([]T, error) {
	r, c := v.Rows(), v.Cols()
	buf, err := allocBuffer[T](r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var val T
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			val, err = v.parent.At(v.mapping.rows[i], v.mapping.cols[j])
			if err != nil {
				return nil, err
			}
			buf[i+j*r] = val
		}
	}

	return buf, nil
}

// String renders the view row by row.
func (v *View[T]) String() string { return formatRows[T](v) }
