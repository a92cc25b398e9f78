// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// IndexMapping translates view-local (i,j) into parent-local coordinates.
// Duplicates and out-of-order entries are allowed, so a view may repeat or
// permute parent rows/columns. Immutable once a view is built.
type IndexMapping struct {
	rows []int
	cols []int
}

// NewIndexMapping copies the selectors into a mapping.
func NewIndexMapping(rows, cols []int) IndexMapping {
	return IndexMapping{rows: append([]int{}, rows...), cols: append([]int{}, cols...)}
}

// identityMapping maps (i,j) to itself over an r×c parent.
func identityMapping(r, c int) IndexMapping {
	return IndexMapping{rows: All(r), cols: All(c)}
}

// Rows returns the number of view rows (len of the row selector).
func (m IndexMapping) Rows() int { return len(m.rows) }

// Cols returns the number of view columns (len of the column selector).
func (m IndexMapping) Cols() int { return len(m.cols) }

// RowIndices returns a copy of the row selector.
func (m IndexMapping) RowIndices() []int { return append([]int{}, m.rows...) }

// ColIndices returns a copy of the column selector.
func (m IndexMapping) ColIndices() []int { return append([]int{}, m.cols...) }

// validate checks every entry against the parent extents.
// Returns the first offending entry wrapped around ErrOutOfRange.
func (m IndexMapping) validate(parentRows, parentCols int) error {
	for k, r := range m.rows {
		if r < 0 || r >= parentRows {
			return fmt.Errorf("IndexMapping: row selector[%d]=%d not in [0,%d): %w", k, r, parentRows, ErrOutOfRange)
		}
	}
	for k, c := range m.cols {
		if c < 0 || c >= parentCols {
			return fmt.Errorf("IndexMapping: col selector[%d]=%d not in [0,%d): %w", k, c, parentCols, ErrOutOfRange)
		}
	}

	return nil
}

// IsIdentity reports whether the mapping is the identity over an r×c parent.
func (m IndexMapping) IsIdentity(r, c int) bool {
	if len(m.rows) != r || len(m.cols) != c {
		return false
	}
	for k, v := range m.rows {
		if v != k {
			return false
		}
	}
	for k, v := range m.cols {
		if v != k {
			return false
		}
	}

	return true
}

// All returns the selector 0..n-1.
func All(n int) []int {
	if n < 0 {
		n = 0
	}
	idx := make([]int, n)
	for k := range idx {
		idx[k] = k
	}

	return idx
}

// Range returns the selector lo..hi inclusive (hi < lo yields an empty selector).
// Range(0, 1) selects the first two rows or columns.
func Range(lo, hi int) []int {
	if hi < lo {
		return []int{}
	}
	idx := make([]int, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		idx = append(idx, k)
	}

	return idx
}
