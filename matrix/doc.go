// SPDX-License-Identifier: MIT

// Package matrix is a storage and view engine for two-dimensional numeric
// data over real (float64) and complex (complex128) elements.
//
// The package provides:
//
//   - Dense: a contiguous column-major buffer (offset = i + j*rows).
//   - View: a sub-selection of rows and columns that shares its parent's
//     storage through an IndexMapping, nestable to any depth.
//   - Matrix: the public handle, a slot holding the current Dense or View.
//   - Readonly: a facade without a write surface.
//
// Copy-on-write:
//
// Every Dense and View carries a change notifier listing the views created
// directly over it. Before any in-place mutation the notifier fires and each
// subscribed view snapshots the data it sees into a private Dense, detaches,
// and keeps serving its own children from the snapshot. Views therefore
// observe the state of their parent as of their creation and are never
// affected by later parent writes.
//
// Writing through a view reaches the root buffer; the views on that write
// path stay linked, every other view is isolated first.
//
//	d, _ := matrix.FromRows([][]float64{{0, 2, 4}, {1, 3, 5}})
//	v, _ := d.View(nil, matrix.Range(0, 1))
//	_ = d.Set(1, 0, -10)
//	x, _ := v.At(1, 0) // 1: v materialized before the write
//
// Element-wise arithmetic, matrix products and broadcast helpers accept any
// Reader and always return fresh Dense-backed handles.
package matrix
