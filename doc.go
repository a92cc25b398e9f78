// Package lvmat is a column-major matrix engine with copy-on-write views,
// plus the statistics and geometric data analysis built on top of it.
//
// What is in the box?
//
//	• Dense storage: one contiguous column-major buffer per matrix, real or complex
//	• Views: row/column selections that read and write through to their parent
//	• Copy-on-write: a write to a parent hands every live view a private copy first
//	• Read-only facades for safe sharing
//	• Statistics: means, covariance, correlation, precision, quantiles
//	• GDA: PCA, correspondence analysis, classical MDS
//	• I/O: CSV and a compact binary format, optionally memory-mapped
//
// Layout:
//
//	matrix/     : Dense, View, notifier, materializer, Readonly, kernels
//	matrix/ops/ : LU with partial pivoting, solve, inverse, determinant
//	stats/      : column statistics and quantiles
//	gda/        : PCA, CA, MDS (gonum SVD / EigenSym)
//	matio/      : CSV and binary readers/writers
//	cmd/lvmat/  : command line front end
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	v, _ := m.Col(1)    // view of column 1, linked to m
//	_ = m.Set(0, 1, 9)  // v receives a private copy first and keeps 2
//
//	go get github.com/katalvlaran/lvmat
package lvmat
