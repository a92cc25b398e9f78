// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// context) and tests MUST check them via errors.Is. No public method panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when the
// call site adds coordinates; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> shape/index -> NaN/Inf policy -> dimension mismatch
// -> numeric failures (singular, eigen) -> allocation.

var (
	// ErrBadShape is returned when a requested shape or window is invalid.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Raised by At/Set and by index mappings that point outside the parent.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a data
	// slice whose length does not match rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured numeric policy (epsilon).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, etc.).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver, parent or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a zero divisor or pivot is encountered.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDivideByZero is returned by element-wise division when a divisor is zero.
	ErrDivideByZero = errors.New("matrix: division by zero")

	// ErrAllocation is returned when a buffer for rows*cols elements cannot be
	// obtained (overflow or above MaxElements). It is fatal for the operation
	// that requested it; the copy-on-write protocol guarantees that no pending
	// mutation was applied when it surfaces from a Set.
	ErrAllocation = errors.New("matrix: buffer allocation failed")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
