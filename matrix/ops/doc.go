// SPDX-License-Identifier: MIT

// Package ops provides dense decompositions on top of package matrix that
// the storage engine itself does not need: LU factorization with partial
// pivoting, and the determinant, linear solve and inverse built on it.
//
// Inputs are any matrix.Reader[float64]; they are gathered once into a
// private column-major buffer, so views and read-only facades are accepted
// and never written. Results are fresh Dense-backed handles.
package ops
