// SPDX-License-Identifier: MIT

package gda

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewObservations is returned when a method needs more rows than given.
	ErrTooFewObservations = errors.New("gda: too few observations")

	// ErrDegenerate is returned when the input carries no usable variation
	// (constant data, empty margins, no positive eigenvalues).
	ErrDegenerate = errors.New("gda: degenerate input")

	// ErrNegative is returned when a contingency table contains negative counts.
	ErrNegative = errors.New("gda: negative entry in contingency table")

	// ErrFactorization is returned when the underlying SVD or eigendecomposition fails.
	ErrFactorization = errors.New("gda: factorization did not converge")
)

// gdaErrorf wraps err with an operation tag, preserving the cause via %w.
func gdaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
