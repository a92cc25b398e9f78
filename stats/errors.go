// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewObservations is returned when an estimator needs more rows than given.
	ErrTooFewObservations = errors.New("stats: too few observations")

	// ErrProbability is returned when a quantile level lies outside [0,1] or is NaN.
	ErrProbability = errors.New("stats: probability must be in [0,1]")

	// ErrEmpty is returned for an empty sample.
	ErrEmpty = errors.New("stats: empty sample")

	// ErrNonFinite is returned when a sample contains NaN or ±Inf.
	ErrNonFinite = errors.New("stats: NaN or Inf in sample")

	// ErrUnknownMethod is returned for an unrecognized quantile method name.
	ErrUnknownMethod = errors.New("stats: unknown quantile method")
)

// statsErrorf wraps err with an operation tag, preserving the cause via %w.
func statsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
