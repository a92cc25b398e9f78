// SPDX-License-Identifier: MIT

// Package stats computes column statistics over lvmat matrices: means,
// standard deviations, centering, covariance, Pearson correlation and
// quantiles.
//
// Every function accepts a matrix.Reader[float64], so Dense handles, views
// and read-only facades can be passed directly; inputs are never written and
// views passed in stay linked to their parents.
package stats
