// SPDX-License-Identifier: MIT
// Package: gda
//
// Functional options shared by PCA, CorrespondenceAnalysis and ClassicalMDS.
//   - WithComponents(k): keep at most k axes (panics on k < 1, programmer error).
//   - WithStandardize(): PCA on the correlation scale (columns divided by their sample std).
//   - WithTolerance(eps): eigen/singular values ≤ eps count as zero.

package gda

import "math"

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicComponentsInvalid = "gda: WithComponents: k must be >= 1"
	panicToleranceInvalid  = "gda: WithTolerance: eps must be finite, non-negative"
)

// Defaults.
const (
	DefaultTolerance  = 1e-10
	DefaultMDSDims    = 2
	componentsAllAxes = 0
)

// Option configures a factor method.
type Option func(*Options)

// Options holds resolved settings.
type Options struct {
	components  int // 0 = all available axes (MDS: DefaultMDSDims)
	standardize bool
	tol         float64
}

// Components returns the requested number of axes (0 = all).
func (o Options) Components() int { return o.components }

// Standardize reports whether PCA scales columns to unit variance.
func (o Options) Standardize() bool { return o.standardize }

// Tolerance returns the zero threshold for spectra.
func (o Options) Tolerance() float64 { return o.tol }

// WithComponents keeps at most k axes.
func WithComponents(k int) Option {
	if k < 1 {
		panic(panicComponentsInvalid)
	}

	return func(o *Options) { o.components = k }
}

// WithStandardize runs PCA on standardized columns.
func WithStandardize() Option { return func(o *Options) { o.standardize = true } }

// WithTolerance sets the zero threshold for eigen/singular values.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = eps }
}

func gatherOptions(opts ...Option) Options {
	o := Options{components: componentsAllAxes, tol: DefaultTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// keep clamps the requested component count to the available axes.
func (o Options) keep(available int) int {
	if o.components == componentsAllAxes || o.components > available {
		return available
	}

	return o.components
}
