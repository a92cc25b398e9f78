// SPDX-License-Identifier: MIT
// Package: stats
//
// Functional options for the estimators:
//   - WithPopulation / WithSample pick the variance denominator (n or n-1).
//   - WithQuantileMethod picks the quantile definition.
//
// Defaults: sample estimators, Empirical quantiles.

package stats

import "gonum.org/v1/gonum/stat"

// QuantileMethod selects how a quantile is read off the sorted sample.
type QuantileMethod int

const (
	// Empirical returns the smallest sample value whose cumulative frequency reaches p.
	Empirical QuantileMethod = iota
	// LinInterp interpolates linearly between order statistics.
	LinInterp
)

// String implements fmt.Stringer.
func (m QuantileMethod) String() string {
	switch m {
	case Empirical:
		return "empirical"
	case LinInterp:
		return "lininterp"
	}

	return "unknown"
}

// ParseQuantileMethod maps "empirical" / "lininterp" onto a QuantileMethod.
func ParseQuantileMethod(s string) (QuantileMethod, error) {
	switch s {
	case "", "empirical":
		return Empirical, nil
	case "lininterp", "linear":
		return LinInterp, nil
	}

	return Empirical, statsErrorf("ParseQuantileMethod", ErrUnknownMethod)
}

// kind maps the method onto gonum's cumulant kind.
func (m QuantileMethod) kind() stat.CumulantKind {
	if m == LinInterp {
		return stat.LinInterp
	}

	return stat.Empirical
}

// Option configures an estimator.
type Option func(*Options)

// Options holds resolved estimator settings.
type Options struct {
	population bool
	method     QuantileMethod
}

// Population reports whether the n denominator is used.
func (o Options) Population() bool { return o.population }

// Method reports the quantile method.
func (o Options) Method() QuantileMethod { return o.method }

// WithPopulation selects population estimators (divide by n).
func WithPopulation() Option { return func(o *Options) { o.population = true } }

// WithSample selects sample estimators (divide by n-1). Default.
func WithSample() Option { return func(o *Options) { o.population = false } }

// WithQuantileMethod selects the quantile definition.
func WithQuantileMethod(m QuantileMethod) Option {
	return func(o *Options) { o.method = m }
}

// gatherOptions applies opts over defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{method: Empirical}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ddof returns the degrees-of-freedom correction for the chosen estimator.
func (o Options) ddof() int {
	if o.population {
		return 0
	}

	return 1
}
