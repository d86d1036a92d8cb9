// SPDX-License-Identifier: MIT
// Package: lvmorse/mesh
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • New itself never panics; it returns sentinel errors.

package mesh

// DefaultEpsilon is the fixed shift used by WithPerturbation.
const DefaultEpsilon = 1e-7

// Options configures mesh construction.
type Options struct {
	// Perturb enables the duplicate-value perturbation before validation.
	Perturb bool
	// Epsilon is the per-duplicate shift applied when Perturb is set.
	Epsilon float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns options with perturbation disabled and
// Epsilon = DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Perturb: false, Epsilon: DefaultEpsilon}
}

// WithPerturbation shifts duplicated scalar values apart by multiples of
// the configured epsilon, so that the values become a strict total order.
func WithPerturbation() Option {
	return func(o *Options) { o.Perturb = true }
}

// WithEpsilon overrides the perturbation shift. Panics if eps <= 0.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("mesh: WithEpsilon(eps<=0)")
	}
	return func(o *Options) { o.Epsilon = eps }
}
