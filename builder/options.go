// SPDX-License-Identifier: MIT
// Package: lvmorse/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvmorse/mesh"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before the surface is built.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic fields.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithField overrides the scalar field. Panics on nil.
func WithField(fn ScalarFn) BuilderOption {
	if fn == nil {
		panic("builder: WithField(nil)")
	}
	return func(c *builderConfig) {
		c.field = fn
	}
}

// WithTieBreak sets the per-index shift added to every value (value +=
// eps*index). Zero disables it. Panics if eps < 0.
func WithTieBreak(eps float64) BuilderOption {
	if eps < 0 {
		panic("builder: WithTieBreak(eps<0)")
	}
	return func(c *builderConfig) {
		c.tieBreak = eps
	}
}

// WithTorusRadii sets the major and minor radius of the Torus embedding.
// Panics unless 0 < minor < major.
func WithTorusRadii(major, minor float64) BuilderOption {
	if minor <= 0 || major <= minor {
		panic("builder: WithTorusRadii requires 0 < minor < major")
	}
	return func(c *builderConfig) {
		c.major, c.minor = major, minor
	}
}

// WithMeshOptions forwards options to mesh.New (e.g. mesh.WithPerturbation).
func WithMeshOptions(opts ...mesh.Option) BuilderOption {
	return func(c *builderConfig) {
		c.meshOpts = append(c.meshOpts, opts...)
	}
}
