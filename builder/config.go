// SPDX-License-Identifier: MIT
// Package: lvmorse/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng        = nil                  (pure/deterministic unless seeded)
//   • field      = DistanceFn(origin)   (distance to the first lattice corner)
//   • tieBreak   = DefaultTieBreak      (value += tieBreak * vertexIndex)
//   • torus R, r = 2.0, 1.0
//   • meshOpts   = none

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvmorse/mesh"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic fields; nil means "no randomness".
	rng *rand.Rand
	// Scalar field sampled at each embedded vertex.
	field ScalarFn
	// Per-index shift that makes symmetric fields unique; 0 disables it.
	tieBreak float64
	// Torus radii.
	major, minor float64
	// Options forwarded to mesh.New.
	meshOpts []mesh.Option
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		field:    DistanceFn(Point{}),
		tieBreak: DefaultTieBreak,
		major:    DefaultTorusMajor,
		minor:    DefaultTorusMinor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
