// SPDX-License-Identifier: MIT
// Package: lvmorse/salient
//
// options.go — functional options for Points.

package salient

import "github.com/katalvlaran/lvmorse/morse"

// Options configures Points.
type Options struct {
	// Kind selects which separatrices contribute (default morse.KindAll).
	Kind morse.Kind
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions selects every separatrix.
func DefaultOptions() Options { return Options{Kind: morse.KindAll} }

// WithKind restricts Points to one separatrix family: morse.KindMaximal
// for ridges, morse.KindMinimal for valleys.
func WithKind(k morse.Kind) Option {
	if k < morse.KindAll || k > morse.KindMinimal {
		panic("salient: WithKind(unknown kind)")
	}
	return func(o *Options) { o.Kind = k }
}
