// SPDX-License-Identifier: MIT
// Package: lvmorse
//
// options.go — functional options for New.

package lvmorse

import (
	"runtime"

	"github.com/katalvlaran/lvmorse/logging"
)

// Options configures a Morse pipeline.
type Options struct {
	// Workers bounds every parallel stage (gradient, extraction, batch
	// reductions).
	Workers int
	// Logger receives stage timings from every stage.
	Logger *logging.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Workers = GOMAXPROCS and a no-op logger.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0), Logger: logging.NoopLogger()}
}

// WithWorkers sets the worker bound. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("lvmorse: WithWorkers(n<1)")
	}
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger. A nil logger restores the no-op default.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) { o.Logger = logging.OrNoop(l) }
}
