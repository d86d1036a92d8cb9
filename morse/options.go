// SPDX-License-Identifier: MIT
// Package: lvmorse/morse
//
// options.go — functional options for Extract.

package morse

import (
	"runtime"

	"github.com/katalvlaran/lvmorse/logging"
)

// Options configures Extract.
type Options struct {
	// Workers bounds the number of concurrent path searches.
	Workers int
	// Logger receives stage timing; nil means no-op.
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
		panic("morse: WithWorkers(n<1)")
	}
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger. A nil logger restores the no-op default.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) { o.Logger = logging.OrNoop(l) }
}
