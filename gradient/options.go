// SPDX-License-Identifier: MIT
// Package: lvmorse/gradient
//
// options.go — functional options for Build.

package gradient

import (
	"runtime"

	"github.com/katalvlaran/lvmorse/logging"
)

// Options configures Build.
type Options struct {
	// Workers bounds the number of concurrently processed vertex chunks.
	Workers int
	// ChunkSize is the number of vertices handed to one goroutine.
	ChunkSize int
	// Logger receives stage timing; nil means no-op.
	Logger *logging.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultChunkSize balances goroutine overhead against load balance.
const DefaultChunkSize = 512

// DefaultOptions returns Workers = GOMAXPROCS, ChunkSize = DefaultChunkSize
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: DefaultChunkSize,
		Logger:    logging.NoopLogger(),
	}
}

// WithWorkers sets the worker bound. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("gradient: WithWorkers(n<1)")
	}
	return func(o *Options) { o.Workers = n }
}

// WithChunkSize sets the number of vertices per task. Panics if n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic("gradient: WithChunkSize(n<1)")
	}
	return func(o *Options) { o.ChunkSize = n }
}

// WithLogger sets the logger. A nil logger restores the no-op default.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) { o.Logger = logging.OrNoop(l) }
}
