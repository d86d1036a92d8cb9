// SPDX-License-Identifier: MIT
// Package: lvmorse/reduce
//
// options.go — functional options for Reduce and ReduceAll.

package reduce

import (
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvmorse/logging"
)

// Options configures a reduction.
type Options struct {
	// Salient, when non-nil, protects connections whose path touches
	// SalientLimit or more of these vertices.
	Salient *roaring.Bitmap
	// Workers bounds the number of concurrent reductions in ReduceAll.
	Workers int
	// Logger receives stage timing and per-cancellation debug records.
	Logger *logging.Logger
}

// SalientLimit is the number of salient vertices that makes a path
// ineligible for cancellation.
const SalientLimit = 3

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns no salient points, Workers = GOMAXPROCS and a
// no-op logger.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0), Logger: logging.NoopLogger()}
}

// WithSalientPoints protects connections running along salient vertices.
// The bitmap is read, never modified. A nil bitmap disables the check.
func WithSalientPoints(pts *roaring.Bitmap) Option {
	return func(o *Options) { o.Salient = pts }
}

// WithWorkers bounds ReduceAll's concurrency. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("reduce: WithWorkers(n<1)")
	}
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger. A nil logger restores the no-op default.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) { o.Logger = logging.OrNoop(l) }
}
