// SPDX-License-Identifier: MIT
// Package: lvmorse/logging
//
// logger.go — slog wrapper with lvmorse field names.

// Package logging wraps log/slog with the field names and stage helpers used
// across lvmorse. Every package accepts a *Logger through a WithLogger option;
// the default everywhere is NoopLogger, which skips message formatting.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with lvmorse-specific context.
type Logger struct {
	*slog.Logger
}

// nopHandler discards all records. Enabled returns false so callers skip
// attribute formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON records to w (stderr if nil).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable records to w
// (stderr if nil).
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(nopHandler{})}
}

// OrNoop returns l, or a NoopLogger when l is nil.
func OrNoop(l *Logger) *Logger {
	if l == nil {
		return NoopLogger()
	}
	return l
}

// WithComponent tags records with the emitting package.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{Logger: l.Logger.With("component", name)}
}

// WithPersistence adds the persistence threshold field.
func (l *Logger) WithPersistence(tau float64) *Logger {
	return &Logger{Logger: l.Logger.With("persistence", tau)}
}

// WithWorkers adds the worker count field.
func (l *Logger) WithWorkers(n int) *Logger {
	return &Logger{Logger: l.Logger.With("workers", n)}
}

// LogStage logs the end of a pipeline stage with its duration.
func (l *Logger) LogStage(ctx context.Context, stage string, start time.Time, err error, attrs ...any) {
	elapsed := time.Since(start)
	if err != nil {
		l.ErrorContext(ctx, "stage failed",
			append([]any{"stage", stage, "elapsed", elapsed, "error", err}, attrs...)...)
		return
	}
	l.InfoContext(ctx, "stage completed",
		append([]any{"stage", stage, "elapsed", elapsed}, attrs...)...)
}

// LogCancellation logs one saddle/extremum cancellation at debug level.
func (l *Logger) LogCancellation(ctx context.Context, kind string, saddle, extremum uint32, dist float64) {
	l.DebugContext(ctx, "cancelled pair",
		"kind", kind,
		"saddle", saddle,
		"extremum", extremum,
		"distance", dist,
	)
}

// LogCounts logs critical cell counts.
func (l *Logger) LogCounts(ctx context.Context, msg string, minima, saddles, maxima int) {
	l.InfoContext(ctx, msg,
		"minima", minima,
		"saddles", saddles,
		"maxima", maxima,
	)
}
