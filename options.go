package pipeloop

import (
	"io"
	"log/slog"
)

// Option configures Analyze.
type Option func(*Options)

// Options holds the tunables of a single Analyze run.
type Options struct {
	// Logger receives one Debug record per pipeline stage. Defaults to a
	// logger that discards everything.
	Logger *slog.Logger

	// Reverse traces the loop leaving the start through its second open end
	// instead of its first. Answers do not depend on it.
	Reverse bool
}

// DefaultOptions returns Options with a discarding logger and forward traversal.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Reverse: false,
	}
}

// WithLogger routes stage logging to l. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithReverseTraversal selects which of the start's two open ends the trace
// leaves through.
func WithReverseTraversal(reverse bool) Option {
	return func(o *Options) {
		o.Reverse = reverse
	}
}
