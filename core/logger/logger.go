package logger

import (
	"io"
	"log/slog"
)

type options struct {
	level slog.Level
	json  bool
}

// Option adjusts logger construction.
type Option func(*options)

// WithLevel sets the minimum level, defaulting to slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(o *options) { o.level = level }
}

// WithJSON switches output from text to JSON lines.
func WithJSON() Option {
	return func(o *options) { o.json = true }
}

// New builds a slog.Logger writing to w.
func New(w io.Writer, opts ...Option) *slog.Logger {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	hopts := &slog.HandlerOptions{Level: o.level}
	if o.json {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}
