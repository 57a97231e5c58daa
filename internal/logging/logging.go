// Package logging provides structured, context-scoped logging for barstatus.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Init configures the global zerolog logger and returns it. level is one of
// "debug", "info", "warn", "error"; unrecognized values fall back to "info".
func Init(level string, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger
}

// FromContext extracts the logger from context. If no logger is attached,
// returns zerolog.DefaultContextLogger (the logger Init installed), or the
// disabled (no-op) logger when Init has not run.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context carrying logger.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent returns a new context whose logger has a "component" field.
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx).With().Str("component", component).Logger()
	return WithContext(ctx, logger)
}

// WithModule returns a new context whose logger has a "module_id" field.
func WithModule(ctx context.Context, moduleID string) context.Context {
	logger := FromContext(ctx).With().Str("module_id", moduleID).Logger()
	return WithContext(ctx, logger)
}
