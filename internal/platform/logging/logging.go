// Package logging builds the service's slog logger and carries it through
// request contexts.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("launch_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "jvm exited", slog.Int("exit_code", code))
//
// Error logs name the operation and the entity, and attach the whole error
// chain with slog.Any("error", err). Request and correlation IDs come from
// the request logging middleware.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// New returns a logger writing to w. level is one of debug, info, warn or
// error (case-insensitive, info otherwise); format "text" selects the text
// handler and anything else JSON. Debug logs carry source locations.
// Credentials are masked before any handler sees them.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
