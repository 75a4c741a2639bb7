package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/logging"
)

// Logging stores a request-scoped child of logger, tagged with the request
// and correlation IDs, in the context and logs each request's start and
// completion. At debug level the request headers are logged too, with
// credentials masked.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			reqLogger.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.DebugContext(ctx, "request headers", headerAttrs(r.Header)...)
			}

			rec := newRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			reqLogger.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("route", routePattern(r)),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// headerAttrs renders headers as log attributes, joining repeated values
// with commas. Values of logging.SensitiveHeaders become "[REDACTED]".
func headerAttrs(h http.Header) []any {
	attrs := make([]any, 0, len(h))
	for name, vals := range h {
		v := strings.Join(vals, ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			v = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(name, v))
	}
	return attrs
}
