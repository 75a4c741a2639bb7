package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/logging"
)

func TestLogging_RequestLifecycle(t *testing.T) {
	t.Parallel()

	var logs logBuffer
	router := chi.NewRouter()
	router.Use(middleware.RequestID(), middleware.CorrelationID(), middleware.Logging(jsonLogger(&logs, slog.LevelInfo)))
	router.Delete("/api/v1/versions/{name}", func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).InfoContext(r.Context(), "version deleted")
		w.WriteHeader(http.StatusNoContent)
	})

	r := httptest.NewRequest(http.MethodDelete, "/api/v1/versions/modded", nil)
	r.Header.Set("X-Request-ID", "req-del-1")
	serve(t, router, r)

	out := logs.String()
	for _, want := range []string{
		`"msg":"request started"`,
		`"path":"/api/v1/versions/modded"`,
		`"msg":"version deleted"`,
		`"msg":"request completed"`,
		`"route":"/api/v1/versions/{name}"`,
		`"status":204`,
		`"duration"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("logs missing %s:\n%s", want, out)
		}
	}

	// The handler's own line carries the request IDs.
	for line := range strings.SplitSeq(strings.TrimSpace(out), "\n") {
		if !strings.Contains(line, `"request_id":"req-del-1"`) || !strings.Contains(line, `"correlation_id":"req-del-1"`) {
			t.Errorf("log line without request ids: %s", line)
		}
	}
}

func TestLogging_DebugHeadersAreMasked(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     slog.Level
		wantDebug bool
	}{
		{name: "debug", level: slog.LevelDebug, wantDebug: true},
		{name: "info", level: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs logBuffer
			h := middleware.Logging(jsonLogger(&logs, tt.level))(okHandler)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/launches", nil)
			r.Header.Set("Authorization", "Bearer launcher-secret")
			r.Header.Set("Cookie", "session=abc")
			r.Header.Add("Accept", "application/json")
			r.Header.Add("Accept", "text/plain")
			serve(t, h, r)

			out := logs.String()
			if strings.Contains(out, "launcher-secret") || strings.Contains(out, "session=abc") {
				t.Fatalf("credentials leaked:\n%s", out)
			}
			if got := strings.Contains(out, `"msg":"request headers"`); got != tt.wantDebug {
				t.Fatalf("header line logged = %v, want %v", got, tt.wantDebug)
			}
			if tt.wantDebug {
				for _, want := range []string{`"Authorization":"[REDACTED]"`, `"Accept":"application/json,text/plain"`} {
					if !strings.Contains(out, want) {
						t.Errorf("logs missing %s:\n%s", want, out)
					}
				}
			}
		})
	}
}
