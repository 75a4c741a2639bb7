package middleware_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/middleware"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantStatus  int
		wantProblem bool
		wantLogged  string
	}{
		{
			name:       "no panic",
			handler:    okHandler,
			wantStatus: http.StatusOK,
		},
		{
			name:        "string panic",
			handler:     func(http.ResponseWriter, *http.Request) { panic("nil launch table") },
			wantStatus:  http.StatusInternalServerError,
			wantProblem: true,
			wantLogged:  "nil launch table",
		},
		{
			name:        "error panic",
			handler:     func(http.ResponseWriter, *http.Request) { panic(errors.New("versions dir vanished")) },
			wantStatus:  http.StatusInternalServerError,
			wantProblem: true,
			wantLogged:  "versions dir vanished",
		},
		{
			name: "panic after the response started",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				panic("late")
			},
			wantStatus: http.StatusAccepted,
			wantLogged: "late",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs logBuffer
			h := middleware.Recovery(jsonLogger(&logs, slog.LevelInfo))(tt.handler)
			w := serve(t, h, httptest.NewRequest(http.MethodPost, "/api/v1/launches", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantProblem {
				var problem dto.ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&problem); err != nil {
					t.Fatalf("decoding problem: %v", err)
				}
				if problem.Detail != "internal server error" {
					t.Errorf("detail = %q, panic value must not leak", problem.Detail)
				}
			}
			if tt.wantLogged != "" {
				out := logs.String()
				if !strings.Contains(out, tt.wantLogged) || !strings.Contains(out, `"stack"`) {
					t.Errorf("logs = %s, want panic value and stack", out)
				}
			}
		})
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(slog.New(slog.DiscardHandler))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()
	serve(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/launches", nil))
	t.Error("ServeHTTP returned without panicking")
}
