package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/middleware"
)

func TestTimeout_FastHandlerPassesThrough(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Deadline(); !ok {
			t.Error("handler context has no deadline")
		}
		w.Header().Set("Location", "/api/v1/launches/l-1")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"id":"l-1"}`))
	}))

	w := serve(t, h, httptest.NewRequest(http.MethodPost, "/api/v1/launches", nil))

	if w.Code != http.StatusAccepted {
		t.Errorf("status = %d, want 202", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/api/v1/launches/l-1" {
		t.Errorf("Location = %q", got)
	}
	if got := w.Body.String(); got != `{"id":"l-1"}` {
		t.Errorf("body = %q", got)
	}
}

func TestTimeout_ImplicitOK(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))

	if w := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/versions", nil)); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestTimeout_SlowHandlerGets504(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	h := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))

	w := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/manifest", nil))

	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504", w.Code)
	}
	var problem dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&problem); err != nil {
		t.Fatalf("decoding problem: %v", err)
	}
	if problem.Status != http.StatusGatewayTimeout || problem.Instance != "/api/v1/manifest" {
		t.Errorf("problem = %+v", problem)
	}
}
