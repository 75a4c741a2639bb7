package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

const statusOK = "ok"

// readinessResponse lists every registered check with "ok" or its error.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. A failing manifest breaker or
// native runtime probe turns the answer into 503 not_ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := readinessResponse{Status: "ready", Checks: map[string]string{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = "not_ready"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, r, code, resp)
}
