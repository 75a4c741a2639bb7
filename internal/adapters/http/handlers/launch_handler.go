package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

// LaunchHandler handles HTTP requests for JVM launches and the native probe.
type LaunchHandler struct {
	svc ports.LaunchService
}

// NewLaunchHandler creates a new LaunchHandler with the given service port.
func NewLaunchHandler(svc ports.LaunchService) *LaunchHandler {
	return &LaunchHandler{svc: svc}
}

// StartLaunch handles POST /api/v1/launches. The JVM keeps running after the
// response; poll GET /api/v1/launches/{id} for the outcome.
func (h *LaunchHandler) StartLaunch(w http.ResponseWriter, r *http.Request) {
	var req dto.StartLaunchRequest
	if !bind(w, r, &req) {
		return
	}

	l, err := h.svc.Start(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/launches/"+l.ID)
	writeJSON(w, r, http.StatusAccepted, dto.ToLaunchResponse(l))
}

// ListLaunches handles GET /api/v1/launches.
func (h *LaunchHandler) ListLaunches(w http.ResponseWriter, r *http.Request) {
	launches, err := h.svc.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToLaunchListResponse(launches))
}

// GetLaunch handles GET /api/v1/launches/{id}.
func (h *LaunchHandler) GetLaunch(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToLaunchResponse(l))
}

// Probe handles POST /api/v1/native/probe.
func (h *LaunchHandler) Probe(w http.ResponseWriter, r *http.Request) {
	var req dto.ProbeRequest
	if !bind(w, r, &req) {
		return
	}

	if err := h.svc.Probe(r.Context(), req.A, req.B); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ProbeResponse{Status: statusOK})
}
