package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

// ManifestHandler serves the remote version manifest.
type ManifestHandler struct {
	svc ports.ManifestService
}

// NewManifestHandler creates a new ManifestHandler with the given service port.
func NewManifestHandler(svc ports.ManifestService) *ManifestHandler {
	return &ManifestHandler{svc: svc}
}

// ListRemote handles GET /api/v1/manifest.
func (h *ManifestHandler) ListRemote(w http.ResponseWriter, r *http.Request) {
	filter, err := parseRemoteFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	m, err := h.svc.ListRemote(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToManifestResponse(m))
}
