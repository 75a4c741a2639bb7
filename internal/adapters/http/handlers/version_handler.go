package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

// VersionHandler handles HTTP requests for installed versions.
type VersionHandler struct {
	svc ports.VersionService
}

// NewVersionHandler creates a new VersionHandler with the given service port.
func NewVersionHandler(svc ports.VersionService) *VersionHandler {
	return &VersionHandler{svc: svc}
}

// ListVersions handles GET /api/v1/versions.
func (h *VersionHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.svc.ListVersions(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToVersionListResponse(versions))
}

// GetVersion handles GET /api/v1/versions/{name}.
func (h *VersionHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	v, err := h.svc.GetVersion(r.Context(), name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToVersionResponse(v))
}

// RenameVersion handles POST /api/v1/versions/{name}/rename.
func (h *VersionHandler) RenameVersion(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.RenameVersionRequest
	if !bind(w, r, &req) {
		return
	}

	v, err := h.svc.RenameVersion(r.Context(), name, req.NewName)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToVersionResponse(v))
}

// CopyVersion handles POST /api/v1/versions/{name}/copy.
func (h *VersionHandler) CopyVersion(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CopyVersionRequest
	if !bind(w, r, &req) {
		return
	}

	v, err := h.svc.CopyVersion(r.Context(), name, req.NewName, req.All)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToVersionResponse(v))
}

// DeleteVersion handles DELETE /api/v1/versions/{name}.
func (h *VersionHandler) DeleteVersion(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteVersion(r.Context(), name); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CurrentVersion handles GET /api/v1/versions/current.
func (h *VersionHandler) CurrentVersion(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.CurrentVersion(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToVersionResponse(v))
}

// SelectVersion handles PUT /api/v1/versions/current.
func (h *VersionHandler) SelectVersion(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectVersionRequest
	if !bind(w, r, &req) {
		return
	}

	v, err := h.svc.SelectVersion(r.Context(), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToVersionResponse(v))
}
