package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/filename"
	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

// FilenameHandler handles HTTP requests for filename classification.
type FilenameHandler struct {
	svc ports.FilenameService
}

// NewFilenameHandler creates a new FilenameHandler with the given service port.
func NewFilenameHandler(svc ports.FilenameService) *FilenameHandler {
	return &FilenameHandler{svc: svc}
}

// Validate handles POST /api/v1/filenames/validate. A rejected name is a
// successful classification: 200 with valid=false and the violation.
func (h *FilenameHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateFilenameRequest
	if !bind(w, r, &req) {
		return
	}

	rules, err := h.svc.Validate(r.Context(), req.Name, req.Platform)

	var ferr *filename.Error
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, dto.ToValidateFilenameResponse(req.Name, rules, nil))
	case errors.As(err, &ferr):
		writeJSON(w, r, http.StatusOK, dto.ToValidateFilenameResponse(req.Name, rules, ferr.Violation))
	default:
		dto.WriteErrorResponse(w, r, err)
	}
}
