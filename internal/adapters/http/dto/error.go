package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/filename"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/logging"
)

// ErrorResponse is an RFC 9457 problem document. Violation is an extension
// member present when a filename was rejected.
type ErrorResponse struct {
	Type      string             `json:"type"`
	Title     string             `json:"title"`
	Status    int                `json:"status"`
	Detail    string             `json:"detail,omitempty"`
	Instance  string             `json:"instance,omitempty"`
	Errors    []ErrorDetail      `json:"errors,omitempty"`
	Violation *ViolationResponse `json:"violation,omitempty"`
}

// ErrorDetail points at one invalid request field, e.g. "body.new_name".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusFor lists sentinel to status mappings, first match wins.
var statusFor = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// NewErrorResponse describes err for the request r. Errors matching no
// domain sentinel become 500s.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := http.StatusInternalServerError
	for _, m := range statusFor {
		if errors.Is(err, m.target) {
			status = m.status
			break
		}
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	var ferr *filename.Error
	if errors.As(err, &ferr) {
		v := ToViolationResponse(ferr.Violation)
		resp.Violation = &v
	}
	return resp
}

// WriteErrorResponse sends err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "writing problem response",
			slog.Any("error", encErr),
		)
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		details = append(details, ErrorDetail{Location: "body." + field, Message: fields[field]})
	}
	return details
}
