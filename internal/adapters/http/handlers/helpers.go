package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/version"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/logging"
)

// maxBodyBytes caps request bodies. Launch requests with long JVM argument
// lists are the largest and stay well under it.
const maxBodyBytes = 1 << 20

// pathParam returns a chi URL parameter, rejecting an empty one.
func pathParam(r *http.Request, name string) (string, error) {
	if v := chi.URLParam(r, name); v != "" {
		return v, nil
	}
	return "", domain.FieldError(name, domain.MsgRequired)
}

// parseRemoteFilter reads ?type=, accepting repeated parameters as well as
// comma-separated lists.
func parseRemoteFilter(r *http.Request) (version.RemoteFilter, error) {
	var filter version.RemoteFilter
	for _, raw := range r.URL.Query()["type"] {
		for t := range strings.SplitSeq(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filter.Types = append(filter.Types, version.RemoteType(t))
			}
		}
	}
	if err := filter.Validate(); err != nil {
		return version.RemoteFilter{}, domain.FieldError("type", err.Error())
	}
	return filter, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing response body failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

type validatable interface {
	Validate() error
}

// bind decodes the JSON body into dst and validates it. On failure the
// problem response has already been written and bind returns false.
func bind[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.FieldError("body", "invalid JSON"))
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
