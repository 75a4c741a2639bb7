package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
)

func manifestResponse(status int, contentType, body string) *http.Response {
	r := &http.Response{StatusCode: status, Header: http.Header{}, Body: http.NoBody}
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	if body != "" {
		r.Body = io.NopCloser(strings.NewReader(body))
	}
	return r
}

func TestTranslateHTTPError(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		domain.ErrNotFound, domain.ErrForbidden, domain.ErrValidation,
		domain.ErrConflict, domain.ErrUnavailable,
	}

	tests := []struct {
		name        string
		resp        *http.Response
		wantErr     error
		wantMessage string
	}{
		{
			name:        "missing manifest",
			resp:        manifestResponse(http.StatusNotFound, "", ""),
			wantErr:     domain.ErrNotFound,
			wantMessage: "Not Found",
		},
		{
			name:    "retired manifest",
			resp:    manifestResponse(http.StatusGone, "", ""),
			wantErr: domain.ErrNotFound,
		},
		{
			name:        "cdn denies access",
			resp:        manifestResponse(http.StatusForbidden, "text/plain; charset=utf-8", "AccessDenied\nRequestId: 5F3A"),
			wantErr:     domain.ErrForbidden,
			wantMessage: "AccessDenied",
		},
		{
			name:    "unauthorized",
			resp:    manifestResponse(http.StatusUnauthorized, "", ""),
			wantErr: domain.ErrForbidden,
		},
		{
			name:        "problem detail",
			resp:        manifestResponse(http.StatusBadRequest, "application/problem+json", `{"status":400,"detail":"unknown manifest revision"}`),
			wantErr:     domain.ErrValidation,
			wantMessage: "unknown manifest revision",
		},
		{
			name:    "conflict",
			resp:    manifestResponse(http.StatusConflict, "", ""),
			wantErr: domain.ErrConflict,
		},
		{
			name:    "throttled",
			resp:    manifestResponse(http.StatusTooManyRequests, "", ""),
			wantErr: domain.ErrUnavailable,
		},
		{
			name:        "html error page falls back to status text",
			resp:        manifestResponse(http.StatusBadGateway, "text/html", "<html><body>502</body></html>"),
			wantErr:     domain.ErrUnavailable,
			wantMessage: "Bad Gateway",
		},
		{
			name:        "malformed problem body",
			resp:        manifestResponse(http.StatusServiceUnavailable, "application/problem+json", "{not json"),
			wantErr:     domain.ErrUnavailable,
			wantMessage: "Service Unavailable",
		},
		{
			name:        "unmapped status",
			resp:        manifestResponse(http.StatusTeapot, "", ""),
			wantMessage: "418",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := TranslateHTTPError(tt.resp)
			if err == nil {
				t.Fatal("TranslateHTTPError() = nil")
			}

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("TranslateHTTPError() = %v, want errors.Is %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				for _, s := range sentinels {
					if errors.Is(err, s) {
						t.Errorf("TranslateHTTPError() = %v, must not match %v", err, s)
					}
				}
			}
			if tt.wantMessage != "" && !strings.Contains(err.Error(), tt.wantMessage) {
				t.Errorf("TranslateHTTPError() = %q, want it to mention %q", err, tt.wantMessage)
			}
		})
	}
}

func TestTranslateHTTPError_NilBody(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusNotFound,
		Header:     http.Header{"Content-Type": []string{"application/problem+json"}},
	}

	if err := TranslateHTTPError(resp); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("TranslateHTTPError() = %v, want ErrNotFound", err)
	}
}
