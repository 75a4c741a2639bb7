package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/httpclient"
)

// Requester issues read-only JSON requests against the meta host and turns
// every failure into a domain error.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester wraps client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Get fetches path relative to the client's base URL and decodes the 200
// response into out.
//
// A response with any other status goes through [TranslateHTTPError], even
// when it arrives alongside an exhausted-retries error. Transport failures
// and breaker rejections wrap domain.ErrUnavailable; cancellation and
// deadline errors are returned as is.
func (r *Requester) Get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.client.BaseURL()+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}

	switch {
	case resp != nil && resp.StatusCode != http.StatusOK:
		r.logger.ErrorContext(ctx, "manifest host returned an error",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	case err != nil:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("GET %s: %w", path, err)
		}
		r.logger.ErrorContext(ctx, "manifest request failed",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("GET %s: %w: %w", path, domain.ErrUnavailable, err)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// BaseURL is the meta host root.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// CircuitBreakerState reports the underlying client's breaker state.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing response body", slog.Any("error", err))
	}
}
