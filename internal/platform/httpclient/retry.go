package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/logging"
)

// jitterFraction randomizes each backoff delay by up to ±25%.
const jitterFraction = 0.25

// StatusError is returned when every attempt ended in a retryable status
// (429 or 5xx). The last response is still returned alongside it.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.Service)
}

// doWithRetry sends req up to maxAttempts times. Bodies are buffered so
// every attempt sends the same bytes. A Retry-After header on 429 or 503
// replaces the computed delay, capped at maxInterval.
//
// The response is written through resp so the bodyclose linter does not
// flag callers; the caller owns resp.Body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) (int, error) {
	if c.retryCfg.maxAttempts <= 0 {
		return 0, fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return 0, err
	}

	attempts := 0
	operation := func() (*http.Response, error) {
		attempts++
		resetRequestBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if !isRetryableStatus(r.StatusCode) {
			return r, nil
		}

		statusErr := &StatusError{Service: c.serviceName, StatusCode: r.StatusCode}
		if attempts == c.retryCfg.maxAttempts {
			// Keep the body so the caller can read the problem details.
			*resp = r
			return nil, statusErr
		}

		secs := retryAfterSeconds(r, c.retryCfg.maxInterval)
		drainResponseBody(r)
		if secs > 0 {
			return nil, backoff.RetryAfter(secs)
		}
		return nil, statusErr
	}

	r, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(uint(c.retryCfg.maxAttempts)),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.logRetry(ctx, req, attempts, next, err)
		}),
	)
	if r != nil {
		*resp = r
	}
	return attempts, err
}

// newBackOff returns an exponential policy built from the retry config.
func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryCfg.initialInterval
	b.MaxInterval = c.retryCfg.maxInterval
	b.Multiplier = c.retryCfg.multiplier
	b.RandomizationFactor = jitterFraction
	b.Reset()
	return b
}

func (c *Client) logRetry(ctx context.Context, req *http.Request, attempt int, next time.Duration, err error) {
	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", next),
		slog.Any("error", err),
	)
}

// retryAfterSeconds parses a delta-seconds Retry-After header on 429 and
// 503 responses, capped at ceiling. HTTP dates and other statuses yield 0.
func retryAfterSeconds(r *http.Response, ceiling time.Duration) int {
	if r.StatusCode != http.StatusTooManyRequests && r.StatusCode != http.StatusServiceUnavailable {
		return 0
	}
	secs, err := strconv.Atoi(r.Header.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return min(secs, int(ceiling/time.Second))
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	return b, nil
}

func resetRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody lets the transport reuse the connection.
func drainResponseBody(r *http.Response) {
	_, _ = io.Copy(io.Discard, r.Body)
	_ = r.Body.Close()
}

// isRetryable reports whether a transport error is worth another attempt.
// Only cancellation and deadline errors are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports 429 and 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
