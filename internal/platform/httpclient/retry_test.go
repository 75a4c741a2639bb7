package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestNewBackOff_GrowsWithinJitterAndCaps(t *testing.T) {
	t.Parallel()

	c := &Client{retryCfg: retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     400 * time.Millisecond,
		multiplier:      2.0,
	}}

	// 100ms, 200ms, 400ms, then held at the 400ms ceiling.
	bases := []time.Duration{100, 200, 400, 400, 400}
	for range 50 {
		b := c.newBackOff()
		for i, base := range bases {
			base *= time.Millisecond
			lo := time.Duration(float64(base) * (1 - jitterFraction))
			hi := time.Duration(float64(base) * (1 + jitterFraction))
			if d := b.NextBackOff(); d < lo || d > hi {
				t.Fatalf("delay %d = %v, want within [%v, %v]", i, d, lo, hi)
			}
		}
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		header  string
		ceiling time.Duration
		want    int
	}{
		{name: "429 delta seconds", status: http.StatusTooManyRequests, header: "2", ceiling: 10 * time.Second, want: 2},
		{name: "503 delta seconds", status: http.StatusServiceUnavailable, header: "3", ceiling: 10 * time.Second, want: 3},
		{name: "capped at ceiling", status: http.StatusTooManyRequests, header: "120", ceiling: 5 * time.Second, want: 5},
		{name: "ceiling below a second", status: http.StatusTooManyRequests, header: "1", ceiling: 100 * time.Millisecond, want: 0},
		{name: "http date ignored", status: http.StatusServiceUnavailable, header: "Wed, 21 Oct 2015 07:28:00 GMT", ceiling: 10 * time.Second},
		{name: "missing header", status: http.StatusTooManyRequests, ceiling: 10 * time.Second},
		{name: "negative", status: http.StatusTooManyRequests, header: "-4", ceiling: 10 * time.Second},
		{name: "502 ignores header", status: http.StatusBadGateway, header: "2", ceiling: 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := &http.Response{StatusCode: tt.status, Header: http.Header{}}
			if tt.header != "" {
				r.Header.Set("Retry-After", tt.header)
			}
			if got := retryAfterSeconds(r, tt.ceiling); got != tt.want {
				t.Errorf("retryAfterSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "wrapped deadline", err: fmt.Errorf("GET manifest: %w", context.DeadlineExceeded), want: false},
		{name: "connection refused", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "reset", err: errors.New("connection reset by peer"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	retryable := map[int]bool{
		http.StatusOK:                  false,
		http.StatusNotModified:         false,
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
		http.StatusGatewayTimeout:      true,
	}

	for code, want := range retryable {
		if got := isRetryableStatus(code); got != want {
			t.Errorf("isRetryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestDoWithRetry_RejectsZeroAttempts(t *testing.T) {
	t.Parallel()

	c := &Client{httpClient: http.DefaultClient, retryCfg: retryConfig{maxAttempts: 0}}
	req, _ := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://127.0.0.1:1/", http.NoBody)

	var resp *http.Response
	if _, err := c.doWithRetry(t.Context(), req, &resp); err == nil {
		t.Fatal("doWithRetry() error = nil, want maxAttempts error")
	}
	if resp != nil {
		t.Error("resp set without any attempt")
	}
}
