// Package httpclient is the resilient HTTP client behind the manifest API
// adapter. Each call goes through a circuit breaker and an optional rate
// limiter. It then picks up the inbound request IDs and a client span, and
// finally enters the backoff loop.
//
//	client := httpclient.New(&cfg.Client, "manifest-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/config"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/telemetry"
)

type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client talks to a single downstream host.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a Client for serviceName, the label used in spans, metrics
// and breaker logs. metrics and logger may be nil. A zero
// RequestsPerSecond leaves the client unthrottled.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     newBreaker(serviceName, cfg.CircuitBreaker, logger),
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// newBreaker trips after MaxFailures consecutive failed calls and lets
// HalfOpenLimit trial calls through once Timeout has passed.
func newBreaker(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	trial := uint32(0)
	if cfg.HalfOpenLimit > 0 {
		trial = uint32(min(cfg.HalfOpenLimit, math.MaxUint32))
	}

	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: trial,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(max(cfg.MaxFailures, 0))
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do sends req and counts as one breaker call however many attempts the
// backoff loop needed.
//
// A nil error means resp is set and the caller must close its body. When
// every attempt got 429 or 5xx, Do returns the last response together with
// a *StatusError. Breaker rejections, limiter waits that end early and
// transport failures return no response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, fmt.Errorf("waiting for %s rate limit: %w", c.serviceName, err)
			}
		}

		forwardIDs(ctx, req.Header)
		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		attempts, err := c.doWithRetry(spanCtx, req.WithContext(spanCtx), &resp)
		endSpan(span, resp, attempts, err)
		return struct{}{}, err
	})

	c.record(ctx, method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL is the downstream root, e.g. "https://piston-meta.mojang.com".
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name is the downstream label passed to New.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reports the breaker state without contacting the downstream.
func (c *Client) HealthCheck(context.Context) error {
	return BreakerHealth(c.serviceName, c.CircuitBreakerState())
}

// CircuitBreakerState is one of "closed", "half-open" or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// BreakerHealth turns a breaker state into a readiness result for name.
// Anything but "closed" is unhealthy.
func BreakerHealth(name, state string) error {
	switch state {
	case gobreaker.StateClosed.String():
		return nil
	case gobreaker.StateHalfOpen.String():
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", name)
	case gobreaker.StateOpen.String():
		return fmt.Errorf("%s: failing (circuit breaker open)", name)
	}
	return fmt.Errorf("%s: unknown circuit breaker state %q", name, state)
}
