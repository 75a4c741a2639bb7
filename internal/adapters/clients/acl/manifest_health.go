package acl

import (
	"context"

	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/httpclient"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. The value "manifest-api" matches the service name
// used by the underlying [httpclient.Client] for tracing and metrics.
func (c *ManifestClient) Name() string {
	return "manifest-api"
}

// HealthCheck reports the manifest host's availability from the circuit
// breaker state. No network call is made.
//
// This reports downstream status, not service readiness: version management
// and launches keep working while the manifest host is down.
func (c *ManifestClient) HealthCheck(_ context.Context) error {
	return httpclient.BreakerHealth(c.Name(), c.req.CircuitBreakerState())
}
