package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/clients/acl/manifest"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/version"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

// ManifestPath is the version manifest document relative to the meta host.
const ManifestPath = "/mc/game/version_manifest.json"

// Compile-time interface checks.
var (
	_ ports.ManifestClient = (*ManifestClient)(nil)
	_ ports.HealthChecker  = (*ManifestClient)(nil)
)

// ManifestClient is the outbound adapter for the remote version manifest.
// It implements [ports.ManifestClient].
//
// Responses are translated into domain types by the [manifest] translators.
// HTTP errors are mapped to domain errors by [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, rate limiting and OpenTelemetry tracing.
type ManifestClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewManifestClient creates a ManifestClient. The client's BaseURL should
// point to the meta host root (e.g. "https://piston-meta.mojang.com").
func NewManifestClient(client *httpclient.Client, logger *slog.Logger) *ManifestClient {
	return &ManifestClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// GetManifest fetches and translates the version manifest.
func (c *ManifestClient) GetManifest(ctx context.Context) (*version.Manifest, error) {
	var dto manifest.VersionManifestDTO
	if err := c.req.Get(ctx, ManifestPath, &dto); err != nil {
		return nil, err
	}

	m := manifest.ToDomainManifest(&dto)
	c.logger.DebugContext(ctx, "fetched version manifest",
		slog.Int("versions", len(m.Versions)),
		slog.String("latest_release", m.LatestRelease),
	)
	return m, nil
}
