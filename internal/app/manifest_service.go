package app

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/version"
	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

// Compile-time check that ManifestService implements ports.ManifestService.
var _ ports.ManifestService = (*ManifestService)(nil)

// manifestKey is the singleflight key for the one manifest document.
const manifestKey = "manifest"

// ManifestService implements ports.ManifestService over the ManifestClient
// port. Concurrent callers share one in-flight fetch.
type ManifestService struct {
	client ports.ManifestClient
	logger *slog.Logger
	group  singleflight.Group
}

// NewManifestService creates a ManifestService.
func NewManifestService(client ports.ManifestClient, logger *slog.Logger) *ManifestService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ManifestService{client: client, logger: logger}
}

// ListRemote fetches the manifest and keeps the versions matching filter.
// The latest ids are reported unfiltered.
func (s *ManifestService) ListRemote(ctx context.Context, filter version.RemoteFilter) (*version.Manifest, error) {
	s.logger.InfoContext(ctx, "listing remote versions", slog.Any("types", filter.Types))

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	m, err := s.fetch(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch manifest",
			slog.String("operation", "ListRemote"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &version.Manifest{
		LatestRelease:  m.LatestRelease,
		LatestSnapshot: m.LatestSnapshot,
		Versions:       filter.Apply(m.Versions),
	}, nil
}

// fetch joins an in-flight manifest request or starts one. The shared
// request is detached from the caller so one caller giving up does not fail
// the others; each caller still stops waiting when its own ctx is done.
func (s *ManifestService) fetch(ctx context.Context) (*version.Manifest, error) {
	ch := s.group.DoChan(manifestKey, func() (any, error) {
		return s.client.GetManifest(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.logger.DebugContext(ctx, "joined in-flight manifest fetch")
		}
		return res.Val.(*version.Manifest), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
