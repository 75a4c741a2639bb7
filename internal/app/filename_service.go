// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/filename"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

// Compile-time check that FilenameService implements ports.FilenameService.
var _ ports.FilenameService = (*FilenameService)(nil)

// FilenameService implements ports.FilenameService on top of the pure
// rules in domain/filename, adding the configured default platform, logging
// and a rejection counter.
type FilenameService struct {
	defaults filename.Rules
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewFilenameService creates a FilenameService whose default rule set is
// defaults. metrics may be nil.
func NewFilenameService(defaults filename.Rules, metrics *telemetry.Metrics, logger *slog.Logger) *FilenameService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FilenameService{
		defaults: defaults,
		metrics:  metrics,
		logger:   logger,
	}
}

// Validate checks name against the rules of platform, or the default rules
// when platform is empty. The rules used are returned even when the name is
// rejected.
func (s *FilenameService) Validate(ctx context.Context, name, platform string) (filename.Rules, error) {
	rules := s.defaults
	if platform != "" {
		r, err := filename.RulesFor(platform)
		if err != nil {
			return filename.Rules{}, domain.FieldError("platform", err.Error())
		}
		rules = r
	}

	err := filename.Validate(name, rules)
	if err == nil {
		return rules, nil
	}

	var ferr *filename.Error
	if errors.As(err, &ferr) {
		s.logger.DebugContext(ctx, "filename rejected",
			slog.String("name", name),
			slog.String("platform", rules.Platform),
			slog.String("kind", ferr.Kind().String()),
		)
		if s.metrics != nil {
			s.metrics.FilenameRejections.Add(ctx, 1, metric.WithAttributes(
				telemetry.AttrKind.String(ferr.Kind().String()),
				telemetry.AttrPlatform.String(rules.Platform),
			))
		}
	}
	return rules, err
}
