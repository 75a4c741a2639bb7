package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	appctx "github.com/jsamuelsen11/shard-launcher-service/internal/app/context"
	"github.com/jsamuelsen11/shard-launcher-service/internal/app/fanout"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/filename"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/version"
	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

// Validation messages for version operations.
const (
	MsgSameName        = "must differ from the current name"
	MsgInvalidVersion  = "is not a valid version"
	MsgHiddenName      = "must not start with a dot"
	defaultListWorkers = 4
)

// stalePrefix names parked folders. Hidden folders are skipped by listing.
const stalePrefix = ".stale-"

// Compile-time check that VersionService implements ports.VersionService.
var _ ports.VersionService = (*VersionService)(nil)

// VersionService implements ports.VersionService. Multi-step changes to the
// versions directory are queued on an appctx.RequestContext so that a
// failure part way through is rolled back.
type VersionService struct {
	repo    ports.VersionRepository
	rules   filename.Rules
	workers int
	logger  *slog.Logger
}

// NewVersionService creates a VersionService. rules validate new version
// names; workers bounds concurrent folder reads during listing.
func NewVersionService(repo ports.VersionRepository, rules filename.Rules, workers int, logger *slog.Logger) *VersionService {
	if workers < 1 {
		workers = defaultListWorkers
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &VersionService{
		repo:    repo,
		rules:   rules,
		workers: workers,
		logger:  logger,
	}
}

// ListVersions loads every non-hidden version folder concurrently. Folders
// that disappear during listing are skipped; folders that cannot be read
// are reported as invalid.
func (s *VersionService) ListVersions(ctx context.Context) ([]version.Version, error) {
	s.logger.InfoContext(ctx, "listing versions")

	names, err := s.repo.ListNames(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list versions",
			slog.String("operation", "ListVersions"),
			slog.Any("error", err),
		)
		return nil, err
	}

	visible := make([]string, 0, len(names))
	for _, n := range names {
		if !version.IsHidden(n) {
			visible = append(visible, n)
		}
	}

	results := fanout.Run(ctx, s.workers, visible, s.repo.Load)

	versions := make([]version.Version, 0, len(results))
	for i, r := range results {
		switch {
		case r.Err == nil:
			versions = append(versions, *r.Value)
		case errors.Is(r.Err, domain.ErrNotFound):
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			s.logger.WarnContext(ctx, "unreadable version folder",
				slog.String("operation", "ListVersions"),
				slog.String("name", visible[i]),
				slog.Any("error", r.Err),
			)
			versions = append(versions, version.Version{Name: visible[i]})
		}
	}
	return versions, nil
}

// GetVersion returns a single version.
func (s *VersionService) GetVersion(ctx context.Context, name string) (*version.Version, error) {
	s.logger.InfoContext(ctx, "fetching version", slog.String("name", name))

	v, err := s.load(ctx, name)
	if err != nil {
		s.logError(ctx, "GetVersion", name, err)
		return nil, err
	}
	return v, nil
}

// RenameVersion moves the version folder and renames its artifacts. A
// stale folder already at the target (one without a version JSON) is
// parked first and deleted once the rename has committed.
func (s *VersionService) RenameVersion(ctx context.Context, name, newName string) (*version.Version, error) {
	s.logger.InfoContext(ctx, "renaming version",
		slog.String("name", name),
		slog.String("new_name", newName),
	)

	rc := appctx.New(ctx)

	src, err := s.loadCached(rc, name)
	if err != nil {
		s.logError(ctx, "RenameVersion", name, err)
		return nil, err
	}
	if newName == name {
		return nil, domain.FieldError("new_name", MsgSameName)
	}
	if err := s.validateNewName(ctx, newName, src.Info); err != nil {
		return nil, err
	}

	parked, err := s.parkStale(rc, newName)
	if err != nil {
		return nil, err
	}

	if err := rc.AddAction(&moveFolderAction{repo: s.repo, from: name, to: newName}); err != nil {
		return nil, err
	}
	if err := rc.AddAction(&renameArtifactsAction{repo: s.repo, folder: newName, from: name, to: newName}); err != nil {
		return nil, err
	}

	current, err := s.repo.CurrentName(ctx)
	if err != nil {
		s.logError(ctx, "RenameVersion", name, err)
		return nil, err
	}
	if current == name {
		if err := rc.Stage("current", newName, &selectVersionAction{repo: s.repo, name: newName, prev: name}); err != nil {
			return nil, err
		}
	}

	if err := rc.Commit(ctx); err != nil {
		s.logError(ctx, "RenameVersion", name, err)
		return nil, fmt.Errorf("renaming version %q: %w", name, err)
	}
	s.dropParked(ctx, parked)

	return s.repo.Load(ctx, newName)
}

// CopyVersion copies a version and marks the copy isolated so that it runs
// in its own folder.
func (s *VersionService) CopyVersion(ctx context.Context, name, newName string, all bool) (*version.Version, error) {
	s.logger.InfoContext(ctx, "copying version",
		slog.String("name", name),
		slog.String("new_name", newName),
		slog.Bool("all", all),
	)

	rc := appctx.New(ctx)

	src, err := s.loadCached(rc, name)
	if err != nil {
		s.logError(ctx, "CopyVersion", name, err)
		return nil, err
	}
	if !src.Valid {
		return nil, domain.FieldError("name", MsgInvalidVersion)
	}
	if err := s.validateNewName(ctx, newName, src.Info); err != nil {
		return nil, err
	}

	parked, err := s.parkStale(rc, newName)
	if err != nil {
		return nil, err
	}

	cfg := src.Config
	cfg.Isolation = true

	if err := rc.AddAction(&copyVersionAction{repo: s.repo, from: name, to: newName, all: all}); err != nil {
		return nil, err
	}
	if err := rc.AddAction(&saveConfigAction{repo: s.repo, name: newName, cfg: cfg, prev: src.Config}); err != nil {
		return nil, err
	}

	if err := rc.Commit(ctx); err != nil {
		s.logError(ctx, "CopyVersion", name, err)
		return nil, fmt.Errorf("copying version %q: %w", name, err)
	}
	s.dropParked(ctx, parked)

	return s.repo.Load(ctx, newName)
}

// DeleteVersion removes a version folder and clears the selection if it
// pointed at the version.
func (s *VersionService) DeleteVersion(ctx context.Context, name string) error {
	s.logger.InfoContext(ctx, "deleting version", slog.String("name", name))

	if !version.IsFolderName(name) || version.IsHidden(name) {
		return fmt.Errorf("version %q: %w", name, domain.ErrNotFound)
	}
	exists, err := s.repo.FolderExists(ctx, name)
	if err != nil {
		s.logError(ctx, "DeleteVersion", name, err)
		return err
	}
	if !exists {
		return fmt.Errorf("version %q: %w", name, domain.ErrNotFound)
	}

	if err := s.repo.Remove(ctx, name); err != nil {
		s.logError(ctx, "DeleteVersion", name, err)
		return err
	}

	current, err := s.repo.CurrentName(ctx)
	if err != nil {
		s.logError(ctx, "DeleteVersion", name, err)
		return err
	}
	if current == name {
		if err := s.repo.SetCurrentName(ctx, ""); err != nil {
			s.logError(ctx, "DeleteVersion", name, err)
			return err
		}
	}
	return nil
}

// CurrentVersion returns the selected version. An unset or stale selection
// falls back to the first valid version, which is then persisted.
func (s *VersionService) CurrentVersion(ctx context.Context) (*version.Version, error) {
	current, err := s.repo.CurrentName(ctx)
	if err != nil {
		s.logError(ctx, "CurrentVersion", "", err)
		return nil, err
	}

	if current != "" && version.IsFolderName(current) {
		v, err := s.repo.Load(ctx, current)
		switch {
		case err == nil && v.Valid:
			return v, nil
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			s.logError(ctx, "CurrentVersion", current, err)
			return nil, err
		}
		s.logger.WarnContext(ctx, "selected version is gone or invalid",
			slog.String("operation", "CurrentVersion"),
			slog.String("name", current),
		)
	}

	versions, err := s.ListVersions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range versions {
		if !versions[i].Valid {
			continue
		}
		if err := s.repo.SetCurrentName(ctx, versions[i].Name); err != nil {
			s.logger.WarnContext(ctx, "failed to persist fallback selection",
				slog.String("operation", "CurrentVersion"),
				slog.String("name", versions[i].Name),
				slog.Any("error", err),
			)
		}
		return &versions[i], nil
	}

	return nil, fmt.Errorf("no valid version installed: %w", domain.ErrNotFound)
}

// SelectVersion makes name the current version.
func (s *VersionService) SelectVersion(ctx context.Context, name string) (*version.Version, error) {
	s.logger.InfoContext(ctx, "selecting version", slog.String("name", name))

	v, err := s.load(ctx, name)
	if err != nil {
		s.logError(ctx, "SelectVersion", name, err)
		return nil, err
	}
	if !v.Valid {
		return nil, domain.FieldError("name", MsgInvalidVersion)
	}
	if err := s.repo.SetCurrentName(ctx, name); err != nil {
		s.logError(ctx, "SelectVersion", name, err)
		return nil, err
	}
	return v, nil
}

func (s *VersionService) load(ctx context.Context, name string) (*version.Version, error) {
	if !version.IsFolderName(name) || version.IsHidden(name) {
		return nil, fmt.Errorf("version %q: %w", name, domain.ErrNotFound)
	}
	return s.repo.Load(ctx, name)
}

func (s *VersionService) loadCached(rc *appctx.RequestContext, name string) (*version.Version, error) {
	return appctx.GetOrFetch(rc, "version:"+name, func(ctx context.Context) (*version.Version, error) {
		return s.load(ctx, name)
	})
}

// validateNewName applies filename rules and the version-name checks. A
// target is taken only if it holds a version JSON.
func (s *VersionService) validateNewName(ctx context.Context, newName string, info *version.Info) error {
	if err := filename.Validate(newName, s.rules); err != nil {
		return err
	}
	if !version.IsFolderName(newName) || version.IsHidden(newName) {
		return domain.FieldError("new_name", MsgHiddenName)
	}
	taken, err := s.repo.HasJSON(ctx, newName)
	if err != nil {
		return err
	}
	return version.ValidateName(newName, info, s.rules, taken)
}

// parkStale queues moving a leftover folder at name aside. It returns the
// parked name, or "" when there is nothing to park.
func (s *VersionService) parkStale(rc *appctx.RequestContext, name string) (string, error) {
	exists, err := s.repo.FolderExists(rc, name)
	if err != nil || !exists {
		return "", err
	}
	parked := stalePrefix + uuid.NewString()
	if err := rc.AddAction(&moveFolderAction{repo: s.repo, from: name, to: parked}); err != nil {
		return "", err
	}
	return parked, nil
}

func (s *VersionService) dropParked(ctx context.Context, parked string) {
	if parked == "" {
		return
	}
	if err := s.repo.Remove(ctx, parked); err != nil {
		s.logger.WarnContext(ctx, "failed to remove parked folder",
			slog.String("name", parked),
			slog.Any("error", err),
		)
	}
}

func (s *VersionService) logError(ctx context.Context, op, name string, err error) {
	s.logger.ErrorContext(ctx, "version operation failed",
		slog.String("operation", op),
		slog.String("name", name),
		slog.Any("error", err),
	)
}
