package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/version"
	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

// Compile-time checks that the version actions implement domain.Action.
var (
	_ domain.Action = (*moveFolderAction)(nil)
	_ domain.Action = (*renameArtifactsAction)(nil)
	_ domain.Action = (*copyVersionAction)(nil)
	_ domain.Action = (*saveConfigAction)(nil)
	_ domain.Action = (*selectVersionAction)(nil)
)

// moveFolderAction renames a version folder. Also used to park a stale
// target folder out of the way.
type moveFolderAction struct {
	repo     ports.VersionRepository
	from, to string
}

func (a *moveFolderAction) Execute(ctx context.Context) error {
	return a.repo.MoveFolder(ctx, a.from, a.to)
}

func (a *moveFolderAction) Rollback(ctx context.Context) error {
	return a.repo.MoveFolder(ctx, a.to, a.from)
}

func (a *moveFolderAction) Description() string {
	return fmt.Sprintf("move versions/%s to versions/%s", a.from, a.to)
}

// renameArtifactsAction renames <from>.json and <from>.jar inside folder.
type renameArtifactsAction struct {
	repo     ports.VersionRepository
	folder   string
	from, to string
}

func (a *renameArtifactsAction) Execute(ctx context.Context) error {
	return a.repo.RenameArtifacts(ctx, a.folder, a.from, a.to)
}

func (a *renameArtifactsAction) Rollback(ctx context.Context) error {
	return a.repo.RenameArtifacts(ctx, a.folder, a.to, a.from)
}

func (a *renameArtifactsAction) Description() string {
	return fmt.Sprintf("rename %s artifacts in versions/%s to %s", a.from, a.folder, a.to)
}

// copyVersionAction copies a version; rollback removes the copy.
type copyVersionAction struct {
	repo     ports.VersionRepository
	from, to string
	all      bool
}

func (a *copyVersionAction) Execute(ctx context.Context) error {
	return a.repo.Copy(ctx, a.from, a.to, a.all)
}

func (a *copyVersionAction) Rollback(ctx context.Context) error {
	return a.repo.Remove(ctx, a.to)
}

func (a *copyVersionAction) Description() string {
	what := "artifacts of"
	if a.all {
		what = "folder"
	}
	return fmt.Sprintf("copy %s versions/%s to versions/%s", what, a.from, a.to)
}

// saveConfigAction writes version metadata. The previous metadata is
// restored on rollback.
type saveConfigAction struct {
	repo ports.VersionRepository
	name string
	cfg  version.Config
	prev version.Config
}

func (a *saveConfigAction) Execute(ctx context.Context) error {
	return a.repo.SaveConfig(ctx, a.name, a.cfg)
}

func (a *saveConfigAction) Rollback(ctx context.Context) error {
	return a.repo.SaveConfig(ctx, a.name, a.prev)
}

func (a *saveConfigAction) Description() string {
	return fmt.Sprintf("save config of versions/%s", a.name)
}

// selectVersionAction moves the current-version selection.
type selectVersionAction struct {
	repo       ports.VersionRepository
	name, prev string
}

func (a *selectVersionAction) Execute(ctx context.Context) error {
	return a.repo.SetCurrentName(ctx, a.name)
}

func (a *selectVersionAction) Rollback(ctx context.Context) error {
	return a.repo.SetCurrentName(ctx, a.prev)
}

func (a *selectVersionAction) Description() string {
	return fmt.Sprintf("select version %s", a.name)
}
