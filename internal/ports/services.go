package ports

import (
	"context"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/filename"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/launch"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/version"
)

// FilenameService classifies candidate file and folder names.
// Implemented by the application layer; called by inbound adapters (handlers).
type FilenameService interface {
	// Validate checks name against the rule set of platform, or the
	// configured default when platform is empty. Returns *filename.Error
	// (wrapping domain.ErrValidation) when the name is rejected, and a
	// plain validation error when the platform is unknown.
	Validate(ctx context.Context, name, platform string) (filename.Rules, error)
}

// VersionService manages installed versions.
type VersionService interface {
	// ListVersions returns every version folder, valid or not.
	ListVersions(ctx context.Context) ([]version.Version, error)

	// GetVersion returns a single version.
	// Returns domain.ErrNotFound if the version does not exist.
	GetVersion(ctx context.Context, name string) (*version.Version, error)

	// RenameVersion renames a version folder and its artifacts. If the
	// version is selected, the selection follows it.
	// Returns *filename.Error or domain.ErrValidation for a bad name and
	// domain.ErrConflict if the name is taken.
	RenameVersion(ctx context.Context, name, newName string) (*version.Version, error)

	// CopyVersion duplicates a version under a new name. With all set the
	// whole folder is copied. The copy is isolated.
	CopyVersion(ctx context.Context, name, newName string, all bool) (*version.Version, error)

	// DeleteVersion removes a version folder.
	DeleteVersion(ctx context.Context, name string) error

	// CurrentVersion returns the selected version, falling back to the
	// first valid version when the selection is unset or stale.
	// Returns domain.ErrNotFound if there is no valid version.
	CurrentVersion(ctx context.Context) (*version.Version, error)

	// SelectVersion makes a valid version current.
	SelectVersion(ctx context.Context, name string) (*version.Version, error)
}

// ManifestService exposes the remote version manifest.
type ManifestService interface {
	// ListRemote returns the manifest with its versions filtered.
	ListRemote(ctx context.Context, filter version.RemoteFilter) (*version.Manifest, error)
}

// LaunchService starts and tracks JVM launches.
type LaunchService interface {
	// Start validates the request, resolves the runtime and arguments and
	// starts the JVM in the background. The returned record is running.
	// Returns domain.ErrNotFound for an unknown runtime or version.
	Start(ctx context.Context, req launch.Request) (*launch.Launch, error)

	// Get returns a launch record by ID.
	// Returns domain.ErrNotFound if the ID is unknown.
	Get(ctx context.Context, id string) (*launch.Launch, error)

	// List returns all launch records, newest first.
	List(ctx context.Context) ([]launch.Launch, error)

	// Probe runs the native diagnostic hook.
	Probe(ctx context.Context, a, b int32) error
}
