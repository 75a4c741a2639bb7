package ports

import (
	"context"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/launch"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/version"
)

// ManifestClient defines the client port for the remote version manifest.
// Implemented by the ACL adapter; called by the application layer.
type ManifestClient interface {
	// GetManifest returns the full remote version manifest.
	// Returns domain.ErrUnavailable if the manifest host cannot be reached.
	GetManifest(ctx context.Context) (*version.Manifest, error)
}

// NativeRuntime is the boundary to the embedded JVM. Implementations hand
// control to a Java runtime outside the Go process.
type NativeRuntime interface {
	// LaunchJVM starts the JVM described by spec and blocks until it exits.
	// The returned int is the JVM's exit status. A non-zero status is not an
	// error; err is reserved for failures to start the runtime at all.
	LaunchJVM(ctx context.Context, spec launch.Spec) (int, error)

	// ProbeCriticalNative exercises the native call path with two integers
	// and has no other effect. It returns nil when the path is wired.
	ProbeCriticalNative(ctx context.Context, a, b int32) error
}

// VersionRepository stores installed versions. Names are folder names
// directly under the versions directory.
type VersionRepository interface {
	// ListNames returns the names of all version folders.
	ListNames(ctx context.Context) ([]string, error)

	// Load reads a version folder. A folder whose JSON is missing or
	// unreadable is returned with Valid=false.
	// Returns domain.ErrNotFound if the folder does not exist.
	Load(ctx context.Context, name string) (*version.Version, error)

	// FolderExists reports whether a folder with the name exists.
	FolderExists(ctx context.Context, name string) (bool, error)

	// HasJSON reports whether the folder exists and holds its version JSON.
	HasJSON(ctx context.Context, name string) (bool, error)

	// MoveFolder renames a version folder without touching its contents.
	MoveFolder(ctx context.Context, from, to string) error

	// RenameArtifacts renames <from>.json and <from>.jar inside folder to
	// <to>.json and <to>.jar. Missing artifacts are skipped.
	RenameArtifacts(ctx context.Context, folder, from, to string) error

	// Copy creates version to from version from. With all set the whole
	// folder is copied, otherwise only the JSON and jar.
	Copy(ctx context.Context, from, to string, all bool) error

	// Remove deletes a version folder and everything in it.
	Remove(ctx context.Context, name string) error

	// SaveConfig writes the launcher metadata of a version.
	SaveConfig(ctx context.Context, name string, cfg version.Config) error

	// CurrentName returns the persisted current version, or "" if unset.
	CurrentName(ctx context.Context) (string, error)

	// SetCurrentName persists the current version. "" clears it.
	SetCurrentName(ctx context.Context, name string) error
}
