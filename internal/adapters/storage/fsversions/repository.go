// Package fsversions stores installed versions on a go-billy filesystem.
//
// The versions filesystem is rooted at the versions directory: each version
// is a folder directly under the root. The selected version is persisted in
// the game directory as [SelectionFile]. Production wiring uses osfs; tests
// use memfs.
package fsversions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/version"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/logging"
	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

// SelectionFile holds the current version name inside the game directory.
const SelectionFile = "shard-game.cfg"

// configFile is the per-version launcher metadata inside version.MetadataDir.
const configFile = "config.json"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Compile-time interface check.
var _ ports.VersionRepository = (*Repository)(nil)

// Repository implements [ports.VersionRepository].
type Repository struct {
	versions billy.Filesystem
	game     billy.Filesystem
}

// New creates a Repository. versions is rooted at the versions directory,
// game at the game directory.
func New(versions, game billy.Filesystem) *Repository {
	return &Repository{versions: versions, game: game}
}

type selection struct {
	Version string `json:"version"`
}

// ListNames returns the folder names under the versions root, sorted.
// Plain files at the root are ignored.
func (r *Repository) ListNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := r.versions.ReadDir(".")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading versions directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load reads one version folder. An unreadable launcher config is logged
// and treated as the zero Config.
func (r *Repository) Load(ctx context.Context, name string) (*version.Version, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ok, err := r.isDir(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("version %q: %w", name, domain.ErrNotFound)
	}

	v := &version.Version{Name: name}

	data, err := util.ReadFile(r.versions, path.Join(name, version.JSONFile(name)))
	if err == nil {
		if info, perr := version.ParseInfo(data); perr == nil {
			v.Info = info
			v.Valid = true
		}
	}

	v.HasJar, err = r.exists(path.Join(name, version.JarFile(name)))
	if err != nil {
		return nil, err
	}

	cfgData, err := util.ReadFile(r.versions, configPath(name))
	switch {
	case err == nil:
		if jerr := json.Unmarshal(cfgData, &v.Config); jerr != nil {
			logging.FromContext(ctx).WarnContext(ctx, "ignoring unreadable version config",
				slog.String("version", name),
				slog.Any("error", jerr),
			)
			v.Config = version.Config{}
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config of version %q: %w", name, err)
	}

	return v, nil
}

// FolderExists reports whether a folder with the name exists.
func (r *Repository) FolderExists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.isDir(name)
}

// HasJSON reports whether <name>/<name>.json exists.
func (r *Repository) HasJSON(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.exists(path.Join(name, version.JSONFile(name)))
}

// MoveFolder renames a version folder.
func (r *Repository) MoveFolder(ctx context.Context, from, to string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok, err := r.isDir(from)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("version %q: %w", from, domain.ErrNotFound)
	}

	if err := r.versions.Rename(from, to); err != nil {
		return fmt.Errorf("moving version %q to %q: %w", from, to, err)
	}
	return nil
}

// RenameArtifacts renames the JSON and jar inside folder.
func (r *Repository) RenameArtifacts(ctx context.Context, folder, from, to string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, pair := range [][2]string{
		{version.JSONFile(from), version.JSONFile(to)},
		{version.JarFile(from), version.JarFile(to)},
	} {
		src := path.Join(folder, pair[0])
		ok, err := r.exists(src)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := r.versions.Rename(src, path.Join(folder, pair[1])); err != nil {
			return fmt.Errorf("renaming %s: %w", src, err)
		}
	}
	return nil
}

// Copy creates version to from version from. With all unset only the JSON
// and jar are copied; otherwise every file in the folder is, with the
// artifacts renamed for the new version.
func (r *Repository) Copy(ctx context.Context, from, to string, all bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok, err := r.isDir(from)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("version %q: %w", from, domain.ErrNotFound)
	}

	if err := r.versions.MkdirAll(to, dirPerm); err != nil {
		return fmt.Errorf("creating version %q: %w", to, err)
	}

	rename := map[string]string{
		version.JSONFile(from): version.JSONFile(to),
		version.JarFile(from):  version.JarFile(to),
	}

	if !all {
		for src, dst := range rename {
			srcPath := path.Join(from, src)
			ok, err := r.exists(srcPath)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := r.copyFile(srcPath, path.Join(to, dst)); err != nil {
				return err
			}
		}
		return nil
	}

	return util.Walk(r.versions, from, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(from, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if dst, ok := rename[rel]; ok {
			rel = dst
		}
		target := path.Join(to, rel)

		if info.IsDir() {
			return r.versions.MkdirAll(target, dirPerm)
		}
		return r.copyFile(p, target)
	})
}

// Remove deletes a version folder recursively. Removing a missing folder
// is not an error.
func (r *Repository) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := util.RemoveAll(r.versions, name); err != nil {
		return fmt.Errorf("removing version %q: %w", name, err)
	}
	return nil
}

// SaveConfig writes <name>/.shard/config.json.
func (r *Repository) SaveConfig(ctx context.Context, name string, cfg version.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config of version %q: %w", name, err)
	}
	if err := r.versions.MkdirAll(path.Join(name, version.MetadataDir), dirPerm); err != nil {
		return fmt.Errorf("creating metadata dir of version %q: %w", name, err)
	}
	if err := util.WriteFile(r.versions, configPath(name), data, filePerm); err != nil {
		return fmt.Errorf("writing config of version %q: %w", name, err)
	}
	return nil
}

// CurrentName reads the selection file. A missing or empty file means no
// selection.
func (r *Repository) CurrentName(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := util.ReadFile(r.game, SelectionFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", SelectionFile, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", nil
	}

	var sel selection
	if err := json.Unmarshal(data, &sel); err != nil {
		return "", fmt.Errorf("decoding %s: %w", SelectionFile, err)
	}
	return sel.Version, nil
}

// SetCurrentName writes the selection file.
func (r *Repository) SetCurrentName(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(selection{Version: name})
	if err != nil {
		return fmt.Errorf("encoding %s: %w", SelectionFile, err)
	}
	if err := util.WriteFile(r.game, SelectionFile, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", SelectionFile, err)
	}
	return nil
}

func (r *Repository) copyFile(src, dst string) (err error) {
	in, err := r.versions.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := r.versions.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", dst, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return nil
}

func (r *Repository) isDir(name string) (bool, error) {
	fi, err := r.versions.Stat(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", name, err)
	}
	return fi.IsDir(), nil
}

func (r *Repository) exists(p string) (bool, error) {
	_, err := r.versions.Stat(p)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", p, err)
}

func configPath(name string) string {
	return path.Join(name, version.MetadataDir, configFile)
}
