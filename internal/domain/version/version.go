// Package version models installed game versions and the remote version
// manifest.
//
// An installed version is a folder under the versions directory named after
// the version. The folder holds <name>.json (required for a valid version),
// an optional <name>.jar, and launcher metadata under MetadataDir.
package version

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MetadataDir is the per-version folder holding launcher-owned files.
const MetadataDir = ".shard"

// LoaderType identifies a mod loader.
type LoaderType string

const (
	LoaderForge  LoaderType = "forge"
	LoaderFabric LoaderType = "fabric"
	LoaderQuilt  LoaderType = "quilt"
)

// UnknownLoaderVersion is reported when a loader library has no version
// coordinate.
const UnknownLoaderVersion = "unknown"

// loaderPriority is the order in which loaders are detected from libraries.
var loaderPriority = []LoaderType{LoaderForge, LoaderFabric, LoaderQuilt}

// LoaderInfo describes the mod loader a version was installed with.
type LoaderInfo struct {
	Type    LoaderType
	Version string
}

// Info is what the launcher extracts from a version JSON.
type Info struct {
	ID               string
	MinecraftVersion string
	Loader           *LoaderInfo
}

// HasLoader reports whether the version was installed with a mod loader.
func (i *Info) HasLoader() bool {
	return i != nil && i.Loader != nil
}

// String returns a short summary, e.g. "1.20.1, forge 47.2.0".
func (i *Info) String() string {
	if i == nil {
		return ""
	}
	if i.Loader == nil {
		return i.MinecraftVersion
	}
	return fmt.Sprintf("%s, %s %s", i.MinecraftVersion, i.Loader.Type, i.Loader.Version)
}

// Version is an installed version folder.
type Version struct {
	Name   string
	Info   *Info
	Valid  bool
	HasJar bool
	Config Config
}

// Config is the launcher metadata stored in <name>/.shard/config.json.
type Config struct {
	Isolation   bool   `json:"isolation"`
	JavaRuntime string `json:"javaRuntime,omitempty"`
	JVMArgs     string `json:"jvmArgs,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// JSONFile returns the version JSON filename for a version name.
func JSONFile(name string) string { return name + ".json" }

// JarFile returns the client jar filename for a version name.
func JarFile(name string) string { return name + ".jar" }

// manifestJSON is the subset of a version JSON the launcher reads.
type manifestJSON struct {
	ID           string `json:"id"`
	InheritsFrom string `json:"inheritsFrom"`
	Libraries    []struct {
		Name string `json:"name"`
	} `json:"libraries"`
}

// ParseInfo extracts Info from the contents of a version JSON. The
// Minecraft version is inheritsFrom when present, else id.
func ParseInfo(data []byte) (*Info, error) {
	var m manifestJSON
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding version json: %w", err)
	}
	if m.ID == "" {
		return nil, fmt.Errorf("decoding version json: missing id")
	}

	info := &Info{ID: m.ID, MinecraftVersion: m.ID}
	if m.InheritsFrom != "" {
		info.MinecraftVersion = m.InheritsFrom
	}

	names := make([]string, 0, len(m.Libraries))
	for _, lib := range m.Libraries {
		names = append(names, lib.Name)
	}
	info.Loader = DetectLoader(names)

	return info, nil
}

// DetectLoader finds the first library naming a known loader, checking
// forge, then fabric, then quilt. Library names are Maven coordinates
// (group:artifact:version); the loader version is the third coordinate.
func DetectLoader(libraries []string) *LoaderInfo {
	for _, loader := range loaderPriority {
		for _, lib := range libraries {
			if !strings.Contains(strings.ToLower(lib), string(loader)) {
				continue
			}
			parts := strings.Split(lib, ":")
			ver := UnknownLoaderVersion
			if len(parts) >= 3 && parts[2] != "" {
				ver = parts[2]
			}
			return &LoaderInfo{Type: loader, Version: ver}
		}
	}
	return nil
}

// IsFolderName reports whether name can address a folder directly under the
// versions directory: non-empty, not "." or "..", and free of path
// separators.
func IsFolderName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// IsHidden reports whether a folder is launcher-internal and not a version.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
