package version

import (
	"slices"
	"time"
)

// RemoteType is the release channel of a remote version.
type RemoteType string

const (
	TypeRelease  RemoteType = "release"
	TypeSnapshot RemoteType = "snapshot"
	TypeOldBeta  RemoteType = "old_beta"
	TypeOldAlpha RemoteType = "old_alpha"
)

// IsValid returns true if the type is one of the defined constants.
func (t RemoteType) IsValid() bool {
	switch t {
	case TypeRelease, TypeSnapshot, TypeOldBeta, TypeOldAlpha:
		return true
	default:
		return false
	}
}

// Remote is a version published in the remote manifest.
type Remote struct {
	ID          string
	Type        RemoteType
	URL         string
	ReleaseTime time.Time
}

// Manifest is the remote version list with the latest release and
// snapshot ids.
type Manifest struct {
	LatestRelease  string
	LatestSnapshot string
	Versions       []Remote
}

// RemoteFilter selects remote versions. Zero value matches everything.
type RemoteFilter struct {
	Types []RemoteType
}

// Validate checks that every requested type is known.
func (f RemoteFilter) Validate() error {
	for _, t := range f.Types {
		if !t.IsValid() {
			return &InvalidTypeError{Type: t}
		}
	}
	return nil
}

// Apply returns the manifest versions matching the filter, in manifest order.
func (f RemoteFilter) Apply(versions []Remote) []Remote {
	if len(f.Types) == 0 {
		return versions
	}
	out := make([]Remote, 0, len(versions))
	for _, v := range versions {
		if slices.Contains(f.Types, v.Type) {
			out = append(out, v)
		}
	}
	return out
}
