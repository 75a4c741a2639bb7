// Package manifest implements the Anti-Corruption Layer translators for the
// remote version manifest.
package manifest

// VersionManifestDTO matches the downstream version_manifest.json document.
type VersionManifestDTO struct {
	Latest   LatestDTO    `json:"latest"`
	Versions []VersionDTO `json:"versions"`
}

// LatestDTO holds the ids of the newest release and snapshot.
type LatestDTO struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

// VersionDTO is one entry of the manifest's version list. Time fields are
// RFC 3339 strings.
type VersionDTO struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Time        string `json:"time"`
	ReleaseTime string `json:"releaseTime"`
}
