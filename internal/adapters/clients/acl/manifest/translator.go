package manifest

import (
	"time"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/version"
)

// ToDomainRemote converts a downstream VersionDTO to a domain Remote.
// Unparseable release times are left zero.
func ToDomainRemote(dto *VersionDTO) version.Remote {
	releaseTime, _ := time.Parse(time.RFC3339, dto.ReleaseTime)

	return version.Remote{
		ID:          dto.ID,
		Type:        version.RemoteType(dto.Type),
		URL:         dto.URL,
		ReleaseTime: releaseTime,
	}
}

// ToDomainManifest converts the downstream manifest document. Entries with
// an unknown type are dropped so that filters only ever see known types.
func ToDomainManifest(dto *VersionManifestDTO) *version.Manifest {
	versions := make([]version.Remote, 0, len(dto.Versions))
	for i := range dto.Versions {
		r := ToDomainRemote(&dto.Versions[i])
		if !r.Type.IsValid() {
			continue
		}
		versions = append(versions, r)
	}

	return &version.Manifest{
		LatestRelease:  dto.Latest.Release,
		LatestSnapshot: dto.Latest.Snapshot,
		Versions:       versions,
	}
}
