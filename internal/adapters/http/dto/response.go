// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/filename"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/launch"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/version"
)

// ViolationResponse describes why a filename was rejected. Only the payload
// fields of the violation's kind are set.
type ViolationResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`

	// Chars is set for illegal_characters.
	Chars string `json:"chars,omitempty"`

	// Length, Min and Max are set for invalid_length.
	Length *int `json:"length,omitempty"`
	Min    *int `json:"min,omitempty"`
	Max    *int `json:"max,omitempty"`
}

// ToViolationResponse converts a filename violation to its HTTP form.
func ToViolationResponse(v filename.Violation) ViolationResponse {
	resp := ViolationResponse{
		Kind:    v.Kind().String(),
		Message: v.Message(),
	}
	switch v := v.(type) {
	case filename.IllegalCharacters:
		resp.Chars = v.Chars
	case filename.InvalidLength:
		resp.Length = &v.Length
		resp.Min = &v.Min
		resp.Max = &v.Max
	case filename.LeadingOrTrailingSpace:
	}
	return resp
}

// ValidateFilenameResponse is the verdict for a candidate name.
type ValidateFilenameResponse struct {
	Name      string             `json:"name"`
	Platform  string             `json:"platform"`
	Valid     bool               `json:"valid"`
	Violation *ViolationResponse `json:"violation,omitempty"`
}

// ToValidateFilenameResponse builds the verdict from the rules used and the
// violation found, if any.
func ToValidateFilenameResponse(name string, rules filename.Rules, v filename.Violation) ValidateFilenameResponse {
	resp := ValidateFilenameResponse{
		Name:     name,
		Platform: rules.Platform,
		Valid:    v == nil,
	}
	if v != nil {
		vr := ToViolationResponse(v)
		resp.Violation = &vr
	}
	return resp
}

// LoaderResponse describes a version's mod loader.
type LoaderResponse struct {
	Type    string `json:"type"`
	Version string `json:"version"`
}

// VersionConfigResponse is the launcher metadata of a version.
type VersionConfigResponse struct {
	Isolation   bool   `json:"isolation"`
	JavaRuntime string `json:"java_runtime,omitempty"`
	JVMArgs     string `json:"jvm_args,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// VersionResponse represents an installed version in HTTP responses.
type VersionResponse struct {
	Name             string                `json:"name"`
	Valid            bool                  `json:"valid"`
	HasJar           bool                  `json:"has_jar"`
	MinecraftVersion string                `json:"minecraft_version,omitempty"`
	Loader           *LoaderResponse       `json:"loader,omitempty"`
	Description      string                `json:"description,omitempty"`
	Config           VersionConfigResponse `json:"config"`
}

// VersionListResponse represents a list of versions in HTTP responses.
type VersionListResponse struct {
	Versions []VersionResponse `json:"versions"`
	Count    int               `json:"count"`
}

// ToVersionResponse converts a domain Version to an HTTP response DTO.
func ToVersionResponse(v *version.Version) VersionResponse {
	resp := VersionResponse{
		Name:   v.Name,
		Valid:  v.Valid,
		HasJar: v.HasJar,
		Config: VersionConfigResponse{
			Isolation:   v.Config.Isolation,
			JavaRuntime: v.Config.JavaRuntime,
			JVMArgs:     v.Config.JVMArgs,
			Summary:     v.Config.Summary,
		},
	}
	if v.Info != nil {
		resp.MinecraftVersion = v.Info.MinecraftVersion
		resp.Description = v.Info.String()
		if v.Info.Loader != nil {
			resp.Loader = &LoaderResponse{
				Type:    string(v.Info.Loader.Type),
				Version: v.Info.Loader.Version,
			}
		}
	}
	return resp
}

// ToVersionListResponse converts a slice of versions to a list response.
func ToVersionListResponse(versions []version.Version) VersionListResponse {
	items := make([]VersionResponse, len(versions))
	for i := range versions {
		items[i] = ToVersionResponse(&versions[i])
	}
	return VersionListResponse{
		Versions: items,
		Count:    len(items),
	}
}

// RemoteVersionResponse is a version published in the remote manifest.
type RemoteVersionResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	ReleaseTime string `json:"release_time,omitempty"`
}

// ManifestResponse represents the remote version manifest.
type ManifestResponse struct {
	LatestRelease  string                  `json:"latest_release"`
	LatestSnapshot string                  `json:"latest_snapshot"`
	Versions       []RemoteVersionResponse `json:"versions"`
	Count          int                     `json:"count"`
}

// ToManifestResponse converts a domain Manifest to an HTTP response DTO.
func ToManifestResponse(m *version.Manifest) ManifestResponse {
	items := make([]RemoteVersionResponse, len(m.Versions))
	for i, v := range m.Versions {
		items[i] = RemoteVersionResponse{
			ID:   v.ID,
			Type: string(v.Type),
			URL:  v.URL,
		}
		if !v.ReleaseTime.IsZero() {
			items[i].ReleaseTime = v.ReleaseTime.Format(time.RFC3339)
		}
	}
	return ManifestResponse{
		LatestRelease:  m.LatestRelease,
		LatestSnapshot: m.LatestSnapshot,
		Versions:       items,
		Count:          len(items),
	}
}

// LaunchResponse represents a JVM launch record.
type LaunchResponse struct {
	ID         string   `json:"id"`
	Version    string   `json:"version,omitempty"`
	Runtime    string   `json:"runtime"`
	Args       []string `json:"args"`
	State      string   `json:"state"`
	ExitCode   *int     `json:"exit_code,omitempty"`
	Error      string   `json:"error,omitempty"`
	StartedAt  string   `json:"started_at"`
	FinishedAt string   `json:"finished_at,omitempty"`
}

// LaunchListResponse represents a list of launches.
type LaunchListResponse struct {
	Launches []LaunchResponse `json:"launches"`
	Count    int              `json:"count"`
}

// ToLaunchResponse converts a domain Launch to an HTTP response DTO.
func ToLaunchResponse(l *launch.Launch) LaunchResponse {
	resp := LaunchResponse{
		ID:        l.ID,
		Version:   l.Version,
		Runtime:   l.Runtime,
		Args:      l.Args,
		State:     string(l.State),
		ExitCode:  l.ExitCode,
		Error:     l.Error,
		StartedAt: l.StartedAt.Format(time.RFC3339),
	}
	if resp.Args == nil {
		resp.Args = []string{}
	}
	if l.FinishedAt != nil {
		resp.FinishedAt = l.FinishedAt.Format(time.RFC3339)
	}
	return resp
}

// ToLaunchListResponse converts a slice of launches to a list response.
func ToLaunchListResponse(launches []launch.Launch) LaunchListResponse {
	items := make([]LaunchResponse, len(launches))
	for i := range launches {
		items[i] = ToLaunchResponse(&launches[i])
	}
	return LaunchListResponse{
		Launches: items,
		Count:    len(items),
	}
}

// ProbeResponse reports a successful native probe.
type ProbeResponse struct {
	Status string `json:"status"`
}
