package dto

import (
	"strings"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/filename"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/launch"
)

const msgRequired = "is required"

// ValidateFilenameRequest represents the JSON body for classifying a name.
// An empty name is not a request error; it is reported as a length violation.
type ValidateFilenameRequest struct {
	Name     string `json:"name"`
	Platform string `json:"platform,omitempty"`
}

// Validate checks that the platform, if given, is known.
func (r *ValidateFilenameRequest) Validate() error {
	if r.Platform == "" {
		return nil
	}
	if _, err := filename.RulesFor(r.Platform); err != nil {
		return domain.FieldError("platform", err.Error())
	}
	return nil
}

// RenameVersionRequest represents the JSON body for renaming a version.
// The new name is checked by the filename rules in the service.
type RenameVersionRequest struct {
	NewName string `json:"new_name"`
}

// Validate is a no-op; filename rules report empty names.
func (r *RenameVersionRequest) Validate() error { return nil }

// CopyVersionRequest represents the JSON body for copying a version.
type CopyVersionRequest struct {
	NewName string `json:"new_name"`

	// All copies the whole folder (saves, mods) instead of only the
	// version JSON and jar.
	All bool `json:"all,omitempty"`
}

// Validate is a no-op; filename rules report empty names.
func (r *CopyVersionRequest) Validate() error { return nil }

// SelectVersionRequest represents the JSON body for selecting the current
// version.
type SelectVersionRequest struct {
	Name string `json:"name"`
}

// Validate checks that a name is given.
func (r *SelectVersionRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.FieldError("name", msgRequired)
	}
	return nil
}

// StartLaunchRequest represents the JSON body for starting the JVM.
type StartLaunchRequest struct {
	Version      string `json:"version,omitempty"`
	JVMArgs      string `json:"jvm_args,omitempty"`
	Runtime      string `json:"runtime,omitempty"`
	WindowWidth  int    `json:"window_width,omitempty"`
	WindowHeight int    `json:"window_height,omitempty"`
}

// ToDomain converts the request to a launch.Request.
func (r *StartLaunchRequest) ToDomain() launch.Request {
	return launch.Request{
		Version:      r.Version,
		JVMArgs:      r.JVMArgs,
		Runtime:      r.Runtime,
		WindowWidth:  r.WindowWidth,
		WindowHeight: r.WindowHeight,
	}
}

// Validate checks window dimensions.
// Returns a *domain.ValidationError if any checks fail.
func (r *StartLaunchRequest) Validate() error {
	req := r.ToDomain()
	return req.Validate()
}

// ProbeRequest represents the JSON body for the native diagnostic hook.
type ProbeRequest struct {
	A int32 `json:"a"`
	B int32 `json:"b"`
}

// Validate is a no-op; any pair of integers is accepted.
func (r *ProbeRequest) Validate() error { return nil }
