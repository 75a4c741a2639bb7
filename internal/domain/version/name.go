package version

import (
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/filename"
)

// Messages for version-name conflicts.
const (
	MsgAlreadyExists = "a version with this name already exists"
	MsgVanillaName   = "must not equal the vanilla Minecraft version when a mod loader is installed"
)

// ValidateName checks a proposed name for a version described by info.
// Filename rules are checked first and reported as *filename.Error.
// exists reports whether a valid version already uses the name; a clash
// is a domain.ErrConflict. Reusing the vanilla Minecraft id for a modded
// version is a validation error.
func ValidateName(name string, info *Info, rules filename.Rules, exists bool) error {
	if err := filename.Validate(name, rules); err != nil {
		return err
	}
	if exists {
		return &ConflictError{Name: name}
	}
	if info.HasLoader() && name == info.MinecraftVersion {
		return domain.FieldError("name", MsgVanillaName)
	}
	return nil
}

// ConflictError reports a name already used by another version.
type ConflictError struct {
	Name string
}

func (e *ConflictError) Error() string {
	return "version " + e.Name + ": " + MsgAlreadyExists
}

func (e *ConflictError) Unwrap() error {
	return domain.ErrConflict
}
