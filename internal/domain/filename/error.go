package filename

import (
	"fmt"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
)

// Error is returned by Validate when a name is rejected. It carries exactly
// one Violation and unwraps to domain.ErrValidation, so the HTTP layer maps
// it to 400 without knowing about filenames.
type Error struct {
	Name      string
	Violation Violation
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid filename %q: %s", e.Name, e.Violation.Message())
}

func (e *Error) Unwrap() error {
	return domain.ErrValidation
}

// Kind is a shorthand for e.Violation.Kind().
func (e *Error) Kind() Kind {
	return e.Violation.Kind()
}
