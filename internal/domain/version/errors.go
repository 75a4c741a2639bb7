package version

import (
	"fmt"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
)

// InvalidTypeError reports an unknown remote version type in a filter.
type InvalidTypeError struct {
	Type RemoteType
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid version type %q (want release, snapshot, old_beta or old_alpha)", string(e.Type))
}

func (e *InvalidTypeError) Unwrap() error {
	return domain.ErrValidation
}
