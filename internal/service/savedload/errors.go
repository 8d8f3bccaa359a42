package savedload

import (
	"fmt"

	"loadboard/internal/faults"
)

var (
	ErrInvalidLoadID = fmt.Errorf("%w: invalid load id", faults.ErrValidation)

	ErrRoleCannotSave = fmt.Errorf("%w: only truckers bookmark loads", faults.ErrAuthorization)

	ErrLoadNotFound = fmt.Errorf("%w: load", faults.ErrNotFound)
)
