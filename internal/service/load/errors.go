package load

import (
	"fmt"

	"loadboard/internal/faults"
)

var (
	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", faults.ErrValidation)
	ErrInvalidLoadID         = fmt.Errorf("%w: invalid load id", faults.ErrValidation)
	ErrInvalidOrigin         = fmt.Errorf("%w: origin must not be empty", faults.ErrValidation)
	ErrInvalidDestination    = fmt.Errorf("%w: destination must not be empty", faults.ErrValidation)
	ErrInvalidRate           = fmt.Errorf("%w: rate must be greater than zero", faults.ErrValidation)
	ErrInvalidWeight         = fmt.Errorf("%w: weight must not be negative", faults.ErrValidation)

	ErrRoleCannotPost = fmt.Errorf("%w: only shippers post loads", faults.ErrAuthorization)
	ErrNotOwner       = fmt.Errorf("%w: only the owning shipper may edit load terms", faults.ErrAuthorization)

	ErrLoadNotOpen = fmt.Errorf("%w: load is not open", faults.ErrInvalidState)

	ErrLoadNotFound = fmt.Errorf("%w: load", faults.ErrNotFound)
)
