package assignment

import (
	"fmt"

	"loadboard/internal/faults"
)

var (
	ErrInvalidLoadID   = fmt.Errorf("%w: invalid load id", faults.ErrValidation)
	ErrInvalidBidID    = fmt.Errorf("%w: invalid bid id", faults.ErrValidation)
	ErrBidLoadMismatch = fmt.Errorf("%w: bid does not belong to load", faults.ErrValidation)

	ErrNotOwner           = fmt.Errorf("%w: only the load owner may perform this action", faults.ErrAuthorization)
	ErrNotAssignedTrucker = fmt.Errorf("%w: only the assigned trucker may perform this action", faults.ErrAuthorization)
	ErrNotParticipant     = fmt.Errorf("%w: only the load owner or the assigned trucker may perform this action", faults.ErrAuthorization)

	ErrLoadNotOpen      = fmt.Errorf("%w: load is not open", faults.ErrInvalidState)
	ErrLoadNotAssigned  = fmt.Errorf("%w: load is not assigned", faults.ErrInvalidState)
	ErrLoadNotInTransit = fmt.Errorf("%w: load is not in transit", faults.ErrInvalidState)
	ErrLoadInTransit    = fmt.Errorf("%w: load is already in transit", faults.ErrInvalidState)
	ErrLoadTerminal     = fmt.Errorf("%w: load is in a terminal status", faults.ErrInvalidState)
	ErrBidNotPending    = fmt.Errorf("%w: bid is not pending", faults.ErrInvalidState)
)
