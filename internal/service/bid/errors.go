package bid

import (
	"fmt"

	"loadboard/internal/faults"
)

var (
	ErrInvalidLoadID = fmt.Errorf("%w: invalid load id", faults.ErrValidation)
	ErrInvalidBidID  = fmt.Errorf("%w: invalid bid id", faults.ErrValidation)
	ErrInvalidPrice  = fmt.Errorf("%w: price must be greater than zero", faults.ErrValidation)

	ErrRoleCannotBid = fmt.Errorf("%w: only truckers place bids", faults.ErrAuthorization)
	ErrNotBidOwner   = fmt.Errorf("%w: only the bidding trucker may withdraw the bid", faults.ErrAuthorization)

	ErrLoadNotOpen   = fmt.Errorf("%w: load is not open for bidding", faults.ErrInvalidState)
	ErrBidNotPending = fmt.Errorf("%w: bid is not pending", faults.ErrInvalidState)

	ErrBidNotFound = fmt.Errorf("%w: bid", faults.ErrNotFound)
)
