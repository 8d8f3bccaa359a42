package message

import (
	"fmt"

	"loadboard/internal/faults"
)

var (
	ErrInvalidLoadID      = fmt.Errorf("%w: invalid load id", faults.ErrValidation)
	ErrInvalidRecipientID = fmt.Errorf("%w: invalid recipient id", faults.ErrValidation)
	ErrEmptyBody          = fmt.Errorf("%w: message body must not be empty", faults.ErrValidation)

	ErrNotParticipant = fmt.Errorf("%w: only load participants may exchange messages", faults.ErrAuthorization)

	ErrRecipientNotFound = fmt.Errorf("%w: recipient", faults.ErrNotFound)
)
