package user

import (
	"fmt"

	"loadboard/internal/faults"
)

var (
	ErrInvalidUserID = fmt.Errorf("%w: invalid user id", faults.ErrValidation)

	ErrAdminOnly = fmt.Errorf("%w: user directory is admin-only", faults.ErrAuthorization)

	ErrUserNotFound = fmt.Errorf("%w: user", faults.ErrNotFound)
)
