package entities

import "time"

type User struct {
	ID        int64
	Role      RoleType
	Name      string
	Email     string
	Company   string
	Phone     string
	MCNumber  string
	CreatedAt time.Time
}

type RoleType string

const (
	RoleShipper RoleType = "shipper"
	RoleTrucker RoleType = "trucker"
	RoleAdmin   RoleType = "admin"
)

func (r RoleType) String() string {
	return string(r)
}

// Principal - аутентифицированная личность запроса: приходит из внешнего
// Identity-контекста (JWT), ядро доверяет ей и не перепроверяет.
type Principal struct {
	UserID int64
	Role   RoleType
}

func (p Principal) IsShipper() bool {
	return p.Role == RoleShipper
}

func (p Principal) IsTrucker() bool {
	return p.Role == RoleTrucker
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
