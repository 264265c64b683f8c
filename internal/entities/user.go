package entities

import "time"

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         RoleType
	CreatedAt    time.Time
}

type RoleType string

const (
	RoleCustomer     RoleType = "CUSTOMER"
	RoleDriver       RoleType = "DRIVER"
	RoleSupportAgent RoleType = "SUPPORT_AGENT"
	RoleAdmin        RoleType = "ADMIN"
)

func (r RoleType) String() string {
	return string(r)
}

func (r RoleType) Valid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleSupportAgent, RoleAdmin:
		return true
	default:
		return false
	}
}

// Actor — аутентифицированный пользователь, выполняющий операцию.
// Передаётся явным параметром в каждый вызов сервисов вместо глобального
// security-контекста.
type Actor struct {
	UserID int64
	Role   RoleType
}

func (a Actor) IsCustomer() bool {
	return a.Role == RoleCustomer
}

func (a Actor) IsDriver() bool {
	return a.Role == RoleDriver
}

// IsStaff — support agent или admin: видят все заказы и управляют назначениями.
func (a Actor) IsStaff() bool {
	return a.Role == RoleSupportAgent || a.Role == RoleAdmin
}
