package entity

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleTechLead Role = "TECH_LEAD"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTechLead
}

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID int64
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
