package domain

import "time"

// UserRole distinguishes admins from ordinary clients.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleClient UserRole = "client"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

// User is the domain model for registered accounts.
type User struct {
	ID           int64
	UserName     string
	Email        string
	Contact      string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
