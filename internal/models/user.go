package models

import "time"

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleAdmin       UserRole = "ADMIN"
	RoleCoordinator UserRole = "COORDINATOR"
	RoleProfessor   UserRole = "PROFESSOR"
	RoleStudent     UserRole = "STUDENT"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoordinator, RoleProfessor, RoleStudent:
		return true
	}
	return false
}

// User represents an application user stored in the users table.
type User struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         UserRole  `db:"role"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// UserFilter captures filtering criteria for listing users. Zero values are ignored.
type UserFilter struct {
	Role       *UserRole
	Active     *bool
	NameSearch string
}
