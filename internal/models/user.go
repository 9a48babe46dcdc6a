package models

import "time"

// UserRole represents the roles a platform account can hold.
type UserRole string

const (
	RoleStudent      UserRole = "student"
	RoleCollegeAdmin UserRole = "college_admin"
	RoleRecruiter    UserRole = "recruiter"
	RoleObserver     UserRole = "observer"
)

// Valid reports whether the role belongs to the closed role set.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleCollegeAdmin, RoleRecruiter, RoleObserver:
		return true
	}
	return false
}

// User represents an identity record stored in the users table.
type User struct {
	ID           int64     `db:"user_id" json:"user_id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	Active       bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
