package user

import "time"

type User struct {
	ID           string
	EmployeeID   *string
	Email        string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role is not stored on the user row. It is derived at login: the
// configured admin address gets RoleAdmin, everyone else RoleEmployee.
type Role string

const (
	// RoleAdmin is granted to the configured HR admin address only.
	RoleAdmin Role = "admin"
	// RoleEmployee is every other authenticated account.
	RoleEmployee Role = "employee"
)
