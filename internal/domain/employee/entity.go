package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID          string
	Name        string
	Position    string
	Department  string
	Nationality string
	Status      EmploymentStatus
	JoinDate    time.Time
	VisaExpiry  time.Time
	Phone       *string
	Email       *string
	PhotoURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "Active"
	EmploymentStatusInactive EmploymentStatus = "Inactive"
)

// IsPartTime reports whether the employee's position marks them as
// part-time staff, which changes the attendance status tag on clock-in.
func (e Employee) IsPartTime() bool {
	return strings.Contains(strings.ToLower(e.Position), "part-time")
}
