package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves an attendance record by id
	GetByID(ctx context.Context, id string) (Attendance, error)

	// ListByEmployee retrieves all records for an employee, newest date
	// first, then newest clock-in first
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// ListByEmployeeAndDate retrieves an employee's records for one
	// calendar day
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]Attendance, error)

	// SetClockOut sets the clock-out time on the given record and
	// returns the updated row
	SetClockOut(ctx context.Context, id string, clockOut time.Time) (Attendance, error)
}
