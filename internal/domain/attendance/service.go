package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn opens a new session for today; fails if one is already open
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes today's open session; fails if none exists
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// GetStatus derives the employee's current clock state from their
	// attendance records
	GetStatus(ctx context.Context, employeeID string) (StatusResponse, error)

	// GetHistory retrieves the employee's attendance history grouped by day
	GetHistory(ctx context.Context, employeeID string) (HistoryResponse, error)
}
