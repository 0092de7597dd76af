package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	// Create creates a new leave request
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by id
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List retrieves all leave requests with employee details, newest first
	List(ctx context.Context) ([]LeaveRequest, error)

	// ListByEmployee retrieves an employee's leave requests, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// SetStatus transitions a pending request to a terminal status and
	// records who decided it and when; a request already decided yields
	// ErrLeaveAlreadyProcessed
	SetStatus(ctx context.Context, id string, status LeaveRequestStatus, decidedBy string, decidedAt time.Time) (LeaveRequest, error)
}
