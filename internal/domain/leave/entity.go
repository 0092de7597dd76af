package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "Approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "Rejected"
)

type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "annual"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
	LeaveTypeOther  LeaveType = "other"
)

// LeaveRequest entity. Pending requests transition to Approved or
// Rejected exactly once; decided requests are immutable.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	LeaveType  LeaveType
	Reason     string
	Status     LeaveRequestStatus
	DecidedBy  *string
	DecidedAt  *time.Time
	CreatedAt  time.Time

	// Relationships (for responses)
	EmployeeName     *string
	EmployeePosition *string
}

// Decided reports whether the request has reached a terminal status.
func (r LeaveRequest) Decided() bool {
	return r.Status == LeaveRequestStatusApproved || r.Status == LeaveRequestStatusRejected
}
