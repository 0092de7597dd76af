package dashboard

import "context"

// DashboardRepository provides the aggregate counts the employee and
// leave repositories do not expose directly.
type DashboardRepository interface {
	// CountPendingLeaveRequests returns how many leave requests await a decision
	CountPendingLeaveRequests(ctx context.Context) (int, error)
}
