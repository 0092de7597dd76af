package leave

import "context"

// LeaveService defines business logic for leave request operations
type LeaveService interface {
	// CreateRequest files a new leave request for the authenticated employee
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// ListRequests retrieves all leave requests (admin)
	ListRequests(ctx context.Context) (ListLeaveRequestsResponse, error)

	// ListMyRequests retrieves the authenticated employee's leave requests
	ListMyRequests(ctx context.Context) (ListLeaveRequestsResponse, error)

	// Approve transitions a pending request to Approved
	Approve(ctx context.Context, requestID string) (LeaveRequestResponse, error)

	// Reject transitions a pending request to Rejected
	Reject(ctx context.Context, requestID string) (LeaveRequestResponse, error)
}
