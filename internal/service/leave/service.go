package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/universitio/hr-backend-go/internal/domain/attendance"
	"github.com/universitio/hr-backend-go/internal/domain/auth"
	"github.com/universitio/hr-backend-go/internal/domain/employee"
	"github.com/universitio/hr-backend-go/internal/domain/leave"
	"github.com/universitio/hr-backend-go/internal/domain/user"
	"github.com/universitio/hr-backend-go/internal/pkg/database"
	"github.com/universitio/hr-backend-go/internal/pkg/sse"
	"github.com/universitio/hr-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
	hub   *sse.Hub
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewLeaveService(db *database.DB, leaveRequestRepository leave.LeaveRequestRepository, employeeRepository employee.EmployeeRepository, attendanceRepository attendance.AttendanceRepository, hub *sse.Hub) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		AttendanceRepository:   attendanceRepository,
		hub:                    hub,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func sessionClaims(ctx context.Context) (map[string]interface{}, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	return claims, nil
}

// CreateRequest implements leave.LeaveService. The submitting session
// must belong to the employee the request is for; admins may file on
// anyone's behalf.
func (l *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	claims, err := sessionClaims(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := l.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	role, _ := claims["role"].(string)
	if role != string(user.RoleAdmin) {
		sessionEmail, _ := claims["email"].(string)
		if emp.Email == nil || !strings.EqualFold(*emp.Email, sessionEmail) {
			return leave.LeaveRequestResponse{}, leave.ErrIdentityMismatch
		}
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	request := leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		LeaveType:  leave.LeaveType(req.LeaveType),
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
	}

	created, err := l.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	l.hub.Publish(sse.TopicLeaveRequests, sse.Event{
		Event: "created",
		Data:  map[string]string{"id": created.ID},
	})

	return leave.MapLeaveRequestToResponse(created), nil
}

// ListRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListRequests(ctx context.Context) (leave.ListLeaveRequestsResponse, error) {
	requests, err := l.LeaveRequestRepository.List(ctx)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return mapList(requests), nil
}

// ListMyRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyRequests(ctx context.Context) (leave.ListLeaveRequestsResponse, error) {
	claims, err := sessionClaims(ctx)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		// Account without an employee record has nothing to list.
		return leave.ListLeaveRequestsResponse{Requests: []leave.LeaveRequestResponse{}}, nil
	}

	requests, err := l.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return mapList(requests), nil
}

// Approve implements leave.LeaveService.
func (l *LeaveServiceImpl) Approve(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	return l.decide(ctx, requestID, leave.LeaveRequestStatusApproved)
}

// Reject implements leave.LeaveService.
func (l *LeaveServiceImpl) Reject(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	return l.decide(ctx, requestID, leave.LeaveRequestStatusRejected)
}

func (l *LeaveServiceImpl) decide(ctx context.Context, requestID string, status leave.LeaveRequestStatus) (leave.LeaveRequestResponse, error) {
	claims, err := sessionClaims(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	decidedBy, _ := claims["email"].(string)

	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.Decided() {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	var updated leave.LeaveRequest
	err = l.runTx(ctx, func(txCtx context.Context) error {
		updated, err = l.LeaveRequestRepository.SetStatus(txCtx, requestID, status, decidedBy, time.Now())
		if err != nil {
			return fmt.Errorf("failed to update leave request status: %w", err)
		}

		if status == leave.LeaveRequestStatusApproved {
			if err := l.markLeaveDays(txCtx, updated); err != nil {
				return fmt.Errorf("failed to mark leave days: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	l.hub.Publish(sse.TopicLeaveRequests, sse.Event{
		Event: "decided",
		Data:  map[string]string{"id": updated.ID, "status": string(updated.Status)},
	})

	return leave.MapLeaveRequestToResponse(updated), nil
}

// markLeaveDays writes one attendance marker row per day of an approved
// request, so the status reducer sees the leave. Only annual and sick
// leave have marker statuses; other types never affect the clock state.
func (l *LeaveServiceImpl) markLeaveDays(ctx context.Context, request leave.LeaveRequest) error {
	var marker string
	switch request.LeaveType {
	case leave.LeaveTypeAnnual:
		marker = attendance.StatusAnnualLeave
	case leave.LeaveTypeSick:
		marker = attendance.StatusSickLeave
	default:
		return nil
	}

	for day := request.StartDate; !day.After(request.EndDate); day = day.AddDate(0, 0, 1) {
		record := attendance.Attendance{
			ID:         uuid.NewString(),
			EmployeeID: request.EmployeeID,
			Date:       day,
			Status:     marker,
		}
		if _, err := l.AttendanceRepository.Create(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func mapList(requests []leave.LeaveRequest) leave.ListLeaveRequestsResponse {
	response := leave.ListLeaveRequestsResponse{
		TotalCount: len(requests),
		Requests:   make([]leave.LeaveRequestResponse, 0, len(requests)),
	}
	for _, req := range requests {
		response.Requests = append(response.Requests, leave.MapLeaveRequestToResponse(req))
	}
	return response
}
