package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/universitio/hr-backend-go/internal/domain/leave"
	"github.com/universitio/hr-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db database.Querier
}

func NewLeaveRequestRepository(db database.Querier) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `lr.id, lr.employee_id, lr.start_date, lr.end_date, lr.leave_type,
	   lr.reason, lr.status, lr.decided_by, lr.decided_at, lr.created_at,
	   e.name, e.position`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.LeaveType,
		&req.Reason, &req.Status, &req.DecidedBy, &req.DecidedAt, &req.CreatedAt,
		&req.EmployeeName, &req.EmployeePosition,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, start_date, end_date, leave_type, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		request.StartDate,
		request.EndDate,
		request.LeaveType,
		request.Reason,
		request.Status,
	).Scan(&request.CreatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`, leaveRequestColumns)

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by id: %w", err)
	}
	return req, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		ORDER BY lr.created_at DESC
	`, leaveRequestColumns)

	return r.list(ctx, query)
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.employee_id = $1
		ORDER BY lr.created_at DESC
	`, leaveRequestColumns)

	return r.list(ctx, query, employeeID)
}

func (r *leaveRequestRepository) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := database.QuerierFromContext(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave request rows: %w", err)
	}

	return requests, nil
}

// SetStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) SetStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, decidedBy string, decidedAt time.Time) (leave.LeaveRequest, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE leave_requests
			SET status = $2, decided_by = $3, decided_at = $4
			WHERE id = $1 AND status = $5
			RETURNING id, employee_id, start_date, end_date, leave_type,
				  reason, status, decided_by, decided_at, created_at
		)
		SELECT u.id, u.employee_id, u.start_date, u.end_date, u.leave_type,
		       u.reason, u.status, u.decided_by, u.decided_at, u.created_at,
		       e.name, e.position
		FROM updated u
		JOIN employees e ON e.id = u.employee_id
	`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id, status, decidedBy, decidedAt, leave.LeaveRequestStatusPending))
	if err != nil {
		// Zero rows means the request is no longer pending; a
		// concurrent decision got there first. Existence is checked
		// by the caller before deciding.
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to set leave request status: %w", err)
	}
	return req, nil
}
