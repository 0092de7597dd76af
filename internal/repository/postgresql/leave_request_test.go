package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universitio/hr-backend-go/internal/domain/leave"
)

var leaveRequestTestColumns = []string{
	"id", "employee_id", "start_date", "end_date", "leave_type",
	"reason", "status", "decided_by", "decided_at", "created_at",
	"name", "position",
}

func TestLeaveRequestRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLeaveRequestRepository(mock)

	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	request := leave.LeaveRequest{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		StartDate:  start,
		EndDate:    end,
		LeaveType:  leave.LeaveTypeAnnual,
		Reason:     "Family visit",
		Status:     leave.LeaveRequestStatusPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO leave_requests`)).
		WithArgs(request.ID, request.EmployeeID, request.StartDate, request.EndDate,
			request.LeaveType, request.Reason, request.Status).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	created, err := repo.Create(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "lr-1", created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveRequestRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLeaveRequestRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM leave_requests lr`)).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveRequestRepository_ListByEmployee(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLeaveRequestRepository(mock)

	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)
	now := time.Now()
	name := "Aisha Rahman"
	position := "Lecturer"

	rows := pgxmock.NewRows(leaveRequestTestColumns).
		AddRow("lr-2", "emp-1", start, end, leave.LeaveTypeSick,
			"Flu", leave.LeaveRequestStatusPending, nil, nil, now, &name, &position).
		AddRow("lr-1", "emp-1", start, end, leave.LeaveTypeAnnual,
			"Family visit", leave.LeaveRequestStatusApproved, nil, nil, now.Add(-time.Hour), &name, &position)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE lr.employee_id = $1`)).
		WithArgs("emp-1").
		WillReturnRows(rows)

	requests, err := repo.ListByEmployee(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "lr-2", requests[0].ID)
	require.NotNil(t, requests[0].EmployeeName)
	assert.Equal(t, "Aisha Rahman", *requests[0].EmployeeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveRequestRepository_SetStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLeaveRequestRepository(mock)

	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)
	decidedAt := time.Date(2024, 3, 20, 14, 0, 0, 0, time.UTC)
	decidedBy := "hr@example.edu"
	name := "Aisha Rahman"
	position := "Lecturer"

	rows := pgxmock.NewRows(leaveRequestTestColumns).
		AddRow("lr-1", "emp-1", start, end, leave.LeaveTypeAnnual,
			"Family visit", leave.LeaveRequestStatusApproved, &decidedBy, &decidedAt,
			decidedAt.Add(-24*time.Hour), &name, &position)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE leave_requests`)).
		WithArgs("lr-1", leave.LeaveRequestStatusApproved, decidedBy, decidedAt, leave.LeaveRequestStatusPending).
		WillReturnRows(rows)

	updated, err := repo.SetStatus(context.Background(), "lr-1", leave.LeaveRequestStatusApproved, decidedBy, decidedAt)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, updated.Status)
	require.NotNil(t, updated.DecidedBy)
	assert.Equal(t, decidedBy, *updated.DecidedBy)
	assert.True(t, updated.Decided())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaveRequestRepository_SetStatus_OnlyUpdatesPending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLeaveRequestRepository(mock)

	// The UPDATE carries a pending-status predicate so a request that
	// was decided concurrently matches zero rows.
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND status = $5`)).
		WithArgs("lr-1", leave.LeaveRequestStatusRejected, "hr@example.edu", pgxmock.AnyArg(), leave.LeaveRequestStatusPending).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.SetStatus(context.Background(), "lr-1", leave.LeaveRequestStatusRejected, "hr@example.edu", time.Now())
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
