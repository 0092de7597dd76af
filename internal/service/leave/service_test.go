package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	attendanceDomain "github.com/universitio/hr-backend-go/internal/domain/attendance"
	"github.com/universitio/hr-backend-go/internal/domain/employee"
	domain "github.com/universitio/hr-backend-go/internal/domain/leave"
	"github.com/universitio/hr-backend-go/internal/pkg/sse"
	"github.com/universitio/hr-backend-go/internal/pkg/validator"
)

type fakeLeaveRepo struct {
	requests map[string]domain.LeaveRequest

	// decidedElsewhere makes SetStatus behave as if another decision
	// landed between the pending check and the update.
	decidedElsewhere bool
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]domain.LeaveRequest)}
}

func (r *fakeLeaveRepo) Create(_ context.Context, request domain.LeaveRequest) (domain.LeaveRequest, error) {
	request.CreatedAt = time.Now()
	r.requests[request.ID] = request
	return request, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (domain.LeaveRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return domain.LeaveRequest{}, domain.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (r *fakeLeaveRepo) List(_ context.Context) ([]domain.LeaveRequest, error) {
	var out []domain.LeaveRequest
	for _, request := range r.requests {
		out = append(out, request)
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	var out []domain.LeaveRequest
	for _, request := range r.requests {
		if request.EmployeeID == employeeID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) SetStatus(_ context.Context, id string, status domain.LeaveRequestStatus, decidedBy string, decidedAt time.Time) (domain.LeaveRequest, error) {
	request, ok := r.requests[id]
	if !ok || r.decidedElsewhere || request.Status != domain.LeaveRequestStatusPending {
		return domain.LeaveRequest{}, domain.ErrLeaveAlreadyProcessed
	}
	request.Status = status
	request.DecidedBy = &decidedBy
	request.DecidedAt = &decidedAt
	r.requests[id] = request
	return request, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.Email != nil && *emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func claimsContext(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(t *testing.T) (domain.LeaveService, *fakeLeaveRepo, *fakeAttendanceRepo) {
	t.Helper()
	leaveRepo := newFakeLeaveRepo()
	attendanceRepo := newFakeAttendanceRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Aisha Rahman", Email: strPtr("aisha@example.edu")},
		"emp-2": {ID: "emp-2", Name: "Tomas Novak", Email: strPtr("tomas@example.edu")},
	}}
	svc := NewLeaveService(nil, leaveRepo, employeeRepo, attendanceRepo, sse.NewHub()).(*LeaveServiceImpl)
	svc.runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	return svc, leaveRepo, attendanceRepo
}

// Minimal attendance store the approval path writes leave markers into.
type fakeAttendanceRepo struct {
	records []attendanceDomain.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo { return &fakeAttendanceRepo{} }

func (r *fakeAttendanceRepo) Create(_ context.Context, att attendanceDomain.Attendance) (attendanceDomain.Attendance, error) {
	r.records = append(r.records, att)
	return att, nil
}

func (r *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendanceDomain.Attendance, error) {
	return attendanceDomain.Attendance{}, attendanceDomain.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string) ([]attendanceDomain.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) ListByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) ([]attendanceDomain.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) SetClockOut(_ context.Context, id string, clockOut time.Time) (attendanceDomain.Attendance, error) {
	return attendanceDomain.Attendance{}, attendanceDomain.ErrAttendanceNotFound
}

func validCreateRequest() domain.CreateLeaveRequestRequest {
	return domain.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-05",
		LeaveType:  "annual",
		Reason:     "Family visit",
	}
}

func TestCreateRequest_Success(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := claimsContext(t, map[string]interface{}{
		"user_id": "user-1",
		"email":   "aisha@example.edu",
		"role":    "employee",
	})

	resp, err := svc.CreateRequest(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, string(domain.LeaveRequestStatusPending), resp.Status)
	assert.Equal(t, "2024-03-01", resp.StartDate)
	assert.Equal(t, "2024-03-05", resp.EndDate)
}

func TestCreateRequest_IdentityMismatch(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := claimsContext(t, map[string]interface{}{
		"user_id": "user-2",
		"email":   "tomas@example.edu",
		"role":    "employee",
	})

	_, err := svc.CreateRequest(ctx, validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrIdentityMismatch)
}

func TestCreateRequest_AdminCanFileForAnyone(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := claimsContext(t, map[string]interface{}{
		"user_id": "admin-1",
		"email":   "hr@example.edu",
		"role":    "admin",
	})

	_, err := svc.CreateRequest(ctx, validCreateRequest())
	assert.NoError(t, err)
}

func TestCreateRequest_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := claimsContext(t, map[string]interface{}{
		"user_id": "user-1",
		"email":   "aisha@example.edu",
		"role":    "employee",
	})

	req := validCreateRequest()
	req.EndDate = "2024-02-01"

	_, err := svc.CreateRequest(ctx, req)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "end_date")
}

func TestListMyRequests_FiltersByEmployee(t *testing.T) {
	svc, leaveRepo, _ := newTestService(t)

	leaveRepo.requests["lr-1"] = domain.LeaveRequest{ID: "lr-1", EmployeeID: "emp-1", Status: domain.LeaveRequestStatusPending}
	leaveRepo.requests["lr-2"] = domain.LeaveRequest{ID: "lr-2", EmployeeID: "emp-2", Status: domain.LeaveRequestStatusPending}

	ctx := claimsContext(t, map[string]interface{}{
		"user_id":     "user-1",
		"email":       "aisha@example.edu",
		"employee_id": "emp-1",
		"role":        "employee",
	})

	list, err := svc.ListMyRequests(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, list.TotalCount)
	require.Len(t, list.Requests, 1)
	assert.Equal(t, "lr-1", list.Requests[0].ID)
}

func adminContext(t *testing.T) context.Context {
	t.Helper()
	return claimsContext(t, map[string]interface{}{
		"user_id": "admin-1",
		"email":   "hr@example.edu",
		"role":    "admin",
	})
}

func TestApprove_MarksLeaveDays(t *testing.T) {
	svc, leaveRepo, attendanceRepo := newTestService(t)

	leaveRepo.requests["lr-1"] = domain.LeaveRequest{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		StartDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		LeaveType:  domain.LeaveTypeAnnual,
		Status:     domain.LeaveRequestStatusPending,
	}

	resp, err := svc.Approve(adminContext(t), "lr-1")
	require.NoError(t, err)

	assert.Equal(t, string(domain.LeaveRequestStatusApproved), resp.Status)
	require.NotNil(t, resp.DecidedBy)
	assert.Equal(t, "hr@example.edu", *resp.DecidedBy)

	// One marker row per day of the range
	require.Len(t, attendanceRepo.records, 3)
	for _, record := range attendanceRepo.records {
		assert.Equal(t, "emp-1", record.EmployeeID)
		assert.Equal(t, attendanceDomain.StatusAnnualLeave, record.Status)
	}
}

func TestApprove_SickLeaveMarker(t *testing.T) {
	svc, leaveRepo, attendanceRepo := newTestService(t)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	leaveRepo.requests["lr-1"] = domain.LeaveRequest{
		ID: "lr-1", EmployeeID: "emp-1",
		StartDate: day, EndDate: day,
		LeaveType: domain.LeaveTypeSick,
		Status:    domain.LeaveRequestStatusPending,
	}

	_, err := svc.Approve(adminContext(t), "lr-1")
	require.NoError(t, err)

	require.Len(t, attendanceRepo.records, 1)
	assert.Equal(t, attendanceDomain.StatusSickLeave, attendanceRepo.records[0].Status)
}

func TestApprove_UnpaidLeaveWritesNoMarkers(t *testing.T) {
	svc, leaveRepo, attendanceRepo := newTestService(t)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	leaveRepo.requests["lr-1"] = domain.LeaveRequest{
		ID: "lr-1", EmployeeID: "emp-1",
		StartDate: day, EndDate: day,
		LeaveType: domain.LeaveTypeUnpaid,
		Status:    domain.LeaveRequestStatusPending,
	}

	_, err := svc.Approve(adminContext(t), "lr-1")
	require.NoError(t, err)
	assert.Empty(t, attendanceRepo.records)
}

func TestReject(t *testing.T) {
	svc, leaveRepo, attendanceRepo := newTestService(t)

	leaveRepo.requests["lr-1"] = domain.LeaveRequest{
		ID: "lr-1", EmployeeID: "emp-1",
		LeaveType: domain.LeaveTypeAnnual,
		Status:    domain.LeaveRequestStatusPending,
	}

	resp, err := svc.Reject(adminContext(t), "lr-1")
	require.NoError(t, err)

	assert.Equal(t, string(domain.LeaveRequestStatusRejected), resp.Status)
	assert.Empty(t, attendanceRepo.records)
}

func TestDecide_AlreadyProcessed(t *testing.T) {
	svc, leaveRepo, _ := newTestService(t)

	leaveRepo.requests["lr-1"] = domain.LeaveRequest{
		ID: "lr-1", EmployeeID: "emp-1",
		LeaveType: domain.LeaveTypeAnnual,
		Status:    domain.LeaveRequestStatusApproved,
	}

	_, err := svc.Reject(adminContext(t), "lr-1")
	assert.ErrorIs(t, err, domain.ErrLeaveAlreadyProcessed)

	_, err = svc.Approve(adminContext(t), "lr-1")
	assert.ErrorIs(t, err, domain.ErrLeaveAlreadyProcessed)
}

func TestDecide_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Approve(adminContext(t), "missing")
	assert.ErrorIs(t, err, domain.ErrLeaveRequestNotFound)
}

func TestListMyRequests_NoEmployeeRecord(t *testing.T) {
	svc, _, _ := newTestService(t)

	ctx := claimsContext(t, map[string]interface{}{
		"user_id": "user-9",
		"email":   "nobody@example.edu",
		"role":    "employee",
	})

	list, err := svc.ListMyRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, list.TotalCount)
	assert.Empty(t, list.Requests)
}

func TestDecide_ConcurrentDecision(t *testing.T) {
	svc, leaveRepo, attendanceRepo := newTestService(t)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	leaveRepo.requests["lr-1"] = domain.LeaveRequest{
		ID: "lr-1", EmployeeID: "emp-1",
		StartDate: day, EndDate: day,
		LeaveType: domain.LeaveTypeAnnual,
		Status:    domain.LeaveRequestStatusPending,
	}
	leaveRepo.decidedElsewhere = true

	_, err := svc.Approve(adminContext(t), "lr-1")
	assert.ErrorIs(t, err, domain.ErrLeaveAlreadyProcessed)
	assert.Empty(t, attendanceRepo.records)
}
