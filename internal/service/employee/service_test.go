package employee

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domain "github.com/universitio/hr-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees map[string]domain.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (domain.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return domain.Employee{}, domain.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (domain.Employee, error) {
	for _, emp := range r.employees {
		if emp.Email != nil && *emp.Email == email {
			return emp, nil
		}
	}
	return domain.Employee{}, domain.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	return out, nil
}

func claimsContext(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func employeeContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	return claimsContext(t, map[string]interface{}{
		"user_id":     "user-" + employeeID,
		"employee_id": employeeID,
		"role":        "employee",
	})
}

func adminContext(t *testing.T) context.Context {
	t.Helper()
	return claimsContext(t, map[string]interface{}{
		"user_id": "admin-1",
		"email":   "hr@example.edu",
		"role":    "admin",
	})
}

func newTestService(t *testing.T) (domain.EmployeeService, *fakeEmployeeRepo) {
	t.Helper()
	now := time.Now()
	repo := &fakeEmployeeRepo{employees: map[string]domain.Employee{
		"emp-1": {
			ID: "emp-1", Name: "Aisha Rahman", Position: "Lecturer",
			Status: domain.EmploymentStatusActive, VisaExpiry: now.AddDate(1, 0, 0),
		},
		"emp-2": {
			ID: "emp-2", Name: "Tomas Novak", Position: "Part-time Tutor",
			Status: domain.EmploymentStatusActive, VisaExpiry: now.AddDate(0, 0, 20),
		},
		"emp-3": {
			ID: "emp-3", Name: "Lena Fischer", Position: "Researcher",
			Status: domain.EmploymentStatusInactive, VisaExpiry: now.AddDate(0, 0, -5),
		},
	}}
	return NewEmployeeService(repo), repo
}

func TestGetEmployee_OwnRecord(t *testing.T) {
	svc, _ := newTestService(t)

	emp, err := svc.GetEmployee(employeeContext(t, "emp-1"), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "Aisha Rahman", emp.Name)
}

func TestGetEmployee_OtherRecordDenied(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetEmployee(employeeContext(t, "emp-1"), "emp-2")
	assert.ErrorIs(t, err, domain.ErrEmployeeAccessDenied)
}

func TestGetEmployee_AdminCanReadAny(t *testing.T) {
	svc, _ := newTestService(t)

	emp, err := svc.GetEmployee(adminContext(t), "emp-2")
	require.NoError(t, err)
	assert.Equal(t, "Tomas Novak", emp.Name)
}

func TestGetEmployee_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetEmployee(adminContext(t), "missing")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestListEmployees_VisaCounts(t *testing.T) {
	svc, _ := newTestService(t)

	list, err := svc.ListEmployees(adminContext(t))
	require.NoError(t, err)

	assert.Equal(t, 3, list.TotalCount)
	assert.Equal(t, 1, list.CriticalVisaCount)
	assert.Equal(t, 1, list.ExpiredVisaCount)
}
