package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/universitio/hr-backend-go/internal/domain/auth"
	"github.com/universitio/hr-backend-go/internal/domain/employee"
	"github.com/universitio/hr-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// ListEmployees implements employee.EmployeeService. Every row is
// classified against the same instant so the counts and the per-row
// tiers cannot disagree within one response.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) (employee.ListEmployeesResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	now := time.Now()

	response := employee.ListEmployeesResponse{
		TotalCount: len(employees),
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		row := employee.MapEmployeeToResponse(emp, now)
		switch row.VisaTier {
		case employee.VisaTierCritical:
			response.CriticalVisaCount++
		case employee.VisaTierExpired:
			response.ExpiredVisaCount++
		}
		response.Employees = append(response.Employees, row)
	}

	return response, nil
}

// GetEmployee implements employee.EmployeeService. A record carries
// contact and visa data, so non-admin sessions may only read their own.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, auth.ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	own, _ := claims["employee_id"].(string)
	if role != string(user.RoleAdmin) && id != own {
		return employee.EmployeeResponse{}, employee.ErrEmployeeAccessDenied
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.MapEmployeeToResponse(emp, time.Now()), nil
}
