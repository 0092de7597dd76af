package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/universitio/hr-backend-go/internal/domain/dashboard"
	"github.com/universitio/hr-backend-go/internal/domain/employee"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	employee.EmployeeRepository
}

func NewDashboardService(dashboardRepository dashboard.DashboardRepository, employeeRepository employee.EmployeeRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepository,
		EmployeeRepository:  employeeRepository,
	}
}

// GetSummary implements dashboard.DashboardService. The visa tiers are
// computed here rather than stored, so the summary is always evaluated
// against the moment of the request.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (dashboard.DashboardResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	pending, err := s.DashboardRepository.CountPendingLeaveRequests(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	now := time.Now()

	response := dashboard.DashboardResponse{
		TotalEmployees:       len(employees),
		PendingLeaveRequests: pending,
		CriticalEmployees:    []employee.EmployeeResponse{},
	}

	for _, emp := range employees {
		if emp.Status == employee.EmploymentStatusActive {
			response.ActiveEmployees++
		}

		switch employee.ClassifyVisa(emp.VisaExpiry, now) {
		case employee.VisaTierExpired:
			response.VisaExpired++
		case employee.VisaTierCritical:
			response.VisaCritical++
			response.CriticalEmployees = append(response.CriticalEmployees, employee.MapEmployeeToResponse(emp, now))
		case employee.VisaTierWarning:
			response.VisaWarning++
		case employee.VisaTierValid:
			response.VisaValid++
		}
	}

	return response, nil
}
