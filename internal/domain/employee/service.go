package employee

import "context"

// EmployeeService defines business logic for the employee directory.
type EmployeeService interface {
	// ListEmployees retrieves all employees with visa classification applied
	ListEmployees(ctx context.Context) (ListEmployeesResponse, error)

	// GetEmployee retrieves a single employee by id
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
}
