package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
// Employees are created and edited out-of-band by HR; this service only
// reads them.
type EmployeeRepository interface {
	// GetByID retrieves an employee by id
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email address
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves all employees ordered by name ascending
	List(ctx context.Context) ([]Employee, error)
}
