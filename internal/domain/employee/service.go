package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists employees with optional search and filters
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeesResult, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (Employee, error)

	// SearchEmployees searches across first name, last name, email and department
	SearchEmployees(ctx context.Context, query string) ([]Employee, error)

	// CreateEmployee validates the request and creates a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// UpdateEmployee validates the request and applies a partial update
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)

	// DeleteEmployee removes an employee
	DeleteEmployee(ctx context.Context, id string) error

	// ToggleStatus flips an employee between Active and Inactive
	ToggleStatus(ctx context.Context, id string) (Employee, error)

	// AttachAvatar stores an image as an inline data URI on the record
	AttachAvatar(ctx context.Context, id string, image []byte) (Employee, error)

	// RemoveAvatar clears the stored avatar
	RemoveAvatar(ctx context.Context, id string) (Employee, error)

	// Departments returns the distinct department names for filtering
	Departments(ctx context.Context) ([]string, error)
}
