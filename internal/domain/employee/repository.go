package employee

import "context"

// EmployeeRepository is the single source of truth for the employee
// collection. After any mutating call returns, the durable representation
// and the in-memory collection agree.
type EmployeeRepository interface {
	// List returns the collection in insertion order.
	List(ctx context.Context) ([]Employee, error)

	// GetByID is a point lookup, ErrEmployeeNotFound when absent.
	GetByID(ctx context.Context, id string) (Employee, error)

	// Search returns every record whose first name, last name, email or
	// department contains the query, case-insensitively. An empty query
	// matches everything.
	Search(ctx context.Context, query string) ([]Employee, error)

	// Create assigns a fresh unique id, appends the record and persists the
	// collection, returning the stored record.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// Update merges the non-nil request fields onto the identified record and
	// persists the collection. The id is never reassigned.
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)

	// Delete removes the identified record and persists the collection.
	Delete(ctx context.Context, id string) error

	// Departments returns the distinct department names, in first-seen order.
	Departments(ctx context.Context) ([]string, error)
}
