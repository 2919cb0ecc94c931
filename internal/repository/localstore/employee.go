package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/crewdesk/crewdesk-go/internal/domain/employee"
	"github.com/crewdesk/crewdesk-go/internal/fixtures"
	"github.com/crewdesk/crewdesk-go/internal/pkg/kvstore"
	"github.com/google/uuid"
)

const (
	employeesKey        = "employees"
	employeesVersionKey = "employees_version"

	// StorageVersion tags the durable employee blob. Bumping it forces a
	// reseed on the next open, which is how schema changes are rolled out.
	StorageVersion = "v1.0.0"
)

type employeeRepositoryImpl struct {
	kv kvstore.Store

	mu        sync.Mutex
	employees []employee.Employee
}

// NewEmployeeRepository opens the durable employee collection, running the
// load-or-seed protocol: a missing or stale version marker, a missing blob or
// an unparsable blob all discard whatever is stored and reseed from the
// sample dataset. A valid versioned blob is used as-is, with no per-record
// re-validation.
func NewEmployeeRepository(kv kvstore.Store) (employee.EmployeeRepository, error) {
	r := &employeeRepositoryImpl{kv: kv}
	if err := r.loadOrSeed(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *employeeRepositoryImpl) loadOrSeed() error {
	version, verErr := r.kv.Get(employeesVersionKey)
	blob, blobErr := r.kv.Get(employeesKey)

	if verErr == nil && blobErr == nil && string(version) == StorageVersion {
		var stored []employee.Employee
		if err := json.Unmarshal(blob, &stored); err == nil {
			r.employees = stored
			return nil
		}
		// Unparsable blob falls through to reseed
	}

	if verErr != nil && !errors.Is(verErr, kvstore.ErrKeyNotFound) {
		return fmt.Errorf("failed to read version marker: %w", verErr)
	}
	if blobErr != nil && !errors.Is(blobErr, kvstore.ErrKeyNotFound) {
		return fmt.Errorf("failed to read employee blob: %w", blobErr)
	}

	seed := fixtures.SeedEmployees()
	if err := r.persist(seed); err != nil {
		return fmt.Errorf("failed to seed employee storage: %w", err)
	}
	// Marker written after the blob, so a torn reseed reads as invalid and
	// reseeds again on the next open.
	if err := r.kv.Set(employeesVersionKey, []byte(StorageVersion)); err != nil {
		return fmt.Errorf("failed to write version marker: %w", err)
	}

	r.employees = seed
	return nil
}

// persist rewrites the full durable collection. It does not touch the
// in-memory slice; callers swap that in only after persist succeeds, so a
// failed write leaves both the prior blob and the prior in-memory state
// intact.
func (r *employeeRepositoryImpl) persist(employees []employee.Employee) error {
	blob, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("failed to encode employees: %w", err)
	}
	return r.kv.Set(employeesKey, blob)
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]employee.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, emp := range r.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// Search implements employee.EmployeeRepository. The empty query is a
// substring of everything, so it returns the full collection.
func (r *employeeRepositoryImpl) Search(ctx context.Context, query string) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q := strings.ToLower(query)
	matches := make([]employee.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		if strings.Contains(strings.ToLower(emp.FirstName), q) ||
			strings.Contains(strings.ToLower(emp.LastName), q) ||
			strings.Contains(strings.ToLower(emp.Email), q) ||
			strings.Contains(strings.ToLower(emp.Department), q) {
			matches = append(matches, emp)
		}
	}
	return matches, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newEmployee.ID = uuid.Must(uuid.NewV7()).String()

	next := make([]employee.Employee, len(r.employees), len(r.employees)+1)
	copy(next, r.employees)
	next = append(next, newEmployee)

	if err := r.persist(next); err != nil {
		return employee.Employee{}, err
	}

	r.employees = next
	return newEmployee, nil
}

// Update implements employee.EmployeeRepository. Nil request fields keep
// their prior values; identity is immutable.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, emp := range r.employees {
		if emp.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	updated := merge(r.employees[idx], req)

	next := make([]employee.Employee, len(r.employees))
	copy(next, r.employees)
	next[idx] = updated

	if err := r.persist(next); err != nil {
		return employee.Employee{}, err
	}

	r.employees = next
	return updated, nil
}

func merge(emp employee.Employee, req employee.UpdateEmployeeRequest) employee.Employee {
	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.JoinDate != nil {
		emp.JoinDate = *req.JoinDate
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}
	if req.ClearAvatar {
		emp.Avatar = nil
	} else if req.Avatar != nil {
		emp.Avatar = req.Avatar
	}
	return emp
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, emp := range r.employees {
		if emp.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return employee.ErrEmployeeNotFound
	}

	next := make([]employee.Employee, 0, len(r.employees)-1)
	next = append(next, r.employees[:idx]...)
	next = append(next, r.employees[idx+1:]...)

	if err := r.persist(next); err != nil {
		return err
	}

	r.employees = next
	return nil
}

// Departments implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Departments(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool)
	var departments []string
	for _, emp := range r.employees {
		if !seen[emp.Department] {
			seen[emp.Department] = true
			departments = append(departments, emp.Department)
		}
	}
	return departments, nil
}
