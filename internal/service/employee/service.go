package employee

import (
	"context"
	"fmt"

	"github.com/crewdesk/crewdesk-go/internal/domain/employee"
	"github.com/crewdesk/crewdesk-go/internal/pkg/datauri"
	"github.com/rs/zerolog"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	log          zerolog.Logger
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, log zerolog.Logger) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		log:          log,
	}
}

// ListEmployees implements employee.EmployeeService. The free-text search
// runs first, then department and status narrow the result; Total always
// reflects the whole collection so the view can render "Showing X of Y".
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResult, error) {
	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeesResult{}, fmt.Errorf("failed to list employees: %w", err)
	}

	rows := all
	if filter.Query != "" {
		rows, err = s.employeeRepo.Search(ctx, filter.Query)
		if err != nil {
			return employee.ListEmployeesResult{}, fmt.Errorf("failed to search employees: %w", err)
		}
	}

	filtered := make([]employee.Employee, 0, len(rows))
	for _, emp := range rows {
		if filter.Department != "" && emp.Department != filter.Department {
			continue
		}
		if filter.Status != "" && emp.Status != filter.Status {
			continue
		}
		filtered = append(filtered, emp)
	}

	return employee.ListEmployeesResult{
		Employees: filtered,
		Total:     len(all),
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// SearchEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SearchEmployees(ctx context.Context, query string) ([]employee.Employee, error) {
	return s.employeeRepo.Search(ctx, query)
}

// CreateEmployee implements employee.EmployeeService. Invalid requests never
// reach storage.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	status := req.Status
	if status == "" {
		status = employee.StatusActive
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
		JoinDate:   req.JoinDate,
		Salary:     req.Salary,
		Status:     status,
		Avatar:     req.Avatar,
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	s.log.Info().Str("id", created.ID).Str("department", created.Department).Msg("employee created")
	return created, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, id, req)
	if err != nil {
		return employee.Employee{}, err
	}

	s.log.Info().Str("id", id).Msg("employee updated")
	return updated, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("id", id).Msg("employee deleted")
	return nil
}

// ToggleStatus implements employee.EmployeeService. Flipping is expressed as
// a partial status update, not a separate storage primitive.
func (s *EmployeeServiceImpl) ToggleStatus(ctx context.Context, id string) (employee.Employee, error) {
	current, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	next := current.Status.Toggled()
	return s.employeeRepo.Update(ctx, id, employee.UpdateEmployeeRequest{Status: &next})
}

// AttachAvatar implements employee.EmployeeService. The image is stored
// inline on the record as a data URI; record size grows accordingly, which is
// accepted for a local-only system.
func (s *EmployeeServiceImpl) AttachAvatar(ctx context.Context, id string, image []byte) (employee.Employee, error) {
	uri := datauri.Encode(image)
	return s.employeeRepo.Update(ctx, id, employee.UpdateEmployeeRequest{Avatar: &uri})
}

// RemoveAvatar implements employee.EmployeeService.
func (s *EmployeeServiceImpl) RemoveAvatar(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.Update(ctx, id, employee.UpdateEmployeeRequest{ClearAvatar: true})
}

// Departments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Departments(ctx context.Context) ([]string, error) {
	return s.employeeRepo.Departments(ctx)
}
