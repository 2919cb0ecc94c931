package employee

import (
	"errors"

	"github.com/crewdesk/crewdesk-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest carries every employee field except the id, which the
// store assigns. The validation tags mirror the constraints the edit form
// enforces before submitting.
type CreateEmployeeRequest struct {
	FirstName  string          `json:"firstName" validate:"required,min=2"`
	LastName   string          `json:"lastName" validate:"required,min=2"`
	Email      string          `json:"email" validate:"required,email"`
	Phone      string          `json:"phone" validate:"required,phone"`
	Department string          `json:"department" validate:"required"`
	Position   string          `json:"position" validate:"required,min=2"`
	JoinDate   string          `json:"joinDate" validate:"required,datetime=2006-01-02"`
	Salary     decimal.Decimal `json:"salary"`
	Status     Status          `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Avatar     *string         `json:"avatar,omitempty"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		if !errors.As(err, &errs) {
			return err
		}
	}

	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest is a partial update: nil fields keep their prior
// values. There is deliberately no ID field, so an update can never reassign
// identity.
type UpdateEmployeeRequest struct {
	FirstName  *string          `json:"firstName,omitempty" validate:"omitnil,min=2"`
	LastName   *string          `json:"lastName,omitempty" validate:"omitnil,min=2"`
	Email      *string          `json:"email,omitempty" validate:"omitnil,email"`
	Phone      *string          `json:"phone,omitempty" validate:"omitnil,phone"`
	Department *string          `json:"department,omitempty" validate:"omitnil,min=1"`
	Position   *string          `json:"position,omitempty" validate:"omitnil,min=2"`
	JoinDate   *string          `json:"joinDate,omitempty" validate:"omitnil,datetime=2006-01-02"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
	Status     *Status          `json:"status,omitempty" validate:"omitnil,oneof=Active Inactive"`

	// Avatar set replaces the stored data URI; ClearAvatar removes it.
	Avatar      *string `json:"avatar,omitempty"`
	ClearAvatar bool    `json:"-"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		if !errors.As(err, &errs) {
			return err
		}
	}

	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeFilter narrows the dashboard list. Query is the free-text search;
// Department and Status are exact matches. Zero values mean "no filter".
type EmployeeFilter struct {
	Query      string
	Department string
	Status     Status
}

// ListEmployeesResult is the dashboard view: the filtered rows plus the size
// of the whole collection ("Showing X of Y employees").
type ListEmployeesResult struct {
	Employees []Employee
	Total     int
}
