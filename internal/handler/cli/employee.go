package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/crewdesk/crewdesk-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type EmployeeHandler struct {
	employees employee.EmployeeService
	out       io.Writer
}

func NewEmployeeHandler(employees employee.EmployeeService, out io.Writer) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, out: out}
}

// List renders the dashboard table with optional search and filters.
func (h *EmployeeHandler) List(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(h.out)
	search := fs.String("search", "", "match against name, email or department")
	department := fs.String("department", "", "only this department")
	status := fs.String("status", "", "only this status (Active or Inactive)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filterStatus, err := parseStatus(*status)
	if err != nil {
		return err
	}

	result, err := h.employees.ListEmployees(ctx, employee.EmployeeFilter{
		Query:      *search,
		Department: *department,
		Status:     filterStatus,
	})
	if err != nil {
		return err
	}

	if len(result.Employees) == 0 {
		fmt.Fprintln(h.out, "No employees found. Try adjusting your search or filter criteria.")
		return nil
	}

	renderTable(h.out, result.Employees)
	fmt.Fprintf(h.out, "Showing %d of %d employees\n", len(result.Employees), result.Total)
	return nil
}

// Get renders the detail view for one employee.
func (h *EmployeeHandler) Get(ctx context.Context, args []string) error {
	id, err := requireID(args)
	if err != nil {
		return err
	}

	emp, err := h.employees.GetEmployee(ctx, id)
	if err != nil {
		return err
	}

	renderDetail(h.out, emp)
	return nil
}

// Add is the "new employee" form: every field is a flag, validated by the
// service before anything is stored.
func (h *EmployeeHandler) Add(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(h.out)
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	email := fs.String("email", "", "email address")
	phone := fs.String("phone", "", "phone number")
	department := fs.String("department", "", "department")
	position := fs.String("position", "", "position")
	joinDate := fs.String("join-date", "", "join date (YYYY-MM-DD)")
	salary := fs.String("salary", "0", "yearly salary")
	status := fs.String("status", "", "Active or Inactive (default Active)")
	avatarPath := fs.String("avatar", "", "path to an avatar image")
	if err := fs.Parse(args); err != nil {
		return err
	}

	salaryDec, err := decimal.NewFromString(*salary)
	if err != nil {
		return fmt.Errorf("invalid salary %q: %w", *salary, err)
	}
	reqStatus, err := parseStatus(*status)
	if err != nil {
		return err
	}

	req := employee.CreateEmployeeRequest{
		FirstName:  *firstName,
		LastName:   *lastName,
		Email:      *email,
		Phone:      *phone,
		Department: *department,
		Position:   *position,
		JoinDate:   *joinDate,
		Salary:     salaryDec,
		Status:     reqStatus,
	}

	created, err := h.employees.CreateEmployee(ctx, req)
	if err != nil {
		return err
	}

	if *avatarPath != "" {
		image, err := os.ReadFile(*avatarPath)
		if err != nil {
			return fmt.Errorf("failed to read avatar file: %w", err)
		}
		if created, err = h.employees.AttachAvatar(ctx, created.ID, image); err != nil {
			return err
		}
	}

	fmt.Fprintf(h.out, "created employee %s (%s %s)\n", created.ID, created.FirstName, created.LastName)
	return nil
}

// Update is the edit form: only flags that were actually given end up in the
// partial update, so everything else keeps its prior value.
func (h *EmployeeHandler) Update(ctx context.Context, args []string) error {
	id, err := requireID(args)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(h.out)
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	email := fs.String("email", "", "email address")
	phone := fs.String("phone", "", "phone number")
	department := fs.String("department", "", "department")
	position := fs.String("position", "", "position")
	joinDate := fs.String("join-date", "", "join date (YYYY-MM-DD)")
	salary := fs.String("salary", "", "yearly salary")
	status := fs.String("status", "", "Active or Inactive")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var req employee.UpdateEmployeeRequest
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "first-name":
			req.FirstName = firstName
		case "last-name":
			req.LastName = lastName
		case "email":
			req.Email = email
		case "phone":
			req.Phone = phone
		case "department":
			req.Department = department
		case "position":
			req.Position = position
		case "join-date":
			req.JoinDate = joinDate
		case "salary":
			d, err := decimal.NewFromString(*salary)
			if err != nil {
				flagErr = fmt.Errorf("invalid salary %q: %w", *salary, err)
				return
			}
			req.Salary = &d
		case "status":
			s, err := parseStatus(*status)
			if err != nil {
				flagErr = err
				return
			}
			req.Status = &s
		}
	})
	if flagErr != nil {
		return flagErr
	}

	updated, err := h.employees.UpdateEmployee(ctx, id, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "updated employee %s\n", updated.ID)
	return nil
}

// Delete removes an employee. A missing id is reported as a warning rather
// than a failure, so scripted deletes stay idempotent.
func (h *EmployeeHandler) Delete(ctx context.Context, args []string) error {
	id, err := requireID(args)
	if err != nil {
		return err
	}

	if err := h.employees.DeleteEmployee(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			fmt.Fprintf(h.out, "employee %s not found; nothing deleted\n", id)
			return nil
		}
		return err
	}

	fmt.Fprintf(h.out, "deleted employee %s\n", id)
	return nil
}

// ToggleStatus flips an employee between Active and Inactive.
func (h *EmployeeHandler) ToggleStatus(ctx context.Context, args []string) error {
	id, err := requireID(args)
	if err != nil {
		return err
	}

	emp, err := h.employees.ToggleStatus(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "employee %s is now %s\n", emp.ID, emp.Status)
	return nil
}

// Avatar attaches or removes the inline avatar image.
func (h *EmployeeHandler) Avatar(ctx context.Context, args []string) error {
	id, err := requireID(args)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("avatar", flag.ContinueOnError)
	fs.SetOutput(h.out)
	file := fs.String("file", "", "path to an image file")
	remove := fs.Bool("remove", false, "remove the stored avatar")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	switch {
	case *remove:
		if _, err := h.employees.RemoveAvatar(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(h.out, "removed avatar for employee %s\n", id)
	case *file != "":
		image, err := os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("failed to read avatar file: %w", err)
		}
		if _, err := h.employees.AttachAvatar(ctx, id, image); err != nil {
			return err
		}
		fmt.Fprintf(h.out, "attached avatar for employee %s\n", id)
	default:
		return fmt.Errorf("avatar requires either --file or --remove")
	}

	return nil
}

// Departments lists the distinct department names.
func (h *EmployeeHandler) Departments(ctx context.Context) error {
	departments, err := h.employees.Departments(ctx)
	if err != nil {
		return err
	}

	for _, d := range departments {
		fmt.Fprintln(h.out, d)
	}
	return nil
}

func requireID(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("an employee id is required")
	}
	return args[0], nil
}

func parseStatus(s string) (employee.Status, error) {
	switch s {
	case "":
		return "", nil
	case string(employee.StatusActive):
		return employee.StatusActive, nil
	case string(employee.StatusInactive):
		return employee.StatusInactive, nil
	default:
		return "", fmt.Errorf("invalid status %q: must be Active or Inactive", s)
	}
}
