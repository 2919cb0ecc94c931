package fixtures

import (
	"github.com/crewdesk/crewdesk-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// SeedEmployees returns the fixed sample dataset used to initialize storage
// when no valid versioned data exists. Callers get a fresh copy on every call.
func SeedEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID:         "1",
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john.doe@company.com",
			Phone:      "555-0101",
			Department: "Engineering",
			Position:   "Senior Developer",
			JoinDate:   "2021-01-15",
			Salary:     decimal.NewFromInt(95000),
			Status:     employee.StatusActive,
		},
		{
			ID:         "2",
			FirstName:  "Jane",
			LastName:   "Smith",
			Email:      "jane.smith@company.com",
			Phone:      "555-0102",
			Department: "HR",
			Position:   "HR Manager",
			JoinDate:   "2020-06-20",
			Salary:     decimal.NewFromInt(75000),
			Status:     employee.StatusActive,
		},
		{
			ID:         "3",
			FirstName:  "Bob",
			LastName:   "Johnson",
			Email:      "bob.johnson@company.com",
			Phone:      "555-0103",
			Department: "Sales",
			Position:   "Sales Executive",
			JoinDate:   "2022-03-10",
			Salary:     decimal.NewFromInt(65000),
			Status:     employee.StatusInactive,
		},
	}
}
