package employee

import (
	"github.com/shopspring/decimal"
)

// Employee is the sole persisted entity. JoinDate is kept as an ISO date
// string and Avatar, when present, is an inline data URI.
type Employee struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Department string          `json:"department"`
	Position   string          `json:"position"`
	JoinDate   string          `json:"joinDate"`
	Salary     decimal.Decimal `json:"salary"`
	Status     Status          `json:"status"`
	Avatar     *string         `json:"avatar,omitempty"`
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}
