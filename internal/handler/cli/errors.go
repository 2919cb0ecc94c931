package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/crewdesk/crewdesk-go/internal/domain/employee"
	"github.com/crewdesk/crewdesk-go/internal/domain/session"
	"github.com/crewdesk/crewdesk-go/internal/pkg/validator"
)

// FormatError maps domain errors to the message shown to the user.
func FormatError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		var b strings.Builder
		b.WriteString("validation failed:")
		for _, ve := range validationErrs {
			fmt.Fprintf(&b, "\n  %s: %s", ve.Field, ve.Message)
		}
		return b.String()
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return "employee not found"
	case errors.Is(err, session.ErrEmptyIdentity):
		return "an identity is required: crewdesk login --as <identity>"
	case errors.Is(err, ErrLoginRequired):
		return err.Error()
	default:
		return err.Error()
	}
}
