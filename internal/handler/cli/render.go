package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/crewdesk/crewdesk-go/internal/domain/employee"
	"github.com/crewdesk/crewdesk-go/internal/pkg/datauri"
)

func renderTable(out io.Writer, employees []employee.Employee) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tDEPARTMENT\tPOSITION\tJOINED\tSALARY\tSTATUS")
	for _, emp := range employees {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			emp.ID,
			emp.FirstName, emp.LastName,
			emp.Email,
			emp.Department,
			emp.Position,
			emp.JoinDate,
			emp.Salary.String(),
			emp.Status,
		)
	}
	w.Flush()
}

func renderDetail(out io.Writer, emp employee.Employee) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\n", emp.ID)
	fmt.Fprintf(w, "Name\t%s %s\n", emp.FirstName, emp.LastName)
	fmt.Fprintf(w, "Email\t%s\n", emp.Email)
	fmt.Fprintf(w, "Phone\t%s\n", emp.Phone)
	fmt.Fprintf(w, "Department\t%s\n", emp.Department)
	fmt.Fprintf(w, "Position\t%s\n", emp.Position)
	fmt.Fprintf(w, "Join date\t%s\n", emp.JoinDate)
	fmt.Fprintf(w, "Salary\t%s\n", emp.Salary.String())
	fmt.Fprintf(w, "Status\t%s\n", emp.Status)
	fmt.Fprintf(w, "Avatar\t%s\n", describeAvatar(emp.Avatar))
	w.Flush()
}

func describeAvatar(avatar *string) string {
	if avatar == nil {
		return "none"
	}
	mediaType, data, err := datauri.Decode(*avatar)
	if err != nil {
		return "stored (unreadable)"
	}
	return fmt.Sprintf("%s, %d bytes", mediaType, len(data))
}
