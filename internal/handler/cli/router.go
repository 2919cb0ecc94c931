package cli

import (
	"context"
	"fmt"
	"io"
)

const usage = `crewdesk - local employee directory

Usage: crewdesk <command> [flags]

Session:
  login --as <identity>   start a session (any identity is accepted)
  logout                  end the session
  whoami                  print the current identity

Employees (require login):
  list [--search q] [--department d] [--status s]   dashboard table
  get <id>                                          detail view
  add --first-name ... --last-name ... [flags]      create an employee
  update <id> [flags]                               partial update
  delete <id>                                       remove an employee
  toggle-status <id>                                flip Active/Inactive
  avatar <id> --file <path> | --remove              manage the avatar image
  departments                                       list distinct departments
`

// Router dispatches a command line to the handlers, keeping every employee
// command behind the session guard.
type Router struct {
	auth      *AuthHandler
	employees *EmployeeHandler
	guard     *Guard
	out       io.Writer
}

func NewRouter(auth *AuthHandler, employees *EmployeeHandler, guard *Guard, out io.Writer) *Router {
	return &Router{
		auth:      auth,
		employees: employees,
		guard:     guard,
		out:       out,
	}
}

func (r *Router) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(r.out, usage)
		return nil
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		fmt.Fprint(r.out, usage)
		return nil
	case "login":
		return r.auth.Login(ctx, rest)
	case "logout":
		return r.auth.Logout(ctx)
	case "whoami":
		return r.auth.WhoAmI(ctx)
	}

	// Everything below is a protected view
	if _, err := r.guard.Require(ctx); err != nil {
		return err
	}

	switch cmd {
	case "list":
		return r.employees.List(ctx, rest)
	case "get":
		return r.employees.Get(ctx, rest)
	case "add":
		return r.employees.Add(ctx, rest)
	case "update":
		return r.employees.Update(ctx, rest)
	case "delete":
		return r.employees.Delete(ctx, rest)
	case "toggle-status":
		return r.employees.ToggleStatus(ctx, rest)
	case "avatar":
		return r.employees.Avatar(ctx, rest)
	case "departments":
		return r.employees.Departments(ctx)
	default:
		return fmt.Errorf("unknown command %q; run \"crewdesk help\"", cmd)
	}
}
