package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/crewdesk/crewdesk-go/internal/pkg/kvstore"
	"github.com/crewdesk/crewdesk-go/internal/repository/localstore"
	employeeService "github.com/crewdesk/crewdesk-go/internal/service/employee"
	sessionService "github.com/crewdesk/crewdesk-go/internal/service/session"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*Router, *bytes.Buffer) {
	t.Helper()

	kv, err := kvstore.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	employeeRepo, err := localstore.NewEmployeeRepository(kv)
	require.NoError(t, err)
	sessionRepo := localstore.NewSessionRepository(kv)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, zerolog.Nop())
	sessionSvc := sessionService.NewSessionService(sessionRepo, zerolog.Nop())

	out := &bytes.Buffer{}
	router := NewRouter(
		NewAuthHandler(sessionSvc, out),
		NewEmployeeHandler(employeeSvc, out),
		NewGuard(sessionSvc),
		out,
	)
	return router, out
}

func login(t *testing.T, router *Router) {
	t.Helper()
	require.NoError(t, router.Run(context.Background(), []string{"login", "--as", "admin@company.com"}))
}

func TestRouter_ProtectedCommandsRequireLogin(t *testing.T) {
	router, _ := newTestRouter(t)
	ctx := context.Background()

	for _, cmd := range [][]string{
		{"list"},
		{"get", "1"},
		{"add"},
		{"update", "1"},
		{"delete", "1"},
		{"toggle-status", "1"},
		{"departments"},
	} {
		err := router.Run(ctx, cmd)
		assert.ErrorIs(t, err, ErrLoginRequired, "command %v", cmd)
	}
}

func TestRouter_LoginLogoutFlow(t *testing.T) {
	router, out := newTestRouter(t)
	ctx := context.Background()

	login(t, router)
	assert.Contains(t, out.String(), "logged in as admin@company.com")

	out.Reset()
	require.NoError(t, router.Run(ctx, []string{"whoami"}))
	assert.Equal(t, "admin@company.com\n", out.String())

	// Logging in again redirects back with the current identity
	out.Reset()
	require.NoError(t, router.Run(ctx, []string{"login", "--as", "other@company.com"}))
	assert.Contains(t, out.String(), "already logged in as admin@company.com")

	out.Reset()
	require.NoError(t, router.Run(ctx, []string{"logout"}))
	require.NoError(t, router.Run(ctx, []string{"whoami"}))
	assert.Contains(t, out.String(), "not logged in")
}

func TestRouter_ListRendersDashboard(t *testing.T) {
	router, out := newTestRouter(t)
	login(t, router)
	out.Reset()

	require.NoError(t, router.Run(context.Background(), []string{"list"}))

	got := out.String()
	assert.Contains(t, got, "John Doe")
	assert.Contains(t, got, "Engineering")
	assert.Contains(t, got, "Showing 3 of 3 employees")
}

func TestRouter_ListWithFilters(t *testing.T) {
	router, out := newTestRouter(t)
	login(t, router)
	out.Reset()

	require.NoError(t, router.Run(context.Background(), []string{"list", "--status", "Active"}))

	got := out.String()
	assert.NotContains(t, got, "Bob Johnson")
	assert.Contains(t, got, "Showing 2 of 3 employees")
}

func TestRouter_ListNoMatches(t *testing.T) {
	router, out := newTestRouter(t)
	login(t, router)
	out.Reset()

	require.NoError(t, router.Run(context.Background(), []string{"list", "--search", "zzz"}))
	assert.Contains(t, out.String(), "No employees found")
}

func TestRouter_AddUpdateDeleteLifecycle(t *testing.T) {
	router, out := newTestRouter(t)
	ctx := context.Background()
	login(t, router)

	out.Reset()
	require.NoError(t, router.Run(ctx, []string{
		"add",
		"--first-name", "Ann",
		"--last-name", "Lee",
		"--email", "a@b.com",
		"--phone", "555",
		"--department", "HR",
		"--position", "Clerk",
		"--join-date", "2023-01-01",
		"--salary", "50000",
	}))
	require.Contains(t, out.String(), "created employee")

	// Pull the generated id out of the confirmation line
	fields := strings.Fields(out.String())
	id := fields[2]
	require.NotEmpty(t, id)

	out.Reset()
	require.NoError(t, router.Run(ctx, []string{"update", id, "--salary", "60000"}))
	require.NoError(t, router.Run(ctx, []string{"get", id}))
	assert.Contains(t, out.String(), "60000")
	assert.Contains(t, out.String(), "Ann Lee")

	out.Reset()
	require.NoError(t, router.Run(ctx, []string{"delete", id}))
	assert.Contains(t, out.String(), "deleted employee")

	err := router.Run(ctx, []string{"get", id})
	require.Error(t, err)
	assert.Equal(t, "employee not found", FormatError(err))
}

func TestRouter_AddRejectsInvalidForm(t *testing.T) {
	router, out := newTestRouter(t)
	login(t, router)
	out.Reset()

	err := router.Run(context.Background(), []string{"add", "--first-name", "A"})
	require.Error(t, err)

	msg := FormatError(err)
	assert.Contains(t, msg, "validation failed:")
	assert.Contains(t, msg, "firstName")
	assert.Contains(t, msg, "email")
}

func TestRouter_DeleteMissingIDIsWarning(t *testing.T) {
	router, out := newTestRouter(t)
	login(t, router)
	out.Reset()

	require.NoError(t, router.Run(context.Background(), []string{"delete", "nope"}))
	assert.Contains(t, out.String(), "nothing deleted")
}

func TestRouter_ToggleStatus(t *testing.T) {
	router, out := newTestRouter(t)
	login(t, router)
	out.Reset()

	require.NoError(t, router.Run(context.Background(), []string{"toggle-status", "3"}))
	assert.Contains(t, out.String(), "employee 3 is now Active")
}

func TestRouter_Departments(t *testing.T) {
	router, out := newTestRouter(t)
	login(t, router)
	out.Reset()

	require.NoError(t, router.Run(context.Background(), []string{"departments"}))
	assert.Equal(t, "Engineering\nHR\nSales\n", out.String())
}

func TestRouter_UnknownCommand(t *testing.T) {
	router, _ := newTestRouter(t)

	err := router.Run(context.Background(), []string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRouter_NoArgsPrintsUsage(t *testing.T) {
	router, out := newTestRouter(t)

	require.NoError(t, router.Run(context.Background(), nil))
	assert.Contains(t, out.String(), "Usage: crewdesk")
}
