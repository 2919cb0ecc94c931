package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/crewdesk/crewdesk-go/internal/domain/session"
)

type AuthHandler struct {
	sessions session.SessionService
	out      io.Writer
}

func NewAuthHandler(sessions session.SessionService, out io.Writer) *AuthHandler {
	return &AuthHandler{sessions: sessions, out: out}
}

// Login starts a session. Logging in while already authenticated
// short-circuits with the current identity, the way the login page redirects
// authenticated users back to the dashboard.
func (h *AuthHandler) Login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(h.out)
	identity := fs.String("as", "", "identity to log in as (e.g. an email address)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if current, err := h.sessions.Current(ctx); err == nil {
		fmt.Fprintf(h.out, "already logged in as %s\n", current.Identity)
		return nil
	}

	sess, err := h.sessions.Login(ctx, *identity)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "logged in as %s\n", sess.Identity)
	return nil
}

func (h *AuthHandler) Logout(ctx context.Context) error {
	if err := h.sessions.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(h.out, "logged out")
	return nil
}

func (h *AuthHandler) WhoAmI(ctx context.Context) error {
	sess, err := h.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			fmt.Fprintln(h.out, "not logged in")
			return nil
		}
		return err
	}

	fmt.Fprintln(h.out, sess.Identity)
	return nil
}
