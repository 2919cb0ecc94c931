package cli

import (
	"context"
	"errors"

	"github.com/crewdesk/crewdesk-go/internal/domain/session"
)

// ErrLoginRequired is what unauthenticated access to a protected command
// resolves to; the login command is the entry point it points at.
var ErrLoginRequired = errors.New(`you are not logged in; run "crewdesk login --as <identity>" first`)

// Guard gates protected commands on the session state. It holds no state of
// its own.
type Guard struct {
	sessions session.SessionService
}

func NewGuard(sessions session.SessionService) *Guard {
	return &Guard{sessions: sessions}
}

// Require returns the active session or ErrLoginRequired.
func (g *Guard) Require(ctx context.Context) (session.Session, error) {
	s, err := g.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			return session.Session{}, ErrLoginRequired
		}
		return session.Session{}, err
	}
	return s, nil
}
