package session

import "context"

// SessionService owns the authenticated/unauthenticated state.
type SessionService interface {
	// Login records the identity as authenticated. Any non-empty identity is
	// accepted as proof of identity.
	Login(ctx context.Context, identity string) (Session, error)

	// Logout clears the session
	Logout(ctx context.Context) error

	// Current returns the active session, or ErrNotAuthenticated
	Current(ctx context.Context) (Session, error)
}
