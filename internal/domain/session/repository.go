package session

import "context"

// SessionRepository persists the optional session record. A corrupt stored
// record is discarded on load rather than surfaced as an error.
type SessionRepository interface {
	// Get returns the stored session, or ErrNotAuthenticated when absent.
	Get(ctx context.Context) (Session, error)

	// Save durably replaces the session record.
	Save(ctx context.Context, s Session) error

	// Clear removes the session record. Clearing an absent record is a no-op.
	Clear(ctx context.Context) error
}
