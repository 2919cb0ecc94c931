package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/crewdesk/crewdesk-go/internal/domain/session"
	"github.com/crewdesk/crewdesk-go/internal/pkg/kvstore"
)

const authUserKey = "authUser"

type sessionRepositoryImpl struct {
	kv kvstore.Store
}

func NewSessionRepository(kv kvstore.Store) session.SessionRepository {
	return &sessionRepositoryImpl{kv: kv}
}

// Get implements session.SessionRepository. A corrupt stored record is
// removed and reported as unauthenticated, never as an error.
func (r *sessionRepositoryImpl) Get(ctx context.Context) (session.Session, error) {
	data, err := r.kv.Get(authUserKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return session.Session{}, session.ErrNotAuthenticated
		}
		return session.Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	var s session.Session
	if err := json.Unmarshal(data, &s); err != nil || s.Identity == "" {
		_ = r.kv.Delete(authUserKey)
		return session.Session{}, session.ErrNotAuthenticated
	}

	return s, nil
}

// Save implements session.SessionRepository.
func (r *sessionRepositoryImpl) Save(ctx context.Context, s session.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.kv.Set(authUserKey, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Clear implements session.SessionRepository.
func (r *sessionRepositoryImpl) Clear(ctx context.Context) error {
	if err := r.kv.Delete(authUserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
