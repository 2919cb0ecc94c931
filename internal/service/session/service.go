package session

import (
	"context"
	"strings"

	"github.com/crewdesk/crewdesk-go/internal/domain/session"
	"github.com/rs/zerolog"
)

type SessionServiceImpl struct {
	sessionRepo session.SessionRepository
	log         zerolog.Logger
}

func NewSessionService(sessionRepo session.SessionRepository, log zerolog.Logger) session.SessionService {
	return &SessionServiceImpl{
		sessionRepo: sessionRepo,
		log:         log,
	}
}

// Login implements session.SessionService. The identity is taken at face
// value; there is no credential to verify.
func (s *SessionServiceImpl) Login(ctx context.Context, identity string) (session.Session, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return session.Session{}, session.ErrEmptyIdentity
	}

	sess := session.Session{Identity: identity}
	if err := s.sessionRepo.Save(ctx, sess); err != nil {
		return session.Session{}, err
	}

	s.log.Info().Str("identity", identity).Msg("session started")
	return sess, nil
}

// Logout implements session.SessionService.
func (s *SessionServiceImpl) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		return err
	}

	s.log.Info().Msg("session ended")
	return nil
}

// Current implements session.SessionService.
func (s *SessionServiceImpl) Current(ctx context.Context) (session.Session, error) {
	return s.sessionRepo.Get(ctx)
}
