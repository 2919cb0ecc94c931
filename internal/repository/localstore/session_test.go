package localstore

import (
	"context"
	"testing"

	"github.com/crewdesk/crewdesk-go/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_SaveGetRoundTrip(t *testing.T) {
	kv := newTestKV(t)
	repo := NewSessionRepository(kv)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, session.Session{Identity: "admin@company.com"}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin@company.com", got.Identity)
}

func TestSessionRepository_AbsentRecordIsUnauthenticated(t *testing.T) {
	repo := NewSessionRepository(newTestKV(t))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)
}

func TestSessionRepository_CorruptRecordIsDiscarded(t *testing.T) {
	kv := newTestKV(t)
	require.NoError(t, kv.Set("authUser", []byte(`{"identity":`)))

	repo := NewSessionRepository(kv)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	// The corrupt record must be gone afterwards
	exists, err := kv.Exists("authUser")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSessionRepository_ClearRemovesRecord(t *testing.T) {
	kv := newTestKV(t)
	repo := NewSessionRepository(kv)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, session.Session{Identity: "admin@company.com"}))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	// Clearing again is a no-op
	assert.NoError(t, repo.Clear(ctx))
}

func TestSessionRepository_IndependentFromEmployeeCollection(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	employees, err := NewEmployeeRepository(kv)
	require.NoError(t, err)
	sessions := NewSessionRepository(kv)

	require.NoError(t, sessions.Save(ctx, session.Session{Identity: "admin@company.com"}))
	require.NoError(t, employees.Delete(ctx, "1"))
	require.NoError(t, sessions.Clear(ctx))

	list, err := employees.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
