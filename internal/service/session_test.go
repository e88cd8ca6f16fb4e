package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/service"
)

const testSessionSecret = "test-secret-key-for-unit-tests-0123456789"

func newTestSessionService(t *testing.T, ttl time.Duration) *service.SessionService {
	t.Helper()
	s := service.NewSessionService(testSessionSecret, ttl)
	t.Cleanup(s.Close)
	return s
}

func TestSessionService_StartAndCurrentUser(t *testing.T) {
	sessions := newTestSessionService(t, time.Hour)

	token, err := sessions.Start(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := sessions.CurrentUser(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestSessionService_End(t *testing.T) {
	sessions := newTestSessionService(t, time.Hour)

	token, err := sessions.Start(7)
	require.NoError(t, err)

	require.NoError(t, sessions.End(token))

	// The token is well-signed but its session is gone.
	_, err = sessions.CurrentUser(token)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	// Ending twice fails the same way.
	assert.ErrorIs(t, sessions.End(token), domain.ErrNoSession)
}

func TestSessionService_ExpiresAfterTTL(t *testing.T) {
	sessions := newTestSessionService(t, time.Second)

	token, err := sessions.Start(3)
	require.NoError(t, err)

	// Well past both the registry TTL and the token's exp claim; neither
	// is extended by use, so the session is gone.
	time.Sleep(2100 * time.Millisecond)

	_, err = sessions.CurrentUser(token)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionService_CurrentUser_GarbageToken(t *testing.T) {
	sessions := newTestSessionService(t, time.Hour)

	_, err := sessions.CurrentUser("not-a-token")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionService_CurrentUser_ForeignSignature(t *testing.T) {
	sessions := newTestSessionService(t, time.Hour)
	other := service.NewSessionService("another-secret-entirely-0123456789abcdef", time.Hour)
	defer other.Close()

	token, err := other.Start(1)
	require.NoError(t, err)

	_, err = sessions.CurrentUser(token)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionService_IndependentSessions(t *testing.T) {
	sessions := newTestSessionService(t, time.Hour)

	t1, err := sessions.Start(1)
	require.NoError(t, err)
	t2, err := sessions.Start(2)
	require.NoError(t, err)

	require.NoError(t, sessions.End(t1))

	// Ending one session leaves the other intact.
	userID, err := sessions.CurrentUser(t2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), userID)
}
