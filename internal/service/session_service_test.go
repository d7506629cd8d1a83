package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/ptemaster/internal/repository"
	"github.com/alexanderramin/ptemaster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) SessionService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewSessionService(repository.NewSQLiteSessionRepo(db), 0, nil)
}

func TestSessionService_Login_SynthesizesIdentity(t *testing.T) {
	svc := newSessionService(t)

	user, err := svc.Login(context.Background(), "amy.chen@example.com")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(user.ID, "user_"))
	assert.Len(t, user.ID, len("user_")+8)
	assert.Equal(t, "amy.chen@example.com", user.Email)
	assert.Equal(t, "amy.chen", user.Name)
}

func TestSessionService_Login_IdentitiesAreUnique(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	a, err := svc.Login(ctx, "same@example.com")
	require.NoError(t, err)
	b, err := svc.Login(ctx, "same@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestSessionService_Login_RejectsNonEmailShapes(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	for _, email := range []string{"", "   ", "plainstring", "@nodomain", "nolocal@"} {
		_, err := svc.Login(ctx, email)
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
}

func TestSessionService_RestoreRoundTrip(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	user, err := svc.Login(ctx, "amy@example.com")
	require.NoError(t, err)

	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, user.ID, restored.ID)
	assert.Equal(t, user.Email, restored.Email)
	assert.Equal(t, user.Name, restored.Name)
}

func TestSessionService_Restore_NoSession(t *testing.T) {
	svc := newSessionService(t)

	restored, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestSessionService_Logout_ClearsSession(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "amy@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)

	// Logging out twice is fine.
	assert.NoError(t, svc.Logout(ctx))
}

func TestSessionService_Login_SimulatedLatencyHonorsContext(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewSessionService(repository.NewSQLiteSessionRepo(db), 500*time.Millisecond, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Login(ctx, "amy@example.com")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
