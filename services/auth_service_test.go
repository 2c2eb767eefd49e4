package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidthissen1/Nutrify/models"
)

func TestRegisterLoginResolve(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", false)

	userID, err := svc.Register("alice", "a@x.com", "pw123")
	require.NoError(t, err)
	require.NotZero(t, userID)

	user, token, err := svc.Login("a@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.NotEmpty(t, token)

	resolved, err := svc.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, resolved.ID)
	assert.Equal(t, "alice", resolved.Username)
	assert.Equal(t, "a@x.com", resolved.Email)
}

func TestLoginIssuesIndependentTokens(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", false)

	_, err := svc.Register("alice", "a@x.com", "pw123")
	require.NoError(t, err)

	_, first, err := svc.Login("a@x.com", "pw123")
	require.NoError(t, err)
	_, second, err := svc.Login("a@x.com", "pw123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// earlier tokens survive later logins
	_, err = svc.ResolveToken(first)
	assert.NoError(t, err)
	_, err = svc.ResolveToken(second)
	assert.NoError(t, err)
}

func TestRegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", false)

	_, err := svc.Register("alice", "a@x.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Register("alice", "other@x.com", "pw123")
	assert.ErrorIs(t, err, ErrDuplicateUser)

	_, err = svc.Register("other", "a@x.com", "pw123")
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", false)

	_, err := svc.Register("alice", "a@x.com", "pw123")
	require.NoError(t, err)

	_, _, err = svc.Login("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@x.com", "pw123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveUnknownToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", false)

	_, err := svc.ResolveToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenAcceptedUnlessEnforced(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice", "a@x.com")

	expired := models.UserToken{
		UserID:    user.ID,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&expired).Error)

	// default behavior: existence is the only check
	lax := NewAuthService(db, "test-secret", false)
	resolved, err := lax.ResolveToken("expired-token")
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)

	// opt-in enforcement rejects it
	strict := NewAuthService(db, "test-secret", true)
	_, err = strict.ResolveToken("expired-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPurgeExpiredTokens(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice", "a@x.com")
	svc := NewAuthService(db, "test-secret", false)

	require.NoError(t, db.Create(&models.UserToken{
		UserID: user.ID, Token: "stale", ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)
	require.NoError(t, db.Create(&models.UserToken{
		UserID: user.ID, Token: "fresh", ExpiresAt: time.Now().Add(time.Hour),
	}).Error)

	purged, err := svc.PurgeExpiredTokens()
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, err = svc.ResolveToken("stale")
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = svc.ResolveToken("fresh")
	assert.NoError(t, err)
}
