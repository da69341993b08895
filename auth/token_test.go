package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/globe42-go/apperror"
)

const testSecret = "test-signing-secret"

func newTestTokenService() *TokenService {
	return NewTokenService(testSecret, 24*time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	s := newTestTokenService()
	// The token format carries whole seconds.
	issuedAt := time.Now().Truncate(time.Second)

	token, err := s.BuildAt(42, issuedAt)
	require.NoError(t, err)

	userID, gotIssuedAt, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.True(t, issuedAt.Equal(gotIssuedAt), "issuedAt mismatch: want %v got %v", issuedAt, gotIssuedAt)
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	s := newTestTokenService()
	token, err := s.Build(42)
	require.NoError(t, err)

	// Flip a byte in the payload segment. The signature no longer matches.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, _, err = s.Verify(tampered)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	other := NewTokenService("a-different-secret", 24*time.Hour)
	token, err := other.Build(42)
	require.NoError(t, err)

	_, _, err = newTestTokenService().Verify(token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	s := newTestTokenService()
	for _, tokenString := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		_, _, err := s.Verify(tokenString)
		require.Error(t, err, "token %q should be rejected", tokenString)
		assert.True(t, apperror.IsAuthError(err))
	}
}

func TestVerifyEnforcesMaxLifetime(t *testing.T) {
	maxLifetime := time.Hour
	s := NewTokenService(testSecret, maxLifetime)

	// Issued just inside the lifetime: accepted.
	fresh, err := s.BuildAt(42, time.Now().Add(-maxLifetime+5*time.Second))
	require.NoError(t, err)
	userID, _, err := s.Verify(fresh)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	// Issued just outside the lifetime: rejected, same outcome as any other
	// invalid token.
	stale, err := s.BuildAt(42, time.Now().Add(-maxLifetime-5*time.Second))
	require.NoError(t, err)
	_, _, err = s.Verify(stale)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestVerifyRejectsMissingClaims(t *testing.T) {
	s := newTestTokenService()

	// A token minted for user id 0 carries no usable subject.
	token, err := s.Build(0)
	require.NoError(t, err)

	_, _, err = s.Verify(token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestFailureCausesAreIndistinguishable(t *testing.T) {
	maxLifetime := time.Hour
	s := NewTokenService(testSecret, maxLifetime)

	stale, err := s.BuildAt(42, time.Now().Add(-2*maxLifetime))
	require.NoError(t, err)
	foreign, err := NewTokenService("other", maxLifetime).Build(42)
	require.NoError(t, err)

	_, _, expiredErr := s.Verify(stale)
	_, _, forgedErr := s.Verify(foreign)
	_, _, garbageErr := s.Verify("garbage")

	// The externally visible message never reveals why validation failed.
	for _, err := range []error{expiredErr, forgedErr, garbageErr} {
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, "invalid token", appErr.ToResponse().Error)
		assert.Equal(t, 401, appErr.StatusCode())
	}
}
