package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/globe42-go/apperror"
)

// fakeUserStore is a function-field fake of the UserStore interface.
type fakeUserStore struct {
	findNotDeletedByLogin     func(ctx context.Context, login string) (*User, error)
	existsNotDeletedAdminByID func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeUserStore) FindNotDeletedByLogin(ctx context.Context, login string) (*User, error) {
	return f.findNotDeletedByLogin(ctx, login)
}

func (f *fakeUserStore) ExistsNotDeletedAdminByID(ctx context.Context, id int64) (bool, error) {
	return f.existsNotDeletedAdminByID(ctx, id)
}

func newTestAuthService(store UserStore) *AuthService {
	return NewAuthService(store, NewPasswordDigester(bcrypt.MinCost), newTestTokenService())
}

func storeWithUser(t *testing.T, user *User, plaintext string) *fakeUserStore {
	t.Helper()
	digest, err := NewPasswordDigester(bcrypt.MinCost).Hash(plaintext)
	require.NoError(t, err)
	user.HashedPassword = digest
	return &fakeUserStore{
		findNotDeletedByLogin: func(ctx context.Context, login string) (*User, error) {
			if login == user.Login {
				return user, nil
			}
			return nil, nil
		},
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	user := &User{ID: 1, Login: "alice", Admin: true}
	service := newTestAuthService(storeWithUser(t, user, "correct"))

	result, err := service.Authenticate(context.Background(), CredentialsCommand{Login: "alice", Password: "correct"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, "alice", result.Login)
	assert.True(t, result.Admin)

	// The minted token decodes back to the user's id.
	userID, _, err := newTestTokenService().Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	user := &User{ID: 1, Login: "alice", Admin: false}
	service := newTestAuthService(storeWithUser(t, user, "correct"))

	_, unknownErr := service.Authenticate(context.Background(), CredentialsCommand{Login: "nobody", Password: "correct"})
	_, wrongPasswordErr := service.Authenticate(context.Background(), CredentialsCommand{Login: "alice", Password: "wrong"})

	// Unknown login and wrong password must be the same outward failure so
	// logins cannot be enumerated.
	require.Error(t, unknownErr)
	require.Error(t, wrongPasswordErr)
	unknown, ok := apperror.FromError(unknownErr)
	require.True(t, ok)
	wrongPassword, ok := apperror.FromError(wrongPasswordErr)
	require.True(t, ok)
	assert.Equal(t, unknown.StatusCode(), wrongPassword.StatusCode())
	assert.Equal(t, unknown.ToResponse(), wrongPassword.ToResponse())
	assert.True(t, apperror.IsAuthError(unknownErr))
	assert.True(t, apperror.IsAuthError(wrongPasswordErr))
}

func TestAuthenticateKeepsStoreFailureRetryable(t *testing.T) {
	store := &fakeUserStore{
		findNotDeletedByLogin: func(ctx context.Context, login string) (*User, error) {
			return nil, apperror.NewUnavailableError("user store unavailable", context.DeadlineExceeded)
		},
	}
	service := newTestAuthService(store)

	_, err := service.Authenticate(context.Background(), CredentialsCommand{Login: "alice", Password: "correct"})
	require.Error(t, err)
	// A store outage is not a credential problem.
	assert.True(t, apperror.IsUnavailableError(err))
	assert.False(t, apperror.IsAuthError(err))
}

func TestAuthenticateIsRepeatable(t *testing.T) {
	user := &User{ID: 7, Login: "bob"}
	service := newTestAuthService(storeWithUser(t, user, "correct"))

	first, err := service.Authenticate(context.Background(), CredentialsCommand{Login: "bob", Password: "correct"})
	require.NoError(t, err)
	second, err := service.Authenticate(context.Background(), CredentialsCommand{Login: "bob", Password: "correct"})
	require.NoError(t, err)

	// Both tokens decode to the same subject.
	firstID, _, err := newTestTokenService().Verify(first.Token)
	require.NoError(t, err)
	secondID, _, err := newTestTokenService().Verify(second.Token)
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)
}
