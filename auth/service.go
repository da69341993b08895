// This file implements the login orchestration of the auth core.
package auth

import (
	"context"

	"github.com/user/globe42-go/apperror"
)

// AuthService orchestrates the login operation: it looks up the user,
// verifies the password and mints an identity token. It never mutates stored
// state, so a failed or repeated login is always safe to retry.
type AuthService struct {
	store    UserStore
	digester *PasswordDigester
	tokens   *TokenService
}

// NewAuthService creates a new AuthService with its collaborators injected.
func NewAuthService(store UserStore, digester *PasswordDigester, tokens *TokenService) *AuthService {
	return &AuthService{
		store:    store,
		digester: digester,
		tokens:   tokens,
	}
}

// Authenticate validates the credentials and returns the user's public
// identity fields plus a freshly minted token.
//
// An unknown login and a wrong password produce the exact same outward
// failure. Distinguishing them would let an attacker enumerate valid logins.
// Store failures keep their Unavailable classification so a database outage
// is never reported as a credential problem.
func (s *AuthService) Authenticate(ctx context.Context, credentials CredentialsCommand) (*AuthenticatedUser, error) {
	user, err := s.store.FindNotDeletedByLogin(ctx, credentials.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, invalidCredentials()
	}

	if !s.digester.Match(credentials.Password, user.HashedPassword) {
		return nil, invalidCredentials()
	}

	token, err := s.tokens.Build(user.ID)
	if err != nil {
		return nil, apperror.NewInternalError("failed to build token", err)
	}

	return &AuthenticatedUser{
		ID:    user.ID,
		Login: user.Login,
		Admin: user.Admin,
		Token: token,
	}, nil
}

// invalidCredentials is the single rejection outcome for authentication,
// regardless of which step failed.
func invalidCredentials() *apperror.AppError {
	return apperror.NewAuthError("invalid credentials", nil)
}
