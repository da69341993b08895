// This file implements the identity token codec of the auth core.
// Tokens are stateless: validity is entirely determined by the signature and
// a clock check, with no server-side storage and no revocation list.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/globe42-go/apperror"
)

// tokenIssuer identifies tokens minted by this application.
const tokenIssuer = "globe42"

// TokenClaims is the payload of an identity token: the subject user id plus
// the registered claims (of which only `iat` matters for validity).
type TokenClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService creates and verifies signed, time-bounded identity tokens.
// The signing secret and maximum lifetime are fixed at construction; both are
// process-wide startup configuration.
type TokenService struct {
	secret      []byte
	maxLifetime time.Duration
}

// NewTokenService creates a TokenService signing with the given secret and
// accepting tokens for at most maxLifetime after issuance.
func NewTokenService(secret string, maxLifetime time.Duration) *TokenService {
	return &TokenService{
		secret:      []byte(secret),
		maxLifetime: maxLifetime,
	}
}

// Build mints a token for the given user id, issued now.
func (s *TokenService) Build(userID int64) (string, error) {
	return s.BuildAt(userID, time.Now())
}

// BuildAt mints a token for the given user id with an explicit issue time.
// The issue time is truncated to whole seconds, the precision the token
// format carries.
func (s *TokenService) BuildAt(userID int64, issuedAt time.Time) (string, error) {
	claims := &TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(issuedAt),
			Issuer:   tokenIssuer,
			Subject:  fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks a token's structure, signature and age, and returns the
// subject user id and issue time on success.
//
// Every failure — malformed structure, signature mismatch, missing claims,
// expiry — folds into the same externally visible invalid-token error. The
// underlying cause is kept on the wrapped error for server-side logs only;
// distinguishing the causes outwardly would hand an oracle to attackers.
func (s *TokenService) Verify(tokenString string) (int64, time.Time, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, time.Time{}, invalidToken(err)
	}
	if !token.Valid {
		return 0, time.Time{}, invalidToken(nil)
	}
	if claims.UserID == 0 || claims.IssuedAt == nil {
		return 0, time.Time{}, invalidToken(nil)
	}

	issuedAt := claims.IssuedAt.Time
	if time.Since(issuedAt) > s.maxLifetime {
		return 0, time.Time{}, invalidToken(nil)
	}

	return claims.UserID, issuedAt, nil
}

// invalidToken is the single rejection outcome for token verification.
func invalidToken(cause error) *apperror.AppError {
	return apperror.NewAuthError("invalid token", cause)
}
