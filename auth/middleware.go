// This file defines the HTTP middleware that bridge the transport layer and
// the auth core: one populates the per-request identity from the bearer
// token, the other rejects anonymous callers on routes that need an identity.
package auth

import (
	"net/http"
	"strings"

	"github.com/user/globe42-go/apperror"
)

// IdentityMiddleware extracts the bearer token from the Authorization header,
// verifies it, and populates the request identity in the context.
//
// It never rejects a request. A missing, malformed, tampered or expired token
// simply leaves the request anonymous; whether anonymity is acceptable is
// decided per operation, by RequireAuthenticated or by the admin guard.
func IdentityMiddleware(tokens *TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			userID, _, err := tokens.Verify(tokenString)
			if err != nil {
				// Invalid token: proceed anonymously.
				next.ServeHTTP(w, r)
				return
			}

			ctx := NewContextWithIdentity(r.Context(), RequestIdentity{UserID: userID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthenticated rejects anonymous requests with 401. Routes that only
// need "some authenticated staff member", not an administrator, use this.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// bearerToken extracts the token from an "Authorization: Bearer {token}"
// header. The header is the only credential-carrying field this transport
// uses.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
