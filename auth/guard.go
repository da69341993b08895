// This file implements the administrator-only guard, the cross-cutting
// precondition applied to privileged operations.
package auth

import (
	"context"
	"net/http"

	"github.com/user/globe42-go/apperror"
)

// AdminGuard enforces the administrator role requirement on guarded
// operations. It is side-effect free and idempotent: it may run several times
// during one request with the same outcome for a given identity and store
// state, and it re-evaluates the privilege on every call rather than caching
// it, so a demotion or soft-deletion takes effect immediately.
type AdminGuard struct {
	store UserStore
}

// NewAdminGuard creates a new AdminGuard.
func NewAdminGuard(store UserStore) *AdminGuard {
	return &AdminGuard{store: store}
}

// CheckUserIsAdmin decides whether the current caller may run an
// administrator-only operation.
//
// The two failure kinds are deliberately distinct: an anonymous caller gets
// an authentication error (remedy: log in), while an identified caller who is
// not a non-deleted administrator gets an authorization error (remedy:
// contact an administrator). A store failure keeps its retryable Unavailable
// classification and is never converted into a denial.
func (g *AdminGuard) CheckUserIsAdmin(ctx context.Context) error {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return apperror.NewAuthError("authentication required", nil)
	}

	isAdmin, err := g.store.ExistsNotDeletedAdminByID(ctx, identity.UserID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return apperror.NewUnauthorizedError("administrator role required", nil)
	}
	return nil
}

// AdminOnly wraps a route group so that the guard runs before every handler
// in it, with no opt-out. Marking a group administrator-only is a one-line
// `r.Use(guard.AdminOnly)` at route registration.
func (g *AdminGuard) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := g.CheckUserIsAdmin(r.Context()); err != nil {
			WriteError(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
