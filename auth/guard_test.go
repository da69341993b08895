package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/globe42-go/apperror"
)

func adminStore(adminIDs ...int64) *fakeUserStore {
	return &fakeUserStore{
		existsNotDeletedAdminByID: func(ctx context.Context, id int64) (bool, error) {
			for _, adminID := range adminIDs {
				if id == adminID {
					return true, nil
				}
			}
			return false, nil
		},
	}
}

func TestCheckUserIsAdminAnonymous(t *testing.T) {
	guard := NewAdminGuard(adminStore(42))

	err := guard.CheckUserIsAdmin(context.Background())
	require.Error(t, err)
	// No identity at all is an authentication failure, not a privilege one.
	assert.True(t, apperror.IsAuthError(err))
	assert.False(t, apperror.IsUnauthorizedError(err))
}

func TestCheckUserIsAdminNonAdmin(t *testing.T) {
	guard := NewAdminGuard(adminStore(42))
	ctx := NewContextWithIdentity(context.Background(), RequestIdentity{UserID: 7})

	err := guard.CheckUserIsAdmin(ctx)
	require.Error(t, err)
	assert.True(t, apperror.IsUnauthorizedError(err))
}

func TestCheckUserIsAdminSuccess(t *testing.T) {
	guard := NewAdminGuard(adminStore(42))
	ctx := NewContextWithIdentity(context.Background(), RequestIdentity{UserID: 42})

	assert.NoError(t, guard.CheckUserIsAdmin(ctx))
}

func TestCheckUserIsAdminReEvaluatesEveryCall(t *testing.T) {
	// The predicate result changes between calls; the guard must never cache.
	isAdmin := true
	store := &fakeUserStore{
		existsNotDeletedAdminByID: func(ctx context.Context, id int64) (bool, error) {
			return isAdmin, nil
		},
	}
	guard := NewAdminGuard(store)
	ctx := NewContextWithIdentity(context.Background(), RequestIdentity{UserID: 42})

	require.NoError(t, guard.CheckUserIsAdmin(ctx))

	// Same identity, but the user has been demoted (or soft-deleted) since.
	isAdmin = false
	err := guard.CheckUserIsAdmin(ctx)
	require.Error(t, err)
	assert.True(t, apperror.IsUnauthorizedError(err))
}

func TestCheckUserIsAdminStoreFailure(t *testing.T) {
	store := &fakeUserStore{
		existsNotDeletedAdminByID: func(ctx context.Context, id int64) (bool, error) {
			return false, apperror.NewUnavailableError("user store unavailable", context.DeadlineExceeded)
		},
	}
	guard := NewAdminGuard(store)
	ctx := NewContextWithIdentity(context.Background(), RequestIdentity{UserID: 42})

	err := guard.CheckUserIsAdmin(ctx)
	require.Error(t, err)
	// An outage is retryable, never a denial.
	assert.True(t, apperror.IsUnavailableError(err))
	assert.False(t, apperror.IsUnauthorizedError(err))
}

func TestAdminOnlyMiddleware(t *testing.T) {
	guard := NewAdminGuard(adminStore(42))
	var reached bool
	handler := guard.AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		identity   *RequestIdentity
		wantStatus int
		wantBody   bool
	}{
		{"anonymous caller gets 401", nil, http.StatusUnauthorized, false},
		{"non-admin gets 403", &RequestIdentity{UserID: 7}, http.StatusForbidden, false},
		{"admin proceeds", &RequestIdentity{UserID: 42}, http.StatusNoContent, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tt.identity != nil {
				req = req.WithContext(NewContextWithIdentity(req.Context(), *tt.identity))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, reached, "handler body execution")
		})
	}
}
