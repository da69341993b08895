// Package users implements staff account management: the persistent user
// store consumed by the auth core, and the administrator-only CRUD operations
// on accounts (create with a generated password, password resets, soft
// deletion). Accounts are never physically removed; the deleted flag excludes
// them from login and from the admin predicate.
package users

import (
	"context"

	"github.com/user/globe42-go/auth"
)

// Store is the persistence interface the user-management service consumes.
// PostgresStore implements it; tests substitute a fake. It is a superset of
// auth.UserStore, so one implementation serves both the auth core and this
// package.
type Store interface {
	auth.UserStore

	// List returns all non-deleted users.
	List(ctx context.Context) ([]auth.User, error)
	// GetByID returns the non-deleted user with the given id, or (nil, nil)
	// when no such user exists.
	GetByID(ctx context.Context, id int64) (*auth.User, error)
	// Create inserts a new user and returns it with its assigned id.
	Create(ctx context.Context, login, hashedPassword string, admin bool) (*auth.User, error)
	// UpdatePassword replaces the stored digest of a non-deleted user.
	// It reports whether such a user existed.
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) (bool, error)
	// SoftDelete marks a user as deleted. It reports whether a non-deleted
	// user with that id existed.
	SoftDelete(ctx context.Context, id int64) (bool, error)
}
