package auth

import "context"

// UserStore is the persistence interface this core consumes. It is defined
// here, on the consumer side, and implemented by the users package; the core
// requires exactly these two read predicates and never a write path.
type UserStore interface {
	// FindNotDeletedByLogin returns the non-deleted user with the given
	// login, or (nil, nil) when no such user exists. A non-nil error means
	// the store itself failed and should already carry the retryable
	// Unavailable classification.
	FindNotDeletedByLogin(ctx context.Context, login string) (*User, error)

	// ExistsNotDeletedAdminByID reports whether a non-deleted administrator
	// with the given id exists, as a single boolean predicate. The guard asks
	// this instead of fetching the user and inspecting fields so that deleted
	// or demoted accounts never leak through partial reads.
	ExistsNotDeletedAdminByID(ctx context.Context, id int64) (bool, error)
}
