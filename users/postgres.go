// This file is the PostgreSQL implementation of the user store.
//
// Every query runs under a bounded timeout. When the database is slow or
// unreachable the resulting error carries the retryable Unavailable
// classification, never an authentication or authorization one: callers must
// be able to tell an outage apart from a denial.
package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/globe42-go/apperror"
	"github.com/user/globe42-go/auth"
)

// queryTimeout bounds every user store query so a stuck database surfaces as
// a retryable failure instead of hanging the request.
const queryTimeout = 5 * time.Second

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// PostgresStore is the pgx-backed user store. It satisfies both auth.UserStore
// and the wider Store interface of this package.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore on the given pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// FindNotDeletedByLogin returns the non-deleted user with the given login,
// or (nil, nil) when absent.
func (s *PostgresStore) FindNotDeletedByLogin(ctx context.Context, login string) (*auth.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT id, login, password, admin, deleted FROM users WHERE login = $1 AND NOT deleted`
	var user auth.User
	err := s.db.QueryRow(ctx, query, login).Scan(&user.ID, &user.Login, &user.HashedPassword, &user.Admin, &user.Deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, unavailable("failed to find user by login", err)
	}
	return &user, nil
}

// ExistsNotDeletedAdminByID answers the admin guard's predicate as a single
// boolean, without fetching the user row.
func (s *PostgresStore) ExistsNotDeletedAdminByID(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1 AND admin AND NOT deleted)`
	var exists bool
	if err := s.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, unavailable("failed to check admin privilege", err)
	}
	return exists, nil
}

// List returns all non-deleted users, ordered by login.
func (s *PostgresStore) List(ctx context.Context) ([]auth.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT id, login, password, admin, deleted FROM users WHERE NOT deleted ORDER BY login`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, unavailable("failed to list users", err)
	}
	defer rows.Close()

	var result []auth.User
	for rows.Next() {
		var user auth.User
		if err := rows.Scan(&user.ID, &user.Login, &user.HashedPassword, &user.Admin, &user.Deleted); err != nil {
			return nil, unavailable("failed to scan user row", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("failed to read user rows", err)
	}
	return result, nil
}

// GetByID returns the non-deleted user with the given id, or (nil, nil).
func (s *PostgresStore) GetByID(ctx context.Context, id int64) (*auth.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT id, login, password, admin, deleted FROM users WHERE id = $1 AND NOT deleted`
	var user auth.User
	err := s.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Login, &user.HashedPassword, &user.Admin, &user.Deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, unavailable("failed to get user", err)
	}
	return &user, nil
}

// Create inserts a new user and returns it with its assigned id. A login
// collision surfaces as a Conflict error, not an Unavailable one.
func (s *PostgresStore) Create(ctx context.Context, login, hashedPassword string, admin bool) (*auth.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `INSERT INTO users (login, password, admin, deleted) VALUES ($1, $2, $3, false) RETURNING id`
	user := &auth.User{Login: login, HashedPassword: hashedPassword, Admin: admin}
	if err := s.db.QueryRow(ctx, query, login, hashedPassword, admin).Scan(&user.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "login") {
			return nil, apperror.NewConflictError("login already exists", nil)
		}
		return nil, unavailable("failed to create user", err)
	}
	return user, nil
}

// UpdatePassword replaces the stored digest of a non-deleted user.
func (s *PostgresStore) UpdatePassword(ctx context.Context, id int64, hashedPassword string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := s.db.Exec(ctx, `UPDATE users SET password = $2 WHERE id = $1 AND NOT deleted`, id, hashedPassword)
	if err != nil {
		return false, unavailable("failed to update password", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SoftDelete marks a user as deleted, keeping the row for history.
func (s *PostgresStore) SoftDelete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := s.db.Exec(ctx, `UPDATE users SET deleted = true WHERE id = $1 AND NOT deleted`, id)
	if err != nil {
		return false, unavailable("failed to delete user", err)
	}
	return tag.RowsAffected() > 0, nil
}

// unavailable wraps a database failure with the retryable classification.
func unavailable(message string, err error) *apperror.AppError {
	return apperror.NewUnavailableError(message, err)
}
