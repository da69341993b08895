// This file contains the business logic for staff account management.
// All mutating operations here are reachable only through administrator-only
// routes (except ChangePassword, which acts on the caller's own account).
package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/user/globe42-go/apperror"
	"github.com/user/globe42-go/auth"
)

// UserService provides staff account management on top of the Store.
type UserService struct {
	store    Store
	digester *auth.PasswordDigester
}

// NewUserService creates a new UserService.
func NewUserService(store Store, digester *auth.PasswordDigester) *UserService {
	return &UserService{store: store, digester: digester}
}

// List returns all non-deleted users.
func (s *UserService) List(ctx context.Context) ([]UserModel, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]UserModel, 0, len(users))
	for _, user := range users {
		result = append(result, toModel(&user))
	}
	return result, nil
}

// Get returns the non-deleted user with the given id.
func (s *UserService) Get(ctx context.Context, id int64) (*UserModel, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("user with id %d not found", id), nil)
	}
	model := toModel(user)
	return &model, nil
}

// Create creates a staff account with a generated initial password. The
// plaintext is returned exactly once so the administrator can hand it over;
// only its digest is stored.
func (s *UserService) Create(ctx context.Context, command CreateUserCommand) (*UserWithPassword, error) {
	if command.Login == "" {
		return nil, apperror.NewValidationError("login is required", nil)
	}

	password := generatePassword()
	digest, err := s.digester.Hash(password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash generated password", err)
	}

	user, err := s.store.Create(ctx, command.Login, digest, command.Admin)
	if err != nil {
		return nil, err
	}

	return &UserWithPassword{
		UserModel:         toModel(user),
		GeneratedPassword: password,
	}, nil
}

// ResetPassword replaces a user's password with a newly generated one,
// returned once in plaintext.
func (s *UserService) ResetPassword(ctx context.Context, id int64) (*UserWithPassword, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("user with id %d not found", id), nil)
	}

	password := generatePassword()
	digest, err := s.digester.Hash(password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash generated password", err)
	}
	updated, err := s.store.UpdatePassword(ctx, id, digest)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("user with id %d not found", id), nil)
	}

	return &UserWithPassword{
		UserModel:         toModel(user),
		GeneratedPassword: password,
	}, nil
}

// ChangePassword sets a new password on the caller's own account. No old
// password is asked for: presenting a valid token is the proof of identity,
// and outstanding tokens stay valid until their natural expiry.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, command ChangePasswordCommand) error {
	if command.NewPassword == "" {
		return apperror.NewValidationError("newPassword is required", nil)
	}

	digest, err := s.digester.Hash(command.NewPassword)
	if err != nil {
		return apperror.NewInternalError("failed to hash password", err)
	}
	updated, err := s.store.UpdatePassword(ctx, userID, digest)
	if err != nil {
		return err
	}
	if !updated {
		return apperror.NewNotFoundError(fmt.Sprintf("user with id %d not found", userID), nil)
	}
	return nil
}

// Delete soft-deletes a user. The account disappears from listings, can no
// longer log in, and fails the admin predicate immediately.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError(fmt.Sprintf("user with id %d not found", id), nil)
	}
	return nil
}

func toModel(user *auth.User) UserModel {
	return UserModel{ID: user.ID, Login: user.Login, Admin: user.Admin}
}

// generatePassword produces a random initial password for admin-created
// accounts and password resets.
func generatePassword() string {
	return uuid.NewString()
}
