// This file handles the HTTP requests of the user-management API surface.
// Route registration happens in main.go, where the administrator-only group
// is wrapped with the admin guard and the self-service group with the
// authentication requirement.
package users

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/globe42-go/apperror"
	"github.com/user/globe42-go/auth"
)

// UserHandlers provides HTTP handlers for staff account management.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleListUsers godoc
// @Summary List users
// @Description Lists all non-deleted staff accounts. Administrator only.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} users.UserModel "Users"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - No valid identity"
// @Failure 403 {object} apperror.ErrorResponse "Forbidden - Administrator role required"
// @Router /api/users [get]
func (h *UserHandlers) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.service.List(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, users)
	}
}

// HandleGetUser godoc
// @Summary Get a user
// @Description Fetches one staff account by id. Administrator only.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User id"
// @Success 200 {object} users.UserModel "User"
// @Failure 404 {object} apperror.ErrorResponse "Not Found"
// @Router /api/users/{userId} [get]
func (h *UserHandlers) HandleGetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}
		user, err := h.service.Get(r.Context(), id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, user)
	}
}

// HandleCreateUser godoc
// @Summary Create a user
// @Description Creates a staff account with a generated initial password, returned once. Administrator only.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createBody body users.CreateUserCommand true "Account details"
// @Success 201 {object} users.UserWithPassword "Created user with its generated password"
// @Failure 409 {object} apperror.ErrorResponse "Conflict - Login already exists"
// @Router /api/users [post]
func (h *UserHandlers) HandleCreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var command CreateUserCommand
		if err := json.NewDecoder(r.Body).Decode(&command); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		user, err := h.service.Create(r.Context(), command)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusCreated, user)
	}
}

// HandleResetPassword godoc
// @Summary Reset a user's password
// @Description Replaces the user's password with a newly generated one, returned once. Administrator only.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User id"
// @Success 200 {object} users.UserWithPassword "User with its new generated password"
// @Failure 404 {object} apperror.ErrorResponse "Not Found"
// @Router /api/users/{userId}/password-resets [post]
func (h *UserHandlers) HandleResetPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}
		user, err := h.service.ResetPassword(r.Context(), id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, user)
	}
}

// HandleDeleteUser godoc
// @Summary Delete a user
// @Description Soft-deletes a staff account. Administrator only.
// @Tags Users
// @Security BearerAuth
// @Param userId path int true "User id"
// @Success 204 "Deleted"
// @Failure 404 {object} apperror.ErrorResponse "Not Found"
// @Router /api/users/{userId} [delete]
func (h *UserHandlers) HandleDeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}
		if err := h.service.Delete(r.Context(), id); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleGetCurrentUser godoc
// @Summary Get the current user
// @Description Returns the profile of the authenticated caller.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.UserModel "Current user"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - No valid identity"
// @Router /api/users/me [get]
func (h *UserHandlers) HandleGetCurrentUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}
		user, err := h.service.Get(r.Context(), identity.UserID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, user)
	}
}

// HandleChangePassword godoc
// @Summary Change own password
// @Description Sets a new password on the authenticated caller's account.
// @Tags Users
// @Accept json
// @Security BearerAuth
// @Param passwordBody body users.ChangePasswordCommand true "New password"
// @Success 204 "Password changed"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - No valid identity"
// @Router /api/users/me/passwords [put]
func (h *UserHandlers) HandleChangePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		var command ChangePasswordCommand
		if err := json.NewDecoder(r.Body).Decode(&command); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := h.service.ChangePassword(r.Context(), identity.UserID, command); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// userIDParam parses the {userId} route parameter, writing a 400 on failure.
func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "userId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid user id: "+raw, nil))
		return 0, false
	}
	return id, true
}
