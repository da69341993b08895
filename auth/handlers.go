// This file handles the HTTP requests of the authentication API surface and
// hosts the response-writing helpers shared by the other feature packages.
package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/user/globe42-go/apperror"
)

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleAuthenticate godoc
// @Summary Authenticate
// @Description Validates staff credentials and returns the user's identity and a signed token.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param credentials body auth.CredentialsCommand true "Staff credentials"
// @Success 200 {object} auth.AuthenticatedUser "Authentication successful"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid input or missing fields"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid credentials"
// @Failure 503 {object} apperror.ErrorResponse "Service Unavailable - User store unreachable"
// @Router /api/authentication [post]
func (h *Handlers) HandleAuthenticate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials CredentialsCommand
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if credentials.Login == "" || credentials.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("login and password are required", nil))
			return
		}

		result, err := h.service.Authenticate(r.Context(), credentials)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, result)
	}
}

// WriteJSON serializes `data` to JSON and writes it with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError converts any error into a standardized apperror response.
// Errors that are not already AppErrors are wrapped as internal errors so
// every response stays uniform.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}

	// 5xx responses hide their cause from the client; keep it in the log.
	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Printf("error processing %s %s: %v", r.Method, r.URL.Path, appErr)
	}

	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
