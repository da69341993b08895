// This file defines the request and response payloads of the authentication
// API surface.
package auth

// CredentialsCommand is the login request payload. The plaintext password
// exists only for the duration of the login call and is never persisted.
type CredentialsCommand struct {
	Login    string `json:"login" example:"jdoe"`
	Password string `json:"password" example:"passw0rd"`
}

// AuthenticatedUser is the successful login response: the user's public
// identity fields plus the minted identity token. The token must be
// re-presented in the Authorization header of every subsequent call that
// needs an identity.
type AuthenticatedUser struct {
	ID    int64  `json:"id" example:"1"`
	Login string `json:"login" example:"jdoe"`
	Admin bool   `json:"admin" example:"false"`
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
