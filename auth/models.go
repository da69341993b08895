// Package auth contains the authentication and authorization core of the
// application: password digesting, identity token issuing and verification,
// the login operation, the per-request identity, and the administrator-only
// guard. Everything else in the application sits behind this boundary.
package auth

// User represents a staff account as stored in the database.
// This core only ever reads user records; user-management operations in the
// users package own the write path.
type User struct {
	// `json:"-"` on HashedPassword keeps the digest out of every API response.
	ID             int64  `json:"id"`
	Login          string `json:"login"`
	HashedPassword string `json:"-"`
	Admin          bool   `json:"admin"`
	Deleted        bool   `json:"-"`
}
