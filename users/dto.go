// This file defines the request and response payloads of the user-management
// API surface.
package users

// UserModel is the public view of a staff account. The password digest never
// appears here.
type UserModel struct {
	ID    int64  `json:"id" example:"1"`
	Login string `json:"login" example:"jdoe"`
	Admin bool   `json:"admin" example:"false"`
}

// UserWithPassword is returned when an administrator creates an account or
// resets a password: the public view plus the generated plaintext password.
// It is shown exactly once; only its digest is stored.
type UserWithPassword struct {
	UserModel
	GeneratedPassword string `json:"generatedPassword" example:"1cc154e1-8916-4c31-b8f1-fd2e2a1be25c"`
}

// CreateUserCommand is the payload for creating a staff account.
type CreateUserCommand struct {
	Login string `json:"login" example:"jdoe"`
	Admin bool   `json:"admin" example:"false"`
}

// ChangePasswordCommand is the payload for a user changing their own password.
type ChangePasswordCommand struct {
	NewPassword string `json:"newPassword" example:"strongpassword123"`
}
