// Package domain defines the core user and session domain entities.
package domain

import (
	"time"

	"github.com/safework/safework/internal/errors"
)

// Roles assigned to users. The role is embedded in every issued token and
// drives the authorization rules on the report workflow and admin surface.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User represents a registered user.
type User struct {
	ID          int64
	Name        string
	Email       string
	Password    string // argon2id hash, never plaintext
	Role        string
	Department  string
	Position    string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Identity is the authenticated caller extracted from a verified access
// token. It is what the authorization rules see; handlers place it in the
// request context.
type Identity struct {
	UserID int64
	Role   string
}

// IsAdmin reports whether the identity holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Domain-specific errors for user and session operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrEmailAlreadyExists indicates a user with the same email already exists.
	ErrEmailAlreadyExists = errors.Wrap(errors.ErrConflict, "email already registered")

	// ErrInvalidCredentials indicates a failed login. Shared by the
	// unknown-email and wrong-password paths so callers cannot tell them
	// apart.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid email or password")

	// ErrInvalidRefreshToken indicates the refresh credential failed
	// verification or carries no session id.
	ErrInvalidRefreshToken = errors.Wrap(errors.ErrUnauthorized, "invalid refresh token")

	// ErrSessionRevoked indicates the refresh credential is signed and
	// unexpired but its session has been logged out or expired server-side.
	ErrSessionRevoked = errors.Wrap(errors.ErrUnauthorized, "session revoked")
)
