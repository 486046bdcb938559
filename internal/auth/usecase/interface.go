// Package usecase defines business logic interfaces for authentication and session operations.
package usecase

import (
	"context"
	"time"

	"github.com/safework/safework/internal/auth/domain"
	"github.com/safework/safework/internal/token"
)

// UserRepository defines persistence operations for users.
// Implementations must support transaction-aware operations via context propagation.
type UserRepository interface {
	// Create stores a new user and fills in the generated ID.
	// Returns ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID. Returns ErrUserNotFound if not found.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by email. Returns ErrUserNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List retrieves users ordered by ID, optionally filtered by department.
	List(ctx context.Context, department string, offset, limit int) ([]*domain.User, error)

	// UpdateRole changes a user's role. Returns ErrUserNotFound if not found.
	UpdateRole(ctx context.Context, id int64, role string) error

	// Delete removes a user. Returns ErrUserNotFound if not found.
	Delete(ctx context.Context, id int64) error
}

// TokenProvider issues and verifies signed session credentials.
type TokenProvider interface {
	IssueAccess(userID int64, role string) (string, error)
	IssueRefresh(userID int64, role string) (tokenString string, jti string, err error)
	VerifyRefresh(tokenString string) (*token.Claims, error)
	ExtractUnverified(tokenString string) (*token.Claims, error)
}

// SessionLedger tracks which refresh credentials are still honored.
type SessionLedger interface {
	Register(userID int64, jti string, ttl time.Duration)
	IsLive(userID int64, jti string) bool
	Revoke(userID int64, jti string)
}

// RegisterInput contains the input data for user registration.
type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Department  string `json:"department"`
	Position    string `json:"position"`
	PhoneNumber string `json:"phoneNumber"`
}

// SessionOutput is the result of a successful login or refresh. RefreshToken
// is empty on refresh, which mints access tokens only.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	UserID       int64
	Role         string
}

// SessionUseCase defines the session lifecycle operations.
type SessionUseCase interface {
	// Register creates a new user account with a hashed password.
	// Returns ErrEmailAlreadyExists when the email is taken.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)

	// Login verifies credentials, issues an access/refresh token pair and
	// registers the refresh session in the ledger. Unknown email and wrong
	// password are indistinguishable: both return ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*SessionOutput, error)

	// Refresh mints a new access token from a live refresh credential.
	// Returns ErrInvalidRefreshToken when verification fails and
	// ErrSessionRevoked when the session is no longer live. The ledger is
	// untouched on success: one refresh credential mints many access tokens.
	Refresh(ctx context.Context, refreshToken string) (*SessionOutput, error)

	// Logout revokes the session named by the refresh credential, best
	// effort. A garbage or expired credential is ignored; Logout never
	// fails because of it.
	Logout(ctx context.Context, refreshToken string)
}
