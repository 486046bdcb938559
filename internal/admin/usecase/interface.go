// Package usecase implements the admin backoffice operations on user accounts.
package usecase

import (
	"context"

	authDomain "github.com/safework/safework/internal/auth/domain"
)

// AdminUseCase defines the admin-only bulk operations. Every operation takes
// the acting identity and enforces the admin role itself; route-level admin
// middleware is a first gate, not the authority.
type AdminUseCase interface {
	// ListUsers retrieves users ordered by ID, optionally filtered by
	// department.
	ListUsers(ctx context.Context, actor authDomain.Identity, department string, offset, limit int) ([]*authDomain.User, error)

	// GetUser retrieves a single user.
	GetUser(ctx context.Context, actor authDomain.Identity, id int64) (*authDomain.User, error)

	// UpdatePermission grants or revokes the admin role. A self-targeting
	// change is denied to prevent privilege self-lockout and self-escalation.
	UpdatePermission(ctx context.Context, actor authDomain.Identity, targetID int64, grantAdmin bool) (*authDomain.User, error)

	// DeleteUser removes a user account. Owned reports cascade at the
	// storage layer.
	DeleteUser(ctx context.Context, actor authDomain.Identity, id int64) error
}
