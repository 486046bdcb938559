package usecase

import (
	"context"

	authDomain "github.com/safework/safework/internal/auth/domain"
	authUseCase "github.com/safework/safework/internal/auth/usecase"
	apperrors "github.com/safework/safework/internal/errors"
)

// ErrSelfTargetPermission indicates an admin tried to change their own role.
var ErrSelfTargetPermission = apperrors.Wrap(apperrors.ErrForbidden, "cannot change your own permission")

// adminUseCase implements AdminUseCase.
type adminUseCase struct {
	userRepo authUseCase.UserRepository
}

// NewAdminUseCase creates a new AdminUseCase with the provided dependencies.
func NewAdminUseCase(userRepo authUseCase.UserRepository) AdminUseCase {
	return &adminUseCase{userRepo: userRepo}
}

func requireAdmin(actor authDomain.Identity) error {
	if !actor.IsAdmin() {
		return apperrors.Wrap(apperrors.ErrForbidden, "admin role required")
	}
	return nil
}

// ListUsers retrieves users, optionally filtered by department.
func (a *adminUseCase) ListUsers(
	ctx context.Context,
	actor authDomain.Identity,
	department string,
	offset, limit int,
) ([]*authDomain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	users, err := a.userRepo.List(ctx, department, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	return users, nil
}

// GetUser retrieves a single user.
func (a *adminUseCase) GetUser(
	ctx context.Context,
	actor authDomain.Identity,
	id int64,
) (*authDomain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return a.userRepo.GetByID(ctx, id)
}

// UpdatePermission grants or revokes the admin role on another account.
// Self-targeting changes are denied: an admin revoking their own role locks
// the backoffice out, and the symmetric grant path would allow escalation if
// role checks ever regress.
func (a *adminUseCase) UpdatePermission(
	ctx context.Context,
	actor authDomain.Identity,
	targetID int64,
	grantAdmin bool,
) (*authDomain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if actor.UserID == targetID {
		return nil, ErrSelfTargetPermission
	}

	role := authDomain.RoleUser
	if grantAdmin {
		role = authDomain.RoleAdmin
	}
	if err := a.userRepo.UpdateRole(ctx, targetID, role); err != nil {
		return nil, err
	}
	return a.userRepo.GetByID(ctx, targetID)
}

// DeleteUser removes a user account.
func (a *adminUseCase) DeleteUser(ctx context.Context, actor authDomain.Identity, id int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return a.userRepo.Delete(ctx, id)
}
