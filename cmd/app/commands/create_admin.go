package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/safework/safework/internal/app"
	authDomain "github.com/safework/safework/internal/auth/domain"
	authUseCase "github.com/safework/safework/internal/auth/usecase"
	"github.com/safework/safework/internal/config"
)

// RunCreateAdmin registers a new user account and promotes it to the admin
// role. Intended for bootstrapping the first administrator of a fresh
// installation.
func RunCreateAdmin(ctx context.Context, name, email, password, department string) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	sessionUseCase, err := container.SessionUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize session use case: %w", err)
	}

	user, err := sessionUseCase.Register(ctx, authUseCase.RegisterInput{
		Name:       name,
		Email:      email,
		Password:   password,
		Department: department,
	})
	if err != nil {
		return fmt.Errorf("failed to register admin account: %w", err)
	}

	userRepo, err := container.UserRepository()
	if err != nil {
		return fmt.Errorf("failed to initialize user repository: %w", err)
	}

	if err := userRepo.UpdateRole(ctx, user.ID, authDomain.RoleAdmin); err != nil {
		return fmt.Errorf("failed to promote account to admin: %w", err)
	}

	logger.Info("admin account created",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email),
	)

	fmt.Printf("Admin account created: id=%d email=%s\n", user.ID, user.Email)
	return nil
}
