package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/allisson/go-pwdhash"
	validation "github.com/jellydator/validation"

	"github.com/safework/safework/internal/auth/domain"
	apperrors "github.com/safework/safework/internal/errors"
	appValidation "github.com/safework/safework/internal/validation"
)

// sessionUseCase implements SessionUseCase.
type sessionUseCase struct {
	userRepo       UserRepository
	tokenProvider  TokenProvider
	ledger         SessionLedger
	passwordHasher *pwdhash.PasswordHasher
	accessTTL      time.Duration
	refreshTTL     time.Duration
}

// NewSessionUseCase creates a new SessionUseCase with the provided dependencies.
func NewSessionUseCase(
	userRepo UserRepository,
	tokenProvider TokenProvider,
	ledger SessionLedger,
	accessTTL, refreshTTL time.Duration,
) (SessionUseCase, error) {
	// Interactive policy for user-facing password verification latency
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &sessionUseCase{
		userRepo:       userRepo,
		tokenProvider:  tokenProvider,
		ledger:         ledger,
		passwordHasher: hasher,
		accessTTL:      accessTTL,
		refreshTTL:     refreshTTL,
	}, nil
}

func (s *sessionUseCase) validateRegisterInput(input RegisterInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:     8,
				RequireUpper:  true,
				RequireLower:  true,
				RequireNumber: true,
			},
		),
		validation.Field(&input.Department,
			validation.Length(0, 255).Error("department must be at most 255 characters"),
		),
		validation.Field(&input.Position,
			validation.Length(0, 255).Error("position must be at most 255 characters"),
		),
		validation.Field(&input.PhoneNumber,
			validation.Length(0, 32).Error("phone number must be at most 32 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register creates a new user account with an argon2id password hash.
// New accounts always start with the regular user role.
func (s *sessionUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := s.validateRegisterInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := s.passwordHasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		Name:        input.Name,
		Email:       input.Email,
		Password:    hashedPassword,
		Role:        domain.RoleUser,
		Department:  input.Department,
		Position:    input.Position,
		PhoneNumber: input.PhoneNumber,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and opens a session. The unknown-email and
// wrong-password paths collapse into one error so callers cannot probe
// which addresses are registered.
func (s *sessionUseCase) Login(ctx context.Context, email, password string) (*SessionOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.passwordHasher.Verify([]byte(password), user.Password)
	if err != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokenProvider.IssueAccess(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, jti, err := s.tokenProvider.IssueRefresh(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.ledger.Register(user.ID, jti, s.refreshTTL)

	return &SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
		UserID:       user.ID,
		Role:         user.Role,
	}, nil
}

// Refresh mints a new access token. The refresh credential itself is left
// alone: it stays valid until it expires or the session is revoked.
func (s *sessionUseCase) Refresh(ctx context.Context, refreshToken string) (*SessionOutput, error) {
	claims, err := s.tokenProvider.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	if !s.ledger.IsLive(userID, claims.JTI()) {
		return nil, domain.ErrSessionRevoked
	}

	accessToken, err := s.tokenProvider.IssueAccess(userID, claims.Role)
	if err != nil {
		return nil, err
	}

	return &SessionOutput{
		AccessToken: accessToken,
		ExpiresIn:   int64(s.accessTTL.Seconds()),
		UserID:      userID,
		Role:        claims.Role,
	}, nil
}

// Logout revokes the session, tolerating any credential the client presents.
// An expired but structurally sound token still names the session to revoke;
// anything unparseable is silently ignored so the client can always clear
// its cookie.
func (s *sessionUseCase) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}
	claims, err := s.tokenProvider.ExtractUnverified(refreshToken)
	if err != nil {
		return
	}
	userID, err := claims.UserID()
	if err != nil || claims.JTI() == "" {
		return
	}
	s.ledger.Revoke(userID, claims.JTI())
}
