package usecase

import (
	"context"
	"time"

	"github.com/safework/safework/internal/auth/domain"
	"github.com/safework/safework/internal/metrics"
)

// sessionUseCaseWithMetrics decorates SessionUseCase with metrics instrumentation.
type sessionUseCaseWithMetrics struct {
	next    SessionUseCase
	metrics metrics.BusinessMetrics
}

// NewSessionUseCaseWithMetrics wraps a SessionUseCase with metrics recording.
func NewSessionUseCaseWithMetrics(useCase SessionUseCase, m metrics.BusinessMetrics) SessionUseCase {
	return &sessionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for account registration.
func (s *sessionUseCaseWithMetrics) Register(
	ctx context.Context,
	input RegisterInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := s.next.Register(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", "register", status)
	s.metrics.RecordDuration(ctx, "session", "register", time.Since(start), status)

	return user, err
}

// Login records metrics for login operations.
func (s *sessionUseCaseWithMetrics) Login(
	ctx context.Context,
	email, password string,
) (*SessionOutput, error) {
	start := time.Now()
	output, err := s.next.Login(ctx, email, password)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", "login", status)
	s.metrics.RecordDuration(ctx, "session", "login", time.Since(start), status)

	return output, err
}

// Refresh records metrics for access token refresh operations.
func (s *sessionUseCaseWithMetrics) Refresh(
	ctx context.Context,
	refreshToken string,
) (*SessionOutput, error) {
	start := time.Now()
	output, err := s.next.Refresh(ctx, refreshToken)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", "refresh", status)
	s.metrics.RecordDuration(ctx, "session", "refresh", time.Since(start), status)

	return output, err
}

// Logout records metrics for logout operations. Logout never fails, so the
// status is always success.
func (s *sessionUseCaseWithMetrics) Logout(ctx context.Context, refreshToken string) {
	start := time.Now()
	s.next.Logout(ctx, refreshToken)

	s.metrics.RecordOperation(ctx, "session", "logout", "success")
	s.metrics.RecordDuration(ctx, "session", "logout", time.Since(start), "success")
}
