package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/safework/safework/internal/auth/domain"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// mockSessionUseCase is a local mock for SessionUseCase used by decorator tests.
type mockSessionUseCase struct {
	mock.Mock
}

func (m *mockSessionUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockSessionUseCase) Login(ctx context.Context, email, password string) (*SessionOutput, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SessionOutput), args.Error(1)
}

func (m *mockSessionUseCase) Refresh(ctx context.Context, refreshToken string) (*SessionOutput, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SessionOutput), args.Error(1)
}

func (m *mockSessionUseCase) Logout(ctx context.Context, refreshToken string) {
	m.Called(ctx, refreshToken)
}

func TestSessionUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Login success", func(t *testing.T) {
		mockNext := &mockSessionUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewSessionUseCaseWithMetrics(mockNext, mockMetrics)

		output := &SessionOutput{AccessToken: "access", UserID: 7, Role: domain.RoleUser}

		mockNext.On("Login", ctx, "user@example.com", "password123").Return(output, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "session", "login", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "session", "login", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Login(ctx, "user@example.com", "password123")
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Login error", func(t *testing.T) {
		mockNext := &mockSessionUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewSessionUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Login", ctx, "user@example.com", "wrong").Return(nil, domain.ErrInvalidCredentials).Once()
		mockMetrics.On("RecordOperation", ctx, "session", "login", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "session", "login", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Login(ctx, "user@example.com", "wrong")
		assert.Error(t, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Refresh success", func(t *testing.T) {
		mockNext := &mockSessionUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewSessionUseCaseWithMetrics(mockNext, mockMetrics)

		output := &SessionOutput{AccessToken: "access", UserID: 7, Role: domain.RoleUser}

		mockNext.On("Refresh", ctx, "refresh-token").Return(output, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "session", "refresh", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "session", "refresh", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Refresh(ctx, "refresh-token")
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Logout always records success", func(t *testing.T) {
		mockNext := &mockSessionUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewSessionUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Logout", ctx, "refresh-token").Return().Once()
		mockMetrics.On("RecordOperation", ctx, "session", "logout", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "session", "logout", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		uc.Logout(ctx, "refresh-token")
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
