// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/safework/safework/internal/auth/domain"
)

// MockAdminUseCase is a mock implementation of AdminUseCase for testing.
type MockAdminUseCase struct {
	mock.Mock
}

// ListUsers mocks the ListUsers method of AdminUseCase.
func (m *MockAdminUseCase) ListUsers(
	ctx context.Context,
	actor authDomain.Identity,
	department string,
	offset, limit int,
) ([]*authDomain.User, error) {
	args := m.Called(ctx, actor, department, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authDomain.User), args.Error(1)
}

// GetUser mocks the GetUser method of AdminUseCase.
func (m *MockAdminUseCase) GetUser(
	ctx context.Context,
	actor authDomain.Identity,
	id int64,
) (*authDomain.User, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

// UpdatePermission mocks the UpdatePermission method of AdminUseCase.
func (m *MockAdminUseCase) UpdatePermission(
	ctx context.Context,
	actor authDomain.Identity,
	targetID int64,
	grantAdmin bool,
) (*authDomain.User, error) {
	args := m.Called(ctx, actor, targetID, grantAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

// DeleteUser mocks the DeleteUser method of AdminUseCase.
func (m *MockAdminUseCase) DeleteUser(ctx context.Context, actor authDomain.Identity, id int64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
