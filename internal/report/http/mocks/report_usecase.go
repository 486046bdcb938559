// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/safework/safework/internal/auth/domain"
	"github.com/safework/safework/internal/report/domain"
	reportUseCase "github.com/safework/safework/internal/report/usecase"
)

// MockReportUseCase is a mock implementation of ReportUseCase for testing.
type MockReportUseCase struct {
	mock.Mock
}

// Create mocks the Create method of ReportUseCase.
func (m *MockReportUseCase) Create(
	ctx context.Context,
	actor authDomain.Identity,
	input reportUseCase.CreateReportInput,
) (*domain.Report, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

// Get mocks the Get method of ReportUseCase.
func (m *MockReportUseCase) Get(ctx context.Context, id int64) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

// List mocks the List method of ReportUseCase.
func (m *MockReportUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Report, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Report), args.Error(1)
}

// ApplyUpdate mocks the ApplyUpdate method of ReportUseCase.
func (m *MockReportUseCase) ApplyUpdate(
	ctx context.Context,
	actor authDomain.Identity,
	id int64,
	patch domain.UpdatePatch,
) (*domain.Report, error) {
	args := m.Called(ctx, actor, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

// Delete mocks the Delete method of ReportUseCase.
func (m *MockReportUseCase) Delete(ctx context.Context, actor authDomain.Identity, id int64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

// AdminDelete mocks the AdminDelete method of ReportUseCase.
func (m *MockReportUseCase) AdminDelete(ctx context.Context, actor authDomain.Identity, id int64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
