package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/safework/safework/internal/auth/domain"
	apperrors "github.com/safework/safework/internal/errors"
	"github.com/safework/safework/internal/report/domain"
)

// mockReportRepository is a mock implementation of ReportRepository for testing.
type mockReportRepository struct {
	mock.Mock
}

func (m *mockReportRepository) Create(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *mockReportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *mockReportRepository) List(ctx context.Context, offset, limit int) ([]*domain.Report, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Report), args.Error(1)
}

func (m *mockReportRepository) Update(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *mockReportRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }
func strPtr(s string) *string { return &s }

func ownerIdentity() authDomain.Identity {
	return authDomain.Identity{UserID: 7, Role: authDomain.RoleUser}
}

func adminIdentity() authDomain.Identity {
	return authDomain.Identity{UserID: 9, Role: authDomain.RoleAdmin}
}

func freshReport() *domain.Report {
	now := time.Now().UTC()
	return &domain.Report{
		ID:           3,
		ReporterID:   7,
		Title:        "Exposed wiring near line 2",
		Content:      "Cable tray cover missing",
		ReporterRisk: 4,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// newFrozenUseCase returns a use case whose clock is pinned, plus the pin.
func newFrozenUseCase(repo ReportRepository) (ReportUseCase, time.Time) {
	frozen := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	uc := NewReportUseCase(repo).(*reportUseCase)
	uc.now = func() time.Time { return frozen }
	return uc, frozen
}

func TestReportUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_StartsUnchecked", func(t *testing.T) {
		mockRepo := &mockReportRepository{}

		var captured *domain.Report
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Report")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*domain.Report)
			}).
			Return(nil).
			Once()

		uc := NewReportUseCase(mockRepo)
		report, err := uc.Create(ctx, ownerIdentity(), CreateReportInput{
			Title:        "Exposed wiring near line 2",
			Content:      "Cable tray cover missing",
			ReporterRisk: 4,
		})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
		assert.Equal(t, int64(7), captured.ReporterID, "actor becomes the owner")
		assert.False(t, captured.Checked)
		assert.False(t, captured.ActionTaken)
		assert.True(t, captured.Consistent())
		assert.Equal(t, captured, report)
	})

	t.Run("Error_RiskOutOfRange", func(t *testing.T) {
		mockRepo := &mockReportRepository{}
		uc := NewReportUseCase(mockRepo)

		_, err := uc.Create(ctx, ownerIdentity(), CreateReportInput{
			Title:        "Exposed wiring",
			Content:      "details",
			ReporterRisk: 6,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidRiskValue)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_BlankTitle", func(t *testing.T) {
		mockRepo := &mockReportRepository{}
		uc := NewReportUseCase(mockRepo)

		_, err := uc.Create(ctx, ownerIdentity(), CreateReportInput{
			Title:        "   ",
			Content:      "details",
			ReporterRisk: 3,
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestReportUseCase_ApplyUpdate_CheckedTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("CheckedTrue_StampsActorAndTime", func(t *testing.T) {
		mockRepo := &mockReportRepository{}
		mockRepo.On("GetByID", ctx, int64(3)).Return(freshReport(), nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Report")).Return(nil).Once()

		uc, frozen := newFrozenUseCase(mockRepo)
		report, err := uc.ApplyUpdate(ctx, ownerIdentity(), 3, domain.UpdatePatch{
			Checked: boolPtr(true),
		})

		require.NoError(t, err)
		assert.True(t, report.Checked)
		require.NotNil(t, report.CheckerID)
		assert.Equal(t, int64(7), *report.CheckerID)
		require.NotNil(t, report.CheckedAt)
		assert.Equal(t, frozen, *report.CheckedAt)
		assert.True(t, report.Consistent())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Reconfirmation_OverwritesPriorEvidence", func(t *testing.T) {
		earlier := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		already := freshReport()
		already.Checked = true
		already.CheckerID = int64Ptr(8)
		already.CheckedAt = &earlier

		mockRepo := &mockReportRepository{}
		mockRepo.On("GetByID", ctx, int64(3)).Return(already, nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Report")).Return(nil).Once()

		uc, frozen := newFrozenUseCase(mockRepo)
		report, err := uc.ApplyUpdate(ctx, ownerIdentity(), 3, domain.UpdatePatch{
			Checked: boolPtr(true),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), *report.CheckerID, "confirming actor replaces prior checker")
		assert.Equal(t, frozen, *report.CheckedAt, "timestamp refreshes, never preserved")
	})

	t.Run("CheckedFalse_ClearsEvidencePair", func(t *testing.T) {
		now := time.Now().UTC()
		already := freshReport()
		already.Checked = true
		already.CheckerID = int64Ptr(7)
		already.CheckedAt = &now

		mockRepo := &mockReportRepository{}
		mockRepo.On("GetByID", ctx, int64(3)).Return(already, nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Report")).Return(nil).Once()

		uc, _ := newFrozenUseCase(mockRepo)
		report, err := uc.ApplyUpdate(ctx, ownerIdentity(), 3, domain.UpdatePatch{
			Checked: boolPtr(false),
		})

		require.NoError(t, err)
		assert.False(t, report.Checked)
		assert.Nil(t, report.CheckerID)
		assert.Nil(t, report.CheckedAt)
		assert.True(t, report.Consistent())
	})
}

func TestReportUseCase_ApplyUpdate_ActionTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("ActionTaken_DefaultsToActor", func(t *testing.T) {
		mockRepo := &mockReportRepository{}
		mockRepo.On("GetByID", ctx, int64(3)).Return(freshReport(), nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Report")).Return(nil).Once()

		uc, frozen := newFrozenUseCase(mockRepo)
		report, err := uc.ApplyUpdate(ctx, ownerIdentity(), 3, domain.UpdatePatch{
			ActionTaken: boolPtr(true),
		})

		require.NoError(t, err)
		assert.True(t, report.ActionTaken)
		assert.Equal(t, int64(7), *report.ActionTakerID)
		assert.Equal(t, frozen, *report.ActionTakenAt)
	})

	t.Run("ActionTaken_ExplicitTakerFromAdmin", func(t *testing.T) {
		mockRepo := &mockReportRepository{}
		mockRepo.On("GetByID", ctx, int64(3)).Return(freshReport(), nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Report")).Return(nil).Once()

		uc, _ := newFrozenUseCase(mockRepo)
		report, err := uc.ApplyUpdate(ctx, adminIdentity(), 3, domain.UpdatePatch{
			ActionTaken:   boolPtr(true),
			ActionTakerID: int64Ptr(8),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(8), *report.ActionTakerID)
	})
}

func TestReportUseCase_ApplyUpdate_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Error_NotFound", func(t *testing.T) {
		mockRepo := &mockReportRepository{}
		mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrReportNotFound).Once()

		uc, _ := newFrozenUseCase(mockRepo)
		_, err := uc.ApplyUpdate(ctx, ownerIdentity(), 99, domain.UpdatePatch{
			Checked: boolPtr(true),
		})

		assert.ErrorIs(t, err, domain.ErrReportNotFound)
	})

	t.Run("Error_Forbidden_NothingPersisted", func(t *testing.T) {
		mockRepo := &mockReportRepository{}
		mockRepo.On("GetByID", ctx, int64(3)).Return(freshReport(), nil).Once()

		uc, _ := newFrozenUseCase(mockRepo)
		unrelated := authDomain.Identity{UserID: 10, Role: authDomain.RoleUser}
		_, err := uc.ApplyUpdate(ctx, unrelated, 3, domain.UpdatePatch{
			Checked: boolPtr(true),
		})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Error_EmptyPatch", func(t *testing.T) {
		mockRepo := &mockReportRepository{}
		uc, _ := newFrozenUseCase(mockRepo)

		_, err := uc.ApplyUpdate(ctx, ownerIdentity(), 3, domain.UpdatePatch{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Error_ManagerRiskOutOfRange", func(t *testing.T) {
		mockRepo := &mockReportRepository{}
		uc, _ := newFrozenUseCase(mockRepo)

		_, err := uc.ApplyUpdate(ctx, adminIdentity(), 3, domain.UpdatePatch{
			ManagerRisk: intPtr(0),
		})

		assert.ErrorIs(t, err, domain.ErrInvalidRiskValue)
	})

	t.Run("FullEdit_OwnerUpdatesBody", func(t *testing.T) {
		mockRepo := &mockReportRepository{}
		mockRepo.On("GetByID", ctx, int64(3)).Return(freshReport(), nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Report")).Return(nil).Once()

		uc, _ := newFrozenUseCase(mockRepo)
		report, err := uc.ApplyUpdate(ctx, ownerIdentity(), 3, domain.UpdatePatch{
			Title:        strPtr("updated title"),
			ReporterRisk: intPtr(5),
		})

		require.NoError(t, err)
		assert.Equal(t, "updated title", report.Title)
		assert.Equal(t, 5, report.ReporterRisk)
	})
}

func TestReportUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Owner", func(t *testing.T) {
		mockRepo := &mockReportRepository{}
		mockRepo.On("GetByID", ctx, int64(3)).Return(freshReport(), nil).Once()
		mockRepo.On("Delete", ctx, int64(3)).Return(nil).Once()

		uc := NewReportUseCase(mockRepo)
		assert.NoError(t, uc.Delete(ctx, ownerIdentity(), 3))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_AdminHasNoBypass", func(t *testing.T) {
		mockRepo := &mockReportRepository{}
		mockRepo.On("GetByID", ctx, int64(3)).Return(freshReport(), nil).Once()

		uc := NewReportUseCase(mockRepo)
		err := uc.Delete(ctx, adminIdentity(), 3)

		assert.ErrorIs(t, err, domain.ErrReportAccessDenied)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}

func TestReportUseCase_AdminDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Admin", func(t *testing.T) {
		mockRepo := &mockReportRepository{}
		mockRepo.On("Delete", ctx, int64(3)).Return(nil).Once()

		uc := NewReportUseCase(mockRepo)
		assert.NoError(t, uc.AdminDelete(ctx, adminIdentity(), 3))
	})

	t.Run("Error_RegularUser", func(t *testing.T) {
		mockRepo := &mockReportRepository{}

		uc := NewReportUseCase(mockRepo)
		err := uc.AdminDelete(ctx, ownerIdentity(), 3)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}
