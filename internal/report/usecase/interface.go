// Package usecase implements the safety report review workflow.
package usecase

import (
	"context"

	authDomain "github.com/safework/safework/internal/auth/domain"
	"github.com/safework/safework/internal/report/domain"
)

// ReportRepository defines persistence operations for reports.
// Implementations must support transaction-aware operations via context propagation.
type ReportRepository interface {
	// Create stores a new report and fills in the generated ID.
	Create(ctx context.Context, report *domain.Report) error

	// GetByID retrieves a report by ID. Returns ErrReportNotFound if not found.
	GetByID(ctx context.Context, id int64) (*domain.Report, error)

	// List retrieves reports newest first.
	List(ctx context.Context, offset, limit int) ([]*domain.Report, error)

	// Update persists the mutable fields of a report.
	Update(ctx context.Context, report *domain.Report) error

	// Delete removes a report. Returns ErrReportNotFound if not found.
	Delete(ctx context.Context, id int64) error
}

// CreateReportInput contains the input data for filing a new report.
type CreateReportInput struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	ReporterRisk int    `json:"reporterRisk"`
}

// ReportUseCase defines the report lifecycle operations. Every operation
// takes the acting identity; authorization is decided here, not in handlers.
type ReportUseCase interface {
	// Create files a new report owned by the actor, in the
	// unchecked/not-actioned state.
	Create(ctx context.Context, actor authDomain.Identity, input CreateReportInput) (*domain.Report, error)

	// Get retrieves a single report.
	Get(ctx context.Context, id int64) (*domain.Report, error)

	// List retrieves reports newest first.
	List(ctx context.Context, offset, limit int) ([]*domain.Report, error)

	// ApplyUpdate runs one lifecycle transition: load, authorize, derive
	// actor/timestamp bookkeeping, persist, return the updated record.
	ApplyUpdate(ctx context.Context, actor authDomain.Identity, id int64, patch domain.UpdatePatch) (*domain.Report, error)

	// Delete removes a report, owner-only.
	Delete(ctx context.Context, actor authDomain.Identity, id int64) error

	// AdminDelete removes any report, admin-only.
	AdminDelete(ctx context.Context, actor authDomain.Identity, id int64) error
}
