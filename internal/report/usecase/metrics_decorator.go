package usecase

import (
	"context"
	"time"

	authDomain "github.com/safework/safework/internal/auth/domain"
	"github.com/safework/safework/internal/metrics"
	"github.com/safework/safework/internal/report/domain"
)

// reportUseCaseWithMetrics decorates ReportUseCase with metrics instrumentation.
type reportUseCaseWithMetrics struct {
	next    ReportUseCase
	metrics metrics.BusinessMetrics
}

// NewReportUseCaseWithMetrics wraps a ReportUseCase with metrics recording.
func NewReportUseCaseWithMetrics(useCase ReportUseCase, m metrics.BusinessMetrics) ReportUseCase {
	return &reportUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (r *reportUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "report", operation, status)
	r.metrics.RecordDuration(ctx, "report", operation, time.Since(start), status)
}

// Create records metrics for report creation.
func (r *reportUseCaseWithMetrics) Create(
	ctx context.Context,
	actor authDomain.Identity,
	input CreateReportInput,
) (*domain.Report, error) {
	start := time.Now()
	report, err := r.next.Create(ctx, actor, input)
	r.record(ctx, "create", start, err)
	return report, err
}

// Get records metrics for single report retrieval.
func (r *reportUseCaseWithMetrics) Get(ctx context.Context, id int64) (*domain.Report, error) {
	start := time.Now()
	report, err := r.next.Get(ctx, id)
	r.record(ctx, "get", start, err)
	return report, err
}

// List records metrics for report listing.
func (r *reportUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.Report, error) {
	start := time.Now()
	reports, err := r.next.List(ctx, offset, limit)
	r.record(ctx, "list", start, err)
	return reports, err
}

// ApplyUpdate records metrics for lifecycle transitions.
func (r *reportUseCaseWithMetrics) ApplyUpdate(
	ctx context.Context,
	actor authDomain.Identity,
	id int64,
	patch domain.UpdatePatch,
) (*domain.Report, error) {
	start := time.Now()
	report, err := r.next.ApplyUpdate(ctx, actor, id, patch)
	r.record(ctx, "update", start, err)
	return report, err
}

// Delete records metrics for owner deletions.
func (r *reportUseCaseWithMetrics) Delete(ctx context.Context, actor authDomain.Identity, id int64) error {
	start := time.Now()
	err := r.next.Delete(ctx, actor, id)
	r.record(ctx, "delete", start, err)
	return err
}

// AdminDelete records metrics for forced deletions.
func (r *reportUseCaseWithMetrics) AdminDelete(ctx context.Context, actor authDomain.Identity, id int64) error {
	start := time.Now()
	err := r.next.AdminDelete(ctx, actor, id)
	r.record(ctx, "admin_delete", start, err)
	return err
}
