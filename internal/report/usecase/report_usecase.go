package usecase

import (
	"context"
	"time"

	validation "github.com/jellydator/validation"

	authDomain "github.com/safework/safework/internal/auth/domain"
	apperrors "github.com/safework/safework/internal/errors"
	"github.com/safework/safework/internal/report/domain"
	appValidation "github.com/safework/safework/internal/validation"
)

// reportUseCase implements ReportUseCase.
type reportUseCase struct {
	reportRepo ReportRepository

	// now is swappable for tests.
	now func() time.Time
}

// NewReportUseCase creates a new ReportUseCase with the provided dependencies.
func NewReportUseCase(reportRepo ReportRepository) ReportUseCase {
	return &reportUseCase{
		reportRepo: reportRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *reportUseCase) validateCreateInput(input CreateReportInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&input.Content,
			validation.Required.Error("content is required"),
			appValidation.NotBlank,
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}
	if !domain.ValidRiskScore(input.ReporterRisk) {
		return domain.ErrInvalidRiskValue
	}
	return nil
}

// Create files a new report in the unchecked/not-actioned state.
func (r *reportUseCase) Create(
	ctx context.Context,
	actor authDomain.Identity,
	input CreateReportInput,
) (*domain.Report, error) {
	if err := r.validateCreateInput(input); err != nil {
		return nil, err
	}

	report := &domain.Report{
		ReporterID:   actor.UserID,
		Title:        input.Title,
		Content:      input.Content,
		ReporterRisk: input.ReporterRisk,
	}
	if err := r.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// Get retrieves a single report.
func (r *reportUseCase) Get(ctx context.Context, id int64) (*domain.Report, error) {
	return r.reportRepo.GetByID(ctx, id)
}

// List retrieves reports newest first.
func (r *reportUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Report, error) {
	reports, err := r.reportRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list reports")
	}
	return reports, nil
}

func validatePatch(patch domain.UpdatePatch) error {
	if patch.IsEmpty() {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "update contains no fields")
	}
	if patch.ReporterRisk != nil && !domain.ValidRiskScore(*patch.ReporterRisk) {
		return domain.ErrInvalidRiskValue
	}
	if patch.ManagerRisk != nil && !domain.ValidRiskScore(*patch.ManagerRisk) {
		return domain.ErrInvalidRiskValue
	}
	if patch.Title != nil && *patch.Title == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "title must not be empty")
	}
	return nil
}

// ApplyUpdate runs one lifecycle transition.
//
// Setting a workflow boolean to true stamps the actor and the current time,
// unconditionally overwriting any prior evidence: re-confirming an
// already-checked report refreshes the timestamp. Setting it to false clears
// both, fully un-confirming. This keeps the invariant that a workflow boolean
// and its evidence pair change together.
func (r *reportUseCase) ApplyUpdate(
	ctx context.Context,
	actor authDomain.Identity,
	id int64,
	patch domain.UpdatePatch,
) (*domain.Report, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	report, err := r.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Decide(actor, report, patch); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		report.Title = *patch.Title
	}
	if patch.Content != nil {
		report.Content = *patch.Content
	}
	if patch.ReporterRisk != nil {
		report.ReporterRisk = *patch.ReporterRisk
	}
	if patch.ManagerRisk != nil {
		risk := *patch.ManagerRisk
		report.ManagerRisk = &risk
	}

	if patch.Checked != nil {
		if *patch.Checked {
			checkerID := actor.UserID
			checkedAt := r.now()
			report.Checked = true
			report.CheckerID = &checkerID
			report.CheckedAt = &checkedAt
		} else {
			report.Checked = false
			report.CheckerID = nil
			report.CheckedAt = nil
		}
	}

	if patch.ActionTaken != nil {
		if *patch.ActionTaken {
			takerID := actor.UserID
			if patch.ActionTakerID != nil {
				takerID = *patch.ActionTakerID
			}
			actionTakenAt := r.now()
			report.ActionTaken = true
			report.ActionTakerID = &takerID
			report.ActionTakenAt = &actionTakenAt
		} else {
			report.ActionTaken = false
			report.ActionTakerID = nil
			report.ActionTakenAt = nil
		}
	}

	if err := r.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// Delete removes a report. Owner-only, no admin bypass.
func (r *reportUseCase) Delete(ctx context.Context, actor authDomain.Identity, id int64) error {
	report, err := r.reportRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.DecideDelete(actor, report); err != nil {
		return err
	}
	return r.reportRepo.Delete(ctx, id)
}

// AdminDelete removes any report regardless of ownership. Admin-only.
func (r *reportUseCase) AdminDelete(ctx context.Context, actor authDomain.Identity, id int64) error {
	if !actor.IsAdmin() {
		return apperrors.Wrap(apperrors.ErrForbidden, "forced report deletion requires admin role")
	}
	return r.reportRepo.Delete(ctx, id)
}
