package repository

import (
	"context"
	"database/sql"

	"github.com/safework/safework/internal/database"
	apperrors "github.com/safework/safework/internal/errors"
	"github.com/safework/safework/internal/report/domain"
)

// MySQLReportRepository handles report persistence for MySQL.
type MySQLReportRepository struct {
	db *sql.DB
}

// NewMySQLReportRepository creates a new MySQLReportRepository.
func NewMySQLReportRepository(db *sql.DB) *MySQLReportRepository {
	return &MySQLReportRepository{db: db}
}

// Create inserts a new report and fills in the generated ID.
func (r *MySQLReportRepository) Create(ctx context.Context, report *domain.Report) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO reports (reporter_id, title, content, reporter_risk, is_checked, is_action_taken, created_at, updated_at)
			  VALUES (?, ?, ?, ?, FALSE, FALSE, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query,
		report.ReporterID, report.Title, report.Content, report.ReporterRisk,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create report")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read generated report id")
	}
	report.ID = id
	return nil
}

// GetByID retrieves a report by ID.
func (r *MySQLReportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = ?`

	return scanReport(querier.QueryRowContext(ctx, query, id))
}

// List retrieves reports ordered by creation time descending (newest first).
func (r *MySQLReportRepository) List(ctx context.Context, offset, limit int) ([]*domain.Report, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list reports")
	}
	defer rows.Close()

	return collectReports(rows)
}

// Update persists the mutable fields of a report.
func (r *MySQLReportRepository) Update(ctx context.Context, report *domain.Report) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE reports
			  SET title = ?, content = ?, reporter_risk = ?, manager_risk = ?,
			      is_checked = ?, checker_id = ?, checked_at = ?,
			      is_action_taken = ?, action_taker_id = ?, action_taken_at = ?,
			      updated_at = NOW()
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		report.Title, report.Content, report.ReporterRisk, report.ManagerRisk,
		report.Checked, report.CheckerID, report.CheckedAt,
		report.ActionTaken, report.ActionTakerID, report.ActionTakenAt,
		report.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update report")
	}
	return requireReportRow(result)
}

// Delete removes a report.
func (r *MySQLReportRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete report")
	}
	return requireReportRow(result)
}
