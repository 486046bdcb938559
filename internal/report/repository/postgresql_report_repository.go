// Package repository provides data persistence implementations for safety reports.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/safework/safework/internal/database"
	apperrors "github.com/safework/safework/internal/errors"
	"github.com/safework/safework/internal/report/domain"
)

const reportColumns = `id, reporter_id, title, content, reporter_risk, manager_risk,
		is_checked, checker_id, checked_at, is_action_taken, action_taker_id, action_taken_at,
		created_at, updated_at`

// PostgreSQLReportRepository handles report persistence for PostgreSQL.
type PostgreSQLReportRepository struct {
	db *sql.DB
}

// NewPostgreSQLReportRepository creates a new PostgreSQLReportRepository.
func NewPostgreSQLReportRepository(db *sql.DB) *PostgreSQLReportRepository {
	return &PostgreSQLReportRepository{db: db}
}

// Create inserts a new report and fills in the generated ID.
func (r *PostgreSQLReportRepository) Create(ctx context.Context, report *domain.Report) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO reports (reporter_id, title, content, reporter_risk, is_checked, is_action_taken, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, FALSE, FALSE, NOW(), NOW())
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		report.ReporterID, report.Title, report.Content, report.ReporterRisk,
	).Scan(&report.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create report")
	}
	return nil
}

// GetByID retrieves a report by ID.
func (r *PostgreSQLReportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

	return scanReport(querier.QueryRowContext(ctx, query, id))
}

// List retrieves reports ordered by creation time descending (newest first).
func (r *PostgreSQLReportRepository) List(ctx context.Context, offset, limit int) ([]*domain.Report, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list reports")
	}
	defer rows.Close()

	return collectReports(rows)
}

// Update persists the mutable fields of a report.
func (r *PostgreSQLReportRepository) Update(ctx context.Context, report *domain.Report) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE reports
			  SET title = $1, content = $2, reporter_risk = $3, manager_risk = $4,
			      is_checked = $5, checker_id = $6, checked_at = $7,
			      is_action_taken = $8, action_taker_id = $9, action_taken_at = $10,
			      updated_at = NOW()
			  WHERE id = $11`

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
func (r *PostgreSQLReportRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete report")
	}
	return requireReportRow(result)
}

// scanReport scans a single report row, translating sql.ErrNoRows.
func scanReport(row *sql.Row) (*domain.Report, error) {
	var report domain.Report
	err := row.Scan(
		&report.ID, &report.ReporterID, &report.Title, &report.Content,
		&report.ReporterRisk, &report.ManagerRisk,
		&report.Checked, &report.CheckerID, &report.CheckedAt,
		&report.ActionTaken, &report.ActionTakerID, &report.ActionTakenAt,
		&report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get report")
	}
	return &report, nil
}

// collectReports scans all rows into a slice.
func collectReports(rows *sql.Rows) ([]*domain.Report, error) {
	var reports []*domain.Report
	for rows.Next() {
		var report domain.Report
		err := rows.Scan(
			&report.ID, &report.ReporterID, &report.Title, &report.Content,
			&report.ReporterRisk, &report.ManagerRisk,
			&report.Checked, &report.CheckerID, &report.CheckedAt,
			&report.ActionTaken, &report.ActionTakerID, &report.ActionTakenAt,
			&report.CreatedAt, &report.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan report row")
		}
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate report rows")
	}
	return reports, nil
}

// requireReportRow returns ErrReportNotFound when the statement matched no rows.
func requireReportRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read rows affected")
	}
	if affected == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}
