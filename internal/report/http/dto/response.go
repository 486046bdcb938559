package dto

import (
	"time"

	"github.com/safework/safework/internal/report/domain"
)

// ReportResponse is the public representation of a report.
type ReportResponse struct {
	ID           int64  `json:"id"`
	ReporterID   int64  `json:"reporterId"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	ReporterRisk int    `json:"reporterRisk"`
	ManagerRisk  *int   `json:"managerRisk"`

	Checked   bool       `json:"checked"`
	CheckerID *int64     `json:"checkerId"`
	CheckedAt *time.Time `json:"checkedAt"`

	ActionTaken   bool       `json:"actionTaken"`
	ActionTakerID *int64     `json:"actionTakerId"`
	ActionTakenAt *time.Time `json:"actionTakenAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewReportResponse converts a domain report to its response representation.
func NewReportResponse(report *domain.Report) ReportResponse {
	return ReportResponse{
		ID:            report.ID,
		ReporterID:    report.ReporterID,
		Title:         report.Title,
		Content:       report.Content,
		ReporterRisk:  report.ReporterRisk,
		ManagerRisk:   report.ManagerRisk,
		Checked:       report.Checked,
		CheckerID:     report.CheckerID,
		CheckedAt:     report.CheckedAt,
		ActionTaken:   report.ActionTaken,
		ActionTakerID: report.ActionTakerID,
		ActionTakenAt: report.ActionTakenAt,
		CreatedAt:     report.CreatedAt,
		UpdatedAt:     report.UpdatedAt,
	}
}

// NewReportListResponse converts a slice of reports, never returning nil.
func NewReportListResponse(reports []*domain.Report) []ReportResponse {
	responses := make([]ReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, NewReportResponse(report))
	}
	return responses
}
