// Package dto provides data transfer objects for report HTTP handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/safework/safework/internal/report/domain"
	customValidation "github.com/safework/safework/internal/validation"
)

// CreateReportRequest contains the parameters for filing a new report.
type CreateReportRequest struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	ReporterRisk int    `json:"reporterRisk"`
}

// Validate checks if the create report request is valid.
func (r *CreateReportRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Content,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.ReporterRisk,
			validation.Required,
			validation.Min(domain.MinRiskScore),
			validation.Max(domain.MaxRiskScore),
		),
	)
}

// UpdateReportRequest carries a lifecycle update. Absent fields are left
// unchanged; JSON null and absent are equivalent here.
type UpdateReportRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	ReporterRisk  *int    `json:"reporterRisk"`
	Checked       *bool   `json:"checked"`
	ActionTaken   *bool   `json:"actionTaken"`
	ManagerRisk   *int    `json:"managerRisk"`
	ActionTakerID *int64  `json:"actionTakerId"`
}

// ToPatch converts the request into the typed update command set.
func (r *UpdateReportRequest) ToPatch() domain.UpdatePatch {
	return domain.UpdatePatch{
		Title:         r.Title,
		Content:       r.Content,
		ReporterRisk:  r.ReporterRisk,
		Checked:       r.Checked,
		ActionTaken:   r.ActionTaken,
		ManagerRisk:   r.ManagerRisk,
		ActionTakerID: r.ActionTakerID,
	}
}
