// Package domain defines the safety report entity and its review workflow rules.
package domain

import (
	"time"

	"github.com/safework/safework/internal/errors"
)

// Report is a safety report moving through the review workflow:
// unchecked → checked → action taken.
//
// Invariant: each workflow boolean and its evidence pair are set or cleared
// together. Checked==false implies CheckerID==nil && CheckedAt==nil, and the
// same holds for ActionTaken/ActionTakerID/ActionTakenAt.
type Report struct {
	ID           int64
	ReporterID   int64
	Title        string
	Content      string
	ReporterRisk int

	// ManagerRisk is the admin-only risk assessment, nil until assessed.
	ManagerRisk *int

	Checked   bool
	CheckerID *int64
	CheckedAt *time.Time

	ActionTaken   bool
	ActionTakerID *int64
	ActionTakenAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Consistent reports whether the workflow booleans agree with their
// evidence pairs.
func (r *Report) Consistent() bool {
	if r.Checked != (r.CheckerID != nil && r.CheckedAt != nil) {
		return false
	}
	if !r.Checked && (r.CheckerID != nil || r.CheckedAt != nil) {
		return false
	}
	if r.ActionTaken != (r.ActionTakerID != nil && r.ActionTakenAt != nil) {
		return false
	}
	if !r.ActionTaken && (r.ActionTakerID != nil || r.ActionTakenAt != nil) {
		return false
	}
	return true
}

// Domain-specific errors for report operations.
var (
	// ErrReportNotFound indicates the requested report does not exist.
	ErrReportNotFound = errors.Wrap(errors.ErrNotFound, "report not found")

	// ErrReportAccessDenied indicates the actor is not allowed to perform
	// the requested operation on the report.
	ErrReportAccessDenied = errors.Wrap(errors.ErrForbidden, "not allowed to modify this report")

	// ErrManagerRiskAdminOnly indicates a non-admin tried to set the manager
	// risk assessment.
	ErrManagerRiskAdminOnly = errors.Wrap(errors.ErrForbidden, "manager risk assessment requires admin role")

	// ErrInvalidRiskValue indicates a risk score outside the 1..5 scale.
	ErrInvalidRiskValue = errors.Wrap(errors.ErrInvalidInput, "risk score must be between 1 and 5")
)

// Risk score bounds for reporter and manager assessments.
const (
	MinRiskScore = 1
	MaxRiskScore = 5
)

// ValidRiskScore reports whether a risk score is on the 1..5 scale.
func ValidRiskScore(score int) bool {
	return score >= MinRiskScore && score <= MaxRiskScore
}
