package domain

import (
	authDomain "github.com/safework/safework/internal/auth/domain"
)

// UpdatePatch is the closed set of fields a lifecycle update may touch.
// Nil means "leave unchanged". Anything the HTTP layer cannot decode into
// this struct is rejected at the boundary; no stringly-typed field maps
// travel past the DTO.
type UpdatePatch struct {
	Title        *string
	Content      *string
	ReporterRisk *int

	Checked     *bool
	ActionTaken *bool
	ManagerRisk *int

	// ActionTakerID assigns the action taker explicitly instead of
	// defaulting to the acting user. Only meaningful together with
	// ActionTaken.
	ActionTakerID *int64
}

// IsEmpty reports whether the patch touches nothing.
func (p UpdatePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.ReporterRisk == nil &&
		p.Checked == nil && p.ActionTaken == nil && p.ManagerRisk == nil &&
		p.ActionTakerID == nil
}

// reviewOnly reports whether the patch is restricted to the review field
// set {checked, actionTaken, managerRisk, actionTakerID}.
func (p UpdatePatch) reviewOnly() bool {
	return p.Title == nil && p.Content == nil && p.ReporterRisk == nil
}

// Decide applies the authorization rules for a lifecycle update, in order:
//
//  1. Manager risk assessment requires the admin role, independent of
//     ownership.
//  2. A patch restricted to the review field set is allowed for the owner,
//     the current action taker, or any admin.
//  3. Any patch touching the report body (title, content, reporter risk) is
//     a full edit and is owner-only. Admins get no bypass here.
//
// Returns nil on allow, an error wrapping ErrForbidden on deny.
func Decide(actor authDomain.Identity, report *Report, patch UpdatePatch) error {
	if patch.ManagerRisk != nil && !actor.IsAdmin() {
		return ErrManagerRiskAdminOnly
	}

	if patch.reviewOnly() {
		if actor.UserID == report.ReporterID || actor.IsAdmin() {
			return nil
		}
		if report.ActionTakerID != nil && actor.UserID == *report.ActionTakerID {
			return nil
		}
		return ErrReportAccessDenied
	}

	if actor.UserID != report.ReporterID {
		return ErrReportAccessDenied
	}
	return nil
}

// DecideDelete applies the deletion rule: owner-only, with no admin bypass
// on this path. Admin-forced deletion is a separate operation behind the
// admin surface.
func DecideDelete(actor authDomain.Identity, report *Report) error {
	if actor.UserID != report.ReporterID {
		return ErrReportAccessDenied
	}
	return nil
}
