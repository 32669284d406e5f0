package service

import (
	"strings"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"

	"github.com/google/uuid"
)

// EffectKind names a follow-up action a transition asks the caller to perform
type EffectKind string

const (
	EffectPersistAssignment     EffectKind = "PERSIST_ASSIGNMENT"
	EffectPersistApproval       EffectKind = "PERSIST_APPROVAL"
	EffectAuditTrail            EffectKind = "AUDIT_TRAIL"
	EffectCoverageChanged       EffectKind = "COVERAGE_CHANGED"
	EffectNotifySupervisor      EffectKind = "NOTIFY_SUPERVISOR"
	EffectNotifyReviewers       EffectKind = "NOTIFY_REVIEWERS"
	EffectExecuteApprovedAction EffectKind = "EXECUTE_APPROVED_ACTION"
)

// Effect is returned by state machine transitions instead of being performed
// by them
type Effect struct {
	Kind       EffectKind             `json:"kind"`
	Subject    uuid.UUID              `json:"subject"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// Effects is the ordered list produced by one transition
type Effects []Effect

// Has reports whether an effect of the given kind is present
func (e Effects) Has(kind EffectKind) bool {
	for _, effect := range e {
		if effect.Kind == kind {
			return true
		}
	}
	return false
}

// AssignmentStateMachine owns the lifecycle of one assignment. It mutates the
// in-memory record only; persisting it is the caller's job.
type AssignmentStateMachine struct {
	a *models.Assignment
}

// NewAssignmentStateMachine wraps an assignment
func NewAssignmentStateMachine(a *models.Assignment) *AssignmentStateMachine {
	return &AssignmentStateMachine{a: a}
}

// Assignment returns the wrapped record
func (m *AssignmentStateMachine) Assignment() *models.Assignment {
	return m.a
}

// CanCheckIn reports whether a check-in is currently legal
func (m *AssignmentStateMachine) CanCheckIn() bool {
	return m.a.Status == models.AssignmentStatusScheduled || m.a.Status == models.AssignmentStatusConfirmed
}

// CanCheckOut reports whether a check-out is currently legal
func (m *AssignmentStateMachine) CanCheckOut() bool {
	return m.a.Status == models.AssignmentStatusInProgress
}

func (m *AssignmentStateMachine) reject(action string) error {
	return apperrors.NewInvalidStateTransitionError("assignment", action, string(m.a.Status))
}

func (m *AssignmentStateMachine) transitioned(from models.AssignmentStatus, action string, extra ...Effect) Effects {
	effects := Effects{
		{Kind: EffectPersistAssignment, Subject: m.a.ID},
		{Kind: EffectAuditTrail, Subject: m.a.ID, Attributes: map[string]interface{}{
			"action": action,
			"from":   from,
			"to":     m.a.Status,
		}},
	}
	return append(effects, extra...)
}

func (m *AssignmentStateMachine) coverageChanged() Effect {
	return Effect{Kind: EffectCoverageChanged, Subject: m.a.PostID, Attributes: map[string]interface{}{
		"date": m.a.Date.Format("2006-01-02"),
	}}
}

// Confirm moves SCHEDULED to CONFIRMED
func (m *AssignmentStateMachine) Confirm(at time.Time) (Effects, error) {
	if m.a.Status != models.AssignmentStatusScheduled {
		return nil, m.reject("confirm")
	}
	from := m.a.Status
	m.a.Status = models.AssignmentStatusConfirmed
	m.a.ConfirmedAt = &at
	return m.transitioned(from, "confirm"), nil
}

// CheckIn moves SCHEDULED or CONFIRMED to IN_PROGRESS and records lateness
// in whole minutes after the scheduled start
func (m *AssignmentStateMachine) CheckIn(at time.Time) (Effects, error) {
	if !m.CanCheckIn() {
		return nil, m.reject("check_in")
	}
	from := m.a.Status
	late := lateMinutes(m.a, at)

	m.a.Status = models.AssignmentStatusInProgress
	m.a.CheckedInAt = &at
	m.a.LateMinutes = &late

	var extra []Effect
	if late > 0 {
		extra = append(extra, Effect{Kind: EffectNotifySupervisor, Subject: m.a.ID, Attributes: map[string]interface{}{
			"event":        "late_check_in",
			"late_minutes": late,
		}})
	}
	return m.transitioned(from, "check_in", extra...), nil
}

// CheckOut moves IN_PROGRESS to COMPLETED and derives hours worked
func (m *AssignmentStateMachine) CheckOut(at time.Time) (Effects, error) {
	if !m.CanCheckOut() {
		return nil, m.reject("check_out")
	}
	if m.a.CheckedInAt == nil || !at.After(*m.a.CheckedInAt) {
		return nil, apperrors.ErrCheckoutBeforeCheckin
	}
	from := m.a.Status
	hours := round2(at.Sub(*m.a.CheckedInAt).Hours())

	m.a.Status = models.AssignmentStatusCompleted
	m.a.CheckedOutAt = &at
	m.a.HoursWorked = &hours
	return m.transitioned(from, "check_out", m.coverageChanged()), nil
}

// MarkNoShow moves SCHEDULED or CONFIRMED to NO_SHOW
func (m *AssignmentStateMachine) MarkNoShow(at time.Time) (Effects, error) {
	if !m.CanCheckIn() {
		return nil, m.reject("no_show")
	}
	from := m.a.Status
	m.a.Status = models.AssignmentStatusNoShow
	m.a.NoShowAt = &at
	return m.transitioned(from, "no_show",
		m.coverageChanged(),
		Effect{Kind: EffectNotifySupervisor, Subject: m.a.ID, Attributes: map[string]interface{}{
			"event": "no_show",
		}},
	), nil
}

// Cancel moves SCHEDULED or CONFIRMED to CANCELLED. Whether by may cancel is
// checked by the caller.
func (m *AssignmentStateMachine) Cancel(by string, at time.Time) (Effects, error) {
	if !m.CanCheckIn() {
		return nil, m.reject("cancel")
	}
	from := m.a.Status
	m.a.Status = models.AssignmentStatusCancelled
	m.a.CancelledBy = by
	m.a.CancelledAt = &at
	return m.transitioned(from, "cancel", m.coverageChanged()), nil
}

// ApplyOverride marks a SCHEDULED assignment as approved to bypass
// overrideType. The reason is mandatory.
func (m *AssignmentStateMachine) ApplyOverride(reason, overrideType, approvedBy string, at time.Time) (Effects, error) {
	if m.a.Status != models.AssignmentStatusScheduled {
		return nil, m.reject("apply_override")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, apperrors.ErrOverrideReasonRequired
	}
	from := m.a.Status
	m.a.IsOverride = true
	m.a.OverrideReason = reason
	m.a.OverrideType = appendOverrideType(m.a.OverrideType, overrideType)
	m.a.ApprovedBy = approvedBy
	m.a.ApprovedAt = &at
	return m.transitioned(from, "apply_override"), nil
}

// ApprovedOverrides lists the reason codes already approved for the assignment
func ApprovedOverrides(a *models.Assignment) []ReasonCode {
	if a == nil || !a.IsOverride || a.OverrideType == "" {
		return nil
	}
	var out []ReasonCode
	for _, part := range strings.Split(a.OverrideType, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, ReasonCode(part))
		}
	}
	return out
}

func appendOverrideType(current, overrideType string) string {
	overrideType = strings.TrimSpace(overrideType)
	if overrideType == "" {
		return current
	}
	if current == "" {
		return overrideType
	}
	for _, part := range strings.Split(current, ",") {
		if part == overrideType {
			return current
		}
	}
	return current + "," + overrideType
}
