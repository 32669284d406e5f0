package service

import (
	"strings"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"

	"github.com/google/uuid"
)

const (
	urgentApprovalTTL  = 2 * time.Hour
	defaultApprovalTTL = 24 * time.Hour
)

// ExpiryFor returns when a request of the given priority created at now expires
func ExpiryFor(priority models.ApprovalPriority, now time.Time) time.Time {
	if priority == models.ApprovalPriorityUrgent {
		return now.Add(urgentApprovalTTL)
	}
	return now.Add(defaultApprovalTTL)
}

// ApprovalStateMachine owns the lifecycle of one approval request
type ApprovalStateMachine struct {
	r *models.ApprovalRequest
}

// NewApprovalStateMachine wraps a request
func NewApprovalStateMachine(r *models.ApprovalRequest) *ApprovalStateMachine {
	return &ApprovalStateMachine{r: r}
}

// Request returns the wrapped record
func (m *ApprovalStateMachine) Request() *models.ApprovalRequest {
	return m.r
}

// Open initialises a new PENDING request with its priority-based expiry
func (m *ApprovalStateMachine) Open(now time.Time) (Effects, error) {
	if !m.r.Type.IsValid() {
		return nil, apperrors.ErrUnsupportedRequestType
	}
	if !m.r.Priority.IsValid() {
		m.r.Priority = models.ApprovalPriorityNormal
	}
	m.r.Status = models.ApprovalStatusPending
	m.r.ExpiresAt = ExpiryFor(m.r.Priority, now)
	return Effects{
		{Kind: EffectPersistApproval, Subject: m.r.ID},
		m.audit("open", ""),
	}, nil
}

func (m *ApprovalStateMachine) audit(action string, from models.ApprovalStatus) Effect {
	return Effect{Kind: EffectAuditTrail, Subject: m.r.ID, Attributes: map[string]interface{}{
		"action": action,
		"from":   from,
		"to":     m.r.Status,
	}}
}

func (m *ApprovalStateMachine) pending(action string) error {
	if m.r.Status != models.ApprovalStatusPending {
		return apperrors.NewInvalidStateTransitionError("approval request", action, string(m.r.Status))
	}
	return nil
}

func (m *ApprovalStateMachine) resolve(status models.ApprovalStatus, by string, at time.Time) models.ApprovalStatus {
	from := m.r.Status
	m.r.Status = status
	m.r.ResolvedBy = by
	m.r.ResolvedAt = &at
	return from
}

// AutoApprove resolves the request by a matching rule and asks for the
// approved action to run
func (m *ApprovalStateMachine) AutoApprove(rule *models.AutoApprovalRule, at time.Time) (Effects, error) {
	if err := m.pending("auto_approve"); err != nil {
		return nil, err
	}
	from := m.resolve(models.ApprovalStatusAutoApproved, "system", at)
	m.r.AutoApprovalRuleID = &rule.ID
	m.r.ReviewerNotes = "auto-approved by rule " + rule.Name
	return Effects{
		{Kind: EffectPersistApproval, Subject: m.r.ID},
		m.audit("auto_approve", from),
		{Kind: EffectExecuteApprovedAction, Subject: m.r.ID, Attributes: map[string]interface{}{"type": m.r.Type}},
	}, nil
}

// ManualApprove resolves the request by a reviewer. A request past its
// expiry is moved to EXPIRED instead and ErrApprovalExpired is returned
// together with the effects of that transition.
func (m *ApprovalStateMachine) ManualApprove(reviewer, notes string, at time.Time) (Effects, error) {
	if err := m.pending("approve"); err != nil {
		return nil, err
	}
	if m.r.IsExpiredAt(at) {
		effects, _ := m.Expire(at)
		return effects, apperrors.ErrApprovalExpired
	}
	from := m.resolve(models.ApprovalStatusManuallyApproved, reviewer, at)
	m.r.ReviewerNotes = notes
	return Effects{
		{Kind: EffectPersistApproval, Subject: m.r.ID},
		m.audit("approve", from),
		{Kind: EffectExecuteApprovedAction, Subject: m.r.ID, Attributes: map[string]interface{}{"type": m.r.Type}},
	}, nil
}

// ManualReject resolves the request as rejected; reason is required
func (m *ApprovalStateMachine) ManualReject(reviewer, reason string, at time.Time) (Effects, error) {
	if err := m.pending("reject"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reason) == "" {
		return nil, apperrors.ErrRejectReasonRequired
	}
	from := m.resolve(models.ApprovalStatusRejected, reviewer, at)
	m.r.RejectionReason = reason
	return Effects{
		{Kind: EffectPersistApproval, Subject: m.r.ID},
		m.audit("reject", from),
		m.notifyRequester("rejected"),
	}, nil
}

// Cancel withdraws the request; only the original requester may do so
func (m *ApprovalStateMachine) Cancel(by string, at time.Time) (Effects, error) {
	if err := m.pending("cancel"); err != nil {
		return nil, err
	}
	if by == "" || by != m.r.RequestedBy {
		return nil, apperrors.ErrNotRequester
	}
	from := m.resolve(models.ApprovalStatusCancelled, by, at)
	return Effects{
		{Kind: EffectPersistApproval, Subject: m.r.ID},
		m.audit("cancel", from),
	}, nil
}

// Expire moves a PENDING request past its expiry to EXPIRED
func (m *ApprovalStateMachine) Expire(at time.Time) (Effects, error) {
	if err := m.pending("expire"); err != nil {
		return nil, err
	}
	if !m.r.IsExpiredAt(at) {
		return nil, apperrors.NewInvalidStateTransitionError("approval request", "expire", "PENDING (not yet due)")
	}
	from := m.resolve(models.ApprovalStatusExpired, "system", at)
	return Effects{
		{Kind: EffectPersistApproval, Subject: m.r.ID},
		m.audit("expire", from),
		m.notifyRequester("expired"),
	}, nil
}

// NeedsEscalation reports whether an URGENT or HIGH request has waited
// longer than threshold without being escalated before
func (m *ApprovalStateMachine) NeedsEscalation(now time.Time, threshold time.Duration) bool {
	return m.r.Status == models.ApprovalStatusPending &&
		m.r.Priority.Escalates() &&
		m.r.EscalatedAt == nil &&
		!m.r.IsExpiredAt(now) &&
		now.Sub(m.r.CreatedAt) >= threshold
}

// Escalate marks the request escalated and returns the escalation record.
// It does not resolve the request.
func (m *ApprovalStateMachine) Escalate(now time.Time) (*models.ApprovalEscalation, Effects) {
	m.r.EscalatedAt = &now
	escalation := &models.ApprovalEscalation{
		ApprovalRequestID: m.r.ID,
		Priority:          m.r.Priority,
		PendingMinutes:    int(now.Sub(m.r.CreatedAt) / time.Minute),
		EscalatedAt:       now,
	}
	return escalation, Effects{
		{Kind: EffectPersistApproval, Subject: m.r.ID},
		{Kind: EffectNotifyReviewers, Subject: m.r.ID, Attributes: map[string]interface{}{
			"event":           "escalated",
			"priority":        m.r.Priority,
			"pending_minutes": escalation.PendingMinutes,
		}},
	}
}

func (m *ApprovalStateMachine) notifyRequester(event string) Effect {
	subject := uuid.Nil
	if m.r.AssignmentID != nil {
		subject = *m.r.AssignmentID
	}
	return Effect{Kind: EffectNotifySupervisor, Subject: subject, Attributes: map[string]interface{}{
		"event":        event,
		"approval_id":  m.r.ID,
		"requested_by": m.r.RequestedBy,
	}}
}
