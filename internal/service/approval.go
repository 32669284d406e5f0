package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"
	"guard-deployment-backend/internal/lock"
	"guard-deployment-backend/internal/logger"
	"guard-deployment-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OpenApprovalRequest represents a request to open an approval
type OpenApprovalRequest struct {
	Type          models.ApprovalRequestType `json:"type" validate:"required,oneof=VALIDATION_OVERRIDE EMERGENCY_ASSIGNMENT SHIFT_CHANGE"`
	Priority      models.ApprovalPriority    `json:"priority,omitempty" validate:"omitempty,oneof=URGENT HIGH NORMAL LOW"`
	ReasonCode    string                     `json:"reason_code,omitempty" validate:"max=40"`
	Justification string                     `json:"justification,omitempty" validate:"max=2000"`
	Details       map[string]interface{}     `json:"details,omitempty"`
	AssignmentID  *uuid.UUID                 `json:"assignment_id,omitempty"`
	PostID        *uuid.UUID                 `json:"post_id,omitempty"`
	ShiftID       *uuid.UUID                 `json:"shift_id,omitempty"`
	WorkerID      *uuid.UUID                 `json:"worker_id,omitempty"`
	Date          string                     `json:"date,omitempty" example:"2026-03-14"`
	RequestedBy   string                     `json:"-"`
	Now           time.Time                  `json:"-"`
}

// ApprovalDecision is what a reviewer adds when approving. WorkerID picks
// the worker for an emergency assignment opened without a candidate.
type ApprovalDecision struct {
	Notes    string
	WorkerID *uuid.UUID
}

// ApprovalListResponse represents a page of approval requests
type ApprovalListResponse struct {
	Requests []models.ApprovalRequest `json:"requests"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// ApprovalService opens, resolves and sweeps approval requests, and runs
// the approved action on the aggregate a request refers to
type ApprovalService struct {
	requests    repository.ApprovalRequestRepositoryInterface
	rules       repository.AutoApprovalRuleRepositoryInterface
	assignments repository.AssignmentRepositoryInterface
	shifts      repository.ShiftRepositoryInterface
	posts       repository.PostRepositoryInterface
	sites       repository.SiteRepositoryInterface
	locker      lock.Locker
	effects     EffectPublisher
	validator   *validator.Validate
	policy      Policy
}

// ApprovalDeps groups the repositories the approval service reads and writes
type ApprovalDeps struct {
	Requests    repository.ApprovalRequestRepositoryInterface
	Rules       repository.AutoApprovalRuleRepositoryInterface
	Assignments repository.AssignmentRepositoryInterface
	Shifts      repository.ShiftRepositoryInterface
	Posts       repository.PostRepositoryInterface
	Sites       repository.SiteRepositoryInterface
}

// NewApprovalService creates a new approval service
func NewApprovalService(deps ApprovalDeps, locker lock.Locker, effects EffectPublisher, validator *validator.Validate, policy Policy) *ApprovalService {
	return &ApprovalService{
		requests:    deps.Requests,
		rules:       deps.Rules,
		assignments: deps.Assignments,
		shifts:      deps.Shifts,
		posts:       deps.Posts,
		sites:       deps.Sites,
		locker:      locker,
		effects:     effects,
		validator:   validator,
		policy:      policy,
	}
}

// Open creates a PENDING request and immediately evaluates the active
// auto-approval rules for its type
func (s *ApprovalService) Open(ctx context.Context, req *OpenApprovalRequest) (*models.ApprovalRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("approval", err.Error())
	}
	if req.Type == models.ApprovalTypeValidationOverride {
		reason := ReasonCode(req.ReasonCode)
		if reason == "" {
			return nil, apperrors.NewValidationError("reason_code", "override requests must name the failed check")
		}
		if !reason.IsOverridable(s.policy) {
			return nil, apperrors.ErrHardBlockNotOverridable
		}
	}
	if req.Now.IsZero() {
		return nil, apperrors.NewValidationError("now", "request time is required")
	}
	now := req.Now

	r := &models.ApprovalRequest{
		Type:          req.Type,
		Priority:      req.Priority,
		RequestedBy:   req.RequestedBy,
		ReasonCode:    req.ReasonCode,
		Justification: strings.TrimSpace(req.Justification),
		Details:       models.JSONMap(req.Details),
		AssignmentID:  req.AssignmentID,
		PostID:        req.PostID,
		ShiftID:       req.ShiftID,
		WorkerID:      req.WorkerID,
	}
	if r.Details == nil {
		r.Details = models.JSONMap{}
	}
	if req.Date != "" {
		d, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		r.Date = &d
	}
	r.CreatedBy = req.RequestedBy
	r.UpdatedBy = req.RequestedBy
	r.CreatedAt = now

	m := NewApprovalStateMachine(r)
	effects, err := m.Open(now)
	if err != nil {
		return nil, err
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create approval request: %w", err)
	}
	publish(ctx, s.effects, effects)

	rules, err := s.rules.ListActive(ctx, r.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to list auto-approval rules: %w", err)
	}
	rule := FirstMatchingRule(rules, r)
	if rule == nil {
		publish(ctx, s.effects, Effects{{Kind: EffectNotifyReviewers, Subject: r.ID, Attributes: map[string]interface{}{
			"event":    "opened",
			"type":     r.Type,
			"priority": r.Priority,
		}}})
		return r, nil
	}

	err = withLock(ctx, s.locker, lock.Key("approval", r.ID), func() error {
		effects, err := m.AutoApprove(rule, now)
		if err != nil {
			return err
		}
		if err := s.executeApprovedAction(ctx, r, "system", now); err != nil {
			return err
		}
		if err := s.requests.Save(ctx, r); err != nil {
			return fmt.Errorf("failed to save approval request: %w", err)
		}
		publish(ctx, s.effects, effects)
		return nil
	})
	if err != nil {
		// The request stays PENDING for a reviewer when the auto-approved
		// action cannot run.
		logger.WithContext(ctx).WithField("approval_id", r.ID).WithError(err).Warn("auto-approval could not be applied")
		return s.GetByID(ctx, r.ID)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"approval_id": r.ID,
		"rule":        rule.Name,
	}).Info("approval request auto-approved")
	return r, nil
}

// GetByID retrieves an approval request
func (s *ApprovalService) GetByID(ctx context.Context, id uuid.UUID) (*models.ApprovalRequest, error) {
	r, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get approval request: %w", err)
	}
	return r, nil
}

// ListPending returns PENDING requests, most urgent first
func (s *ApprovalService) ListPending(ctx context.Context, page, pageSize int) (*ApprovalListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	requests, total, err := s.requests.ListPending(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approval requests: %w", err)
	}
	return &ApprovalListResponse{Requests: requests, Total: total, Page: page, PageSize: pageSize}, nil
}

// Approve resolves a request by a reviewer and runs its approved action.
// An expired request is recorded as EXPIRED and ErrApprovalExpired returned.
func (s *ApprovalService) Approve(ctx context.Context, id uuid.UUID, reviewer Actor, decision ApprovalDecision, now time.Time) (*models.ApprovalRequest, error) {
	if !reviewer.IsReviewer() {
		return nil, apperrors.ErrReviewerRequired
	}
	return s.resolve(ctx, id, reviewer.Username, func(m *ApprovalStateMachine) (Effects, error) {
		effects, err := m.ManualApprove(reviewer.Username, decision.Notes, now)
		if err != nil {
			return effects, err
		}
		if err := chooseWorker(m.Request(), decision.WorkerID); err != nil {
			return nil, err
		}
		if err := s.executeApprovedAction(ctx, m.Request(), reviewer.Username, now); err != nil {
			return nil, fmt.Errorf("failed to execute approved action: %w", err)
		}
		return effects, nil
	})
}

// chooseWorker fills in the reviewer's worker for an emergency assignment
func chooseWorker(r *models.ApprovalRequest, workerID *uuid.UUID) error {
	if workerID == nil {
		return nil
	}
	if r.Type != models.ApprovalTypeEmergencyAssignment {
		return apperrors.NewValidationError("worker_id", "only emergency assignment requests take a worker")
	}
	if r.WorkerID != nil && *r.WorkerID != *workerID {
		return apperrors.NewValidationError("worker_id", "request already names a different worker")
	}
	id := *workerID
	r.WorkerID = &id
	return nil
}

// Reject resolves a request as rejected
func (s *ApprovalService) Reject(ctx context.Context, id uuid.UUID, reviewer Actor, reason string, now time.Time) (*models.ApprovalRequest, error) {
	if !reviewer.IsReviewer() {
		return nil, apperrors.ErrReviewerRequired
	}
	return s.resolve(ctx, id, reviewer.Username, func(m *ApprovalStateMachine) (Effects, error) {
		return m.ManualReject(reviewer.Username, reason, now)
	})
}

// Cancel withdraws a request on behalf of its requester
func (s *ApprovalService) Cancel(ctx context.Context, id uuid.UUID, actor Actor, now time.Time) (*models.ApprovalRequest, error) {
	return s.resolve(ctx, id, actor.Username, func(m *ApprovalStateMachine) (Effects, error) {
		return m.Cancel(actor.Username, now)
	})
}

// resolve applies a transition under the request lock. When the transition
// returns effects alongside ErrApprovalExpired the expiry is still saved.
func (s *ApprovalService) resolve(ctx context.Context, id uuid.UUID, by string, apply func(*ApprovalStateMachine) (Effects, error)) (*models.ApprovalRequest, error) {
	var result *models.ApprovalRequest
	err := withLock(ctx, s.locker, lock.Key("approval", id), func() error {
		r, err := s.requests.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get approval request: %w", err)
		}
		effects, applyErr := apply(NewApprovalStateMachine(r))
		if applyErr != nil && len(effects) == 0 {
			return applyErr
		}
		r.UpdatedBy = by
		if err := s.requests.Save(ctx, r); err != nil {
			return fmt.Errorf("failed to save approval request: %w", err)
		}
		publish(ctx, s.effects, effects)
		result = r
		return applyErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ExpireOverdue moves PENDING requests past their expiry to EXPIRED and
// returns how many were expired
func (s *ApprovalService) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.requests.ListExpired(ctx, now, s.policy.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired approval requests: %w", err)
	}
	expired := 0
	for _, r := range due {
		_, err := s.resolve(ctx, r.ID, "system", func(m *ApprovalStateMachine) (Effects, error) {
			return m.Expire(now)
		})
		if err != nil {
			if apperrors.IsInvalidStateTransition(err) || apperrors.IsConflict(err) {
				continue
			}
			return expired, err
		}
		expired++
	}
	if expired > 0 {
		logger.WithContext(ctx).Infof("expired %d approval requests", expired)
	}
	return expired, nil
}

// EscalateOverdue records an escalation for URGENT and HIGH requests left
// PENDING past the escalation threshold. Requests are not resolved.
func (s *ApprovalService) EscalateOverdue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.requests.ListEscalationDue(ctx, now.Add(-s.policy.EscalationThreshold), s.policy.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list approval requests due for escalation: %w", err)
	}
	escalated := 0
	for i := range due {
		id := due[i].ID
		err := withLock(ctx, s.locker, lock.Key("approval", id), func() error {
			r, err := s.requests.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get approval request: %w", err)
			}
			m := NewApprovalStateMachine(r)
			if !m.NeedsEscalation(now, s.policy.EscalationThreshold) {
				return nil
			}
			escalation, effects := m.Escalate(now)
			if err := s.requests.CreateEscalation(ctx, escalation); err != nil {
				return fmt.Errorf("failed to record escalation: %w", err)
			}
			if err := s.requests.Save(ctx, r); err != nil {
				return fmt.Errorf("failed to save approval request: %w", err)
			}
			publish(ctx, s.effects, effects)
			escalated++
			return nil
		})
		if err != nil {
			if apperrors.IsConflict(err) {
				continue
			}
			return escalated, err
		}
	}
	if escalated > 0 {
		logger.WithContext(ctx).Infof("escalated %d approval requests", escalated)
	}
	return escalated, nil
}

// executeApprovedAction applies the approved request to the aggregate it
// refers to. It is the only path by which an approval mutates an assignment.
func (s *ApprovalService) executeApprovedAction(ctx context.Context, r *models.ApprovalRequest, approver string, now time.Time) error {
	switch r.Type {
	case models.ApprovalTypeValidationOverride:
		return s.applyOverride(ctx, r, approver, now)
	case models.ApprovalTypeEmergencyAssignment:
		return s.createEmergencyAssignment(ctx, r, approver, now)
	case models.ApprovalTypeShiftChange:
		return s.changeShift(ctx, r, approver, now)
	}
	return apperrors.ErrUnsupportedRequestType
}

func (s *ApprovalService) applyOverride(ctx context.Context, r *models.ApprovalRequest, approver string, now time.Time) error {
	if r.AssignmentID == nil {
		return apperrors.NewValidationError("assignment_id", "override request is not linked to an assignment")
	}
	reason := r.Justification
	if reason == "" {
		reason = "approved override of " + r.ReasonCode
	}
	return withLock(ctx, s.locker, lock.Key("assignment", *r.AssignmentID), func() error {
		a, err := s.assignments.GetByID(ctx, *r.AssignmentID)
		if err != nil {
			return fmt.Errorf("failed to get assignment: %w", err)
		}
		effects, err := NewAssignmentStateMachine(a).ApplyOverride(reason, r.ReasonCode, approver, now)
		if err != nil {
			return err
		}
		a.UpdatedBy = approver
		if err := s.assignments.Save(ctx, a); err != nil {
			return fmt.Errorf("failed to save assignment: %w", err)
		}
		publish(ctx, s.effects, effects)
		return nil
	})
}

func (s *ApprovalService) createEmergencyAssignment(ctx context.Context, r *models.ApprovalRequest, approver string, now time.Time) error {
	if r.WorkerID == nil {
		return apperrors.NewValidationError("worker_id", "emergency assignment has no candidate, approve it with a worker_id")
	}
	if r.PostID == nil || r.ShiftID == nil || r.Date == nil {
		return apperrors.NewValidationError("approval", "emergency assignment needs post, shift and date")
	}
	post, err := s.posts.GetByID(ctx, *r.PostID)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}
	shift, err := s.shifts.GetByID(ctx, *r.ShiftID)
	if err != nil {
		return fmt.Errorf("failed to get shift: %w", err)
	}
	loc, err := siteLocation(ctx, s.sites, post.SiteID)
	if err != nil {
		return err
	}

	a := &models.Assignment{
		WorkerID:   *r.WorkerID,
		PostID:     post.ID,
		ShiftID:    &shift.ID,
		SiteID:     post.SiteID,
		Status:     models.AssignmentStatusScheduled,
		AssignedBy: r.RequestedBy,
		ApprovedBy: approver,
		ApprovedAt: &now,
	}
	a.SetWindow(*r.Date, shift.StartTime, shift.EndTime, loc)
	a.CreatedBy = approver
	a.UpdatedBy = approver
	if err := s.assignments.Create(ctx, a); err != nil {
		return fmt.Errorf("failed to create emergency assignment: %w", err)
	}
	r.AssignmentID = &a.ID
	publish(ctx, s.effects, Effects{
		{Kind: EffectAuditTrail, Subject: a.ID, Attributes: map[string]interface{}{
			"action":      "emergency_assign",
			"approval_id": r.ID,
		}},
		{Kind: EffectCoverageChanged, Subject: post.ID, Attributes: map[string]interface{}{
			"date": a.Date.Format("2006-01-02"),
		}},
	})
	return nil
}

func (s *ApprovalService) changeShift(ctx context.Context, r *models.ApprovalRequest, approver string, now time.Time) error {
	if r.AssignmentID == nil || r.ShiftID == nil {
		return apperrors.NewValidationError("approval", "shift change needs assignment and shift")
	}
	shift, err := s.shifts.GetByID(ctx, *r.ShiftID)
	if err != nil {
		return fmt.Errorf("failed to get shift: %w", err)
	}
	return withLock(ctx, s.locker, lock.Key("assignment", *r.AssignmentID), func() error {
		a, err := s.assignments.GetByID(ctx, *r.AssignmentID)
		if err != nil {
			return fmt.Errorf("failed to get assignment: %w", err)
		}
		if !NewAssignmentStateMachine(a).CanCheckIn() {
			return apperrors.NewInvalidStateTransitionError("assignment", "change_shift", string(a.Status))
		}
		loc, err := siteLocation(ctx, s.sites, a.SiteID)
		if err != nil {
			return err
		}
		date := a.Date
		if r.Date != nil {
			date = *r.Date
		}
		from := a.ShiftID
		a.ShiftID = &shift.ID
		a.SetWindow(date, shift.StartTime, shift.EndTime, loc)

		overlap, err := s.assignments.HasOverlap(ctx, a)
		if err != nil {
			return fmt.Errorf("failed to check overlapping assignments: %w", err)
		}
		if overlap {
			return apperrors.ErrDoubleBooking
		}
		a.ApprovedBy = approver
		a.ApprovedAt = &now
		a.UpdatedBy = approver
		if err := s.assignments.Save(ctx, a); err != nil {
			return fmt.Errorf("failed to save assignment: %w", err)
		}
		publish(ctx, s.effects, Effects{{Kind: EffectAuditTrail, Subject: a.ID, Attributes: map[string]interface{}{
			"action":      "change_shift",
			"from_shift":  from,
			"to_shift":    shift.ID,
			"approval_id": r.ID,
		}}})
		return nil
	})
}
