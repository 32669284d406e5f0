package service

import (
	"context"
	"fmt"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"
	"guard-deployment-backend/internal/geofence"
	"guard-deployment-backend/internal/lock"
	"guard-deployment-backend/internal/logger"
	"guard-deployment-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Roles recognised by the services
const (
	RoleStaff      = "staff"
	RoleSupervisor = "supervisor"
	RoleGuard      = "guard"
)

// Actor is the authenticated caller of a service operation
type Actor struct {
	Username string
	Role     string
}

// IsStaff reports the staff role
func (a Actor) IsStaff() bool { return a.Role == RoleStaff }

// IsReviewer reports whether the actor may resolve approval requests
func (a Actor) IsReviewer() bool { return a.Role == RoleStaff || a.Role == RoleSupervisor }

// CheckInRequest represents a worker check-in
type CheckInRequest struct {
	AssignmentID          *uuid.UUID              `json:"assignment_id,omitempty"`
	WorkerID              uuid.UUID               `json:"worker_id" validate:"required"`
	SiteID                uuid.UUID               `json:"site_id" validate:"required"`
	Latitude              float64                 `json:"latitude"`
	Longitude             float64                 `json:"longitude"`
	AccuracyMeters        float64                 `json:"accuracy_meters" validate:"gte=0"`
	PreviousGeofenceState geofence.State          `json:"previous_geofence_state,omitempty" validate:"omitempty,oneof=INSIDE OUTSIDE"`
	RequestOverride       bool                    `json:"request_override"`
	OverridePriority      models.ApprovalPriority `json:"override_priority,omitempty" validate:"omitempty,oneof=URGENT HIGH NORMAL LOW"`
	Justification         string                  `json:"justification,omitempty" validate:"max=2000"`
	At                    time.Time               `json:"-"`
	RequestedBy           string                  `json:"-"`
	CorrelationID         string                  `json:"-"`
}

// CheckInResponse carries the pipeline verdict and whatever it produced
type CheckInResponse struct {
	Result          *CheckInOutcome         `json:"result"`
	Assignment      *models.Assignment      `json:"assignment,omitempty"`
	ApprovalRequest *models.ApprovalRequest `json:"approval_request,omitempty"`
}

// AssignmentService handles assignment lifecycle operations
type AssignmentService struct {
	assignments repository.AssignmentRepositoryInterface
	sites       repository.SiteRepositoryInterface
	pipeline    *CheckInValidator
	approvals   ApprovalServiceInterface
	locker      lock.Locker
	effects     EffectPublisher
	validator   *validator.Validate
	policy      Policy
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	assignments repository.AssignmentRepositoryInterface,
	sites repository.SiteRepositoryInterface,
	pipeline *CheckInValidator,
	approvals ApprovalServiceInterface,
	locker lock.Locker,
	effects EffectPublisher,
	validator *validator.Validate,
	policy Policy,
) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		sites:       sites,
		pipeline:    pipeline,
		approvals:   approvals,
		locker:      locker,
		effects:     effects,
		validator:   validator,
		policy:      policy,
	}
}

// GetByID retrieves an assignment
func (s *AssignmentService) GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	a, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return a, nil
}

// ValidateCheckIn runs the pipeline without changing anything
func (s *AssignmentService) ValidateCheckIn(ctx context.Context, req *CheckInRequest) (*CheckInOutcome, error) {
	attempt, _, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.pipeline.Validate(ctx, attempt), nil
}

// CheckIn validates the attempt and, when it passes, moves the matched
// assignment to IN_PROGRESS. A policy rejection is not an error: it is
// returned in the response, with an override request opened when asked for
// and allowed.
func (s *AssignmentService) CheckIn(ctx context.Context, req *CheckInRequest) (*CheckInResponse, error) {
	attempt, named, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	outcome := s.pipeline.Validate(ctx, attempt)
	resp := &CheckInResponse{Result: outcome}

	if !outcome.Valid {
		if outcome.RequiresApproval && req.RequestOverride {
			approval, err := s.openOverride(ctx, req, attempt, outcome, named)
			if err != nil {
				return nil, fmt.Errorf("failed to open override request: %w", err)
			}
			resp.ApprovalRequest = approval
		}
		return resp, nil
	}

	// an approved NO_POST_ASSIGNED override passes without a matched assignment
	target := outcome.Assignment
	switch {
	case target == nil && named == nil:
		return nil, apperrors.NewValidationError("assignment_id", "no assignment covers this check-in")
	case target == nil:
		target = named
	case named != nil && named.ID != target.ID:
		return nil, apperrors.NewValidationError("assignment_id", "assignment does not cover this check-in")
	}

	err = withLock(ctx, s.locker, lock.Key("assignment", target.ID), func() error {
		current, err := s.assignments.GetByID(ctx, target.ID)
		if err != nil {
			return fmt.Errorf("failed to reload assignment: %w", err)
		}
		effects, err := NewAssignmentStateMachine(current).CheckIn(attempt.At)
		if err != nil {
			return err
		}
		current.CheckInLat = &req.Latitude
		current.CheckInLon = &req.Longitude
		current.CheckInAccuracy = &req.AccuracyMeters
		if post := target.Post; post != nil && post.RequiresAcknowledgement() {
			version := post.PostOrdersVersion
			current.PostOrdersAcknowledged = true
			current.AcknowledgedVersion = &version
		}
		current.UpdatedBy = req.RequestedBy
		if err := s.assignments.Save(ctx, current); err != nil {
			return fmt.Errorf("failed to save assignment: %w", err)
		}
		current.Post = target.Post
		resp.Assignment = current
		publish(ctx, s.effects, effects)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// prepare validates the request, localises the instant to the site and
// resolves a named assignment's approved overrides
func (s *AssignmentService) prepare(ctx context.Context, req *CheckInRequest) (CheckInAttempt, *models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return CheckInAttempt{}, nil, apperrors.NewValidationError("check_in", err.Error())
	}
	if req.At.IsZero() {
		return CheckInAttempt{}, nil, apperrors.NewValidationError("at", "check-in time is required")
	}

	loc, err := s.siteLocation(ctx, req.SiteID)
	if err != nil {
		return CheckInAttempt{}, nil, err
	}

	attempt := CheckInAttempt{
		WorkerID:              req.WorkerID,
		SiteID:                req.SiteID,
		Latitude:              req.Latitude,
		Longitude:             req.Longitude,
		AccuracyMeters:        req.AccuracyMeters,
		At:                    req.At.In(loc),
		PreviousGeofenceState: req.PreviousGeofenceState,
		CorrelationID:         req.CorrelationID,
	}

	if req.AssignmentID == nil {
		return attempt, nil, nil
	}
	named, err := s.assignments.GetByID(ctx, *req.AssignmentID)
	if err != nil {
		return CheckInAttempt{}, nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if named.WorkerID != req.WorkerID {
		return CheckInAttempt{}, nil, apperrors.NewValidationError("assignment_id", "assignment belongs to another worker")
	}
	if !NewAssignmentStateMachine(named).CanCheckIn() {
		return CheckInAttempt{}, nil, apperrors.NewInvalidStateTransitionError("assignment", "check_in", string(named.Status))
	}
	attempt.ApprovedOverrides = ApprovedOverrides(named)
	attempt.Assignment = named
	return attempt, named, nil
}

func (s *AssignmentService) openOverride(ctx context.Context, req *CheckInRequest, attempt CheckInAttempt, outcome *CheckInOutcome, named *models.Assignment) (*models.ApprovalRequest, error) {
	details := make(map[string]interface{}, len(outcome.Details)+3)
	for k, v := range outcome.Details {
		details[k] = v
	}
	details["check_in_at"] = attempt.At.Format(time.RFC3339)
	details["latitude"] = attempt.Latitude
	details["longitude"] = attempt.Longitude

	target := outcome.Assignment
	if target == nil {
		target = named
	}
	if target == nil {
		found, ok, err := s.assignments.FindPostAssignment(ctx, attempt.WorkerID, models.DateOf(attempt.At), attempt.At)
		if err != nil {
			return nil, fmt.Errorf("failed to find assignment for override: %w", err)
		}
		if ok {
			target = found
		}
	}

	date := models.DateOf(attempt.At).Format("2006-01-02")
	open := &OpenApprovalRequest{
		Type:          models.ApprovalTypeValidationOverride,
		Priority:      req.OverridePriority,
		ReasonCode:    string(outcome.Reason),
		Justification: req.Justification,
		Details:       details,
		WorkerID:      &attempt.WorkerID,
		Date:          date,
		RequestedBy:   req.RequestedBy,
		Now:           attempt.At,
	}
	if target != nil {
		open.AssignmentID = &target.ID
		open.PostID = &target.PostID
		open.ShiftID = target.ShiftID
		if target.Post != nil {
			details[detailPostRiskLevel] = string(target.Post.RiskLevel)
		}
	}
	return s.approvals.Open(ctx, open)
}

// CheckOut completes an IN_PROGRESS assignment
func (s *AssignmentService) CheckOut(ctx context.Context, id uuid.UUID, actor Actor, at time.Time) (*models.Assignment, error) {
	return s.transition(ctx, id, actor, func(m *AssignmentStateMachine) (Effects, error) {
		return m.CheckOut(at)
	})
}

// Confirm acknowledges a SCHEDULED assignment
func (s *AssignmentService) Confirm(ctx context.Context, id uuid.UUID, actor Actor, at time.Time) (*models.Assignment, error) {
	return s.transition(ctx, id, actor, func(m *AssignmentStateMachine) (Effects, error) {
		return m.Confirm(at)
	})
}

// MarkNoShow records that the worker never arrived
func (s *AssignmentService) MarkNoShow(ctx context.Context, id uuid.UUID, actor Actor, at time.Time) (*models.Assignment, error) {
	return s.transition(ctx, id, actor, func(m *AssignmentStateMachine) (Effects, error) {
		return m.MarkNoShow(at)
	})
}

// Cancel cancels an assignment; only staff or the original assigner may
func (s *AssignmentService) Cancel(ctx context.Context, id uuid.UUID, actor Actor, at time.Time) (*models.Assignment, error) {
	return s.transition(ctx, id, actor, func(m *AssignmentStateMachine) (Effects, error) {
		a := m.Assignment()
		if !actor.IsStaff() && (actor.Username == "" || actor.Username != a.AssignedBy) {
			return nil, apperrors.NewAuthorizationError("only staff or the original assigner may cancel this assignment")
		}
		return m.Cancel(actor.Username, at)
	})
}

func (s *AssignmentService) transition(ctx context.Context, id uuid.UUID, actor Actor, apply func(*AssignmentStateMachine) (Effects, error)) (*models.Assignment, error) {
	var result *models.Assignment
	err := withLock(ctx, s.locker, lock.Key("assignment", id), func() error {
		a, err := s.assignments.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get assignment: %w", err)
		}
		effects, err := apply(NewAssignmentStateMachine(a))
		if err != nil {
			return err
		}
		a.UpdatedBy = actor.Username
		if err := s.assignments.Save(ctx, a); err != nil {
			return fmt.Errorf("failed to save assignment: %w", err)
		}
		publish(ctx, s.effects, effects)
		result = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SweepNoShows marks SCHEDULED or CONFIRMED assignments whose start plus the
// no-show grace has passed. It returns how many were marked.
func (s *AssignmentService) SweepNoShows(ctx context.Context, now time.Time) (int, error) {
	log := logger.WithContext(ctx)
	due, err := s.assignments.ListDueForNoShow(ctx, now.Add(-s.policy.NoShowGrace), s.policy.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list assignments due for no-show: %w", err)
	}

	marked := 0
	system := Actor{Username: "system", Role: RoleStaff}
	for _, a := range due {
		if _, err := s.MarkNoShow(ctx, a.ID, system, now); err != nil {
			if apperrors.IsInvalidStateTransition(err) || apperrors.IsConflict(err) {
				log.WithField("assignment_id", a.ID).Debugf("skipping no-show: %v", err)
				continue
			}
			return marked, err
		}
		marked++
	}
	if marked > 0 {
		log.Infof("marked %d assignments as no-show", marked)
	}
	return marked, nil
}

func (s *AssignmentService) siteLocation(ctx context.Context, siteID uuid.UUID) (*time.Location, error) {
	return siteLocation(ctx, s.sites, siteID)
}

// siteLocation returns the site's time zone, UTC when unset or unknown
func siteLocation(ctx context.Context, sites repository.SiteRepositoryInterface, siteID uuid.UUID) (*time.Location, error) {
	site, err := sites.GetByID(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	if site.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(site.Timezone)
	if err != nil {
		logger.WithContext(ctx).WithField("site_id", siteID).Warnf("unknown site timezone %q, using UTC", site.Timezone)
		return time.UTC, nil
	}
	return loc, nil
}
