package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"
	"guard-deployment-backend/internal/logger"
	"guard-deployment-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DispatchRequest asks for a post's coverage gap on a date to be filled
type DispatchRequest struct {
	PostID      uuid.UUID `json:"-"`
	ShiftID     uuid.UUID `json:"shift_id" validate:"required"`
	Date        string    `json:"date" validate:"required" example:"2026-03-14"`
	RequestedBy string    `json:"-"`
	Now         time.Time `json:"-"`
}

// DispatchResult reports what the dispatcher did
type DispatchResult struct {
	Coverage        *Coverage               `json:"coverage"`
	Assigned        []models.Assignment     `json:"assigned"`
	ApprovalRequest *models.ApprovalRequest `json:"approval_request,omitempty"`
	Candidates      []*ScoreBreakdown       `json:"candidates"`
}

// DispatcherDeps groups the dispatcher's collaborators
type DispatcherDeps struct {
	Posts       repository.PostRepositoryInterface
	Shifts      repository.ShiftRepositoryInterface
	Sites       repository.SiteRepositoryInterface
	Workers     repository.WorkerRepositoryInterface
	Assignments repository.AssignmentRepositoryInterface
	Coverage    *CoverageCalculator
	Scorer      *SuitabilityScorer
	Approvals   ApprovalServiceInterface
}

// EmergencyDispatcher fills coverage gaps with the best available worker,
// or escalates to an urgent approval when nobody qualifies automatically.
// It is a greedy single-post pick.
type EmergencyDispatcher struct {
	deps      DispatcherDeps
	effects   EffectPublisher
	validator *validator.Validate
	policy    Policy
}

// NewEmergencyDispatcher creates a new dispatcher
func NewEmergencyDispatcher(deps DispatcherDeps, effects EffectPublisher, validator *validator.Validate, policy Policy) *EmergencyDispatcher {
	return &EmergencyDispatcher{deps: deps, effects: effects, validator: validator, policy: policy}
}

// Dispatch fills the gap of req.PostID for req.ShiftID on req.Date
func (d *EmergencyDispatcher) Dispatch(ctx context.Context, req *DispatchRequest) (*DispatchResult, error) {
	if err := d.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("dispatch", err.Error())
	}
	if req.Now.IsZero() {
		return nil, apperrors.NewValidationError("now", "request time is required")
	}
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"post_id":  req.PostID,
		"shift_id": req.ShiftID,
		"date":     req.Date,
	})

	post, err := d.deps.Posts.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	shift, err := d.deps.Shifts.GetByID(ctx, req.ShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	if shift.SiteID != post.SiteID {
		return nil, apperrors.NewValidationError("shift_id", "shift belongs to another site")
	}
	loc, err := siteLocation(ctx, d.deps.Sites, post.SiteID)
	if err != nil {
		return nil, err
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, loc)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	cov, err := d.deps.Coverage.Coverage(ctx, post, date)
	if err != nil {
		return nil, err
	}
	if cov.IsMet {
		return nil, apperrors.ErrCoverageAlreadyMet
	}

	var window models.Assignment
	window.SetWindow(date, shift.StartTime, shift.EndTime, loc)
	workers, err := d.deps.Workers.ListAvailable(ctx, window.StartsAt, window.EndsAt)
	if err != nil {
		return nil, fmt.Errorf("failed to list available workers: %w", err)
	}

	byID := make(map[string]*models.Worker, len(workers))
	candidates := make([]*ScoreBreakdown, 0, len(workers))
	for i := range workers {
		w := &workers[i]
		score, err := d.deps.Scorer.Score(ctx, w, post, shift, date)
		if err != nil {
			return nil, err
		}
		byID[score.WorkerID] = w
		candidates = append(candidates, score)
	}
	RankCandidates(candidates)

	result := &DispatchResult{Coverage: cov, Candidates: candidates, Assigned: []models.Assignment{}}
	next := 0
	for slot := 0; slot < cov.Gap; slot++ {
		var top *ScoreBreakdown
		if next < len(candidates) {
			top = candidates[next]
		}
		if top == nil || !top.Qualified() || top.Total < d.policy.DispatchMinScore {
			approval, err := d.escalate(ctx, req, post, shift, top, candidates[next:], cov.Gap-slot)
			if err != nil {
				return nil, err
			}
			result.ApprovalRequest = approval
			break
		}
		next++

		a, err := d.assign(ctx, req, byID[top.WorkerID], post, shift, date, loc)
		if errors.Is(err, apperrors.ErrDoubleBooking) {
			log.WithField("worker_id", top.WorkerID).Debugf("candidate booked concurrently, trying next")
			slot--
			continue
		}
		if err != nil {
			return nil, err
		}
		result.Assigned = append(result.Assigned, *a)
	}

	log.Infof("dispatch assigned %d of %d missing guards", len(result.Assigned), cov.Gap)
	return result, nil
}

func (d *EmergencyDispatcher) assign(ctx context.Context, req *DispatchRequest, worker *models.Worker, post *models.Post, shift *models.Shift, date time.Time, loc *time.Location) (*models.Assignment, error) {
	a := &models.Assignment{
		WorkerID:   worker.ID,
		PostID:     post.ID,
		ShiftID:    &shift.ID,
		SiteID:     post.SiteID,
		Status:     models.AssignmentStatusScheduled,
		AssignedBy: req.RequestedBy,
	}
	a.SetWindow(date, shift.StartTime, shift.EndTime, loc)
	a.CreatedBy = req.RequestedBy
	a.UpdatedBy = req.RequestedBy
	if err := d.deps.Assignments.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	publish(ctx, d.effects, Effects{
		{Kind: EffectAuditTrail, Subject: a.ID, Attributes: map[string]interface{}{
			"action": "dispatch",
		}},
		{Kind: EffectCoverageChanged, Subject: post.ID, Attributes: map[string]interface{}{
			"date": a.Date.Format("2006-01-02"),
		}},
	})
	return a, nil
}

func (d *EmergencyDispatcher) escalate(ctx context.Context, req *DispatchRequest, post *models.Post, shift *models.Shift, best *ScoreBreakdown, remaining []*ScoreBreakdown, unfilled int) (*models.ApprovalRequest, error) {
	ranking := make([]map[string]interface{}, 0, len(remaining))
	for _, c := range remaining {
		ranking = append(ranking, map[string]interface{}{
			"worker_id": c.WorkerID,
			"score":     c.Total,
			"qualified": c.Qualified(),
		})
	}
	details := map[string]interface{}{
		"slots_unfilled":     unfilled,
		"ranking":            ranking,
		"dispatch_min_score": d.policy.DispatchMinScore,
		detailPostRiskLevel:  string(post.RiskLevel),
	}

	open := &OpenApprovalRequest{
		Type:          models.ApprovalTypeEmergencyAssignment,
		Priority:      models.ApprovalPriorityUrgent,
		Justification: fmt.Sprintf("no candidate qualified automatically for %s", post.Name),
		Details:       details,
		PostID:        &post.ID,
		ShiftID:       &shift.ID,
		Date:          req.Date,
		RequestedBy:   req.RequestedBy,
		Now:           req.Now,
	}
	if best != nil {
		id, err := uuid.Parse(best.WorkerID)
		if err == nil {
			open.WorkerID = &id
		}
		details["suggested_score"] = best.Total
		details["suggested_missing"] = best.Missing
	}

	approval, err := d.deps.Approvals.Open(ctx, open)
	if err != nil {
		return nil, fmt.Errorf("failed to open emergency assignment request: %w", err)
	}
	return approval, nil
}

// PostCoverage reports coverage for a post on a YYYY-MM-DD date in the
// site's time zone
func (d *EmergencyDispatcher) PostCoverage(ctx context.Context, postID uuid.UUID, date string) (*Coverage, error) {
	post, err := d.deps.Posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	loc, err := siteLocation(ctx, d.deps.Sites, post.SiteID)
	if err != nil {
		return nil, err
	}
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}
	return d.deps.Coverage.Coverage(ctx, post, day)
}
