package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"
	"guard-deployment-backend/internal/lock"
	"guard-deployment-backend/internal/mocks"
	"guard-deployment-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ApprovalServiceTestSuite defines the test suite for ApprovalService
type ApprovalServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	requests    *mocks.MockApprovalRequestRepositoryInterface
	rules       *mocks.MockAutoApprovalRuleRepositoryInterface
	assignments *mocks.MockAssignmentRepositoryInterface
	shifts      *mocks.MockShiftRepositoryInterface
	posts       *mocks.MockPostRepositoryInterface
	sites       *mocks.MockSiteRepositoryInterface
	effects     *recordingPublisher
	service     *service.ApprovalService

	now      time.Time
	reviewer service.Actor
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.requests = mocks.NewMockApprovalRequestRepositoryInterface(suite.ctrl)
	suite.rules = mocks.NewMockAutoApprovalRuleRepositoryInterface(suite.ctrl)
	suite.assignments = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.shifts = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.posts = mocks.NewMockPostRepositoryInterface(suite.ctrl)
	suite.sites = mocks.NewMockSiteRepositoryInterface(suite.ctrl)
	suite.effects = &recordingPublisher{}

	suite.service = service.NewApprovalService(service.ApprovalDeps{
		Requests:    suite.requests,
		Rules:       suite.rules,
		Assignments: suite.assignments,
		Shifts:      suite.shifts,
		Posts:       suite.posts,
		Sites:       suite.sites,
	}, lock.NewKeyedMutex(), suite.effects, validator.New(), service.DefaultPolicy())

	suite.now = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	suite.reviewer = service.Actor{Username: "supervisor1", Role: service.RoleSupervisor}
}

func (suite *ApprovalServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectCreate assigns an id the way the database would
func (suite *ApprovalServiceTestSuite) expectCreate() *uuid.UUID {
	id := uuid.New()
	suite.requests.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.ApprovalRequest) error {
			r.ID = id
			r.Version = 1
			return nil
		})
	return &id
}

func (suite *ApprovalServiceTestSuite) overrideRequest(assignmentID uuid.UUID) *service.OpenApprovalRequest {
	return &service.OpenApprovalRequest{
		Type:         models.ApprovalTypeValidationOverride,
		ReasonCode:   string(service.ReasonWrongPostLocation),
		Details:      map[string]interface{}{"distance_meters": 130.0, "post_risk_level": "LOW"},
		AssignmentID: &assignmentID,
		Date:         "2026-03-14",
		RequestedBy:  "guard1",
		Now:          suite.now,
	}
}

func (suite *ApprovalServiceTestSuite) scheduled() *models.Assignment {
	a := &models.Assignment{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		VersionedModel: models.VersionedModel{Version: 1},
		WorkerID:       uuid.New(),
		PostID:         uuid.New(),
		SiteID:         uuid.New(),
		Status:         models.AssignmentStatusScheduled,
	}
	a.SetWindow(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), models.MustClockTime("08:00"), models.MustClockTime("16:00"), time.UTC)
	return a
}

func (suite *ApprovalServiceTestSuite) pending(t models.ApprovalRequestType, priority models.ApprovalPriority, createdAt time.Time) *models.ApprovalRequest {
	r := &models.ApprovalRequest{
		BaseModel:      models.BaseModel{ID: uuid.New(), CreatedAt: createdAt},
		VersionedModel: models.VersionedModel{Version: 1},
		Type:           t,
		Priority:       priority,
		Status:         models.ApprovalStatusPending,
		RequestedBy:    "guard1",
		ReasonCode:     string(service.ReasonWrongPostLocation),
		Details:        models.JSONMap{},
		ExpiresAt:      service.ExpiryFor(priority, createdAt),
	}
	return r
}

func (suite *ApprovalServiceTestSuite) TestOpenWithoutMatchingRuleNotifiesReviewers() {
	suite.expectCreate()
	suite.rules.EXPECT().ListActive(gomock.Any(), models.ApprovalTypeValidationOverride).Return(nil, nil)

	r, err := suite.service.Open(context.Background(), suite.overrideRequest(uuid.New()))

	suite.Require().NoError(err)
	suite.Equal(models.ApprovalStatusPending, r.Status)
	suite.Equal(models.ApprovalPriorityNormal, r.Priority)
	suite.Equal(suite.now.Add(24*time.Hour), r.ExpiresAt)
	suite.Equal("2026-03-14", r.Date.Format("2006-01-02"))
	suite.True(suite.effects.Has(service.EffectNotifyReviewers))
}

func (suite *ApprovalServiceTestSuite) TestOpenAutoApprovesAndAppliesOverride() {
	a := suite.scheduled()
	suite.expectCreate()
	maxDistance := 150.0
	rule := models.AutoApprovalRule{
		BaseModel:         models.BaseModel{ID: uuid.New()},
		Name:              "near misses",
		Sequence:          10,
		IsActive:          true,
		RequestTypes:      models.StringList{"VALIDATION_OVERRIDE"},
		ReasonCodes:       models.StringList{"WRONG_POST_LOCATION"},
		PostRiskLevels:    models.StringList{"LOW"},
		MaxDistanceMeters: &maxDistance,
	}
	suite.rules.EXPECT().ListActive(gomock.Any(), models.ApprovalTypeValidationOverride).Return([]models.AutoApprovalRule{rule}, nil)
	suite.assignments.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	suite.assignments.EXPECT().Save(gomock.Any(), a).Return(nil)
	suite.requests.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	r, err := suite.service.Open(context.Background(), suite.overrideRequest(a.ID))

	suite.Require().NoError(err)
	suite.Equal(models.ApprovalStatusAutoApproved, r.Status)
	suite.Equal(rule.ID, *r.AutoApprovalRuleID)
	suite.True(a.IsOverride)
	suite.Equal("WRONG_POST_LOCATION", a.OverrideType)
	suite.Equal("approved override of WRONG_POST_LOCATION", a.OverrideReason)
	suite.Equal("system", a.ApprovedBy)
	suite.True(suite.effects.Has(service.EffectExecuteApprovedAction))
	suite.False(suite.effects.Has(service.EffectNotifyReviewers))
}

func (suite *ApprovalServiceTestSuite) TestOpenLeavesRequestPendingWhenActionFails() {
	a := suite.scheduled()
	a.Status = models.AssignmentStatusInProgress
	id := suite.expectCreate()
	rule := models.AutoApprovalRule{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "all overrides",
		IsActive:     true,
		RequestTypes: models.StringList{"VALIDATION_OVERRIDE"},
	}
	suite.rules.EXPECT().ListActive(gomock.Any(), models.ApprovalTypeValidationOverride).Return([]models.AutoApprovalRule{rule}, nil)
	suite.assignments.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	suite.assignments.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
	suite.requests.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	stored := suite.pending(models.ApprovalTypeValidationOverride, models.ApprovalPriorityNormal, suite.now)
	stored.ID = *id
	suite.requests.EXPECT().GetByID(gomock.Any(), *id).Return(stored, nil)

	r, err := suite.service.Open(context.Background(), suite.overrideRequest(a.ID))

	suite.Require().NoError(err)
	suite.Equal(models.ApprovalStatusPending, r.Status)
	suite.False(a.IsOverride)
}

func (suite *ApprovalServiceTestSuite) TestOpenRejectsHardBlock() {
	suite.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	req := suite.overrideRequest(uuid.New())
	req.ReasonCode = string(service.ReasonDuplicateCheckIn)
	_, err := suite.service.Open(context.Background(), req)
	suite.ErrorIs(err, apperrors.ErrHardBlockNotOverridable)

	req.ReasonCode = ""
	_, err = suite.service.Open(context.Background(), req)
	suite.True(apperrors.IsValidation(err))

	req.ReasonCode = string(service.ReasonWrongPostLocation)
	req.Date = "14/03/2026"
	_, err = suite.service.Open(context.Background(), req)
	suite.ErrorIs(err, apperrors.ErrInvalidDate)
}

func (suite *ApprovalServiceTestSuite) TestOpenRequiresRequestTime() {
	suite.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	req := suite.overrideRequest(uuid.New())
	req.Now = time.Time{}
	_, err := suite.service.Open(context.Background(), req)

	suite.True(apperrors.IsValidation(err))
}

func (suite *ApprovalServiceTestSuite) TestApproveRequiresReviewer() {
	suite.requests.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.service.Approve(context.Background(), uuid.New(), service.Actor{Username: "guard1", Role: service.RoleGuard}, service.ApprovalDecision{}, suite.now)
	suite.ErrorIs(err, apperrors.ErrReviewerRequired)

	_, err = suite.service.Reject(context.Background(), uuid.New(), service.Actor{Username: "guard1", Role: service.RoleGuard}, "no", suite.now)
	suite.ErrorIs(err, apperrors.ErrReviewerRequired)
}

func (suite *ApprovalServiceTestSuite) TestApproveAppliesOverride() {
	a := suite.scheduled()
	r := suite.pending(models.ApprovalTypeValidationOverride, models.ApprovalPriorityHigh, suite.now.Add(-time.Hour))
	r.AssignmentID = &a.ID
	r.Justification = "gate relocated for works"

	suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)
	suite.assignments.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	suite.assignments.EXPECT().Save(gomock.Any(), a).Return(nil)
	suite.requests.EXPECT().Save(gomock.Any(), r).Return(nil)

	out, err := suite.service.Approve(context.Background(), r.ID, suite.reviewer, service.ApprovalDecision{Notes: "ok"}, suite.now)

	suite.Require().NoError(err)
	suite.Equal(models.ApprovalStatusManuallyApproved, out.Status)
	suite.Equal("supervisor1", out.ResolvedBy)
	suite.Equal("gate relocated for works", a.OverrideReason)
	suite.Equal("supervisor1", a.ApprovedBy)
}

func (suite *ApprovalServiceTestSuite) TestApproveDoesNotSaveWhenActionFails() {
	r := suite.pending(models.ApprovalTypeValidationOverride, models.ApprovalPriorityNormal, suite.now.Add(-time.Hour))
	assignmentID := uuid.New()
	r.AssignmentID = &assignmentID

	suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)
	suite.assignments.EXPECT().GetByID(gomock.Any(), assignmentID).Return(nil, apperrors.ErrAssignmentNotFound)
	suite.requests.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.service.Approve(context.Background(), r.ID, suite.reviewer, service.ApprovalDecision{}, suite.now)

	suite.ErrorIs(err, apperrors.ErrAssignmentNotFound)
}

func (suite *ApprovalServiceTestSuite) TestApproveExpiredRecordsExpiry() {
	r := suite.pending(models.ApprovalTypeValidationOverride, models.ApprovalPriorityUrgent, suite.now.Add(-3*time.Hour))
	suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)
	suite.requests.EXPECT().Save(gomock.Any(), r).Return(nil)
	suite.assignments.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	out, err := suite.service.Approve(context.Background(), r.ID, suite.reviewer, service.ApprovalDecision{}, suite.now)

	suite.ErrorIs(err, apperrors.ErrApprovalExpired)
	suite.Nil(out)
	suite.Equal(models.ApprovalStatusExpired, r.Status)
}

func (suite *ApprovalServiceTestSuite) TestRejectAndCancel() {
	suite.Run("reject without reason", func() {
		r := suite.pending(models.ApprovalTypeShiftChange, models.ApprovalPriorityNormal, suite.now)
		suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)

		_, err := suite.service.Reject(context.Background(), r.ID, suite.reviewer, " ", suite.now)
		suite.ErrorIs(err, apperrors.ErrRejectReasonRequired)
	})

	suite.Run("reject", func() {
		r := suite.pending(models.ApprovalTypeShiftChange, models.ApprovalPriorityNormal, suite.now)
		suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)
		suite.requests.EXPECT().Save(gomock.Any(), r).Return(nil)

		out, err := suite.service.Reject(context.Background(), r.ID, suite.reviewer, "not justified", suite.now)
		suite.Require().NoError(err)
		suite.Equal(models.ApprovalStatusRejected, out.Status)
		suite.Equal("not justified", out.RejectionReason)
	})

	suite.Run("cancel by someone else", func() {
		r := suite.pending(models.ApprovalTypeShiftChange, models.ApprovalPriorityNormal, suite.now)
		suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)

		_, err := suite.service.Cancel(context.Background(), r.ID, suite.reviewer, suite.now)
		suite.ErrorIs(err, apperrors.ErrNotRequester)
	})

	suite.Run("cancel by requester", func() {
		r := suite.pending(models.ApprovalTypeShiftChange, models.ApprovalPriorityNormal, suite.now)
		suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)
		suite.requests.EXPECT().Save(gomock.Any(), r).Return(nil)

		out, err := suite.service.Cancel(context.Background(), r.ID, service.Actor{Username: "guard1", Role: service.RoleGuard}, suite.now)
		suite.Require().NoError(err)
		suite.Equal(models.ApprovalStatusCancelled, out.Status)
	})
}

func (suite *ApprovalServiceTestSuite) TestApproveCreatesEmergencyAssignment() {
	site := &models.Site{BaseModel: models.BaseModel{ID: uuid.New()}, Timezone: "UTC"}
	post := &models.Post{BaseModel: models.BaseModel{ID: uuid.New()}, SiteID: site.ID, Name: "Dock"}
	shift := &models.Shift{BaseModel: models.BaseModel{ID: uuid.New()}, SiteID: site.ID,
		StartTime: models.MustClockTime("22:00"), EndTime: models.MustClockTime("06:00")}
	workerID := uuid.New()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	r := suite.pending(models.ApprovalTypeEmergencyAssignment, models.ApprovalPriorityUrgent, suite.now)
	r.RequestedBy = "dispatcher"
	r.WorkerID = &workerID
	r.PostID = &post.ID
	r.ShiftID = &shift.ID
	r.Date = &date

	created := uuid.New()
	suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)
	suite.posts.EXPECT().GetByID(gomock.Any(), post.ID).Return(post, nil)
	suite.shifts.EXPECT().GetByID(gomock.Any(), shift.ID).Return(shift, nil)
	suite.sites.EXPECT().GetByID(gomock.Any(), site.ID).Return(site, nil)
	suite.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Assignment) error {
			suite.Equal(workerID, a.WorkerID)
			suite.Equal(models.AssignmentStatusScheduled, a.Status)
			suite.Equal(time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC), a.EndsAt)
			suite.Equal("dispatcher", a.AssignedBy)
			suite.Equal("supervisor1", a.ApprovedBy)
			a.ID = created
			return nil
		})
	suite.requests.EXPECT().Save(gomock.Any(), r).Return(nil)

	out, err := suite.service.Approve(context.Background(), r.ID, suite.reviewer, service.ApprovalDecision{}, suite.now.Add(10*time.Minute))

	suite.Require().NoError(err)
	suite.Equal(created, *out.AssignmentID)
	suite.True(suite.effects.Has(service.EffectCoverageChanged))
}

func (suite *ApprovalServiceTestSuite) TestApproveEmergencyWithoutCandidate() {
	site := &models.Site{BaseModel: models.BaseModel{ID: uuid.New()}, Timezone: "UTC"}
	post := &models.Post{BaseModel: models.BaseModel{ID: uuid.New()}, SiteID: site.ID, Name: "Dock"}
	shift := &models.Shift{BaseModel: models.BaseModel{ID: uuid.New()}, SiteID: site.ID,
		StartTime: models.MustClockTime("08:00"), EndTime: models.MustClockTime("16:00")}
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	candidateless := func() *models.ApprovalRequest {
		r := suite.pending(models.ApprovalTypeEmergencyAssignment, models.ApprovalPriorityUrgent, suite.now)
		r.RequestedBy = "dispatcher"
		r.PostID = &post.ID
		r.ShiftID = &shift.ID
		r.Date = &date
		return r
	}

	suite.Run("without a worker", func() {
		r := candidateless()
		suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)

		_, err := suite.service.Approve(context.Background(), r.ID, suite.reviewer, service.ApprovalDecision{}, suite.now)

		suite.True(apperrors.IsValidation(err))
		suite.Nil(r.AssignmentID)
	})

	suite.Run("with the reviewer's worker", func() {
		r := candidateless()
		workerID := uuid.New()
		created := uuid.New()
		suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)
		suite.posts.EXPECT().GetByID(gomock.Any(), post.ID).Return(post, nil)
		suite.shifts.EXPECT().GetByID(gomock.Any(), shift.ID).Return(shift, nil)
		suite.sites.EXPECT().GetByID(gomock.Any(), site.ID).Return(site, nil)
		suite.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *models.Assignment) error {
				suite.Equal(workerID, a.WorkerID)
				suite.Equal(post.ID, a.PostID)
				a.ID = created
				return nil
			})
		suite.requests.EXPECT().Save(gomock.Any(), r).Return(nil)

		out, err := suite.service.Approve(context.Background(), r.ID, suite.reviewer,
			service.ApprovalDecision{Notes: "called in from reserve", WorkerID: &workerID}, suite.now)

		suite.Require().NoError(err)
		suite.Equal(workerID, *out.WorkerID)
		suite.Equal(created, *out.AssignmentID)
		suite.Equal(models.ApprovalStatusManuallyApproved, out.Status)
	})

	suite.Run("with a different worker than suggested", func() {
		r := candidateless()
		suggested := uuid.New()
		r.WorkerID = &suggested
		other := uuid.New()
		suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)

		_, err := suite.service.Approve(context.Background(), r.ID, suite.reviewer, service.ApprovalDecision{WorkerID: &other}, suite.now)

		suite.True(apperrors.IsValidation(err))
		suite.Equal(suggested, *r.WorkerID)
	})
}

func (suite *ApprovalServiceTestSuite) TestApproveOverrideRejectsWorker() {
	r := suite.pending(models.ApprovalTypeValidationOverride, models.ApprovalPriorityNormal, suite.now)
	assignmentID := uuid.New()
	r.AssignmentID = &assignmentID
	workerID := uuid.New()
	suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)
	suite.assignments.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.service.Approve(context.Background(), r.ID, suite.reviewer, service.ApprovalDecision{WorkerID: &workerID}, suite.now)

	suite.True(apperrors.IsValidation(err))
}

func (suite *ApprovalServiceTestSuite) TestApproveRetriesAfterRequestSaveFails() {
	a := suite.scheduled()
	id := uuid.New()
	attempt := func() *models.ApprovalRequest {
		r := suite.pending(models.ApprovalTypeValidationOverride, models.ApprovalPriorityNormal, suite.now.Add(-time.Hour))
		r.ID = id
		r.AssignmentID = &a.ID
		return r
	}

	// the assignment is written first, then the request
	first := attempt()
	gomock.InOrder(
		suite.requests.EXPECT().GetByID(gomock.Any(), id).Return(first, nil),
		suite.assignments.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil),
		suite.assignments.EXPECT().Save(gomock.Any(), a).Return(nil),
		suite.requests.EXPECT().Save(gomock.Any(), first).Return(apperrors.ErrOptimisticLock),
	)
	_, err := suite.service.Approve(context.Background(), id, suite.reviewer, service.ApprovalDecision{}, suite.now)
	suite.ErrorIs(err, apperrors.ErrOptimisticLock)
	suite.True(a.IsOverride)

	second := attempt()
	suite.requests.EXPECT().GetByID(gomock.Any(), id).Return(second, nil)
	suite.assignments.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	suite.assignments.EXPECT().Save(gomock.Any(), a).Return(nil)
	suite.requests.EXPECT().Save(gomock.Any(), second).Return(nil)

	out, err := suite.service.Approve(context.Background(), id, suite.reviewer, service.ApprovalDecision{}, suite.now)

	suite.Require().NoError(err)
	suite.Equal(models.ApprovalStatusManuallyApproved, out.Status)
	suite.Equal(models.AssignmentStatusScheduled, a.Status)
	suite.Equal("WRONG_POST_LOCATION", a.OverrideType)
}

func (suite *ApprovalServiceTestSuite) TestApproveShiftChangeRejectsOverlap() {
	a := suite.scheduled()
	site := &models.Site{BaseModel: models.BaseModel{ID: a.SiteID}, Timezone: "UTC"}
	late := &models.Shift{BaseModel: models.BaseModel{ID: uuid.New()}, SiteID: a.SiteID,
		StartTime: models.MustClockTime("14:00"), EndTime: models.MustClockTime("22:00")}

	r := suite.pending(models.ApprovalTypeShiftChange, models.ApprovalPriorityNormal, suite.now)
	r.AssignmentID = &a.ID
	r.ShiftID = &late.ID

	suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)
	suite.shifts.EXPECT().GetByID(gomock.Any(), late.ID).Return(late, nil)
	suite.assignments.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	suite.sites.EXPECT().GetByID(gomock.Any(), a.SiteID).Return(site, nil)
	suite.assignments.EXPECT().HasOverlap(gomock.Any(), a).Return(true, nil)
	suite.assignments.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
	suite.requests.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.service.Approve(context.Background(), r.ID, suite.reviewer, service.ApprovalDecision{}, suite.now)

	suite.ErrorIs(err, apperrors.ErrDoubleBooking)
}

func (suite *ApprovalServiceTestSuite) TestApproveShiftChangeMovesWindow() {
	a := suite.scheduled()
	site := &models.Site{BaseModel: models.BaseModel{ID: a.SiteID}, Timezone: "UTC"}
	late := &models.Shift{BaseModel: models.BaseModel{ID: uuid.New()}, SiteID: a.SiteID,
		StartTime: models.MustClockTime("14:00"), EndTime: models.MustClockTime("22:00")}

	r := suite.pending(models.ApprovalTypeShiftChange, models.ApprovalPriorityNormal, suite.now)
	r.AssignmentID = &a.ID
	r.ShiftID = &late.ID

	suite.requests.EXPECT().GetByID(gomock.Any(), r.ID).Return(r, nil)
	suite.shifts.EXPECT().GetByID(gomock.Any(), late.ID).Return(late, nil)
	suite.assignments.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	suite.sites.EXPECT().GetByID(gomock.Any(), a.SiteID).Return(site, nil)
	suite.assignments.EXPECT().HasOverlap(gomock.Any(), a).Return(false, nil)
	suite.assignments.EXPECT().Save(gomock.Any(), a).Return(nil)
	suite.requests.EXPECT().Save(gomock.Any(), r).Return(nil)

	_, err := suite.service.Approve(context.Background(), r.ID, suite.reviewer, service.ApprovalDecision{}, suite.now)

	suite.Require().NoError(err)
	suite.Equal(late.ID, *a.ShiftID)
	suite.Equal(time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC), a.StartsAt)
	suite.Equal(time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC), a.EndsAt)
}

func (suite *ApprovalServiceTestSuite) TestExpireOverdue() {
	due := suite.pending(models.ApprovalTypeValidationOverride, models.ApprovalPriorityUrgent, suite.now.Add(-3*time.Hour))
	resolved := suite.pending(models.ApprovalTypeValidationOverride, models.ApprovalPriorityUrgent, suite.now.Add(-3*time.Hour))
	resolvedMeanwhile := *resolved
	resolvedMeanwhile.Status = models.ApprovalStatusManuallyApproved

	suite.requests.EXPECT().ListExpired(gomock.Any(), suite.now, 500).Return([]models.ApprovalRequest{*due, *resolved}, nil)
	suite.requests.EXPECT().GetByID(gomock.Any(), due.ID).Return(due, nil)
	suite.requests.EXPECT().Save(gomock.Any(), due).Return(nil)
	suite.requests.EXPECT().GetByID(gomock.Any(), resolved.ID).Return(&resolvedMeanwhile, nil)

	n, err := suite.service.ExpireOverdue(context.Background(), suite.now)

	suite.Require().NoError(err)
	suite.Equal(1, n)
	suite.Equal(models.ApprovalStatusExpired, due.Status)
}

func (suite *ApprovalServiceTestSuite) TestEscalateOverdue() {
	urgent := suite.pending(models.ApprovalTypeEmergencyAssignment, models.ApprovalPriorityUrgent, suite.now.Add(-20*time.Minute))
	fresh := suite.pending(models.ApprovalTypeEmergencyAssignment, models.ApprovalPriorityHigh, suite.now.Add(-20*time.Minute))
	reloaded := *fresh
	escalatedAt := suite.now.Add(-time.Minute)
	reloaded.EscalatedAt = &escalatedAt

	suite.requests.EXPECT().ListEscalationDue(gomock.Any(), suite.now.Add(-15*time.Minute), 500).
		Return([]models.ApprovalRequest{*urgent, *fresh}, nil)
	suite.requests.EXPECT().GetByID(gomock.Any(), urgent.ID).Return(urgent, nil)
	suite.requests.EXPECT().CreateEscalation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.ApprovalEscalation) error {
			suite.Equal(urgent.ID, e.ApprovalRequestID)
			suite.Equal(20, e.PendingMinutes)
			return nil
		})
	suite.requests.EXPECT().Save(gomock.Any(), urgent).Return(nil)
	suite.requests.EXPECT().GetByID(gomock.Any(), fresh.ID).Return(&reloaded, nil)

	n, err := suite.service.EscalateOverdue(context.Background(), suite.now)

	suite.Require().NoError(err)
	suite.Equal(1, n)
	suite.Equal(models.ApprovalStatusPending, urgent.Status)
	suite.NotNil(urgent.EscalatedAt)
	suite.True(suite.effects.Has(service.EffectNotifyReviewers))
}

func (suite *ApprovalServiceTestSuite) TestEscalateOverdueSkipsConcurrentEscalation() {
	urgent := suite.pending(models.ApprovalTypeEmergencyAssignment, models.ApprovalPriorityUrgent, suite.now.Add(-20*time.Minute))

	suite.requests.EXPECT().ListEscalationDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.ApprovalRequest{*urgent}, nil)
	suite.requests.EXPECT().GetByID(gomock.Any(), urgent.ID).Return(urgent, nil)
	suite.requests.EXPECT().CreateEscalation(gomock.Any(), gomock.Any()).Return(apperrors.ErrEscalationAlreadyFiled)

	n, err := suite.service.EscalateOverdue(context.Background(), suite.now)

	suite.Require().NoError(err)
	suite.Equal(0, n)
}

func (suite *ApprovalServiceTestSuite) TestListPendingPaging() {
	suite.requests.EXPECT().ListPending(gomock.Any(), 20, 0).Return([]models.ApprovalRequest{}, int64(0), nil)
	out, err := suite.service.ListPending(context.Background(), 0, 500)
	suite.Require().NoError(err)
	suite.Equal(1, out.Page)
	suite.Equal(20, out.PageSize)

	suite.requests.EXPECT().ListPending(gomock.Any(), 10, 20).Return([]models.ApprovalRequest{}, int64(25), nil)
	out, err = suite.service.ListPending(context.Background(), 3, 10)
	suite.Require().NoError(err)
	suite.Equal(int64(25), out.Total)

	suite.requests.EXPECT().ListPending(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("connection reset"))
	_, err = suite.service.ListPending(context.Background(), 1, 10)
	suite.Error(err)
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
