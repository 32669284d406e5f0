package service_test

import (
	"context"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

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

// recordingPublisher collects published effects
type recordingPublisher struct {
	mu      sync.Mutex
	effects service.Effects
}

func (p *recordingPublisher) Publish(_ context.Context, effects service.Effects) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.effects = append(p.effects, effects...)
	return nil
}

func (p *recordingPublisher) Has(kind service.EffectKind) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.effects.Has(kind)
}

// AssignmentServiceTestSuite defines the test suite for AssignmentService
type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	assignments *mocks.MockAssignmentRepositoryInterface
	sites       *mocks.MockSiteRepositoryInterface
	membership  *mocks.MockSiteMembershipLookup
	schedule    *mocks.MockShiftScheduleLookup
	acks        *mocks.MockAcknowledgementLookup
	certs       *mocks.MockCertificationLookup
	approvals   *mocks.MockApprovalServiceInterface
	effects     *recordingPublisher
	service     *service.AssignmentService

	site       *models.Site
	post       *models.Post
	shift      *models.Shift
	assignment *models.Assignment
	workerID   uuid.UUID
	day        time.Time
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.assignments = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.sites = mocks.NewMockSiteRepositoryInterface(suite.ctrl)
	suite.membership = mocks.NewMockSiteMembershipLookup(suite.ctrl)
	suite.schedule = mocks.NewMockShiftScheduleLookup(suite.ctrl)
	suite.acks = mocks.NewMockAcknowledgementLookup(suite.ctrl)
	suite.certs = mocks.NewMockCertificationLookup(suite.ctrl)
	suite.approvals = mocks.NewMockApprovalServiceInterface(suite.ctrl)
	suite.effects = &recordingPublisher{}

	policy := service.DefaultPolicy()
	pipeline := service.NewCheckInValidator(service.CheckInCollaborators{
		Sites:            suite.membership,
		Schedule:         suite.schedule,
		Attendance:       suite.assignments,
		PostAssignments:  suite.assignments,
		Acknowledgements: suite.acks,
		Certifications:   suite.certs,
	}, policy)
	suite.service = service.NewAssignmentService(suite.assignments, suite.sites, pipeline, suite.approvals,
		lock.NewKeyedMutex(), suite.effects, validator.New(), policy)

	suite.workerID = uuid.New()
	suite.site = &models.Site{BaseModel: models.BaseModel{ID: uuid.New()}, Code: "HLC", Timezone: "UTC"}
	suite.day = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	suite.shift = &models.Shift{
		BaseModel: models.BaseModel{ID: uuid.New()},
		SiteID:    suite.site.ID,
		Name:      "Day",
		StartTime: models.MustClockTime("08:00"),
		EndTime:   models.MustClockTime("16:00"),
	}
	suite.post = &models.Post{
		BaseModel:         models.BaseModel{ID: uuid.New()},
		SiteID:            suite.site.ID,
		Name:              "Main Gate",
		GeofenceType:      models.GeofenceTypeCircle,
		CenterLat:         51.5007,
		CenterLon:         -0.1246,
		RadiusMeters:      100,
		RiskLevel:         models.RiskLevelLow,
		PostOrdersVersion: 2,
	}
	suite.assignment = &models.Assignment{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		VersionedModel: models.VersionedModel{Version: 1},
		WorkerID:       suite.workerID,
		PostID:         suite.post.ID,
		ShiftID:        &suite.shift.ID,
		SiteID:         suite.site.ID,
		Status:         models.AssignmentStatusScheduled,
		AssignedBy:     "planner1",
		Post:           suite.post,
	}
	suite.assignment.SetWindow(suite.day, suite.shift.StartTime, suite.shift.EndTime, time.UTC)
}

func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentServiceTestSuite) request(at time.Time) *service.CheckInRequest {
	return &service.CheckInRequest{
		WorkerID:       suite.workerID,
		SiteID:         suite.site.ID,
		Latitude:       suite.post.CenterLat,
		Longitude:      suite.post.CenterLon,
		AccuracyMeters: 6,
		At:             at,
		RequestedBy:    "guard1",
	}
}

func (suite *AssignmentServiceTestSuite) copyOf(a *models.Assignment) *models.Assignment {
	c := *a
	return &c
}

// expectPipelineUntilPost stubs the roster and history reads to pass
func (suite *AssignmentServiceTestSuite) expectPipelineUntilPost() {
	suite.sites.EXPECT().GetByID(gomock.Any(), suite.site.ID).Return(suite.site, nil)
	suite.membership.EXPECT().IsWorkerAssignedToSite(gomock.Any(), suite.workerID, suite.site.ID).Return(true, nil)
	suite.schedule.EXPECT().FindActiveShiftAssignment(gomock.Any(), suite.workerID, suite.site.ID, gomock.Any()).
		Return(&models.ScheduleEntry{ShiftID: &suite.shift.ID, Shift: suite.shift}, true, nil)
	suite.assignments.EXPECT().FindLastCheckout(gomock.Any(), suite.workerID).Return(suite.day.Add(-14*time.Hour), true, nil)
	suite.assignments.EXPECT().HasOpenCheckIn(gomock.Any(), suite.workerID, gomock.Any()).Return(false, nil)
}

func (suite *AssignmentServiceTestSuite) TestCheckInLate() {
	suite.expectPipelineUntilPost()
	suite.assignments.EXPECT().FindPostAssignment(gomock.Any(), suite.workerID, suite.day, gomock.Any()).Return(suite.copyOf(suite.assignment), true, nil)
	suite.assignments.EXPECT().GetByID(gomock.Any(), suite.assignment.ID).Return(suite.copyOf(suite.assignment), nil)
	suite.assignments.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Assignment) error {
			suite.Equal(models.AssignmentStatusInProgress, a.Status)
			a.Version++
			return nil
		})

	resp, err := suite.service.CheckIn(context.Background(), suite.request(suite.day.Add(8*time.Hour+5*time.Minute)))

	suite.Require().NoError(err)
	suite.True(resp.Result.Valid)
	suite.Equal(5, resp.Result.Details["late_minutes"])
	suite.Require().NotNil(resp.Assignment)
	suite.Equal(models.AssignmentStatusInProgress, resp.Assignment.Status)
	suite.Equal(5, *resp.Assignment.LateMinutes)
	suite.Equal(suite.post.CenterLat, *resp.Assignment.CheckInLat)
	suite.Equal("guard1", resp.Assignment.UpdatedBy)
	suite.Nil(resp.ApprovalRequest)
	suite.True(suite.effects.Has(service.EffectNotifySupervisor))
}

func (suite *AssignmentServiceTestSuite) TestCheckInHighRiskPostEndToEnd() {
	suite.post.RiskLevel = models.RiskLevelHigh
	suite.post.CenterLat = 1.3521
	suite.post.CenterLon = 103.8198
	suite.post.RadiusMeters = 50
	suite.shift.StartTime = models.MustClockTime("09:00")
	suite.shift.EndTime = models.MustClockTime("17:00")
	suite.assignment.SetWindow(suite.day, suite.shift.StartTime, suite.shift.EndTime, time.UTC)
	at := suite.day.Add(9*time.Hour + 5*time.Minute)

	suite.sites.EXPECT().GetByID(gomock.Any(), suite.site.ID).Return(suite.site, nil)
	suite.membership.EXPECT().IsWorkerAssignedToSite(gomock.Any(), suite.workerID, suite.site.ID).Return(true, nil)
	suite.schedule.EXPECT().FindActiveShiftAssignment(gomock.Any(), suite.workerID, suite.site.ID, suite.day).
		Return(&models.ScheduleEntry{ShiftID: &suite.shift.ID, Shift: suite.shift}, true, nil)
	suite.assignments.EXPECT().FindLastCheckout(gomock.Any(), suite.workerID).Return(at.Add(-14*time.Hour), true, nil)
	suite.assignments.EXPECT().HasOpenCheckIn(gomock.Any(), suite.workerID, suite.day).Return(false, nil)
	suite.assignments.EXPECT().FindPostAssignment(gomock.Any(), suite.workerID, suite.day, gomock.Any()).Return(suite.copyOf(suite.assignment), true, nil)
	suite.acks.EXPECT().HasValidAcknowledgement(gomock.Any(), suite.workerID, suite.post.ID, suite.day).Return(true, nil)
	suite.assignments.EXPECT().GetByID(gomock.Any(), suite.assignment.ID).Return(suite.copyOf(suite.assignment), nil)
	suite.assignments.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	req := suite.request(at)
	req.Latitude += 30.0 / 111195.0
	resp, err := suite.service.CheckIn(context.Background(), req)

	suite.Require().NoError(err)
	suite.True(resp.Result.Valid, resp.Result.Message)
	suite.Require().NotNil(resp.Assignment)
	suite.Equal(models.AssignmentStatusInProgress, resp.Assignment.Status)
	suite.Equal(5, *resp.Assignment.LateMinutes)
	suite.True(resp.Assignment.PostOrdersAcknowledged)
	suite.Equal(suite.post.PostOrdersVersion, *resp.Assignment.AcknowledgedVersion)
}

// checkInUnderNoPostOverride names an assignment carrying an approved
// NO_POST_ASSIGNED override while no post assignment is found for the day
func (suite *AssignmentServiceTestSuite) checkInUnderNoPostOverride(named *models.Assignment) *service.CheckInResponse {
	named.IsOverride = true
	named.OverrideType = string(service.ReasonNoPostAssigned)

	suite.expectPipelineUntilPost()
	suite.assignments.EXPECT().GetByID(gomock.Any(), named.ID).
		DoAndReturn(func(context.Context, uuid.UUID) (*models.Assignment, error) {
			return suite.copyOf(named), nil
		}).Times(2)
	suite.assignments.EXPECT().FindPostAssignment(gomock.Any(), suite.workerID, suite.day, gomock.Any()).Return(nil, false, nil)
	suite.assignments.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Assignment) error {
			suite.Equal(named.ID, a.ID)
			return nil
		})

	req := suite.request(suite.day.Add(8 * time.Hour))
	req.AssignmentID = &named.ID
	resp, err := suite.service.CheckIn(context.Background(), req)

	suite.Require().NoError(err)
	suite.True(resp.Result.Valid, resp.Result.Message)
	suite.Equal([]service.ReasonCode{service.ReasonNoPostAssigned}, resp.Result.Overridden)
	suite.Require().NotNil(resp.Assignment)
	suite.Equal(models.AssignmentStatusInProgress, resp.Assignment.Status)
	return resp
}

func (suite *AssignmentServiceTestSuite) TestCheckInUnderNoPostOverrideUsesNamedAssignment() {
	resp := suite.checkInUnderNoPostOverride(suite.copyOf(suite.assignment))
	suite.Equal(suite.post.ID, resp.Assignment.Post.ID)
}

func (suite *AssignmentServiceTestSuite) TestCheckInUnderNoPostOverrideWithoutLoadedPost() {
	named := suite.copyOf(suite.assignment)
	named.Post = nil
	resp := suite.checkInUnderNoPostOverride(named)
	suite.Nil(resp.Assignment.Post)
	suite.False(resp.Assignment.PostOrdersAcknowledged)
}

func (suite *AssignmentServiceTestSuite) TestCheckInWithoutAcknowledgementIsBlocked() {
	suite.post.RiskLevel = models.RiskLevelHigh
	suite.expectPipelineUntilPost()
	suite.assignments.EXPECT().FindPostAssignment(gomock.Any(), suite.workerID, suite.day, gomock.Any()).Return(suite.copyOf(suite.assignment), true, nil)
	suite.acks.EXPECT().HasValidAcknowledgement(gomock.Any(), suite.workerID, suite.post.ID, suite.day).Return(false, nil)
	suite.assignments.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
	suite.approvals.EXPECT().Open(gomock.Any(), gomock.Any()).Times(0)

	req := suite.request(suite.day.Add(8*time.Hour + 5*time.Minute))
	req.RequestOverride = true
	resp, err := suite.service.CheckIn(context.Background(), req)

	suite.Require().NoError(err)
	suite.False(resp.Result.Valid)
	suite.Equal(service.ReasonPostOrdersNotAcknowledged, resp.Result.Reason)
	suite.False(resp.Result.RequiresApproval)
	suite.Nil(resp.Assignment)
	suite.Nil(resp.ApprovalRequest)
}

func (suite *AssignmentServiceTestSuite) TestCheckInOpensOverrideRequest() {
	suite.expectPipelineUntilPost()
	suite.assignments.EXPECT().FindPostAssignment(gomock.Any(), suite.workerID, suite.day, gomock.Any()).Return(suite.copyOf(suite.assignment), true, nil)

	approval := &models.ApprovalRequest{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.ApprovalStatusPending}
	suite.approvals.EXPECT().Open(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.OpenApprovalRequest) (*models.ApprovalRequest, error) {
			suite.Equal(models.ApprovalTypeValidationOverride, req.Type)
			suite.Equal(string(service.ReasonWrongPostLocation), req.ReasonCode)
			suite.Equal(suite.assignment.ID, *req.AssignmentID)
			suite.Equal(suite.post.ID, *req.PostID)
			suite.Equal("LOW", req.Details["post_risk_level"])
			suite.Equal("2026-03-14", req.Date)
			suite.Equal("guard1", req.RequestedBy)
			suite.Equal("temporary gate", req.Justification)
			return approval, nil
		})

	req := suite.request(suite.day.Add(8 * time.Hour))
	req.Latitude += 0.00135
	req.RequestOverride = true
	req.Justification = "temporary gate"
	resp, err := suite.service.CheckIn(context.Background(), req)

	suite.Require().NoError(err)
	suite.Equal(service.ReasonWrongPostLocation, resp.Result.Reason)
	suite.Same(approval, resp.ApprovalRequest)
}

func (suite *AssignmentServiceTestSuite) TestCheckInUsesSiteTimezone() {
	suite.site.Timezone = "Asia/Tokyo"
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	suite.Require().NoError(err)
	localDay := time.Date(2026, 3, 14, 0, 0, 0, 0, tokyo)

	suite.sites.EXPECT().GetByID(gomock.Any(), suite.site.ID).Return(suite.site, nil)
	suite.membership.EXPECT().IsWorkerAssignedToSite(gomock.Any(), suite.workerID, suite.site.ID).Return(true, nil)
	suite.schedule.EXPECT().FindActiveShiftAssignment(gomock.Any(), suite.workerID, suite.site.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, date time.Time) (*models.ScheduleEntry, bool, error) {
			suite.True(date.Equal(localDay))
			return nil, false, nil
		})

	// 23:05 UTC on the 13th is 08:05 on the 14th in Tokyo
	out, err := suite.service.ValidateCheckIn(context.Background(), suite.request(time.Date(2026, 3, 13, 23, 5, 0, 0, time.UTC)))

	suite.Require().NoError(err)
	suite.Equal(service.ReasonNoShiftAssigned, out.Reason)
	suite.Equal("2026-03-14", out.Details["date"])
}

func (suite *AssignmentServiceTestSuite) TestCheckInNamedAssignmentOfAnotherWorker() {
	other := suite.copyOf(suite.assignment)
	other.WorkerID = uuid.New()
	suite.sites.EXPECT().GetByID(gomock.Any(), suite.site.ID).Return(suite.site, nil)
	suite.assignments.EXPECT().GetByID(gomock.Any(), other.ID).Return(other, nil)

	req := suite.request(suite.day.Add(8 * time.Hour))
	req.AssignmentID = &other.ID
	_, err := suite.service.CheckIn(context.Background(), req)

	suite.True(apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestCheckInRejectsMissingWorker() {
	req := suite.request(suite.day.Add(8 * time.Hour))
	req.WorkerID = uuid.Nil
	_, err := suite.service.CheckIn(context.Background(), req)

	suite.True(apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestCancelRequiresStaffOrAssigner() {
	suite.assignments.EXPECT().GetByID(gomock.Any(), suite.assignment.ID).Return(suite.copyOf(suite.assignment), nil)
	suite.assignments.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.service.Cancel(context.Background(), suite.assignment.ID, service.Actor{Username: "guard1", Role: service.RoleGuard}, suite.day)
	suite.True(apperrors.IsAuthorization(err))

	suite.assignments.EXPECT().GetByID(gomock.Any(), suite.assignment.ID).Return(suite.copyOf(suite.assignment), nil)
	suite.assignments.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	a, err := suite.service.Cancel(context.Background(), suite.assignment.ID, service.Actor{Username: "planner1", Role: service.RoleSupervisor}, suite.day)
	suite.Require().NoError(err)
	suite.Equal(models.AssignmentStatusCancelled, a.Status)
	suite.True(suite.effects.Has(service.EffectCoverageChanged))
}

func (suite *AssignmentServiceTestSuite) TestCheckOutConflict() {
	in := suite.copyOf(suite.assignment)
	checkedIn := suite.assignment.StartsAt
	in.Status = models.AssignmentStatusInProgress
	in.CheckedInAt = &checkedIn
	suite.assignments.EXPECT().GetByID(gomock.Any(), in.ID).Return(in, nil)
	suite.assignments.EXPECT().Save(gomock.Any(), in).Return(apperrors.ErrOptimisticLock)

	_, err := suite.service.CheckOut(context.Background(), in.ID, service.Actor{Username: "guard1", Role: service.RoleGuard}, suite.assignment.EndsAt)

	suite.ErrorIs(err, apperrors.ErrOptimisticLock)
	suite.False(suite.effects.Has(service.EffectCoverageChanged))
}

func (suite *AssignmentServiceTestSuite) TestSweepNoShows() {
	now := suite.day.Add(9 * time.Hour)
	stale := suite.copyOf(suite.assignment)
	started := suite.copyOf(suite.assignment)
	started.ID = uuid.New()

	suite.assignments.EXPECT().ListDueForNoShow(gomock.Any(), now.Add(-30*time.Minute), 500).
		Return([]models.Assignment{*stale, *started}, nil)
	suite.assignments.EXPECT().GetByID(gomock.Any(), stale.ID).Return(stale, nil)
	suite.assignments.EXPECT().Save(gomock.Any(), stale).Return(nil)

	inProgress := suite.copyOf(started)
	inProgress.Status = models.AssignmentStatusInProgress
	suite.assignments.EXPECT().GetByID(gomock.Any(), started.ID).Return(inProgress, nil)

	marked, err := suite.service.SweepNoShows(context.Background(), now)

	suite.Require().NoError(err)
	suite.Equal(1, marked)
	suite.Equal(models.AssignmentStatusNoShow, stale.Status)
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
