package service_test

import (
	"context"
	"testing"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"
	"guard-deployment-backend/internal/mocks"
	"guard-deployment-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EmergencyDispatcherTestSuite defines the test suite for EmergencyDispatcher
type EmergencyDispatcherTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	posts       *mocks.MockPostRepositoryInterface
	shifts      *mocks.MockShiftRepositoryInterface
	sites       *mocks.MockSiteRepositoryInterface
	workers     *mocks.MockWorkerRepositoryInterface
	assignments *mocks.MockAssignmentRepositoryInterface
	approvals   *mocks.MockApprovalServiceInterface
	effects     *recordingPublisher
	dispatcher  *service.EmergencyDispatcher

	site  *models.Site
	post  *models.Post
	shift *models.Shift
	day   time.Time
}

func (suite *EmergencyDispatcherTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.posts = mocks.NewMockPostRepositoryInterface(suite.ctrl)
	suite.shifts = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.sites = mocks.NewMockSiteRepositoryInterface(suite.ctrl)
	suite.workers = mocks.NewMockWorkerRepositoryInterface(suite.ctrl)
	suite.assignments = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.approvals = mocks.NewMockApprovalServiceInterface(suite.ctrl)
	suite.effects = &recordingPublisher{}

	policy := service.DefaultPolicy()
	suite.dispatcher = service.NewEmergencyDispatcher(service.DispatcherDeps{
		Posts:       suite.posts,
		Shifts:      suite.shifts,
		Sites:       suite.sites,
		Workers:     suite.workers,
		Assignments: suite.assignments,
		Coverage:    service.NewCoverageCalculator(suite.assignments),
		Scorer:      service.NewSuitabilityScorer(suite.assignments, policy),
		Approvals:   suite.approvals,
	}, suite.effects, validator.New(), policy)

	suite.site = &models.Site{BaseModel: models.BaseModel{ID: uuid.New()}, Timezone: "UTC"}
	suite.post = &models.Post{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		SiteID:           suite.site.ID,
		Name:             "Loading Dock",
		GeofenceType:     models.GeofenceTypeCircle,
		CenterLat:        51.5007,
		CenterLon:        -0.1246,
		RadiusMeters:     100,
		CoverageRequired: true,
		RequiredGuards:   1,
		RiskLevel:        models.RiskLevelMedium,
	}
	suite.shift = &models.Shift{
		BaseModel: models.BaseModel{ID: uuid.New()},
		SiteID:    suite.site.ID,
		StartTime: models.MustClockTime("08:00"),
		EndTime:   models.MustClockTime("16:00"),
	}
	suite.day = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
}

func (suite *EmergencyDispatcherTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmergencyDispatcherTestSuite) request() *service.DispatchRequest {
	return &service.DispatchRequest{
		PostID:      suite.post.ID,
		ShiftID:     suite.shift.ID,
		Date:        "2026-03-14",
		RequestedBy: "supervisor1",
		Now:         suite.day.Add(6 * time.Hour),
	}
}

func (suite *EmergencyDispatcherTestSuite) worker(latOffset float64) models.Worker {
	lat := suite.post.CenterLat + latOffset
	lon := suite.post.CenterLon
	return models.Worker{BaseModel: models.BaseModel{ID: uuid.New()}, LastKnownLat: &lat, LastKnownLon: &lon, IsActive: true}
}

// expectLookups stubs the post, shift, site and coverage reads
func (suite *EmergencyDispatcherTestSuite) expectLookups(assigned int64) {
	suite.posts.EXPECT().GetByID(gomock.Any(), suite.post.ID).Return(suite.post, nil)
	suite.shifts.EXPECT().GetByID(gomock.Any(), suite.shift.ID).Return(suite.shift, nil)
	suite.sites.EXPECT().GetByID(gomock.Any(), suite.site.ID).Return(suite.site, nil)
	suite.assignments.EXPECT().CountActiveForPost(gomock.Any(), suite.post.ID, suite.day).Return(assigned, nil)
}

// expectCandidates stubs availability and an empty history for every worker
func (suite *EmergencyDispatcherTestSuite) expectCandidates(workers ...models.Worker) {
	suite.workers.EXPECT().ListAvailable(gomock.Any(), suite.day.Add(8*time.Hour), suite.day.Add(16*time.Hour)).Return(workers, nil)
	suite.assignments.EXPECT().CountCompletedAtPost(gomock.Any(), gomock.Any(), suite.post.ID, gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(len(workers))
	suite.assignments.EXPECT().SumHoursWorked(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(float64(0), nil).Times(len(workers))
	suite.assignments.EXPECT().FindLastCheckout(gomock.Any(), gomock.Any()).Return(time.Time{}, false, nil).Times(len(workers))
}

func (suite *EmergencyDispatcherTestSuite) TestCoverageAlreadyMet() {
	suite.expectLookups(1)
	suite.workers.EXPECT().ListAvailable(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.dispatcher.Dispatch(context.Background(), suite.request())

	suite.ErrorIs(err, apperrors.ErrCoverageAlreadyMet)
}

func (suite *EmergencyDispatcherTestSuite) TestAssignsBestCandidate() {
	near := suite.worker(0)
	far := suite.worker(0.4)
	suite.expectLookups(0)
	suite.expectCandidates(far, near)
	suite.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Assignment) error {
			suite.Equal(near.ID, a.WorkerID)
			suite.Equal(suite.post.ID, a.PostID)
			suite.Equal(suite.day.Add(8*time.Hour), a.StartsAt)
			suite.Equal("supervisor1", a.AssignedBy)
			a.ID = uuid.New()
			return nil
		})
	suite.approvals.EXPECT().Open(gomock.Any(), gomock.Any()).Times(0)

	result, err := suite.dispatcher.Dispatch(context.Background(), suite.request())

	suite.Require().NoError(err)
	suite.Require().Len(result.Assigned, 1)
	suite.Equal(near.ID, result.Assigned[0].WorkerID)
	suite.Equal(near.ID.String(), result.Candidates[0].WorkerID)
	suite.Equal(float64(50+20+10+5), result.Candidates[0].Total)
	suite.Nil(result.ApprovalRequest)
	suite.True(suite.effects.Has(service.EffectCoverageChanged))
}

func (suite *EmergencyDispatcherTestSuite) TestDoubleBookedCandidateFallsThrough() {
	near := suite.worker(0)
	second := suite.worker(0.063)
	suite.expectLookups(0)
	suite.expectCandidates(near, second)
	gomock.InOrder(
		suite.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrDoubleBooking),
		suite.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *models.Assignment) error {
				suite.Equal(second.ID, a.WorkerID)
				return nil
			}),
	)

	result, err := suite.dispatcher.Dispatch(context.Background(), suite.request())

	suite.Require().NoError(err)
	suite.Require().Len(result.Assigned, 1)
	suite.Equal(second.ID, result.Assigned[0].WorkerID)
}

func (suite *EmergencyDispatcherTestSuite) TestEscalatesWhenNobodyQualifies() {
	suite.post.ArmedRequired = true
	unarmed := suite.worker(0)
	suite.expectLookups(0)
	suite.expectCandidates(unarmed)
	suite.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	approval := &models.ApprovalRequest{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.ApprovalStatusPending}
	suite.approvals.EXPECT().Open(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.OpenApprovalRequest) (*models.ApprovalRequest, error) {
			suite.Equal(models.ApprovalTypeEmergencyAssignment, req.Type)
			suite.Equal(models.ApprovalPriorityUrgent, req.Priority)
			suite.Equal(unarmed.ID, *req.WorkerID)
			suite.Equal(suite.shift.ID, *req.ShiftID)
			suite.Equal("2026-03-14", req.Date)
			suite.Equal(1, req.Details["slots_unfilled"])
			suite.Equal([]string{models.ArmedRequirement}, req.Details["suggested_missing"])
			return approval, nil
		})

	result, err := suite.dispatcher.Dispatch(context.Background(), suite.request())

	suite.Require().NoError(err)
	suite.Empty(result.Assigned)
	suite.Same(approval, result.ApprovalRequest)
}

func (suite *EmergencyDispatcherTestSuite) TestEscalatesWithoutCandidates() {
	suite.post.RequiredGuards = 2
	suite.expectLookups(0)
	suite.expectCandidates()
	suite.approvals.EXPECT().Open(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.OpenApprovalRequest) (*models.ApprovalRequest, error) {
			suite.Nil(req.WorkerID)
			suite.Equal(2, req.Details["slots_unfilled"])
			return &models.ApprovalRequest{}, nil
		})

	result, err := suite.dispatcher.Dispatch(context.Background(), suite.request())

	suite.Require().NoError(err)
	suite.Equal(2, result.Coverage.Gap)
	suite.NotNil(result.ApprovalRequest)
}

func (suite *EmergencyDispatcherTestSuite) TestRejectsShiftOfAnotherSite() {
	suite.shift.SiteID = uuid.New()
	suite.posts.EXPECT().GetByID(gomock.Any(), suite.post.ID).Return(suite.post, nil)
	suite.shifts.EXPECT().GetByID(gomock.Any(), suite.shift.ID).Return(suite.shift, nil)

	_, err := suite.dispatcher.Dispatch(context.Background(), suite.request())

	suite.True(apperrors.IsValidation(err))
}

func (suite *EmergencyDispatcherTestSuite) TestRejectsBadDate() {
	req := suite.request()
	req.Date = "tomorrow"
	suite.posts.EXPECT().GetByID(gomock.Any(), suite.post.ID).Return(suite.post, nil)
	suite.shifts.EXPECT().GetByID(gomock.Any(), suite.shift.ID).Return(suite.shift, nil)
	suite.sites.EXPECT().GetByID(gomock.Any(), suite.site.ID).Return(suite.site, nil)

	_, err := suite.dispatcher.Dispatch(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrInvalidDate)
}

func (suite *EmergencyDispatcherTestSuite) TestPostCoverage() {
	suite.post.RequiredGuards = 3
	suite.posts.EXPECT().GetByID(gomock.Any(), suite.post.ID).Return(suite.post, nil)
	suite.sites.EXPECT().GetByID(gomock.Any(), suite.site.ID).Return(suite.site, nil)
	suite.assignments.EXPECT().CountActiveForPost(gomock.Any(), suite.post.ID, suite.day).Return(int64(1), nil)

	cov, err := suite.dispatcher.PostCoverage(context.Background(), suite.post.ID, "2026-03-14")

	suite.Require().NoError(err)
	suite.False(cov.IsMet)
	suite.Equal(1, cov.Assigned)
	suite.Equal(3, cov.Required)
	suite.Equal(2, cov.Gap)
}

func TestEmergencyDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(EmergencyDispatcherTestSuite))
}
