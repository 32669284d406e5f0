package service_test

import (
	"context"
	"testing"
	"time"

	"guard-deployment-backend/internal/database/models"
	"guard-deployment-backend/internal/mocks"
	"guard-deployment-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SuitabilityScorerTestSuite defines the test suite for SuitabilityScorer
type SuitabilityScorerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	history *mocks.MockAssignmentRepositoryInterface
	scorer  *service.SuitabilityScorer

	post  *models.Post
	shift *models.Shift
	day   time.Time
}

func (suite *SuitabilityScorerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.history = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.scorer = service.NewSuitabilityScorer(suite.history, service.DefaultPolicy())

	suite.post = &models.Post{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		GeofenceType: models.GeofenceTypeCircle,
		CenterLat:    51.5007,
		CenterLon:    -0.1246,
		RadiusMeters: 100,
	}
	suite.shift = &models.Shift{
		BaseModel: models.BaseModel{ID: uuid.New()},
		StartTime: models.MustClockTime("08:00"),
		EndTime:   models.MustClockTime("16:00"),
	}
	// a Saturday
	suite.day = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
}

func (suite *SuitabilityScorerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SuitabilityScorerTestSuite) workerAt(latOffset float64) *models.Worker {
	lat := suite.post.CenterLat + latOffset
	lon := suite.post.CenterLon
	return &models.Worker{BaseModel: models.BaseModel{ID: uuid.New()}, LastKnownLat: &lat, LastKnownLon: &lon}
}

func (suite *SuitabilityScorerTestSuite) expectHistory(w *models.Worker, completed int64, weekly float64, lastCheckout *time.Time) {
	suite.history.EXPECT().CountCompletedAtPost(gomock.Any(), w.ID, suite.post.ID, suite.day.Add(-30*24*time.Hour), suite.day).Return(completed, nil)
	suite.history.EXPECT().SumHoursWorked(gomock.Any(), w.ID, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), suite.day).Return(weekly, nil)
	if lastCheckout == nil {
		suite.history.EXPECT().FindLastCheckout(gomock.Any(), w.ID).Return(time.Time{}, false, nil)
	} else {
		suite.history.EXPECT().FindLastCheckout(gomock.Any(), w.ID).Return(*lastCheckout, true, nil)
	}
}

func (suite *SuitabilityScorerTestSuite) TestProximityBuckets() {
	cases := []struct {
		name   string
		offset float64
		points float64
	}{
		{"on post", 0, 20},
		{"about 7 km", 0.063, 15},
		{"about 17 km", 0.15, 10},
		{"about 44 km", 0.4, 5},
		{"about 67 km", 0.6, 0},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			w := suite.workerAt(tc.offset)
			suite.expectHistory(w, 0, 0, nil)

			b, err := suite.scorer.Score(context.Background(), w, suite.post, suite.shift, suite.day)
			suite.Require().NoError(err)
			suite.Equal(tc.points, b.Proximity)
			suite.Require().NotNil(b.DistanceKm)
		})
	}
}

func (suite *SuitabilityScorerTestSuite) TestWorkerWithoutLocationGetsNoProximity() {
	w := &models.Worker{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.expectHistory(w, 0, 0, nil)

	b, err := suite.scorer.Score(context.Background(), w, suite.post, suite.shift, suite.day)

	suite.Require().NoError(err)
	suite.Zero(b.Proximity)
	suite.Nil(b.DistanceKm)
	suite.Equal(float64(50+10+5), b.Total)
}

func (suite *SuitabilityScorerTestSuite) TestQualification() {
	suite.Run("no requirements", func() {
		w := suite.workerAt(0)
		suite.expectHistory(w, 0, 0, nil)
		b, err := suite.scorer.Score(context.Background(), w, suite.post, suite.shift, suite.day)
		suite.Require().NoError(err)
		suite.Equal(float64(10), b.Qualification)
		suite.True(b.Qualified())
	})

	suite.Run("meets requirements", func() {
		post := *suite.post
		post.ArmedRequired = true
		post.RequiredCertifications = models.StringList{"CCTV"}
		w := suite.workerAt(0)
		w.IsArmed = true
		w.Certifications = models.StringList{"CCTV", "FIRST_AID"}
		suite.expectHistory(w, 0, 0, nil)

		b, err := suite.scorer.Score(context.Background(), w, &post, suite.shift, suite.day)
		suite.Require().NoError(err)
		suite.Equal(float64(15), b.Qualification)
		suite.True(b.Qualified())
	})

	suite.Run("missing requirements", func() {
		post := *suite.post
		post.ArmedRequired = true
		w := suite.workerAt(0)
		suite.expectHistory(w, 0, 0, nil)

		b, err := suite.scorer.Score(context.Background(), w, &post, suite.shift, suite.day)
		suite.Require().NoError(err)
		suite.Zero(b.Qualification)
		suite.False(b.Qualified())
		suite.Equal([]string{models.ArmedRequirement}, b.Missing)
	})
}

func (suite *SuitabilityScorerTestSuite) TestFamiliarityAndWorkload() {
	cases := []struct {
		name        string
		completed   int64
		weekly      float64
		familiarity float64
		workload    float64
		overtime    float64
	}{
		{"new and idle", 0, 0, 0, 5, 0},
		{"one visit", 1, 19.9, 4, 5, 0},
		{"regular", 2, 20, 7, 3, 0},
		{"veteran", 5, 34.5, 10, 3, 0},
		{"busy", 5, 39, 10, 1, 0},
		{"overtime", 5, 40, 10, 1, 10},
		{"exhausted", 5, 45, 10, 0, 10},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			w := suite.workerAt(0)
			suite.expectHistory(w, tc.completed, tc.weekly, nil)

			b, err := suite.scorer.Score(context.Background(), w, suite.post, suite.shift, suite.day)
			suite.Require().NoError(err)
			suite.Equal(tc.familiarity, b.Familiarity)
			suite.Equal(tc.workload, b.Workload)
			suite.Equal(tc.overtime, b.OvertimePenalty)
			suite.Equal(b.Base+b.Proximity+b.Qualification+b.Familiarity+b.Workload-b.OvertimePenalty, b.Total)
		})
	}
}

func (suite *SuitabilityScorerTestSuite) TestRestPenalty() {
	short := suite.day.Add(-time.Hour)
	w := suite.workerAt(0)
	suite.expectHistory(w, 0, 0, &short)

	b, err := suite.scorer.Score(context.Background(), w, suite.post, suite.shift, suite.day)
	suite.Require().NoError(err)
	suite.Equal(float64(20), b.RestPenalty)

	rested := suite.day.Add(-2 * time.Hour)
	w = suite.workerAt(0)
	suite.expectHistory(w, 0, 0, &rested)

	b, err = suite.scorer.Score(context.Background(), w, suite.post, suite.shift, suite.day)
	suite.Require().NoError(err)
	suite.Zero(b.RestPenalty)
}

func (suite *SuitabilityScorerTestSuite) TestScoreStaysInRange() {
	short := suite.day.Add(-time.Hour)
	w := suite.workerAt(0.6)
	suite.expectHistory(w, 0, 60, &short)

	post := *suite.post
	post.RequiredCertifications = models.StringList{"CCTV"}
	b, err := suite.scorer.Score(context.Background(), w, &post, suite.shift, suite.day)
	suite.Require().NoError(err)
	suite.Equal(float64(50-20-10), b.Total)

	best := suite.workerAt(0)
	suite.expectHistory(best, 9, 1, nil)
	best.Certifications = models.StringList{"CCTV"}
	b, err = suite.scorer.Score(context.Background(), best, &post, suite.shift, suite.day)
	suite.Require().NoError(err)
	suite.Equal(float64(100), b.Total)
}

func (suite *SuitabilityScorerTestSuite) TestRankCandidates() {
	candidates := []*service.ScoreBreakdown{
		{WorkerID: "c", Total: 70},
		{WorkerID: "b", Total: 85},
		{WorkerID: "a", Total: 70},
		{WorkerID: "d", Total: 90},
	}

	service.RankCandidates(candidates)

	order := make([]string, 0, len(candidates))
	for _, c := range candidates {
		order = append(order, c.WorkerID)
	}
	suite.Equal([]string{"d", "b", "a", "c"}, order)
}

func TestSuitabilityScorerTestSuite(t *testing.T) {
	suite.Run(t, new(SuitabilityScorerTestSuite))
}
