package routes

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"guard-deployment-backend/internal/api/handlers"
	"guard-deployment-backend/internal/api/middleware"
	"guard-deployment-backend/internal/app"
	"guard-deployment-backend/internal/auth"
	"guard-deployment-backend/internal/config"
	"guard-deployment-backend/internal/database/models"
	"guard-deployment-backend/internal/mocks"
	"guard-deployment-backend/internal/service"
	"guard-deployment-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSecret = "routes-test-secret"

type RoutesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	approvals *mocks.MockApprovalServiceInterface
	httpSuite *testutils.HTTPTestSuite
	tokens    *auth.AuthService
}

func (suite *RoutesTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.approvals = mocks.NewMockApprovalServiceInterface(suite.ctrl)

	cfg := &config.Config{JWTSecret: testSecret, AllowedOrigins: []string{"http://localhost:3000"}}
	api := API{
		Assignments: mocks.NewMockAssignmentServiceInterface(suite.ctrl),
		Approvals:   suite.approvals,
		Dispatch:    mocks.NewMockDispatchServiceInterface(suite.ctrl),
		PostOrders:  mocks.NewMockPostOrdersServiceInterface(suite.ctrl),
	}
	checks := map[string]handlers.DependencyCheck{
		"lock_backend": func(context.Context) error { return nil },
	}

	suite.httpSuite = testutils.SetupHTTPTest()
	router, err := SetupRoutes(nil, cfg, api, checks)
	suite.Require().NoError(err)
	suite.httpSuite.Router = router

	suite.tokens, err = auth.NewAuthService(testSecret, time.Hour)
	suite.Require().NoError(err)
}

func (suite *RoutesTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RoutesTestSuite) token(role string) string {
	tok, err := suite.tokens.IssueJWT(uuid.NewString(), "jdoe", role, time.Now())
	suite.Require().NoError(err)
	return tok
}

func (suite *RoutesTestSuite) TestHealthIsPublic() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.NotEmpty(suite.T(), recorder.Header().Get(middleware.RequestIDHeader))
}

func (suite *RoutesTestSuite) TestAPIRequiresToken() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/approvals", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authorization header is required")
}

func (suite *RoutesTestSuite) TestReviewerEndpointRejectsGuards() {
	recorder := suite.httpSuite.MakeAuthorizedRequest(http.MethodPost,
		"/api/v1/approvals/"+uuid.NewString()+"/approve", suite.token(auth.RoleGuard), nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

func (suite *RoutesTestSuite) TestReviewerEndpointAllowsSupervisors() {
	id := uuid.New()
	suite.approvals.EXPECT().
		Approve(gomock.Any(), id, service.Actor{Username: "jdoe", Role: auth.RoleSupervisor}, service.ApprovalDecision{}, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ service.Actor, _ service.ApprovalDecision, _ time.Time) (*models.ApprovalRequest, error) {
			assert.Equal(suite.T(), "jdoe", ctx.Value("username"), "gin keys must reach the service context")
			return &models.ApprovalRequest{Status: models.ApprovalStatusManuallyApproved}, nil
		})

	recorder := suite.httpSuite.MakeAuthorizedRequest(http.MethodPost,
		"/api/v1/approvals/"+id.String()+"/approve", suite.token(auth.RoleSupervisor), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *RoutesTestSuite) TestGuardsMayOpenRequests() {
	suite.approvals.EXPECT().Open(gomock.Any(), gomock.Any()).
		Return(&models.ApprovalRequest{Status: models.ApprovalStatusPending}, nil)

	recorder := suite.httpSuite.MakeAuthorizedRequest(http.MethodPost, "/api/v1/approvals", suite.token(auth.RoleGuard),
		map[string]interface{}{"type": "SHIFT_CHANGE", "justification": "family emergency"})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}

func TestSetupRoutesRequiresSecret(t *testing.T) {
	_, err := SetupRoutes(nil, &config.Config{}, API{}, nil)
	require.Error(t, err)
}

func TestInfrastructureChecks(t *testing.T) {
	assert.Nil(t, InfrastructureChecks(nil))
	assert.Nil(t, InfrastructureChecks(&app.Infrastructure{}))
}

func TestUnhealthyDependencyFailsReadiness(t *testing.T) {
	checks := map[string]handlers.DependencyCheck{
		"lock_backend": func(context.Context) error { return errors.New("connection refused") },
	}
	router, err := SetupRoutes(nil, &config.Config{JWTSecret: testSecret}, API{}, checks)
	require.NoError(t, err)
	httpSuite := &testutils.HTTPTestSuite{Router: router}

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
