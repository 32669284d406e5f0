package routes

import (
	"context"
	"fmt"
	"time"

	"guard-deployment-backend/internal/api/handlers"
	"guard-deployment-backend/internal/api/middleware"
	"guard-deployment-backend/internal/app"
	"guard-deployment-backend/internal/auth"
	"guard-deployment-backend/internal/config"
	"guard-deployment-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const tokenTTL = time.Hour

// API is the set of service interfaces the HTTP layer depends on
type API struct {
	Assignments service.AssignmentServiceInterface
	Approvals   service.ApprovalServiceInterface
	Dispatch    service.DispatchServiceInterface
	PostOrders  service.PostOrdersServiceInterface
}

// FromServices adapts the wired service graph to the API
func FromServices(s *app.Services) API {
	return API{
		Assignments: s.Assignments,
		Approvals:   s.Approvals,
		Dispatch:    s.Dispatcher,
		PostOrders:  s.PostOrders,
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, api API, checks map[string]handlers.DependencyCheck) (*gin.Engine, error) {
	authService, err := auth.NewAuthService(cfg.JWTSecret, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	router := gin.New()
	// request deadline and values reach services through the gin context
	router.ContextWithFallback = true

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	healthHandler := handlers.NewHealthHandler(db, checks)
	assignmentHandler := handlers.NewAssignmentHandler(api.Assignments)
	approvalHandler := handlers.NewApprovalHandler(api.Approvals)
	postHandler := handlers.NewPostHandler(api.Dispatch, api.PostOrders)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	reviewers := authMiddleware.RequireRole(auth.RoleSupervisor, auth.RoleStaff)

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		checkins := v1.Group("/checkins")
		{
			checkins.POST("/validate", assignmentHandler.ValidateCheckIn)
			checkins.POST("", assignmentHandler.CheckIn)
		}

		assignments := v1.Group("/assignments")
		{
			assignments.GET("/:id", assignmentHandler.GetAssignment)
			assignments.POST("/:id/confirm", assignmentHandler.ConfirmAssignment)
			assignments.POST("/:id/checkout", assignmentHandler.CheckOut)
			assignments.POST("/:id/cancel", assignmentHandler.CancelAssignment)
			assignments.POST("/:id/no-show", reviewers, assignmentHandler.MarkNoShow)
		}

		approvals := v1.Group("/approvals")
		{
			approvals.GET("", reviewers, approvalHandler.ListPending)
			approvals.POST("", approvalHandler.OpenApproval)
			approvals.GET("/:id", approvalHandler.GetApproval)
			approvals.POST("/:id/approve", reviewers, approvalHandler.Approve)
			approvals.POST("/:id/reject", reviewers, approvalHandler.Reject)
			approvals.POST("/:id/cancel", approvalHandler.CancelApproval)
		}

		posts := v1.Group("/posts")
		{
			posts.GET("/:id/coverage", postHandler.GetCoverage)
			posts.POST("/:id/dispatch", reviewers, postHandler.Dispatch)
			posts.PUT("/:id/orders", reviewers, postHandler.ReviseOrders)
			posts.POST("/:id/acknowledgements", postHandler.Acknowledge)
		}

		v1.GET("/acknowledgements/:id/verify", postHandler.VerifyAcknowledgement)
	}

	return router, nil
}

// InfrastructureChecks exposes the lock backend to the readiness probe
func InfrastructureChecks(infra *app.Infrastructure) map[string]handlers.DependencyCheck {
	if infra == nil || infra.Redis == nil {
		return nil
	}
	return map[string]handlers.DependencyCheck{
		"lock_backend": func(ctx context.Context) error { return infra.Ping(ctx) },
	}
}
