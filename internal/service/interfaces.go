package service

import (
	"context"
	"time"

	"guard-deployment-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AssignmentServiceInterface defines the interface for assignment service
type AssignmentServiceInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	ValidateCheckIn(ctx context.Context, req *CheckInRequest) (*CheckInOutcome, error)
	CheckIn(ctx context.Context, req *CheckInRequest) (*CheckInResponse, error)
	CheckOut(ctx context.Context, id uuid.UUID, actor Actor, at time.Time) (*models.Assignment, error)
	Confirm(ctx context.Context, id uuid.UUID, actor Actor, at time.Time) (*models.Assignment, error)
	MarkNoShow(ctx context.Context, id uuid.UUID, actor Actor, at time.Time) (*models.Assignment, error)
	Cancel(ctx context.Context, id uuid.UUID, actor Actor, at time.Time) (*models.Assignment, error)
	SweepNoShows(ctx context.Context, now time.Time) (int, error)
}

// ApprovalServiceInterface defines the interface for approval service
type ApprovalServiceInterface interface {
	Open(ctx context.Context, req *OpenApprovalRequest) (*models.ApprovalRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ApprovalRequest, error)
	ListPending(ctx context.Context, page, pageSize int) (*ApprovalListResponse, error)
	Approve(ctx context.Context, id uuid.UUID, reviewer Actor, decision ApprovalDecision, now time.Time) (*models.ApprovalRequest, error)
	Reject(ctx context.Context, id uuid.UUID, reviewer Actor, reason string, now time.Time) (*models.ApprovalRequest, error)
	Cancel(ctx context.Context, id uuid.UUID, actor Actor, now time.Time) (*models.ApprovalRequest, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
	EscalateOverdue(ctx context.Context, now time.Time) (int, error)
}

// DispatchServiceInterface defines the interface for emergency dispatch
type DispatchServiceInterface interface {
	Dispatch(ctx context.Context, req *DispatchRequest) (*DispatchResult, error)
	PostCoverage(ctx context.Context, postID uuid.UUID, date string) (*Coverage, error)
}

// PostOrdersServiceInterface defines the interface for post orders service
type PostOrdersServiceInterface interface {
	ReviseOrders(ctx context.Context, postID uuid.UUID, req *ReviseOrdersRequest, actor Actor) (*models.Post, error)
	Acknowledge(ctx context.Context, postID uuid.UUID, req *AcknowledgeRequest, at time.Time) (*models.PostOrdersAcknowledgement, error)
	VerifyAcknowledgement(ctx context.Context, id uuid.UUID) (*AcknowledgementVerification, error)
}
