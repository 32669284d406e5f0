package repository

import (
	"context"
	"time"

	"guard-deployment-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SiteMembershipLookup answers whether a worker is deployed to a site
type SiteMembershipLookup interface {
	IsWorkerAssignedToSite(ctx context.Context, workerID, siteID uuid.UUID) (bool, error)
}

// ShiftScheduleLookup finds the roster entry for a worker at a site on a date.
// The entry's Shift is preloaded when ShiftID is set.
type ShiftScheduleLookup interface {
	FindActiveShiftAssignment(ctx context.Context, workerID, siteID uuid.UUID, date time.Time) (*models.ScheduleEntry, bool, error)
}

// AttendanceHistoryLookup reads punch history
type AttendanceHistoryLookup interface {
	FindLastCheckout(ctx context.Context, workerID uuid.UUID) (time.Time, bool, error)
	HasOpenCheckIn(ctx context.Context, workerID uuid.UUID, date time.Time) (bool, error)
}

// PostAssignmentLookup finds the assignment covering a moment, with Post preloaded
type PostAssignmentLookup interface {
	FindPostAssignment(ctx context.Context, workerID uuid.UUID, date, at time.Time) (*models.Assignment, bool, error)
}

// AcknowledgementLookup checks for a current post-orders acknowledgement
type AcknowledgementLookup interface {
	HasValidAcknowledgement(ctx context.Context, workerID, postID uuid.UUID, date time.Time) (bool, error)
}

// CertificationLookup lists what a worker lacks for a post
type CertificationLookup interface {
	WorkerMissingCertifications(ctx context.Context, workerID uuid.UUID, post *models.Post) ([]string, error)
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	AttendanceHistoryLookup
	PostAssignmentLookup
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	Save(ctx context.Context, assignment *models.Assignment) error
	HasOverlap(ctx context.Context, assignment *models.Assignment) (bool, error)
	CountActiveForPost(ctx context.Context, postID uuid.UUID, date time.Time) (int64, error)
	CountCompletedAtPost(ctx context.Context, workerID, postID uuid.UUID, from, to time.Time) (int64, error)
	SumHoursWorked(ctx context.Context, workerID uuid.UUID, from, to time.Time) (float64, error)
	ListDueForNoShow(ctx context.Context, startedBefore time.Time, limit int) ([]models.Assignment, error)
}

// WorkerRepositoryInterface defines the interface for worker repository operations
type WorkerRepositoryInterface interface {
	CertificationLookup
	GetByID(ctx context.Context, id uuid.UUID) (*models.Worker, error)
	ListAvailable(ctx context.Context, startsAt, endsAt time.Time) ([]models.Worker, error)
}

// PostRepositoryInterface defines the interface for post repository operations
type PostRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	UpdateOrders(ctx context.Context, post *models.Post, previousVersion int) error
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error)
}

// SiteRepositoryInterface defines the interface for site repository operations
type SiteRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Site, error)
}

// AcknowledgementRepositoryInterface defines the interface for acknowledgement repository operations
type AcknowledgementRepositoryInterface interface {
	AcknowledgementLookup
	Create(ctx context.Context, ack *models.PostOrdersAcknowledgement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PostOrdersAcknowledgement, error)
}

// ApprovalRequestRepositoryInterface defines the interface for approval request repository operations
type ApprovalRequestRepositoryInterface interface {
	Create(ctx context.Context, request *models.ApprovalRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ApprovalRequest, error)
	Save(ctx context.Context, request *models.ApprovalRequest) error
	ListPending(ctx context.Context, limit, offset int) ([]models.ApprovalRequest, int64, error)
	ListExpired(ctx context.Context, now time.Time, limit int) ([]models.ApprovalRequest, error)
	ListEscalationDue(ctx context.Context, createdBefore time.Time, limit int) ([]models.ApprovalRequest, error)
	CreateEscalation(ctx context.Context, escalation *models.ApprovalEscalation) error
}

// AutoApprovalRuleRepositoryInterface defines the interface for auto-approval rule repository operations
type AutoApprovalRuleRepositoryInterface interface {
	ListActive(ctx context.Context, requestType models.ApprovalRequestType) ([]models.AutoApprovalRule, error)
}
