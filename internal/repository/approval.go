package repository

import (
	"context"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const priorityOrder = "CASE priority WHEN 'URGENT' THEN 0 WHEN 'HIGH' THEN 1 WHEN 'NORMAL' THEN 2 ELSE 3 END"

// ApprovalRequestRepository handles database operations for approval requests
type ApprovalRequestRepository struct {
	db *gorm.DB
}

// NewApprovalRequestRepository creates a new approval request repository
func NewApprovalRequestRepository(db *gorm.DB) *ApprovalRequestRepository {
	return &ApprovalRequestRepository{db: db}
}

// Create creates a new approval request
func (r *ApprovalRequestRepository) Create(ctx context.Context, request *models.ApprovalRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID retrieves an approval request by ID
func (r *ApprovalRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ApprovalRequest, error) {
	var request models.ApprovalRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrApprovalRequestNotFound, nil)
	}
	return &request, nil
}

// Save writes the request if nobody else has since
func (r *ApprovalRequestRepository) Save(ctx context.Context, request *models.ApprovalRequest) error {
	return saveVersioned(ctx, r.db, request, &request.Version)
}

// ListPending retrieves PENDING requests, most urgent and oldest first
func (r *ApprovalRequestRepository) ListPending(ctx context.Context, limit, offset int) ([]models.ApprovalRequest, int64, error) {
	var requests []models.ApprovalRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ApprovalRequest{}).
		Where("status = ?", models.ApprovalStatusPending)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order(priorityOrder).Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListExpired retrieves PENDING requests whose expiry is at or before now
func (r *ApprovalRequestRepository) ListExpired(ctx context.Context, now time.Time, limit int) ([]models.ApprovalRequest, error) {
	var requests []models.ApprovalRequest
	err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at <= ?", models.ApprovalStatusPending, now).
		Order("expires_at ASC").
		Limit(limit).
		Find(&requests).Error
	return requests, err
}

// ListEscalationDue retrieves unescalated URGENT and HIGH requests created
// at or before createdBefore that are still PENDING
func (r *ApprovalRequestRepository) ListEscalationDue(ctx context.Context, createdBefore time.Time, limit int) ([]models.ApprovalRequest, error) {
	var requests []models.ApprovalRequest
	err := r.db.WithContext(ctx).
		Where("status = ? AND escalated_at IS NULL AND created_at <= ?", models.ApprovalStatusPending, createdBefore).
		Where("priority IN ?", []models.ApprovalPriority{models.ApprovalPriorityUrgent, models.ApprovalPriorityHigh}).
		Order(priorityOrder).Order("created_at ASC").
		Limit(limit).
		Find(&requests).Error
	return requests, err
}

// CreateEscalation records an escalation, once per request
func (r *ApprovalRequestRepository) CreateEscalation(ctx context.Context, escalation *models.ApprovalEscalation) error {
	return translate(r.db.WithContext(ctx).Create(escalation).Error, nil, apperrors.ErrEscalationAlreadyFiled)
}

// AutoApprovalRuleRepository handles database operations for auto-approval rules
type AutoApprovalRuleRepository struct {
	db *gorm.DB
}

// NewAutoApprovalRuleRepository creates a new auto-approval rule repository
func NewAutoApprovalRuleRepository(db *gorm.DB) *AutoApprovalRuleRepository {
	return &AutoApprovalRuleRepository{db: db}
}

// Create creates a new rule
func (r *AutoApprovalRuleRepository) Create(ctx context.Context, rule *models.AutoApprovalRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

// ListActive returns the active rules covering requestType in evaluation order
func (r *AutoApprovalRuleRepository) ListActive(ctx context.Context, requestType models.ApprovalRequestType) ([]models.AutoApprovalRule, error) {
	var rules []models.AutoApprovalRule
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("request_types @> ?::jsonb", `["`+string(requestType)+`"]`).
		Order("sequence ASC").Order("created_at ASC").
		Find(&rules).Error
	return rules, err
}
