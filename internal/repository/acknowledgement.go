package repository

import (
	"context"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcknowledgementRepository handles database operations for post orders acknowledgements
type AcknowledgementRepository struct {
	db *gorm.DB
}

// NewAcknowledgementRepository creates a new acknowledgement repository
func NewAcknowledgementRepository(db *gorm.DB) *AcknowledgementRepository {
	return &AcknowledgementRepository{db: db}
}

// Create records an acknowledgement
func (r *AcknowledgementRepository) Create(ctx context.Context, ack *models.PostOrdersAcknowledgement) error {
	return translate(r.db.WithContext(ctx).Create(ack).Error, nil, apperrors.ErrAcknowledgementExists)
}

// GetByID retrieves an acknowledgement by ID
func (r *AcknowledgementRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PostOrdersAcknowledgement, error) {
	var ack models.PostOrdersAcknowledgement
	err := r.db.WithContext(ctx).First(&ack, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrAcknowledgementNotFound, nil)
	}
	return &ack, nil
}

// HasValidAcknowledgement implements AcknowledgementLookup: an
// acknowledgement dated date of the post's current orders version
func (r *AcknowledgementRepository) HasValidAcknowledgement(ctx context.Context, workerID, postID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PostOrdersAcknowledgement{}).
		Joins("JOIN posts ON posts.id = post_orders_acknowledgements.post_id").
		Where("post_orders_acknowledgements.worker_id = ? AND post_orders_acknowledgements.post_id = ?", workerID, postID).
		Where("post_orders_acknowledgements.acknowledged_on = ?", day(date)).
		Where("post_orders_acknowledgements.post_orders_version = posts.post_orders_version").
		Count(&count).Error
	return count > 0, err
}
