package repository

import (
	"context"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostRepository handles database operations for posts
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create creates a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrPostNotFound, nil)
	}
	return &post, nil
}

// UpdateOrders stores revised orders if the stored version is still
// previousVersion
func (r *PostRepository) UpdateOrders(ctx context.Context, post *models.Post, previousVersion int) error {
	res := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ? AND post_orders_version = ?", post.ID, previousVersion).
		Updates(map[string]interface{}{
			"post_orders":         post.PostOrders,
			"post_orders_version": post.PostOrdersVersion,
			"updated_by":          post.UpdatedBy,
			"updated_at":          time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}
	return nil
}
