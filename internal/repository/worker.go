package repository

import (
	"context"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkerRepository handles database operations for workers
type WorkerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// Create creates a new worker
func (r *WorkerRepository) Create(ctx context.Context, worker *models.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

// GetByID retrieves a worker by ID
func (r *WorkerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.WithContext(ctx).First(&worker, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrWorkerNotFound, nil)
	}
	return &worker, nil
}

// WorkerMissingCertifications implements CertificationLookup
func (r *WorkerRepository) WorkerMissingCertifications(ctx context.Context, workerID uuid.UUID, post *models.Post) ([]string, error) {
	worker, err := r.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return worker.MissingRequirements(post), nil
}

// ListAvailable returns active workers with no non-terminal assignment
// overlapping [startsAt, endsAt), ordered by id
func (r *WorkerRepository) ListAvailable(ctx context.Context, startsAt, endsAt time.Time) ([]models.Worker, error) {
	busy := r.db.Model(&models.Assignment{}).
		Select("1").
		Where("assignments.worker_id = workers.id").
		Where("assignments.status IN ?", models.ActiveAssignmentStatuses).
		Where("assignments.starts_at < ? AND assignments.ends_at > ?", endsAt, startsAt)

	var workers []models.Worker
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("NOT EXISTS (?)", busy).
		Order("id").
		Find(&workers).Error
	return workers, err
}
