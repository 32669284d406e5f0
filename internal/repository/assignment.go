package repository

import (
	"context"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db    *gorm.DB
	grace time.Duration
}

// NewAssignmentRepository creates a new assignment repository. grace widens
// the window in which an assignment is considered to cover a moment.
func NewAssignmentRepository(db *gorm.DB, grace time.Duration) *AssignmentRepository {
	return &AssignmentRepository{db: db, grace: grace}
}

// Create inserts a new assignment unless the worker already holds a
// non-terminal assignment with an overlapping window
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// serialises concurrent bookings of the same worker
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", assignment.WorkerID.String()).Error; err != nil {
			return err
		}
		overlap, err := hasOverlap(tx, assignment)
		if err != nil {
			return err
		}
		if overlap {
			return apperrors.ErrDoubleBooking
		}
		return tx.Create(assignment).Error
	})
}

// GetByID retrieves an assignment with its post
func (r *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	var a models.Assignment
	err := r.db.WithContext(ctx).Preload("Post").First(&a, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrAssignmentNotFound, nil)
	}
	return &a, nil
}

// Save writes the assignment if nobody else has since; see saveVersioned
func (r *AssignmentRepository) Save(ctx context.Context, assignment *models.Assignment) error {
	return saveVersioned(ctx, r.db, assignment, &assignment.Version)
}

// HasOverlap reports another non-terminal assignment of the same worker
// whose window intersects this one
func (r *AssignmentRepository) HasOverlap(ctx context.Context, assignment *models.Assignment) (bool, error) {
	return hasOverlap(r.db.WithContext(ctx), assignment)
}

func hasOverlap(db *gorm.DB, a *models.Assignment) (bool, error) {
	var count int64
	q := db.Model(&models.Assignment{}).
		Where("worker_id = ? AND status IN ?", a.WorkerID, models.ActiveAssignmentStatuses).
		Where("starts_at < ? AND ends_at > ?", a.EndsAt, a.StartsAt)
	if a.ID != uuid.Nil {
		q = q.Where("id <> ?", a.ID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// FindLastCheckout implements AttendanceHistoryLookup
func (r *AssignmentRepository) FindLastCheckout(ctx context.Context, workerID uuid.UUID) (time.Time, bool, error) {
	var row struct {
		Last *time.Time
	}
	err := r.db.WithContext(ctx).Model(&models.Assignment{}).
		Select("MAX(checked_out_at) AS last").
		Where("worker_id = ? AND checked_out_at IS NOT NULL", workerID).
		Scan(&row).Error
	if err != nil {
		return time.Time{}, false, err
	}
	if row.Last == nil {
		return time.Time{}, false, nil
	}
	return *row.Last, true, nil
}

// HasOpenCheckIn implements AttendanceHistoryLookup. An overnight check-in
// from the previous day that was never closed also counts.
func (r *AssignmentRepository) HasOpenCheckIn(ctx context.Context, workerID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Assignment{}).
		Where("worker_id = ? AND status = ?", workerID, models.AssignmentStatusInProgress).
		Where("date IN ?", []string{day(date), day(date.AddDate(0, 0, -1))}).
		Count(&count).Error
	return count > 0, err
}

// FindPostAssignment implements PostAssignmentLookup. It returns the
// worker's SCHEDULED or CONFIRMED assignment whose window, widened by the
// grace period, contains at.
func (r *AssignmentRepository) FindPostAssignment(ctx context.Context, workerID uuid.UUID, date, at time.Time) (*models.Assignment, bool, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).
		Preload("Post").
		Where("worker_id = ? AND status IN ?", workerID,
			[]models.AssignmentStatus{models.AssignmentStatusScheduled, models.AssignmentStatusConfirmed}).
		Where("date IN ?", []string{day(date), day(date.AddDate(0, 0, -1))}).
		Where("starts_at <= ? AND ends_at >= ?", at.Add(r.grace), at.Add(-r.grace)).
		Order("starts_at ASC").
		Limit(1).
		Find(&assignments).Error
	if err != nil {
		return nil, false, err
	}
	if len(assignments) == 0 {
		return nil, false, nil
	}
	return &assignments[0], true, nil
}

// CountActiveForPost counts non-terminal assignments for a post on a date
func (r *AssignmentRepository) CountActiveForPost(ctx context.Context, postID uuid.UUID, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Assignment{}).
		Where("post_id = ? AND date = ? AND status IN ?", postID, day(date), models.ActiveAssignmentStatuses).
		Count(&count).Error
	return count, err
}

// CountCompletedAtPost counts the worker's completed assignments at a post
// dated in [from, to)
func (r *AssignmentRepository) CountCompletedAtPost(ctx context.Context, workerID, postID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Assignment{}).
		Where("worker_id = ? AND post_id = ? AND status = ?", workerID, postID, models.AssignmentStatusCompleted).
		Where("date >= ? AND date < ?", day(from), day(to)).
		Count(&count).Error
	return count, err
}

// SumHoursWorked totals hours of the worker's completed assignments dated
// in [from, to)
func (r *AssignmentRepository) SumHoursWorked(ctx context.Context, workerID uuid.UUID, from, to time.Time) (float64, error) {
	var row struct {
		Total float64
	}
	err := r.db.WithContext(ctx).Model(&models.Assignment{}).
		Select("COALESCE(SUM(hours_worked), 0) AS total").
		Where("worker_id = ? AND status = ?", workerID, models.AssignmentStatusCompleted).
		Where("date >= ? AND date < ?", day(from), day(to)).
		Scan(&row).Error
	return row.Total, err
}

// ListDueForNoShow lists SCHEDULED or CONFIRMED assignments that started
// before startedBefore, oldest first
func (r *AssignmentRepository) ListDueForNoShow(ctx context.Context, startedBefore time.Time, limit int) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).
		Where("status IN ? AND starts_at < ? AND archived = ?",
			[]models.AssignmentStatus{models.AssignmentStatusScheduled, models.AssignmentStatusConfirmed},
			startedBefore, false).
		Order("starts_at ASC").
		Limit(limit).
		Find(&assignments).Error
	return assignments, err
}
