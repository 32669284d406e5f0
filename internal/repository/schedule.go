package repository

import (
	"context"
	"errors"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(ctx context.Context, shift *models.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.WithContext(ctx).First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrShiftNotFound, nil)
	}
	return &shift, nil
}

// ScheduleRepository reads the roster
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create adds a roster entry
func (r *ScheduleRepository) Create(ctx context.Context, entry *models.ScheduleEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindActiveShiftAssignment implements ShiftScheduleLookup. Without an
// entry on date, the previous day's entry is used when its shift runs past
// midnight.
func (r *ScheduleRepository) FindActiveShiftAssignment(ctx context.Context, workerID, siteID uuid.UUID, date time.Time) (*models.ScheduleEntry, bool, error) {
	entry, err := r.entryOn(ctx, workerID, siteID, date)
	if err == nil {
		return entry, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	prev, err := r.entryOn(ctx, workerID, siteID, date.AddDate(0, 0, -1))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if prev.Shift != nil && prev.Shift.IsOvernight() {
		return prev, true, nil
	}
	return nil, false, nil
}

func (r *ScheduleRepository) entryOn(ctx context.Context, workerID, siteID uuid.UUID, date time.Time) (*models.ScheduleEntry, error) {
	var entry models.ScheduleEntry
	err := r.db.WithContext(ctx).
		Preload("Shift").
		Where("worker_id = ? AND site_id = ? AND date = ? AND is_active = ?", workerID, siteID, day(date), true).
		Order("created_at DESC").
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
