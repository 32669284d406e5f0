package repository

import (
	"context"
	"time"

	"guard-deployment-backend/internal/database/models"
	apperrors "guard-deployment-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const rosterLookback = 30 * 24 * time.Hour

// SiteRepository handles database operations for sites
type SiteRepository struct {
	db *gorm.DB
}

// NewSiteRepository creates a new site repository
func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

// Create creates a new site
func (r *SiteRepository) Create(ctx context.Context, site *models.Site) error {
	return r.db.WithContext(ctx).Create(site).Error
}

// GetByID retrieves a site by ID
func (r *SiteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Site, error) {
	var site models.Site
	err := r.db.WithContext(ctx).First(&site, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrSiteNotFound, nil)
	}
	return &site, nil
}

// SiteAssignmentRepository is the primary site membership source
type SiteAssignmentRepository struct {
	db *gorm.DB
}

// NewSiteAssignmentRepository creates a new site assignment repository
func NewSiteAssignmentRepository(db *gorm.DB) *SiteAssignmentRepository {
	return &SiteAssignmentRepository{db: db}
}

// Create deploys a worker to a site
func (r *SiteAssignmentRepository) Create(ctx context.Context, sa *models.SiteAssignment) error {
	return translate(r.db.WithContext(ctx).Create(sa).Error, nil, apperrors.ErrSiteAssignmentExists)
}

// IsWorkerAssignedToSite implements SiteMembershipLookup
func (r *SiteAssignmentRepository) IsWorkerAssignedToSite(ctx context.Context, workerID, siteID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SiteAssignment{}).
		Where("worker_id = ? AND site_id = ? AND is_active = ?", workerID, siteID, true).
		Count(&count).Error
	return count > 0, err
}

// RosterMembership is the fallback membership source when no directory is
// configured: a worker rostered at the site within the last 30 days counts
// as assigned to it
type RosterMembership struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRosterMembership creates a roster-based membership lookup
func NewRosterMembership(db *gorm.DB) *RosterMembership {
	return &RosterMembership{db: db, now: time.Now}
}

// IsWorkerAssignedToSite implements SiteMembershipLookup
func (r *RosterMembership) IsWorkerAssignedToSite(ctx context.Context, workerID, siteID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ScheduleEntry{}).
		Where("worker_id = ? AND site_id = ? AND is_active = ? AND date >= ?",
			workerID, siteID, true, day(r.now().Add(-rosterLookback))).
		Count(&count).Error
	return count > 0, err
}
