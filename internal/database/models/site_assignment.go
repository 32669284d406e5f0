package models

import (
	"github.com/google/uuid"
)

// SiteAssignment is the primary record that a worker is deployed to a site
type SiteAssignment struct {
	BaseModel
	WorkerID uuid.UUID `json:"worker_id" gorm:"type:uuid;not null;uniqueIndex:idx_site_assignment_worker_site" validate:"required"`
	SiteID   uuid.UUID `json:"site_id" gorm:"type:uuid;not null;uniqueIndex:idx_site_assignment_worker_site;index" validate:"required"`
	IsActive bool      `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for SiteAssignment
func (SiteAssignment) TableName() string {
	return "site_assignments"
}
