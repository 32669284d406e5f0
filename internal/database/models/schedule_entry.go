package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEntry is a worker's roster line for one date at a site. A nil
// ShiftID means the worker is rostered but no shift has been specified.
type ScheduleEntry struct {
	BaseModel
	WorkerID uuid.UUID  `json:"worker_id" gorm:"type:uuid;not null;index:idx_schedule_worker_date" validate:"required"`
	SiteID   uuid.UUID  `json:"site_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date     time.Time  `json:"date" gorm:"type:date;not null;index:idx_schedule_worker_date" validate:"required"`
	ShiftID  *uuid.UUID `json:"shift_id,omitempty" gorm:"type:uuid"`
	IsActive bool       `json:"is_active" gorm:"not null;default:true"`

	Shift *Shift `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
}

// TableName returns the table name for ScheduleEntry
func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}
