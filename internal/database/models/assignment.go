package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment binds one worker to one post for one date and time window.
// StartsAt and EndsAt hold the absolute window (EndsAt is on the next day
// for overnight windows) so overlap and lateness never need clock arithmetic.
type Assignment struct {
	BaseModel
	VersionedModel
	WorkerID  uuid.UUID        `json:"worker_id" gorm:"type:uuid;not null;index:idx_assignment_worker_date" validate:"required"`
	PostID    uuid.UUID        `json:"post_id" gorm:"type:uuid;not null;index:idx_assignment_post_date" validate:"required"`
	ShiftID   *uuid.UUID       `json:"shift_id,omitempty" gorm:"type:uuid"`
	SiteID    uuid.UUID        `json:"site_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date      time.Time        `json:"date" gorm:"type:date;not null;index:idx_assignment_worker_date;index:idx_assignment_post_date" validate:"required"`
	StartTime ClockTime        `json:"start_time" gorm:"not null"`
	EndTime   ClockTime        `json:"end_time" gorm:"not null"`
	StartsAt  time.Time        `json:"starts_at" gorm:"not null;index"`
	EndsAt    time.Time        `json:"ends_at" gorm:"not null"`
	Status    AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'SCHEDULED';index"`

	IsOverride     bool   `json:"is_override" gorm:"not null;default:false"`
	OverrideReason string `json:"override_reason,omitempty" gorm:"type:text"`
	OverrideType   string `json:"override_type,omitempty" gorm:"size:255"` // comma-separated reason codes approved for bypass

	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
	CheckedInAt     *time.Time `json:"checked_in_at,omitempty"`
	CheckedOutAt    *time.Time `json:"checked_out_at,omitempty"`
	CheckInLat      *float64   `json:"check_in_lat,omitempty"`
	CheckInLon      *float64   `json:"check_in_lon,omitempty"`
	CheckInAccuracy *float64   `json:"check_in_accuracy,omitempty"`
	HoursWorked     *float64   `json:"hours_worked,omitempty"`
	LateMinutes     *int       `json:"late_minutes,omitempty"`

	PostOrdersAcknowledged bool `json:"post_orders_acknowledged" gorm:"not null;default:false"`
	AcknowledgedVersion    *int `json:"acknowledged_version,omitempty"`

	AssignedBy  string     `json:"assigned_by,omitempty" gorm:"size:80"`
	ApprovedBy  string     `json:"approved_by,omitempty" gorm:"size:80"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CancelledBy string     `json:"cancelled_by,omitempty" gorm:"size:80"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	NoShowAt    *time.Time `json:"no_show_at,omitempty"`
	Archived    bool       `json:"archived" gorm:"not null;default:false"`

	Post   *Post   `json:"post,omitempty" gorm:"foreignKey:PostID"`
	Worker *Worker `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}

// SetWindow fixes the date and clock window. The absolute window is
// computed in loc; an end at or before the start rolls to the next day.
func (a *Assignment) SetWindow(date time.Time, start, end ClockTime, loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)
	a.Date = day
	a.StartTime = start
	a.EndTime = end
	a.StartsAt = start.On(day)
	a.EndsAt = end.On(day)
	if !a.EndsAt.After(a.StartsAt) {
		a.EndsAt = a.EndsAt.AddDate(0, 0, 1)
	}
}

// Overlaps reports whether the absolute windows intersect
func (a *Assignment) Overlaps(other *Assignment) bool {
	return a.StartsAt.Before(other.EndsAt) && other.StartsAt.Before(a.EndsAt)
}
