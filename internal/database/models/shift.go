package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift is a named daily time window at a site. EndTime at or before
// StartTime means the shift runs past midnight.
type Shift struct {
	BaseModel
	SiteID    uuid.UUID `json:"site_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string    `json:"name" gorm:"size:80;not null" validate:"required,max=80"`
	StartTime ClockTime `json:"start_time" gorm:"not null"`
	EndTime   ClockTime `json:"end_time" gorm:"not null"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// IsOvernight reports whether the shift crosses midnight
func (s *Shift) IsOvernight() bool {
	return s.EndTime <= s.StartTime
}

// WindowOn returns the absolute start and end of the shift starting on day
func (s *Shift) WindowOn(day time.Time) (time.Time, time.Time) {
	start := s.StartTime.On(day)
	end := s.EndTime.On(day)
	if s.IsOvernight() {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}
