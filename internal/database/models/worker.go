package models

import (
	"time"
)

// ArmedRequirement is the pseudo-certification reported when a post needs
// an armed guard and the worker is not armed
const ArmedRequirement = "ARMED"

// Worker is a deployable security guard
type Worker struct {
	BaseModel
	EmployeeCode   string     `json:"employee_code" gorm:"size:40;not null;uniqueIndex" validate:"required,max=40"`
	FullName       string     `json:"full_name" gorm:"size:120;not null" validate:"required,max=120"`
	Username       string     `json:"username" gorm:"size:80;index"` // directory uid
	IsArmed        bool       `json:"is_armed" gorm:"not null;default:false"`
	Certifications StringList `json:"certifications" gorm:"type:jsonb;not null;default:'[]'"`
	LastKnownLat   *float64   `json:"last_known_lat,omitempty"`
	LastKnownLon   *float64   `json:"last_known_lon,omitempty"`
	LastSeenAt     *time.Time `json:"last_seen_at,omitempty"`
	IsActive       bool       `json:"is_active" gorm:"not null;default:true;index"`
}

// TableName returns the table name for Worker
func (Worker) TableName() string {
	return "workers"
}

// MissingRequirements lists what the worker lacks for the post
func (w *Worker) MissingRequirements(post *Post) []string {
	missing := []string{}
	if post == nil {
		return missing
	}
	if post.ArmedRequired && !w.IsArmed {
		missing = append(missing, ArmedRequirement)
	}
	for _, cert := range post.RequiredCertifications {
		if !w.Certifications.Contains(cert) {
			missing = append(missing, cert)
		}
	}
	return missing
}

// HasLocation reports whether a last known position is recorded
func (w *Worker) HasLocation() bool {
	return w.LastKnownLat != nil && w.LastKnownLon != nil
}
