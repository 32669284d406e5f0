package models

import (
	"github.com/google/uuid"
)

// Post is a duty station within a site
type Post struct {
	BaseModel
	SiteID uuid.UUID `json:"site_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name   string    `json:"name" gorm:"size:120;not null" validate:"required,max=120"`

	GeofenceType     GeofenceType `json:"geofence_type" gorm:"type:varchar(20);not null;default:'CIRCLE'"`
	CenterLat        float64      `json:"center_lat" validate:"min=-90,max=90"`
	CenterLon        float64      `json:"center_lon" validate:"min=-180,max=180"`
	RadiusMeters     float64      `json:"radius_meters" validate:"min=0"`
	Polygon          VertexList   `json:"polygon,omitempty" gorm:"type:jsonb"`
	HysteresisMeters *float64     `json:"hysteresis_meters,omitempty"` // nil uses the deployment default

	CoverageRequired       bool       `json:"coverage_required" gorm:"not null"`
	RequiredGuards         int        `json:"required_guards" gorm:"not null;default:1" validate:"min=0"`
	RiskLevel              RiskLevel  `json:"risk_level" gorm:"type:varchar(20);not null;default:'LOW'"`
	ArmedRequired          bool       `json:"armed_required" gorm:"not null;default:false"`
	RequiredCertifications StringList `json:"required_certifications" gorm:"type:jsonb;not null;default:'[]'"`

	PostOrders        string `json:"post_orders" gorm:"type:text"`
	PostOrdersVersion int    `json:"post_orders_version" gorm:"not null;default:1"`
	IsActive          bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for Post
func (Post) TableName() string {
	return "posts"
}

// ReviseOrders replaces the post orders. The version moves forward by one
// only when the content actually changes, which invalidates every existing
// acknowledgement for the post.
func (p *Post) ReviseOrders(content string) bool {
	if content == p.PostOrders {
		return false
	}
	p.PostOrders = content
	p.PostOrdersVersion++
	return true
}

// HasRequirements reports whether the post restricts who may stand it
func (p *Post) HasRequirements() bool {
	return p.ArmedRequired || len(p.RequiredCertifications) > 0
}

// RequiresAcknowledgement reports whether check-in needs current post orders acknowledged
func (p *Post) RequiresAcknowledgement() bool {
	return p.RiskLevel.RequiresAcknowledgement()
}
