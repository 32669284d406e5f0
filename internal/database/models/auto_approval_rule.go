package models

// AutoApprovalRule approves matching requests without a reviewer. Empty list
// conditions and nil thresholds are not checked.
type AutoApprovalRule struct {
	BaseModel
	Name     string `json:"name" gorm:"size:120;not null" validate:"required,max=120"`
	Sequence int    `json:"sequence" gorm:"not null;default:100;index"`
	IsActive bool   `json:"is_active" gorm:"not null;default:true"`

	RequestTypes   StringList `json:"request_types" gorm:"type:jsonb;not null;default:'[]'" validate:"required,min=1"`
	ReasonCodes    StringList `json:"reason_codes" gorm:"type:jsonb;not null;default:'[]'"`
	Priorities     StringList `json:"priorities" gorm:"type:jsonb;not null;default:'[]'"`
	PostRiskLevels StringList `json:"post_risk_levels" gorm:"type:jsonb;not null;default:'[]'"`

	MaxDistanceMeters       *float64 `json:"max_distance_meters,omitempty"`
	MaxMinutesOutsideWindow *float64 `json:"max_minutes_outside_window,omitempty"`
	MinRestHours            *float64 `json:"min_rest_hours,omitempty"`
}

// TableName returns the table name for AutoApprovalRule
func (AutoApprovalRule) TableName() string {
	return "auto_approval_rules"
}
