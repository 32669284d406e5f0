package models

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalRequest is a pending or resolved decision on an override,
// emergency assignment or shift change. It references other aggregates by
// id only.
type ApprovalRequest struct {
	BaseModel
	VersionedModel
	Type          ApprovalRequestType `json:"type" gorm:"type:varchar(40);not null;index" validate:"required"`
	Priority      ApprovalPriority    `json:"priority" gorm:"type:varchar(20);not null" validate:"required"`
	Status        ApprovalStatus      `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	RequestedBy   string              `json:"requested_by" gorm:"size:80;not null" validate:"required"`
	ReasonCode    string              `json:"reason_code,omitempty" gorm:"size:40"`
	Justification string              `json:"justification" gorm:"type:text"`
	Details       JSONMap             `json:"details" gorm:"type:jsonb"`
	ExpiresAt     time.Time           `json:"expires_at" gorm:"not null;index"`

	AssignmentID *uuid.UUID `json:"assignment_id,omitempty" gorm:"type:uuid;index"`
	PostID       *uuid.UUID `json:"post_id,omitempty" gorm:"type:uuid"`
	ShiftID      *uuid.UUID `json:"shift_id,omitempty" gorm:"type:uuid"`
	WorkerID     *uuid.UUID `json:"worker_id,omitempty" gorm:"type:uuid"`
	Date         *time.Time `json:"date,omitempty" gorm:"type:date"`

	ResolvedBy         string     `json:"resolved_by,omitempty" gorm:"size:80"`
	ResolvedAt         *time.Time `json:"resolved_at,omitempty"`
	ReviewerNotes      string     `json:"reviewer_notes,omitempty" gorm:"type:text"`
	RejectionReason    string     `json:"rejection_reason,omitempty" gorm:"type:text"`
	AutoApprovalRuleID *uuid.UUID `json:"auto_approval_rule_id,omitempty" gorm:"type:uuid"`
	EscalatedAt        *time.Time `json:"escalated_at,omitempty"`
}

// TableName returns the table name for ApprovalRequest
func (ApprovalRequest) TableName() string {
	return "approval_requests"
}

// IsExpiredAt reports whether a pending request is past its expiry
func (r *ApprovalRequest) IsExpiredAt(now time.Time) bool {
	return r.Status == ApprovalStatusPending && !now.Before(r.ExpiresAt)
}
