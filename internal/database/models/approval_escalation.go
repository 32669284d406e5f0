package models

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalEscalation is the record emitted when an urgent or high priority
// request stays unresolved past the escalation threshold
type ApprovalEscalation struct {
	BaseModel
	ApprovalRequestID uuid.UUID        `json:"approval_request_id" gorm:"type:uuid;not null;uniqueIndex"`
	Priority          ApprovalPriority `json:"priority" gorm:"type:varchar(20);not null"`
	PendingMinutes    int              `json:"pending_minutes" gorm:"not null"`
	EscalatedAt       time.Time        `json:"escalated_at" gorm:"not null"`
}

// TableName returns the table name for ApprovalEscalation
func (ApprovalEscalation) TableName() string {
	return "approval_escalations"
}
