package models

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// PostOrdersAcknowledgement records that a worker accepted one version of a
// post's orders on one date
type PostOrdersAcknowledgement struct {
	BaseModel
	WorkerID          uuid.UUID `json:"worker_id" gorm:"type:uuid;not null;uniqueIndex:idx_ack_worker_post_version_date" validate:"required"`
	PostID            uuid.UUID `json:"post_id" gorm:"type:uuid;not null;uniqueIndex:idx_ack_worker_post_version_date;index" validate:"required"`
	PostOrdersVersion int       `json:"post_orders_version" gorm:"not null;uniqueIndex:idx_ack_worker_post_version_date"`
	AcknowledgedOn    time.Time `json:"acknowledged_on" gorm:"type:date;not null;uniqueIndex:idx_ack_worker_post_version_date"`
	AcknowledgedAt    time.Time `json:"acknowledged_at" gorm:"not null"`
	ContentHash       string    `json:"content_hash" gorm:"size:64;not null"`
}

// TableName returns the table name for PostOrdersAcknowledgement
func (PostOrdersAcknowledgement) TableName() string {
	return "post_orders_acknowledgements"
}

// HashPostOrders returns the hex SHA-256 of the orders content
func HashPostOrders(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// IsCurrentFor reports whether the acknowledgement still counts for the
// post on the given date
func (a *PostOrdersAcknowledgement) IsCurrentFor(post *Post, date time.Time) bool {
	return post != nil &&
		a.PostID == post.ID &&
		a.PostOrdersVersion == post.PostOrdersVersion &&
		SameDate(a.AcknowledgedOn, date)
}

// VerifyIntegrity recomputes the hash of content and compares it with the
// one captured at acknowledgement time
func (a *PostOrdersAcknowledgement) VerifyIntegrity(content string) bool {
	expected := HashPostOrders(content)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(a.ContentHash)) == 1
}
