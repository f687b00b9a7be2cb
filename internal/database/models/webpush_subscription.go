package models

import (
	"github.com/google/uuid"
)

// WebPushSubscription stores a browser push endpoint and its encryption
// keys for a user. Delivery itself happens outside this service; we only
// store and retrieve subscriptions.
type WebPushSubscription struct {
	BaseModel
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Endpoint string    `json:"endpoint" gorm:"uniqueIndex;not null;size:500" validate:"required"`
	P256dh   string    `json:"p256dh" gorm:"not null;size:255" validate:"required"`
	Auth     string    `json:"auth" gorm:"not null;size:255" validate:"required"`
}

// TableName returns the table name for WebPushSubscription
func (WebPushSubscription) TableName() string {
	return "webpush_subscriptions"
}
