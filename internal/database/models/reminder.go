package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder belongs to a user within an organization. A reminder is pending
// when it is active, has no sent time and its scheduled time has passed.
type Reminder struct {
	BaseModel
	UserID         uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title          string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Body           string     `json:"body" gorm:"type:text"`
	ScheduledAt    time.Time  `json:"scheduled_at" gorm:"not null" validate:"required"`
	SentAt         *time.Time `json:"sent_at"`
	Active         bool       `json:"active" gorm:"not null;default:true"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
}

// TableName returns the table name for Reminder
func (Reminder) TableName() string {
	return "reminders"
}
