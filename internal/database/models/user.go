package models

import (
	"github.com/google/uuid"
)

// User represents a staff account. Every user belongs to exactly one
// organization; is_admin and is_super_admin are independent capability
// flags, not a hierarchy.
type User struct {
	BaseModel
	Email          string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Username       string    `json:"username" gorm:"uniqueIndex;not null;size:100" validate:"required,min=3,max=100"`
	HashedPassword string    `json:"-" gorm:"not null;size:255"`
	FullName       string    `json:"full_name" gorm:"size:200"`
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`
	IsAdmin        bool      `json:"is_admin" gorm:"not null;default:false"`
	IsSuperAdmin   bool      `json:"is_super_admin" gorm:"not null;default:false"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
