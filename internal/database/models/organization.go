package models

import (
	"time"
)

// Organization represents the root entity for multi-tenancy: every
// tenant-scoped row carries its identifier
type Organization struct {
	BaseModel
	Name            string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Slug            string     `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	ContactEmail    string     `json:"contact_email" gorm:"not null;size:255" validate:"required,email,max=255"`
	ContactPhone    string     `json:"contact_phone" gorm:"size:50"`
	InstitutionType string     `json:"institution_type" gorm:"size:100"`
	Country         string     `json:"country" gorm:"size:100"`
	City            string     `json:"city" gorm:"size:100"`
	Address         string     `json:"address" gorm:"size:255"`
	IsActive        bool       `json:"is_active" gorm:"not null;default:true"`
	Plan            Plan       `json:"plan" gorm:"type:varchar(20);not null;default:'free'"`
	MaxUsers        int        `json:"max_users" gorm:"not null;default:5"`
	TrialEndsAt     *time.Time `json:"trial_ends_at"`
	LogoURL         string     `json:"logo_url" gorm:"size:500"`
	PrimaryColor    string     `json:"primary_color" gorm:"size:20;default:'#0d6efd'"`

	// Relationships
	Users            []User           `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	ChecklistEntries []ChecklistEntry `json:"checklist_entries,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Reminders        []Reminder       `json:"reminders,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	MedicationErrors []MedicationError `json:"medication_errors,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
