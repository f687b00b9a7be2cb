package models

import (
	"time"

	"github.com/google/uuid"
)

// MedicationError records a medication-error incident for quality and
// error-rate analysis. An error may reference the checklist entry of the
// administration where it happened, or stand alone.
type MedicationError struct {
	BaseModel
	OrganizationID      uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ReportedByUserID    uuid.UUID  `json:"reported_by_user_id" gorm:"type:uuid;not null;index" validate:"required"`
	ChecklistEntryID    *uuid.UUID `json:"checklist_entry_id" gorm:"type:uuid;index"`
	ErrorType           string     `json:"error_type" gorm:"not null;size:100" validate:"required"`
	Severity            Severity   `json:"severity" gorm:"type:varchar(20);not null" validate:"required"`
	Stage               Stage      `json:"stage" gorm:"type:varchar(20);not null" validate:"required"`
	Description         string     `json:"description" gorm:"type:text"`
	ContributingFactors string     `json:"contributing_factors" gorm:"type:text"`
	OccurredAt          time.Time  `json:"occurred_at" gorm:"not null;index"`
	DetectedAt          time.Time  `json:"detected_at" gorm:"not null"`
	Resolved            bool       `json:"resolved" gorm:"not null;default:false"`
	ResolutionNotes     string     `json:"resolution_notes" gorm:"type:text"`
}

// TableName returns the table name for MedicationError
func (MedicationError) TableName() string {
	return "medication_errors"
}
