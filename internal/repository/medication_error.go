package repository

import (
	"errors"
	"fmt"
	"time"

	"medcheck-backend/internal/database/models"
	apperrors "medcheck-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedicationErrorRepository handles database operations for medication error
// reports. Except for the cross-tenant listing used by the global summary,
// every query is scoped to one organization.
type MedicationErrorRepository struct {
	db *gorm.DB
}

// NewMedicationErrorRepository creates a new medication error repository
func NewMedicationErrorRepository(db *gorm.DB) *MedicationErrorRepository {
	return &MedicationErrorRepository{db: db}
}

// Create inserts a new medication error report
func (r *MedicationErrorRepository) Create(merr *models.MedicationError) error {
	if err := r.db.Create(merr).Error; err != nil {
		return fmt.Errorf("failed to create medication error: %w", err)
	}
	return nil
}

// GetByID retrieves a medication error by ID within an organization
func (r *MedicationErrorRepository) GetByID(orgID, id uuid.UUID) (*models.MedicationError, error) {
	var merr models.MedicationError
	if err := r.db.First(&merr, "id = ? AND organization_id = ?", id, orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMedicationErrorNotFound
		}
		return nil, fmt.Errorf("failed to get medication error: %w", err)
	}
	return &merr, nil
}

// List retrieves medication errors for an organization, newest first,
// applying any set filter fields.
func (r *MedicationErrorRepository) List(orgID uuid.UUID, filter MedicationErrorFilter) ([]models.MedicationError, error) {
	query := r.db.Where("organization_id = ?", orgID)
	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
	}
	if filter.ErrorType != "" {
		query = query.Where("error_type = ?", filter.ErrorType)
	}
	if filter.Stage != "" {
		query = query.Where("stage = ?", filter.Stage)
	}
	if filter.Search != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.StartDate != nil {
		query = query.Where("occurred_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("occurred_at <= ?", *filter.EndDate)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var merrs []models.MedicationError
	if err := query.Order("occurred_at DESC").Find(&merrs).Error; err != nil {
		return nil, fmt.Errorf("failed to list medication errors: %w", err)
	}
	return merrs, nil
}

// Update saves changes to an existing medication error
func (r *MedicationErrorRepository) Update(merr *models.MedicationError) error {
	if err := r.db.Save(merr).Error; err != nil {
		return fmt.Errorf("failed to update medication error: %w", err)
	}
	return nil
}

// ListSince retrieves all errors of an organization that occurred at or after
// the given time, oldest first. Used by the metrics and timeline queries.
func (r *MedicationErrorRepository) ListSince(orgID uuid.UUID, since time.Time) ([]models.MedicationError, error) {
	var merrs []models.MedicationError
	err := r.db.
		Where("organization_id = ? AND occurred_at >= ?", orgID, since).
		Order("occurred_at ASC").
		Find(&merrs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medication errors: %w", err)
	}
	return merrs, nil
}

// CountAllSince counts errors across all organizations that occurred at or
// after the given time. Used by the super admin global summary.
func (r *MedicationErrorRepository) CountAllSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.MedicationError{}).Where("occurred_at >= ?", since).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count medication errors: %w", err)
	}
	return count, nil
}
