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

// ChecklistEntryRepository handles database operations for checklist entries.
// Every query is scoped to an organization; a row belonging to another tenant
// behaves exactly like a missing row.
type ChecklistEntryRepository struct {
	db *gorm.DB
}

// NewChecklistEntryRepository creates a new checklist entry repository
func NewChecklistEntryRepository(db *gorm.DB) *ChecklistEntryRepository {
	return &ChecklistEntryRepository{db: db}
}

// Create inserts a new checklist entry
func (r *ChecklistEntryRepository) Create(entry *models.ChecklistEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create checklist entry: %w", err)
	}
	return nil
}

// GetByID retrieves a checklist entry by ID within an organization
func (r *ChecklistEntryRepository) GetByID(orgID, id uuid.UUID) (*models.ChecklistEntry, error) {
	var entry models.ChecklistEntry
	if err := r.db.First(&entry, "id = ? AND organization_id = ?", id, orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChecklistEntryNotFound
		}
		return nil, fmt.Errorf("failed to get checklist entry: %w", err)
	}
	return &entry, nil
}

// List retrieves checklist entries for an organization, newest first,
// applying any set filter fields.
func (r *ChecklistEntryRepository) List(orgID uuid.UUID, filter ChecklistFilter) ([]models.ChecklistEntry, error) {
	query := r.db.Where("organization_id = ?", orgID)
	if filter.Area != "" {
		query = query.Where("area = ?", filter.Area)
	}
	if filter.StartDate != nil {
		query = query.Where("fecha_hora >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("fecha_hora <= ?", *filter.EndDate)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var entries []models.ChecklistEntry
	if err := query.Order("fecha_hora DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list checklist entries: %w", err)
	}
	return entries, nil
}

// CountAllSince counts entries across all organizations recorded at or after
// the given time. Used by the super admin global summary.
func (r *ChecklistEntryRepository) CountAllSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ChecklistEntry{}).Where("fecha_hora >= ?", since).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count checklist entries: %w", err)
	}
	return count, nil
}

// Update saves changes to an existing checklist entry
func (r *ChecklistEntryRepository) Update(entry *models.ChecklistEntry) error {
	if err := r.db.Save(entry).Error; err != nil {
		return fmt.Errorf("failed to update checklist entry: %w", err)
	}
	return nil
}

// Delete removes a checklist entry within an organization
func (r *ChecklistEntryRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.ChecklistEntry{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete checklist entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrChecklistEntryNotFound
	}
	return nil
}

// ListSince retrieves all entries of an organization recorded at or after
// the given time, oldest first. Used by the reporting queries.
func (r *ChecklistEntryRepository) ListSince(orgID uuid.UUID, since time.Time) ([]models.ChecklistEntry, error) {
	var entries []models.ChecklistEntry
	err := r.db.
		Where("organization_id = ? AND fecha_hora >= ?", orgID, since).
		Order("fecha_hora ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist entries: %w", err)
	}
	return entries, nil
}
