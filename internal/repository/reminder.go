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

// ReminderRepository handles database operations for reminders. Reminders are
// private to their owner, so every lookup is scoped by both organization and
// user.
type ReminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Create inserts a new reminder
func (r *ReminderRepository) Create(reminder *models.Reminder) error {
	if err := r.db.Create(reminder).Error; err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// GetByID retrieves a reminder owned by the given user
func (r *ReminderRepository) GetByID(orgID, userID, id uuid.UUID) (*models.Reminder, error) {
	var reminder models.Reminder
	err := r.db.First(&reminder, "id = ? AND organization_id = ? AND user_id = ?", id, orgID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}
	return &reminder, nil
}

// ListByUser retrieves all reminders owned by the given user, soonest first
func (r *ReminderRepository) ListByUser(orgID, userID uuid.UUID) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := r.db.
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Order("scheduled_at ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

// ListPending retrieves active, unsent reminders that are due at or before now
func (r *ReminderRepository) ListPending(orgID, userID uuid.UUID, now time.Time) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := r.db.
		Where("organization_id = ? AND user_id = ? AND active = ? AND sent_at IS NULL AND scheduled_at <= ?",
			orgID, userID, true, now).
		Order("scheduled_at ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reminders: %w", err)
	}
	return reminders, nil
}

// Update saves changes to an existing reminder
func (r *ReminderRepository) Update(reminder *models.Reminder) error {
	if err := r.db.Save(reminder).Error; err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	return nil
}

// Delete removes a reminder owned by the given user
func (r *ReminderRepository) Delete(orgID, userID, id uuid.UUID) error {
	result := r.db.Delete(&models.Reminder{}, "id = ? AND organization_id = ? AND user_id = ?", id, orgID, userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reminder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrReminderNotFound
	}
	return nil
}
