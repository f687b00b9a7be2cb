package repository

import (
	"fmt"

	"medcheck-backend/internal/database/models"
	apperrors "medcheck-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WebPushSubscriptionRepository handles database operations for web push subscriptions
type WebPushSubscriptionRepository struct {
	db *gorm.DB
}

// NewWebPushSubscriptionRepository creates a new web push subscription repository
func NewWebPushSubscriptionRepository(db *gorm.DB) *WebPushSubscriptionRepository {
	return &WebPushSubscriptionRepository{db: db}
}

// Upsert inserts a subscription or refreshes the keys of an existing one.
// The endpoint URL is the natural key; browsers re-subscribe with new keys
// for the same endpoint after a service worker update.
func (r *WebPushSubscriptionRepository) Upsert(sub *models.WebPushSubscription) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh", "auth", "updated_at"}),
	}).Create(sub).Error
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return nil
}

// DeleteByEndpoint removes a subscription owned by the given user
func (r *WebPushSubscriptionRepository) DeleteByEndpoint(userID uuid.UUID, endpoint string) error {
	result := r.db.Delete(&models.WebPushSubscription{}, "user_id = ? AND endpoint = ?", userID, endpoint)
	if result.Error != nil {
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrSubscriptionNotFound
	}
	return nil
}
