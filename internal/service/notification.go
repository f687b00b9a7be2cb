package service

import (
	"fmt"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/config"
	"medcheck-backend/internal/database/models"
	apperrors "medcheck-backend/internal/errors"
	"medcheck-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// NotificationService manages web push subscriptions and exposes the public
// VAPID key clients need to subscribe.
type NotificationService struct {
	subs      repository.WebPushSubscriptionRepositoryInterface
	cfg       *config.Config
	validator *validator.Validate
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	subs repository.WebPushSubscriptionRepositoryInterface,
	cfg *config.Config,
	validator *validator.Validate,
) *NotificationService {
	return &NotificationService{
		subs:      subs,
		cfg:       cfg,
		validator: validator,
	}
}

// SubscriptionKeys carries the browser's encryption keys for a subscription
type SubscriptionKeys struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}

// SubscribeRequest represents a browser push subscription
type SubscribeRequest struct {
	Endpoint string           `json:"endpoint" validate:"required,url"`
	Keys     SubscriptionKeys `json:"keys" validate:"required"`
}

// UnsubscribeRequest removes a push subscription by endpoint
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
}

// VAPIDPublicKeyResponse carries the server's public VAPID key
type VAPIDPublicKeyResponse struct {
	PublicKey string `json:"public_key"`
}

// Subscribe stores or refreshes a push subscription for the principal
func (s *NotificationService) Subscribe(principal auth.Principal, req *SubscribeRequest) (*MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("endpoint and keys are required")
	}

	sub := &models.WebPushSubscription{
		UserID:   principal.ID,
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	}

	if err := s.subs.Upsert(sub); err != nil {
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	return &MessageResponse{Message: "Subscription saved"}, nil
}

// Unsubscribe removes the principal's subscription for an endpoint
func (s *NotificationService) Unsubscribe(principal auth.Principal, req *UnsubscribeRequest) (*MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("endpoint is required")
	}

	if err := s.subs.DeleteByEndpoint(principal.ID, req.Endpoint); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to delete subscription: %w", err)
	}

	return &MessageResponse{Message: "Subscription removed"}, nil
}

// VAPIDPublicKey returns the public key used to authenticate push messages
func (s *NotificationService) VAPIDPublicKey() *VAPIDPublicKeyResponse {
	return &VAPIDPublicKeyResponse{PublicKey: s.cfg.VAPIDPublicKey}
}
