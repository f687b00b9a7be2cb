package service

import (
	"fmt"
	"time"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/database/models"
	apperrors "medcheck-backend/internal/errors"
	"medcheck-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ReminderService handles business logic for reminders
type ReminderService struct {
	reminders repository.ReminderRepositoryInterface
	validator *validator.Validate
}

// NewReminderService creates a new reminder service
func NewReminderService(reminders repository.ReminderRepositoryInterface, validator *validator.Validate) *ReminderService {
	return &ReminderService{
		reminders: reminders,
		validator: validator,
	}
}

// CreateReminderRequest represents the payload to create a reminder
type CreateReminderRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Body        string    `json:"body,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

// ReminderResponse represents a reminder in API responses
type ReminderResponse struct {
	models.Reminder
}

// ReminderListResponse represents a list of reminders
type ReminderListResponse struct {
	Reminders []models.Reminder `json:"reminders"`
}

// Create schedules a new reminder owned by the principal
func (s *ReminderService) Create(principal auth.Principal, req *CreateReminderRequest) (*ReminderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("title and scheduled_at are required")
	}

	reminder := &models.Reminder{
		UserID:         principal.ID,
		Title:          req.Title,
		Body:           req.Body,
		ScheduledAt:    req.ScheduledAt,
		Active:         true,
		OrganizationID: principal.OrganizationID,
	}

	if err := s.reminders.Create(reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return &ReminderResponse{Reminder: *reminder}, nil
}

// List retrieves all reminders owned by the principal
func (s *ReminderService) List(principal auth.Principal) (*ReminderListResponse, error) {
	reminders, err := s.reminders.ListByUser(principal.OrganizationID, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return &ReminderListResponse{Reminders: reminders}, nil
}

// ListPending retrieves the principal's reminders that are due and unsent
func (s *ReminderService) ListPending(principal auth.Principal) (*ReminderListResponse, error) {
	reminders, err := s.reminders.ListPending(principal.OrganizationID, principal.ID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reminders: %w", err)
	}
	return &ReminderListResponse{Reminders: reminders}, nil
}

// MarkSent stamps a reminder with the current time as its delivery time
func (s *ReminderService) MarkSent(principal auth.Principal, id uuid.UUID) (*MessageResponse, error) {
	reminder, err := s.reminders.GetByID(principal.OrganizationID, principal.ID, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	now := time.Now()
	reminder.SentAt = &now
	if err := s.reminders.Update(reminder); err != nil {
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	return &MessageResponse{Message: "Reminder marked as sent"}, nil
}

// Delete removes a reminder owned by the principal
func (s *ReminderService) Delete(principal auth.Principal, id uuid.UUID) error {
	if err := s.reminders.Delete(principal.OrganizationID, principal.ID, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.ErrReminderNotFound
		}
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}
