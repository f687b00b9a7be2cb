package repository

import (
	"time"

	"medcheck-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ChecklistFilter narrows checklist entry listings. Zero values mean "no
// constraint"; every set field is ANDed to the tenant predicate.
type ChecklistFilter struct {
	Area      string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// MedicationErrorFilter narrows medication error listings
type MedicationErrorFilter struct {
	Severity  string
	ErrorType string
	Stage     string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// OrganizationRepositoryInterface defines the contract for organization data access
type OrganizationRepositoryInterface interface {
	Register(org *models.Organization, admin *models.User) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	GetAllWithCounts() ([]OrganizationWithCounts, error)
	Update(org *models.Organization) error
}

// UserRepositoryInterface defines the contract for user data access
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	CountByOrganization(orgID uuid.UUID) (int64, error)
}

// ChecklistEntryRepositoryInterface defines the contract for checklist entry data access
type ChecklistEntryRepositoryInterface interface {
	Create(entry *models.ChecklistEntry) error
	GetByID(orgID, id uuid.UUID) (*models.ChecklistEntry, error)
	List(orgID uuid.UUID, filter ChecklistFilter) ([]models.ChecklistEntry, error)
	Update(entry *models.ChecklistEntry) error
	Delete(orgID, id uuid.UUID) error
	ListSince(orgID uuid.UUID, since time.Time) ([]models.ChecklistEntry, error)
	CountAllSince(since time.Time) (int64, error)
}

// ReminderRepositoryInterface defines the contract for reminder data access
type ReminderRepositoryInterface interface {
	Create(reminder *models.Reminder) error
	GetByID(orgID, userID, id uuid.UUID) (*models.Reminder, error)
	ListByUser(orgID, userID uuid.UUID) ([]models.Reminder, error)
	ListPending(orgID, userID uuid.UUID, now time.Time) ([]models.Reminder, error)
	Update(reminder *models.Reminder) error
	Delete(orgID, userID, id uuid.UUID) error
}

// MedicationErrorRepositoryInterface defines the contract for medication error data access
type MedicationErrorRepositoryInterface interface {
	Create(merr *models.MedicationError) error
	GetByID(orgID, id uuid.UUID) (*models.MedicationError, error)
	List(orgID uuid.UUID, filter MedicationErrorFilter) ([]models.MedicationError, error)
	Update(merr *models.MedicationError) error
	ListSince(orgID uuid.UUID, since time.Time) ([]models.MedicationError, error)
	CountAllSince(since time.Time) (int64, error)
}

// WebPushSubscriptionRepositoryInterface defines the contract for push subscription data access
type WebPushSubscriptionRepositoryInterface interface {
	Upsert(sub *models.WebPushSubscription) error
	DeleteByEndpoint(userID uuid.UUID, endpoint string) error
}
