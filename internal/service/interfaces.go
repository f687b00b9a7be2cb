package service

import (
	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthServiceInterface defines the interface for the authentication service
type AuthServiceInterface interface {
	Login(req *LoginRequest) (*LoginResponse, error)
	CurrentUser(userID uuid.UUID) (*UserResponse, error)
	VerifyToken(token string) *VerifyTokenResponse
}

// OrganizationServiceInterface defines the interface for the organization service
type OrganizationServiceInterface interface {
	Register(req *RegisterOrganizationRequest) (*RegisterOrganizationResponse, error)
	ListAll() (*OrganizationListResponse, error)
	GetByID(principal auth.Principal, id uuid.UUID) (*OrganizationResponse, error)
	ToggleActive(id uuid.UUID) (*ToggleActiveResponse, error)
	CreateUser(principal auth.Principal, req *CreateUserRequest) (*CreateUserResponse, error)
}

// ChecklistServiceInterface defines the interface for the checklist service
type ChecklistServiceInterface interface {
	Create(principal auth.Principal, req *ChecklistEntryRequest) (*ChecklistEntryResponse, error)
	List(orgID uuid.UUID, filter repository.ChecklistFilter) (*ChecklistListResponse, error)
	GetByID(orgID, id uuid.UUID) (*ChecklistEntryResponse, error)
	Update(orgID, id uuid.UUID, req *ChecklistEntryRequest) (*ChecklistEntryResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// ReminderServiceInterface defines the interface for the reminder service
type ReminderServiceInterface interface {
	Create(principal auth.Principal, req *CreateReminderRequest) (*ReminderResponse, error)
	List(principal auth.Principal) (*ReminderListResponse, error)
	ListPending(principal auth.Principal) (*ReminderListResponse, error)
	MarkSent(principal auth.Principal, id uuid.UUID) (*MessageResponse, error)
	Delete(principal auth.Principal, id uuid.UUID) error
}

// MedicationErrorServiceInterface defines the interface for the medication error service
type MedicationErrorServiceInterface interface {
	Report(principal auth.Principal, req *ReportMedicationErrorRequest) (*ReportMedicationErrorResponse, error)
	List(orgID uuid.UUID, filter repository.MedicationErrorFilter) (*MedicationErrorListResponse, error)
	Resolve(orgID, id uuid.UUID, req *ResolveMedicationErrorRequest) (*MessageResponse, error)
	Metrics(orgID uuid.UUID, days int) (*ErrorMetricsResponse, error)
	Timeline(orgID uuid.UUID, days int) (*ErrorTimelineResponse, error)
	GlobalSummary(days int) (*GlobalErrorSummaryResponse, error)
}

// ReportServiceInterface defines the interface for the reporting service
type ReportServiceInterface interface {
	QualityIndicators(orgID uuid.UUID, days int) (*QualityIndicatorsResponse, error)
	ComplianceByArea(orgID uuid.UUID, days int) (*ComplianceByAreaResponse, error)
	ComplianceTrend(orgID uuid.UUID, days int) (*ComplianceTrendResponse, error)
	Summary(orgID uuid.UUID, days int) (*ReportSummaryResponse, error)
}

// NotificationServiceInterface defines the interface for the push notification service
type NotificationServiceInterface interface {
	Subscribe(principal auth.Principal, req *SubscribeRequest) (*MessageResponse, error)
	Unsubscribe(principal auth.Principal, req *UnsubscribeRequest) (*MessageResponse, error)
	VAPIDPublicKey() *VAPIDPublicKeyResponse
}

// MessageResponse is a generic acknowledgement payload
type MessageResponse struct {
	Message string `json:"message"`
}
