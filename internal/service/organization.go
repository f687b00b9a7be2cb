package service

import (
	"fmt"
	"time"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/config"
	"medcheck-backend/internal/database/models"
	apperrors "medcheck-backend/internal/errors"
	"medcheck-backend/internal/logger"
	"medcheck-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OrganizationService handles tenant registration and administration
type OrganizationService struct {
	orgs      repository.OrganizationRepositoryInterface
	users     repository.UserRepositoryInterface
	tokens    *auth.AuthService
	cfg       *config.Config
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	orgs repository.OrganizationRepositoryInterface,
	users repository.UserRepositoryInterface,
	tokens *auth.AuthService,
	cfg *config.Config,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		orgs:      orgs,
		users:     users,
		tokens:    tokens,
		cfg:       cfg,
		validator: validator,
	}
}

// RegisterOrganizationRequest represents the public sign-up form
type RegisterOrganizationRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,max=200"`
	OrganizationSlug string `json:"organization_slug" validate:"required,max=100"`
	ContactEmail     string `json:"contact_email" validate:"required,email"`
	ContactPhone     string `json:"contact_phone,omitempty"`
	InstitutionType  string `json:"institution_type,omitempty"`
	Country          string `json:"country,omitempty"`
	City             string `json:"city,omitempty"`
	Address          string `json:"address,omitempty"`
	AdminUsername    string `json:"admin_username" validate:"required,max=100"`
	AdminPassword    string `json:"admin_password" validate:"required,min=8"`
	AdminFullName    string `json:"admin_full_name,omitempty"`
}

// RegisteredOrganization is the organization part of a registration response
type RegisteredOrganization struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Plan        string     `json:"plan"`
	TrialEndsAt *time.Time `json:"trial_ends_at"`
}

// RegisteredAdmin is the admin user part of a registration response
type RegisteredAdmin struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// RegisterOrganizationResponse represents a successful registration
type RegisterOrganizationResponse struct {
	Message      string                 `json:"message"`
	Organization RegisteredOrganization `json:"organization"`
	AdminUser    RegisteredAdmin        `json:"admin_user"`
}

// OrganizationResponse represents an organization in API responses
type OrganizationResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	ContactEmail    string     `json:"contact_email"`
	ContactPhone    string     `json:"contact_phone"`
	InstitutionType string     `json:"institution_type"`
	Country         string     `json:"country"`
	City            string     `json:"city"`
	Address         string     `json:"address"`
	IsActive        bool       `json:"is_active"`
	Plan            string     `json:"plan"`
	MaxUsers        int        `json:"max_users"`
	TrialEndsAt     *time.Time `json:"trial_ends_at"`
	LogoURL         string     `json:"logo_url"`
	PrimaryColor    string     `json:"primary_color"`
	CreatedAt       time.Time  `json:"created_at"`
}

// OrganizationListResponse represents the super admin organization listing
type OrganizationListResponse struct {
	Total         int                                 `json:"total"`
	Organizations []repository.OrganizationWithCounts `json:"organizations"`
}

// ToggleActiveResponse represents the outcome of an activation toggle
type ToggleActiveResponse struct {
	Message  string `json:"message"`
	IsActive bool   `json:"is_active"`
}

// CreateUserRequest represents an admin creating a user in their organization
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name,omitempty"`
	IsAdmin  bool   `json:"is_admin,omitempty"`
}

// CreateUserResponse represents a successfully created user
type CreateUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// Register provisions a new tenant: the organization and its first admin user
// are created together, and the tenant starts on the free plan with a trial.
func (s *OrganizationService) Register(req *RegisterOrganizationRequest) (*RegisterOrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid registration request: %v", err))
	}

	if _, err := s.orgs.GetBySlug(req.OrganizationSlug); err == nil {
		return nil, apperrors.ErrOrganizationSlugExists
	} else if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check organization slug: %w", err)
	}

	if _, err := s.users.GetByUsername(req.AdminUsername); err == nil {
		return nil, apperrors.ErrUsernameExists
	} else if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.users.GetByEmail(req.ContactEmail); err == nil {
		return nil, apperrors.ErrEmailExists
	} else if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := s.tokens.HashPassword(req.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	trialEndsAt := time.Now().AddDate(0, 0, s.cfg.TrialPeriodDays)

	org := &models.Organization{
		Name:            req.OrganizationName,
		Slug:            req.OrganizationSlug,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		InstitutionType: req.InstitutionType,
		Country:         req.Country,
		City:            req.City,
		Address:         req.Address,
		IsActive:        true,
		Plan:            models.PlanFree,
		MaxUsers:        s.cfg.DefaultMaxUsers,
		TrialEndsAt:     &trialEndsAt,
	}

	fullName := req.AdminFullName
	if fullName == "" {
		fullName = req.AdminUsername
	}

	admin := &models.User{
		Email:          req.ContactEmail,
		Username:       req.AdminUsername,
		HashedPassword: hashedPassword,
		FullName:       fullName,
		IsActive:       true,
		IsAdmin:        true,
		IsSuperAdmin:   false,
	}

	if err := s.orgs.Register(org, admin); err != nil {
		return nil, fmt.Errorf("failed to register organization: %w", err)
	}

	logger.New().WithField("organization", org.Slug).Infof("Registered organization %s with admin %s", org.Name, admin.Username)

	return &RegisterOrganizationResponse{
		Message: "Organization registered successfully",
		Organization: RegisteredOrganization{
			ID:          org.ID,
			Name:        org.Name,
			Slug:        org.Slug,
			Plan:        string(org.Plan),
			TrialEndsAt: org.TrialEndsAt,
		},
		AdminUser: RegisteredAdmin{
			ID:       admin.ID,
			Username: admin.Username,
			Email:    admin.Email,
		},
	}, nil
}

// ListAll retrieves every organization with usage counters. Super admin only.
func (s *OrganizationService) ListAll() (*OrganizationListResponse, error) {
	orgs, err := s.orgs.GetAllWithCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	return &OrganizationListResponse{
		Total:         len(orgs),
		Organizations: orgs,
	}, nil
}

// GetByID retrieves an organization. Regular users may only see their own
// organization; super admins may see any.
func (s *OrganizationService) GetByID(principal auth.Principal, id uuid.UUID) (*OrganizationResponse, error) {
	if !principal.IsSuperAdmin && principal.OrganizationID != id {
		return nil, apperrors.ErrForbidden
	}

	org, err := s.orgs.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// ToggleActive flips an organization's active flag. Super admin only.
func (s *OrganizationService) ToggleActive(id uuid.UUID) (*ToggleActiveResponse, error) {
	org, err := s.orgs.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	org.IsActive = !org.IsActive
	if err := s.orgs.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	message := "Organization deactivated"
	if org.IsActive {
		message = "Organization activated"
	}
	logger.New().WithField("organization", org.Slug).Info(message)

	return &ToggleActiveResponse{
		Message:  message,
		IsActive: org.IsActive,
	}, nil
}

// CreateUser adds a user to the caller's organization. The organization's
// max_users quota counts every user, active or not.
func (s *OrganizationService) CreateUser(principal auth.Principal, req *CreateUserRequest) (*CreateUserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid user request: %v", err))
	}

	org, err := s.orgs.GetByID(principal.OrganizationID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	count, err := s.users.CountByOrganization(org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if count >= int64(org.MaxUsers) {
		return nil, apperrors.ErrUserLimitReached
	}

	if _, err := s.users.GetByUsername(req.Username); err == nil {
		return nil, apperrors.ErrUsernameExists
	} else if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.users.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailExists
	} else if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := s.tokens.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	fullName := req.FullName
	if fullName == "" {
		fullName = req.Username
	}

	user := &models.User{
		Email:          req.Email,
		Username:       req.Username,
		HashedPassword: hashedPassword,
		FullName:       fullName,
		IsActive:       true,
		IsAdmin:        req.IsAdmin,
		OrganizationID: org.ID,
	}

	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.New().WithField("organization", org.Slug).Infof("Created user %s", user.Username)

	return &CreateUserResponse{
		Message: "User created successfully",
		User: UserResponse{
			ID:             user.ID,
			Username:       user.Username,
			Email:          user.Email,
			FullName:       user.FullName,
			IsActive:       user.IsActive,
			IsAdmin:        user.IsAdmin,
			IsSuperAdmin:   user.IsSuperAdmin,
			OrganizationID: user.OrganizationID,
		},
	}, nil
}

// toResponse converts an organization model to a response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:              org.ID,
		Name:            org.Name,
		Slug:            org.Slug,
		ContactEmail:    org.ContactEmail,
		ContactPhone:    org.ContactPhone,
		InstitutionType: org.InstitutionType,
		Country:         org.Country,
		City:            org.City,
		Address:         org.Address,
		IsActive:        org.IsActive,
		Plan:            string(org.Plan),
		MaxUsers:        org.MaxUsers,
		TrialEndsAt:     org.TrialEndsAt,
		LogoURL:         org.LogoURL,
		PrimaryColor:    org.PrimaryColor,
		CreatedAt:       org.CreatedAt,
	}
}
