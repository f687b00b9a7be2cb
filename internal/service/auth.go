package service

import (
	"fmt"

	"medcheck-backend/internal/auth"
	apperrors "medcheck-backend/internal/errors"
	"medcheck-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AuthService handles the login and token verification flows
type AuthService struct {
	users     repository.UserRepositoryInterface
	tokens    *auth.AuthService
	validator *validator.Validate
}

// NewAuthService creates a new authentication flow service
func NewAuthService(users repository.UserRepositoryInterface, tokens *auth.AuthService, validator *validator.Validate) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		validator: validator,
	}
}

// LoginRequest represents the login credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	IsActive       bool      `json:"is_active"`
	IsAdmin        bool      `json:"is_admin"`
	IsSuperAdmin   bool      `json:"is_super_admin"`
	OrganizationID uuid.UUID `json:"organization_id"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// TokenPayload represents the decoded claims of a verified token
type TokenPayload struct {
	UserID         string    `json:"user_id"`
	Username       string    `json:"username"`
	OrganizationID uuid.UUID `json:"organization_id"`
	IsAdmin        bool      `json:"is_admin"`
	IsSuperAdmin   bool      `json:"is_super_admin"`
}

// VerifyTokenResponse represents the outcome of a token verification
type VerifyTokenResponse struct {
	Valid   bool          `json:"valid"`
	Error   string        `json:"error,omitempty"`
	Payload *TokenPayload `json:"payload,omitempty"`
}

// Login authenticates a user by username and password and issues a token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("username and password are required")
	}

	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	if !s.tokens.VerifyPassword(req.Password, user.HashedPassword) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
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

// CurrentUser returns the profile of the authenticated user
func (s *AuthService) CurrentUser(userID uuid.UUID) (*UserResponse, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		FullName:       user.FullName,
		IsActive:       user.IsActive,
		IsAdmin:        user.IsAdmin,
		IsSuperAdmin:   user.IsSuperAdmin,
		OrganizationID: user.OrganizationID,
	}, nil
}

// VerifyToken checks a token without touching the database. An invalid token
// is a negative verification result, not an error.
func (s *AuthService) VerifyToken(token string) *VerifyTokenResponse {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return &VerifyTokenResponse{Valid: false, Error: "Invalid or expired token"}
	}

	return &VerifyTokenResponse{
		Valid: true,
		Payload: &TokenPayload{
			UserID:         claims.Subject,
			Username:       claims.Username,
			OrganizationID: claims.OrganizationID,
			IsAdmin:        claims.IsAdmin,
			IsSuperAdmin:   claims.IsSuperAdmin,
		},
	}
}
