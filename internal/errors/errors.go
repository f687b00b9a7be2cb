package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found. It is also
// the answer for cross-tenant id probes: a row outside the caller's
// organization is reported as absent, never as forbidden.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness violation
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this slug"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// QuotaError represents a plan limit violation
type QuotaError struct {
	Message string
}

func (e *QuotaError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound    = &NotFoundError{Entity: "organization"}
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrChecklistEntryNotFound  = &NotFoundError{Entity: "checklist entry"}
	ErrReminderNotFound        = &NotFoundError{Entity: "reminder"}
	ErrMedicationErrorNotFound = &NotFoundError{Entity: "medication error"}
	ErrSubscriptionNotFound    = &NotFoundError{Entity: "push subscription"}
)

// Already Exists Errors
var (
	ErrOrganizationSlugExists = &AlreadyExistsError{Entity: "organization", Context: "with this slug"}
	ErrUsernameExists         = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrEmailExists            = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid credentials"}
	ErrInactiveUser       = &AuthenticationError{Message: "user account is inactive"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrMissingToken       = &AuthenticationError{Message: "no token provided"}
)

// Authorization Errors
var (
	ErrAdminRequired      = &AuthorizationError{Message: "admin access required"}
	ErrSuperAdminRequired = &AuthorizationError{Message: "super admin access required"}
	ErrForbidden          = &AuthorizationError{Message: "forbidden"}
)

// Quota Errors
var (
	ErrUserLimitReached = &QuotaError{Message: "user limit reached for this organization's plan"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsQuota checks if an error is a QuotaError
func IsQuota(err error) bool {
	var quotaErr *QuotaError
	return errors.As(err, &quotaErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
