package repository

import (
	"errors"
	"fmt"

	"medcheck-backend/internal/database/models"
	apperrors "medcheck-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationWithCounts is an organization row joined with its usage counters
type OrganizationWithCounts struct {
	models.Organization
	UserCount       int64 `json:"user_count"`
	ActiveUserCount int64 `json:"active_user_count"`
	ChecklistCount  int64 `json:"checklist_count"`
}

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Register creates an organization together with its first admin user in a
// single transaction. If either insert fails, neither row persists.
func (r *OrganizationRepository) Register(org *models.Organization, admin *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}
		admin.OrganizationID = org.ID
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an organization by its ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return &org, nil
}

// GetBySlug retrieves an organization by its slug
func (r *OrganizationRepository) GetBySlug(slug string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return &org, nil
}

// GetAllWithCounts retrieves all organizations with their user and checklist
// entry counts, newest first.
func (r *OrganizationRepository) GetAllWithCounts() ([]OrganizationWithCounts, error) {
	var orgs []models.Organization
	if err := r.db.Order("created_at DESC").Find(&orgs).Error; err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	result := make([]OrganizationWithCounts, 0, len(orgs))
	for _, org := range orgs {
		var userCount, activeUserCount, checklistCount int64
		if err := r.db.Model(&models.User{}).Where("organization_id = ?", org.ID).Count(&userCount).Error; err != nil {
			return nil, fmt.Errorf("failed to count users: %w", err)
		}
		if err := r.db.Model(&models.User{}).Where("organization_id = ? AND is_active = ?", org.ID, true).Count(&activeUserCount).Error; err != nil {
			return nil, fmt.Errorf("failed to count active users: %w", err)
		}
		if err := r.db.Model(&models.ChecklistEntry{}).Where("organization_id = ?", org.ID).Count(&checklistCount).Error; err != nil {
			return nil, fmt.Errorf("failed to count checklist entries: %w", err)
		}
		result = append(result, OrganizationWithCounts{
			Organization:    org,
			UserCount:       userCount,
			ActiveUserCount: activeUserCount,
			ChecklistCount:  checklistCount,
		})
	}
	return result, nil
}

// Update saves changes to an existing organization
func (r *OrganizationRepository) Update(org *models.Organization) error {
	if err := r.db.Save(org).Error; err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}
	return nil
}
