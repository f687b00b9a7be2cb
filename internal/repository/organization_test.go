//go:build integration
// +build integration

package repository

import (
	"testing"

	apperrors "medcheck-backend/internal/errors"
	"medcheck-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestRegister tests that an organization and its admin are created together
func (suite *OrganizationRepositoryTestSuite) TestRegister() {
	org := suite.factories.Organization.Create()
	admin := suite.factories.User.Create()
	admin.IsAdmin = true

	err := suite.repo.Register(org, admin)
	suite.NoError(err)
	suite.Equal(org.ID, admin.OrganizationID)

	retrieved, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.Equal(org.Slug, retrieved.Slug)

	users := NewUserRepository(suite.baseTestSuite.DB)
	storedAdmin, err := users.GetByUsername(admin.Username)
	suite.NoError(err)
	suite.True(storedAdmin.IsAdmin)
	suite.Equal(org.ID, storedAdmin.OrganizationID)
}

// TestRegisterRollsBackOnAdminFailure tests that a failed admin insert leaves
// no organization behind
func (suite *OrganizationRepositoryTestSuite) TestRegisterRollsBackOnAdminFailure() {
	existingOrg := suite.factories.Organization.Create()
	existingAdmin := suite.factories.User.WithUsername("taken.username")
	suite.NoError(suite.repo.Register(existingOrg, existingAdmin))

	org := suite.factories.Organization.WithSlug("hospital-nuevo")
	duplicateAdmin := suite.factories.User.WithUsername("taken.username")

	err := suite.repo.Register(org, duplicateAdmin)
	suite.Error(err)

	_, err = suite.repo.GetBySlug("hospital-nuevo")
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

// TestGetByIDNotFound tests retrieving a non-existent organization
func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	org, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
	suite.Nil(org)
}

// TestGetBySlug tests slug lookup
func (suite *OrganizationRepositoryTestSuite) TestGetBySlug() {
	org := suite.factories.Organization.WithSlug("hospital-central")
	suite.NoError(suite.repo.Register(org, suite.factories.User.Create()))

	retrieved, err := suite.repo.GetBySlug("hospital-central")
	suite.NoError(err)
	suite.Equal(org.ID, retrieved.ID)

	_, err = suite.repo.GetBySlug("no-such-slug")
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

// TestGetAllWithCounts tests the per-organization usage counters
func (suite *OrganizationRepositoryTestSuite) TestGetAllWithCounts() {
	org := suite.factories.Organization.Create()
	admin := suite.factories.User.Create()
	suite.NoError(suite.repo.Register(org, admin))

	inactive := suite.factories.User.WithOrganization(org.ID)
	inactive.IsActive = false
	suite.NoError(suite.baseTestSuite.DB.Create(inactive).Error)

	for i := 0; i < 3; i++ {
		entry := suite.factories.ChecklistEntry.WithOrganization(org.ID)
		suite.NoError(suite.baseTestSuite.DB.Create(entry).Error)
	}

	result, err := suite.repo.GetAllWithCounts()
	suite.NoError(err)
	suite.Len(result, 1)
	suite.Equal(org.ID, result[0].ID)
	suite.Equal(int64(2), result[0].UserCount)
	suite.Equal(int64(1), result[0].ActiveUserCount)
	suite.Equal(int64(3), result[0].ChecklistCount)
}

// TestUpdate tests toggling the active flag
func (suite *OrganizationRepositoryTestSuite) TestUpdate() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Register(org, suite.factories.User.Create()))

	org.IsActive = false
	suite.NoError(suite.repo.Update(org))

	retrieved, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.False(retrieved.IsActive)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
