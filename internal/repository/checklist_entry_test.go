//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"medcheck-backend/internal/database/models"
	apperrors "medcheck-backend/internal/errors"
	"medcheck-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ChecklistEntryRepositoryTestSuite tests the ChecklistEntryRepository
type ChecklistEntryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ChecklistEntryRepository
	factories     *testutils.FactorySet
	org           *models.Organization
	otherOrg      *models.Organization
}

// SetupSuite runs before all tests in the suite
func (suite *ChecklistEntryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewChecklistEntryRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ChecklistEntryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ChecklistEntryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.otherOrg = suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.org).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.otherOrg).Error)
}

// TearDownTest runs after each test
func (suite *ChecklistEntryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ChecklistEntryRepositoryTestSuite) createEntry(orgID uuid.UUID, fechaHora time.Time, area string) *models.ChecklistEntry {
	entry := suite.factories.ChecklistEntry.WithOrganization(orgID)
	entry.FechaHora = fechaHora
	entry.Area = area
	suite.NoError(suite.repo.Create(entry))
	return entry
}

// TestGetByID tests retrieving an entry within its organization
func (suite *ChecklistEntryRepositoryTestSuite) TestGetByID() {
	entry := suite.createEntry(suite.org.ID, time.Now(), "UCI")

	retrieved, err := suite.repo.GetByID(suite.org.ID, entry.ID)
	suite.NoError(err)
	suite.Equal(entry.ID, retrieved.ID)
	suite.Equal("UCI", retrieved.Area)
}

// TestGetByIDCrossTenant tests that another tenant's row behaves like a
// missing row
func (suite *ChecklistEntryRepositoryTestSuite) TestGetByIDCrossTenant() {
	entry := suite.createEntry(suite.org.ID, time.Now(), "UCI")

	retrieved, err := suite.repo.GetByID(suite.otherOrg.ID, entry.ID)

	suite.ErrorIs(err, apperrors.ErrChecklistEntryNotFound)
	suite.Nil(retrieved)
}

// TestListNewestFirst tests that listings come back newest first
func (suite *ChecklistEntryRepositoryTestSuite) TestListNewestFirst() {
	now := time.Now()
	oldest := suite.createEntry(suite.org.ID, now.Add(-48*time.Hour), "UCI")
	newest := suite.createEntry(suite.org.ID, now, "UCI")
	middle := suite.createEntry(suite.org.ID, now.Add(-24*time.Hour), "UCI")

	entries, err := suite.repo.List(suite.org.ID, ChecklistFilter{})
	suite.NoError(err)
	suite.Len(entries, 3)
	suite.Equal(newest.ID, entries[0].ID)
	suite.Equal(middle.ID, entries[1].ID)
	suite.Equal(oldest.ID, entries[2].ID)
}

// TestListFilters tests area, date range and pagination filters
func (suite *ChecklistEntryRepositoryTestSuite) TestListFilters() {
	now := time.Now()
	suite.createEntry(suite.org.ID, now.Add(-72*time.Hour), "UCI")
	inRange := suite.createEntry(suite.org.ID, now.Add(-24*time.Hour), "UCI")
	suite.createEntry(suite.org.ID, now.Add(-24*time.Hour), "Urgencias")
	suite.createEntry(suite.otherOrg.ID, now.Add(-24*time.Hour), "UCI")

	start := now.Add(-48 * time.Hour)
	entries, err := suite.repo.List(suite.org.ID, ChecklistFilter{
		Area:      "UCI",
		StartDate: &start,
	})
	suite.NoError(err)
	suite.Len(entries, 1)
	suite.Equal(inRange.ID, entries[0].ID)
}

// TestListPagination tests limit and offset
func (suite *ChecklistEntryRepositoryTestSuite) TestListPagination() {
	now := time.Now()
	for i := 0; i < 5; i++ {
		suite.createEntry(suite.org.ID, now.Add(-time.Duration(i)*time.Hour), "UCI")
	}

	page, err := suite.repo.List(suite.org.ID, ChecklistFilter{Limit: 2, Offset: 2})
	suite.NoError(err)
	suite.Len(page, 2)
}

// TestUpdate tests saving changes to an entry
func (suite *ChecklistEntryRepositoryTestSuite) TestUpdate() {
	entry := suite.createEntry(suite.org.ID, time.Now(), "UCI")

	entry.Cumple = false
	entry.DosisCorrecta = false
	suite.NoError(suite.repo.Update(entry))

	retrieved, err := suite.repo.GetByID(suite.org.ID, entry.ID)
	suite.NoError(err)
	suite.False(retrieved.Cumple)
	suite.False(retrieved.DosisCorrecta)
}

// TestDelete tests removing an entry within its organization
func (suite *ChecklistEntryRepositoryTestSuite) TestDelete() {
	entry := suite.createEntry(suite.org.ID, time.Now(), "UCI")

	suite.NoError(suite.repo.Delete(suite.org.ID, entry.ID))

	_, err := suite.repo.GetByID(suite.org.ID, entry.ID)
	suite.ErrorIs(err, apperrors.ErrChecklistEntryNotFound)
}

// TestDeleteCrossTenant tests that a tenant cannot delete another tenant's row
func (suite *ChecklistEntryRepositoryTestSuite) TestDeleteCrossTenant() {
	entry := suite.createEntry(suite.org.ID, time.Now(), "UCI")

	err := suite.repo.Delete(suite.otherOrg.ID, entry.ID)
	suite.ErrorIs(err, apperrors.ErrChecklistEntryNotFound)

	retrieved, err := suite.repo.GetByID(suite.org.ID, entry.ID)
	suite.NoError(err)
	suite.NotNil(retrieved)
}

// TestListSince tests the reporting window query, oldest first
func (suite *ChecklistEntryRepositoryTestSuite) TestListSince() {
	now := time.Now()
	suite.createEntry(suite.org.ID, now.Add(-40*24*time.Hour), "UCI")
	older := suite.createEntry(suite.org.ID, now.Add(-10*24*time.Hour), "UCI")
	newer := suite.createEntry(suite.org.ID, now.Add(-1*24*time.Hour), "UCI")

	entries, err := suite.repo.ListSince(suite.org.ID, now.Add(-30*24*time.Hour))
	suite.NoError(err)
	suite.Len(entries, 2)
	suite.Equal(older.ID, entries[0].ID)
	suite.Equal(newer.ID, entries[1].ID)
}

// TestCountAllSince tests the cross-tenant count used by the global summary
func (suite *ChecklistEntryRepositoryTestSuite) TestCountAllSince() {
	now := time.Now()
	suite.createEntry(suite.org.ID, now.Add(-24*time.Hour), "UCI")
	suite.createEntry(suite.otherOrg.ID, now.Add(-24*time.Hour), "UCI")
	suite.createEntry(suite.org.ID, now.Add(-40*24*time.Hour), "UCI")

	count, err := suite.repo.CountAllSince(now.Add(-30 * 24 * time.Hour))
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestChecklistEntryRepositoryTestSuite runs the test suite
func TestChecklistEntryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ChecklistEntryRepositoryTestSuite))
}
