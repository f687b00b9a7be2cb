//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"medcheck-backend/internal/database/models"
	apperrors "medcheck-backend/internal/errors"
	"medcheck-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// MedicationErrorRepositoryTestSuite tests the MedicationErrorRepository
type MedicationErrorRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MedicationErrorRepository
	factories     *testutils.FactorySet
	org           *models.Organization
	otherOrg      *models.Organization
}

// SetupSuite runs before all tests in the suite
func (suite *MedicationErrorRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMedicationErrorRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MedicationErrorRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MedicationErrorRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.otherOrg = suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.org).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.otherOrg).Error)
}

// TearDownTest runs after each test
func (suite *MedicationErrorRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests inserting and retrieving an error report
func (suite *MedicationErrorRepositoryTestSuite) TestCreateAndGetByID() {
	merr := suite.factories.MedicationError.WithOrganization(suite.org.ID)
	suite.NoError(suite.repo.Create(merr))

	retrieved, err := suite.repo.GetByID(suite.org.ID, merr.ID)
	suite.NoError(err)
	suite.Equal(merr.ErrorType, retrieved.ErrorType)
	suite.False(retrieved.Resolved)
}

// TestGetByIDCrossTenant tests that another tenant's report behaves like a
// missing row
func (suite *MedicationErrorRepositoryTestSuite) TestGetByIDCrossTenant() {
	merr := suite.factories.MedicationError.WithOrganization(suite.org.ID)
	suite.NoError(suite.repo.Create(merr))

	retrieved, err := suite.repo.GetByID(suite.otherOrg.ID, merr.ID)

	suite.ErrorIs(err, apperrors.ErrMedicationErrorNotFound)
	suite.Nil(retrieved)
}

// TestListFilters tests severity, stage and date filters
func (suite *MedicationErrorRepositoryTestSuite) TestListFilters() {
	severe := suite.factories.MedicationError.WithOrganization(suite.org.ID)
	severe.Severity = models.SeveritySevere

	minor := suite.factories.MedicationError.WithOrganization(suite.org.ID)

	foreign := suite.factories.MedicationError.WithOrganization(suite.otherOrg.ID)
	foreign.Severity = models.SeveritySevere

	for _, m := range []*models.MedicationError{severe, minor, foreign} {
		suite.NoError(suite.repo.Create(m))
	}

	merrs, err := suite.repo.List(suite.org.ID, MedicationErrorFilter{Severity: "severe"})
	suite.NoError(err)
	suite.Len(merrs, 1)
	suite.Equal(severe.ID, merrs[0].ID)
}

// TestListSearch tests the case-insensitive description search
func (suite *MedicationErrorRepositoryTestSuite) TestListSearch() {
	match := suite.factories.MedicationError.WithOrganization(suite.org.ID)
	match.Description = "Omisión de la dosis de las 8:00"

	noMatch := suite.factories.MedicationError.WithOrganization(suite.org.ID)
	noMatch.Description = "Vía equivocada"

	suite.NoError(suite.repo.Create(match))
	suite.NoError(suite.repo.Create(noMatch))

	merrs, err := suite.repo.List(suite.org.ID, MedicationErrorFilter{Search: "omisión"})
	suite.NoError(err)
	suite.Len(merrs, 1)
	suite.Equal(match.ID, merrs[0].ID)
}

// TestListNewestFirst tests that listings come back newest first
func (suite *MedicationErrorRepositoryTestSuite) TestListNewestFirst() {
	now := time.Now()
	oldest := suite.factories.MedicationError.WithOrganization(suite.org.ID)
	oldest.OccurredAt = now.Add(-48 * time.Hour)
	newest := suite.factories.MedicationError.WithOrganization(suite.org.ID)
	newest.OccurredAt = now

	suite.NoError(suite.repo.Create(oldest))
	suite.NoError(suite.repo.Create(newest))

	merrs, err := suite.repo.List(suite.org.ID, MedicationErrorFilter{})
	suite.NoError(err)
	suite.Len(merrs, 2)
	suite.Equal(newest.ID, merrs[0].ID)
	suite.Equal(oldest.ID, merrs[1].ID)
}

// TestUpdate tests marking a report resolved
func (suite *MedicationErrorRepositoryTestSuite) TestUpdate() {
	merr := suite.factories.MedicationError.WithOrganization(suite.org.ID)
	suite.NoError(suite.repo.Create(merr))

	merr.Resolved = true
	merr.ResolutionNotes = "Protocolo de doble verificación aplicado"
	suite.NoError(suite.repo.Update(merr))

	retrieved, err := suite.repo.GetByID(suite.org.ID, merr.ID)
	suite.NoError(err)
	suite.True(retrieved.Resolved)
	suite.Equal("Protocolo de doble verificación aplicado", retrieved.ResolutionNotes)
}

// TestListSince tests the metrics window query, oldest first
func (suite *MedicationErrorRepositoryTestSuite) TestListSince() {
	now := time.Now()
	outside := suite.factories.MedicationError.WithOrganization(suite.org.ID)
	outside.OccurredAt = now.Add(-40 * 24 * time.Hour)
	inside := suite.factories.MedicationError.WithOrganization(suite.org.ID)
	inside.OccurredAt = now.Add(-24 * time.Hour)

	suite.NoError(suite.repo.Create(outside))
	suite.NoError(suite.repo.Create(inside))

	merrs, err := suite.repo.ListSince(suite.org.ID, now.Add(-30*24*time.Hour))
	suite.NoError(err)
	suite.Len(merrs, 1)
	suite.Equal(inside.ID, merrs[0].ID)
}

// TestCountAllSince tests the cross-tenant count used by the global summary
func (suite *MedicationErrorRepositoryTestSuite) TestCountAllSince() {
	now := time.Now()
	mine := suite.factories.MedicationError.WithOrganization(suite.org.ID)
	mine.OccurredAt = now.Add(-24 * time.Hour)
	theirs := suite.factories.MedicationError.WithOrganization(suite.otherOrg.ID)
	theirs.OccurredAt = now.Add(-24 * time.Hour)

	suite.NoError(suite.repo.Create(mine))
	suite.NoError(suite.repo.Create(theirs))

	count, err := suite.repo.CountAllSince(now.Add(-30 * 24 * time.Hour))
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestMedicationErrorRepositoryTestSuite runs the test suite
func TestMedicationErrorRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MedicationErrorRepositoryTestSuite))
}
