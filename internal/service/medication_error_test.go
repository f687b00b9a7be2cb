package service_test

import (
	"testing"
	"time"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/database/models"
	apperrors "medcheck-backend/internal/errors"
	"medcheck-backend/internal/mocks"
	"medcheck-backend/internal/repository"
	"medcheck-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MedicationErrorServiceTestSuite defines the test suite for MedicationErrorService
type MedicationErrorServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockErrorRepo *mocks.MockMedicationErrorRepositoryInterface
	mockEntryRepo *mocks.MockChecklistEntryRepositoryInterface
	errorService  *service.MedicationErrorService
	principal     auth.Principal
}

// SetupTest sets up the test suite
func (suite *MedicationErrorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockErrorRepo = mocks.NewMockMedicationErrorRepositoryInterface(suite.ctrl)
	suite.mockEntryRepo = mocks.NewMockChecklistEntryRepositoryInterface(suite.ctrl)
	suite.errorService = service.NewMedicationErrorService(suite.mockErrorRepo, suite.mockEntryRepo, validator.New())
	suite.principal = auth.Principal{
		ID:             uuid.New(),
		Username:       "enfermera.prueba",
		OrganizationID: uuid.New(),
	}
}

// TearDownTest cleans up after each test
func (suite *MedicationErrorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestReport tests recording a new medication error
func (suite *MedicationErrorServiceTestSuite) TestReport() {
	req := &service.ReportMedicationErrorRequest{
		ErrorType: "dosis incorrecta",
		Severity:  "moderate",
		Stage:     "administration",
	}

	suite.mockErrorRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(merr *models.MedicationError) error {
			assert.Equal(suite.T(), suite.principal.OrganizationID, merr.OrganizationID)
			assert.Equal(suite.T(), suite.principal.ID, merr.ReportedByUserID)
			assert.Equal(suite.T(), models.SeverityModerate, merr.Severity)
			assert.Equal(suite.T(), models.StageAdministration, merr.Stage)
			assert.False(suite.T(), merr.OccurredAt.IsZero())
			assert.False(suite.T(), merr.DetectedAt.IsZero())
			assert.False(suite.T(), merr.Resolved)
			return nil
		}).
		Times(1)

	response, err := suite.errorService.Report(suite.principal, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Error registrado", response.Message)
	assert.Equal(suite.T(), "dosis incorrecta", response.Report.ErrorType)
}

// TestReportUnknownSeverity tests that an unknown severity fails validation
func (suite *MedicationErrorServiceTestSuite) TestReportUnknownSeverity() {
	response, err := suite.errorService.Report(suite.principal, &service.ReportMedicationErrorRequest{
		ErrorType: "dosis incorrecta",
		Severity:  "catastrophic",
		Stage:     "administration",
	})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestReportUnknownStage tests that an unknown stage fails validation
func (suite *MedicationErrorServiceTestSuite) TestReportUnknownStage() {
	response, err := suite.errorService.Report(suite.principal, &service.ReportMedicationErrorRequest{
		ErrorType: "dosis incorrecta",
		Severity:  "minor",
		Stage:     "delivery",
	})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestReportMissingFields tests that type, severity and stage are required
func (suite *MedicationErrorServiceTestSuite) TestReportMissingFields() {
	response, err := suite.errorService.Report(suite.principal, &service.ReportMedicationErrorRequest{})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestList tests the filtered error listing
func (suite *MedicationErrorServiceTestSuite) TestList() {
	orgID := suite.principal.OrganizationID
	filter := repository.MedicationErrorFilter{Severity: "severe", Limit: 50}

	suite.mockErrorRepo.EXPECT().
		List(orgID, filter).
		Return([]models.MedicationError{{ErrorType: "omisión"}}, nil).
		Times(1)

	response, err := suite.errorService.List(orgID, filter)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.Total)
	assert.Equal(suite.T(), "omisión", response.Errors[0].ErrorType)
}

// TestResolve tests closing an error report with notes
func (suite *MedicationErrorServiceTestSuite) TestResolve() {
	orgID := suite.principal.OrganizationID
	id := uuid.New()
	merr := &models.MedicationError{
		BaseModel:      models.BaseModel{ID: id},
		OrganizationID: orgID,
		ErrorType:      "dosis incorrecta",
	}

	suite.mockErrorRepo.EXPECT().
		GetByID(orgID, id).
		Return(merr, nil).
		Times(1)
	suite.mockErrorRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.MedicationError) error {
			assert.True(suite.T(), updated.Resolved)
			assert.Equal(suite.T(), "Se reforzó la doble verificación", updated.ResolutionNotes)
			return nil
		}).
		Times(1)

	response, err := suite.errorService.Resolve(orgID, id, &service.ResolveMedicationErrorRequest{
		ResolutionNotes: "Se reforzó la doble verificación",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Evento marcado como resuelto", response.Message)
}

// TestResolveNotFound tests resolving a missing report
func (suite *MedicationErrorServiceTestSuite) TestResolveNotFound() {
	orgID := suite.principal.OrganizationID
	id := uuid.New()

	suite.mockErrorRepo.EXPECT().
		GetByID(orgID, id).
		Return(nil, apperrors.ErrMedicationErrorNotFound).
		Times(1)

	response, err := suite.errorService.Resolve(orgID, id, &service.ResolveMedicationErrorRequest{})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMedicationErrorNotFound)
}

// TestMetrics tests the error rate and breakdowns
func (suite *MedicationErrorServiceTestSuite) TestMetrics() {
	orgID := suite.principal.OrganizationID

	administrations := make([]models.ChecklistEntry, 200)
	merrs := []models.MedicationError{
		{ErrorType: "dosis incorrecta", Severity: models.SeverityMinor},
		{ErrorType: "dosis incorrecta", Severity: models.SeverityModerate},
		{ErrorType: "omisión", Severity: models.SeverityMinor},
	}

	suite.mockEntryRepo.EXPECT().
		ListSince(orgID, gomock.Any()).
		Return(administrations, nil).
		Times(1)
	suite.mockErrorRepo.EXPECT().
		ListSince(orgID, gomock.Any()).
		Return(merrs, nil).
		Times(1)

	response, err := suite.errorService.Metrics(orgID, 30)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 30, response.PeriodDays)
	assert.Equal(suite.T(), 200, response.Administrations)
	assert.Equal(suite.T(), 3, response.Errors)
	assert.Equal(suite.T(), "1.50", response.ErrorRate)
	assert.Equal(suite.T(), 2, response.SeverityBreakdown["minor"])
	assert.Equal(suite.T(), 1, response.SeverityBreakdown["moderate"])
	assert.Equal(suite.T(), 2, response.TypeBreakdown["dosis incorrecta"])
	assert.Equal(suite.T(), 1, response.TypeBreakdown["omisión"])
}

// TestMetricsNoAdministrations tests that a zero denominator yields "0.00"
func (suite *MedicationErrorServiceTestSuite) TestMetricsNoAdministrations() {
	orgID := suite.principal.OrganizationID

	suite.mockEntryRepo.EXPECT().
		ListSince(orgID, gomock.Any()).
		Return([]models.ChecklistEntry{}, nil).
		Times(1)
	suite.mockErrorRepo.EXPECT().
		ListSince(orgID, gomock.Any()).
		Return([]models.MedicationError{{Severity: models.SeverityMinor}}, nil).
		Times(1)

	response, err := suite.errorService.Metrics(orgID, 30)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "0.00", response.ErrorRate)
}

// TestTimeline tests daily grouping with the severe bucket, in date order
func (suite *MedicationErrorServiceTestSuite) TestTimeline() {
	orgID := suite.principal.OrganizationID
	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

	merrs := []models.MedicationError{
		{OccurredAt: day1, Severity: models.SeverityMinor},
		{OccurredAt: day1, Severity: models.SeveritySevere},
		{OccurredAt: day2, Severity: models.SeveritySentinel},
	}

	suite.mockErrorRepo.EXPECT().
		ListSince(orgID, gomock.Any()).
		Return(merrs, nil).
		Times(1)

	response, err := suite.errorService.Timeline(orgID, 30)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), response.Timeline, 2)

	assert.Equal(suite.T(), "2026-03-01", response.Timeline[0].Date)
	assert.Equal(suite.T(), 2, response.Timeline[0].Total)
	assert.Equal(suite.T(), 1, response.Timeline[0].Severe)

	// sentinel counts toward the severe bucket
	assert.Equal(suite.T(), "2026-03-02", response.Timeline[1].Date)
	assert.Equal(suite.T(), 1, response.Timeline[1].Total)
	assert.Equal(suite.T(), 1, response.Timeline[1].Severe)
}

// TestGlobalSummary tests the cross-organization error rate
func (suite *MedicationErrorServiceTestSuite) TestGlobalSummary() {
	suite.mockErrorRepo.EXPECT().
		CountAllSince(gomock.Any()).
		Return(int64(5), nil).
		Times(1)
	suite.mockEntryRepo.EXPECT().
		CountAllSince(gomock.Any()).
		Return(int64(400), nil).
		Times(1)

	response, err := suite.errorService.GlobalSummary(30)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 30, response.PeriodDays)
	assert.Equal(suite.T(), int64(5), response.TotalErrors)
	assert.Equal(suite.T(), int64(400), response.TotalAdministrations)
	assert.Equal(suite.T(), "1.25", response.GlobalErrorRate)
}

// TestMedicationErrorServiceTestSuite runs the test suite
func TestMedicationErrorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MedicationErrorServiceTestSuite))
}
