package service_test

import (
	"testing"
	"time"

	"medcheck-backend/internal/database/models"
	"medcheck-backend/internal/mocks"
	"medcheck-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockEntryRepo *mocks.MockChecklistEntryRepositoryInterface
	reportService *service.ReportService
	orgID         uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEntryRepo = mocks.NewMockChecklistEntryRepositoryInterface(suite.ctrl)
	suite.reportService = service.NewReportService(suite.mockEntryRepo)
	suite.orgID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func fullyCompliantEntry() models.ChecklistEntry {
	return models.ChecklistEntry{
		FechaHora: time.Now(),
		Cumple:    true,

		PacienteCorrecto:           true,
		MedicamentoCorrecto:        true,
		DosisCorrecta:              true,
		ViaCorrecta:                true,
		HoraCorrecta:               true,
		FechaVencimientoVerificada: true,
		EducacionPaciente:          true,
		RegistroCorrecto:           true,
		AlergiasVerificadas:        true,
		ResponsabilidadPersonal:    true,
	}
}

// TestQualityIndicators tests per-check and overall compliance
func (suite *ReportServiceTestSuite) TestQualityIndicators() {
	perfect := fullyCompliantEntry()
	missedDose := fullyCompliantEntry()
	missedDose.DosisCorrecta = false

	suite.mockEntryRepo.EXPECT().
		ListSince(suite.orgID, gomock.Any()).
		Return([]models.ChecklistEntry{perfect, missedDose}, nil).
		Times(1)

	response, err := suite.reportService.QualityIndicators(suite.orgID, 30)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 30, response.PeriodDays)
	assert.Equal(suite.T(), 2, response.TotalEntries)
	require.Len(suite.T(), response.Indicators, 10)

	dosis := response.Indicators["dosis_correcta"]
	assert.Equal(suite.T(), 1, dosis.Compliant)
	assert.Equal(suite.T(), 2, dosis.Total)
	assert.Equal(suite.T(), "50.00", dosis.Percentage)

	paciente := response.Indicators["paciente_correcto"]
	assert.Equal(suite.T(), 2, paciente.Compliant)
	assert.Equal(suite.T(), "100.00", paciente.Percentage)

	// Overall compliance requires all ten checks to pass
	require.NotNil(suite.T(), response.OverallCompliance)
	assert.Equal(suite.T(), 1, response.OverallCompliance.Compliant)
	assert.Equal(suite.T(), "50.00", response.OverallCompliance.Percentage)
}

// TestQualityIndicatorsEmptyPeriod tests that an empty period returns zero
// totals and no overall compliance block
func (suite *ReportServiceTestSuite) TestQualityIndicatorsEmptyPeriod() {
	suite.mockEntryRepo.EXPECT().
		ListSince(suite.orgID, gomock.Any()).
		Return([]models.ChecklistEntry{}, nil).
		Times(1)

	response, err := suite.reportService.QualityIndicators(suite.orgID, 30)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, response.TotalEntries)
	assert.Nil(suite.T(), response.OverallCompliance)
	assert.Empty(suite.T(), response.Indicators)
	assert.NotNil(suite.T(), response.Indicators)
}

// TestComplianceByArea tests grouping by area with the "Sin área" bucket
func (suite *ReportServiceTestSuite) TestComplianceByArea() {
	entries := []models.ChecklistEntry{
		{Area: "UCI", Cumple: true},
		{Area: "UCI", Cumple: false},
		{Area: "Urgencias", Cumple: true},
		{Area: "", Cumple: true},
	}

	suite.mockEntryRepo.EXPECT().
		ListSince(suite.orgID, gomock.Any()).
		Return(entries, nil).
		Times(1)

	response, err := suite.reportService.ComplianceByArea(suite.orgID, 30)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), response.Areas, 3)

	// Alphabetical order: "Sin área" < "UCI" < "Urgencias"
	assert.Equal(suite.T(), "Sin área", response.Areas[0].Area)
	assert.Equal(suite.T(), 1, response.Areas[0].Total)
	assert.Equal(suite.T(), "100.00", response.Areas[0].Percentage)

	assert.Equal(suite.T(), "UCI", response.Areas[1].Area)
	assert.Equal(suite.T(), 2, response.Areas[1].Total)
	assert.Equal(suite.T(), 1, response.Areas[1].Compliant)
	assert.Equal(suite.T(), "50.00", response.Areas[1].Percentage)

	assert.Equal(suite.T(), "Urgencias", response.Areas[2].Area)
}

// TestComplianceTrend tests daily grouping in chronological order
func (suite *ReportServiceTestSuite) TestComplianceTrend() {
	day1 := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	entries := []models.ChecklistEntry{
		{FechaHora: day2, Cumple: true},
		{FechaHora: day1, Cumple: true},
		{FechaHora: day1, Cumple: false},
		{FechaHora: day1.Add(6 * time.Hour), Cumple: false},
	}

	suite.mockEntryRepo.EXPECT().
		ListSince(suite.orgID, gomock.Any()).
		Return(entries, nil).
		Times(1)

	response, err := suite.reportService.ComplianceTrend(suite.orgID, 7)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, response.PeriodDays)
	require.Len(suite.T(), response.Trend, 2)

	assert.Equal(suite.T(), "2026-03-01", response.Trend[0].Date)
	assert.Equal(suite.T(), 3, response.Trend[0].Total)
	assert.Equal(suite.T(), 1, response.Trend[0].Compliant)
	assert.Equal(suite.T(), "33.33", response.Trend[0].Percentage)

	assert.Equal(suite.T(), "2026-03-02", response.Trend[1].Date)
	assert.Equal(suite.T(), "100.00", response.Trend[1].Percentage)
}

// TestSummary tests the headline summary with shift and area distributions
func (suite *ReportServiceTestSuite) TestSummary() {
	entries := []models.ChecklistEntry{
		{Turno: "Mañana", Area: "UCI", Cumple: true},
		{Turno: "Mañana", Area: "UCI", Cumple: true},
		{Turno: "Noche", Area: "Urgencias", Cumple: false},
		{Turno: "", Area: "", Cumple: true},
	}

	suite.mockEntryRepo.EXPECT().
		ListSince(suite.orgID, gomock.Any()).
		Return(entries, nil).
		Times(1)

	response, err := suite.reportService.Summary(suite.orgID, 30)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, response.TotalEntries)
	assert.Equal(suite.T(), 3, response.Compliant)
	assert.Equal(suite.T(), 1, response.NonCompliant)
	assert.Equal(suite.T(), "75.00", response.ComplianceRate)

	assert.Equal(suite.T(), 2, response.ByShift["Mañana"])
	assert.Equal(suite.T(), 1, response.ByShift["Noche"])
	assert.Equal(suite.T(), 1, response.ByShift["Sin turno"])

	assert.Equal(suite.T(), 2, response.ByArea["UCI"])
	assert.Equal(suite.T(), 1, response.ByArea["Sin área"])
}

// TestSummaryEmptyPeriod tests the zero-denominator compliance rate
func (suite *ReportServiceTestSuite) TestSummaryEmptyPeriod() {
	suite.mockEntryRepo.EXPECT().
		ListSince(suite.orgID, gomock.Any()).
		Return([]models.ChecklistEntry{}, nil).
		Times(1)

	response, err := suite.reportService.Summary(suite.orgID, 30)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, response.TotalEntries)
	assert.Equal(suite.T(), "0.00", response.ComplianceRate)
}

// TestReportServiceTestSuite runs the test suite
func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
