package handlers

import (
	"net/http"
	"testing"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/database/models"
	apperrors "medcheck-backend/internal/errors"
	"medcheck-backend/internal/mocks"
	"medcheck-backend/internal/repository"
	"medcheck-backend/internal/service"
	"medcheck-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ChecklistHandlerTestSuite defines the test suite for ChecklistHandler
type ChecklistHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockChecklistService *mocks.MockChecklistServiceInterface
	handler              *ChecklistHandler
	httpSuite            *testutils.HTTPTestSuite
	principal            auth.Principal
}

// SetupTest sets up the test suite
func (suite *ChecklistHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockChecklistService = mocks.NewMockChecklistServiceInterface(suite.ctrl)
	suite.handler = NewChecklistHandler(suite.mockChecklistService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.principal = testPrincipal()

	checklist := suite.httpSuite.Router.Group("/checklist", withPrincipal(suite.principal))
	{
		checklist.POST("", suite.handler.Create)
		checklist.GET("", suite.handler.List)
		checklist.GET("/:id", suite.handler.Get)
		checklist.PUT("/:id", suite.handler.Update)
		checklist.DELETE("/:id", suite.handler.Delete)
	}
}

// TearDownTest cleans up after each test
func (suite *ChecklistHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests recording a checklist entry
func (suite *ChecklistHandlerTestSuite) TestCreate() {
	expected := &service.ChecklistEntryResponse{
		ChecklistEntry: models.ChecklistEntry{
			BaseModel:        models.BaseModel{ID: uuid.New()},
			Item:             "Administración de antibiótico",
			Area:             "UCI",
			Usuario:          suite.principal.Username,
			OrganizationID:   suite.principal.OrganizationID,
			PacienteCorrecto: true,
		},
	}

	suite.mockChecklistService.EXPECT().
		Create(suite.principal, gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/checklist", map[string]interface{}{
		"item":              "Administración de antibiótico",
		"area":              "UCI",
		"paciente_correcto": true,
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.ChecklistEntryResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "UCI", response.Area)
	assert.Equal(suite.T(), suite.principal.Username, response.Usuario)
}

// TestCreateValidationError tests a payload rejected by the service
func (suite *ChecklistHandlerTestSuite) TestCreateValidationError() {
	suite.mockChecklistService.EXPECT().
		Create(suite.principal, gomock.Any()).
		Return(nil, apperrors.NewValidationError("invalid checklist entry")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/checklist", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid checklist entry")
}

// TestList tests the filtered listing with query parameters
func (suite *ChecklistHandlerTestSuite) TestList() {
	suite.mockChecklistService.EXPECT().
		List(suite.principal.OrganizationID, gomock.Any()).
		DoAndReturn(func(orgID uuid.UUID, filter repository.ChecklistFilter) (*service.ChecklistListResponse, error) {
			assert.Equal(suite.T(), "UCI", filter.Area)
			assert.Equal(suite.T(), 10, filter.Limit)
			assert.Equal(suite.T(), 20, filter.Offset)
			assert.NotNil(suite.T(), filter.StartDate)
			return &service.ChecklistListResponse{
				Total:  0,
				Limit:  10,
				Offset: 20,
				Data:   []models.ChecklistEntry{},
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/checklist?area=UCI&limit=10&offset=20&start_date=2026-03-01", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetInvalidID tests a malformed entry id
func (suite *ChecklistHandlerTestSuite) TestGetInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/checklist/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid entry ID")
}

// TestGetNotFound tests a missing or cross-tenant entry
func (suite *ChecklistHandlerTestSuite) TestGetNotFound() {
	id := uuid.New()

	suite.mockChecklistService.EXPECT().
		GetByID(suite.principal.OrganizationID, id).
		Return(nil, apperrors.ErrChecklistEntryNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/checklist/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "checklist entry not found")
}

// TestUpdate tests updating an entry
func (suite *ChecklistHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	expected := &service.ChecklistEntryResponse{
		ChecklistEntry: models.ChecklistEntry{
			BaseModel: models.BaseModel{ID: id},
			Item:      "Entrada corregida",
		},
	}

	suite.mockChecklistService.EXPECT().
		Update(suite.principal.OrganizationID, id, gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/checklist/"+id.String(), map[string]interface{}{
		"item": "Entrada corregida",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ChecklistEntryResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Entrada corregida", response.Item)
}

// TestDelete tests deleting an entry
func (suite *ChecklistHandlerTestSuite) TestDelete() {
	id := uuid.New()

	suite.mockChecklistService.EXPECT().
		Delete(suite.principal.OrganizationID, id).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/checklist/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Checklist entry deleted successfully")
}

// TestDeleteNotFound tests deleting a missing entry
func (suite *ChecklistHandlerTestSuite) TestDeleteNotFound() {
	id := uuid.New()

	suite.mockChecklistService.EXPECT().
		Delete(suite.principal.OrganizationID, id).
		Return(apperrors.ErrChecklistEntryNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/checklist/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "checklist entry not found")
}

// TestChecklistHandlerTestSuite runs the test suite
func TestChecklistHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ChecklistHandlerTestSuite))
}
