package handlers

import (
	"net/http"
	"testing"

	"medcheck-backend/internal/auth"
	apperrors "medcheck-backend/internal/errors"
	"medcheck-backend/internal/mocks"
	"medcheck-backend/internal/service"
	"medcheck-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// withPrincipal attaches an authenticated principal, standing in for the
// auth middleware in handler tests.
func withPrincipal(principal auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.PrincipalKey, principal)
		c.Next()
	}
}

func testPrincipal() auth.Principal {
	return auth.Principal{
		ID:             uuid.New(),
		Username:       "enfermera.prueba",
		OrganizationID: uuid.New(),
	}
}

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAuthService *mocks.MockAuthServiceInterface
	handler         *AuthHandler
	httpSuite       *testutils.HTTPTestSuite
	principal       auth.Principal
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAuthService = mocks.NewMockAuthServiceInterface(suite.ctrl)
	suite.handler = NewAuthHandler(suite.mockAuthService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.principal = testPrincipal()

	authGroup := suite.httpSuite.Router.Group("/auth")
	{
		authGroup.POST("/login", suite.handler.Login)
		authGroup.POST("/verify", suite.handler.Verify)
		authGroup.GET("/me", withPrincipal(suite.principal), suite.handler.Me)
	}
	suite.httpSuite.Router.GET("/auth/me-anonymous", suite.handler.Me)
}

// TearDownTest cleans up after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestLogin tests a successful login
func (suite *AuthHandlerTestSuite) TestLogin() {
	expected := &service.LoginResponse{
		AccessToken: "signed-token",
		TokenType:   "bearer",
		User: service.UserResponse{
			ID:       suite.principal.ID,
			Username: suite.principal.Username,
		},
	}

	suite.mockAuthService.EXPECT().
		Login(gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/auth/login", map[string]interface{}{
		"username": "enfermera.prueba",
		"password": "password123",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.LoginResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "signed-token", response.AccessToken)
	assert.Equal(suite.T(), "bearer", response.TokenType)
	assert.Equal(suite.T(), suite.principal.Username, response.User.Username)
}

// TestLoginInvalidCredentials tests a failed login
func (suite *AuthHandlerTestSuite) TestLoginInvalidCredentials() {
	suite.mockAuthService.EXPECT().
		Login(gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/auth/login", map[string]interface{}{
		"username": "enfermera.prueba",
		"password": "wrong",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "invalid credentials")
}

// TestLoginInactiveUser tests logging into a deactivated account
func (suite *AuthHandlerTestSuite) TestLoginInactiveUser() {
	suite.mockAuthService.EXPECT().
		Login(gomock.Any()).
		Return(nil, apperrors.ErrInactiveUser).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/auth/login", map[string]interface{}{
		"username": "enfermera.prueba",
		"password": "password123",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "inactive")
}

// TestLoginBadBody tests a malformed request body
func (suite *AuthHandlerTestSuite) TestLoginBadBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/auth/login", "not-an-object")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestMe tests retrieving the authenticated user's profile
func (suite *AuthHandlerTestSuite) TestMe() {
	expected := &service.UserResponse{
		ID:       suite.principal.ID,
		Username: suite.principal.Username,
		Email:    "enfermera@hospital.test",
	}

	suite.mockAuthService.EXPECT().
		CurrentUser(suite.principal.ID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/auth/me", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expected.Email, response.Email)
}

// TestMeWithoutPrincipal tests the profile endpoint without authentication
func (suite *AuthHandlerTestSuite) TestMeWithoutPrincipal() {
	recorder := suite.httpSuite.MakeRequest("GET", "/auth/me-anonymous", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

// TestVerify tests verifying a token
func (suite *AuthHandlerTestSuite) TestVerify() {
	suite.mockAuthService.EXPECT().
		VerifyToken("some-token").
		Return(&service.VerifyTokenResponse{
			Valid: true,
			Payload: &service.TokenPayload{
				UserID:   suite.principal.ID.String(),
				Username: suite.principal.Username,
			},
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/auth/verify", map[string]interface{}{
		"token": "some-token",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.VerifyTokenResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Valid)
	require.NotNil(suite.T(), response.Payload)
	assert.Equal(suite.T(), suite.principal.Username, response.Payload.Username)
}

// TestVerifyInvalidToken tests that a bad token is a 200 with valid=false
func (suite *AuthHandlerTestSuite) TestVerifyInvalidToken() {
	suite.mockAuthService.EXPECT().
		VerifyToken("bad-token").
		Return(&service.VerifyTokenResponse{Valid: false, Error: "Invalid or expired token"}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/auth/verify", map[string]interface{}{
		"token": "bad-token",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.VerifyTokenResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.False(suite.T(), response.Valid)
}

// TestVerifyMissingToken tests verifying without a token
func (suite *AuthHandlerTestSuite) TestVerifyMissingToken() {
	recorder := suite.httpSuite.MakeRequest("POST", "/auth/verify", map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	var response service.VerifyTokenResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.False(suite.T(), response.Valid)
	assert.Equal(suite.T(), "Token is required", response.Error)
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
