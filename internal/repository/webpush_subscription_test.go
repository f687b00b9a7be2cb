//go:build integration
// +build integration

package repository

import (
	"testing"

	"medcheck-backend/internal/database/models"
	apperrors "medcheck-backend/internal/errors"
	"medcheck-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// WebPushSubscriptionRepositoryTestSuite tests the WebPushSubscriptionRepository
type WebPushSubscriptionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WebPushSubscriptionRepository
}

// SetupSuite runs before all tests in the suite
func (suite *WebPushSubscriptionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewWebPushSubscriptionRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *WebPushSubscriptionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WebPushSubscriptionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WebPushSubscriptionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *WebPushSubscriptionRepositoryTestSuite) subscription(userID uuid.UUID, endpoint string) *models.WebPushSubscription {
	return &models.WebPushSubscription{
		UserID:   userID,
		Endpoint: endpoint,
		P256dh:   "p256dh-key",
		Auth:     "auth-key",
	}
}

// TestUpsertInserts tests storing a new subscription
func (suite *WebPushSubscriptionRepositoryTestSuite) TestUpsertInserts() {
	sub := suite.subscription(uuid.New(), "https://push.example.com/sub/abc")

	suite.NoError(suite.repo.Upsert(sub))

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.WebPushSubscription{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestUpsertRefreshesKeys tests that re-subscribing with the same endpoint
// replaces the keys instead of inserting a second row
func (suite *WebPushSubscriptionRepositoryTestSuite) TestUpsertRefreshesKeys() {
	userID := uuid.New()
	endpoint := "https://push.example.com/sub/abc"

	suite.NoError(suite.repo.Upsert(suite.subscription(userID, endpoint)))

	refreshed := suite.subscription(userID, endpoint)
	refreshed.P256dh = "rotated-p256dh"
	refreshed.Auth = "rotated-auth"
	suite.NoError(suite.repo.Upsert(refreshed))

	var subs []models.WebPushSubscription
	suite.NoError(suite.baseTestSuite.DB.Find(&subs).Error)
	suite.Len(subs, 1)
	suite.Equal("rotated-p256dh", subs[0].P256dh)
	suite.Equal("rotated-auth", subs[0].Auth)
}

// TestDeleteByEndpoint tests removing a subscription
func (suite *WebPushSubscriptionRepositoryTestSuite) TestDeleteByEndpoint() {
	userID := uuid.New()
	endpoint := "https://push.example.com/sub/abc"
	suite.NoError(suite.repo.Upsert(suite.subscription(userID, endpoint)))

	suite.NoError(suite.repo.DeleteByEndpoint(userID, endpoint))

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.WebPushSubscription{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestDeleteByEndpointWrongUser tests that deletion is scoped to the owner
func (suite *WebPushSubscriptionRepositoryTestSuite) TestDeleteByEndpointWrongUser() {
	endpoint := "https://push.example.com/sub/abc"
	suite.NoError(suite.repo.Upsert(suite.subscription(uuid.New(), endpoint)))

	err := suite.repo.DeleteByEndpoint(uuid.New(), endpoint)
	suite.ErrorIs(err, apperrors.ErrSubscriptionNotFound)
}

// TestDeleteByEndpointNotFound tests removing a subscription that was never stored
func (suite *WebPushSubscriptionRepositoryTestSuite) TestDeleteByEndpointNotFound() {
	err := suite.repo.DeleteByEndpoint(uuid.New(), "https://push.example.com/sub/unknown")
	suite.ErrorIs(err, apperrors.ErrSubscriptionNotFound)
}

// TestWebPushSubscriptionRepositoryTestSuite runs the test suite
func TestWebPushSubscriptionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WebPushSubscriptionRepositoryTestSuite))
}
