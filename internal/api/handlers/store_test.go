package handlers_test

import (
	"net/http"
	"testing"

	"callcenter-gamification-backend/internal/api/handlers"
	"callcenter-gamification-backend/internal/database/models"
	apperrors "callcenter-gamification-backend/internal/errors"
	"callcenter-gamification-backend/internal/mocks"
	"callcenter-gamification-backend/internal/service"
	"callcenter-gamification-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StoreHandlerTestSuite defines the test suite for StoreHandler
type StoreHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockStoreServiceInterface
	handler     *handlers.StoreHandler
	httpSuite   *testutils.HTTPTestSuite
	operatorID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *StoreHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockStoreServiceInterface(suite.ctrl)
	suite.handler = handlers.NewStoreHandler(suite.mockService)
	suite.operatorID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	rewards := suite.httpSuite.Router.Group("/api/recompensas", asSubject(suite.operatorID, models.RoleOperator))
	{
		rewards.GET("", suite.handler.ListRewards)
		rewards.POST("/comprar", suite.handler.Purchase)
		rewards.GET("/compras", suite.handler.ListPurchases)
	}
}

// TearDownTest cleans up after each test
func (suite *StoreHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListRewards tests the ListRewards handler
func (suite *StoreHandlerTestSuite) TestListRewards() {
	suite.T().Run("Filters are forwarded", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListRewards(gomock.Any(), "folga", true, 1, 20).
			Return(&service.RewardListResponse{
				Rewards:  []models.Reward{{Title: "Meio periodo de folga", Price: 500}},
				Total:    1,
				Page:     1,
				PageSize: 20,
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/recompensas?categoria=folga&disponivel=true", nil)

		var resp service.RewardListResponse
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, &resp)
		assert.Len(t, resp.Rewards, 1)
		assert.Equal(t, int64(1), resp.Total)
	})

	suite.T().Run("Invalid availability flag", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/recompensas?disponivel=talvez", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "disponivel")
	})
}

// TestPurchase tests the Purchase handler
func (suite *StoreHandlerTestSuite) TestPurchase() {
	rewardID := uuid.New()
	body := map[string]interface{}{"recompensa_id": rewardID.String()}

	suite.T().Run("Success", func(t *testing.T) {
		purchaseID := uuid.New()
		suite.mockService.EXPECT().
			Purchase(gomock.Any(), suite.operatorID, &service.PurchaseRequest{RewardID: rewardID}).
			Return(&service.PurchaseResponse{PurchaseID: purchaseID, PointsSpent: 300, PointsRemaining: 200}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/recompensas/comprar", body)

		var resp service.PurchaseResponse
		testutils.AssertSuccessResponse(t, recorder, http.StatusCreated, &resp)
		assert.Equal(t, purchaseID, resp.PurchaseID)
		assert.Equal(t, 200, resp.PointsRemaining)
	})

	rejections := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"Insufficient points", apperrors.ErrInsufficientPoints, http.StatusBadRequest, "insufficient points"},
		{"Out of stock", apperrors.ErrRewardOutOfStock, http.StatusBadRequest, "out of stock"},
		{"Unavailable", apperrors.ErrRewardUnavailable, http.StatusBadRequest, "unavailable"},
		{"Already owned", apperrors.ErrRewardAlreadyOwned, http.StatusBadRequest, "already exists"},
		{"Unknown reward", apperrors.ErrRewardNotFound, http.StatusNotFound, "reward not found"},
	}

	for _, tc := range rejections {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockService.EXPECT().
				Purchase(gomock.Any(), suite.operatorID, gomock.Any()).
				Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/recompensas/comprar", body)
			testutils.AssertErrorResponse(t, recorder, tc.status, tc.message)
		})
	}

	suite.T().Run("Missing body", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/recompensas/comprar", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})
}

// TestListPurchases tests the ListPurchases handler
func (suite *StoreHandlerTestSuite) TestListPurchases() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListPurchases(gomock.Any(), suite.operatorID, 1, 5).
			Return(&service.PurchaseListResponse{Purchases: []models.Purchase{}, Page: 1, PageSize: 5}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/recompensas/compras?page_size=5", nil)

		var resp service.PurchaseListResponse
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, &resp)
		assert.Equal(t, 5, resp.PageSize)
	})
}

// TestStoreHandlerTestSuite runs the test suite
func TestStoreHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StoreHandlerTestSuite))
}
