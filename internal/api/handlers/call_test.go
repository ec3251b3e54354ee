package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

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

// CallHandlerTestSuite defines the test suite for CallHandler
type CallHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCallServiceInterface
	handler     *handlers.CallHandler
	httpSuite   *testutils.HTTPTestSuite
	operatorID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *CallHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCallServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCallHandler(suite.mockService)
	suite.operatorID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	calls := suite.httpSuite.Router.Group("/api/chamadas", asSubject(suite.operatorID, models.RoleOperator))
	{
		calls.POST("/iniciar", suite.handler.StartCall)
		calls.POST("/finalizar", suite.handler.FinalizeCall)
		calls.GET("/ativa", suite.handler.GetActiveCall)
		calls.GET("", suite.handler.ListCalls)
	}

	// no identity on this route
	suite.httpSuite.Router.POST("/anon/iniciar", suite.handler.StartCall)
}

// TearDownTest cleans up after each test
func (suite *CallHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestStartCall tests the StartCall handler
func (suite *CallHandlerTestSuite) TestStartCall() {
	suite.T().Run("Success", func(t *testing.T) {
		callID := uuid.New()
		suite.mockService.EXPECT().
			StartCall(gomock.Any(), suite.operatorID, &service.StartCallRequest{CustomerNumber: "+5511912345678"}).
			Return(&service.StartCallResponse{
				CallID:     callID,
				OperatorID: suite.operatorID,
				Status:     models.OperatorStatusInCall,
				StartedAt:  time.Now(),
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/chamadas/iniciar", map[string]interface{}{
			"numero_cliente": "+5511912345678",
		})

		var resp service.StartCallResponse
		testutils.AssertSuccessResponse(t, recorder, http.StatusCreated, &resp)
		assert.Equal(t, callID, resp.CallID)
		assert.Equal(t, models.OperatorStatusInCall, resp.Status)
	})

	suite.T().Run("Operator not available", func(t *testing.T) {
		suite.mockService.EXPECT().
			StartCall(gomock.Any(), suite.operatorID, gomock.Any()).
			Return(nil, apperrors.ErrOperatorNotAvailable)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/chamadas/iniciar", map[string]interface{}{
			"numero_cliente": "+5511912345678",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "not awaiting a call")
	})

	suite.T().Run("Operator not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			StartCall(gomock.Any(), suite.operatorID, gomock.Any()).
			Return(nil, apperrors.ErrOperatorNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/chamadas/iniciar", map[string]interface{}{
			"numero_cliente": "+5511912345678",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "operator not found")
	})

	suite.T().Run("Infrastructure failure is hidden", func(t *testing.T) {
		suite.mockService.EXPECT().
			StartCall(gomock.Any(), suite.operatorID, gomock.Any()).
			Return(nil, errors.New("connection reset by peer"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/chamadas/iniciar", map[string]interface{}{
			"numero_cliente": "+5511912345678",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
		assert.NotContains(t, recorder.Body.String(), "connection reset")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/chamadas/iniciar", "not an object")
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})

	suite.T().Run("Unauthenticated", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/anon/iniciar", map[string]interface{}{
			"numero_cliente": "+5511912345678",
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "Authentication required")
	})
}

// TestFinalizeCall tests the FinalizeCall handler
func (suite *CallHandlerTestSuite) TestFinalizeCall() {
	callID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			FinalizeCall(gomock.Any(), suite.operatorID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.FinalizeCallRequest) (*service.FinalizeCallResponse, error) {
				assert.Equal(t, callID, req.CallID)
				assert.True(t, req.Resolved)
				if assert.NotNil(t, req.Satisfaction) {
					assert.Equal(t, 5, *req.Satisfaction)
				}
				return &service.FinalizeCallResponse{
					DurationSeconds: 180,
					PointsEarned:    55,
					Status:          models.OperatorStatusAwaitingCall,
				}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/chamadas/finalizar", map[string]interface{}{
			"chamada_id":         callID.String(),
			"resolvida":          true,
			"satisfacao_cliente": 5,
		})

		var resp service.FinalizeCallResponse
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, &resp)
		assert.Equal(t, 55, resp.PointsEarned)
		assert.Equal(t, 180, resp.DurationSeconds)
	})

	suite.T().Run("Call not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			FinalizeCall(gomock.Any(), suite.operatorID, gomock.Any()).
			Return(nil, apperrors.ErrCallNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/chamadas/finalizar", map[string]interface{}{
			"chamada_id": callID.String(),
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "call not found")
	})

	suite.T().Run("Already finalized", func(t *testing.T) {
		suite.mockService.EXPECT().
			FinalizeCall(gomock.Any(), suite.operatorID, gomock.Any()).
			Return(nil, apperrors.ErrCallAlreadyFinalized)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/chamadas/finalizar", map[string]interface{}{
			"chamada_id": callID.String(),
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "call already finalized")
	})

	suite.T().Run("Malformed call id", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/chamadas/finalizar", map[string]interface{}{
			"chamada_id": "abc",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})
}

// TestGetActiveCall tests the GetActiveCall handler
func (suite *CallHandlerTestSuite) TestGetActiveCall() {
	suite.T().Run("No active call", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetActiveCall(gomock.Any(), suite.operatorID).
			Return(nil, apperrors.ErrActiveCallNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/chamadas/ativa", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "active call not found")
	})
}

// TestListCalls tests the ListCalls handler
func (suite *CallHandlerTestSuite) TestListCalls() {
	suite.T().Run("Success with pagination", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListCalls(gomock.Any(), suite.operatorID, 2, 10).
			Return(&service.CallListResponse{Calls: []models.Call{}, Total: 11, Page: 2, PageSize: 10}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/chamadas?page=2&page_size=10", nil)

		var resp service.CallListResponse
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, &resp)
		assert.Equal(t, int64(11), resp.Total)
	})

	suite.T().Run("Invalid page", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/chamadas?page=zero", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid pagination")
	})
}

// TestCallHandlerTestSuite runs the test suite
func TestCallHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CallHandlerTestSuite))
}
