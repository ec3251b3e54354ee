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

// OperatorHandlerTestSuite covers operator self-service endpoints
type OperatorHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	operators  *mocks.MockOperatorServiceInterface
	goals      *mocks.MockGoalServiceInterface
	httpSuite  *testutils.HTTPTestSuite
	operatorID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OperatorHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.operators = mocks.NewMockOperatorServiceInterface(suite.ctrl)
	suite.goals = mocks.NewMockGoalServiceInterface(suite.ctrl)
	suite.operatorID = uuid.New()

	operatorHandler := handlers.NewOperatorHandler(suite.operators)
	goalHandler := handlers.NewGoalHandler(suite.goals)

	suite.httpSuite = testutils.SetupHTTPTest()
	api := suite.httpSuite.Router.Group("/api", asSubject(suite.operatorID, models.RoleOperator))
	{
		api.GET("/operadores/perfil", operatorHandler.GetProfile)
		api.PUT("/operadores/status", operatorHandler.UpdateStatus)
		api.GET("/metas", goalHandler.ListOperatorGoals)
	}
}

// TearDownTest cleans up after each test
func (suite *OperatorHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetProfile tests the GetProfile handler
func (suite *OperatorHandlerTestSuite) TestGetProfile() {
	suite.operators.EXPECT().
		GetProfile(gomock.Any(), suite.operatorID).
		Return(&models.Operator{Name: "Ana", Level: 3, TotalPoints: 410, Status: models.OperatorStatusOnBreak}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/operadores/perfil", nil)

	var op models.Operator
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, &op)
	assert.Equal(suite.T(), "Ana", op.Name)
	assert.Equal(suite.T(), 410, op.TotalPoints)
}

// TestUpdateStatus tests the UpdateStatus handler
func (suite *OperatorHandlerTestSuite) TestUpdateStatus() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.operators.EXPECT().
			UpdateStatus(gomock.Any(), suite.operatorID, &service.UpdateStatusRequest{Status: models.OperatorStatusOnBreak}).
			Return(&models.Operator{Status: models.OperatorStatusOnBreak}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/operadores/status", map[string]interface{}{"status": "pausa"})

		var op models.Operator
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, &op)
		assert.Equal(t, models.OperatorStatusOnBreak, op.Status)
	})

	suite.T().Run("In call", func(t *testing.T) {
		suite.operators.EXPECT().
			UpdateStatus(gomock.Any(), suite.operatorID, gomock.Any()).
			Return(nil, apperrors.ErrOperatorInCall)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/operadores/status", map[string]interface{}{"status": "offline"})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "operator is in a call")
	})

	suite.T().Run("Unknown status", func(t *testing.T) {
		suite.operators.EXPECT().
			UpdateStatus(gomock.Any(), suite.operatorID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("status", "unknown operator status"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/operadores/status", map[string]interface{}{"status": "almoco"})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "unknown operator status")
	})
}

// TestListOperatorGoals tests the operator goal listing
func (suite *OperatorHandlerTestSuite) TestListOperatorGoals() {
	suite.goals.EXPECT().
		ListOperatorGoals(gomock.Any(), suite.operatorID).
		Return([]models.Goal{{Title: "Satisfacao acima de 4.5", TargetValue: 4.5, IsActive: true}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/metas", nil)

	var goals []models.Goal
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, &goals)
	assert.Len(suite.T(), goals, 1)
}

// TestOperatorHandlerTestSuite runs the test suite
func TestOperatorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OperatorHandlerTestSuite))
}
