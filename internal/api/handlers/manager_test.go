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
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ManagerHandlerTestSuite covers the manager dashboard and goal endpoints
type ManagerHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	dashboards *mocks.MockDashboardServiceInterface
	rankings   *mocks.MockRankingServiceInterface
	goals      *mocks.MockGoalServiceInterface
	httpSuite  *testutils.HTTPTestSuite
	managerID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ManagerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.dashboards = mocks.NewMockDashboardServiceInterface(suite.ctrl)
	suite.rankings = mocks.NewMockRankingServiceInterface(suite.ctrl)
	suite.goals = mocks.NewMockGoalServiceInterface(suite.ctrl)
	suite.managerID = uuid.New()

	managerHandler := handlers.NewManagerHandler(suite.dashboards, suite.rankings)
	goalHandler := handlers.NewGoalHandler(suite.goals)

	suite.httpSuite = testutils.SetupHTTPTest()
	m := suite.httpSuite.Router.Group("/api/gestor", asSubject(suite.managerID, models.RoleManager))
	{
		m.GET("/dashboard", managerHandler.GetDashboard)
		m.GET("/operadores", managerHandler.ListOperators)
		m.POST("/ranking/recalcular", managerHandler.RecalculateRanking)
		m.POST("/metas", goalHandler.CreateGoal)
		m.GET("/metas", goalHandler.ListManagerGoals)
		m.PUT("/metas/:id/progresso", goalHandler.UpdateProgress)
		m.DELETE("/metas/:id", goalHandler.DeactivateGoal)
	}
}

// TearDownTest cleans up after each test
func (suite *ManagerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetDashboard tests the manager dashboard
func (suite *ManagerHandlerTestSuite) TestGetDashboard() {
	suite.dashboards.EXPECT().
		ManagerDashboard(gomock.Any(), suite.managerID).
		Return(&service.ManagerDashboard{
			Team:   []service.TeamMemberSummary{{Name: "Ana", Status: models.OperatorStatusInCall}},
			Totals: service.TeamTotals{Operators: 1, Online: 1, InCall: 1},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/gestor/dashboard", nil)

	var resp service.ManagerDashboard
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, &resp)
	require.Len(suite.T(), resp.Team, 1)
	assert.Equal(suite.T(), 1, resp.Totals.InCall)
}

// TestListOperators tests the team listing
func (suite *ManagerHandlerTestSuite) TestListOperators() {
	suite.dashboards.EXPECT().
		ListTeam(gomock.Any(), suite.managerID).
		Return([]models.Operator{{Name: "Ana"}, {Name: "Bruno"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/gestor/operadores", nil)

	var operators []models.Operator
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, &operators)
	assert.Len(suite.T(), operators, 2)
}

// TestRecalculateRanking tests the ranking recompute trigger
func (suite *ManagerHandlerTestSuite) TestRecalculateRanking() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.rankings.EXPECT().
			Recalculate(gomock.Any()).
			Return(&service.RecalculateResponse{Operators: 14, UpdatedAt: time.Now()}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/gestor/ranking/recalcular", nil)

		var resp service.RecalculateResponse
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, &resp)
		assert.Equal(t, 14, resp.Operators)
	})

	suite.T().Run("Database failure", func(t *testing.T) {
		suite.rankings.EXPECT().
			Recalculate(gomock.Any()).
			Return(nil, errors.New("deadlock detected"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/gestor/ranking/recalcular", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
	})
}

// TestCreateGoal tests goal creation
func (suite *ManagerHandlerTestSuite) TestCreateGoal() {
	operatorID := uuid.New()
	body := map[string]interface{}{
		"operador_id":       operatorID.String(),
		"tipo":              "chamadas",
		"titulo":            "Atender 50 chamadas",
		"valor_alvo":        50,
		"periodo":           "semanal",
		"data_inicio":       "2026-03-02",
		"data_fim":          "2026-03-08",
		"pontos_recompensa": 100,
	}

	suite.T().Run("Success", func(t *testing.T) {
		suite.goals.EXPECT().
			CreateGoal(gomock.Any(), suite.managerID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.CreateGoalRequest) (*models.Goal, error) {
				assert.Equal(t, operatorID, req.OperatorID)
				assert.Equal(t, models.GoalTypeCalls, req.Type)
				assert.Equal(t, "2026-03-08", req.EndDate)
				return &models.Goal{
					ManagerID:    suite.managerID,
					OperatorID:   operatorID,
					Type:         req.Type,
					Title:        req.Title,
					TargetValue:  req.TargetValue,
					RewardPoints: req.RewardPoints,
					IsActive:     true,
				}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/gestor/metas", body)

		var goal models.Goal
		testutils.AssertSuccessResponse(t, recorder, http.StatusCreated, &goal)
		assert.Equal(t, float64(50), goal.TargetValue)
		assert.True(t, goal.IsActive)
	})

	suite.T().Run("Operator outside the team", func(t *testing.T) {
		suite.goals.EXPECT().
			CreateGoal(gomock.Any(), suite.managerID, gomock.Any()).
			Return(nil, apperrors.ErrOperatorNotInTeam)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/gestor/metas", body)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "not in this manager's team")
	})

	suite.T().Run("Inverted dates", func(t *testing.T) {
		suite.goals.EXPECT().
			CreateGoal(gomock.Any(), suite.managerID, gomock.Any()).
			Return(nil, apperrors.ErrInvalidTimeRange)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/gestor/metas", body)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid time range")
	})
}

// TestListManagerGoals tests goal listing
func (suite *ManagerHandlerTestSuite) TestListManagerGoals() {
	suite.goals.EXPECT().
		ListManagerGoals(gomock.Any(), suite.managerID, 1, 20).
		Return(&service.GoalListResponse{Goals: []models.Goal{}, Page: 1, PageSize: 20}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/gestor/metas", nil)

	var resp service.GoalListResponse
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Empty(suite.T(), resp.Goals)
}

// TestUpdateProgress tests goal progress updates
func (suite *ManagerHandlerTestSuite) TestUpdateProgress() {
	goalID := uuid.New()
	path := "/api/gestor/metas/" + goalID.String() + "/progresso"

	suite.T().Run("Goal reached", func(t *testing.T) {
		suite.goals.EXPECT().
			UpdateProgress(gomock.Any(), suite.managerID, goalID, &service.UpdateGoalProgressRequest{CurrentValue: 50}).
			Return(&service.GoalProgressResponse{
				Goal:          &models.Goal{CurrentValue: 50, TargetValue: 50, Completed: true},
				JustCompleted: true,
				PointsAwarded: 100,
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, path, map[string]interface{}{"valor_atual": 50})

		var resp service.GoalProgressResponse
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, &resp)
		assert.True(t, resp.JustCompleted)
		assert.Equal(t, 100, resp.PointsAwarded)
		assert.Contains(t, recorder.Body.String(), "Meta concluida")
	})

	suite.T().Run("Partial progress", func(t *testing.T) {
		suite.goals.EXPECT().
			UpdateProgress(gomock.Any(), suite.managerID, goalID, gomock.Any()).
			Return(&service.GoalProgressResponse{Goal: &models.Goal{CurrentValue: 20, TargetValue: 50}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, path, map[string]interface{}{"valor_atual": 20})

		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, nil)
		assert.Contains(t, recorder.Body.String(), "Progresso atualizado")
	})

	suite.T().Run("Goal of another manager", func(t *testing.T) {
		suite.goals.EXPECT().
			UpdateProgress(gomock.Any(), suite.managerID, goalID, gomock.Any()).
			Return(nil, apperrors.ErrGoalNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, path, map[string]interface{}{"valor_atual": 20})
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "goal not found")
	})

	suite.T().Run("Inactive goal", func(t *testing.T) {
		suite.goals.EXPECT().
			UpdateProgress(gomock.Any(), suite.managerID, goalID, gomock.Any()).
			Return(nil, apperrors.ErrGoalInactive)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, path, map[string]interface{}{"valor_atual": 20})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "not active")
	})

	suite.T().Run("Malformed goal id", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/gestor/metas/42/progresso", map[string]interface{}{"valor_atual": 20})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid goal ID")
	})
}

// TestDeactivateGoal tests goal deactivation
func (suite *ManagerHandlerTestSuite) TestDeactivateGoal() {
	goalID := uuid.New()

	suite.goals.EXPECT().
		DeactivateGoal(gomock.Any(), suite.managerID, goalID).
		Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/gestor/metas/"+goalID.String(), nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, nil)
	assert.Contains(suite.T(), recorder.Body.String(), "Meta desativada")
}

// TestManagerHandlerTestSuite runs the test suite
func TestManagerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerHandlerTestSuite))
}
