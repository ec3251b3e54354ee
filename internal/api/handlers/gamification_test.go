package handlers_test

import (
	"net/http"
	"testing"

	"callcenter-gamification-backend/internal/api/handlers"
	"callcenter-gamification-backend/internal/database/models"
	apperrors "callcenter-gamification-backend/internal/errors"
	"callcenter-gamification-backend/internal/mocks"
	"callcenter-gamification-backend/internal/repository"
	"callcenter-gamification-backend/internal/service"
	"callcenter-gamification-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GamificationHandlerTestSuite defines the test suite for GamificationHandler
type GamificationHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	missions     *mocks.MockMissionServiceInterface
	achievements *mocks.MockAchievementServiceInterface
	rankings     *mocks.MockRankingServiceInterface
	dashboards   *mocks.MockDashboardServiceInterface
	handler      *handlers.GamificationHandler
	httpSuite    *testutils.HTTPTestSuite
	operatorID   uuid.UUID
}

// SetupTest sets up the test suite
func (suite *GamificationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.missions = mocks.NewMockMissionServiceInterface(suite.ctrl)
	suite.achievements = mocks.NewMockAchievementServiceInterface(suite.ctrl)
	suite.rankings = mocks.NewMockRankingServiceInterface(suite.ctrl)
	suite.dashboards = mocks.NewMockDashboardServiceInterface(suite.ctrl)
	suite.handler = handlers.NewGamificationHandler(suite.missions, suite.achievements, suite.rankings, suite.dashboards)
	suite.operatorID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	g := suite.httpSuite.Router.Group("/api/gamificacao", asSubject(suite.operatorID, models.RoleOperator))
	{
		g.GET("/missoes", suite.handler.ListMissions)
		g.GET("/conquistas", suite.handler.ListAchievements)
		g.POST("/verificar-conquistas", suite.handler.CheckAchievements)
		g.GET("/estatisticas", suite.handler.GetStatistics)
		g.GET("/ranking", suite.handler.GetRanking)
		g.GET("/dashboard", suite.handler.GetDashboard)
	}
}

// TearDownTest cleans up after each test
func (suite *GamificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListMissions tests the ListMissions handler
func (suite *GamificationHandlerTestSuite) TestListMissions() {
	suite.missions.EXPECT().
		ListMissions(gomock.Any(), suite.operatorID).
		Return([]models.MissionWithProgress{
			{Mission: models.Mission{Title: "Primeiras chamadas", TargetValue: 5}, Progress: 3},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/gamificacao/missoes", nil)

	var missions []models.MissionWithProgress
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, &missions)
	require.Len(suite.T(), missions, 1)
	assert.Equal(suite.T(), 3, missions[0].Progress)
	assert.False(suite.T(), missions[0].Completed)
}

// TestListAchievements tests the ListAchievements handler
func (suite *GamificationHandlerTestSuite) TestListAchievements() {
	suite.achievements.EXPECT().
		ListAchievements(gomock.Any(), suite.operatorID).
		Return([]models.AchievementWithStatus{{Achievement: models.Achievement{Title: "Centenario"}, Unlocked: true}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/gamificacao/conquistas", nil)

	var achievements []models.AchievementWithStatus
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, &achievements)
	require.Len(suite.T(), achievements, 1)
	assert.True(suite.T(), achievements[0].Unlocked)
}

// TestCheckAchievements tests the CheckAchievements handler
func (suite *GamificationHandlerTestSuite) TestCheckAchievements() {
	suite.T().Run("New unlocks", func(t *testing.T) {
		suite.achievements.EXPECT().
			Evaluate(gomock.Any(), suite.operatorID).
			Return(&service.AchievementCheckResponse{
				Unlocked: []service.UnlockedAchievement{{AchievementID: uuid.New(), Title: "Primeira chamada", RewardPoints: 10}},
				Total:    1,
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/gamificacao/verificar-conquistas", nil)

		var envelope testutils.Envelope
		testutils.ParseJSONResponse(t, recorder, &envelope)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Novas conquistas desbloqueadas", envelope.Message)
	})

	suite.T().Run("Nothing new", func(t *testing.T) {
		suite.achievements.EXPECT().
			Evaluate(gomock.Any(), suite.operatorID).
			Return(&service.AchievementCheckResponse{Unlocked: []service.UnlockedAchievement{}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/gamificacao/verificar-conquistas", nil)

		var resp service.AchievementCheckResponse
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, &resp)
		assert.Equal(t, 0, resp.Total)
		assert.Contains(t, recorder.Body.String(), "Nenhuma nova conquista")
	})

	suite.T().Run("Operator removed", func(t *testing.T) {
		suite.achievements.EXPECT().
			Evaluate(gomock.Any(), suite.operatorID).
			Return(nil, apperrors.ErrOperatorNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/gamificacao/verificar-conquistas", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "operator not found")
	})
}

// TestGetStatistics tests the GetStatistics handler
func (suite *GamificationHandlerTestSuite) TestGetStatistics() {
	suite.achievements.EXPECT().
		GetStatistics(gomock.Any(), suite.operatorID).
		Return(&service.OperatorStatistics{TotalCalls: 12, ResolvedCalls: 9, TotalPoints: 480, Level: 3}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/gamificacao/estatisticas", nil)

	var stats service.OperatorStatistics
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, &stats)
	assert.Equal(suite.T(), int64(12), stats.TotalCalls)
	assert.Equal(suite.T(), 3, stats.Level)
}

// TestGetRanking tests the GetRanking handler
func (suite *GamificationHandlerTestSuite) TestGetRanking() {
	suite.T().Run("Defaults", func(t *testing.T) {
		suite.rankings.EXPECT().
			GetRanking(gomock.Any(), "", 0).
			Return(&service.RankingResponse{Period: repository.RankingWeekly, Entries: []models.RankingEntry{}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/gamificacao/ranking", nil)

		var resp service.RankingResponse
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, &resp)
		assert.Equal(t, repository.RankingWeekly, resp.Period)
	})

	suite.T().Run("Period and limit", func(t *testing.T) {
		suite.rankings.EXPECT().
			GetRanking(gomock.Any(), "mensal", 5).
			Return(&service.RankingResponse{
				Period:  repository.RankingMonthly,
				Entries: []models.RankingEntry{{Position: 1, OperatorName: "Ana", Points: 900}},
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/gamificacao/ranking?periodo=mensal&limite=5", nil)

		var resp service.RankingResponse
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK, &resp)
		require.Len(t, resp.Entries, 1)
		assert.Equal(t, "Ana", resp.Entries[0].OperatorName)
	})

	suite.T().Run("Unknown period", func(t *testing.T) {
		suite.rankings.EXPECT().
			GetRanking(gomock.Any(), "anual", 0).
			Return(nil, apperrors.ErrInvalidRankingPeriod)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/gamificacao/ranking?periodo=anual", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid ranking period")
	})

	suite.T().Run("Invalid limit", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/gamificacao/ranking?limite=-3", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid limit")
	})
}

// TestGetDashboard tests the GetDashboard handler
func (suite *GamificationHandlerTestSuite) TestGetDashboard() {
	position := 2
	suite.dashboards.EXPECT().
		OperatorDashboard(gomock.Any(), suite.operatorID).
		Return(&service.OperatorDashboard{
			Operator:        &models.Operator{Name: "Ana", Level: 4},
			Today:           service.DailySummary{Calls: 6, Points: 210},
			Missions:        []models.MissionWithProgress{},
			RankingPosition: &position,
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/gamificacao/dashboard", nil)

	var resp service.OperatorDashboard
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), int64(6), resp.Today.Calls)
	require.NotNil(suite.T(), resp.RankingPosition)
	assert.Equal(suite.T(), 2, *resp.RankingPosition)
}

// TestGamificationHandlerTestSuite runs the test suite
func TestGamificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GamificationHandlerTestSuite))
}
