package handlers

import (
	"net/http"
	"strconv"

	"callcenter-gamification-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GamificationHandler serves the operator's missions, achievements, ranking and dashboard
type GamificationHandler struct {
	missionService     service.MissionServiceInterface
	achievementService service.AchievementServiceInterface
	rankingService     service.RankingServiceInterface
	dashboardService   service.DashboardServiceInterface
}

// NewGamificationHandler creates a new gamification handler
func NewGamificationHandler(
	missionService service.MissionServiceInterface,
	achievementService service.AchievementServiceInterface,
	rankingService service.RankingServiceInterface,
	dashboardService service.DashboardServiceInterface,
) *GamificationHandler {
	return &GamificationHandler{
		missionService:     missionService,
		achievementService: achievementService,
		rankingService:     rankingService,
		dashboardService:   dashboardService,
	}
}

// ListMissions handles GET /api/gamificacao/missoes
// @Summary Missions
// @Description List active missions with the operator's progress
// @Tags gamification
// @Produce json
// @Success 200 {object} Response{data=[]models.MissionWithProgress} "Missions"
// @Security BearerAuth
// @Router /api/gamificacao/missoes [get]
func (h *GamificationHandler) ListMissions(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}

	missions, err := h.missionService.ListMissions(c.Request.Context(), operatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", missions)
}

// ListAchievements handles GET /api/gamificacao/conquistas
// @Summary Achievements
// @Description List active achievements and whether the operator unlocked them
// @Tags gamification
// @Produce json
// @Success 200 {object} Response{data=[]models.AchievementWithStatus} "Achievements"
// @Security BearerAuth
// @Router /api/gamificacao/conquistas [get]
func (h *GamificationHandler) ListAchievements(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}

	achievements, err := h.achievementService.ListAchievements(c.Request.Context(), operatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", achievements)
}

// CheckAchievements handles POST /api/gamificacao/verificar-conquistas
// @Summary Evaluate achievements
// @Description Unlock every achievement the operator now qualifies for and credit the rewards
// @Tags gamification
// @Produce json
// @Success 200 {object} Response{data=service.AchievementCheckResponse} "Newly unlocked achievements"
// @Failure 404 {object} Response "Operator not found"
// @Security BearerAuth
// @Router /api/gamificacao/verificar-conquistas [post]
func (h *GamificationHandler) CheckAchievements(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}

	resp, err := h.achievementService.Evaluate(c.Request.Context(), operatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Nenhuma nova conquista"
	if resp.Total > 0 {
		message = "Novas conquistas desbloqueadas"
	}
	respondSuccess(c, http.StatusOK, message, resp)
}

// GetStatistics handles GET /api/gamificacao/estatisticas
// @Summary Operator statistics
// @Description Aggregate call figures, points, level and online time
// @Tags gamification
// @Produce json
// @Success 200 {object} Response{data=service.OperatorStatistics} "Statistics"
// @Failure 404 {object} Response "Operator not found"
// @Security BearerAuth
// @Router /api/gamificacao/estatisticas [get]
func (h *GamificationHandler) GetStatistics(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}

	stats, err := h.achievementService.GetStatistics(c.Request.Context(), operatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", stats)
}

// GetRanking handles GET /api/gamificacao/ranking
// @Summary Ranking
// @Description Leaderboard of the weekly or monthly period
// @Tags gamification
// @Produce json
// @Param periodo query string false "semanal or mensal" default(semanal)
// @Param limite query int false "Number of entries"
// @Success 200 {object} Response{data=service.RankingResponse} "Ranking"
// @Failure 400 {object} Response "Invalid period or limit"
// @Security BearerAuth
// @Router /api/gamificacao/ranking [get]
func (h *GamificationHandler) GetRanking(c *gin.Context) {
	limit := 0
	if v := c.Query("limite"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondFailure(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	resp, err := h.rankingService.GetRanking(c.Request.Context(), c.Query("periodo"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", resp)
}

// GetDashboard handles GET /api/gamificacao/dashboard
// @Summary Operator dashboard
// @Description Profile, today's figures, missions, achievements and ranking position
// @Tags gamification
// @Produce json
// @Success 200 {object} Response{data=service.OperatorDashboard} "Dashboard"
// @Failure 404 {object} Response "Operator not found"
// @Security BearerAuth
// @Router /api/gamificacao/dashboard [get]
func (h *GamificationHandler) GetDashboard(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.OperatorDashboard(c.Request.Context(), operatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", dashboard)
}
