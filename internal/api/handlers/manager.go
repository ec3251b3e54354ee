package handlers

import (
	"net/http"

	"callcenter-gamification-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ManagerHandler serves the manager's team views and ranking maintenance
type ManagerHandler struct {
	dashboardService service.DashboardServiceInterface
	rankingService   service.RankingServiceInterface
}

// NewManagerHandler creates a new manager handler
func NewManagerHandler(dashboardService service.DashboardServiceInterface, rankingService service.RankingServiceInterface) *ManagerHandler {
	return &ManagerHandler{
		dashboardService: dashboardService,
		rankingService:   rankingService,
	}
}

// GetDashboard handles GET /api/gestor/dashboard
// @Summary Team dashboard
// @Description Today's summary of every operator in the manager's team
// @Tags manager
// @Produce json
// @Success 200 {object} Response{data=service.ManagerDashboard} "Dashboard"
// @Failure 403 {object} Response "Manager access required"
// @Security BearerAuth
// @Router /api/gestor/dashboard [get]
func (h *ManagerHandler) GetDashboard(c *gin.Context) {
	managerID, ok := subjectID(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.ManagerDashboard(c.Request.Context(), managerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", dashboard)
}

// ListOperators handles GET /api/gestor/operadores
// @Summary Team operators
// @Description List the manager's active operators
// @Tags manager
// @Produce json
// @Success 200 {object} Response{data=[]models.Operator} "Operators"
// @Failure 403 {object} Response "Manager access required"
// @Security BearerAuth
// @Router /api/gestor/operadores [get]
func (h *ManagerHandler) ListOperators(c *gin.Context) {
	managerID, ok := subjectID(c)
	if !ok {
		return
	}

	operators, err := h.dashboardService.ListTeam(c.Request.Context(), managerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", operators)
}

// RecalculateRanking handles POST /api/gestor/ranking/recalcular
// @Summary Recalculate ranking
// @Description Rebuild the weekly and monthly ranking from finalized calls
// @Tags manager
// @Produce json
// @Success 200 {object} Response{data=service.RecalculateResponse} "Ranking rebuilt"
// @Failure 403 {object} Response "Manager access required"
// @Security BearerAuth
// @Router /api/gestor/ranking/recalcular [post]
func (h *ManagerHandler) RecalculateRanking(c *gin.Context) {
	resp, err := h.rankingService.Recalculate(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Ranking recalculado", resp)
}
