package handlers

import (
	"net/http"

	"callcenter-gamification-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GoalHandler handles HTTP requests for manager-assigned goals
type GoalHandler struct {
	goalService service.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService service.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoal handles POST /api/gestor/metas
// @Summary Create a goal
// @Description Assign a goal to an operator of the manager's team
// @Tags goals
// @Accept json
// @Produce json
// @Param request body service.CreateGoalRequest true "Goal"
// @Success 201 {object} Response{data=models.Goal} "Goal created"
// @Failure 400 {object} Response "Invalid request"
// @Failure 403 {object} Response "Operator not in team"
// @Failure 404 {object} Response "Operator not found"
// @Security BearerAuth
// @Router /api/gestor/metas [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	managerID, ok := subjectID(c)
	if !ok {
		return
	}

	var req service.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), managerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Meta criada", goal)
}

// ListManagerGoals handles GET /api/gestor/metas
// @Summary Manager goals
// @Description List the goals the manager assigned
// @Tags goals
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} Response{data=service.GoalListResponse} "Goals"
// @Security BearerAuth
// @Router /api/gestor/metas [get]
func (h *GoalHandler) ListManagerGoals(c *gin.Context) {
	managerID, ok := subjectID(c)
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	resp, err := h.goalService.ListManagerGoals(c.Request.Context(), managerID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", resp)
}

// ListOperatorGoals handles GET /api/metas
// @Summary Operator goals
// @Description List the operator's active goals
// @Tags goals
// @Produce json
// @Success 200 {object} Response{data=[]models.Goal} "Goals"
// @Security BearerAuth
// @Router /api/metas [get]
func (h *GoalHandler) ListOperatorGoals(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}

	goals, err := h.goalService.ListOperatorGoals(c.Request.Context(), operatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", goals)
}

// UpdateProgress handles PUT /api/gestor/metas/:id/progresso
// @Summary Update goal progress
// @Description Set a goal's current value; reaching the target completes it once
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param request body service.UpdateGoalProgressRequest true "Progress"
// @Success 200 {object} Response{data=service.GoalProgressResponse} "Progress updated"
// @Failure 400 {object} Response "Invalid request or goal inactive"
// @Failure 404 {object} Response "Goal not found"
// @Security BearerAuth
// @Router /api/gestor/metas/{id}/progresso [put]
func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	managerID, ok := subjectID(c)
	if !ok {
		return
	}
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid goal ID")
		return
	}

	var req service.UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.goalService.UpdateProgress(c.Request.Context(), managerID, goalID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Progresso atualizado"
	if resp.JustCompleted {
		message = "Meta concluida"
	}
	respondSuccess(c, http.StatusOK, message, resp)
}

// DeactivateGoal handles DELETE /api/gestor/metas/:id
// @Summary Deactivate a goal
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} Response "Goal deactivated"
// @Failure 404 {object} Response "Goal not found"
// @Security BearerAuth
// @Router /api/gestor/metas/{id} [delete]
func (h *GoalHandler) DeactivateGoal(c *gin.Context) {
	managerID, ok := subjectID(c)
	if !ok {
		return
	}
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid goal ID")
		return
	}

	if err := h.goalService.DeactivateGoal(c.Request.Context(), managerID, goalID); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Meta desativada", nil)
}
