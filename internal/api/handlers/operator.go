package handlers

import (
	"net/http"

	"callcenter-gamification-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OperatorHandler handles the operator's own profile and status
type OperatorHandler struct {
	operatorService service.OperatorServiceInterface
}

// NewOperatorHandler creates a new operator handler
func NewOperatorHandler(operatorService service.OperatorServiceInterface) *OperatorHandler {
	return &OperatorHandler{operatorService: operatorService}
}

// GetProfile handles GET /api/operadores/perfil
// @Summary Operator profile
// @Tags operators
// @Produce json
// @Success 200 {object} Response{data=models.Operator} "Profile"
// @Failure 404 {object} Response "Operator not found"
// @Security BearerAuth
// @Router /api/operadores/perfil [get]
func (h *OperatorHandler) GetProfile(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}

	op, err := h.operatorService.GetProfile(c.Request.Context(), operatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", op)
}

// UpdateStatus handles PUT /api/operadores/status
// @Summary Change status
// @Description Move to aguardando_chamada, pausa or offline. Not allowed during a call.
// @Tags operators
// @Accept json
// @Produce json
// @Param request body service.UpdateStatusRequest true "Status"
// @Success 200 {object} Response{data=models.Operator} "Status changed"
// @Failure 400 {object} Response "Invalid status or operator in a call"
// @Security BearerAuth
// @Router /api/operadores/status [put]
func (h *OperatorHandler) UpdateStatus(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}

	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	op, err := h.operatorService.UpdateStatus(c.Request.Context(), operatorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Status atualizado", op)
}
