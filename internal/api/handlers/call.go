package handlers

import (
	"net/http"

	"callcenter-gamification-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CallHandler handles HTTP requests for the call lifecycle
type CallHandler struct {
	callService service.CallServiceInterface
}

// NewCallHandler creates a new call handler
func NewCallHandler(callService service.CallServiceInterface) *CallHandler {
	return &CallHandler{callService: callService}
}

// StartCall handles POST /api/chamadas/iniciar
// @Summary Start a call
// @Description Open a call for the authenticated operator, who must be awaiting one
// @Tags calls
// @Accept json
// @Produce json
// @Param request body service.StartCallRequest true "Call data"
// @Success 201 {object} Response{data=service.StartCallResponse} "Call started"
// @Failure 400 {object} Response "Invalid request or operator not available"
// @Failure 404 {object} Response "Operator not found"
// @Security BearerAuth
// @Router /api/chamadas/iniciar [post]
func (h *CallHandler) StartCall(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}

	var req service.StartCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.callService.StartCall(c.Request.Context(), operatorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Chamada iniciada", resp)
}

// FinalizeCall handles POST /api/chamadas/finalizar
// @Summary Finalize a call
// @Description Close an in-progress call, credit its points and advance missions
// @Tags calls
// @Accept json
// @Produce json
// @Param request body service.FinalizeCallRequest true "Call outcome"
// @Success 200 {object} Response{data=service.FinalizeCallResponse} "Call finalized"
// @Failure 400 {object} Response "Invalid request or call already finalized"
// @Failure 404 {object} Response "Call not found"
// @Security BearerAuth
// @Router /api/chamadas/finalizar [post]
func (h *CallHandler) FinalizeCall(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}

	var req service.FinalizeCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.callService.FinalizeCall(c.Request.Context(), operatorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Chamada finalizada", resp)
}

// GetActiveCall handles GET /api/chamadas/ativa
// @Summary Active call
// @Description Return the operator's in-progress call
// @Tags calls
// @Produce json
// @Success 200 {object} Response{data=models.Call} "Active call"
// @Failure 404 {object} Response "No active call"
// @Security BearerAuth
// @Router /api/chamadas/ativa [get]
func (h *CallHandler) GetActiveCall(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}

	call, err := h.callService.GetActiveCall(c.Request.Context(), operatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", call)
}

// ListCalls handles GET /api/chamadas
// @Summary Call history
// @Description List the operator's calls, newest first
// @Tags calls
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} Response{data=service.CallListResponse} "Calls"
// @Failure 400 {object} Response "Invalid pagination"
// @Security BearerAuth
// @Router /api/chamadas [get]
func (h *CallHandler) ListCalls(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	resp, err := h.callService.ListCalls(c.Request.Context(), operatorID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", resp)
}
