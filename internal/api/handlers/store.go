package handlers

import (
	"net/http"
	"strconv"

	"callcenter-gamification-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StoreHandler handles HTTP requests for the reward store
type StoreHandler struct {
	storeService service.StoreServiceInterface
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService service.StoreServiceInterface) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// ListRewards handles GET /api/recompensas
// @Summary Rewards
// @Description List the reward catalogue
// @Tags store
// @Produce json
// @Param categoria query string false "Category"
// @Param disponivel query bool false "Only available rewards"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} Response{data=service.RewardListResponse} "Rewards"
// @Failure 400 {object} Response "Invalid parameters"
// @Security BearerAuth
// @Router /api/recompensas [get]
func (h *StoreHandler) ListRewards(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	onlyAvailable := false
	if v := c.Query("disponivel"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			respondFailure(c, http.StatusBadRequest, "invalid disponivel parameter")
			return
		}
		onlyAvailable = b
	}

	resp, err := h.storeService.ListRewards(c.Request.Context(), c.Query("categoria"), onlyAvailable, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", resp)
}

// Purchase handles POST /api/recompensas/comprar
// @Summary Buy a reward
// @Description Spend points on a reward
// @Tags store
// @Accept json
// @Produce json
// @Param request body service.PurchaseRequest true "Reward"
// @Success 201 {object} Response{data=service.PurchaseResponse} "Purchase completed"
// @Failure 400 {object} Response "Unavailable, already owned, insufficient points or out of stock"
// @Failure 404 {object} Response "Reward not found"
// @Security BearerAuth
// @Router /api/recompensas/comprar [post]
func (h *StoreHandler) Purchase(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}

	var req service.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.storeService.Purchase(c.Request.Context(), operatorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Compra realizada com sucesso", resp)
}

// ListPurchases handles GET /api/recompensas/compras
// @Summary Purchase history
// @Description List the operator's purchases, newest first
// @Tags store
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} Response{data=service.PurchaseListResponse} "Purchases"
// @Security BearerAuth
// @Router /api/recompensas/compras [get]
func (h *StoreHandler) ListPurchases(c *gin.Context) {
	operatorID, ok := subjectID(c)
	if !ok {
		return
	}
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	resp, err := h.storeService.ListPurchases(c.Request.Context(), operatorID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", resp)
}
