package auth

import (
	"errors"
	"net/http"

	apperrors "callcenter-gamification-backend/internal/errors"
	"callcenter-gamification-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Authenticate an operator or manager with email and password and open a session
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Token, expiry and user"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	resp, err := h.service.Login(&req, ClientInfo{UserAgent: c.Request.UserAgent(), ClientIP: c.ClientIP()})
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		case apperrors.IsAuthentication(err):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
		default:
			logger.WithContext(c.Request.Context()).WithError(err).Error("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login realizado com sucesso", "data": resp})
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Description Revoke the current session
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Logged out"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	if err := h.service.Logout(claims); err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
			return
		}
		logger.WithContext(c.Request.Context()).WithError(err).Error("logout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout realizado com sucesso"})
}

// Me handles GET /api/auth/me
// @Summary Current identity
// @Description Return the authenticated operator or manager
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	user, err := h.service.Me(claims)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		logger.WithContext(c.Request.Context()).WithError(err).Error("failed to load identity")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}
