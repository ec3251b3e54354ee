package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"callcenter-gamification-backend/internal/auth"
	apperrors "callcenter-gamification-backend/internal/errors"
	"callcenter-gamification-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// respondError maps a service error to its status code. Unknown errors are
// logged and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		respondFailure(c, http.StatusNotFound, err.Error())
	case errors.As(err, &validationErrs),
		apperrors.IsValidation(err),
		apperrors.IsPrecondition(err),
		apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrInvalidTimeRange),
		errors.Is(err, apperrors.ErrInvalidPaginationParams),
		errors.Is(err, apperrors.ErrInvalidRankingPeriod):
		respondFailure(c, http.StatusBadRequest, err.Error())
	case apperrors.IsAuthentication(err):
		respondFailure(c, http.StatusUnauthorized, err.Error())
	case apperrors.IsAuthorization(err):
		respondFailure(c, http.StatusForbidden, err.Error())
	default:
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithField("path", c.FullPath()).
			Error("request failed")
		respondFailure(c, http.StatusInternalServerError, "internal server error")
	}
}

// subjectID returns the authenticated operator or manager id, answering 401
// when the request carries none
func subjectID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetSubjectID(c)
	if !ok {
		respondFailure(c, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return id, true
}

// pagination parses page and page_size, answering 400 on malformed values
func pagination(c *gin.Context) (int, int, bool) {
	page, pageSize := 1, 20
	if v := c.Query("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			respondFailure(c, http.StatusBadRequest, apperrors.ErrInvalidPaginationParams.Error())
			return 0, 0, false
		}
		page = p
	}
	if v := c.Query("page_size"); v != "" {
		ps, err := strconv.Atoi(v)
		if err != nil || ps < 1 {
			respondFailure(c, http.StatusBadRequest, apperrors.ErrInvalidPaginationParams.Error())
			return 0, 0, false
		}
		pageSize = ps
	}
	return page, pageSize, true
}
