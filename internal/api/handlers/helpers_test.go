package handlers_test

import (
	"callcenter-gamification-backend/internal/auth"
	"callcenter-gamification-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// asSubject stands in for the auth middleware in handler tests
func asSubject(id uuid.UUID, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetIdentity(c, &auth.AuthClaims{SubjectID: id, Role: role})
		c.Next()
	}
}
