package auth

import (
	"context"
	"net/http"
	"strings"

	"callcenter-gamification-backend/internal/database/models"
	apperrors "callcenter-gamification-backend/internal/errors"
	"callcenter-gamification-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextSubjectID = "subject_id"
	contextRole      = "role"
	contextClaims    = "auth_claims"
)

// TokenValidator validates bearer tokens
type TokenValidator interface {
	ValidateToken(tokenString string) (*AuthClaims, error)
}

// AuthMiddleware provides bearer-token authentication middleware
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}

// RequireAuth validates the bearer token and sets the identity on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			abort(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := m.validator.ValidateToken(tokenString)
		if err != nil {
			if apperrors.IsAuthentication(err) {
				abort(c, http.StatusUnauthorized, err.Error())
				return
			}
			logger.WithContext(c.Request.Context()).WithError(err).Error("token validation failed")
			abort(c, http.StatusInternalServerError, "internal server error")
			return
		}

		SetIdentity(c, claims)
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose role is not role
func (m *AuthMiddleware) RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := GetRole(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if current != role {
			message := apperrors.ErrOperatorRoleRequired.Error()
			if role == models.RoleManager {
				message = apperrors.ErrManagerRoleRequired.Error()
			}
			abort(c, http.StatusForbidden, message)
			return
		}
		c.Next()
	}
}

// SetIdentity stores the authenticated identity on the gin context and on the
// request context read by the logger
func SetIdentity(c *gin.Context, claims *AuthClaims) {
	c.Set(contextSubjectID, claims.SubjectID)
	c.Set(contextRole, claims.Role)
	c.Set(contextClaims, claims)

	ctx := context.WithValue(c.Request.Context(), logger.SubjectKey, claims.SubjectID.String())
	ctx = context.WithValue(ctx, logger.RoleKey, string(claims.Role))
	c.Request = c.Request.WithContext(ctx)
}

// GetSubjectID is a helper function to extract the authenticated subject ID from context
func GetSubjectID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(contextSubjectID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetRole is a helper function to extract the authenticated role from context
func GetRole(c *gin.Context) (models.Role, bool) {
	value, exists := c.Get(contextRole)
	if !exists {
		return "", false
	}
	role, ok := value.(models.Role)
	return role, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	value, exists := c.Get(contextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*AuthClaims)
	return claims, ok
}
