package auth

import (
	"errors"
	"fmt"
	"time"

	"callcenter-gamification-backend/internal/database/models"
	apperrors "callcenter-gamification-backend/internal/errors"
	"callcenter-gamification-backend/internal/logger"
	"callcenter-gamification-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthClaims represents JWT token claims. The token ID (jti) is the session ID.
type AuthClaims struct {
	SubjectID            uuid.UUID   `json:"subject_id" example:"4b0f6c7e-8a59-4f5c-9d0e-2a1f3c4d5e6f"`
	Role                 models.Role `json:"role" example:"operador"`
	Name                 string      `json:"name" example:"Ana Souza"`
	Email                string      `json:"email" example:"ana.souza@example.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// SessionID returns the session bound to the token
func (c *AuthClaims) SessionID() (uuid.UUID, error) {
	return uuid.Parse(c.ID)
}

// LoginRequest represents the request body of the login endpoint
type LoginRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"senha" validate:"required"`
	Role     models.Role `json:"tipo" validate:"required,oneof=operador gestor"`
}

// ClientInfo describes the client opening a session
type ClientInfo struct {
	UserAgent string
	ClientIP  string
}

// UserInfo is the authenticated identity returned to clients
type UserInfo struct {
	ID     uuid.UUID              `json:"id"`
	Name   string                 `json:"nome"`
	Email  string                 `json:"email"`
	Role   models.Role            `json:"tipo"`
	Status *models.OperatorStatus `json:"status,omitempty"`
	Level  *int                   `json:"nivel,omitempty"`
	Points *int                   `json:"pontos_totais,omitempty"`
}

// LoginResponse represents the response of the login endpoint
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expira_em"`
	User      UserInfo  `json:"usuario"`
}

// AuthService authenticates operators and managers against local credentials
// and validates bearer tokens against the session table
type AuthService struct {
	config    *AuthConfig
	sessions  repository.SessionRepositoryInterface
	operators repository.OperatorRepositoryInterface
	managers  repository.ManagerRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(
	config *AuthConfig,
	sessions repository.SessionRepositoryInterface,
	operators repository.OperatorRepositoryInterface,
	managers repository.ManagerRepositoryInterface,
	validator *validator.Validate,
) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:    config,
		sessions:  sessions,
		operators: operators,
		managers:  managers,
		validator: validator,
		now:       time.Now,
	}, nil
}

// Login checks credentials, opens a session and issues its token
func (s *AuthService) Login(req *LoginRequest, client ClientInfo) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user UserInfo
	switch req.Role {
	case models.RoleOperator:
		op, err := s.operators.GetByEmail(req.Email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("failed to load operator: %w", err)
		}
		if !op.IsActive || !CheckPassword(op.PasswordHash, req.Password) {
			return nil, apperrors.ErrInvalidCredentials
		}
		if err := s.bringOnline(op); err != nil {
			return nil, err
		}
		user = operatorInfo(op)
	case models.RoleManager:
		manager, err := s.managers.GetByEmail(req.Email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("failed to load manager: %w", err)
		}
		if !manager.IsActive || !CheckPassword(manager.PasswordHash, req.Password) {
			return nil, apperrors.ErrInvalidCredentials
		}
		user = UserInfo{ID: manager.ID, Name: manager.Name, Email: manager.Email, Role: models.RoleManager}
	}

	now := s.now()
	session := &models.Session{
		SubjectID: user.ID,
		Role:      user.Role,
		ExpiresAt: now.Add(s.config.SessionTTL),
		IsActive:  true,
		UserAgent: truncate(client.UserAgent, 255),
		ClientIP:  client.ClientIP,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.GenerateJWT(session, user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"subject": user.ID,
		"role":    user.Role,
	}).Info("session opened")

	return &LoginResponse{Token: token, ExpiresAt: session.ExpiresAt, User: user}, nil
}

// bringOnline moves an offline operator to awaiting a call
func (s *AuthService) bringOnline(op *models.Operator) error {
	if op.Status != models.OperatorStatusOffline {
		return nil
	}
	op.ApplyStatus(models.OperatorStatusAwaitingCall, s.now())
	if _, err := s.operators.UpdateStatusFields(op, models.OperatorStatusOffline); err != nil {
		return fmt.Errorf("failed to update operator status: %w", err)
	}
	return nil
}

// Logout revokes the session behind claims. An operator who is not in a call
// goes offline.
func (s *AuthService) Logout(claims *AuthClaims) error {
	sessionID, err := claims.SessionID()
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	if err := s.sessions.Deactivate(sessionID); err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}

	if claims.Role != models.RoleOperator {
		return nil
	}
	op, err := s.operators.GetByID(claims.SubjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load operator: %w", err)
	}
	if op.Status == models.OperatorStatusInCall || op.Status == models.OperatorStatusOffline {
		return nil
	}
	from := op.Status
	op.ApplyStatus(models.OperatorStatusOffline, s.now())
	if _, err := s.operators.UpdateStatusFields(op, from); err != nil {
		return fmt.Errorf("failed to update operator status: %w", err)
	}
	return nil
}

// Me returns the current identity behind claims
func (s *AuthService) Me(claims *AuthClaims) (*UserInfo, error) {
	switch claims.Role {
	case models.RoleOperator:
		op, err := s.operators.GetByID(claims.SubjectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOperatorNotFound
			}
			return nil, fmt.Errorf("failed to load operator: %w", err)
		}
		info := operatorInfo(op)
		return &info, nil
	default:
		manager, err := s.managers.GetByID(claims.SubjectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrManagerNotFound
			}
			return nil, fmt.Errorf("failed to load manager: %w", err)
		}
		return &UserInfo{ID: manager.ID, Name: manager.Name, Email: manager.Email, Role: models.RoleManager}, nil
	}
}

// GenerateJWT creates the bearer token of a session
func (s *AuthService) GenerateJWT(session *models.Session, user UserInfo) (string, error) {
	claims := &AuthClaims{
		SubjectID: user.ID,
		Role:      user.Role,
		Name:      user.Name,
		Email:     user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID.String(),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(s.now()),
			NotBefore: jwt.NewNumericDate(s.now()),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ParseJWT validates the signature and expiry of a token and returns its claims
func (s *AuthService) ParseJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(s.config.Issuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ValidateToken parses a token and checks that its session is still active
func (s *AuthService) ValidateToken(tokenString string) (*AuthClaims, error) {
	claims, err := s.ParseJWT(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	sessionID, err := claims.SessionID()
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	session, err := s.sessions.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.SubjectID != claims.SubjectID || session.Role != claims.Role {
		return nil, apperrors.ErrInvalidToken
	}
	if !session.IsActive {
		return nil, apperrors.ErrInvalidToken
	}
	if !session.IsValidAt(s.now()) {
		return nil, apperrors.ErrSessionExpired
	}

	return claims, nil
}

// PurgeExpiredSessions removes sessions that can no longer authenticate
func (s *AuthService) PurgeExpiredSessions() (int64, error) {
	return s.sessions.DeleteExpired(s.now())
}

func operatorInfo(op *models.Operator) UserInfo {
	status := op.Status
	level := op.Level
	points := op.TotalPoints
	return UserInfo{
		ID:     op.ID,
		Name:   op.Name,
		Email:  op.Email,
		Role:   models.RoleOperator,
		Status: &status,
		Level:  &level,
		Points: &points,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
