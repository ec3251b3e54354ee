package auth

import (
	"fmt"
	"time"

	"callcenter-gamification-backend/internal/config"
)

const defaultIssuer = "callcenter-gamification-backend"

// AuthConfig holds the token settings of the auth guard
type AuthConfig struct {
	JWTSecret  string
	Issuer     string
	SessionTTL time.Duration
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) (*AuthConfig, error) {
	authConfig := &AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		Issuer:     defaultIssuer,
		SessionTTL: cfg.SessionTTL(),
	}
	if err := authConfig.ValidateConfig(); err != nil {
		return nil, err
	}
	return authConfig, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}
	if c.Issuer == "" {
		c.Issuer = defaultIssuer
	}
	return nil
}
