package repository

import (
	"time"

	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for authenticated sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(id uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Deactivate revokes a session
func (r *SessionRepository) Deactivate(id uuid.UUID) error {
	return r.db.Model(&models.Session{}).Where("id = ?", id).Update("is_active", false).Error
}

// DeleteExpired removes sessions that expired before t
func (r *SessionRepository) DeleteExpired(t time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", t).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
