package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is an issued bearer token. The token's jti is the session ID, so
// deactivating the row revokes the token before it expires.
type Session struct {
	BaseModel
	SubjectID uuid.UUID `json:"subject_id" gorm:"type:uuid;not null;index"`
	Role      Role      `json:"role" gorm:"type:varchar(20);not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	UserAgent string    `json:"user_agent" gorm:"size:255"`
	ClientIP  string    `json:"client_ip" gorm:"size:64"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// IsValidAt reports whether the session can authenticate a request at t
func (s *Session) IsValidAt(t time.Time) bool {
	return s.IsActive && t.Before(s.ExpiresAt)
}
