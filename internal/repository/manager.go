package repository

import (
	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ManagerRepository handles database operations for managers
type ManagerRepository struct {
	db *gorm.DB
}

// NewManagerRepository creates a new manager repository
func NewManagerRepository(db *gorm.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

// Create creates a new manager
func (r *ManagerRepository) Create(manager *models.Manager) error {
	return r.db.Create(manager).Error
}

// GetByID retrieves a manager by ID
func (r *ManagerRepository) GetByID(id uuid.UUID) (*models.Manager, error) {
	var manager models.Manager
	err := r.db.First(&manager, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &manager, nil
}

// GetByEmail retrieves a manager by email
func (r *ManagerRepository) GetByEmail(email string) (*models.Manager, error) {
	var manager models.Manager
	err := r.db.First(&manager, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &manager, nil
}
