package repository

import (
	"time"

	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GoalRepository handles database operations for manager-assigned goals
type GoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create creates a new goal
func (r *GoalRepository) Create(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

// GetByID retrieves a goal by ID
func (r *GoalRepository) GetByID(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.First(&goal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetByIDForUpdate retrieves a goal and locks its row
func (r *GoalRepository) GetByIDForUpdate(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&goal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// ListByManager retrieves the goals a manager assigned, with their operators
func (r *GoalRepository) ListByManager(managerID uuid.UUID, limit, offset int) ([]models.Goal, int64, error) {
	var goals []models.Goal
	var total int64

	query := r.db.Model(&models.Goal{}).Where("manager_id = ?", managerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Operator").Order("end_date ASC, created_at DESC").Limit(limit).Offset(offset).Find(&goals).Error
	return goals, total, err
}

// ListActiveByOperator retrieves an operator's active goals
func (r *GoalRepository) ListActiveByOperator(operatorID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("operator_id = ? AND is_active = ?", operatorID, true).
		Order("end_date ASC").
		Find(&goals).Error
	return goals, err
}

// SetProgress writes the current value of a goal
func (r *GoalRepository) SetProgress(id uuid.UUID, value float64) error {
	return r.db.Model(&models.Goal{}).Where("id = ?", id).Update("current_value", value).Error
}

// MarkCompleted flags the goal as completed if it was not already. It
// reports whether this call performed the transition.
func (r *GoalRepository) MarkCompleted(id uuid.UUID, at time.Time) (bool, error) {
	result := r.db.Model(&models.Goal{}).
		Where("id = ? AND completed = ?", id, false).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Deactivate marks a goal inactive
func (r *GoalRepository) Deactivate(id uuid.UUID) error {
	result := r.db.Model(&models.Goal{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
