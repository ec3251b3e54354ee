package repository

import (
	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OperatorRepository handles database operations for operators
type OperatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository
func NewOperatorRepository(db *gorm.DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

// Create creates a new operator
func (r *OperatorRepository) Create(operator *models.Operator) error {
	return r.db.Create(operator).Error
}

// GetByID retrieves an operator by ID
func (r *OperatorRepository) GetByID(id uuid.UUID) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.First(&operator, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// GetByIDForUpdate retrieves an operator and locks its row until the
// surrounding transaction ends
func (r *OperatorRepository) GetByIDForUpdate(id uuid.UUID) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&operator, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// GetByEmail retrieves an operator by email
func (r *OperatorRepository) GetByEmail(email string) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.First(&operator, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// GetByManagerID retrieves the active operators supervised by a manager
func (r *OperatorRepository) GetByManagerID(managerID uuid.UUID) ([]models.Operator, error) {
	var operators []models.Operator
	err := r.db.Where("manager_id = ? AND is_active = ?", managerID, true).Order("name ASC").Find(&operators).Error
	return operators, err
}

// GetAllActive retrieves every active operator
func (r *OperatorRepository) GetAllActive() ([]models.Operator, error) {
	var operators []models.Operator
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&operators).Error
	return operators, err
}

// Update updates an operator
func (r *OperatorRepository) Update(operator *models.Operator) error {
	return r.db.Save(operator).Error
}

// TransitionStatus moves the operator to status `to` only if its current
// status is `from`. It reports whether the row changed.
func (r *OperatorRepository) TransitionStatus(id uuid.UUID, from, to models.OperatorStatus) (bool, error) {
	result := r.db.Model(&models.Operator{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// UpdateStatusFields writes the status columns of an operator whose stored
// status is still `from`. It reports whether the row changed.
func (r *OperatorRepository) UpdateStatusFields(operator *models.Operator, from models.OperatorStatus) (bool, error) {
	result := r.db.Model(&models.Operator{}).
		Where("id = ? AND status = ?", operator.ID, from).
		Updates(map[string]interface{}{
			"status":         operator.Status,
			"online_since":   operator.OnlineSince,
			"online_seconds": operator.OnlineSeconds,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// AddPoints atomically credits points and the same amount of XP
func (r *OperatorRepository) AddPoints(id uuid.UUID, points int) error {
	result := r.db.Model(&models.Operator{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_points": gorm.Expr("total_points + ?", points),
		"current_xp":   gorm.Expr("current_xp + ?", points),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DebitPoints atomically removes points if the balance covers the amount.
// It reports whether the debit happened.
func (r *OperatorRepository) DebitPoints(id uuid.UUID, amount int) (bool, error) {
	result := r.db.Model(&models.Operator{}).
		Where("id = ? AND total_points >= ?", id, amount).
		Update("total_points", gorm.Expr("total_points - ?", amount))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// UpdateProgression writes level and XP columns
func (r *OperatorRepository) UpdateProgression(id uuid.UUID, level, currentXP, nextLevelXP int) error {
	return r.db.Model(&models.Operator{}).Where("id = ?", id).Updates(map[string]interface{}{
		"level":         level,
		"current_xp":    currentXP,
		"next_level_xp": nextLevelXP,
	}).Error
}
