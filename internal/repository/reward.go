package repository

import (
	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RewardRepository handles database operations for store rewards
type RewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository creates a new reward repository
func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

// Create creates a new reward
func (r *RewardRepository) Create(reward *models.Reward) error {
	return r.db.Create(reward).Error
}

// GetByID retrieves a reward by ID
func (r *RewardRepository) GetByID(id uuid.UUID) (*models.Reward, error) {
	var reward models.Reward
	err := r.db.First(&reward, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// GetByIDForUpdate retrieves a reward and locks its row
func (r *RewardRepository) GetByIDForUpdate(id uuid.UUID) (*models.Reward, error) {
	var reward models.Reward
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&reward, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// GetByTitle retrieves a reward by title
func (r *RewardRepository) GetByTitle(title string) (*models.Reward, error) {
	var reward models.Reward
	err := r.db.First(&reward, "title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// Update updates a reward
func (r *RewardRepository) Update(reward *models.Reward) error {
	return r.db.Save(reward).Error
}

// List retrieves rewards with optional category and availability filters
func (r *RewardRepository) List(category string, onlyAvailable bool, limit, offset int) ([]models.Reward, int64, error) {
	var rewards []models.Reward
	var total int64

	query := r.db.Model(&models.Reward{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if onlyAvailable {
		query = query.Where("is_available = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("price ASC, title ASC").Limit(limit).Offset(offset).Find(&rewards).Error
	return rewards, total, err
}

// DecrementStock removes one unit of finite stock and marks the reward
// unavailable when the last unit goes. It reports whether a unit was taken.
func (r *RewardRepository) DecrementStock(id uuid.UUID) (bool, error) {
	result := r.db.Model(&models.Reward{}).
		Where("id = ? AND stock IS NOT NULL AND stock > 0", id).
		Updates(map[string]interface{}{
			"stock":        gorm.Expr("stock - 1"),
			"is_available": gorm.Expr("stock - 1 > 0"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
