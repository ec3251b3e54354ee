package repository

import (
	"time"

	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AchievementRepository handles database operations for achievements and unlocks
type AchievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// Create creates a new achievement
func (r *AchievementRepository) Create(achievement *models.Achievement) error {
	return r.db.Create(achievement).Error
}

// GetByID retrieves an achievement by ID
func (r *AchievementRepository) GetByID(id uuid.UUID) (*models.Achievement, error) {
	var achievement models.Achievement
	err := r.db.First(&achievement, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &achievement, nil
}

// GetByTitle retrieves an achievement by title
func (r *AchievementRepository) GetByTitle(title string) (*models.Achievement, error) {
	var achievement models.Achievement
	err := r.db.First(&achievement, "title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &achievement, nil
}

// Update updates an achievement
func (r *AchievementRepository) Update(achievement *models.Achievement) error {
	return r.db.Save(achievement).Error
}

// GetLockedForOperator retrieves active achievements the operator has not unlocked
func (r *AchievementRepository) GetLockedForOperator(operatorID uuid.UUID) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.db.Where("is_active = ?", true).
		Where("NOT EXISTS (SELECT 1 FROM operator_achievements oa WHERE oa.achievement_id = achievements.id AND oa.operator_id = ?)", operatorID).
		Order("created_at ASC").
		Find(&achievements).Error
	return achievements, err
}

// GetAllWithStatus retrieves every active achievement with the operator's unlock state
func (r *AchievementRepository) GetAllWithStatus(operatorID uuid.UUID) ([]models.AchievementWithStatus, error) {
	var achievements []models.AchievementWithStatus
	err := r.db.Table("achievements AS a").
		Select("a.*, oa.unlocked_at IS NOT NULL AS unlocked, oa.unlocked_at").
		Joins("LEFT JOIN operator_achievements oa ON oa.achievement_id = a.id AND oa.operator_id = ?", operatorID).
		Where("a.is_active = ?", true).
		Order("a.created_at ASC").
		Scan(&achievements).Error
	return achievements, err
}

// Unlock records the achievement for the operator. It reports whether a new
// row was inserted; unlocking twice is a no-op.
func (r *AchievementRepository) Unlock(operatorID, achievementID uuid.UUID, at time.Time) (bool, error) {
	row := models.OperatorAchievement{
		OperatorID:    operatorID,
		AchievementID: achievementID,
		UnlockedAt:    at,
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// CountUnlocked counts the achievements unlocked by an operator
func (r *AchievementRepository) CountUnlocked(operatorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.OperatorAchievement{}).Where("operator_id = ?", operatorID).Count(&count).Error
	return count, err
}
