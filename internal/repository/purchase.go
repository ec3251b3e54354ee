package repository

import (
	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseRepository handles database operations for store purchases
type PurchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Create creates a new purchase
func (r *PurchaseRepository) Create(purchase *models.Purchase) error {
	return r.db.Create(purchase).Error
}

// ExistsActive reports whether the operator holds a non-cancelled purchase of the reward
func (r *PurchaseRepository) ExistsActive(operatorID, rewardID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Purchase{}).
		Where("operator_id = ? AND reward_id = ? AND status <> ?", operatorID, rewardID, models.PurchaseStatusCancelled).
		Count(&count).Error
	return count > 0, err
}

// ListByOperator retrieves an operator's purchases with their rewards, newest first
func (r *PurchaseRepository) ListByOperator(operatorID uuid.UUID, limit, offset int) ([]models.Purchase, int64, error) {
	var purchases []models.Purchase
	var total int64

	query := r.db.Model(&models.Purchase{}).Where("operator_id = ?", operatorID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Reward").Order("purchased_at DESC").Limit(limit).Offset(offset).Find(&purchases).Error
	return purchases, total, err
}
