package repository

import (
	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CallRepository handles database operations for calls
type CallRepository struct {
	db *gorm.DB
}

// NewCallRepository creates a new call repository
func NewCallRepository(db *gorm.DB) *CallRepository {
	return &CallRepository{db: db}
}

// Create creates a new call
func (r *CallRepository) Create(call *models.Call) error {
	return r.db.Create(call).Error
}

// GetByID retrieves a call by ID
func (r *CallRepository) GetByID(id uuid.UUID) (*models.Call, error) {
	var call models.Call
	err := r.db.First(&call, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &call, nil
}

// GetByIDForUpdate retrieves a call and locks its row
func (r *CallRepository) GetByIDForUpdate(id uuid.UUID) (*models.Call, error) {
	var call models.Call
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&call, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &call, nil
}

// GetInProgressByOperator retrieves the operator's in-progress call
func (r *CallRepository) GetInProgressByOperator(operatorID uuid.UUID) (*models.Call, error) {
	var call models.Call
	err := r.db.Where("operator_id = ? AND status = ?", operatorID, models.CallStatusInProgress).
		Order("started_at DESC").
		First(&call).Error
	if err != nil {
		return nil, err
	}
	return &call, nil
}

// ListByOperator retrieves an operator's calls, most recent first
func (r *CallRepository) ListByOperator(operatorID uuid.UUID, limit, offset int) ([]models.Call, int64, error) {
	var calls []models.Call
	var total int64

	query := r.db.Model(&models.Call{}).Where("operator_id = ?", operatorID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("started_at DESC").Limit(limit).Offset(offset).Find(&calls).Error
	return calls, total, err
}

// Finalize writes the finalization columns of a call that is still in
// progress. It reports whether the call was finalized by this statement.
func (r *CallRepository) Finalize(call *models.Call) (bool, error) {
	result := r.db.Model(&models.Call{}).
		Where("id = ? AND status = ?", call.ID, models.CallStatusInProgress).
		Updates(map[string]interface{}{
			"status":           models.CallStatusFinalized,
			"ended_at":         call.EndedAt,
			"duration_seconds": call.DurationSeconds,
			"satisfaction":     call.Satisfaction,
			"resolved":         call.Resolved,
			"notes":            call.Notes,
			"points_awarded":   call.PointsAwarded,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
