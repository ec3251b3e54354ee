package repository

import (
	"time"

	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MissionRepository handles database operations for missions and mission progress
type MissionRepository struct {
	db *gorm.DB
}

// NewMissionRepository creates a new mission repository
func NewMissionRepository(db *gorm.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// Create creates a new mission
func (r *MissionRepository) Create(mission *models.Mission) error {
	return r.db.Create(mission).Error
}

// GetByID retrieves a mission by ID
func (r *MissionRepository) GetByID(id uuid.UUID) (*models.Mission, error) {
	var mission models.Mission
	err := r.db.First(&mission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

// GetByTitle retrieves a mission by title
func (r *MissionRepository) GetByTitle(title string) (*models.Mission, error) {
	var mission models.Mission
	err := r.db.First(&mission, "title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

// Update updates a mission
func (r *MissionRepository) Update(mission *models.Mission) error {
	return r.db.Save(mission).Error
}

func (r *MissionRepository) withProgress(operatorID uuid.UUID) *gorm.DB {
	return r.db.Table("missions AS m").
		Select("m.*, COALESCE(mp.progress, 0) AS progress, COALESCE(mp.completed, false) AS completed, mp.completed_at").
		Joins("LEFT JOIN mission_progress mp ON mp.mission_id = m.id AND mp.operator_id = ?", operatorID).
		Where("m.is_active = ?", true)
}

// GetCandidatesForOperator retrieves active, unexpired missions tracking
// action that the operator has not completed yet
func (r *MissionRepository) GetCandidatesForOperator(operatorID uuid.UUID, action models.ActionType, now time.Time) ([]models.MissionWithProgress, error) {
	var missions []models.MissionWithProgress
	err := r.withProgress(operatorID).
		Where("m.action = ?", action).
		Where("m.expires_at IS NULL OR m.expires_at > ?", now).
		Where("COALESCE(mp.completed, false) = ?", false).
		Order("m.created_at ASC").
		Scan(&missions).Error
	return missions, err
}

// GetAllWithProgress retrieves every active mission with the operator's progress
func (r *MissionRepository) GetAllWithProgress(operatorID uuid.UUID) ([]models.MissionWithProgress, error) {
	var missions []models.MissionWithProgress
	err := r.withProgress(operatorID).
		Order("m.created_at ASC").
		Scan(&missions).Error
	return missions, err
}

// IncrementProgress adds increment to the operator's progress on a mission,
// creating the row on first use, and returns the stored value. The addition
// happens in the database so concurrent increments are not lost.
func (r *MissionRepository) IncrementProgress(operatorID, missionID uuid.UUID, increment int) (int, error) {
	row := models.MissionProgress{
		OperatorID: operatorID,
		MissionID:  missionID,
		Progress:   increment,
	}
	err := r.db.Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "operator_id"}, {Name: "mission_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"progress":   gorm.Expr("mission_progress.progress + ?", increment),
				"updated_at": gorm.Expr("EXCLUDED.updated_at"),
			}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "progress"}}},
	).Create(&row).Error
	if err != nil {
		return 0, err
	}
	return row.Progress, nil
}

// MarkCompleted flags the progress row as completed if it was not already.
// It reports whether this call performed the transition.
func (r *MissionRepository) MarkCompleted(operatorID, missionID uuid.UUID, at time.Time) (bool, error) {
	result := r.db.Model(&models.MissionProgress{}).
		Where("operator_id = ? AND mission_id = ? AND completed = ?", operatorID, missionID, false).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// GetProgress retrieves the operator's progress row for a mission
func (r *MissionRepository) GetProgress(operatorID, missionID uuid.UUID) (*models.MissionProgress, error) {
	var progress models.MissionProgress
	err := r.db.First(&progress, "operator_id = ? AND mission_id = ?", operatorID, missionID).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
