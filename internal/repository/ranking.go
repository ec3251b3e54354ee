package repository

import (
	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RankingPeriod selects which aggregate a leaderboard is ordered by
type RankingPeriod string

const (
	RankingWeekly  RankingPeriod = "semanal"
	RankingMonthly RankingPeriod = "mensal"
)

// IsValid checks if the RankingPeriod is valid
func (p RankingPeriod) IsValid() bool {
	return p == RankingWeekly || p == RankingMonthly
}

// RankingRepository handles database operations for the ranking table
type RankingRepository struct {
	db *gorm.DB
}

// NewRankingRepository creates a new ranking repository
func NewRankingRepository(db *gorm.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

// GetOrdered retrieves the leaderboard for a period, best first. The weekly
// order matches the stored position: weekly points, monthly points, name.
func (r *RankingRepository) GetOrdered(period RankingPeriod, limit int) ([]models.RankingEntry, error) {
	pointsColumn, callsColumn := "r.weekly_points", "r.weekly_calls"
	order := "r.weekly_points DESC, r.monthly_points DESC, o.name ASC"
	if period == RankingMonthly {
		pointsColumn, callsColumn = "r.monthly_points", "r.monthly_calls"
		order = "r.monthly_points DESC, r.weekly_points DESC, o.name ASC"
	}

	var entries []models.RankingEntry
	err := r.db.Table("rankings AS r").
		Select("ROW_NUMBER() OVER (ORDER BY "+order+") AS position, "+
			"r.operator_id, o.name AS operator_name, o.level, "+
			pointsColumn+" AS points, "+callsColumn+" AS calls").
		Joins("JOIN operators o ON o.id = r.operator_id").
		Where("o.is_active = ?", true).
		Order(order).
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}

// GetByOperatorID retrieves the ranking row of an operator
func (r *RankingRepository) GetByOperatorID(operatorID uuid.UUID) (*models.Ranking, error) {
	var ranking models.Ranking
	err := r.db.First(&ranking, "operator_id = ?", operatorID).Error
	if err != nil {
		return nil, err
	}
	return &ranking, nil
}

// UpsertMany replaces the aggregates of the given ranking rows, keyed by operator
func (r *RankingRepository) UpsertMany(rankings []models.Ranking) error {
	if len(rankings) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "operator_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"weekly_points", "monthly_points", "weekly_calls", "monthly_calls", "position", "updated_at",
		}),
	}).Create(&rankings).Error
}
