package repository

import (
	"time"

	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallStats aggregates an operator's finalized calls
type CallStats struct {
	TotalCalls       int64   `json:"total_chamadas"`
	ResolvedCalls    int64   `json:"chamadas_resolvidas"`
	RatedCalls       int64   `json:"chamadas_avaliadas"`
	AvgHandleSeconds float64 `json:"tempo_medio_atendimento"`
	AvgSatisfaction  float64 `json:"satisfacao_media"`
	PointsFromCalls  int64   `json:"pontos_chamadas"`
}

// OperatorCallTotals is a per-operator aggregate over a time window
type OperatorCallTotals struct {
	OperatorID      uuid.UUID `json:"operador_id"`
	Calls           int64     `json:"chamadas"`
	Points          int64     `json:"pontos"`
	AvgSatisfaction float64   `json:"satisfacao_media"`
}

// StatsRepository runs read-only aggregate queries over calls
type StatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

const callStatsSelect = "COUNT(*) AS total_calls, " +
	"COUNT(*) FILTER (WHERE resolved) AS resolved_calls, " +
	"COUNT(satisfaction) AS rated_calls, " +
	"COALESCE(AVG(duration_seconds), 0) AS avg_handle_seconds, " +
	"COALESCE(AVG(satisfaction), 0) AS avg_satisfaction, " +
	"COALESCE(SUM(points_awarded), 0) AS points_from_calls"

// OperatorCallStats aggregates all finalized calls of an operator
func (r *StatsRepository) OperatorCallStats(operatorID uuid.UUID) (*CallStats, error) {
	return r.operatorCallStats(operatorID, time.Time{})
}

// OperatorCallStatsSince aggregates the operator's calls finalized at or after since
func (r *StatsRepository) OperatorCallStatsSince(operatorID uuid.UUID, since time.Time) (*CallStats, error) {
	return r.operatorCallStats(operatorID, since)
}

func (r *StatsRepository) operatorCallStats(operatorID uuid.UUID, since time.Time) (*CallStats, error) {
	var stats CallStats
	query := r.db.Model(&models.Call{}).
		Select(callStatsSelect).
		Where("operator_id = ? AND status = ?", operatorID, models.CallStatusFinalized)
	if !since.IsZero() {
		query = query.Where("ended_at >= ?", since)
	}
	if err := query.Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// TotalsSince aggregates finalized calls per active operator since a point in
// time. Operators without calls in the window are included with zero totals.
func (r *StatsRepository) TotalsSince(since time.Time) ([]OperatorCallTotals, error) {
	return r.totalsSince(since, nil)
}

// TeamTotalsSince is TotalsSince restricted to one manager's operators
func (r *StatsRepository) TeamTotalsSince(managerID uuid.UUID, since time.Time) ([]OperatorCallTotals, error) {
	return r.totalsSince(since, &managerID)
}

func (r *StatsRepository) totalsSince(since time.Time, managerID *uuid.UUID) ([]OperatorCallTotals, error) {
	var totals []OperatorCallTotals
	query := r.db.Table("operators AS o").
		Select("o.id AS operator_id, COUNT(c.id) AS calls, "+
			"COALESCE(SUM(c.points_awarded), 0) AS points, "+
			"COALESCE(AVG(c.satisfaction), 0) AS avg_satisfaction").
		Joins("LEFT JOIN calls c ON c.operator_id = o.id AND c.status = ? AND c.ended_at >= ?", models.CallStatusFinalized, since).
		Where("o.is_active = ?", true)
	if managerID != nil {
		query = query.Where("o.manager_id = ?", *managerID)
	}
	err := query.Group("o.id").Scan(&totals).Error
	return totals, err
}
