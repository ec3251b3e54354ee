package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"callcenter-gamification-backend/internal/database/models"
	apperrors "callcenter-gamification-backend/internal/errors"
	"callcenter-gamification-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailySummary aggregates the calls an operator finalized today
type DailySummary struct {
	Calls           int64   `json:"chamadas"`
	Points          int64   `json:"pontos"`
	AvgSatisfaction float64 `json:"satisfacao_media"`
}

// OperatorDashboard is the operator's home screen
type OperatorDashboard struct {
	Operator             *models.Operator             `json:"operador"`
	Today                DailySummary                 `json:"hoje"`
	Missions             []models.MissionWithProgress `json:"missoes"`
	UnlockedAchievements int64                        `json:"conquistas_desbloqueadas"`
	RankingPosition      *int                         `json:"posicao_ranking,omitempty"`
}

// TeamMemberSummary is one operator row of the manager dashboard
type TeamMemberSummary struct {
	OperatorID      uuid.UUID             `json:"operador_id"`
	Name            string                `json:"nome"`
	Status          models.OperatorStatus `json:"status"`
	Level           int                   `json:"nivel"`
	TotalPoints     int                   `json:"pontos_totais"`
	CallsToday      int64                 `json:"chamadas_hoje"`
	AvgSatisfaction float64               `json:"satisfacao_media"`
}

// TeamTotals sums the manager dashboard rows
type TeamTotals struct {
	Operators       int     `json:"operadores"`
	Online          int     `json:"online"`
	InCall          int     `json:"em_chamada"`
	CallsToday      int64   `json:"chamadas_hoje"`
	PointsToday     int64   `json:"pontos_hoje"`
	AvgSatisfaction float64 `json:"satisfacao_media"`
}

// ManagerDashboard is the manager's team overview
type ManagerDashboard struct {
	Team   []TeamMemberSummary `json:"equipe"`
	Totals TeamTotals          `json:"totais"`
}

// DashboardService builds read-only dashboard views
type DashboardService struct {
	repos *repository.Repositories
	now   func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repos *repository.Repositories) *DashboardService {
	return &DashboardService{repos: repos, now: time.Now}
}

// OperatorDashboard returns the operator's profile, today's figures, missions,
// achievements and ranking position
func (s *DashboardService) OperatorDashboard(ctx context.Context, operatorID uuid.UUID) (*OperatorDashboard, error) {
	repos := s.repos.WithContext(ctx)

	op, err := repos.Operators.GetByID(operatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to load operator: %w", err)
	}

	today, err := repos.Stats.OperatorCallStatsSince(operatorID, startOfDay(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to load today's statistics: %w", err)
	}

	missions, err := repos.Missions.GetAllWithProgress(operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load missions: %w", err)
	}
	if missions == nil {
		missions = []models.MissionWithProgress{}
	}

	unlocked, err := repos.Achievements.CountUnlocked(operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to count achievements: %w", err)
	}

	dashboard := &OperatorDashboard{
		Operator: op,
		Today: DailySummary{
			Calls:           today.TotalCalls,
			Points:          today.PointsFromCalls,
			AvgSatisfaction: today.AvgSatisfaction,
		},
		Missions:             missions,
		UnlockedAchievements: unlocked,
	}

	ranking, err := repos.Rankings.GetByOperatorID(operatorID)
	switch {
	case err == nil:
		dashboard.RankingPosition = &ranking.Position
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to load ranking position: %w", err)
	}

	return dashboard, nil
}

// ManagerDashboard returns today's summary of every operator in the manager's team
func (s *DashboardService) ManagerDashboard(ctx context.Context, managerID uuid.UUID) (*ManagerDashboard, error) {
	repos := s.repos.WithContext(ctx)

	operators, err := repos.Operators.GetByManagerID(managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	totals, err := repos.Stats.TeamTotalsSince(managerID, startOfDay(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate team totals: %w", err)
	}

	byOperator := make(map[uuid.UUID]repository.OperatorCallTotals, len(totals))
	for _, t := range totals {
		byOperator[t.OperatorID] = t
	}

	dashboard := &ManagerDashboard{Team: make([]TeamMemberSummary, 0, len(operators))}
	var satisfactionSum float64
	var rated int
	for _, op := range operators {
		t := byOperator[op.ID]
		dashboard.Team = append(dashboard.Team, TeamMemberSummary{
			OperatorID:      op.ID,
			Name:            op.Name,
			Status:          op.Status,
			Level:           op.Level,
			TotalPoints:     op.TotalPoints,
			CallsToday:      t.Calls,
			AvgSatisfaction: t.AvgSatisfaction,
		})

		dashboard.Totals.Operators++
		if op.Status != models.OperatorStatusOffline {
			dashboard.Totals.Online++
		}
		if op.Status == models.OperatorStatusInCall {
			dashboard.Totals.InCall++
		}
		dashboard.Totals.CallsToday += t.Calls
		dashboard.Totals.PointsToday += t.Points
		if t.AvgSatisfaction > 0 {
			satisfactionSum += t.AvgSatisfaction
			rated++
		}
	}
	if rated > 0 {
		dashboard.Totals.AvgSatisfaction = satisfactionSum / float64(rated)
	}

	return dashboard, nil
}

// ListTeam returns the manager's active operators
func (s *DashboardService) ListTeam(ctx context.Context, managerID uuid.UUID) ([]models.Operator, error) {
	operators, err := s.repos.WithContext(ctx).Operators.GetByManagerID(managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if operators == nil {
		operators = []models.Operator{}
	}
	return operators, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
