package service

import (
	"context"

	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CallServiceInterface defines the interface for the call lifecycle
type CallServiceInterface interface {
	StartCall(ctx context.Context, operatorID uuid.UUID, req *StartCallRequest) (*StartCallResponse, error)
	FinalizeCall(ctx context.Context, operatorID uuid.UUID, req *FinalizeCallRequest) (*FinalizeCallResponse, error)
	GetActiveCall(ctx context.Context, operatorID uuid.UUID) (*models.Call, error)
	ListCalls(ctx context.Context, operatorID uuid.UUID, page, pageSize int) (*CallListResponse, error)
}

// MissionProgressor advances mission progress for a recorded action
type MissionProgressor interface {
	AdvanceProgress(ctx context.Context, operatorID uuid.UUID, action models.ActionType, increment int) (*MissionProgressResult, error)
}

// MissionServiceInterface defines the interface for mission progress
type MissionServiceInterface interface {
	MissionProgressor
	ListMissions(ctx context.Context, operatorID uuid.UUID) ([]models.MissionWithProgress, error)
}

// AchievementServiceInterface defines the interface for achievement evaluation
type AchievementServiceInterface interface {
	Evaluate(ctx context.Context, operatorID uuid.UUID) (*AchievementCheckResponse, error)
	ListAchievements(ctx context.Context, operatorID uuid.UUID) ([]models.AchievementWithStatus, error)
	GetStatistics(ctx context.Context, operatorID uuid.UUID) (*OperatorStatistics, error)
}

// StoreServiceInterface defines the interface for the reward store
type StoreServiceInterface interface {
	ListRewards(ctx context.Context, category string, onlyAvailable bool, page, pageSize int) (*RewardListResponse, error)
	Purchase(ctx context.Context, operatorID uuid.UUID, req *PurchaseRequest) (*PurchaseResponse, error)
	ListPurchases(ctx context.Context, operatorID uuid.UUID, page, pageSize int) (*PurchaseListResponse, error)
}

// RankingServiceInterface defines the interface for the leaderboard
type RankingServiceInterface interface {
	GetRanking(ctx context.Context, period string, limit int) (*RankingResponse, error)
	Recalculate(ctx context.Context) (*RecalculateResponse, error)
}

// DashboardServiceInterface defines the interface for dashboard views
type DashboardServiceInterface interface {
	OperatorDashboard(ctx context.Context, operatorID uuid.UUID) (*OperatorDashboard, error)
	ManagerDashboard(ctx context.Context, managerID uuid.UUID) (*ManagerDashboard, error)
	ListTeam(ctx context.Context, managerID uuid.UUID) ([]models.Operator, error)
}

// GoalServiceInterface defines the interface for goals
type GoalServiceInterface interface {
	CreateGoal(ctx context.Context, managerID uuid.UUID, req *CreateGoalRequest) (*models.Goal, error)
	ListManagerGoals(ctx context.Context, managerID uuid.UUID, page, pageSize int) (*GoalListResponse, error)
	ListOperatorGoals(ctx context.Context, operatorID uuid.UUID) ([]models.Goal, error)
	UpdateProgress(ctx context.Context, managerID, goalID uuid.UUID, req *UpdateGoalProgressRequest) (*GoalProgressResponse, error)
	DeactivateGoal(ctx context.Context, managerID, goalID uuid.UUID) error
}

// OperatorServiceInterface defines the interface for operator self-service
type OperatorServiceInterface interface {
	GetProfile(ctx context.Context, operatorID uuid.UUID) (*models.Operator, error)
	UpdateStatus(ctx context.Context, operatorID uuid.UUID, req *UpdateStatusRequest) (*models.Operator, error)
}

var (
	_ CallServiceInterface        = (*CallService)(nil)
	_ MissionServiceInterface     = (*MissionService)(nil)
	_ AchievementServiceInterface = (*AchievementService)(nil)
	_ StoreServiceInterface       = (*StoreService)(nil)
	_ RankingServiceInterface     = (*RankingService)(nil)
	_ DashboardServiceInterface   = (*DashboardService)(nil)
	_ GoalServiceInterface        = (*GoalService)(nil)
	_ OperatorServiceInterface    = (*OperatorService)(nil)
)
