package repository

import (
	"time"

	"callcenter-gamification-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OperatorRepositoryInterface defines the interface for operator repository operations
type OperatorRepositoryInterface interface {
	Create(operator *models.Operator) error
	GetByID(id uuid.UUID) (*models.Operator, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Operator, error)
	GetByEmail(email string) (*models.Operator, error)
	GetByManagerID(managerID uuid.UUID) ([]models.Operator, error)
	GetAllActive() ([]models.Operator, error)
	Update(operator *models.Operator) error
	TransitionStatus(id uuid.UUID, from, to models.OperatorStatus) (bool, error)
	UpdateStatusFields(operator *models.Operator, from models.OperatorStatus) (bool, error)
	AddPoints(id uuid.UUID, points int) error
	DebitPoints(id uuid.UUID, amount int) (bool, error)
	UpdateProgression(id uuid.UUID, level, currentXP, nextLevelXP int) error
}

// ManagerRepositoryInterface defines the interface for manager repository operations
type ManagerRepositoryInterface interface {
	Create(manager *models.Manager) error
	GetByID(id uuid.UUID) (*models.Manager, error)
	GetByEmail(email string) (*models.Manager, error)
}

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	Create(session *models.Session) error
	GetByID(id uuid.UUID) (*models.Session, error)
	Deactivate(id uuid.UUID) error
	DeleteExpired(t time.Time) (int64, error)
}

// CallRepositoryInterface defines the interface for call repository operations
type CallRepositoryInterface interface {
	Create(call *models.Call) error
	GetByID(id uuid.UUID) (*models.Call, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Call, error)
	GetInProgressByOperator(operatorID uuid.UUID) (*models.Call, error)
	ListByOperator(operatorID uuid.UUID, limit, offset int) ([]models.Call, int64, error)
	Finalize(call *models.Call) (bool, error)
}

// MissionRepositoryInterface defines the interface for mission repository operations
type MissionRepositoryInterface interface {
	Create(mission *models.Mission) error
	GetByID(id uuid.UUID) (*models.Mission, error)
	GetByTitle(title string) (*models.Mission, error)
	Update(mission *models.Mission) error
	GetCandidatesForOperator(operatorID uuid.UUID, action models.ActionType, now time.Time) ([]models.MissionWithProgress, error)
	GetAllWithProgress(operatorID uuid.UUID) ([]models.MissionWithProgress, error)
	IncrementProgress(operatorID, missionID uuid.UUID, increment int) (int, error)
	MarkCompleted(operatorID, missionID uuid.UUID, at time.Time) (bool, error)
	GetProgress(operatorID, missionID uuid.UUID) (*models.MissionProgress, error)
}

// AchievementRepositoryInterface defines the interface for achievement repository operations
type AchievementRepositoryInterface interface {
	Create(achievement *models.Achievement) error
	GetByID(id uuid.UUID) (*models.Achievement, error)
	GetByTitle(title string) (*models.Achievement, error)
	Update(achievement *models.Achievement) error
	GetLockedForOperator(operatorID uuid.UUID) ([]models.Achievement, error)
	GetAllWithStatus(operatorID uuid.UUID) ([]models.AchievementWithStatus, error)
	Unlock(operatorID, achievementID uuid.UUID, at time.Time) (bool, error)
	CountUnlocked(operatorID uuid.UUID) (int64, error)
}

// RankingRepositoryInterface defines the interface for ranking repository operations
type RankingRepositoryInterface interface {
	GetOrdered(period RankingPeriod, limit int) ([]models.RankingEntry, error)
	GetByOperatorID(operatorID uuid.UUID) (*models.Ranking, error)
	UpsertMany(rankings []models.Ranking) error
}

// RewardRepositoryInterface defines the interface for reward repository operations
type RewardRepositoryInterface interface {
	Create(reward *models.Reward) error
	GetByID(id uuid.UUID) (*models.Reward, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Reward, error)
	GetByTitle(title string) (*models.Reward, error)
	Update(reward *models.Reward) error
	List(category string, onlyAvailable bool, limit, offset int) ([]models.Reward, int64, error)
	DecrementStock(id uuid.UUID) (bool, error)
}

// PurchaseRepositoryInterface defines the interface for purchase repository operations
type PurchaseRepositoryInterface interface {
	Create(purchase *models.Purchase) error
	ExistsActive(operatorID, rewardID uuid.UUID) (bool, error)
	ListByOperator(operatorID uuid.UUID, limit, offset int) ([]models.Purchase, int64, error)
}

// GoalRepositoryInterface defines the interface for goal repository operations
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	GetByID(id uuid.UUID) (*models.Goal, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Goal, error)
	ListByManager(managerID uuid.UUID, limit, offset int) ([]models.Goal, int64, error)
	ListActiveByOperator(operatorID uuid.UUID) ([]models.Goal, error)
	SetProgress(id uuid.UUID, value float64) error
	MarkCompleted(id uuid.UUID, at time.Time) (bool, error)
	Deactivate(id uuid.UUID) error
}

// StatsRepositoryInterface defines the interface for aggregate queries
type StatsRepositoryInterface interface {
	OperatorCallStats(operatorID uuid.UUID) (*CallStats, error)
	OperatorCallStatsSince(operatorID uuid.UUID, since time.Time) (*CallStats, error)
	TotalsSince(since time.Time) ([]OperatorCallTotals, error)
	TeamTotalsSince(managerID uuid.UUID, since time.Time) ([]OperatorCallTotals, error)
}

var (
	_ OperatorRepositoryInterface    = (*OperatorRepository)(nil)
	_ ManagerRepositoryInterface     = (*ManagerRepository)(nil)
	_ SessionRepositoryInterface     = (*SessionRepository)(nil)
	_ CallRepositoryInterface        = (*CallRepository)(nil)
	_ MissionRepositoryInterface     = (*MissionRepository)(nil)
	_ AchievementRepositoryInterface = (*AchievementRepository)(nil)
	_ RankingRepositoryInterface     = (*RankingRepository)(nil)
	_ RewardRepositoryInterface      = (*RewardRepository)(nil)
	_ PurchaseRepositoryInterface    = (*PurchaseRepository)(nil)
	_ GoalRepositoryInterface        = (*GoalRepository)(nil)
	_ StatsRepositoryInterface       = (*StatsRepository)(nil)
)
