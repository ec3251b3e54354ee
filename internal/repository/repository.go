package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles every repository over one gorm handle, so a workflow
// can run all of its reads and writes inside a single transaction.
type Repositories struct {
	db *gorm.DB

	Operators    *OperatorRepository
	Managers     *ManagerRepository
	Sessions     *SessionRepository
	Calls        *CallRepository
	Missions     *MissionRepository
	Achievements *AchievementRepository
	Rankings     *RankingRepository
	Rewards      *RewardRepository
	Purchases    *PurchaseRepository
	Goals        *GoalRepository
	Stats        *StatsRepository
}

// NewRepositories creates the repository bundle for db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:           db,
		Operators:    NewOperatorRepository(db),
		Managers:     NewManagerRepository(db),
		Sessions:     NewSessionRepository(db),
		Calls:        NewCallRepository(db),
		Missions:     NewMissionRepository(db),
		Achievements: NewAchievementRepository(db),
		Rankings:     NewRankingRepository(db),
		Rewards:      NewRewardRepository(db),
		Purchases:    NewPurchaseRepository(db),
		Goals:        NewGoalRepository(db),
		Stats:        NewStatsRepository(db),
	}
}

// DB returns the underlying gorm handle
func (r *Repositories) DB() *gorm.DB {
	return r.db
}

// WithContext returns a bundle whose queries are bound to ctx
func (r *Repositories) WithContext(ctx context.Context) *Repositories {
	return NewRepositories(r.db.WithContext(ctx))
}

// Transaction runs fn with a bundle bound to a new transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
