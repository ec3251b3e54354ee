package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"callcenter-gamification-backend/internal/database/models"
	apperrors "callcenter-gamification-backend/internal/errors"
	"callcenter-gamification-backend/internal/logger"
	"callcenter-gamification-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnlockedAchievement is an achievement unlocked by an evaluation
type UnlockedAchievement struct {
	AchievementID uuid.UUID `json:"conquista_id"`
	Title         string    `json:"titulo"`
	Icon          string    `json:"icone"`
	RewardPoints  int       `json:"pontos_recompensa"`
}

// AchievementCheckResponse represents the outcome of an achievement evaluation
type AchievementCheckResponse struct {
	Unlocked []UnlockedAchievement `json:"novas_conquistas"`
	Total    int                   `json:"total_novas"`
}

// AchievementService evaluates and lists achievements
type AchievementService struct {
	repos *repository.Repositories
	now   func() time.Time
}

// NewAchievementService creates a new achievement service
func NewAchievementService(repos *repository.Repositories) *AchievementService {
	return &AchievementService{repos: repos, now: time.Now}
}

// Evaluate unlocks every active achievement the operator now qualifies for
// and credits their rewards. Statistics are read once, before any reward
// is credited.
func (s *AchievementService) Evaluate(ctx context.Context, operatorID uuid.UUID) (*AchievementCheckResponse, error) {
	resp := &AchievementCheckResponse{Unlocked: []UnlockedAchievement{}}

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		stats, err := loadStatistics(tx, operatorID, s.now())
		if err != nil {
			return err
		}

		locked, err := tx.Achievements.GetLockedForOperator(operatorID)
		if err != nil {
			return fmt.Errorf("failed to load achievements: %w", err)
		}

		now := s.now()
		for _, achievement := range locked {
			if !MeetsCondition(achievement.ConditionType, achievement.Threshold, *stats) {
				continue
			}
			inserted, err := tx.Achievements.Unlock(operatorID, achievement.ID, now)
			if err != nil {
				return fmt.Errorf("failed to unlock achievement %s: %w", achievement.ID, err)
			}
			if !inserted {
				continue
			}
			if _, err := creditPoints(tx, operatorID, achievement.RewardPoints); err != nil {
				return err
			}
			resp.Unlocked = append(resp.Unlocked, UnlockedAchievement{
				AchievementID: achievement.ID,
				Title:         achievement.Title,
				Icon:          achievement.Icon,
				RewardPoints:  achievement.RewardPoints,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp.Total = len(resp.Unlocked)
	if resp.Total > 0 {
		logger.WithContext(ctx).WithField("unlocked", resp.Total).Info("achievements unlocked")
	}
	return resp, nil
}

// ListAchievements returns the active achievements with the operator's unlock state
func (s *AchievementService) ListAchievements(ctx context.Context, operatorID uuid.UUID) ([]models.AchievementWithStatus, error) {
	achievements, err := s.repos.WithContext(ctx).Achievements.GetAllWithStatus(operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return achievements, nil
}

// GetStatistics returns the operator's aggregate statistics
func (s *AchievementService) GetStatistics(ctx context.Context, operatorID uuid.UUID) (*OperatorStatistics, error) {
	return loadStatistics(s.repos.WithContext(ctx), operatorID, s.now())
}

func loadStatistics(repos *repository.Repositories, operatorID uuid.UUID, now time.Time) (*OperatorStatistics, error) {
	op, err := repos.Operators.GetByID(operatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to load operator: %w", err)
	}

	calls, err := repos.Stats.OperatorCallStats(operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load call statistics: %w", err)
	}

	return &OperatorStatistics{
		TotalCalls:       calls.TotalCalls,
		ResolvedCalls:    calls.ResolvedCalls,
		RatedCalls:       calls.RatedCalls,
		AvgHandleSeconds: calls.AvgHandleSeconds,
		AvgSatisfaction:  calls.AvgSatisfaction,
		TotalPoints:      op.TotalPoints,
		Level:            op.Level,
		OnlineSeconds:    op.OnlineSecondsAt(now),
	}, nil
}
