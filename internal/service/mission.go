package service

import (
	"context"
	"fmt"
	"time"

	"callcenter-gamification-backend/internal/database/models"
	"callcenter-gamification-backend/internal/logger"
	"callcenter-gamification-backend/internal/repository"

	"github.com/google/uuid"
)

// CompletedMission is a mission completed by a progress update
type CompletedMission struct {
	MissionID    uuid.UUID `json:"missao_id"`
	Title        string    `json:"titulo"`
	RewardPoints int       `json:"pontos_recompensa"`
}

// MissionProgressResult reports what a progress update changed
type MissionProgressResult struct {
	Advanced  int                `json:"missoes_avancadas"`
	Completed []CompletedMission `json:"missoes_concluidas"`
}

// MissionService advances and lists mission progress
type MissionService struct {
	repos *repository.Repositories
	now   func() time.Time
}

// NewMissionService creates a new mission service
func NewMissionService(repos *repository.Repositories) *MissionService {
	return &MissionService{repos: repos, now: time.Now}
}

// AdvanceProgress adds increment to every open mission of the operator that
// tracks action. A mission crossing its target is completed and its reward
// credited, exactly once per operator and mission.
func (s *MissionService) AdvanceProgress(ctx context.Context, operatorID uuid.UUID, action models.ActionType, increment int) (*MissionProgressResult, error) {
	var result *MissionProgressResult
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		var err error
		result, err = s.advance(tx, operatorID, action, increment)
		return err
	})
	if err != nil {
		return nil, err
	}

	if len(result.Completed) > 0 {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"operator_id": operatorID,
			"action":      action,
			"completed":   len(result.Completed),
		}).Info("missions completed")
	}
	return result, nil
}

func (s *MissionService) advance(tx *repository.Repositories, operatorID uuid.UUID, action models.ActionType, increment int) (*MissionProgressResult, error) {
	result := &MissionProgressResult{Completed: []CompletedMission{}}
	if increment <= 0 {
		return result, nil
	}

	now := s.now()
	candidates, err := tx.Missions.GetCandidatesForOperator(operatorID, action, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load missions: %w", err)
	}

	for _, mission := range candidates {
		progress, err := tx.Missions.IncrementProgress(operatorID, mission.ID, increment)
		if err != nil {
			return nil, fmt.Errorf("failed to update progress of mission %s: %w", mission.ID, err)
		}
		result.Advanced++

		if progress < mission.TargetValue {
			continue
		}

		completed, err := tx.Missions.MarkCompleted(operatorID, mission.ID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to complete mission %s: %w", mission.ID, err)
		}
		if !completed {
			continue
		}
		if _, err := creditPoints(tx, operatorID, mission.RewardPoints); err != nil {
			return nil, err
		}
		result.Completed = append(result.Completed, CompletedMission{
			MissionID:    mission.ID,
			Title:        mission.Title,
			RewardPoints: mission.RewardPoints,
		})
	}

	return result, nil
}

// ListMissions returns the active missions with the operator's progress
func (s *MissionService) ListMissions(ctx context.Context, operatorID uuid.UUID) ([]models.MissionWithProgress, error) {
	missions, err := s.repos.WithContext(ctx).Missions.GetAllWithProgress(operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return missions, nil
}
