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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// CreateGoalRequest represents the request to assign a goal to an operator
type CreateGoalRequest struct {
	OperatorID   uuid.UUID         `json:"operador_id" validate:"required"`
	Type         models.GoalType   `json:"tipo" validate:"required,oneof=chamadas resolucoes satisfacao pontos"`
	Title        string            `json:"titulo" validate:"required,max=150"`
	TargetValue  float64           `json:"valor_alvo" validate:"gt=0"`
	Period       models.GoalPeriod `json:"periodo" validate:"required,oneof=diaria semanal mensal"`
	StartDate    string            `json:"data_inicio" validate:"required,datetime=2006-01-02"`
	EndDate      string            `json:"data_fim" validate:"required,datetime=2006-01-02"`
	RewardPoints int               `json:"pontos_recompensa" validate:"min=0"`
}

// UpdateGoalProgressRequest represents the request to set a goal's progress
type UpdateGoalProgressRequest struct {
	CurrentValue float64 `json:"valor_atual" validate:"min=0"`
}

// GoalProgressResponse represents a goal after a progress update
type GoalProgressResponse struct {
	Goal          *models.Goal `json:"meta"`
	JustCompleted bool         `json:"concluida_agora"`
	PointsAwarded int          `json:"pontos_creditados"`
}

// GoalListResponse represents a paginated goal list
type GoalListResponse struct {
	Goals    []models.Goal `json:"metas"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// GoalService manages manager-assigned goals
type GoalService struct {
	repos     *repository.Repositories
	validator *validator.Validate
	now       func() time.Time
}

// NewGoalService creates a new goal service
func NewGoalService(repos *repository.Repositories, validator *validator.Validate) *GoalService {
	return &GoalService{repos: repos, validator: validator, now: time.Now}
}

// CreateGoal assigns a goal to an operator of the manager's team
func (s *GoalService) CreateGoal(ctx context.Context, managerID uuid.UUID, req *CreateGoalRequest) (*models.Goal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("data_inicio", "invalid date")
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("data_fim", "invalid date")
	}
	if end.Before(start) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	repos := s.repos.WithContext(ctx)
	op, err := repos.Operators.GetByID(req.OperatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to load operator: %w", err)
	}
	if op.ManagerID == nil || *op.ManagerID != managerID {
		return nil, apperrors.ErrOperatorNotInTeam
	}

	goal := &models.Goal{
		ManagerID:    managerID,
		OperatorID:   op.ID,
		Type:         req.Type,
		Title:        req.Title,
		TargetValue:  req.TargetValue,
		Period:       req.Period,
		StartDate:    datatypes.Date(start),
		EndDate:      datatypes.Date(end),
		RewardPoints: req.RewardPoints,
		IsActive:     true,
	}
	if err := repos.Goals.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"goal_id":     goal.ID,
		"operator_id": op.ID,
	}).Info("goal created")

	return goal, nil
}

// ListManagerGoals returns the goals a manager assigned
func (s *GoalService) ListManagerGoals(ctx context.Context, managerID uuid.UUID, page, pageSize int) (*GoalListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	goals, total, err := s.repos.WithContext(ctx).Goals.ListByManager(managerID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return &GoalListResponse{Goals: goals, Total: total, Page: page, PageSize: pageSize}, nil
}

// ListOperatorGoals returns the operator's active goals
func (s *GoalService) ListOperatorGoals(ctx context.Context, operatorID uuid.UUID) ([]models.Goal, error) {
	goals, err := s.repos.WithContext(ctx).Goals.ListActiveByOperator(operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	return goals, nil
}

// UpdateProgress sets a goal's current value. The first update that reaches
// the target completes the goal and credits its reward.
func (s *GoalService) UpdateProgress(ctx context.Context, managerID, goalID uuid.UUID, req *UpdateGoalProgressRequest) (*GoalProgressResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	resp := &GoalProgressResponse{}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		goal, err := tx.Goals.GetByIDForUpdate(goalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGoalNotFound
			}
			return fmt.Errorf("failed to load goal: %w", err)
		}
		if goal.ManagerID != managerID {
			return apperrors.ErrGoalNotFound
		}
		if !goal.IsActive {
			return apperrors.ErrGoalInactive
		}

		if err := tx.Goals.SetProgress(goal.ID, req.CurrentValue); err != nil {
			return fmt.Errorf("failed to update goal progress: %w", err)
		}
		goal.CurrentValue = req.CurrentValue

		if req.CurrentValue >= goal.TargetValue && !goal.Completed {
			now := s.now()
			completed, err := tx.Goals.MarkCompleted(goal.ID, now)
			if err != nil {
				return fmt.Errorf("failed to complete goal: %w", err)
			}
			if completed {
				if _, err := creditPoints(tx, goal.OperatorID, goal.RewardPoints); err != nil {
					return err
				}
				goal.Completed = true
				goal.CompletedAt = &now
				resp.JustCompleted = true
				resp.PointsAwarded = goal.RewardPoints
			}
		}

		resp.Goal = goal
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resp.JustCompleted {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"goal_id": goalID,
			"points":  resp.PointsAwarded,
		}).Info("goal completed")
	}
	return resp, nil
}

// DeactivateGoal deactivates one of the manager's goals
func (s *GoalService) DeactivateGoal(ctx context.Context, managerID, goalID uuid.UUID) error {
	repos := s.repos.WithContext(ctx)

	goal, err := repos.Goals.GetByID(goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGoalNotFound
		}
		return fmt.Errorf("failed to load goal: %w", err)
	}
	if goal.ManagerID != managerID {
		return apperrors.ErrGoalNotFound
	}

	if err := repos.Goals.Deactivate(goalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGoalNotFound
		}
		return fmt.Errorf("failed to deactivate goal: %w", err)
	}
	return nil
}
