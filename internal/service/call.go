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
	"gorm.io/gorm"
)

// StartCallRequest represents the request to start a call
type StartCallRequest struct {
	CustomerNumber string               `json:"numero_cliente" validate:"required,max=30"`
	Direction      models.CallDirection `json:"tipo_chamada" validate:"omitempty,oneof=entrada saida interna"`
}

// StartCallResponse represents the response of a started call
type StartCallResponse struct {
	CallID     uuid.UUID             `json:"chamada_id"`
	OperatorID uuid.UUID             `json:"operador_id"`
	Status     models.OperatorStatus `json:"status"`
	StartedAt  time.Time             `json:"inicio"`
}

// FinalizeCallRequest represents the request to finalize a call
type FinalizeCallRequest struct {
	CallID       uuid.UUID `json:"chamada_id" validate:"required"`
	Satisfaction *int      `json:"satisfacao_cliente" validate:"omitempty,min=1,max=5"`
	Resolved     bool      `json:"resolvida"`
	Notes        string    `json:"observacoes" validate:"max=2000"`
}

// FinalizeCallResponse represents the outcome of a finalized call.
// Warnings lists bookkeeping steps that failed after the call was saved.
type FinalizeCallResponse struct {
	DurationSeconds   int                   `json:"duracao_segundos"`
	PointsEarned      int                   `json:"pontos_ganhos"`
	Status            models.OperatorStatus `json:"status"`
	Level             *LevelChange          `json:"nivel,omitempty"`
	CompletedMissions []CompletedMission    `json:"missoes_concluidas,omitempty"`
	Warnings          []string              `json:"avisos,omitempty"`
}

// CallListResponse represents a paginated call history
type CallListResponse struct {
	Calls    []models.Call `json:"chamadas"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// CallService runs the call lifecycle
type CallService struct {
	repos     *repository.Repositories
	missions  MissionProgressor
	validator *validator.Validate
	now       func() time.Time
}

// NewCallService creates a new call service
func NewCallService(repos *repository.Repositories, missions MissionProgressor, validator *validator.Validate) *CallService {
	return &CallService{
		repos:     repos,
		missions:  missions,
		validator: validator,
		now:       time.Now,
	}
}

// StartCall opens a call for an operator who is awaiting one. The status
// change is a conditional update, so two concurrent starts cannot both win.
func (s *CallService) StartCall(ctx context.Context, operatorID uuid.UUID, req *StartCallRequest) (*StartCallResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	direction := req.Direction
	if direction == "" {
		direction = models.CallDirectionInbound
	}

	call := &models.Call{
		OperatorID:     operatorID,
		CustomerNumber: req.CustomerNumber,
		Direction:      direction,
		Status:         models.CallStatusInProgress,
		StartedAt:      s.now(),
	}

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		changed, err := tx.Operators.TransitionStatus(operatorID, models.OperatorStatusAwaitingCall, models.OperatorStatusInCall)
		if err != nil {
			return fmt.Errorf("failed to update operator status: %w", err)
		}
		if !changed {
			if _, err := tx.Operators.GetByID(operatorID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrOperatorNotFound
				}
				return fmt.Errorf("failed to load operator: %w", err)
			}
			return apperrors.ErrOperatorNotAvailable
		}

		if err := tx.Calls.Create(call); err != nil {
			return fmt.Errorf("failed to create call: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("call_id", call.ID).Info("call started")

	return &StartCallResponse{
		CallID:     call.ID,
		OperatorID: operatorID,
		Status:     models.OperatorStatusInCall,
		StartedAt:  call.StartedAt,
	}, nil
}

// FinalizeCall closes an in-progress call of the operator, credits its
// points and returns the operator to awaiting a call, all in one
// transaction. Mission progress runs afterwards; its failures are reported
// as warnings and never undo the finalization.
func (s *CallService) FinalizeCall(ctx context.Context, operatorID uuid.UUID, req *FinalizeCallRequest) (*FinalizeCallResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	resp := &FinalizeCallResponse{Status: models.OperatorStatusAwaitingCall}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		call, err := tx.Calls.GetByIDForUpdate(req.CallID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCallNotFound
			}
			return fmt.Errorf("failed to load call: %w", err)
		}
		// another operator's call is reported as missing
		if call.OperatorID != operatorID {
			return apperrors.ErrCallNotFound
		}
		if call.Status != models.CallStatusInProgress {
			return apperrors.ErrCallAlreadyFinalized
		}

		ended := s.now()
		duration := int(ended.Sub(call.StartedAt).Seconds())
		if duration < 0 {
			duration = 0
		}
		points := CalculateCallPoints(req.Resolved, req.Satisfaction)

		call.EndedAt = &ended
		call.DurationSeconds = duration
		call.Satisfaction = req.Satisfaction
		call.Resolved = req.Resolved
		call.Notes = req.Notes
		call.PointsAwarded = points

		finalized, err := tx.Calls.Finalize(call)
		if err != nil {
			return fmt.Errorf("failed to finalize call: %w", err)
		}
		if !finalized {
			return apperrors.ErrCallAlreadyFinalized
		}

		level, err := creditPoints(tx, operatorID, points)
		if err != nil {
			return err
		}

		if _, err := tx.Operators.TransitionStatus(operatorID, models.OperatorStatusInCall, models.OperatorStatusAwaitingCall); err != nil {
			return fmt.Errorf("failed to update operator status: %w", err)
		}

		resp.DurationSeconds = duration
		resp.PointsEarned = points
		resp.Level = level
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"call_id": req.CallID,
		"points":  resp.PointsEarned,
	})
	log.Info("call finalized")

	actions := []models.ActionType{models.ActionCall}
	if req.Resolved {
		actions = append(actions, models.ActionResolvedCall)
	}
	for _, action := range actions {
		result, err := s.missions.AdvanceProgress(ctx, operatorID, action, 1)
		if err != nil {
			log.WithError(err).WithField("action", action).Warn("mission progress failed")
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("progresso de missoes (%s) nao atualizado", action))
			continue
		}
		resp.CompletedMissions = append(resp.CompletedMissions, result.Completed...)
	}

	return resp, nil
}

// GetActiveCall returns the operator's in-progress call
func (s *CallService) GetActiveCall(ctx context.Context, operatorID uuid.UUID) (*models.Call, error) {
	call, err := s.repos.WithContext(ctx).Calls.GetInProgressByOperator(operatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActiveCallNotFound
		}
		return nil, fmt.Errorf("failed to load active call: %w", err)
	}
	return call, nil
}

// ListCalls returns the operator's call history, newest first
func (s *CallService) ListCalls(ctx context.Context, operatorID uuid.UUID, page, pageSize int) (*CallListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	calls, total, err := s.repos.WithContext(ctx).Calls.ListByOperator(operatorID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}

	return &CallListResponse{
		Calls:    calls,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
