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

// UpdateStatusRequest represents an operator's explicit status change
type UpdateStatusRequest struct {
	Status models.OperatorStatus `json:"status" validate:"required"`
}

// OperatorService serves the operator's own profile and status
type OperatorService struct {
	repos     *repository.Repositories
	validator *validator.Validate
	now       func() time.Time
}

// NewOperatorService creates a new operator service
func NewOperatorService(repos *repository.Repositories, validator *validator.Validate) *OperatorService {
	return &OperatorService{repos: repos, validator: validator, now: time.Now}
}

// GetProfile returns the operator
func (s *OperatorService) GetProfile(ctx context.Context, operatorID uuid.UUID) (*models.Operator, error) {
	op, err := s.repos.WithContext(ctx).Operators.GetByID(operatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to load operator: %w", err)
	}
	return op, nil
}

// UpdateStatus moves the operator to awaiting, break or offline. In-call is
// only entered by starting a call and cannot be left here.
func (s *OperatorService) UpdateStatus(ctx context.Context, operatorID uuid.UUID, req *UpdateStatusRequest) (*models.Operator, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown status")
	}
	if !req.Status.IsSelfSelectable() {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	repos := s.repos.WithContext(ctx)
	op, err := repos.Operators.GetByID(operatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to load operator: %w", err)
	}
	if op.Status == models.OperatorStatusInCall {
		return nil, apperrors.ErrOperatorInCall
	}
	if op.Status == req.Status {
		return op, nil
	}

	from := op.Status
	op.ApplyStatus(req.Status, s.now())
	updated, err := repos.Operators.UpdateStatusFields(op, from)
	if err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	if !updated {
		// A call was started concurrently.
		return nil, apperrors.ErrOperatorInCall
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"from": from,
		"to":   req.Status,
	}).Info("operator status changed")

	return op, nil
}
