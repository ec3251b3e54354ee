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

// PurchaseRequest represents the request to buy a reward
type PurchaseRequest struct {
	RewardID uuid.UUID `json:"recompensa_id" validate:"required"`
}

// PurchaseResponse represents a completed purchase
type PurchaseResponse struct {
	PurchaseID      uuid.UUID `json:"compra_id"`
	PointsSpent     int       `json:"pontos_gastos"`
	PointsRemaining int       `json:"pontos_restantes"`
}

// RewardListResponse represents a paginated reward catalogue
type RewardListResponse struct {
	Rewards  []models.Reward `json:"recompensas"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// PurchaseListResponse represents a paginated purchase history
type PurchaseListResponse struct {
	Purchases []models.Purchase `json:"compras"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// StoreService lists rewards and runs purchases
type StoreService struct {
	repos     *repository.Repositories
	validator *validator.Validate
	now       func() time.Time
}

// NewStoreService creates a new store service
func NewStoreService(repos *repository.Repositories, validator *validator.Validate) *StoreService {
	return &StoreService{repos: repos, validator: validator, now: time.Now}
}

// ListRewards returns the reward catalogue
func (s *StoreService) ListRewards(ctx context.Context, category string, onlyAvailable bool, page, pageSize int) (*RewardListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	rewards, total, err := s.repos.WithContext(ctx).Rewards.List(category, onlyAvailable, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}

	return &RewardListResponse{Rewards: rewards, Total: total, Page: page, PageSize: pageSize}, nil
}

// Purchase buys a reward for the operator. Preconditions are checked in
// order and each rejects the purchase without changing anything.
func (s *StoreService) Purchase(ctx context.Context, operatorID uuid.UUID, req *PurchaseRequest) (*PurchaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var resp *PurchaseResponse
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		reward, err := tx.Rewards.GetByIDForUpdate(req.RewardID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRewardNotFound
			}
			return fmt.Errorf("failed to load reward: %w", err)
		}
		if !reward.IsAvailable {
			return apperrors.ErrRewardUnavailable
		}

		owned, err := tx.Purchases.ExistsActive(operatorID, reward.ID)
		if err != nil {
			return fmt.Errorf("failed to check previous purchases: %w", err)
		}
		if owned {
			return apperrors.ErrRewardAlreadyOwned
		}

		op, err := tx.Operators.GetByIDForUpdate(operatorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrOperatorNotFound
			}
			return fmt.Errorf("failed to load operator: %w", err)
		}
		if op.TotalPoints < reward.Price {
			return apperrors.ErrInsufficientPoints
		}
		if reward.HasFiniteStock() && *reward.Stock <= 0 {
			return apperrors.ErrRewardOutOfStock
		}

		debited, err := tx.Operators.DebitPoints(operatorID, reward.Price)
		if err != nil {
			return fmt.Errorf("failed to debit points: %w", err)
		}
		if !debited {
			return apperrors.ErrInsufficientPoints
		}

		if reward.HasFiniteStock() {
			taken, err := tx.Rewards.DecrementStock(reward.ID)
			if err != nil {
				return fmt.Errorf("failed to update stock: %w", err)
			}
			if !taken {
				return apperrors.ErrRewardOutOfStock
			}
		}

		purchase := &models.Purchase{
			OperatorID:  operatorID,
			RewardID:    reward.ID,
			PricePaid:   reward.Price,
			Status:      models.PurchaseStatusApproved,
			PurchasedAt: s.now(),
		}
		if err := tx.Purchases.Create(purchase); err != nil {
			return fmt.Errorf("failed to record purchase: %w", err)
		}

		resp = &PurchaseResponse{
			PurchaseID:      purchase.ID,
			PointsSpent:     reward.Price,
			PointsRemaining: op.TotalPoints - reward.Price,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"reward_id":   req.RewardID,
		"purchase_id": resp.PurchaseID,
		"points":      resp.PointsSpent,
	}).Info("reward purchased")

	return resp, nil
}

// ListPurchases returns the operator's purchases, newest first
func (s *StoreService) ListPurchases(ctx context.Context, operatorID uuid.UUID, page, pageSize int) (*PurchaseListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	purchases, total, err := s.repos.WithContext(ctx).Purchases.ListByOperator(operatorID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return &PurchaseListResponse{Purchases: purchases, Total: total, Page: page, PageSize: pageSize}, nil
}
