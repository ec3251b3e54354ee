package service

import (
	"errors"
	"fmt"

	apperrors "callcenter-gamification-backend/internal/errors"
	"callcenter-gamification-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LevelChange describes the progression of an operator after a credit
type LevelChange struct {
	Level       int  `json:"nivel"`
	CurrentXP   int  `json:"xp_atual"`
	NextLevelXP int  `json:"xp_proximo_nivel"`
	LeveledUp   bool `json:"subiu_nivel"`
}

// creditPoints adds points and the same amount of XP to an operator inside
// tx, then promotes the operator while its XP covers the level requirement.
// The points column is only touched by the atomic increment.
func creditPoints(tx *repository.Repositories, operatorID uuid.UUID, points int) (*LevelChange, error) {
	if points <= 0 {
		return nil, nil
	}

	if err := tx.Operators.AddPoints(operatorID, points); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to credit points: %w", err)
	}

	op, err := tx.Operators.GetByIDForUpdate(operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock operator: %w", err)
	}

	level, xp, next := ApplyLevelUps(op.Level, op.CurrentXP)
	change := &LevelChange{
		Level:       level,
		CurrentXP:   xp,
		NextLevelXP: next,
		LeveledUp:   level > op.Level,
	}
	if level == op.Level && next == op.NextLevelXP {
		return change, nil
	}

	if err := tx.Operators.UpdateProgression(operatorID, level, xp, next); err != nil {
		return nil, fmt.Errorf("failed to update level: %w", err)
	}
	return change, nil
}
