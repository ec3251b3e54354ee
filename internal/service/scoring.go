package service

import (
	"callcenter-gamification-backend/internal/database/models"
)

// Call scoring
const (
	BaseCallPoints       = 10
	ResolvedBonusPoints  = 20
	SatisfiedBonusPoints = 15 // satisfaction >= 4
	DelightedBonusPoints = 10 // satisfaction == 5, on top of the satisfied bonus
)

// Level curve: reaching level L+1 from level L takes baseLevelXP + levelXPStep*(L-1)
const (
	baseLevelXP = 100
	levelXPStep = 50
)

// CalculateCallPoints returns the points earned by a finalized call
func CalculateCallPoints(resolved bool, satisfaction *int) int {
	points := BaseCallPoints
	if resolved {
		points += ResolvedBonusPoints
	}
	if satisfaction != nil {
		if *satisfaction >= 4 {
			points += SatisfiedBonusPoints
		}
		if *satisfaction == 5 {
			points += DelightedBonusPoints
		}
	}
	return points
}

// XPForLevel returns the XP an operator at level needs to reach the next level
func XPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return baseLevelXP + levelXPStep*(level-1)
}

// ApplyLevelUps promotes an operator for as long as its XP covers the
// requirement of its level, carrying the remainder over
func ApplyLevelUps(level, currentXP int) (newLevel, newXP, nextLevelXP int) {
	if level < 1 {
		level = 1
	}
	for currentXP >= XPForLevel(level) {
		currentXP -= XPForLevel(level)
		level++
	}
	return level, currentXP, XPForLevel(level)
}

// OperatorStatistics are the aggregate figures achievements are evaluated against
type OperatorStatistics struct {
	TotalCalls       int64   `json:"total_chamadas"`
	ResolvedCalls    int64   `json:"chamadas_resolvidas"`
	RatedCalls       int64   `json:"chamadas_avaliadas"`
	AvgHandleSeconds float64 `json:"tempo_medio_atendimento"`
	AvgSatisfaction  float64 `json:"satisfacao_media"`
	TotalPoints      int     `json:"pontos_totais"`
	Level            int     `json:"nivel"`
	OnlineSeconds    int64   `json:"tempo_online_segundos"`
}

// MeetsCondition reports whether stats satisfy an achievement condition.
// Average handle time is "lower is better"; every other condition is
// "at least threshold". Averages never qualify without samples.
func MeetsCondition(condition models.AchievementCondition, threshold float64, stats OperatorStatistics) bool {
	switch condition {
	case models.ConditionCallCount:
		return float64(stats.TotalCalls) >= threshold
	case models.ConditionAvgHandleTime:
		return stats.TotalCalls > 0 && stats.AvgHandleSeconds <= threshold
	case models.ConditionSatisfaction:
		return stats.RatedCalls > 0 && stats.AvgSatisfaction >= threshold
	case models.ConditionResolutionCount:
		return float64(stats.ResolvedCalls) >= threshold
	case models.ConditionPoints:
		return float64(stats.TotalPoints) >= threshold
	case models.ConditionLevel:
		return float64(stats.Level) >= threshold
	default:
		return false
	}
}
