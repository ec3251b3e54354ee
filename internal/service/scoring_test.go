package service

import (
	"fmt"
	"testing"

	"callcenter-gamification-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestCalculateCallPoints(t *testing.T) {
	cases := []struct {
		resolved     bool
		satisfaction *int
		want         int
	}{
		{false, nil, 10},
		{false, intPtr(1), 10},
		{false, intPtr(2), 10},
		{false, intPtr(3), 10},
		{false, intPtr(4), 25},
		{false, intPtr(5), 35},
		{true, nil, 30},
		{true, intPtr(1), 30},
		{true, intPtr(2), 30},
		{true, intPtr(3), 30},
		{true, intPtr(4), 45},
		{true, intPtr(5), 55},
	}

	allowed := map[int]bool{10: true, 25: true, 30: true, 35: true, 40: true, 45: true, 55: true}
	for _, tc := range cases {
		sat := "nil"
		if tc.satisfaction != nil {
			sat = fmt.Sprint(*tc.satisfaction)
		}
		t.Run(fmt.Sprintf("resolved=%v satisfaction=%s", tc.resolved, sat), func(t *testing.T) {
			got := CalculateCallPoints(tc.resolved, tc.satisfaction)
			assert.Equal(t, tc.want, got)
			assert.True(t, allowed[got])
		})
	}
}

func TestLevelCurve(t *testing.T) {
	assert.Equal(t, 100, XPForLevel(1))
	assert.Equal(t, 150, XPForLevel(2))
	assert.Equal(t, 300, XPForLevel(5))

	t.Run("exact requirement levels up with zero carry", func(t *testing.T) {
		for level := 1; level <= 10; level++ {
			newLevel, xp, next := ApplyLevelUps(level, XPForLevel(level))
			assert.Equal(t, level+1, newLevel)
			assert.Equal(t, 0, xp)
			assert.Equal(t, XPForLevel(level+1), next)
		}
	})

	t.Run("below requirement keeps level", func(t *testing.T) {
		level, xp, next := ApplyLevelUps(1, 99)
		assert.Equal(t, 1, level)
		assert.Equal(t, 99, xp)
		assert.Equal(t, 100, next)
	})

	t.Run("several levels at once carry the remainder", func(t *testing.T) {
		// 100 + 150 + 200 = 450 reaches level 4 with 10 left
		level, xp, next := ApplyLevelUps(1, 460)
		assert.Equal(t, 4, level)
		assert.Equal(t, 10, xp)
		assert.Equal(t, 250, next)
	})
}

func TestMeetsCondition(t *testing.T) {
	stats := OperatorStatistics{
		TotalCalls:       10,
		ResolvedCalls:    7,
		RatedCalls:       4,
		AvgHandleSeconds: 180,
		AvgSatisfaction:  4.5,
		TotalPoints:      320,
		Level:            3,
	}

	assert.True(t, MeetsCondition(models.ConditionCallCount, 10, stats))
	assert.False(t, MeetsCondition(models.ConditionCallCount, 11, stats))
	assert.True(t, MeetsCondition(models.ConditionResolutionCount, 7, stats))
	assert.True(t, MeetsCondition(models.ConditionPoints, 300, stats))
	assert.False(t, MeetsCondition(models.ConditionLevel, 4, stats))
	assert.True(t, MeetsCondition(models.ConditionSatisfaction, 4.5, stats))
	assert.False(t, MeetsCondition(models.ConditionSatisfaction, 4.6, stats))

	t.Run("handle time is lower-is-better", func(t *testing.T) {
		assert.True(t, MeetsCondition(models.ConditionAvgHandleTime, 180, stats))
		assert.True(t, MeetsCondition(models.ConditionAvgHandleTime, 200, stats))
		assert.False(t, MeetsCondition(models.ConditionAvgHandleTime, 120, stats))
	})

	t.Run("averages need samples", func(t *testing.T) {
		empty := OperatorStatistics{Level: 1}
		assert.False(t, MeetsCondition(models.ConditionAvgHandleTime, 300, empty))
		assert.False(t, MeetsCondition(models.ConditionSatisfaction, 0, empty))
	})

	t.Run("unknown condition never qualifies", func(t *testing.T) {
		assert.False(t, MeetsCondition("desconhecida", 0, stats))
	})
}
