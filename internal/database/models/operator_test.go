package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOperatorApplyStatus(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("online time accumulates across calls and breaks", func(t *testing.T) {
		op := &Operator{Status: OperatorStatusOffline}

		op.ApplyStatus(OperatorStatusAwaitingCall, start)
		assert.NotNil(t, op.OnlineSince)

		op.ApplyStatus(OperatorStatusInCall, start.Add(10*time.Minute))
		op.ApplyStatus(OperatorStatusOnBreak, start.Add(20*time.Minute))
		assert.Equal(t, start, *op.OnlineSince)
		assert.Equal(t, int64(40*60), op.OnlineSecondsAt(start.Add(40*time.Minute)))

		op.ApplyStatus(OperatorStatusOffline, start.Add(time.Hour))
		assert.Nil(t, op.OnlineSince)
		assert.Equal(t, int64(3600), op.OnlineSeconds)
		assert.Equal(t, int64(3600), op.OnlineSecondsAt(start.Add(2*time.Hour)))
	})

	t.Run("going offline twice adds nothing", func(t *testing.T) {
		op := &Operator{Status: OperatorStatusOffline, OnlineSeconds: 50}
		op.ApplyStatus(OperatorStatusOffline, start)
		assert.Equal(t, int64(50), op.OnlineSeconds)
		assert.Nil(t, op.OnlineSince)
	})

	t.Run("online operator without a start time gets one", func(t *testing.T) {
		op := &Operator{Status: OperatorStatusAwaitingCall}
		op.ApplyStatus(OperatorStatusOnBreak, start)
		assert.Equal(t, start, *op.OnlineSince)
	})
}

func TestOperatorStatusRules(t *testing.T) {
	assert.True(t, OperatorStatusOnBreak.IsSelfSelectable())
	assert.False(t, OperatorStatusInCall.IsSelfSelectable())
	assert.True(t, OperatorStatusInCall.IsValid())
	assert.False(t, OperatorStatus("ocupado").IsValid())
}
