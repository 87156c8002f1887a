package plans

import (
	"testing"

	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionPercentage(t *testing.T) {
	assert.Equal(t, "0.00", CompletionPercentage(0, 0))
	assert.Equal(t, "0.00", CompletionPercentage(3, 0))
	assert.Equal(t, "0.00", CompletionPercentage(0, 12))
	assert.Equal(t, "33.33", CompletionPercentage(1, 3))
	assert.Equal(t, "66.67", CompletionPercentage(2, 3))
	assert.Equal(t, "12.50", CompletionPercentage(1, 8))
	assert.Equal(t, "100.00", CompletionPercentage(24, 24))
	assert.Equal(t, "100.00", CompletionPercentage(11, 1))
}

func TestNextCompletion(t *testing.T) {
	enrollment := UserPlan{
		Status:                 StatusActive,
		CurrentWeek:            1,
		TotalWorkoutsCompleted: 2,
		TotalWorkoutsInPlan:    12,
	}

	t.Run("moves to the next week", func(t *testing.T) {
		next, ok := nextCompletion(enrollment, pkg.Ptr(4), pkg.Ptr(3))
		assert.True(t, ok)
		assert.Equal(t, 3, next.completed)
		assert.Equal(t, "25.00", next.percentage)
		assert.Equal(t, 2, next.currentWeek)
		assert.Equal(t, StatusActive, next.status)
	})

	t.Run("week is capped by the plan length", func(t *testing.T) {
		up := enrollment
		up.TotalWorkoutsCompleted = 20
		up.TotalWorkoutsInPlan = 30
		next, ok := nextCompletion(up, pkg.Ptr(4), pkg.Ptr(3))
		require.True(t, ok)
		assert.Equal(t, 4, next.currentWeek)
	})

	t.Run("week stays without a schedule", func(t *testing.T) {
		up := enrollment
		up.CurrentWeek = 2
		next, ok := nextCompletion(up, nil, pkg.Ptr(3))
		require.True(t, ok)
		assert.Equal(t, 2, next.currentWeek)
	})

	t.Run("zero workouts per week counts as one", func(t *testing.T) {
		next, ok := nextCompletion(enrollment, pkg.Ptr(10), pkg.Ptr(0))
		require.True(t, ok)
		assert.Equal(t, 4, next.currentWeek)
	})

	t.Run("last workout completes the plan", func(t *testing.T) {
		up := enrollment
		up.TotalWorkoutsCompleted = 11
		next, ok := nextCompletion(up, pkg.Ptr(4), pkg.Ptr(3))
		require.True(t, ok)
		assert.Equal(t, "100.00", next.percentage)
		assert.Equal(t, StatusCompleted, next.status)
	})

	t.Run("empty plan never completes", func(t *testing.T) {
		up := enrollment
		up.TotalWorkoutsInPlan = 0
		next, ok := nextCompletion(up, nil, nil)
		require.True(t, ok)
		assert.Equal(t, "0.00", next.percentage)
		assert.Equal(t, StatusActive, next.status)
	})

	t.Run("finished or paused enrollment does not advance", func(t *testing.T) {
		for _, status := range []EnrollmentStatus{StatusCompleted, StatusPaused} {
			up := UserPlan{Status: status, TotalWorkoutsCompleted: 10, TotalWorkoutsInPlan: 1}
			_, ok := nextCompletion(up, nil, nil)
			assert.False(t, ok, status)
		}
	})

	t.Run("overshoot is capped at a full plan", func(t *testing.T) {
		up := enrollment
		up.TotalWorkoutsCompleted = 15
		next, ok := nextCompletion(up, nil, nil)
		require.True(t, ok)
		assert.Equal(t, 16, next.completed)
		assert.Equal(t, "100.00", next.percentage)
		assert.Equal(t, StatusCompleted, next.status)
	})
}
