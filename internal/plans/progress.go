package plans

import (
	"fmt"
	"math"
)

// completion is the enrollment state after one more workout of the plan is done.
type completion struct {
	completed   int
	percentage  string
	currentWeek int
	status      EnrollmentStatus
}

// nextCompletion advances an enrollment by one completed workout. The current
// week only moves when the plan defines both its length and weekly volume.
// Paused and completed enrollments do not advance, ok is false for them.
func nextCompletion(up UserPlan, durationWeeks, workoutsPerWeek *int) (_ completion, ok bool) {
	if up.Status != StatusActive {
		return completion{}, false
	}

	next := completion{
		completed:   up.TotalWorkoutsCompleted + 1,
		currentWeek: up.CurrentWeek,
		status:      up.Status,
	}
	next.percentage = CompletionPercentage(next.completed, up.TotalWorkoutsInPlan)

	if durationWeeks != nil && workoutsPerWeek != nil {
		next.currentWeek = min(*durationWeeks, 1+next.completed/max(*workoutsPerWeek, 1))
	}
	if up.TotalWorkoutsInPlan > 0 && next.completed >= up.TotalWorkoutsInPlan {
		next.status = StatusCompleted
	}

	return next, true
}

// CompletionPercentage formats completed/total as a percentage with two
// decimals, "0.00" for a plan without workouts. It never exceeds "100.00".
func CompletionPercentage(completed, total int) string {
	if total <= 0 {
		return "0.00"
	}
	completed = min(completed, total)
	return fmt.Sprintf("%.2f", math.Round(10000*float64(completed)/float64(total))/100)
}
