package sessions

import (
	"fmt"
	"time"

	"github.com/hoopmetrics/hoopking/pkg"
)

const day = 24 * time.Hour

// NextDailyStreak counts consecutive UTC calendar days with at least one
// completed session. A second completion on the same day keeps the streak,
// one on the following day extends it, anything else starts over at 1.
// A completion dated before the last workout leaves the streak as it is.
func NextDailyStreak(current int, lastWorkoutAt *time.Time, completedAt time.Time) int {
	if lastWorkoutAt == nil {
		return 1
	}
	if completedAt.Before(*lastWorkoutAt) {
		return current
	}

	lastDay := lastWorkoutAt.UTC().Truncate(day)
	completedDay := completedAt.UTC().Truncate(day)
	switch completedDay.Sub(lastDay) {
	case 0:
		return max(current, 1)
	case day:
		return current + 1
	default:
		return 1
	}
}

// CompletionDescription names the session duration, given in seconds, in
// whole minutes.
func CompletionDescription(totalDuration *int) string {
	return fmt.Sprintf("Finished a %d minute workout", pkg.ValueOr(totalDuration, 0)/60)
}
