package inbox

import (
	"slices"
	"time"

	"github.com/hoopmetrics/hoopking/pkg"
)

type sample struct {
	title            string
	autoDetectedType string
	confidence       string
	calories         int
	avgHeartRate     int
	steps            int
	durationMinutes  int
	heartRate        []int
	summary          string
	// receivedAgo places the sample before the seeding time
	receivedAgo time.Duration
}

// samples are what a fresh account finds in its inbox, oldest first.
var samples = []sample{
	{
		title:            "Basketball Training - Apple Watch",
		autoDetectedType: "Basketball",
		confidence:       "0.91",
		calories:         486,
		avgHeartRate:     159,
		steps:            3420,
		durationMinutes:  52,
		heartRate:        []int{78, 142, 165, 158, 171, 159, 88},
		summary:          "High-intensity interval pattern with quick direction changes. Typical basketball training session.",
		receivedAgo:      26 * time.Hour,
	},
	{
		title:            "Gym Session - Garmin",
		autoDetectedType: "Strength Training",
		confidence:       "0.87",
		calories:         198,
		avgHeartRate:     92,
		steps:            890,
		durationMinutes:  25,
		heartRate:        []int{85, 95, 98, 92, 89},
		summary:          "Low step count with sustained moderate heart rate. Resistance training detected.",
		receivedAgo:      8 * time.Hour,
	},
	{
		title:            "Morning Run - Apple Watch",
		autoDetectedType: "Cardio",
		confidence:       "0.85",
		calories:         342,
		avgHeartRate:     157,
		steps:            4200,
		durationMinutes:  38,
		heartRate:        []int{92, 156, 168, 175, 162, 148, 95},
		summary:          "Steady elevated heart rate with consistent step pattern. Running workout identified.",
		receivedAgo:      2 * time.Hour,
	},
}

func sampleItems(userID string, now time.Time) []NewItem {
	items := make([]NewItem, 0, len(samples))
	for _, s := range samples {
		items = append(items, NewItem{
			UserID: userID,
			WorkoutData: WorkoutData{
				HeartRateData: slices.Clone(s.heartRate),
				Steps:         s.steps,
				Duration:      s.durationMinutes,
			},
			AutoDetectedType: s.autoDetectedType,
			Confidence:       s.confidence,
			Title:            s.title,
			Duration:         s.durationMinutes,
			CaloriesBurned:   s.calories,
			AverageHeartRate: s.avgHeartRate,
			MaxHeartRate:     pkg.Ptr(slices.Max(s.heartRate)),
			AISummary:        s.summary,
			ReceivedAt:       now.Add(-s.receivedAgo),
		})
	}
	return items
}
