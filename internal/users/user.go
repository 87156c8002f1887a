package users

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/hoopmetrics/hoopking/pkg"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
)

const (
	DefaultExperience    = "beginner"
	DefaultSkillLevel    = 1
	DefaultRecoveryScore = 75.0
)

// Experience levels share the workout difficulty scale.
var experienceLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
	"pro":          true,
}

type User struct {
	ID              string    `json:"id"`
	Email           *string   `json:"email"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Profile struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Age           *int            `json:"age"`
	Height        *int            `json:"height"`
	Weight        *float64        `json:"weight"`
	Experience    *string         `json:"experience"`
	Goals         *string         `json:"goals"`
	Preferences   json.RawMessage `json:"preferences"`
	CurrentStreak int             `json:"currentStreak"`
	LongestStreak int             `json:"longestStreak"`
	DailyStreak   int             `json:"dailyStreak"`
	TotalWorkouts int             `json:"totalWorkouts"`
	TotalPoints   int             `json:"totalPoints"`
	SkillLevel    int             `json:"skillLevel"`
	RecoveryScore float64         `json:"recoveryScore"`
	LastWorkoutAt *time.Time      `json:"lastWorkoutAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// UserWithProfile is the body of GET /api/auth/user, the user fields with the
// profile nested under "profile".
type UserWithProfile struct {
	*User
	Profile *Profile `json:"profile"`
}

// Stats is the dashboard summary of a user's training.
type Stats struct {
	TotalWorkouts    int     `json:"totalWorkouts"`
	CurrentStreak    int     `json:"currentStreak"`
	DailyStreak      int     `json:"dailyStreak"`
	LongestStreak    int     `json:"longestStreak"`
	TotalPoints      int     `json:"totalPoints"`
	AverageHeartRate int     `json:"averageHeartRate"`
	RecoveryScore    float64 `json:"recoveryScore"`
}

type LeaderboardEntry struct {
	User    User    `json:"user"`
	Profile Profile `json:"profile"`
	Rank    int     `json:"rank"`
}

type UpsertParams struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// ProfileUpdate is a partial profile edit, nil fields are left untouched.
type ProfileUpdate struct {
	Age           *int            `json:"age"`
	Height        *int            `json:"height"`
	Weight        *float64        `json:"weight"`
	Experience    *string         `json:"experience"`
	Goals         *string         `json:"goals"`
	Preferences   json.RawMessage `json:"preferences"`
	CurrentStreak *int            `json:"currentStreak"`
	LongestStreak *int            `json:"longestStreak"`
	TotalWorkouts *int            `json:"totalWorkouts"`
	TotalPoints   *int            `json:"totalPoints"`
	SkillLevel    *int            `json:"skillLevel"`
	RecoveryScore *float64        `json:"recoveryScore"`
}

func (u ProfileUpdate) Validate() error {
	verr := pkg.NewValidationError("Invalid profile data")

	if u.Age != nil && (*u.Age < 0 || *u.Age > 130) {
		verr.Add("age", "must be between 0 and 130")
	}
	if u.Height != nil && (*u.Height < 0 || *u.Height > 300) {
		verr.Add("height", "must be between 0 and 300 cm")
	}
	if u.Weight != nil && (*u.Weight < 0 || *u.Weight > 999.99) {
		verr.Add("weight", "must be between 0 and 999.99 kg")
	}
	if u.Experience != nil && !experienceLevels[*u.Experience] {
		verr.Add("experience", "must be one of beginner, intermediate, advanced, pro")
	}
	if u.SkillLevel != nil && *u.SkillLevel < 1 {
		verr.Add("skillLevel", "must be at least 1")
	}
	if u.RecoveryScore != nil && (*u.RecoveryScore < 0 || *u.RecoveryScore > 100) {
		verr.Add("recoveryScore", "must be between 0 and 100")
	}
	if len(u.Preferences) > 0 && !json.Valid(u.Preferences) {
		verr.Add("preferences", "must be valid JSON")
	}

	counters := []struct {
		field string
		value *int
	}{
		{"currentStreak", u.CurrentStreak},
		{"longestStreak", u.LongestStreak},
		{"totalWorkouts", u.TotalWorkouts},
		{"totalPoints", u.TotalPoints},
	}
	for _, c := range counters {
		if c.value != nil && *c.value < 0 {
			verr.Add(c.field, "must not be negative")
		}
	}
	if u.CurrentStreak != nil && u.LongestStreak != nil && *u.CurrentStreak > *u.LongestStreak {
		verr.Add("currentStreak", "must not exceed longestStreak")
	}

	return verr.OrNil()
}
