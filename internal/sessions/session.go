package sessions

import (
	"errors"
	"time"

	"github.com/hoopmetrics/hoopking/pkg"
)

var ErrSessionNotFound = errors.New("session not found")

const (
	DefaultListLimit = 10

	// CompletionPoints are awarded for every session that transitions to completed.
	CompletionPoints = 50
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Session struct {
	ID               string     `json:"id"`
	UserID           string     `json:"userId"`
	WorkoutID        *string    `json:"workoutId"`
	UserPlanID       *string    `json:"userPlanId"`
	StartedAt        time.Time  `json:"startedAt"`
	CompletedAt      *time.Time `json:"completedAt"`
	Status           Status     `json:"status"`
	TotalDuration    *int       `json:"totalDuration"`
	CaloriesBurned   *int       `json:"caloriesBurned"`
	AverageHeartRate *int       `json:"averageHeartRate"`
	MaxHeartRate     *int       `json:"maxHeartRate"`
	Notes            *string    `json:"notes"`
}

// CreateParams is the body of POST /api/sessions. Durations are in seconds.
type CreateParams struct {
	WorkoutID        string     `json:"workoutId"`
	UserPlanID       *string    `json:"userPlanId"`
	Status           Status     `json:"status"`
	CompletedAt      *time.Time `json:"completedAt"`
	TotalDuration    *int       `json:"totalDuration"`
	CaloriesBurned   *int       `json:"caloriesBurned"`
	AverageHeartRate *int       `json:"averageHeartRate"`
	MaxHeartRate     *int       `json:"maxHeartRate"`
	Notes            *string    `json:"notes"`
}

func (p *CreateParams) Validate() error {
	verr := pkg.NewValidationError("Invalid session data")
	if p.WorkoutID == "" {
		verr.Add("workoutId", "is required")
	}
	if p.Status == "" {
		p.Status = StatusActive
	} else if !p.Status.IsValid() {
		verr.Add("status", "must be one of active, completed, cancelled")
	}
	if p.UserPlanID != nil && *p.UserPlanID == "" {
		verr.Add("userPlanId", "must not be empty")
	}
	validateCounters(verr, p.TotalDuration, p.CaloriesBurned, p.AverageHeartRate, p.MaxHeartRate)
	return verr.OrNil()
}

// UpdateParams is the body of PATCH /api/sessions/{id}. Absent fields are left untouched.
type UpdateParams struct {
	Status           *Status    `json:"status"`
	CompletedAt      *time.Time `json:"completedAt"`
	TotalDuration    *int       `json:"totalDuration"`
	CaloriesBurned   *int       `json:"caloriesBurned"`
	AverageHeartRate *int       `json:"averageHeartRate"`
	MaxHeartRate     *int       `json:"maxHeartRate"`
	Notes            *string    `json:"notes"`
}

func (p UpdateParams) Validate() error {
	verr := pkg.NewValidationError("Invalid session data")
	if p.Status != nil && !p.Status.IsValid() {
		verr.Add("status", "must be one of active, completed, cancelled")
	}
	validateCounters(verr, p.TotalDuration, p.CaloriesBurned, p.AverageHeartRate, p.MaxHeartRate)
	return verr.OrNil()
}

// Completes reports whether applying the update marks a session as completed.
func (p UpdateParams) Completes() bool {
	return p.Status != nil && *p.Status == StatusCompleted && p.CompletedAt != nil
}

func validateCounters(verr *pkg.ValidationError, totalDuration, calories, avgHR, maxHR *int) {
	for _, c := range []struct {
		field string
		value *int
	}{
		{"totalDuration", totalDuration},
		{"caloriesBurned", calories},
		{"averageHeartRate", avgHR},
		{"maxHeartRate", maxHR},
	} {
		if c.value != nil && *c.value < 0 {
			verr.Add(c.field, "must not be negative")
		}
	}
}

// LogParams describe a finished session that was not started from the catalog,
// like one reported through the trainer chat.
type LogParams struct {
	DurationMinutes int
	CaloriesBurned  int
	Notes           string
	CompletedAt     time.Time
}
