package plans

import (
	"errors"
	"time"

	"github.com/hoopmetrics/hoopking/internal/sessions"
	"github.com/hoopmetrics/hoopking/internal/workouts"
)

var (
	ErrPlanNotFound       = errors.New("fitness plan not found")
	ErrEnrollmentNotFound = errors.New("fitness plan enrollment not found")
	ErrActivePlanExists   = errors.New("active plan enrollment exists")
)

const DefaultListLimit = 20

type Type string

const (
	TypeStrength     Type = "strength"
	TypeBasketball   Type = "basketball"
	TypeConditioning Type = "conditioning"
	TypeSkills       Type = "skills"
	TypeRecovery     Type = "recovery"
	TypeMixed        Type = "mixed"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeStrength, TypeBasketball, TypeConditioning, TypeSkills, TypeRecovery, TypeMixed:
		return true
	}
	return false
}

type EnrollmentStatus string

const (
	StatusActive    EnrollmentStatus = "active"
	StatusCompleted EnrollmentStatus = "completed"
	StatusPaused    EnrollmentStatus = "paused"
)

type Plan struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Methodology *string             `json:"methodology"`
	PlanType    Type                `json:"planType"`
	Difficulty  workouts.Difficulty `json:"difficulty"`
	// Duration is in weeks.
	Duration        *int      `json:"duration"`
	WorkoutsPerWeek *int      `json:"workoutsPerWeek"`
	AIGenerated     bool      `json:"aiGenerated"`
	IsPopular       bool      `json:"isPopular"`
	CreatedBy       *string   `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
}

type PlanWorkout struct {
	ID         string  `json:"id"`
	PlanID     string  `json:"planId"`
	WorkoutID  string  `json:"workoutId"`
	Week       int     `json:"week"`
	Day        int     `json:"day"`
	Order      int     `json:"order"`
	IsOptional bool    `json:"isOptional"`
	Notes      *string `json:"notes"`
}

// ScheduledWorkout is a plan slot together with its workout.
type ScheduledWorkout struct {
	PlanWorkout PlanWorkout      `json:"planWorkout"`
	Workout     workouts.Workout `json:"workout"`
}

type PlanWithWorkouts struct {
	*Plan
	// each workout carries its exercises
	PlanWorkouts []ScheduledWorkout `json:"planWorkouts"`
}

type UserPlan struct {
	ID                     string           `json:"id"`
	UserID                 string           `json:"userId"`
	PlanID                 string           `json:"planId"`
	Status                 EnrollmentStatus `json:"status"`
	CurrentWeek            int              `json:"currentWeek"`
	TotalWorkoutsCompleted int              `json:"totalWorkoutsCompleted"`
	TotalWorkoutsInPlan    int              `json:"totalWorkoutsInPlan"`
	CompletionPercentage   string           `json:"completionPercentage"`
	StartDate              time.Time        `json:"startDate"`
	LastWorkoutDate        *time.Time       `json:"lastWorkoutDate"`
	CreatedAt              time.Time        `json:"createdAt"`
	UpdatedAt              time.Time        `json:"updatedAt"`
}

type ActivePlan struct {
	UserPlan UserPlan `json:"userPlan"`
	Plan     Plan     `json:"plan"`
}

type CompletedSession struct {
	Session sessions.Session `json:"session"`
	Workout workouts.Workout `json:"workout"`
}

type ProgressStats struct {
	TotalWorkouts        int              `json:"totalWorkouts"`
	CompletedWorkouts    int              `json:"completedWorkouts"`
	CompletionPercentage string           `json:"completionPercentage"`
	CurrentWeek          int              `json:"currentWeek"`
	Status               EnrollmentStatus `json:"status"`
}

type Progress struct {
	UserPlan          UserPlan           `json:"userPlan"`
	Plan              Plan               `json:"plan"`
	CompletedSessions []CompletedSession `json:"completedSessions"`
	PlanStructure     []ScheduledWorkout `json:"planStructure"`
	ProgressStats     ProgressStats      `json:"progressStats"`
}

type CreateParams struct {
	Name            string
	Description     string
	Methodology     string
	PlanType        Type
	Difficulty      workouts.Difficulty
	Duration        int
	WorkoutsPerWeek int
	IsPopular       bool
}

type AddWorkoutParams struct {
	PlanID     string
	WorkoutID  string
	Week       int
	Day        int
	Order      int
	IsOptional bool
	Notes      string
}
