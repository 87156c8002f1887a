package workouts

import (
	"errors"
	"time"
)

var ErrWorkoutNotFound = errors.New("workout not found")

const DefaultListLimit = 20

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyPro          Difficulty = "pro"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyPro:
		return true
	default:
		return false
	}
}

type Type string

const (
	TypeStrength Type = "strength"
	TypeCardio   Type = "cardio"
	TypeSkills   Type = "skills"
	TypeRecovery Type = "recovery"
	TypeMixed    Type = "mixed"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeStrength, TypeCardio, TypeSkills, TypeRecovery, TypeMixed:
		return true
	default:
		return false
	}
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IconURL     *string   `json:"iconUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Workout struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	CategoryID  *string    `json:"categoryId"`
	Duration    *int       `json:"duration"`
	Difficulty  Difficulty `json:"difficulty"`
	WorkoutType Type       `json:"workoutType"`
	IsPopular   bool       `json:"isPopular"`
	AIGenerated bool       `json:"aiGenerated"`
	CreatedBy   *string    `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	// Exercises is only filled by Get, ordered by Order.
	Exercises []Exercise `json:"exercises,omitempty"`
}

type Exercise struct {
	ID           string  `json:"id"`
	WorkoutID    string  `json:"workoutId"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Sets         *int    `json:"sets"`
	Reps         *int    `json:"reps"`
	Duration     *int    `json:"duration"`
	RestTime     *int    `json:"restTime"`
	Order        int     `json:"order"`
	Instructions *string `json:"instructions"`
	Tips         *string `json:"tips"`
	VideoURL     *string `json:"videoUrl"`
}

type CreateParams struct {
	Name        string
	Description string
	CategoryID  *string
	Duration    int
	Difficulty  Difficulty
	WorkoutType Type
	IsPopular   bool
	AIGenerated bool
	CreatedBy   *string
	Exercises   []ExerciseParams
}

type ExerciseParams struct {
	Name         string
	Description  string
	Sets         *int
	Reps         *int
	Duration     *int
	RestTime     *int
	Instructions string
	Tips         string
	VideoURL     string
}
