package inbox

import (
	"errors"
	"time"
)

var ErrItemNotFound = errors.New("inbox item not found")

type Status string

const (
	StatusPending     Status = "pending"
	StatusCategorized Status = "categorized"
	StatusIgnored     Status = "ignored"
)

// WorkoutData is the raw wearable payload of an item.
type WorkoutData struct {
	HeartRateData []int `json:"heartRateData"`
	Steps         int   `json:"steps"`
	// Duration is in minutes.
	Duration int `json:"duration"`
}

// Item is a workout detected by a wearable, waiting for the user to confirm
// its category or dismiss it. Only pending items ever change.
type Item struct {
	ID               string      `json:"id"`
	UserID           string      `json:"userId"`
	DeviceID         *string     `json:"deviceId"`
	WorkoutData      WorkoutData `json:"workoutData"`
	Status           Status      `json:"status"`
	Category         *string     `json:"category"`
	WorkoutSessionID *string     `json:"workoutSessionId"`
	AutoDetectedType *string     `json:"autoDetectedType"`
	Confidence       *string     `json:"confidence"`
	Title            string      `json:"title"`
	Duration         *int        `json:"duration"`
	CaloriesBurned   *int        `json:"caloriesBurned"`
	AverageHeartRate *int        `json:"averageHeartRate"`
	MaxHeartRate     *int        `json:"maxHeartRate"`
	AISummary        *string     `json:"aiSummary"`
	ReceivedAt       time.Time   `json:"receivedAt"`
	ProcessedAt      *time.Time  `json:"processedAt"`
}

type NewItem struct {
	UserID           string
	DeviceID         *string
	WorkoutData      WorkoutData
	AutoDetectedType string
	// Confidence is a decimal string with two fractional digits, like "0.91".
	Confidence       string
	Title            string
	Duration         int
	CaloriesBurned   int
	AverageHeartRate int
	MaxHeartRate     *int
	AISummary        string
	ReceivedAt       time.Time
}
