package aitrainer

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hoopmetrics/hoopking/internal/sessions"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultMessageMinutes = 30
	caloriesPerMinute     = 8
)

type workoutRule struct {
	pattern     *regexp.Regexp
	workoutType string
	category    string
}

// checked in order, first match wins
var workoutRules = []workoutRule{
	{regexp.MustCompile(`(?i)basketball|ball|court|dribbl|shoot`), "basketball training", "basketball_training"},
	{regexp.MustCompile(`(?i)cardio|run|jog|sprint`), "cardio session", "cardio"},
	{regexp.MustCompile(`(?i)strength|weight|lift|gym`), "strength training", "strength"},
}

var durationPattern = regexp.MustCompile(`(?i)(\d+)\s*(min|minute|hour)`)

type categorized struct {
	workoutType string
	category    string
	minutes     int
}

func categorize(msg string) categorized {
	c := categorized{
		workoutType: "general",
		category:    "other",
		minutes:     defaultMessageMinutes,
	}
	for _, rule := range workoutRules {
		if rule.pattern.MatchString(msg) {
			c.workoutType = rule.workoutType
			c.category = rule.category
			break
		}
	}

	if m := durationPattern.FindStringSubmatch(msg); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			c.minutes = n
			if strings.EqualFold(m[2], "hour") {
				c.minutes = n * 60
			}
		}
	}
	return c
}

type sessionLogger interface {
	Log(ctx context.Context, userID string, params sessions.LogParams) (*sessions.Session, error)
}

// Categorizer turns a free text workout message into a logged session. It
// does not call the model.
type Categorizer struct {
	sessions sessionLogger
}

func NewCategorizer(sessions sessionLogger) *Categorizer {
	return &Categorizer{
		sessions: sessions,
	}
}

func (c *Categorizer) ProcessWorkoutMessage(ctx context.Context, userID, msg string) (_ *LoggedWorkout, err error) {
	ctx, span := tracing.StartSpan(ctx, "ai.categorizer.process-message")
	defer tracing.EndSpan(span, &err)

	parsed := categorize(msg)
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("workout.category", parsed.category),
		attribute.Int("workout.minutes", parsed.minutes),
	)

	if _, err := c.sessions.Log(ctx, userID, sessions.LogParams{
		DurationMinutes: parsed.minutes,
		CaloriesBurned:  parsed.minutes * caloriesPerMinute,
		Notes:           "AI logged: " + msg,
	}); err != nil {
		return nil, fmt.Errorf("log workout message: %w", err)
	}

	return &LoggedWorkout{
		Response:       fmt.Sprintf("Great! I've logged your %d-minute %s. Keep up the excellent work!", parsed.minutes, parsed.workoutType),
		WorkoutCreated: true,
		Category:       parsed.category,
		Duration:       parsed.minutes,
	}, nil
}
