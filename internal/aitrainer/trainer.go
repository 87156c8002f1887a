package aitrainer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hoopmetrics/hoopking/internal/sessions"
	"github.com/hoopmetrics/hoopking/internal/telemetry/metrics"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/internal/users"

	"go.opentelemetry.io/otel/attribute"
)

var (
	// ErrUpstream means the model could not be reached or answered with an error status.
	ErrUpstream = errors.New("ai upstream failed")
	// ErrInvalidResponse means the model answered, but not with the expected JSON.
	ErrInvalidResponse = errors.New("ai response invalid")
)

// IsRetryable reports whether asking the model again may succeed.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrInvalidResponse)
}

const (
	kindWorkout  = "workout"
	kindInsights = "insights"

	DefaultTimeout = 60 * time.Second
)

type completer interface {
	Complete(ctx context.Context, system, prompt string, maxTokens int) (string, error)
}

type Trainer struct {
	client  completer
	timeout time.Duration
	metrics *metrics.Manager
	now     func() time.Time
}

func NewTrainer(client completer, timeout time.Duration, metricsManager *metrics.Manager) *Trainer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Trainer{
		client:  client,
		timeout: timeout,
		metrics: metricsManager,
		now:     time.Now,
	}
}

// GeneratePersonalizedWorkout asks the model for a workout fitted to the
// profile, the stats and the preferences. Profile and stats may be nil.
func (t *Trainer) GeneratePersonalizedWorkout(ctx context.Context, profile *users.Profile, stats *users.Stats, prefs Preferences) (_ Document, err error) {
	ctx, span := tracing.StartSpan(ctx, "ai.trainer.generate-workout")
	defer tracing.EndSpan(span, &err)

	prompt, err := buildWorkoutPrompt(profile, stats, prefs)
	if err != nil {
		return nil, err
	}

	text, err := t.complete(ctx, kindWorkout, workoutSystemPrompt, prompt, workoutMaxTokens)
	if err != nil {
		return nil, err
	}

	workout, err := workoutSchema.decode([]byte(stripCodeFence(text)))
	if err != nil {
		t.observe(kindWorkout, err)
		return nil, err
	}
	t.observe(kindWorkout, nil)

	workout["aiGenerated"] = true
	workout["generatedAt"] = t.now().UTC().Format(time.RFC3339)
	phases, _ := workout["phases"].([]any)
	span.SetAttributes(attribute.Int("ai.workout.phases", len(phases)))
	return workout, nil
}

// GenerateInsights asks the model to analyze the recent sessions.
func (t *Trainer) GenerateInsights(ctx context.Context, recent []sessions.Session, profile *users.Profile) (_ Document, err error) {
	ctx, span := tracing.StartSpan(ctx, "ai.trainer.generate-insights")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.Int("ai.insights.sessions", len(recent)))

	prompt, err := buildInsightsPrompt(recent, profile)
	if err != nil {
		return nil, err
	}

	text, err := t.complete(ctx, kindInsights, insightsSystemPrompt, prompt, insightsMaxTokens)
	if err != nil {
		return nil, err
	}

	insights, err := insightsSchema.decode([]byte(stripCodeFence(text)))
	if err != nil {
		t.observe(kindInsights, err)
		return nil, err
	}
	t.observe(kindInsights, nil)

	insights["generatedAt"] = t.now().UTC().Format(time.RFC3339)
	return insights, nil
}

func (t *Trainer) complete(ctx context.Context, kind, system, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	started := time.Now()
	text, err := t.client.Complete(ctx, system, prompt, maxTokens)
	t.metrics.HistogramAIDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
	if err != nil {
		t.observe(kind, err)
		return "", err
	}
	return text, nil
}

func (t *Trainer) observe(kind string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, ErrInvalidResponse):
		result = "invalid_response"
	case err != nil:
		result = "upstream_error"
	}
	t.metrics.CounterAIRequests.WithLabelValues(kind, result).Inc()
}

// stripCodeFence removes a markdown code fence around the answer, with or
// without a language tag.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		// first line is the language tag, possibly empty
		if !strings.ContainsAny(text[:nl], "{[") {
			text = text[nl+1:]
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
