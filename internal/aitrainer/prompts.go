package aitrainer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/hoopmetrics/hoopking/internal/sessions"
	"github.com/hoopmetrics/hoopking/internal/users"
)

const (
	workoutMaxTokens  = 2000
	insightsMaxTokens = 1500
)

const workoutSystemPrompt = `You are an elite basketball training AI coach specializing in personalized workout generation. You understand GOATA movement methodology, basketball-specific training, and how to adapt workouts based on user data, recovery metrics, and performance history.

Your workouts should:
1. Be basketball-specific and functional
2. Consider the user's experience level and recovery status
3. Include proper warm-up, main work, and cool-down phases
4. Incorporate GOATA movement principles when appropriate
5. Be progressive and challenging but safe
6. Include specific coaching cues and form tips

Always respond with a JSON object containing the workout structure.`

const insightsSystemPrompt = `You are an AI basketball training analyst. Analyze user workout data and provide actionable insights about their training patterns, progress, and areas for improvement. Focus on:

1. Performance trends and patterns
2. Recovery recommendations
3. Skill development priorities
4. Training load optimization
5. Motivation and goal-setting advice

Be encouraging but realistic, and always provide specific, actionable recommendations.`

var workoutPromptTmpl = template.Must(template.New("workout").Parse(`Generate a personalized basketball workout based on the following user data:

User Profile:
- Experience Level: {{.Experience}}
- Age: {{.Age}}
- Current Streak: {{.CurrentStreak}} days
- Total Workouts: {{.TotalWorkouts}}
- Skill Level: {{.SkillLevel}}
- Recovery Score: {{.RecoveryScore}}%

Current Stats:
- Total Points: {{.TotalPoints}}
- Average Heart Rate: {{.AverageHeartRate}} BPM
- Recovery Score: {{.StatsRecoveryScore}}%

Workout Preferences:
- Desired Duration: {{.Duration}} minutes
- Intensity Level: {{.Intensity}}
- Focus Area: {{.FocusArea}}
- Available Equipment: {{.Equipment}}

Please generate a detailed workout plan in the following JSON format:
{
  "name": "Workout Name",
  "description": "Brief description of the workout",
  "duration": 45,
  "difficulty": "intermediate",
  "workoutType": "skills",
  "intensityLevel": 8,
  "expectedHRZone": "Zone 4-5",
  "phases": [
    {
      "name": "Dynamic Warm-up",
      "duration": 8,
      "description": "GOATA movement prep",
      "exercises": [
        {
          "name": "Exercise name",
          "duration": 2,
          "instructions": "Detailed instructions",
          "tips": "Coaching tips"
        }
      ]
    }
  ],
  "coachingNotes": "Overall coaching advice and tips",
  "goataFocus": "Specific GOATA methodology focus areas"
}`))

var insightsPromptTmpl = template.Must(template.New("insights").Parse(`Analyze this user's recent basketball training data and provide personalized insights:

User Profile:
- Experience: {{.Experience}}
- Current Streak: {{.CurrentStreak}} days
- Total Workouts: {{.TotalWorkouts}}
- Skill Level: {{.SkillLevel}}
- Recovery Score: {{.RecoveryScore}}%

Recent Workout Sessions:
{{.Sessions}}

Please provide insights in the following JSON format:
{
  "overallProgress": "Assessment of overall progress",
  "trainingConsistency": "Analysis of training consistency",
  "performanceTrends": [
    {
      "metric": "Heart Rate",
      "trend": "improving",
      "insight": "Detailed insight about this metric"
    }
  ],
  "recommendations": [
    {
      "category": "Training",
      "priority": "high",
      "recommendation": "Specific actionable advice"
    }
  ],
  "nextWeekFocus": "What to focus on in the coming week",
  "motivationalNote": "Encouraging message based on their progress"
}`))

// profileFacts holds the profile lines both prompts share. Zero values fall
// back to the defaults, an unset age reads "not specified".
type profileFacts struct {
	Experience    string
	Age           string
	CurrentStreak int
	TotalWorkouts int
	SkillLevel    int
	RecoveryScore string
}

func newProfileFacts(p *users.Profile) profileFacts {
	facts := profileFacts{
		Experience:    "intermediate",
		Age:           "not specified",
		SkillLevel:    1,
		RecoveryScore: formatScore(0),
	}
	if p == nil {
		return facts
	}
	if p.Experience != nil && *p.Experience != "" {
		facts.Experience = *p.Experience
	}
	if p.Age != nil && *p.Age > 0 {
		facts.Age = strconv.Itoa(*p.Age)
	}
	if p.SkillLevel > 0 {
		facts.SkillLevel = p.SkillLevel
	}
	facts.CurrentStreak = p.CurrentStreak
	facts.TotalWorkouts = p.TotalWorkouts
	facts.RecoveryScore = formatScore(p.RecoveryScore)
	return facts
}

func formatScore(score float64) string {
	if score == 0 {
		score = users.DefaultRecoveryScore
	}
	return strconv.FormatFloat(score, 'f', -1, 64)
}

type workoutPromptData struct {
	profileFacts
	TotalPoints        int
	AverageHeartRate   string
	StatsRecoveryScore string
	Duration           int
	Intensity          string
	FocusArea          string
	Equipment          string
}

func buildWorkoutPrompt(profile *users.Profile, stats *users.Stats, prefs Preferences) (string, error) {
	data := workoutPromptData{
		profileFacts:       newProfileFacts(profile),
		AverageHeartRate:   "not available",
		StatsRecoveryScore: formatScore(0),
		Duration:           45,
		Intensity:          "moderate",
		FocusArea:          "overall skills",
		Equipment:          "basketball, cones, ladder",
	}
	if stats != nil {
		data.TotalPoints = stats.TotalPoints
		if stats.AverageHeartRate > 0 {
			data.AverageHeartRate = strconv.Itoa(stats.AverageHeartRate)
		}
		data.StatsRecoveryScore = formatScore(stats.RecoveryScore)
	}
	if prefs.Duration > 0 {
		data.Duration = prefs.Duration
	}
	if prefs.Intensity != "" {
		data.Intensity = prefs.Intensity
	}
	if prefs.FocusArea != "" {
		data.FocusArea = prefs.FocusArea
	}
	if len(prefs.Equipment) > 0 {
		data.Equipment = strings.Join(prefs.Equipment, ", ")
	}

	var sb strings.Builder
	if err := workoutPromptTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render workout prompt: %w", err)
	}
	return sb.String(), nil
}

type sessionSummary struct {
	CompletedAt *time.Time      `json:"completedAt"`
	Duration    *int            `json:"duration"`
	Status      sessions.Status `json:"status"`
	HeartRate   *int            `json:"heartRate"`
	Calories    *int            `json:"calories"`
}

type insightsPromptData struct {
	profileFacts
	Sessions string
}

func buildInsightsPrompt(recent []sessions.Session, profile *users.Profile) (string, error) {
	summaries := make([]sessionSummary, 0, len(recent))
	for _, s := range recent {
		summaries = append(summaries, sessionSummary{
			CompletedAt: s.CompletedAt,
			Duration:    s.TotalDuration,
			Status:      s.Status,
			HeartRate:   s.AverageHeartRate,
			Calories:    s.CaloriesBurned,
		})
	}
	sessionsJSON, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal recent sessions: %w", err)
	}

	var sb strings.Builder
	if err := insightsPromptTmpl.Execute(&sb, insightsPromptData{
		profileFacts: newProfileFacts(profile),
		Sessions:     string(sessionsJSON),
	}); err != nil {
		return "", fmt.Errorf("render insights prompt: %w", err)
	}
	return sb.String(), nil
}
