package aitrainer

// Preferences are the optional knobs of a workout request.
type Preferences struct {
	Duration  int      `json:"duration,omitempty"`
	Intensity string   `json:"intensity,omitempty"`
	FocusArea string   `json:"focusArea,omitempty"`
	Equipment []string `json:"equipment,omitempty"`
}

type PhaseExercise struct {
	Name         string  `json:"name"`
	Duration     float64 `json:"duration,omitempty"`
	Instructions string  `json:"instructions,omitempty"`
	Tips         string  `json:"tips,omitempty"`
}

type Phase struct {
	Name        string          `json:"name"`
	Duration    float64         `json:"duration,omitempty"`
	Description string          `json:"description,omitempty"`
	Exercises   []PhaseExercise `json:"exercises"`
}

// Document is a model answer that passed its schema. Fields the schema does
// not name are kept as the model sent them.
type Document map[string]any

// GeneratedWorkout describes the workout the model must return. It is only
// used to build the schema, the answer itself is served as a Document.
type GeneratedWorkout struct {
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Duration       float64 `json:"duration,omitempty"`
	Difficulty     string  `json:"difficulty,omitempty"`
	WorkoutType    string  `json:"workoutType,omitempty"`
	IntensityLevel int     `json:"intensityLevel,omitempty" jsonschema:"minimum=1,maximum=10"`
	ExpectedHRZone string  `json:"expectedHRZone,omitempty"`
	Phases         []Phase `json:"phases" jsonschema:"minItems=1"`
	CoachingNotes  string  `json:"coachingNotes,omitempty"`
	GoataFocus     string  `json:"goataFocus,omitempty"`
}

type PerformanceTrend struct {
	Metric  string `json:"metric"`
	Trend   string `json:"trend"`
	Insight string `json:"insight,omitempty"`
}

type Recommendation struct {
	Category       string `json:"category"`
	Priority       string `json:"priority,omitempty" jsonschema:"enum=high,enum=medium,enum=low"`
	Recommendation string `json:"recommendation"`
}

// WorkoutInsights describes the analysis the model must return, see GeneratedWorkout.
type WorkoutInsights struct {
	OverallProgress     string             `json:"overallProgress"`
	TrainingConsistency string             `json:"trainingConsistency,omitempty"`
	PerformanceTrends   []PerformanceTrend `json:"performanceTrends,omitempty"`
	Recommendations     []Recommendation   `json:"recommendations"`
	NextWeekFocus       string             `json:"nextWeekFocus,omitempty"`
	MotivationalNote    string             `json:"motivationalNote,omitempty"`
}

// LoggedWorkout is the answer to a free text workout message.
type LoggedWorkout struct {
	Response       string `json:"response"`
	WorkoutCreated bool   `json:"workoutCreated"`
	Category       string `json:"category"`
	Duration       int    `json:"duration"`
}
