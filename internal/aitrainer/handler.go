package aitrainer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/hoopmetrics/hoopking/internal/auth"
	"github.com/hoopmetrics/hoopking/internal/sessions"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/internal/users"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=aitrainer_test

const insightSessionsLimit = 5

type trainer interface {
	GeneratePersonalizedWorkout(ctx context.Context, profile *users.Profile, stats *users.Stats, prefs Preferences) (Document, error)
	GenerateInsights(ctx context.Context, recent []sessions.Session, profile *users.Profile) (Document, error)
}

type messageProcessor interface {
	ProcessWorkoutMessage(ctx context.Context, userID, msg string) (*LoggedWorkout, error)
}

type profileReader interface {
	GetProfile(ctx context.Context, userID string) (*users.Profile, error)
	Stats(ctx context.Context, userID string) (*users.Stats, error)
}

type sessionLister interface {
	ListForUser(ctx context.Context, userID string, limit int) ([]sessions.Session, error)
}

type Handler struct {
	trainer   trainer
	processor messageProcessor
	profiles  profileReader
	sessions  sessionLister
}

func NewHandler(trainer trainer, processor messageProcessor, profiles profileReader, sessions sessionLister) *Handler {
	return &Handler{
		trainer:   trainer,
		processor: processor,
		profiles:  profiles,
		sessions:  sessions,
	}
}

// SetupRoutes mounts the AI routes under /api/ai, each call passing through
// limiter first.
func (h *Handler) SetupRoutes(router *mux.Router, limiter mux.MiddlewareFunc) {
	aiRouter := router.PathPrefix("/api/ai").Subrouter()
	if limiter != nil {
		aiRouter.Use(limiter)
	}
	aiRouter.HandleFunc("/generate-workout", h.HandleGenerateWorkout).Methods("POST", "OPTIONS").Name("ai-generate-workout")
	aiRouter.HandleFunc("/workout-insights", h.HandleWorkoutInsights).Methods("POST", "OPTIONS").Name("ai-workout-insights")
	aiRouter.HandleFunc("/process-workout-message", h.HandleProcessWorkoutMessage).Methods("POST", "OPTIONS").Name("ai-process-message")
}

type generateWorkoutRequest struct {
	Preferences Preferences `json:"preferences"`
}

func (h *Handler) HandleGenerateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.ai.generate-workout")
	defer span.End()

	const failMessage = "Failed to generate AI workout"

	var req generateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Tracef("generate workout, decode body: %s", err)
		pkg.WriteValidationErrorResponse(w, pkg.NewValidationError("Invalid workout preferences").Add("preferences", "must be a JSON object"))
		return
	}

	userID, _ := auth.UserIDFromContext(ctx)
	profile, err := h.profile(ctx, userID)
	if err != nil {
		log.Errorf("generate workout [%s], get profile: %s", userID, err)
		span.SetStatus(codes.Error, "get-profile")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, failMessage)
		return
	}
	stats, err := h.profiles.Stats(ctx, userID)
	if err != nil {
		log.Errorf("generate workout [%s], get stats: %s", userID, err)
		span.SetStatus(codes.Error, "get-stats")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, failMessage)
		return
	}

	workout, err := h.trainer.GeneratePersonalizedWorkout(ctx, profile, stats, req.Preferences)
	if err != nil {
		log.Errorf("generate workout [%s]: %s", userID, err)
		span.SetStatus(codes.Error, "generate-workout")
		writeAIError(w, err, failMessage)
		return
	}

	pkg.WriteJSONResponseOK(w, workout)
}

func (h *Handler) HandleWorkoutInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.ai.workout-insights")
	defer span.End()

	const failMessage = "Failed to generate workout insights"

	userID, _ := auth.UserIDFromContext(ctx)
	recent, err := h.sessions.ListForUser(ctx, userID, insightSessionsLimit)
	if err != nil {
		log.Errorf("workout insights [%s], list sessions: %s", userID, err)
		span.SetStatus(codes.Error, "list-sessions")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, failMessage)
		return
	}
	profile, err := h.profile(ctx, userID)
	if err != nil {
		log.Errorf("workout insights [%s], get profile: %s", userID, err)
		span.SetStatus(codes.Error, "get-profile")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, failMessage)
		return
	}

	insights, err := h.trainer.GenerateInsights(ctx, recent, profile)
	if err != nil {
		log.Errorf("workout insights [%s]: %s", userID, err)
		span.SetStatus(codes.Error, "generate-insights")
		writeAIError(w, err, failMessage)
		return
	}

	pkg.WriteJSONResponseOK(w, insights)
}

type workoutMessageRequest struct {
	Message string `json:"message"`
}

func (h *Handler) HandleProcessWorkoutMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.ai.process-workout-message")
	defer span.End()

	var req workoutMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		pkg.WriteValidationErrorResponse(w, pkg.NewValidationError("Invalid workout message").Add("message", "required"))
		return
	}

	userID, _ := auth.UserIDFromContext(ctx)
	logged, err := h.processor.ProcessWorkoutMessage(ctx, userID, req.Message)
	if err != nil {
		log.Errorf("process workout message [%s]: %s", userID, err)
		span.SetStatus(codes.Error, "process-message")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to process workout message")
		return
	}

	pkg.WriteJSONResponseOK(w, logged)
}

// profile returns nil for a user without a profile, the prompts fall back to defaults.
func (h *Handler) profile(ctx context.Context, userID string) (*users.Profile, error) {
	profile, err := h.profiles.GetProfile(ctx, userID)
	if errors.Is(err, users.ErrProfileNotFound) {
		return nil, nil
	}
	return profile, err
}

func writeAIError(w http.ResponseWriter, err error, message string) {
	if IsRetryable(err) {
		w.Header().Set("Retry-After", "1")
		pkg.WriteErrorResponse(w, http.StatusBadGateway, message)
		return
	}
	pkg.WriteErrorResponse(w, http.StatusInternalServerError, message)
}
