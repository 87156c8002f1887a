package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hoopmetrics/hoopking/internal/achievements"
	"github.com/hoopmetrics/hoopking/internal/activity"
	"github.com/hoopmetrics/hoopking/internal/db"
	"github.com/hoopmetrics/hoopking/internal/telemetry/metrics"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type activityRecorder interface {
	Record(ctx context.Context, q db.Querier, entry activity.NewEntry) (*activity.Entry, error)
}

type planProgressRecorder interface {
	RecordCompletion(ctx context.Context, q db.Querier, userPlanID string, completedAt time.Time) error
}

type achievementUnlocker interface {
	UnlockForTotalWorkouts(ctx context.Context, q db.Querier, userID string, totalWorkouts int) ([]achievements.Achievement, error)
}

type Service struct {
	db           db.TxBeginner
	repo         *Repo
	activity     activityRecorder
	plans        planProgressRecorder
	achievements achievementUnlocker
	metrics      *metrics.Manager
}

type NewServiceParams struct {
	DB           db.DB
	Activity     activityRecorder
	Plans        planProgressRecorder
	Achievements achievementUnlocker
	Metrics      *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		db:           params.DB,
		repo:         NewRepo(params.DB),
		activity:     params.Activity,
		plans:        params.Plans,
		achievements: params.Achievements,
		metrics:      params.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (_ *Session, err error) {
	ctx, span := tracing.StartSpan(ctx, "service.sessions.create")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID))

	if err := params.Validate(); err != nil {
		return nil, err
	}

	if params.UserPlanID != nil {
		owned, err := s.repo.OwnsUserPlan(ctx, userID, *params.UserPlanID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, pkg.NewValidationError("Invalid session data").Add("userPlanId", "unknown fitness plan enrollment")
		}
	}

	session, err := s.repo.insert(ctx, insertParams{
		userID:           userID,
		workoutID:        &params.WorkoutID,
		userPlanID:       params.UserPlanID,
		status:           params.Status,
		completedAt:      params.CompletedAt,
		totalDuration:    params.TotalDuration,
		caloriesBurned:   params.CaloriesBurned,
		averageHeartRate: params.AverageHeartRate,
		maxHeartRate:     params.MaxHeartRate,
		notes:            params.Notes,
	})
	if pkg.IsForeignKeyViolationError(err) {
		return nil, pkg.NewValidationError("Invalid session data").Add("workoutId", "unknown workout")
	}
	if err != nil {
		return nil, err
	}

	s.metrics.CounterSessionsCreated.Inc()
	return session, nil
}

// Log stores an already completed session without a catalog workout. It does
// not award the completion bookkeeping.
func (s *Service) Log(ctx context.Context, userID string, params LogParams) (_ *Session, err error) {
	ctx, span := tracing.StartSpan(ctx, "service.sessions.log")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID))

	completedAt := params.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	session, err := s.repo.insert(ctx, insertParams{
		userID:         userID,
		status:         StatusCompleted,
		completedAt:    &completedAt,
		totalDuration:  pkg.Ptr(params.DurationMinutes * 60),
		caloriesBurned: pkg.Ptr(params.CaloriesBurned),
		notes:          &params.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.CounterSessionsCreated.Inc()
	return session, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string, limit int) ([]Session, error) {
	return s.repo.ListForUser(ctx, userID, limit)
}

// Update applies a partial update to one of the user's sessions. When the
// update moves the session to completed, the profile counters, the activity
// feed, the plan progress and the achievements are updated in the same
// transaction.
func (s *Service) Update(ctx context.Context, userID, sessionID string, params UpdateParams) (_ *Session, err error) {
	ctx, span := tracing.StartSpan(ctx, "service.sessions.update")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID), attribute.String("session.id", sessionID))

	if err := params.Validate(); err != nil {
		return nil, err
	}

	var (
		updated   *Session
		completed bool
	)
	err = db.InTx(ctx, s.db, func(tx pgx.Tx) error {
		current, err := lockForUpdate(ctx, tx, userID, sessionID)
		if err != nil {
			return err
		}

		updated, err = update(ctx, tx, sessionID, params)
		if err != nil {
			return err
		}

		if !params.Completes() || current.Status == StatusCompleted {
			return nil
		}

		completed, err = s.complete(ctx, tx, userID, updated, *params.CompletedAt)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, fmt.Errorf("update session [%s]: %w", sessionID, err)
		}
		return nil, err
	}

	if completed {
		s.metrics.CounterSessionsCompleted.Inc()
		s.metrics.CounterPointsAwarded.Add(CompletionPoints)
	}

	return updated, nil
}

func (s *Service) complete(ctx context.Context, tx pgx.Tx, userID string, session *Session, completedAt time.Time) (bool, error) {
	totalWorkouts, ok, err := applyCompletion(ctx, tx, userID, completedAt)
	if err != nil {
		return false, err
	}
	if !ok {
		log.Warnf("session [%s] completed, but user [%s] has no profile", session.ID, userID)
		return false, nil
	}

	metadata := map[string]any{
		"sessionId": session.ID,
		"workoutId": session.WorkoutID,
	}
	if _, err := s.activity.Record(ctx, tx, activity.NewEntry{
		UserID:       userID,
		ActivityType: activity.TypeWorkoutCompleted,
		Title:        "Completed workout",
		Description:  CompletionDescription(session.TotalDuration),
		Points:       CompletionPoints,
		Metadata:     metadata,
	}); err != nil {
		return false, err
	}

	if session.UserPlanID != nil {
		if err := s.plans.RecordCompletion(ctx, tx, *session.UserPlanID, completedAt); err != nil {
			return false, err
		}
	}

	unlocked, err := s.achievements.UnlockForTotalWorkouts(ctx, tx, userID, totalWorkouts)
	if err != nil {
		return false, err
	}
	for _, a := range unlocked {
		if _, err := s.activity.Record(ctx, tx, activity.NewEntry{
			UserID:       userID,
			ActivityType: activity.TypeAchievement,
			Title:        "Unlocked " + a.Name,
			Description:  pkg.ValueOr(a.Description, ""),
			Points:       a.Points,
			Metadata:     map[string]any{"achievementId": a.ID},
		}); err != nil {
			return false, err
		}
	}

	return true, nil
}
