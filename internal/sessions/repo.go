package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/hoopmetrics/hoopking/internal/db"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// Columns of a session row, aliased s.
const Columns = `s.id, s.user_id, s.workout_id, s.user_plan_id, s.started_at, s.completed_at, s.status,
	s.total_duration, s.calories_burned, s.average_heart_rate, s.max_heart_rate, s.notes`

func ScanDest(s *Session) []any {
	return []any{
		&s.ID, &s.UserID, &s.WorkoutID, &s.UserPlanID, &s.StartedAt, &s.CompletedAt, &s.Status,
		&s.TotalDuration, &s.CaloriesBurned, &s.AverageHeartRate, &s.MaxHeartRate, &s.Notes,
	}
}

func scanSession(row pgx.Row) (*Session, error) {
	s := &Session{}
	if err := row.Scan(ScanDest(s)...); err != nil {
		return nil, err
	}
	return s, nil
}

type Repo struct {
	db db.DB
}

func NewRepo(pool db.DB) *Repo {
	return &Repo{
		db: pool,
	}
}

type insertParams struct {
	userID           string
	workoutID        *string
	userPlanID       *string
	status           Status
	completedAt      *time.Time
	totalDuration    *int
	caloriesBurned   *int
	averageHeartRate *int
	maxHeartRate     *int
	notes            *string
}

func (r *Repo) insert(ctx context.Context, params insertParams) (_ *Session, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.sessions.insert")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", params.userID))

	session, err := scanSession(r.db.QueryRow(ctx, `
		INSERT INTO workout_sessions AS s (
			user_id, workout_id, user_plan_id, status, completed_at, total_duration, calories_burned,
			average_heart_rate, max_heart_rate, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+Columns,
		params.userID, params.workoutID, params.userPlanID, params.status, params.completedAt,
		params.totalDuration, params.caloriesBurned, params.averageHeartRate, params.maxHeartRate, params.notes,
	))
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return session, nil
}

// OwnsUserPlan reports whether the enrollment belongs to the user.
func (r *Repo) OwnsUserPlan(ctx context.Context, userID, userPlanID string) (_ bool, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.sessions.owns-user-plan")
	defer tracing.EndSpan(span, &err)

	var owned bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM user_fitness_plans WHERE id = $1 AND user_id = $2)
	`, userPlanID, userID).Scan(&owned)
	if err != nil {
		return false, fmt.Errorf("check user plan owner: %w", err)
	}
	return owned, nil
}

func (r *Repo) ListForUser(ctx context.Context, userID string, limit int) (_ []Session, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.sessions.list")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID), attribute.Int("limit", limit))

	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+Columns+`
		FROM workout_sessions s
		WHERE s.user_id = $1
		ORDER BY s.started_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]Session, 0)
	for rows.Next() {
		var s Session
		if err := rows.Scan(ScanDest(&s)...); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

// lockForUpdate reads the user's session and holds its row lock until tx ends.
func lockForUpdate(ctx context.Context, tx pgx.Tx, userID, sessionID string) (*Session, error) {
	session, err := scanSession(tx.QueryRow(ctx, `
		SELECT `+Columns+`
		FROM workout_sessions s
		WHERE s.id = $1 AND s.user_id = $2
		FOR UPDATE
	`, sessionID, userID))
	if pkg.IsNoRowsError(err) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock session: %w", err)
	}
	return session, nil
}

func update(ctx context.Context, tx pgx.Tx, sessionID string, params UpdateParams) (*Session, error) {
	session, err := scanSession(tx.QueryRow(ctx, `
		UPDATE workout_sessions s SET
			status = COALESCE($2, s.status),
			completed_at = COALESCE($3, s.completed_at),
			total_duration = COALESCE($4, s.total_duration),
			calories_burned = COALESCE($5, s.calories_burned),
			average_heart_rate = COALESCE($6, s.average_heart_rate),
			max_heart_rate = COALESCE($7, s.max_heart_rate),
			notes = COALESCE($8, s.notes)
		WHERE s.id = $1
		RETURNING `+Columns,
		sessionID, params.Status, params.CompletedAt, params.TotalDuration, params.CaloriesBurned,
		params.AverageHeartRate, params.MaxHeartRate, params.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return session, nil
}

// applyCompletion awards a completed session to the user's profile and returns
// the new total of workouts. ok is false when the user has no profile.
func applyCompletion(ctx context.Context, tx pgx.Tx, userID string, completedAt time.Time) (totalWorkouts int, ok bool, err error) {
	var (
		dailyStreak   int
		lastWorkoutAt *time.Time
	)
	err = tx.QueryRow(ctx, `
		SELECT daily_streak, last_workout_at
		FROM user_profiles
		WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&dailyStreak, &lastWorkoutAt)
	if pkg.IsNoRowsError(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lock profile: %w", err)
	}

	err = tx.QueryRow(ctx, `
		UPDATE user_profiles SET
			total_workouts = total_workouts + 1,
			current_streak = current_streak + 1,
			longest_streak = GREATEST(longest_streak, current_streak + 1),
			total_points = total_points + $2,
			daily_streak = $3,
			last_workout_at = GREATEST(last_workout_at, $4),
			updated_at = now()
		WHERE user_id = $1
		RETURNING total_workouts
	`, userID, CompletionPoints, NextDailyStreak(dailyStreak, lastWorkoutAt, completedAt), completedAt).Scan(&totalWorkouts)
	if err != nil {
		return 0, false, fmt.Errorf("update profile counters: %w", err)
	}

	return totalWorkouts, true, nil
}
