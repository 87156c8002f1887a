package plans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hoopmetrics/hoopking/internal/db"
	"github.com/hoopmetrics/hoopking/internal/sessions"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/internal/workouts"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const planColumns = `fp.id, fp.name, fp.description, fp.methodology, fp.plan_type, fp.difficulty, fp.duration,
	fp.workouts_per_week, fp.ai_generated, fp.is_popular, fp.created_by, fp.created_at`

func planDest(p *Plan) []any {
	return []any{
		&p.ID, &p.Name, &p.Description, &p.Methodology, &p.PlanType, &p.Difficulty, &p.Duration,
		&p.WorkoutsPerWeek, &p.AIGenerated, &p.IsPopular, &p.CreatedBy, &p.CreatedAt,
	}
}

const userPlanColumns = `up.id, up.user_id, up.plan_id, up.status, up.current_week, up.total_workouts_completed,
	up.total_workouts_in_plan, up.completion_percentage::text, up.start_date, up.last_workout_date,
	up.created_at, up.updated_at`

func userPlanDest(up *UserPlan) []any {
	return []any{
		&up.ID, &up.UserID, &up.PlanID, &up.Status, &up.CurrentWeek, &up.TotalWorkoutsCompleted,
		&up.TotalWorkoutsInPlan, &up.CompletionPercentage, &up.StartDate, &up.LastWorkoutDate,
		&up.CreatedAt, &up.UpdatedAt,
	}
}

const planWorkoutColumns = `pw.id, pw.plan_id, pw.workout_id, pw.week, pw.day, pw."order", pw.is_optional, pw.notes`

func planWorkoutDest(pw *PlanWorkout) []any {
	return []any{&pw.ID, &pw.PlanID, &pw.WorkoutID, &pw.Week, &pw.Day, &pw.Order, &pw.IsOptional, &pw.Notes}
}

type Repo struct {
	db db.DB
}

func NewRepo(pool db.DB) *Repo {
	return &Repo{
		db: pool,
	}
}

func (r *Repo) ListPlans(ctx context.Context, limit int) (_ []Plan, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.plans.list")
	defer tracing.EndSpan(span, &err)

	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+planColumns+`
		FROM fitness_plans fp
		ORDER BY fp.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	plans := make([]Plan, 0)
	for rows.Next() {
		var p Plan
		if err := rows.Scan(planDest(&p)...); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}

	return plans, nil
}

func (r *Repo) GetPlan(ctx context.Context, id string) (_ *Plan, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.plans.get")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("plan.id", id))

	p := &Plan{}
	err = r.db.QueryRow(ctx, `SELECT `+planColumns+` FROM fitness_plans fp WHERE fp.id = $1`, id).Scan(planDest(p)...)
	if pkg.IsNoRowsError(err) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

// GetPlanWithWorkouts returns the plan with its schedule, where every workout
// carries its exercises.
func (r *Repo) GetPlanWithWorkouts(ctx context.Context, id string) (_ *PlanWithWorkouts, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.plans.get-with-workouts")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("plan.id", id))

	plan, err := r.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	schedule, err := planStructure(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	workoutIDs := make([]string, 0, len(schedule))
	for _, sw := range schedule {
		workoutIDs = append(workoutIDs, sw.Workout.ID)
	}
	exercises, err := workouts.ListExercises(ctx, r.db, workoutIDs)
	if err != nil {
		return nil, err
	}
	for i := range schedule {
		schedule[i].Workout.Exercises = exercises[schedule[i].Workout.ID]
	}

	return &PlanWithWorkouts{
		Plan:         plan,
		PlanWorkouts: schedule,
	}, nil
}

func planStructure(ctx context.Context, q db.Querier, planID string) ([]ScheduledWorkout, error) {
	rows, err := q.Query(ctx, `
		SELECT `+planWorkoutColumns+`, `+workouts.Columns+`
		FROM plan_workouts pw
		JOIN workouts w ON w.id = pw.workout_id
		WHERE pw.plan_id = $1
		ORDER BY pw.week, pw.day, pw."order"
	`, planID)
	if err != nil {
		return nil, fmt.Errorf("query plan workouts: %w", err)
	}
	defer rows.Close()

	schedule := make([]ScheduledWorkout, 0)
	for rows.Next() {
		var sw ScheduledWorkout
		dest := append(planWorkoutDest(&sw.PlanWorkout), workouts.ScanDest(&sw.Workout)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan plan workout: %w", err)
		}
		schedule = append(schedule, sw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plan workouts: %w", err)
	}

	return schedule, nil
}

func (r *Repo) CreatePlan(ctx context.Context, params CreateParams) (_ *Plan, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.plans.create")
	defer tracing.EndSpan(span, &err)

	if !params.PlanType.IsValid() {
		return nil, fmt.Errorf("invalid plan type: %q", params.PlanType)
	}
	if !params.Difficulty.IsValid() {
		return nil, fmt.Errorf("invalid difficulty: %q", params.Difficulty)
	}

	p := &Plan{}
	err = r.db.QueryRow(ctx, `
		INSERT INTO fitness_plans AS fp (name, description, methodology, plan_type, difficulty, duration,
		                                 workouts_per_week, is_popular)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, $8)
		RETURNING `+planColumns,
		params.Name, params.Description, params.Methodology, params.PlanType, params.Difficulty,
		params.Duration, params.WorkoutsPerWeek, params.IsPopular,
	).Scan(planDest(p)...)
	if err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}
	return p, nil
}

func (r *Repo) AddWorkoutToPlan(ctx context.Context, params AddWorkoutParams) (_ *PlanWorkout, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.plans.add-workout")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("plan.id", params.PlanID), attribute.String("workout.id", params.WorkoutID))

	pw := &PlanWorkout{}
	err = r.db.QueryRow(ctx, `
		INSERT INTO plan_workouts AS pw (plan_id, workout_id, week, day, "order", is_optional, notes)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING `+planWorkoutColumns,
		params.PlanID, params.WorkoutID, params.Week, params.Day, params.Order, params.IsOptional, params.Notes,
	).Scan(planWorkoutDest(pw)...)
	if err != nil {
		return nil, fmt.Errorf("insert plan workout: %w", err)
	}
	return pw, nil
}

// ListUserPlans returns every enrollment of the user, newest first.
func (r *Repo) ListUserPlans(ctx context.Context, userID string) (_ []UserPlan, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.plans.list-user")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+userPlanColumns+`
		FROM user_fitness_plans up
		WHERE up.user_id = $1
		ORDER BY up.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query user plans: %w", err)
	}
	defer rows.Close()

	userPlans := make([]UserPlan, 0)
	for rows.Next() {
		var up UserPlan
		if err := rows.Scan(userPlanDest(&up)...); err != nil {
			return nil, fmt.Errorf("scan user plan: %w", err)
		}
		userPlans = append(userPlans, up)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user plans: %w", err)
	}

	return userPlans, nil
}

// ListActivePlans returns the active enrollments with their plans, most
// recently progressed first.
func (r *Repo) ListActivePlans(ctx context.Context, userID string) (_ []ActivePlan, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.plans.list-active")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+userPlanColumns+`, `+planColumns+`
		FROM user_fitness_plans up
		JOIN fitness_plans fp ON fp.id = up.plan_id
		WHERE up.user_id = $1 AND up.status = 'active'
		ORDER BY up.updated_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query active plans: %w", err)
	}
	defer rows.Close()

	active := make([]ActivePlan, 0)
	for rows.Next() {
		var ap ActivePlan
		if err := rows.Scan(append(userPlanDest(&ap.UserPlan), planDest(&ap.Plan)...)...); err != nil {
			return nil, fmt.Errorf("scan active plan: %w", err)
		}
		active = append(active, ap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active plans: %w", err)
	}

	return active, nil
}

// StartPlan enrolls the user. Concurrent calls for the same user and plan are
// serialized, the loser gets ErrActivePlanExists.
func (r *Repo) StartPlan(ctx context.Context, userID, planID string) (_ *UserPlan, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.plans.start")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID), attribute.String("plan.id", planID))

	up := &UserPlan{}
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		var found string
		err := tx.QueryRow(ctx, `SELECT id FROM fitness_plans WHERE id = $1 FOR SHARE`, planID).Scan(&found)
		if pkg.IsNoRowsError(err) {
			return ErrPlanNotFound
		}
		if err != nil {
			return fmt.Errorf("lock plan: %w", err)
		}

		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text || ':' || $2::text))`, userID, planID); err != nil {
			return fmt.Errorf("lock enrollment: %w", err)
		}

		var active bool
		if err := tx.QueryRow(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM user_fitness_plans WHERE user_id = $1 AND plan_id = $2 AND status = 'active'
			)
		`, userID, planID).Scan(&active); err != nil {
			return fmt.Errorf("check active enrollment: %w", err)
		}
		if active {
			return ErrActivePlanExists
		}

		var totalWorkouts int
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM plan_workouts WHERE plan_id = $1`, planID).Scan(&totalWorkouts); err != nil {
			return fmt.Errorf("count plan workouts: %w", err)
		}

		if err := tx.QueryRow(ctx, `
			INSERT INTO user_fitness_plans AS up (user_id, plan_id, status, current_week, total_workouts_completed,
			                                      total_workouts_in_plan, completion_percentage, start_date)
			VALUES ($1, $2, 'active', 1, 0, $3, 0.00, now())
			RETURNING `+userPlanColumns,
			userID, planID, totalWorkouts,
		).Scan(userPlanDest(up)...); err != nil {
			return fmt.Errorf("insert enrollment: %w", err)
		}
		return nil
	})
	if pkg.IsUniqueViolationError(err) {
		return nil, ErrActivePlanExists
	}
	if err != nil {
		return nil, err
	}

	return up, nil
}

// Progress reads the user's enrollment in the plan, preferring the active one
// over older completed or paused ones.
func (r *Repo) Progress(ctx context.Context, userID, planID string) (_ *Progress, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.plans.progress")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID), attribute.String("plan.id", planID))

	progress := &Progress{}
	err = r.db.QueryRow(ctx, `
		SELECT `+userPlanColumns+`, `+planColumns+`
		FROM user_fitness_plans up
		JOIN fitness_plans fp ON fp.id = up.plan_id
		WHERE up.user_id = $1 AND up.plan_id = $2
		ORDER BY up.status = 'active' DESC, up.created_at DESC
		LIMIT 1
	`, userID, planID).Scan(append(userPlanDest(&progress.UserPlan), planDest(&progress.Plan)...)...)
	if pkg.IsNoRowsError(err) {
		return nil, ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}

	if progress.CompletedSessions, err = completedSessions(ctx, r.db, userID, progress.UserPlan.ID); err != nil {
		return nil, err
	}
	if progress.PlanStructure, err = planStructure(ctx, r.db, planID); err != nil {
		return nil, err
	}

	up := progress.UserPlan
	progress.ProgressStats = ProgressStats{
		TotalWorkouts:        up.TotalWorkoutsInPlan,
		CompletedWorkouts:    up.TotalWorkoutsCompleted,
		CompletionPercentage: up.CompletionPercentage,
		CurrentWeek:          up.CurrentWeek,
		Status:               up.Status,
	}

	return progress, nil
}

func completedSessions(ctx context.Context, q db.Querier, userID, userPlanID string) ([]CompletedSession, error) {
	rows, err := q.Query(ctx, `
		SELECT `+sessions.Columns+`, `+workouts.Columns+`
		FROM workout_sessions s
		JOIN workouts w ON w.id = s.workout_id
		WHERE s.user_id = $1 AND s.user_plan_id = $2 AND s.status = 'completed'
		ORDER BY s.completed_at DESC
	`, userID, userPlanID)
	if err != nil {
		return nil, fmt.Errorf("query completed sessions: %w", err)
	}
	defer rows.Close()

	completed := make([]CompletedSession, 0)
	for rows.Next() {
		var cs CompletedSession
		if err := rows.Scan(append(sessions.ScanDest(&cs.Session), workouts.ScanDest(&cs.Workout)...)...); err != nil {
			return nil, fmt.Errorf("scan completed session: %w", err)
		}
		completed = append(completed, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completed sessions: %w", err)
	}

	return completed, nil
}

// RecordCompletion counts one more completed workout on the enrollment, through
// q, which is the transaction completing the session.
func (r *Repo) RecordCompletion(ctx context.Context, q db.Querier, userPlanID string, completedAt time.Time) (err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.plans.record-completion")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user-plan.id", userPlanID))

	if q == nil {
		q = r.db
	}

	var (
		up              UserPlan
		durationWeeks   *int
		workoutsPerWeek *int
	)
	err = q.QueryRow(ctx, `
		SELECT `+userPlanColumns+`, fp.duration, fp.workouts_per_week
		FROM user_fitness_plans up
		JOIN fitness_plans fp ON fp.id = up.plan_id
		WHERE up.id = $1
		FOR UPDATE OF up
	`, userPlanID).Scan(append(userPlanDest(&up), &durationWeeks, &workoutsPerWeek)...)
	if pkg.IsNoRowsError(err) {
		return ErrEnrollmentNotFound
	}
	if err != nil {
		return fmt.Errorf("lock enrollment: %w", err)
	}

	next, ok := nextCompletion(up, durationWeeks, workoutsPerWeek)
	if !ok {
		log.Debugf("record completion [%s]: enrollment is %s, skipping", userPlanID, up.Status)
		span.SetAttributes(attribute.String("user-plan.status", string(up.Status)))
		return nil
	}

	tag, err := q.Exec(ctx, `
		UPDATE user_fitness_plans SET
			total_workouts_completed = $2,
			completion_percentage = $3::text::numeric,
			current_week = $4,
			status = $5,
			last_workout_date = $6,
			updated_at = now()
		WHERE id = $1
	`, userPlanID, next.completed, next.percentage, next.currentWeek, next.status, completedAt)
	if err != nil {
		return fmt.Errorf("update enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("update enrollment: no rows affected")
	}

	return nil
}
