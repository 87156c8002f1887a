package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/hoopmetrics/hoopking/internal/db"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// Columns of a workout row, aliased w. Other packages joining workouts reuse
// them together with ScanDest.
const Columns = `w.id, w.name, w.description, w.category_id, w.duration, w.difficulty, w.workout_type,
	w.is_popular, w.ai_generated, w.created_by, w.created_at`

const exerciseColumns = `e.id, e.workout_id, e.name, e.description, e.sets, e.reps, e.duration, e.rest_time,
	e."order", e.instructions, e.tips, e.video_url`

// ScanDest returns the scan targets matching Columns.
func ScanDest(w *Workout) []any {
	return []any{
		&w.ID, &w.Name, &w.Description, &w.CategoryID, &w.Duration, &w.Difficulty, &w.WorkoutType,
		&w.IsPopular, &w.AIGenerated, &w.CreatedBy, &w.CreatedAt,
	}
}

type Repo struct {
	db db.DB
}

func NewRepo(pool db.DB) *Repo {
	return &Repo{
		db: pool,
	}
}

func (r *Repo) List(ctx context.Context, limit int) (_ []Workout, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.workouts.list")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.Int("limit", limit))

	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+Columns+`
		FROM workouts w
		ORDER BY w.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	workouts := make([]Workout, 0)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(ScanDest(&w)...); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}

	return workouts, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Workout, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.workouts.get")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("workout.id", id))

	w := &Workout{}
	err = r.db.QueryRow(ctx, `
		SELECT `+Columns+`
		FROM workouts w
		WHERE w.id = $1
	`, id).Scan(ScanDest(w)...)
	if pkg.IsNoRowsError(err) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}

	exercises, err := ListExercises(ctx, r.db, []string{id})
	if err != nil {
		return nil, err
	}
	w.Exercises = exercises[id]
	if w.Exercises == nil {
		w.Exercises = []Exercise{}
	}

	return w, nil
}

// ListExercises loads the ordered exercises of the given workouts, grouped by
// workout id.
func ListExercises(ctx context.Context, q db.Querier, workoutIDs []string) (map[string][]Exercise, error) {
	rows, err := q.Query(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercises e
		WHERE e.workout_id = ANY($1)
		ORDER BY e.workout_id, e."order"
	`, workoutIDs)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	byWorkout := make(map[string][]Exercise, len(workoutIDs))
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.WorkoutID, &e.Name, &e.Description, &e.Sets, &e.Reps, &e.Duration, &e.RestTime,
			&e.Order, &e.Instructions, &e.Tips, &e.VideoURL,
		); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		byWorkout[e.WorkoutID] = append(byWorkout[e.WorkoutID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}

	return byWorkout, nil
}

// Create inserts a workout with its exercises, numbered in the given order.
func (r *Repo) Create(ctx context.Context, params CreateParams) (_ *Workout, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.workouts.create")
	defer tracing.EndSpan(span, &err)

	if params.Name == "" {
		return nil, errors.New("workout name is required")
	}
	if !params.Difficulty.IsValid() {
		return nil, fmt.Errorf("invalid difficulty: %q", params.Difficulty)
	}
	if !params.WorkoutType.IsValid() {
		return nil, fmt.Errorf("invalid workout type: %q", params.WorkoutType)
	}

	w := &Workout{}
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `
			INSERT INTO workouts AS w (name, description, category_id, duration, difficulty, workout_type,
			                           is_popular, ai_generated, created_by)
			VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9)
			RETURNING `+Columns,
			params.Name, params.Description, params.CategoryID, params.Duration, params.Difficulty,
			params.WorkoutType, params.IsPopular, params.AIGenerated, params.CreatedBy,
		).Scan(ScanDest(w)...); err != nil {
			return fmt.Errorf("insert workout: %w", err)
		}

		w.Exercises = make([]Exercise, 0, len(params.Exercises))
		for i, ep := range params.Exercises {
			e := Exercise{}
			if err := tx.QueryRow(ctx, `
				INSERT INTO exercises AS e (workout_id, name, description, sets, reps, duration, rest_time,
				                            "order", instructions, tips, video_url)
				VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''))
				RETURNING `+exerciseColumns,
				w.ID, ep.Name, ep.Description, ep.Sets, ep.Reps, ep.Duration, ep.RestTime,
				i+1, ep.Instructions, ep.Tips, ep.VideoURL,
			).Scan(
				&e.ID, &e.WorkoutID, &e.Name, &e.Description, &e.Sets, &e.Reps, &e.Duration, &e.RestTime,
				&e.Order, &e.Instructions, &e.Tips, &e.VideoURL,
			); err != nil {
				return fmt.Errorf("insert exercise %d: %w", i+1, err)
			}
			w.Exercises = append(w.Exercises, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return w, nil
}

func (r *Repo) CreateCategory(ctx context.Context, name, description string) (_ *Category, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.workouts.category.create")
	defer tracing.EndSpan(span, &err)

	c := &Category{}
	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_categories (name, description)
		VALUES ($1, NULLIF($2, ''))
		RETURNING id, name, description, icon_url, created_at
	`, name, description).Scan(&c.ID, &c.Name, &c.Description, &c.IconURL, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}
