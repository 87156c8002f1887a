// Package dbtest holds the postgres fixtures shared by the integration tests.
// Every fixture creates fresh random rows, so packages can run in parallel
// against the same database without cleaning up after each other.
package dbtest

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/hoopmetrics/hoopking/internal/db"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultDBName = "hoopking_test"

// Setup connects to POSTGRES_HOST (localhost by default) and applies the schema.
func Setup(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	dbName := os.Getenv("POSTGRES_DB")
	if dbName == "" {
		dbName = DefaultDBName
	}
	t.Logf("using postgres: %s:%s/%s", host, port, dbName)

	pool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:     host,
		DBPort:     port,
		DBName:     dbName,
		DBPassword: os.Getenv("HOOP_POSTGRES_PASS"),
	})
	require.NoError(t, err)
	require.NoError(t, db.ApplySchema(timeoutCtx, pool))

	return pool, pool.Close
}

// InsertUser creates a user with a default profile and returns its id.
func InsertUser(t *testing.T, q db.Querier) string {
	t.Helper()
	ctx := context.Background()

	var id string
	err := q.QueryRow(ctx, `
		INSERT INTO users (id, email, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, gofakeit.UUID(), gofakeit.Email(), gofakeit.FirstName(), gofakeit.LastName()).Scan(&id)
	require.NoError(t, err)

	_, err = q.Exec(ctx, `
		INSERT INTO user_profiles (user_id, experience, skill_level, recovery_score)
		VALUES ($1, 'beginner', 1, 75.0)
	`, id)
	require.NoError(t, err)

	return id
}

// InsertWorkout creates a workout with the given number of exercises.
func InsertWorkout(t *testing.T, q db.Querier, exercises int) string {
	t.Helper()
	ctx := context.Background()

	var id string
	err := q.QueryRow(ctx, `
		INSERT INTO workouts (name, description, duration, difficulty, workout_type)
		VALUES ($1, $2, $3, 'intermediate', 'skills')
		RETURNING id
	`, gofakeit.AppName()+" drill", gofakeit.Sentence(8), gofakeit.Number(20, 60)).Scan(&id)
	require.NoError(t, err)

	for i := 1; i <= exercises; i++ {
		_, err := q.Exec(ctx, `
			INSERT INTO exercises (workout_id, name, sets, reps, rest_time, "order")
			VALUES ($1, $2, 3, 10, 60, $3)
		`, id, gofakeit.Verb()+" "+gofakeit.Noun(), i)
		require.NoError(t, err)
	}

	return id
}

// InsertPlan creates a fitness plan scheduling the given workouts, one per
// day starting at week 1 day 1.
func InsertPlan(t *testing.T, q db.Querier, durationWeeks, workoutsPerWeek int, workoutIDs ...string) string {
	t.Helper()
	ctx := context.Background()

	var id string
	err := q.QueryRow(ctx, `
		INSERT INTO fitness_plans (name, description, plan_type, difficulty, duration, workouts_per_week)
		VALUES ($1, $2, 'basketball', 'intermediate', $3, $4)
		RETURNING id
	`, gofakeit.BuzzWord()+" program", gofakeit.Sentence(6), durationWeeks, workoutsPerWeek).Scan(&id)
	require.NoError(t, err)

	for i, workoutID := range workoutIDs {
		week := i/7 + 1
		day := i%7 + 1
		_, err := q.Exec(ctx, `
			INSERT INTO plan_workouts (plan_id, workout_id, week, day, "order")
			VALUES ($1, $2, $3, $4, 1)
		`, id, workoutID, week, day)
		require.NoError(t, err)
	}

	return id
}

// InsertAchievement creates an achievement unlocked at the given total workouts.
func InsertAchievement(t *testing.T, q db.Querier, totalWorkouts int) string {
	t.Helper()

	var id string
	err := q.QueryRow(context.Background(), `
		INSERT INTO achievements (name, description, category, requirement, points)
		VALUES ($1, $2, 'milestone', jsonb_build_object('totalWorkouts', $3::int), 100)
		RETURNING id
	`, gofakeit.HipsterWord()+" badge", gofakeit.Sentence(5), totalWorkouts).Scan(&id)
	require.NoError(t, err)

	return id
}
