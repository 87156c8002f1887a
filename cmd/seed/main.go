package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hoopmetrics/hoopking/internal/achievements"
	"github.com/hoopmetrics/hoopking/internal/config"
	"github.com/hoopmetrics/hoopking/internal/db"
	"github.com/hoopmetrics/hoopking/internal/logging"
	"github.com/hoopmetrics/hoopking/internal/plans"
	"github.com/hoopmetrics/hoopking/internal/workouts"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// seed applies the schema and fills an empty catalog with the stock
// workouts, plans and achievements

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	schemaOnly := flag.Bool("schema-only", false, "only apply the schema")
	force := flag.Bool("force", false, "seed even if the catalog already has workouts")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("HOOP_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer pool.Close()

	if err := db.ApplySchema(ctx, pool); err != nil {
		log.Fatalf("apply schema: %s", err)
	}
	log.Infoln("schema applied")

	if *schemaOnly {
		return
	}

	if err := seed(ctx, pool, *force); err != nil {
		log.Fatalf("seed: %s", err)
	}
}

func seed(ctx context.Context, pool *pgxpool.Pool, force bool) error {
	workoutsRepo := workouts.NewRepo(pool)
	existing, err := workoutsRepo.List(ctx, 1)
	if err != nil {
		return fmt.Errorf("list workouts: %w", err)
	}
	if len(existing) > 0 && !force {
		log.Infoln("catalog already seeded, use -force to seed again")
		return nil
	}

	categories := map[workouts.Type]string{}
	workoutIDs := make([]string, 0, len(catalog))
	for _, sw := range catalog {
		categoryID, ok := categories[sw.workoutType]
		if !ok {
			c, err := workoutsRepo.CreateCategory(ctx, string(sw.workoutType), "")
			if err != nil {
				return fmt.Errorf("create category %s: %w", sw.workoutType, err)
			}
			categoryID = c.ID
			categories[sw.workoutType] = categoryID
		}

		exercises := make([]workouts.ExerciseParams, 0, len(sw.exercises))
		for _, e := range sw.exercises {
			exercises = append(exercises, workouts.ExerciseParams{
				Name:         e.name,
				Instructions: e.reps,
				Tips:         e.notes,
			})
		}

		w, err := workoutsRepo.Create(ctx, workouts.CreateParams{
			Name:        sw.name,
			Description: sw.description,
			CategoryID:  pkg.Ptr(categoryID),
			Duration:    sw.duration,
			Difficulty:  sw.difficulty,
			WorkoutType: sw.workoutType,
			IsPopular:   true,
			Exercises:   exercises,
		})
		if err != nil {
			return fmt.Errorf("create workout %s: %w", sw.name, err)
		}
		workoutIDs = append(workoutIDs, w.ID)
	}
	log.Infof("seeded %d workouts", len(workoutIDs))

	plansRepo := plans.NewRepo(pool)
	for _, sp := range programs {
		p, err := plansRepo.CreatePlan(ctx, sp.params)
		if err != nil {
			return fmt.Errorf("create plan %s: %w", sp.params.Name, err)
		}
		for week := 1; week <= sp.params.Duration; week++ {
			for day, idx := range sp.workouts {
				if _, err := plansRepo.AddWorkoutToPlan(ctx, plans.AddWorkoutParams{
					PlanID:    p.ID,
					WorkoutID: workoutIDs[idx],
					Week:      week,
					Day:       day + 1,
					Order:     1,
				}); err != nil {
					return fmt.Errorf("add workout to plan %s: %w", p.Name, err)
				}
			}
		}
	}
	log.Infof("seeded %d plans", len(programs))

	achievementsRepo := achievements.NewRepo(pool)
	for _, b := range badges {
		if _, err := achievementsRepo.Create(ctx, b); err != nil {
			return fmt.Errorf("create achievement %s: %w", b.Name, err)
		}
	}
	log.Infof("seeded %d achievements", len(badges))

	return nil
}
