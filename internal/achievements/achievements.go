package achievements

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hoopmetrics/hoopking/internal/db"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type Achievement struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	IconURL     *string         `json:"iconUrl"`
	Category    *string         `json:"category"`
	Requirement json.RawMessage `json:"requirement"`
	Points      int             `json:"points"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Requirement is the unlock condition stored in Achievement.Requirement.
type Requirement struct {
	TotalWorkouts int `json:"totalWorkouts,omitempty"`
}

type CreateParams struct {
	Name        string
	Description string
	IconURL     string
	Category    string
	Requirement Requirement
	Points      int
}

const columns = `a.id, a.name, a.description, a.icon_url, a.category, a.requirement, a.points, a.is_active, a.created_at`

func scanDest(a *Achievement) []any {
	return []any{
		&a.ID, &a.Name, &a.Description, &a.IconURL, &a.Category, &a.Requirement, &a.Points, &a.IsActive, &a.CreatedAt,
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

func (r *Repo) Create(ctx context.Context, params CreateParams) (_ *Achievement, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.achievements.create")
	defer tracing.EndSpan(span, &err)

	a := &Achievement{}
	err = r.db.QueryRow(ctx, `
		INSERT INTO achievements AS a (name, description, icon_url, category, requirement, points)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		RETURNING `+columns,
		params.Name, params.Description, params.IconURL, params.Category, params.Requirement, params.Points,
	).Scan(scanDest(a)...)
	if err != nil {
		return nil, fmt.Errorf("insert achievement: %w", err)
	}
	return a, nil
}

// ListForUser returns the achievements the user has unlocked, newest unlock first.
func (r *Repo) ListForUser(ctx context.Context, userID string) (_ []Achievement, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.achievements.list-user")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+columns+`
		FROM user_achievements ua
		JOIN achievements a ON a.id = ua.achievement_id
		WHERE ua.user_id = $1
		ORDER BY ua.unlocked_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query user achievements: %w", err)
	}
	defer rows.Close()

	unlocked := make([]Achievement, 0)
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(scanDest(&a)...); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		unlocked = append(unlocked, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user achievements: %w", err)
	}

	return unlocked, nil
}

// UnlockForTotalWorkouts grants, through q, every active achievement whose
// totalWorkouts requirement is met. Already unlocked ones are left alone.
// It returns the newly unlocked achievements.
func (r *Repo) UnlockForTotalWorkouts(ctx context.Context, q db.Querier, userID string, totalWorkouts int) (_ []Achievement, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.achievements.unlock")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID), attribute.Int("total-workouts", totalWorkouts))

	if q == nil {
		q = r.db
	}

	rows, err := q.Query(ctx, `
		WITH unlocked AS (
			INSERT INTO user_achievements (user_id, achievement_id)
			SELECT $1, a.id
			FROM achievements a
			WHERE a.is_active
			  AND a.requirement ? 'totalWorkouts'
			  AND (a.requirement->>'totalWorkouts')::int <= $2
			ON CONFLICT (user_id, achievement_id) DO NOTHING
			RETURNING achievement_id
		)
		SELECT `+columns+`
		FROM unlocked
		JOIN achievements a ON a.id = unlocked.achievement_id
	`, userID, totalWorkouts)
	if err != nil {
		return nil, fmt.Errorf("unlock achievements: %w", err)
	}
	defer rows.Close()

	newlyUnlocked := make([]Achievement, 0)
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(scanDest(&a)...); err != nil {
			return nil, fmt.Errorf("scan unlocked achievement: %w", err)
		}
		newlyUnlocked = append(newlyUnlocked, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unlocked achievements: %w", err)
	}

	return newlyUnlocked, nil
}
