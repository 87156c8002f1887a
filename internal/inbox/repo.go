package inbox

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

const columns = `id, user_id, device_id, workout_data, status, category, workout_session_id, auto_detected_type,
	confidence::text, title, duration, calories_burned, average_heart_rate, max_heart_rate, ai_summary,
	received_at, processed_at`

func scanItem(row pgx.Row) (*Item, error) {
	i := &Item{}
	if err := row.Scan(
		&i.ID, &i.UserID, &i.DeviceID, &i.WorkoutData, &i.Status, &i.Category, &i.WorkoutSessionID,
		&i.AutoDetectedType, &i.Confidence, &i.Title, &i.Duration, &i.CaloriesBurned, &i.AverageHeartRate,
		&i.MaxHeartRate, &i.AISummary, &i.ReceivedAt, &i.ProcessedAt,
	); err != nil {
		return nil, err
	}
	return i, nil
}

type Repo struct {
	db db.DB
}

func NewRepo(pool db.DB) *Repo {
	return &Repo{
		db: pool,
	}
}

func (r *Repo) Create(ctx context.Context, q db.Querier, item NewItem) (_ *Item, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.inbox.create")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", item.UserID))

	if q == nil {
		q = r.db
	}
	receivedAt := item.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	created, err := scanItem(q.QueryRow(ctx, `
		INSERT INTO workout_inbox (user_id, device_id, workout_data, auto_detected_type, confidence, title, duration,
		                           calories_burned, average_heart_rate, max_heart_rate, ai_summary, received_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, '')::numeric, $6, $7, $8, $9, $10, NULLIF($11, ''), $12)
		RETURNING `+columns,
		item.UserID, item.DeviceID, item.WorkoutData, item.AutoDetectedType, item.Confidence, item.Title,
		item.Duration, item.CaloriesBurned, item.AverageHeartRate, item.MaxHeartRate, item.AISummary, receivedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("insert inbox item: %w", err)
	}
	return created, nil
}

// EnsureSeeded gives a user without any inbox items the sample ones. Concurrent
// calls for the same user seed once. It reports whether samples were inserted.
func (r *Repo) EnsureSeeded(ctx context.Context, userID string) (seeded bool, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.inbox.ensure-seeded")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID))

	// most calls find items, skip the lock for them
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM workout_inbox WHERE user_id = $1)`, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check inbox: %w", err)
	}
	if exists {
		return false, nil
	}

	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('inbox:' || $1::text))`, userID); err != nil {
			return fmt.Errorf("lock inbox: %w", err)
		}

		var count int
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM workout_inbox WHERE user_id = $1`, userID).Scan(&count); err != nil {
			return fmt.Errorf("count inbox items: %w", err)
		}
		if count > 0 {
			return nil
		}

		for _, item := range sampleItems(userID, time.Now()) {
			if _, err := r.Create(ctx, tx, item); err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return seeded, nil
}

// List returns the user's items, newest first.
func (r *Repo) List(ctx context.Context, userID string) (_ []Item, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.inbox.list")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+columns+`
		FROM workout_inbox
		WHERE user_id = $1
		ORDER BY received_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query inbox: %w", err)
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inbox item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inbox: %w", err)
	}

	return items, nil
}

func (r *Repo) get(ctx context.Context, itemID, userID string) (*Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `
		SELECT `+columns+` FROM workout_inbox WHERE id = $1 AND user_id = $2
	`, itemID, userID))
	if pkg.IsNoRowsError(err) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get inbox item: %w", err)
	}
	return item, nil
}

// Categorize moves a pending item to categorized. An item already out of
// pending is returned as it is, with moved false.
func (r *Repo) Categorize(ctx context.Context, itemID, userID, category string) (_ *Item, moved bool, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.inbox.categorize")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID), attribute.String("item.id", itemID))

	return r.transition(ctx, itemID, userID, StatusCategorized, &category)
}

// Ignore moves a pending item to ignored, see Categorize.
func (r *Repo) Ignore(ctx context.Context, itemID, userID string) (_ *Item, moved bool, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.inbox.ignore")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID), attribute.String("item.id", itemID))

	return r.transition(ctx, itemID, userID, StatusIgnored, nil)
}

func (r *Repo) transition(ctx context.Context, itemID, userID string, to Status, category *string) (*Item, bool, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `
		UPDATE workout_inbox SET
			status = $3,
			category = COALESCE($4, category),
			processed_at = now()
		WHERE id = $1 AND user_id = $2 AND status = 'pending'
		RETURNING `+columns,
		itemID, userID, to, category,
	))
	if err == nil {
		return item, true, nil
	}
	if !pkg.IsNoRowsError(err) {
		return nil, false, fmt.Errorf("update inbox item: %w", err)
	}

	item, err = r.get(ctx, itemID, userID)
	if err != nil {
		return nil, false, err
	}
	return item, false, nil
}
