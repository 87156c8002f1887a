package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hoopmetrics/hoopking/internal/db"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/internal/users"

	"go.opentelemetry.io/otel/attribute"
)

const (
	TypeWorkoutCompleted = "workout_completed"
	TypeAchievement      = "achievement_unlocked"
	TypePlanStarted      = "plan_started"
)

// Entry is one append only row of the activity feed.
type Entry struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	ActivityType string          `json:"activityType"`
	Title        string          `json:"title"`
	Description  *string         `json:"description"`
	Metadata     json.RawMessage `json:"metadata"`
	Points       int             `json:"points"`
	IsPublic     bool            `json:"isPublic"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// FeedEntry is an entry joined with the user who produced it.
type FeedEntry struct {
	ID           string          `json:"id"`
	User         users.User      `json:"user"`
	ActivityType string          `json:"activityType"`
	Title        string          `json:"title"`
	Description  *string         `json:"description"`
	Points       int             `json:"points"`
	CreatedAt    time.Time       `json:"createdAt"`
	Metadata     json.RawMessage `json:"metadata"`
}

type NewEntry struct {
	UserID       string
	ActivityType string
	Title        string
	Description  string
	Points       int
	Metadata     map[string]any
	// Private entries are kept out of the public feed.
	Private bool
}

type Repo struct {
	db db.DB
}

func NewRepo(pool db.DB) *Repo {
	return &Repo{
		db: pool,
	}
}

// Record appends an entry through q, which is the caller's transaction when
// the entry is a side effect of another write.
func (r *Repo) Record(ctx context.Context, q db.Querier, entry NewEntry) (_ *Entry, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.activity.record")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(
		attribute.String("user.id", entry.UserID),
		attribute.String("activity.type", entry.ActivityType),
	)

	if q == nil {
		q = r.db
	}

	var metadata []byte
	if entry.Metadata != nil {
		if metadata, err = json.Marshal(entry.Metadata); err != nil {
			return nil, fmt.Errorf("marshal activity metadata: %w", err)
		}
	}

	e := &Entry{}
	err = q.QueryRow(ctx, `
		INSERT INTO activity_feed (user_id, activity_type, title, description, metadata, points, is_public)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
		RETURNING id, user_id, activity_type, title, description, metadata, points, is_public, created_at
	`,
		entry.UserID, entry.ActivityType, entry.Title, entry.Description, metadata, entry.Points, !entry.Private,
	).Scan(
		&e.ID, &e.UserID, &e.ActivityType, &e.Title, &e.Description, &e.Metadata, &e.Points, &e.IsPublic, &e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}

	return e, nil
}

// ListPublic returns the newest public entries of all users.
func (r *Repo) ListPublic(ctx context.Context, limit int) (_ []FeedEntry, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.activity.list-public")
	defer tracing.EndSpan(span, &err)

	rows, err := r.db.Query(ctx, `
		SELECT a.id, `+users.UserColumns+`, a.activity_type, a.title, a.description, a.points, a.created_at, a.metadata
		FROM activity_feed a
		JOIN users u ON u.id = a.user_id
		WHERE a.is_public
		ORDER BY a.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query activity feed: %w", err)
	}
	defer rows.Close()

	feed := make([]FeedEntry, 0, limit)
	for rows.Next() {
		var fe FeedEntry
		dest := append([]any{&fe.ID}, users.UserScanDest(&fe.User)...)
		dest = append(dest, &fe.ActivityType, &fe.Title, &fe.Description, &fe.Points, &fe.CreatedAt, &fe.Metadata)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		feed = append(feed, fe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity feed: %w", err)
	}

	return feed, nil
}

// ListForUser returns the newest entries of one user, public or not.
func (r *Repo) ListForUser(ctx context.Context, userID string, limit int) (_ []Entry, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.activity.list-user")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, activity_type, title, description, metadata, points, is_public, created_at
		FROM activity_feed
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query user activity: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.ActivityType, &e.Title, &e.Description, &e.Metadata, &e.Points, &e.IsPublic, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user activity: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user activity: %w", err)
	}

	return entries, nil
}
