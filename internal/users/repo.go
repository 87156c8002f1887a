package users

import (
	"context"
	"fmt"
	"math"

	"github.com/hoopmetrics/hoopking/internal/auth"
	"github.com/hoopmetrics/hoopking/internal/db"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// UserColumns are the columns of a users row aliased u, matching UserScanDest.
const UserColumns = `u.id, u.email, u.first_name, u.last_name, u.profile_image_url, u.created_at, u.updated_at`

const profileColumns = `
	p.id, p.user_id, p.age, p.height, p.weight::float8, p.experience, p.goals, p.preferences,
	p.current_streak, p.longest_streak, p.daily_streak, p.total_workouts, p.total_points,
	p.skill_level, COALESCE(p.recovery_score, 0)::float8, p.last_workout_at, p.updated_at`

type Repo struct {
	db db.DB
}

func NewRepo(pool db.DB) *Repo {
	return &Repo{
		db: pool,
	}
}

func UserScanDest(u *User) []any {
	return []any{&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL, &u.CreatedAt, &u.UpdatedAt}
}

func scanUser(row pgx.Row) (*User, error) {
	u := &User{}
	if err := row.Scan(UserScanDest(u)...); err != nil {
		return nil, err
	}
	return u, nil
}

func profileDest(p *Profile) []any {
	return []any{
		&p.ID, &p.UserID, &p.Age, &p.Height, &p.Weight, &p.Experience, &p.Goals, &p.Preferences,
		&p.CurrentStreak, &p.LongestStreak, &p.DailyStreak, &p.TotalWorkouts, &p.TotalPoints,
		&p.SkillLevel, &p.RecoveryScore, &p.LastWorkoutAt, &p.UpdatedAt,
	}
}

func scanProfile(row pgx.Row) (*Profile, error) {
	p := &Profile{}
	if err := row.Scan(profileDest(p)...); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.users.get")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", id))

	user, err := scanUser(r.db.QueryRow(ctx, `
		SELECT `+UserColumns+`
		FROM users u
		WHERE u.id = $1
	`, id))
	if pkg.IsNoRowsError(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Upsert creates the user or refreshes its identity fields, and makes sure it
// has a profile.
func (r *Repo) Upsert(ctx context.Context, params UpsertParams) (_ *User, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.users.upsert")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", params.ID))

	var user *User
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		user, err = scanUser(tx.QueryRow(ctx, `
			INSERT INTO users AS u (id, email, first_name, last_name, profile_image_url)
			VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
			ON CONFLICT (id) DO UPDATE SET
				email = EXCLUDED.email,
				first_name = EXCLUDED.first_name,
				last_name = EXCLUDED.last_name,
				profile_image_url = EXCLUDED.profile_image_url,
				updated_at = now()
			RETURNING `+UserColumns,
			params.ID, params.Email, params.FirstName, params.LastName, params.ProfileImageURL,
		))
		if err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}
		return ensureProfile(ctx, tx, user.ID)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Provision inserts the user if it does not exist yet, leaving existing rows
// untouched.
func (r *Repo) Provision(ctx context.Context, params UpsertParams) (err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.users.provision")
	defer tracing.EndSpan(span, &err)

	return db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO users (id, email, first_name, last_name, profile_image_url)
			VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
			ON CONFLICT (id) DO NOTHING
		`, params.ID, params.Email, params.FirstName, params.LastName, params.ProfileImageURL); err != nil {
			return fmt.Errorf("provision user: %w", err)
		}
		return ensureProfile(ctx, tx, params.ID)
	})
}

func ensureProfile(ctx context.Context, q db.Querier, userID string) error {
	_, err := q.Exec(ctx, `
		INSERT INTO user_profiles (user_id, experience, total_workouts, total_points, current_streak,
		                           longest_streak, skill_level, recovery_score)
		VALUES ($1, $2, 0, 0, 0, 0, $3, $4)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, DefaultExperience, DefaultSkillLevel, DefaultRecoveryScore)
	if err != nil {
		return fmt.Errorf("create default profile: %w", err)
	}
	return nil
}

// UpsertIdentity is called on login with the identity provider claims.
func (r *Repo) UpsertIdentity(ctx context.Context, identity auth.Identity) error {
	_, err := r.Upsert(ctx, identityParams(identity))
	return err
}

// ProvisionIdentity is called for every bearer authenticated request, so
// callers that never logged in still own a user row.
func (r *Repo) ProvisionIdentity(ctx context.Context, identity auth.Identity) error {
	return r.Provision(ctx, identityParams(identity))
}

func identityParams(identity auth.Identity) UpsertParams {
	return UpsertParams{
		ID:              identity.Subject,
		Email:           identity.Email,
		FirstName:       identity.FirstName,
		LastName:        identity.LastName,
		ProfileImageURL: identity.ProfileImageURL,
	}
}

func (r *Repo) GetProfile(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.users.profile.get")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID))

	profile, err := scanProfile(r.db.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM user_profiles p
		WHERE p.user_id = $1
	`, userID))
	if pkg.IsNoRowsError(err) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (r *Repo) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (_ *Profile, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.users.profile.update")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID))

	var preferences any
	if len(update.Preferences) > 0 {
		preferences = update.Preferences
	}

	profile, err := scanProfile(r.db.QueryRow(ctx, `
		UPDATE user_profiles p SET
			age = COALESCE($2, p.age),
			height = COALESCE($3, p.height),
			weight = COALESCE($4, p.weight),
			experience = COALESCE($5, p.experience),
			goals = COALESCE($6, p.goals),
			preferences = COALESCE($7::jsonb, p.preferences),
			current_streak = COALESCE($8, p.current_streak),
			longest_streak = GREATEST(COALESCE($9, p.longest_streak), COALESCE($8, p.current_streak)),
			total_workouts = COALESCE($10, p.total_workouts),
			total_points = COALESCE($11, p.total_points),
			skill_level = COALESCE($12, p.skill_level),
			recovery_score = COALESCE($13, p.recovery_score),
			updated_at = now()
		WHERE p.user_id = $1
		RETURNING `+profileColumns,
		userID,
		update.Age, update.Height, update.Weight, update.Experience, update.Goals, preferences,
		update.CurrentStreak, update.LongestStreak, update.TotalWorkouts, update.TotalPoints,
		update.SkillLevel, update.RecoveryScore,
	))
	if pkg.IsNoRowsError(err) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}

// Stats reads the profile counters and the average heart rate over all the
// sessions that recorded one. A user without a profile gets zero stats.
func (r *Repo) Stats(ctx context.Context, userID string) (_ *Stats, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.users.stats")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID))

	stats := &Stats{}
	var avgHeartRate float64
	err = r.db.QueryRow(ctx, `
		SELECT
			COALESCE(p.total_workouts, 0),
			COALESCE(p.current_streak, 0),
			COALESCE(p.daily_streak, 0),
			COALESCE(p.longest_streak, 0),
			COALESCE(p.total_points, 0),
			COALESCE(p.recovery_score, 0)::float8,
			COALESCE((
				SELECT AVG(s.average_heart_rate)
				FROM workout_sessions s
				WHERE s.user_id = $1 AND s.average_heart_rate IS NOT NULL
			), 0)::float8
		FROM (SELECT $1::varchar AS user_id) AS caller
		LEFT JOIN user_profiles p ON p.user_id = caller.user_id
	`, userID).Scan(
		&stats.TotalWorkouts,
		&stats.CurrentStreak,
		&stats.DailyStreak,
		&stats.LongestStreak,
		&stats.TotalPoints,
		&stats.RecoveryScore,
		&avgHeartRate,
	)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	stats.AverageHeartRate = int(math.Round(avgHeartRate))

	return stats, nil
}

// Leaderboard ranks profiles by total points, rank 1 being the top.
func (r *Repo) Leaderboard(ctx context.Context, limit int) (_ []LeaderboardEntry, err error) {
	ctx, span := tracing.StartSpan(ctx, "repo.users.leaderboard")
	defer tracing.EndSpan(span, &err)

	rows, err := r.db.Query(ctx, `
		SELECT `+UserColumns+`, `+profileColumns+`
		FROM user_profiles p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.total_points DESC, p.updated_at ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]LeaderboardEntry, 0, limit)
	for rows.Next() {
		var entry LeaderboardEntry
		dest := append(UserScanDest(&entry.User), profileDest(&entry.Profile)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		entry.Rank = len(entries) + 1
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard: %w", err)
	}

	return entries, nil
}
