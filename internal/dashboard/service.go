package dashboard

import (
	"context"
	"fmt"

	"github.com/hoopmetrics/hoopking/internal/achievements"
	"github.com/hoopmetrics/hoopking/internal/activity"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/internal/users"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

const (
	LeaderboardSize = 10
	FeedSize        = 10
)

type statsSource interface {
	Stats(ctx context.Context, userID string) (*users.Stats, error)
	Leaderboard(ctx context.Context, limit int) ([]users.LeaderboardEntry, error)
}

type achievementLister interface {
	ListForUser(ctx context.Context, userID string) ([]achievements.Achievement, error)
}

type feedSource interface {
	ListPublic(ctx context.Context, limit int) ([]activity.FeedEntry, error)
}

type Dashboard struct {
	Stats        *users.Stats               `json:"stats"`
	Achievements []achievements.Achievement `json:"achievements"`
	Leaderboard  []users.LeaderboardEntry   `json:"leaderboard"`
	ActivityFeed []activity.FeedEntry       `json:"activityFeed"`
}

type Service struct {
	users        statsSource
	achievements achievementLister
	feed         feedSource
}

func NewService(users statsSource, achievements achievementLister, feed feedSource) *Service {
	return &Service{
		users:        users,
		achievements: achievements,
		feed:         feed,
	}
}

// Dashboard gathers the four dashboard parts concurrently. The first failure
// cancels the other reads.
func (s *Service) Dashboard(ctx context.Context, userID string) (_ *Dashboard, err error) {
	ctx, span := tracing.StartSpan(ctx, "service.dashboard.get")
	defer tracing.EndSpan(span, &err)
	span.SetAttributes(attribute.String("user.id", userID))

	d := &Dashboard{}
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.users.Stats(gCtx, userID)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		d.Stats = stats
		return nil
	})
	g.Go(func() error {
		unlocked, err := s.achievements.ListForUser(gCtx, userID)
		if err != nil {
			return fmt.Errorf("achievements: %w", err)
		}
		d.Achievements = unlocked
		return nil
	})
	g.Go(func() error {
		leaderboard, err := s.users.Leaderboard(gCtx, LeaderboardSize)
		if err != nil {
			return fmt.Errorf("leaderboard: %w", err)
		}
		d.Leaderboard = leaderboard
		return nil
	})
	g.Go(func() error {
		feed, err := s.feed.ListPublic(gCtx, FeedSize)
		if err != nil {
			return fmt.Errorf("activity feed: %w", err)
		}
		d.ActivityFeed = feed
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return d, nil
}
