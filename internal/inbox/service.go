package inbox

import (
	"context"
	"strings"

	"github.com/hoopmetrics/hoopking/internal/telemetry/metrics"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	log "github.com/sirupsen/logrus"
)

const maxCategoryLength = 50

type Service struct {
	repo    *Repo
	metrics *metrics.Manager
}

func NewService(repo *Repo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:    repo,
		metrics: metricsManager,
	}
}

// Inbox seeds a fresh user's inbox and lists it.
func (s *Service) Inbox(ctx context.Context, userID string) (_ []Item, err error) {
	ctx, span := tracing.StartSpan(ctx, "service.inbox.list")
	defer tracing.EndSpan(span, &err)

	seeded, err := s.repo.EnsureSeeded(ctx, userID)
	if err != nil {
		return nil, err
	}
	if seeded {
		log.Debugf("seeded workout inbox of user [%s]", userID)
	}

	return s.repo.List(ctx, userID)
}

func (s *Service) Categorize(ctx context.Context, itemID, userID, category string) (_ *Item, err error) {
	ctx, span := tracing.StartSpan(ctx, "service.inbox.categorize")
	defer tracing.EndSpan(span, &err)

	category = strings.TrimSpace(category)
	verr := pkg.NewValidationError("Invalid category")
	if category == "" {
		verr.Add("category", "is required")
	} else if len(category) > maxCategoryLength {
		verr.Add("category", "must be at most %d characters", maxCategoryLength)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	item, moved, err := s.repo.Categorize(ctx, itemID, userID, category)
	if err != nil {
		return nil, err
	}
	if moved {
		s.metrics.CounterInboxTriaged.WithLabelValues(string(StatusCategorized)).Inc()
	}
	return item, nil
}

func (s *Service) Ignore(ctx context.Context, itemID, userID string) (_ *Item, err error) {
	ctx, span := tracing.StartSpan(ctx, "service.inbox.ignore")
	defer tracing.EndSpan(span, &err)

	item, moved, err := s.repo.Ignore(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	if moved {
		s.metrics.CounterInboxTriaged.WithLabelValues(string(StatusIgnored)).Inc()
	}
	return item, nil
}
