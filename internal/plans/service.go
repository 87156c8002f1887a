package plans

import (
	"context"
	"errors"

	"github.com/hoopmetrics/hoopking/internal/telemetry/metrics"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type Service struct {
	*Repo
	metrics *metrics.Manager
}

func NewService(repo *Repo, metricsManager *metrics.Manager) *Service {
	return &Service{
		Repo:    repo,
		metrics: metricsManager,
	}
}

// StartPlan enrolls the user and counts the attempt by its outcome.
func (s *Service) StartPlan(ctx context.Context, userID, planID string) (_ *UserPlan, err error) {
	ctx, span := tracing.StartSpan(ctx, "service.plans.start")
	defer tracing.EndSpan(span, &err)

	userPlan, err := s.Repo.StartPlan(ctx, userID, planID)
	result := enrollmentResult(err)
	span.SetAttributes(attribute.String("result", result))
	s.metrics.CounterPlanEnrollments.WithLabelValues(result).Inc()

	return userPlan, err
}

func enrollmentResult(err error) string {
	switch {
	case err == nil:
		return "started"
	case errors.Is(err, ErrActivePlanExists):
		return "already_active"
	case errors.Is(err, ErrPlanNotFound):
		return "plan_not_found"
	default:
		return "error"
	}
}
