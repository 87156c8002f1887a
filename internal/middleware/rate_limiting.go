package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/hoopmetrics/hoopking/internal/telemetry/metrics"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=rate_limiting_mocks_test.go -package=middleware_test

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// KeyFunc picks the identity a request is rate limited by. An empty key
// shares one bucket for the whole limiter.
type KeyFunc func(r *http.Request) string

// ClientIPKey limits by the caller's address.
func ClientIPKey(r *http.Request) string {
	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		return ""
	}
	return ip
}

func RateLimit(
	rateLimiter RequestRateLimiter,
	limiterName string,
	allowedPerMin int,
	keyFunc KeyFunc,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			key := limiterName
			if keyFunc != nil {
				if k := keyFunc(r); k != "" {
					key += ":" + k
				}
			}

			res, err := rateLimiter.Allow(r.Context(), key, redis_rate.PerMinute(allowedPerMin))
			if err != nil {
				log.Errorf("rate limiter [%s]: %s", limiterName, err)
				pkg.WriteErrorResponse(w, http.StatusInternalServerError, "rate limit internal error")
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.WithLabelValues(limiterName).Inc()
			}

			retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			pkg.WriteErrorResponse(
				w,
				http.StatusTooManyRequests,
				fmt.Sprintf("Too many requests, retry after %d seconds", retryAfter),
			)
		})
	}
}
