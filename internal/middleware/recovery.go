package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/hoopmetrics/hoopking/internal/telemetry/metrics"
	"github.com/hoopmetrics/hoopking/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PanicRecovery turns a handler panic into a 500 and records it on the
// request span. http.ErrAbortHandler is re-raised so net/http drops the
// connection.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.WithField("route", routeName(req)).
					Errorf("http: panic serving %s: %v\n%s", req.URL.Path, rec, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}

				span := trace.SpanFromContext(req.Context())
				span.RecordError(fmt.Errorf("panic: %v", rec))
				span.SetStatus(codes.Error, "panic")

				pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			}()

			next.ServeHTTP(w, req)
		})
	}
}
