package misc

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const healthCheckTimeout = 2 * time.Second

// Check reports whether a dependency is reachable.
type Check func(ctx context.Context) error

type Handler struct {
	versionInfo string
	checks      map[string]Check
}

func NewHandler(versionInfo string, checks map[string]Check) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		checks:      checks,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.HandleHealth).Methods("GET").Name("healthz")
	router.HandleFunc("/api/version", h.HandleVersion).Methods("GET", "OPTIONS").Name("version")
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleHealth runs every check and answers 503 when any of them fails.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.misc.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			log.Errorf("health check [%s]: %s", name, err)
			resp.Status = "degraded"
			resp.Checks[name] = "failing"
			span.SetAttributes(attribute.String("health."+name, err.Error()))
			continue
		}
		resp.Checks[name] = "ok"
	}

	if resp.Status != "ok" {
		span.SetStatus(codes.Error, "unhealthy")
		pkg.WriteJSONResponse(w, http.StatusServiceUnavailable, resp)
		return
	}
	pkg.WriteJSONResponseOK(w, resp)
}

func (h *Handler) HandleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponseOK(w, map[string]string{"version": h.versionInfo})
}
