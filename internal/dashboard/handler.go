package dashboard

import (
	"context"
	"net/http"

	"github.com/hoopmetrics/hoopking/internal/auth"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type dashboardService interface {
	Dashboard(ctx context.Context, userID string) (*Dashboard, error)
}

type Handler struct {
	service dashboardService
}

func NewHandler(service dashboardService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/dashboard", h.HandleGet).Methods("GET", "OPTIONS").Name("dashboard")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.dashboard.get")
	defer span.End()

	userID, _ := auth.UserIDFromContext(ctx)
	d, err := h.service.Dashboard(ctx, userID)
	if err != nil {
		log.Errorf("get dashboard [%s]: %s", userID, err)
		span.SetStatus(codes.Error, "get-dashboard")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}

	pkg.WriteJSONResponseOK(w, d)
}
