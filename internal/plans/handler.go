package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hoopmetrics/hoopking/internal/auth"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

type planService interface {
	ListPlans(ctx context.Context, limit int) ([]Plan, error)
	GetPlanWithWorkouts(ctx context.Context, id string) (*PlanWithWorkouts, error)
	ListActivePlans(ctx context.Context, userID string) ([]ActivePlan, error)
	StartPlan(ctx context.Context, userID, planID string) (*UserPlan, error)
	Progress(ctx context.Context, userID, planID string) (*Progress, error)
}

type Handler struct {
	service planService
}

func NewHandler(service planService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/fitness-plans", h.HandleListPlans).Methods("GET", "OPTIONS").Name("plans-list")
	router.HandleFunc("/api/fitness-plans/{id}", h.HandleGetPlan).Methods("GET", "OPTIONS").Name("plans-get")
	router.HandleFunc("/api/user-plans", h.HandleListActive).Methods("GET", "OPTIONS").Name("user-plans-list")
	router.HandleFunc("/api/user-plans/start", h.HandleStart).Methods("POST", "OPTIONS").Name("user-plans-start")
	router.HandleFunc("/api/user-plans/{planId}/progress", h.HandleProgress).Methods("GET", "OPTIONS").Name("user-plans-progress")
}

func (h *Handler) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.plans.list")
	defer span.End()

	plans, err := h.service.ListPlans(ctx, DefaultListLimit)
	if err != nil {
		log.Errorf("list fitness plans: %s", err)
		span.SetStatus(codes.Error, "list-plans")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch fitness plans")
		return
	}

	pkg.WriteJSONResponseOK(w, plans)
}

func (h *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.plans.get")
	defer span.End()

	planID := mux.Vars(r)["id"]
	plan, err := h.service.GetPlanWithWorkouts(ctx, planID)
	if errors.Is(err, ErrPlanNotFound) {
		pkg.WriteErrorResponse(w, http.StatusNotFound, "Fitness plan not found")
		return
	}
	if err != nil {
		log.Errorf("get fitness plan [%s]: %s", planID, err)
		span.SetStatus(codes.Error, "get-plan")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch fitness plan")
		return
	}

	pkg.WriteJSONResponseOK(w, plan)
}

func (h *Handler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.plans.list-active")
	defer span.End()

	userID, _ := auth.UserIDFromContext(ctx)
	active, err := h.service.ListActivePlans(ctx, userID)
	if err != nil {
		log.Errorf("list active plans [%s]: %s", userID, err)
		span.SetStatus(codes.Error, "list-active-plans")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch user plans")
		return
	}

	pkg.WriteJSONResponseOK(w, active)
}

type startPlanRequest struct {
	PlanID string `json:"planId"`
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.plans.start")
	defer span.End()

	var req startPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlanID == "" {
		pkg.WriteValidationErrorResponse(w, pkg.NewValidationError("Invalid plan data").Add("planId", "is required"))
		return
	}

	userID, _ := auth.UserIDFromContext(ctx)
	userPlan, err := h.service.StartPlan(ctx, userID, req.PlanID)
	switch {
	case errors.Is(err, ErrActivePlanExists):
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "You already have an active plan with this ID")
		return
	case errors.Is(err, ErrPlanNotFound):
		pkg.WriteErrorResponse(w, http.StatusNotFound, "Fitness plan not found")
		return
	case err != nil:
		log.Errorf("start plan [%s] for user [%s]: %s", req.PlanID, userID, err)
		span.SetStatus(codes.Error, "start-plan")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to start fitness plan")
		return
	}

	log.Debugf("user [%s] started plan [%s]", userID, req.PlanID)
	pkg.WriteJSONResponseOK(w, userPlan)
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.plans.progress")
	defer span.End()

	planID := mux.Vars(r)["planId"]
	userID, _ := auth.UserIDFromContext(ctx)
	progress, err := h.service.Progress(ctx, userID, planID)
	if errors.Is(err, ErrEnrollmentNotFound) {
		pkg.WriteErrorResponse(w, http.StatusNotFound, "Plan enrollment not found")
		return
	}
	if err != nil {
		log.Errorf("plan [%s] progress for user [%s]: %s", planID, userID, err)
		span.SetStatus(codes.Error, "plan-progress")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch plan progress")
		return
	}

	pkg.WriteJSONResponseOK(w, progress)
}
