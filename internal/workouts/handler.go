package workouts

import (
	"context"
	"errors"
	"net/http"

	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type catalog interface {
	List(ctx context.Context, limit int) ([]Workout, error)
	Get(ctx context.Context, id string) (*Workout, error)
}

type Handler struct {
	catalog catalog
}

func NewHandler(catalog catalog) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/workouts", h.HandleList).Methods("GET", "OPTIONS").Name("workouts-list")
	router.HandleFunc("/api/workouts/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("workouts-get")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.workouts.list")
	defer span.End()

	workouts, err := h.catalog.List(ctx, DefaultListLimit)
	if err != nil {
		log.Errorf("list workouts: %s", err)
		span.SetStatus(codes.Error, "list-workouts")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch workouts")
		return
	}

	pkg.WriteJSONResponseOK(w, workouts)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.workouts.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("workout.id", id))

	// ids are uuids, anything else cannot exist
	if _, err := uuid.Parse(id); err != nil {
		pkg.WriteErrorResponse(w, http.StatusNotFound, "Workout not found")
		return
	}

	workout, err := h.catalog.Get(ctx, id)
	if errors.Is(err, ErrWorkoutNotFound) {
		pkg.WriteErrorResponse(w, http.StatusNotFound, "Workout not found")
		return
	}
	if err != nil {
		log.Errorf("get workout [%s]: %s", id, err)
		span.SetStatus(codes.Error, "get-workout")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch workout")
		return
	}

	pkg.WriteJSONResponseOK(w, workout)
}
