package inbox

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=inbox_test

type inboxService interface {
	Inbox(ctx context.Context, userID string) ([]Item, error)
	Categorize(ctx context.Context, itemID, userID, category string) (*Item, error)
	Ignore(ctx context.Context, itemID, userID string) (*Item, error)
}

type Handler struct {
	service inboxService
}

func NewHandler(service inboxService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/workout-inbox", h.HandleList).Methods("GET", "OPTIONS").Name("inbox-list")
	router.HandleFunc("/api/workout-inbox/{id}/categorize", h.HandleCategorize).Methods("POST", "OPTIONS").Name("inbox-categorize")
	router.HandleFunc("/api/workout-inbox/{id}/ignore", h.HandleIgnore).Methods("POST", "OPTIONS").Name("inbox-ignore")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.inbox.list")
	defer span.End()

	userID, _ := auth.UserIDFromContext(ctx)
	items, err := h.service.Inbox(ctx, userID)
	if err != nil {
		log.Errorf("workout inbox [%s]: %s", userID, err)
		span.SetStatus(codes.Error, "list-inbox")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch workout inbox")
		return
	}

	pkg.WriteJSONResponseOK(w, items)
}

type categorizeRequest struct {
	Category string `json:"category"`
}

func (h *Handler) HandleCategorize(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.inbox.categorize")
	defer span.End()

	itemID := mux.Vars(r)["id"]
	var req categorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteValidationErrorResponse(w, pkg.NewValidationError("Invalid category").Add("body", "must be a JSON object"))
		return
	}

	userID, _ := auth.UserIDFromContext(ctx)
	item, err := h.service.Categorize(ctx, itemID, userID, req.Category)
	if verr, ok := pkg.AsValidationError(err); ok {
		pkg.WriteValidationErrorResponse(w, verr)
		return
	}
	if errors.Is(err, ErrItemNotFound) {
		pkg.WriteErrorResponse(w, http.StatusNotFound, "Inbox item not found")
		return
	}
	if err != nil {
		log.Errorf("categorize inbox item [%s] of user [%s]: %s", itemID, userID, err)
		span.SetStatus(codes.Error, "categorize")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to categorize workout")
		return
	}

	pkg.WriteJSONResponseOK(w, item)
}

func (h *Handler) HandleIgnore(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.inbox.ignore")
	defer span.End()

	itemID := mux.Vars(r)["id"]
	userID, _ := auth.UserIDFromContext(ctx)
	item, err := h.service.Ignore(ctx, itemID, userID)
	if errors.Is(err, ErrItemNotFound) {
		pkg.WriteErrorResponse(w, http.StatusNotFound, "Inbox item not found")
		return
	}
	if err != nil {
		log.Errorf("ignore inbox item [%s] of user [%s]: %s", itemID, userID, err)
		span.SetStatus(codes.Error, "ignore")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to ignore workout")
		return
	}

	pkg.WriteJSONResponseOK(w, item)
}
