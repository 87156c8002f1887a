package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/hoopmetrics/hoopking/internal/auth"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionService interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Session, error)
	ListForUser(ctx context.Context, userID string, limit int) ([]Session, error)
	Update(ctx context.Context, userID, sessionID string, params UpdateParams) (*Session, error)
}

type Handler struct {
	service sessionService
}

func NewHandler(service sessionService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/sessions", h.HandleList).Methods("GET", "OPTIONS").Name("sessions-list")
	router.HandleFunc("/api/sessions", h.HandleCreate).Methods("POST").Name("sessions-create")
	router.HandleFunc("/api/sessions/{id}", h.HandleUpdate).Methods("PATCH", "OPTIONS").Name("sessions-update")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.sessions.list")
	defer span.End()

	limit := DefaultListLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed <= 0 {
			pkg.WriteValidationErrorResponse(w, pkg.NewValidationError("Invalid query").Add("limit", "must be a positive number"))
			return
		}
		limit = parsed
	}

	userID, _ := auth.UserIDFromContext(ctx)
	sessions, err := h.service.ListForUser(ctx, userID, limit)
	if err != nil {
		log.Errorf("list sessions [%s]: %s", userID, err)
		span.SetStatus(codes.Error, "list-sessions")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch sessions")
		return
	}

	pkg.WriteJSONResponseOK(w, sessions)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.sessions.create")
	defer span.End()

	var params CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("create session, decode body: %s", err)
		pkg.WriteValidationErrorResponse(w, pkg.NewValidationError("Invalid session data").Add("body", "must be a JSON object"))
		return
	}

	userID, _ := auth.UserIDFromContext(ctx)
	session, err := h.service.Create(ctx, userID, params)
	if verr, ok := pkg.AsValidationError(err); ok {
		pkg.WriteValidationErrorResponse(w, verr)
		return
	}
	if err != nil {
		log.Errorf("create session [%s]: %s", userID, err)
		span.SetStatus(codes.Error, "create-session")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	pkg.WriteJSONResponseOK(w, session)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.sessions.update")
	defer span.End()

	sessionID := mux.Vars(r)["id"]

	var params UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("update session [%s], decode body: %s", sessionID, err)
		pkg.WriteValidationErrorResponse(w, pkg.NewValidationError("Invalid session data").Add("body", "must be a JSON object"))
		return
	}

	userID, _ := auth.UserIDFromContext(ctx)
	session, err := h.service.Update(ctx, userID, sessionID, params)
	if verr, ok := pkg.AsValidationError(err); ok {
		pkg.WriteValidationErrorResponse(w, verr)
		return
	}
	if errors.Is(err, ErrSessionNotFound) {
		pkg.WriteErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		log.Errorf("update session [%s] of user [%s]: %s", sessionID, userID, err)
		span.SetStatus(codes.Error, "update-session")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update session")
		return
	}

	pkg.WriteJSONResponseOK(w, session)
}
