package users

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type userRepo interface {
	Get(ctx context.Context, id string) (*User, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*Profile, error)
}

type Handler struct {
	repo userRepo
}

func NewHandler(repo userRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/user", h.HandleGetUser).Methods("GET", "OPTIONS").Name("auth-user")
	router.HandleFunc("/api/profile", h.HandleGetProfile).Methods("GET", "OPTIONS").Name("profile-get")
	router.HandleFunc("/api/profile", h.HandleUpdateProfile).Methods("PATCH").Name("profile-update")
}

func (h *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.users.get")
	defer span.End()

	userID, _ := auth.UserIDFromContext(ctx)
	user, err := h.repo.Get(ctx, userID)
	if err != nil {
		// a caller authenticated by session always has a row, a missing one is a server side problem
		log.Errorf("get user [%s]: %s", userID, err)
		span.SetStatus(codes.Error, "get-user")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	profile, err := h.repo.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		log.Errorf("get user [%s] profile: %s", userID, err)
		span.SetStatus(codes.Error, "get-profile")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	pkg.WriteJSONResponseOK(w, UserWithProfile{User: user, Profile: profile})
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.users.profile.get")
	defer span.End()

	userID, _ := auth.UserIDFromContext(ctx)
	profile, err := h.repo.GetProfile(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		pkg.WriteJSONResponseOK(w, nil)
		return
	}
	if err != nil {
		log.Errorf("get profile [%s]: %s", userID, err)
		span.SetStatus(codes.Error, "get-profile")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	pkg.WriteJSONResponseOK(w, profile)
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "handler.users.profile.update")
	defer span.End()

	var update ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Tracef("update profile, decode body: %s", err)
		pkg.WriteValidationErrorResponse(w, pkg.NewValidationError("Invalid profile data").Add("body", "must be a JSON object"))
		return
	}
	if err := update.Validate(); err != nil {
		if verr, ok := pkg.AsValidationError(err); ok {
			span.SetStatus(codes.Error, "invalid-profile")
			pkg.WriteValidationErrorResponse(w, verr)
			return
		}
	}

	userID, _ := auth.UserIDFromContext(ctx)
	profile, err := h.repo.UpdateProfile(ctx, userID, update)
	if errors.Is(err, ErrProfileNotFound) {
		pkg.WriteErrorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}
	if err != nil {
		log.Errorf("update profile [%s]: %s", userID, err)
		span.SetStatus(codes.Error, "update-profile")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	pkg.WriteJSONResponseOK(w, profile)
}
