package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/hoopmetrics/hoopking/internal/middleware"
	"github.com/hoopmetrics/hoopking/internal/telemetry/metrics"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type sessionManager interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type tokenVerifier interface {
	Verify(token string) (*Identity, error)
}

type userUpserter interface {
	UpsertIdentity(ctx context.Context, identity Identity) error
}

type Handler struct {
	sessions sessionManager
	verifier tokenVerifier
	users    userUpserter
}

func NewHandler(sessions sessionManager, verifier tokenVerifier, users userUpserter) *Handler {
	return &Handler{
		sessions: sessions,
		verifier: verifier,
		users:    users,
	}
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	allowedPerMin int,
) {
	authRouter := mainRouter.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/login", h.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", h.HandleLogout).Methods("POST", "OPTIONS").Name("logout")

	// rate limit the login and logout endpoints per client ip
	authRouter.Use(middleware.RateLimit(rateLimiter, "login", allowedPerMin, middleware.ClientIPKey, metricsManager))
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	bearer, err := BearerToken(r.Header.Get("Authorization"))
	if err != nil {
		span.SetStatus(codes.Error, "missing-bearer")
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	identity, err := h.verifier.Verify(bearer)
	if err != nil {
		log.Tracef("login, verify identity token: %s", err)
		span.SetStatus(codes.Error, "invalid-bearer")
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	span.SetAttributes(attribute.String("user.id", identity.Subject))

	if err := h.users.UpsertIdentity(ctx, *identity); err != nil {
		log.Errorf("login, upsert user [%s]: %s", identity.Subject, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "upsert-user")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	token, err := h.sessions.Login(ctx, identity.Subject, time.Now())
	if err != nil {
		log.Errorf("login, create session for [%s]: %s", identity.Subject, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "create-session")
		pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	log.Tracef("new login success for [%s]", identity.Subject)
	pkg.WriteJSONResponseOK(w, LoginResponse{Token: token})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	authToken := r.Header.Get(SessionTokenHeader)
	if authToken == "" {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	loggedOut, err := h.sessions.Logout(ctx, authToken)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			log.Errorf("logout: %s", err)
		}
		span.SetStatus(codes.Error, "logout-failed")
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if !loggedOut {
		pkg.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	pkg.WriteJSONResponseOK(w, pkg.MessageResponse{Message: "Logged out"})
}
