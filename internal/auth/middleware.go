package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=middleware_mocks_test.go -package=auth_test

type requestAuthenticator interface {
	Authenticate(ctx context.Context, r *http.Request) (string, error)
}

type MiddlewareHandler struct {
	authenticator        requestAuthenticator
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewMiddlewareHandler(authenticator requestAuthenticator) *MiddlewareHandler {
	return &MiddlewareHandler{
		authenticator: authenticator,
		allowedPaths: map[string]bool{
			"/healthz":     true,
			"/api/version": true,
			// login presents its own identity token, logout its session token
			"/api/auth/login":  true,
			"/api/auth/logout": true,
		},
		allowedPathsPrefixes: []string{},
	}
}

func (h *MiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthCheck rejects requests whose caller cannot be resolved with a 401, and
// stores the resolved user id on the request context otherwise.
func (h *MiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PATCH, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			userID, err := h.authenticator.Authenticate(ctx, r)
			if err != nil && !errors.Is(err, ErrUnauthenticated) {
				log.Errorf("[auth middleware] authenticate => %s: %s", r.URL.Path, err)
				span.SetStatus(codes.Error, "authenticate-failed")
				span.RecordError(err)
				pkg.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if err != nil {
				log.Tracef("[auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				span.SetStatus(codes.Error, "unauthorized")
				span.RecordError(err)
				pkg.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			span.SetAttributes(attribute.String("user.id", userID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
