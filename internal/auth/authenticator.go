package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
)

const SessionTokenHeader = "X-HOOP-TOKEN"

var ErrUnauthenticated = errors.New("unauthenticated")

type sessionResolver interface {
	UserID(ctx context.Context, token string) (string, error)
}

type identityVerifier interface {
	Verify(token string) (*Identity, error)
}

// IdentityProvisioner makes sure a verified identity has its user row.
type IdentityProvisioner interface {
	ProvisionIdentity(ctx context.Context, identity Identity) error
}

// Authenticator resolves the caller of a request, either from a login session
// token or from an identity provider bearer JWT.
type Authenticator struct {
	sessions    sessionResolver
	verifier    identityVerifier
	provisioner IdentityProvisioner
}

func NewAuthenticator(
	sessions sessionResolver,
	verifier identityVerifier,
	provisioner IdentityProvisioner,
) *Authenticator {
	return &Authenticator{
		sessions:    sessions,
		verifier:    verifier,
		provisioner: provisioner,
	}
}

func (a *Authenticator) Authenticate(ctx context.Context, r *http.Request) (userID string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authenticator.authenticate")
	defer tracing.EndSpan(span, &err)

	if token := r.Header.Get(SessionTokenHeader); token != "" {
		userID, err := a.sessions.UserID(ctx, token)
		switch {
		case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrSessionExpired):
			return "", fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		case err != nil:
			return "", fmt.Errorf("resolve session: %w", err)
		}
		return userID, nil
	}

	bearer, err := BearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	identity, err := a.verifier.Verify(bearer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	if a.provisioner != nil {
		if err := a.provisioner.ProvisionIdentity(ctx, *identity); err != nil {
			return "", fmt.Errorf("provision identity: %w", err)
		}
	}

	return identity.Subject, nil
}
