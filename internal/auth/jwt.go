package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

type TokenConfig struct {
	Secret string
	Issuer string
}

// Identity is what the identity provider tells us about the caller.
type Identity struct {
	Subject         string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

type TokenVerifier struct {
	cfg TokenConfig
}

func NewTokenVerifier(cfg TokenConfig) *TokenVerifier {
	return &TokenVerifier{cfg: cfg}
}

// Verify validates an HS256 JWT signed with the configured secret and issuer.
func (v *TokenVerifier) Verify(token string) (*Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}
	if v.cfg.Secret == "" {
		return nil, fmt.Errorf("%w: no signing secret configured", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	}
	if v.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.cfg.Issuer))
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(v.cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	identity := &Identity{Subject: subject}
	identity.Email, _ = claims["email"].(string)
	identity.FirstName, _ = claims["given_name"].(string)
	identity.LastName, _ = claims["family_name"].(string)
	identity.ProfileImageURL, _ = claims["picture"].(string)

	return identity, nil
}

// IssueToken signs a token the way the identity provider does; the seed
// command and the tests use it to mint logins.
func IssueToken(cfg TokenConfig, identity Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": identity.Subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if cfg.Issuer != "" {
		claims["iss"] = cfg.Issuer
	}
	if identity.Email != "" {
		claims["email"] = identity.Email
	}
	if identity.FirstName != "" {
		claims["given_name"] = identity.FirstName
	}
	if identity.LastName != "" {
		claims["family_name"] = identity.LastName
	}
	if identity.ProfileImageURL != "" {
		claims["picture"] = identity.ProfileImageURL
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}

func BearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	if len(header) < len("bearer ") || !strings.EqualFold(header[:len("bearer ")], "bearer ") {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(header[len("bearer "):]), nil
}
