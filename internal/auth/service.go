package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "hoopking-session||"
	tokensSetKey     = "hoopking-sessions"
	tokenLength      = 35
)

var (
	ErrSessionNotFound = errors.New("login session not found")
	ErrSessionExpired  = errors.New("login session expired")
)

// Service keeps login sessions in redis. A session value is
// "<created at unix>|<user id>", and every live token is also a member of
// the tokens set so ScanAndClean can find it.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// injectable token generator, for tests
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Login(ctx context.Context, userID string, createdAt time.Time) (token string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.login")
	defer tracing.EndSpan(span, &err)

	if userID == "" {
		return "", errors.New("login: empty user id")
	}

	token, err = as.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, sessionValue(createdAt, userID), as.ttl)
	if err := cmdSet.Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", fmt.Errorf("register session: %w", err)
	}

	return token, nil
}

// UserID resolves a live session token to its user.
func (as *Service) UserID(ctx context.Context, token string) (userID string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.userID")
	defer tracing.EndSpan(span, &err)

	createdAt, userID, err := as.readSession(ctx, token)
	if err != nil {
		return "", err
	}
	if time.Since(createdAt) > as.ttl {
		return "", ErrSessionExpired
	}
	return userID, nil
}

func (as *Service) Logout(ctx context.Context, token string) (loggedOut bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.logout")
	defer tracing.EndSpan(span, &err)

	if _, _, err := as.readSession(ctx, token); err != nil {
		return false, err
	}

	if err := as.removeSession(ctx, token); err != nil {
		return false, err
	}

	return true, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		createdAt, _, err := as.readSession(ctx, token)
		switch {
		case errors.Is(err, ErrSessionNotFound):
			// key already expired in redis, only the set member is left
			toRemove = append(toRemove, token)
		case err != nil:
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
		case time.Since(createdAt) > as.ttl:
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.removeSession(ctx, token); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
		}
	}
	log.Debugf("auth service, scan and clean done, removed %d sessions", len(toRemove))
}

func (as *Service) readSession(ctx context.Context, token string) (time.Time, string, error) {
	if token == "" {
		return time.Time{}, "", ErrSessionNotFound
	}

	cmd := as.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, "", ErrSessionNotFound
		}
		return time.Time{}, "", fmt.Errorf("get session: %w", err)
	}

	return parseSessionValue(cmd.Val())
}

func (as *Service) removeSession(ctx context.Context, token string) error {
	if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return fmt.Errorf("unregister session: %w", err)
	}
	return nil
}

func sessionValue(createdAt time.Time, userID string) string {
	return strconv.FormatInt(createdAt.Unix(), 10) + "|" + userID
}

func parseSessionValue(val string) (time.Time, string, error) {
	createdAtStr, userID, found := strings.Cut(val, "|")
	if !found || userID == "" {
		return time.Time{}, "", fmt.Errorf("malformed session value [%s]", val)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("parse session created at: %w", err)
	}
	return time.Unix(createdAtUnix, 0), userID, nil
}
