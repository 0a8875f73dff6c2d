package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "gymplan-session||"
	tokensSetKey     = "gymplan-sessions"
	tokenLength      = 40
)

var (
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrSessionExpired   = errors.New("session expired")
	ErrInvalidSession   = errors.New("invalid session")
)

type Service struct {
	users       Users
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	// evicted on logout and clean, when shared with the LoginChecker
	SessionCache *SessionCache
}

func NewAuthService(
	users Users,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		users:          users,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func sessionValue(createdAt time.Time, principal string) string {
	return fmt.Sprintf("%d|%s", createdAt.Unix(), principal)
}

func parseSessionValue(v string) (time.Time, string, error) {
	unixStr, principal, ok := strings.Cut(v, "|")
	if !ok || principal == "" {
		return time.Time{}, "", ErrInvalidSession
	}
	createdAtUnix, err := strconv.ParseInt(unixStr, 10, 64)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %s", ErrInvalidSession, err)
	}
	return time.Unix(createdAtUnix, 0), principal, nil
}

// Login checks the credentials and opens a session bound to the user's
// principal.
func (as *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, ok := as.users[creds.Username]
	if !ok || !pkg.CheckPasswordHash(creds.Password, user.PasswordHash) {
		return "", ErrWrongCredentials
	}

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	sessionKey := sessionKeyPrefix + token
	if err := as.redisClient.Set(ctx, sessionKey, sessionValue(createdAt, user.Principal), as.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("add session token: %w", err)
	}

	return token, nil
}

// Logout closes the session. It reports false when there was none.
func (as *Service) Logout(ctx context.Context, token string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	as.SessionCache.forget(token)
	deleted, err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, fmt.Errorf("remove session token: %w", err)
	}
	return deleted > 0, nil
}

// ScanAndClean drops sessions older than the TTL and tokens whose session
// already expired in redis.
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}
	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean: no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		val, err := as.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
		if errors.Is(err, redis.Nil) {
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("auth service, scan and clean token: %s", err)
			continue
		}

		createdAt, _, err := parseSessionValue(val)
		if err != nil || time.Since(createdAt) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		as.SessionCache.forget(token)
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean session: %s", err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean session token: %s", err)
		}
	}
	log.Debugf("auth service, scan and clean: %d sessions removed", len(toRemove))
}
