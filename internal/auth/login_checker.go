package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/gymplan/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	cache       *SessionCache
}

type LoginCheckerOption func(*LoginChecker)

// WithSessionCache serves repeated checks of the same token from memory.
func WithSessionCache(cache *SessionCache) LoginCheckerOption {
	return func(c *LoginChecker) {
		c.cache = cache
	}
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client, opts ...LoginCheckerOption) *LoginChecker {
	c := &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Principal returns the identity the session token was issued for.
func (c *LoginChecker) Principal(ctx context.Context, token string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.login_checker.principal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if principal, ok := c.cache.get(token); ok {
		return principal, nil
	}

	val, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}

	createdAt, principal, err := parseSessionValue(val)
	if err != nil {
		return "", err
	}
	sessionLeft := c.ttl - time.Since(createdAt)
	if sessionLeft < 0 {
		return "", ErrSessionExpired
	}
	c.cache.set(token, principal, sessionLeft)
	return principal, nil
}

// TokenFromRequest reads a bearer token from the Authorization header.
func TokenFromRequest(r *http.Request) string {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
