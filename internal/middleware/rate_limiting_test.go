package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/gymplan/internal/middleware"
	"github.com/2beens/gymplan/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLimiter struct {
	keys    []string
	allowed int
	err     error
}

func (l *fakeLimiter) Allow(_ context.Context, key string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	l.keys = append(l.keys, key)
	if l.err != nil {
		return nil, l.err
	}
	return &redis_rate.Result{Allowed: l.allowed, RetryAfter: 2 * time.Second}, nil
}

func TestRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allowed", func(t *testing.T) {
		limiter := &fakeLimiter{allowed: 1}
		metricsManager := metrics.NewTestManager()
		handler := middleware.RateLimit(limiter, metricsManager, "login", 5)(next)

		req := httptest.NewRequest(http.MethodPost, "/a/login", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.Len(t, limiter.keys, 1)
		assert.Equal(t, "login:10.0.0.7", limiter.keys[0])
		assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
	})

	t.Run("limited", func(t *testing.T) {
		limiter := &fakeLimiter{allowed: 0}
		metricsManager := metrics.NewTestManager()
		handler := middleware.RateLimit(limiter, metricsManager, "login", 5)(next)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/a/login", nil))

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "2", rr.Header().Get("Retry-After"))
		assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
	})

	t.Run("limiter error", func(t *testing.T) {
		limiter := &fakeLimiter{err: errors.New("redis unavailable")}
		handler := middleware.RateLimit(limiter, nil, "login", 5)(next)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/a/login", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
