package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/gymplan/internal/middleware"
	"github.com/2beens/gymplan/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()

	r := mux.NewRouter()
	r.Use(middleware.RequestMetrics(metricsManager))
	r.HandleFunc("/a/logs/{id}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["id"] == "404" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	for _, path := range []string{"/a/logs/1", "/a/logs/2", "/a/logs/404"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "404")))

	count, err := testutil.GatherAndCount(reg, "gymplan_test_server_request_duration_seconds")
	require.NoError(t, err)
	// one series per route template and status code
	assert.Equal(t, 2, count)
}
