package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/2beens/gymplan/internal/auth"
	"github.com/2beens/gymplan/internal/config"
	"github.com/2beens/gymplan/internal/db"
	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/internal/training"
	"github.com/2beens/gymplan/internal/training/sqlite"
	"github.com/2beens/gymplan/internal/training/tenancy"

	"github.com/go-redis/redismock/v8"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrincipal = "5b0c4c3e-6a8e-4f36-9b43-2f1f7f8e9a01"

func newEmbeddedTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Environment: "test",
		Port:        9000,
		Store:       config.StoreSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "gymplan.db"),
		CorsOrigins: []string{"http://localhost:8080"},
		OpTimeout:   config.Duration{Duration: 5 * time.Second},
	}
	require.NoError(t, cfg.Validate())

	s, err := NewServer(context.Background(), NewServerParams{
		Config:      cfg,
		VersionInfo: "test-version",
	})
	require.NoError(t, err)
	t.Cleanup(s.closeStores)
	return s
}

func doRequest(t *testing.T, h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestServer_Embedded(t *testing.T) {
	s := newEmbeddedTestServer(t)
	router := s.routerSetup()

	rr := doRequest(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var health healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, config.StoreSQLite, health.Store)
	assert.Equal(t, "test-version", health.Version)

	rr = doRequest(t, router, http.MethodPost, "/a/plans", `{"name":"Winter","notes":"base"}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = doRequest(t, router, http.MethodGet, "/a/plans", "", map[string]string{"Origin": "http://localhost:8080"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:8080", rr.Header().Get("Access-Control-Allow-Origin"))
	var plans []training.MacroCycle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plans))
	require.Len(t, plans, 1)
	assert.Equal(t, "Winter", plans[0].Name)

	rr = doRequest(t, router, http.MethodGet, "/a/plans", "", map[string]string{"Origin": "https://evil.example.com"})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// no sessions in embedded mode
	rr = doRequest(t, router, http.MethodPost, "/a/login", `{"username":"u","password":"p"}`, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	assert.Equal(t, float64(2), testutil.ToFloat64(s.metricsManager.CounterRequests.WithLabelValues("GET", "200")),
		"health and list plans")
}

func TestServer_EmbeddedMCPOverHTTP(t *testing.T) {
	s := newEmbeddedTestServer(t)
	ctx := context.Background()
	_, err := s.service.CreateMacroCycle(ctx, "Spring", "")
	require.NoError(t, err)

	httpServer := httptest.NewServer(s.routerSetup())
	defer httpServer.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: httpServer.URL + "/a/mcp"}, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "list_plans"})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Spring")
}

func newMultiTenantTestServer(t *testing.T) (*Server, redismock.ClientMock) {
	t.Helper()
	sqlDB, err := db.NewSQLite(filepath.Join(t.TempDir(), "gymplan.db"))
	require.NoError(t, err)
	store := sqlite.New(sqlDB)
	require.NoError(t, store.Migrate(context.Background()))

	rdb, redisMock := redismock.NewClientMock()
	users, err := auth.NewUsers(auth.User{
		Username:     "lifter",
		PasswordHash: "$2a$14$6Gmhg85si2etd3K9oB8nYu1cxfbrdmhkg6wI6OXsa88IF4L2r/L9i",
		Principal:    testPrincipal,
	})
	require.NoError(t, err)

	s := &Server{
		config: &config.Config{
			Store:                       config.StorePostgres,
			LoginRateLimitAllowedPerMin: 5,
		},
		store:          store,
		redisClient:    rdb,
		authService:    auth.NewAuthService(users, auth.DefaultTTL, rdb),
		loginChecker:   auth.NewLoginChecker(auth.DefaultTTL, rdb),
		metricsManager: metrics.NewTestManager(),
		otelShutdown:   func() {},
	}
	s.service = training.NewService(store, tenancy.MultiTenant{})
	t.Cleanup(s.closeStores)
	return s, redisMock
}

func TestServer_MultiTenantRequiresSession(t *testing.T) {
	s, redisMock := newMultiTenantTestServer(t)
	router := s.routerSetup()

	rr := doRequest(t, router, http.MethodGet, "/a/plans", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	redisMock.ExpectGet("gymplan-session||valid-token").
		SetVal(fmt.Sprintf("%d|%s", time.Now().Unix(), testPrincipal))
	rr = doRequest(t, router, http.MethodPost, "/a/plans", `{"name":"Mine"}`, map[string]string{
		"Authorization": "Bearer valid-token",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	// the plan is stamped with the session's principal
	owned, err := s.service.ListMacroCycles(tenancy.WithPrincipal(context.Background(), testPrincipal))
	require.NoError(t, err)
	require.Len(t, owned, 1)
	other, err := s.service.ListMacroCycles(tenancy.WithPrincipal(context.Background(), "0f8fad5b-d9cb-469f-a165-70867728950e"))
	require.NoError(t, err)
	assert.Empty(t, other)

	redisMock.ExpectGet("gymplan-session||unknown-token").RedisNil()
	rr = doRequest(t, router, http.MethodGet, "/a/plans", "", map[string]string{
		"Authorization": "Bearer unknown-token",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestServer_connStateMetrics(t *testing.T) {
	s := &Server{metricsManager: metrics.NewTestManager()}

	s.connStateMetrics(nil, http.StateNew)
	s.connStateMetrics(nil, http.StateNew)
	s.connStateMetrics(nil, http.StateActive)
	s.connStateMetrics(nil, http.StateClosed)

	assert.Equal(t, float64(1), testutil.ToFloat64(s.metricsManager.GaugeRequests))
}
