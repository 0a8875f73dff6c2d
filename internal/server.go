package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/gymplan/internal/auth"
	"github.com/2beens/gymplan/internal/config"
	"github.com/2beens/gymplan/internal/db"
	"github.com/2beens/gymplan/internal/middleware"
	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/internal/training"
	trainingmcp "github.com/2beens/gymplan/internal/training/mcp"
	"github.com/2beens/gymplan/internal/training/postgres"
	"github.com/2beens/gymplan/internal/training/sqlite"
	"github.com/2beens/gymplan/internal/training/tenancy"
	"github.com/2beens/gymplan/pkg"
)

const (
	sessionsCleanupInterval = 8 * time.Hour
	sessionCacheSizeMB      = 8
	sessionCacheExpire      = 30 * time.Second
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config  *config.Config
	dbPool  *pgxpool.Pool
	store   training.Store
	service *training.Service

	// sessions, multi-tenant only
	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymplan-service")
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:       cfg,
		versionInfo:  params.VersionInfo,
		otelShutdown: otelShutdown,
	}

	var guard tenancy.Guard
	if cfg.MultiTenant() {
		if err := s.setupMultiTenant(ctx, params); err != nil {
			s.closeStores()
			return nil, err
		}
		guard = tenancy.MultiTenant{}
	} else {
		if err := s.setupEmbedded(ctx); err != nil {
			return nil, err
		}
		guard = tenancy.SingleTenant{}
	}
	s.metricsManager.GaugeLifeSignal.Set(0)

	s.service = training.NewService(
		s.store,
		guard,
		training.WithMetrics(s.metricsManager),
		training.WithOpTimeout(cfg.OpTimeout.Duration),
	)

	return s, nil
}

func (s *Server) setupEmbedded(ctx context.Context) error {
	path := s.config.SQLitePath
	if path == "" {
		path = db.DefaultSQLitePath()
	}
	sqlDB, err := db.NewSQLite(path)
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", path, err)
	}
	log.Debugf("using embedded store: %s", path)

	store := sqlite.New(sqlDB)
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return fmt.Errorf("migrate sqlite: %w", err)
	}
	s.store = store

	s.promRegistry = metrics.SetupPrometheus(collectors.NewDBStatsCollector(sqlDB, "gymplan"))
	s.metricsManager = metrics.NewManager("gymplan", "main", s.promRegistry)
	return nil
}

func (s *Server) setupMultiTenant(ctx context.Context, params NewServerParams) error {
	cfg := s.config
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	s.dbPool = dbPool

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	store := postgres.New(dbPool, postgres.WithAppRole(cfg.PostgresAppRole))
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}
	s.store = store

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	s.promRegistry = metrics.SetupPrometheus(pgxpoolCollector)
	s.metricsManager = metrics.NewManager("gymplan", "main", s.promRegistry)

	users, err := auth.LoadUsers(cfg.UsersFile)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	log.Debugf("loaded %d users", len(users))

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}
	s.redisClient = rdb

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	ttl := cfg.SessionTTL.Duration
	if ttl <= 0 {
		ttl = auth.DefaultTTL
	}
	sessionCache := auth.NewSessionCache(sessionCacheSizeMB, sessionCacheExpire)
	s.authService = auth.NewAuthService(users, ttl, rdb)
	s.authService.SessionCache = sessionCache
	s.loginChecker = auth.NewLoginChecker(ttl, rdb, auth.WithSessionCache(sessionCache))

	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.authService.ScanAndClean(ctx)
			}
		}
	}()

	return nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymplan-router"))

	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")

	api := r.PathPrefix("/a").Subrouter()

	if s.config.MultiTenant() {
		reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
		authHandler := auth.NewHandler(s.authService)
		loginRateLimit := middleware.RateLimit(
			reqRateLimiter,
			s.metricsManager,
			"login",
			s.config.LoginRateLimitAllowedPerMin,
		)
		api.Handle("/login", loginRateLimit(http.HandlerFunc(authHandler.HandleLogin))).Methods("POST", "OPTIONS").Name("login")
		api.HandleFunc("/logout", authHandler.HandleLogout).Methods("GET", "POST", "OPTIONS").Name("logout")
	}

	training.NewPlanHandler(s.service).SetupRoutes(api)
	training.NewLogHandler(s.service).SetupRoutes(api)
	training.NewLibraryHandler(s.service).SetupRoutes(api)

	api.Handle("/mcp", otelhttp.NewHandler(trainingmcp.NewHTTPHandler(s.service), "mcp")).
		Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsOrigins))
	if s.config.MultiTenant() {
		r.Use(middleware.NewAuthMiddlewareHandler(s.loginChecker).AuthCheck())
	}
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

type healthResponse struct {
	Status  string `json:"status"`
	Store   string `json:"store"`
	Version string `json:"version,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp, err := json.Marshal(healthResponse{
		Status:  "ok",
		Store:   s.config.Store,
		Version: s.versionInfo,
	})
	if err != nil {
		http.Error(w, "marshal health failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, pkg.BytesToString(resp))
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	s.closeStores()

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) closeStores() {
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	// the postgres store closes the pool
	if s.store != nil {
		log.Debugln("closing store ...")
		if err := s.store.Close(); err != nil {
			log.Errorf("failed to close store: %s", err)
		}
	} else if s.dbPool != nil {
		s.dbPool.Close()
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
