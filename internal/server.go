package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/fitstride/fitstride/internal/auth"
	"github.com/fitstride/fitstride/internal/config"
	"github.com/fitstride/fitstride/internal/db"
	"github.com/fitstride/fitstride/internal/fitness/achievements"
	fitnessmetrics "github.com/fitstride/fitstride/internal/fitness/metrics"
	"github.com/fitstride/fitstride/internal/fitness/profiles"
	"github.com/fitstride/fitstride/internal/fitness/rankings"
	"github.com/fitstride/fitstride/internal/fitness/summary"
	"github.com/fitstride/fitstride/internal/fitness/users"
	"github.com/fitstride/fitstride/internal/fitness/workouts"
	"github.com/fitstride/fitstride/internal/middleware"
	"github.com/fitstride/fitstride/internal/telemetry/metrics"
	metricsmiddleware "github.com/fitstride/fitstride/internal/telemetry/metrics/middleware"
	"github.com/fitstride/fitstride/internal/telemetry/tracing"
	"github.com/fitstride/fitstride/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

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
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "fitstride_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitstride-backend", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm OK, thanks")
	}).Methods("GET", "POST", "OPTIONS").Name("root")
	r.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "pong")
	}).Methods("GET").Name("ping")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	usersHandler := users.NewHandler(
		users.NewRepo(s.dbPool),
		s.authService,
		s.metricsManager,
	)
	r.HandleFunc("/users/register", usersHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	r.Handle("/users/login", middleware.RateLimit(
		reqRateLimiter, "login",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	)(http.HandlerFunc(usersHandler.HandleLogin))).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/users/logout", usersHandler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")

	profilesHandler := profiles.NewHandler(profiles.NewRepo(s.dbPool))
	r.HandleFunc("/profiles/{userId}", profilesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profiles/{userId}", profilesHandler.HandleSave).Methods("PUT", "OPTIONS").Name("save-profile")

	workoutsRepo := workouts.NewRepo(s.dbPool)
	metricsService := fitnessmetrics.NewService(s.dbPool)
	achievementsService := achievements.NewService(
		achievements.NewRepo(s.dbPool),
		workoutsRepo,
		s.metricsManager,
	)

	workoutsHandler := workouts.NewHandler(
		workoutsRepo,
		metricsService,
		achievementsService,
		s.metricsManager,
	)
	r.HandleFunc("/workouts", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/user/{userId}/page/{page}/size/{size}", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/user/{userId}/analytics", workoutsHandler.HandleAnalytics).Methods("GET", "OPTIONS").Name("workouts-analytics")

	metricsHandler := fitnessmetrics.NewHandler(fitnessmetrics.NewRepo(s.dbPool))
	r.HandleFunc("/metrics/user/{userId}", metricsHandler.HandleGetLatest).Methods("GET", "OPTIONS").Name("latest-metrics")
	r.HandleFunc("/metrics/user/{userId}/history", metricsHandler.HandleHistory).Methods("GET", "OPTIONS").Name("metrics-history")

	rankingsRepo := rankings.NewRepo(s.dbPool)
	rankingsEngine := rankings.NewEngine(s.dbPool, s.metricsManager)
	rankingsHandler := rankings.NewHandler(
		rankingsRepo,
		rankingsEngine,
		s.config.LeaderboardCacheExpirationSeconds,
		s.metricsManager,
	)
	r.HandleFunc("/rankings/leaderboard/{type}/{period}", rankingsHandler.HandleLeaderboard).Methods("GET", "OPTIONS").Name("leaderboard")
	r.Handle("/rankings/refresh/{type}/{period}", middleware.RateLimit(
		reqRateLimiter, "rankings-refresh",
		s.config.LeaderboardRefreshAllowedPerMin,
		s.metricsManager,
	)(http.HandlerFunc(rankingsHandler.HandleRefresh))).Methods("POST", "OPTIONS").Name("rankings-refresh")
	r.HandleFunc("/rankings/user/{userId}", rankingsHandler.HandleUserRankings).Methods("GET", "OPTIONS").Name("user-rankings")
	r.HandleFunc("/rankings/user/{userId}/history", rankingsHandler.HandleUserHistory).Methods("GET", "OPTIONS").Name("user-rankings-history")

	summaryRepo := summary.NewRepo(s.dbPool)
	summaryHandler := summary.NewHandler(
		summaryRepo,
		summary.NewService(
			summaryRepo,
			workoutsRepo,
			fitnessmetrics.NewRepo(s.dbPool),
			rankingsRepo,
		),
		s.metricsManager,
	)
	r.HandleFunc("/summary/user/{userId}", summaryHandler.HandleGet).Methods("GET", "OPTIONS").Name("user-summary")

	achievementsHandler := achievements.NewHandler(achievements.NewRepo(s.dbPool))
	r.HandleFunc("/achievements/user/{userId}", achievementsHandler.HandleList).Methods("GET", "OPTIONS").Name("user-achievements")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
		))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
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

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}
