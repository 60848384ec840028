package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/ironlog/ironlog/internal/auth"
	"github.com/ironlog/ironlog/internal/config"
	"github.com/ironlog/ironlog/internal/db"
	"github.com/ironlog/ironlog/internal/gym/events"
	"github.com/ironlog/ironlog/internal/gym/exercises"
	"github.com/ironlog/ironlog/internal/gym/logs"
	"github.com/ironlog/ironlog/internal/gym/progress"
	"github.com/ironlog/ironlog/internal/gym/regiments"
	"github.com/ironlog/ironlog/internal/gym/workouts"
	"github.com/ironlog/ironlog/internal/middleware"
	"github.com/ironlog/ironlog/internal/telemetry/metrics"
	"github.com/ironlog/ironlog/internal/telemetry/tracing"
	"github.com/ironlog/ironlog/internal/users"
	"github.com/ironlog/ironlog/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/coocood/freecache"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const regimentsCacheSizeBytes = 10 * 1024 * 1024

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service
	admin        *auth.Admin

	regimentsCache *freecache.Cache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPoolParams := db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	}

	if err := db.Migrate(dbPoolParams); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	dbPool, err := db.NewDBPool(ctx, dbPoolParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "gym", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

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
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gym-backend")
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
		admin: &auth.Admin{
			Username:     params.AdminUsername,
			PasswordHash: params.AdminPasswordHash,
		},

		regimentsCache: freecache.NewCache(regimentsCacheSizeBytes),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gym-router"))

	usersRepo := users.NewRepo(s.dbPool)

	exercisesRepo := exercises.NewRepo(s.dbPool)
	exercisesHandler := exercises.NewHandler(exercisesRepo)
	r.HandleFunc("/workouts/exercises", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/workouts/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(workoutsRepo, exercisesRepo, s.metricsManager)
	r.HandleFunc("/workouts", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{id:[0-9]+}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id:[0-9]+}", workoutsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/{id:[0-9]+}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")

	regimentsRepo := regiments.NewRepo(s.dbPool)
	regimentsHandler := regiments.NewHandler(regimentsRepo, workoutsRepo, s.regimentsCache, s.metricsManager)
	r.HandleFunc("/workouts/regiments", regimentsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-regiment")
	r.HandleFunc("/workouts/regiments", regimentsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-regiments")
	r.HandleFunc("/workouts/regiments/{id:[0-9]+}", regimentsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-regiment")
	r.HandleFunc("/workouts/regiments/{id:[0-9]+}", regimentsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-regiment")
	r.HandleFunc("/workouts/regiments/{id:[0-9]+}", regimentsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-regiment")

	workoutLogsRepo := logs.NewRepo(s.dbPool)
	workoutLogsHandler := logs.NewHandler(workoutLogsRepo, usersRepo, s.metricsManager)
	r.HandleFunc("/workouts/logs", workoutLogsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout-log")
	r.HandleFunc("/workouts/logs/user/{userId:[0-9]+}", workoutLogsHandler.HandleListForUser).Methods("GET", "OPTIONS").Name("list-workout-logs")
	r.HandleFunc("/workouts/logs/{id:[0-9]+}", workoutLogsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout-log")

	progressHandler := progress.NewHandler(
		progress.NewMarkerRepo(s.dbPool),
		regimentsRepo,
		workoutLogsRepo,
		usersRepo,
	)
	r.HandleFunc("/workouts/user_current_regiment", progressHandler.HandleSetCurrent).Methods("POST", "OPTIONS").Name("set-current-regiment")
	r.HandleFunc("/workouts/progress/user/{userId:[0-9]+}", progressHandler.HandleGetOverview).Methods("GET", "OPTIONS").Name("progress-overview")

	eventsHandler := events.NewHandler(events.NewRepo(s.dbPool), usersRepo)
	r.HandleFunc("/workouts/events/session/start", eventsHandler.HandleSessionStart).Methods("POST", "OPTIONS").Name("session-start")
	r.HandleFunc("/workouts/events/session/finish", eventsHandler.HandleSessionFinish).Methods("POST", "OPTIONS").Name("session-finish")
	r.HandleFunc("/workouts/events/user/{userId:[0-9]+}", eventsHandler.HandleListForUser).Methods("GET", "OPTIONS").Name("list-events")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authHandler := auth.NewHandler(s.authService, s.admin)
	authHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin, s.metricsManager)

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "ironlog gym service")
	}).Methods("GET").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

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

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
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
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
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
			log.Fatalf("gym service, listen and serve: %s", err)
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
