package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/hoopmetrics/hoopking/internal/achievements"
	"github.com/hoopmetrics/hoopking/internal/activity"
	"github.com/hoopmetrics/hoopking/internal/aitrainer"
	"github.com/hoopmetrics/hoopking/internal/auth"
	"github.com/hoopmetrics/hoopking/internal/biometrics"
	"github.com/hoopmetrics/hoopking/internal/config"
	"github.com/hoopmetrics/hoopking/internal/dashboard"
	"github.com/hoopmetrics/hoopking/internal/db"
	"github.com/hoopmetrics/hoopking/internal/inbox"
	"github.com/hoopmetrics/hoopking/internal/middleware"
	"github.com/hoopmetrics/hoopking/internal/misc"
	"github.com/hoopmetrics/hoopking/internal/plans"
	"github.com/hoopmetrics/hoopking/internal/sessions"
	"github.com/hoopmetrics/hoopking/internal/telemetry/metrics"
	"github.com/hoopmetrics/hoopking/internal/telemetry/tracing"
	"github.com/hoopmetrics/hoopking/internal/users"
	"github.com/hoopmetrics/hoopking/internal/workouts"
	"github.com/hoopmetrics/hoopking/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	authService *auth.Service
	aiClient    *aitrainer.Client
	tokenConfig auth.TokenConfig

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	AnthropicAPIKey         string
	JWTSecret               string
	HoneycombTracingEnabled bool
	OtelServiceName         string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:          params.Config.PostgresHost,
		DBPort:          params.Config.PostgresPort,
		DBName:          params.Config.PostgresDBName,
		DBUser:          params.Config.PostgresUser,
		DBPassword:      params.PostgresPassword,
		TracingEnabled:  params.HoneycombTracingEnabled,
		MetricsRegistry: promRegistry,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

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

	serviceName := params.OtelServiceName
	if serviceName == "" {
		serviceName = "hoopking-backend"
	}
	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, serviceName, rdb)
	if err != nil {
		closeStores(rdb, dbPool)
		return nil, fmt.Errorf("honeycomb setup: %w", err)
	}

	authService := auth.NewAuthService(auth.DefaultTTL, rdb)
	go func() {
		ticker := time.NewTicker(params.Config.SessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	if params.AnthropicAPIKey == "" {
		log.Warnln("anthropic api key empty, ai trainer calls will fail")
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient: rdb,
		authService: authService,
		aiClient: aitrainer.NewClient(
			params.Config.AIBaseURL,
			params.AnthropicAPIKey,
			params.Config.AIModel,
			tracedHttpClient,
		),
		tokenConfig: auth.TokenConfig{
			Secret: params.JWTSecret,
			Issuer: params.Config.AuthJWTIssuer,
		},

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// closeStores releases the redis client and the db pool of a server that
// failed to start.
func closeStores(rdb io.Closer, dbPool interface{ Close() }) {
	if err := rdb.Close(); err != nil {
		log.Errorf("failed to close redis client conn: %s", err)
	}
	dbPool.Close()
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	usersRepo := users.NewRepo(s.dbPool)
	activityRepo := activity.NewRepo(s.dbPool)
	achievementsRepo := achievements.NewRepo(s.dbPool)
	plansRepo := plans.NewRepo(s.dbPool)
	catalog := workouts.NewCachedRepo(workouts.NewRepo(s.dbPool), s.config.CatalogCacheSizeMB)

	sessionsService := sessions.NewService(sessions.NewServiceParams{
		DB:           s.dbPool,
		Activity:     activityRepo,
		Plans:        plansRepo,
		Achievements: achievementsRepo,
		Metrics:      s.metricsManager,
	})

	misc.NewHandler(s.versionInfo, map[string]misc.Check{
		"postgres": s.dbPool.Ping,
		"redis": func(ctx context.Context) error {
			return s.redisClient.Ping(ctx).Err()
		},
	}).SetupRoutes(r)

	auth.NewHandler(
		s.authService,
		auth.NewTokenVerifier(s.tokenConfig),
		usersRepo,
	).SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitPerMin)

	users.NewHandler(usersRepo).SetupRoutes(r)
	workouts.NewHandler(catalog).SetupRoutes(r)
	plans.NewHandler(plans.NewService(plansRepo, s.metricsManager)).SetupRoutes(r)
	sessions.NewHandler(sessionsService).SetupRoutes(r)
	inbox.NewHandler(inbox.NewService(inbox.NewRepo(s.dbPool), s.metricsManager)).SetupRoutes(r)
	dashboard.NewHandler(dashboard.NewService(usersRepo, achievementsRepo, activityRepo)).SetupRoutes(r)
	biometrics.NewHandler(gofakeit.New(0)).SetupRoutes(r)

	aitrainer.NewHandler(
		aitrainer.NewTrainer(s.aiClient, s.config.AITimeout, s.metricsManager),
		aitrainer.NewCategorizer(sessionsService),
		usersRepo,
		sessionsService,
	).SetupRoutes(r, middleware.RateLimit(reqRateLimiter, "ai", s.config.AIRateLimitPerMin, auth.UserKey, s.metricsManager))

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteErrorResponse(w, http.StatusNotFound, "Not found")
	})

	authMiddleware := auth.NewMiddlewareHandler(
		auth.NewAuthenticator(s.authService, auth.NewTokenVerifier(s.tokenConfig), usersRepo),
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
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
		Handler: router,
		Addr:    ipAndPort,
		// ai calls may take up to the ai timeout
		WriteTimeout: s.config.AITimeout + 30*time.Second,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metrics.Handler(s.promRegistry))
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the pool and redis go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

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
