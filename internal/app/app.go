package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/bikeguard/backend/internal/adapter/handler/http"
	"github.com/bikeguard/backend/internal/adapter/identity"
	"github.com/bikeguard/backend/internal/adapter/logger"
	"github.com/bikeguard/backend/internal/adapter/postgres"
	"github.com/bikeguard/backend/internal/adapter/prometheus"
	"github.com/bikeguard/backend/internal/adapter/redis"
	"github.com/bikeguard/backend/internal/adapter/simulator"
	"github.com/bikeguard/backend/internal/config"
	"github.com/bikeguard/backend/internal/core/ports"
	"github.com/bikeguard/backend/internal/core/services"

	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"
)

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	DB           *sql.DB
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	HTTPRouter   *http.Router

	httpServer *nethttp.Server
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Connect DB
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Migrate DB
	if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Validate
	validate := services.NewValidator()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Repositories
	bikeRepo := postgres.NewBikeRepository(db)
	theftRepo := postgres.NewTheftReportRepository(db)
	alertRepo := postgres.NewAlertRepository(db)
	securityAlertRepo := postgres.NewSecurityAlertRepository(db)
	contactRepo := postgres.NewEmergencyContactRepository(db)
	settingsRepo := postgres.NewSystemSettingsRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	sensorRepo := postgres.NewSensorReadingRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	// Telemetry fallback source
	seed := cfg.Telemetry.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	telemetrySource := simulator.New(seed)

	// Services
	bikeService := services.NewBikeService(bikeRepo, loggerAdapter, validate, cacheAdapter)
	theftService := services.NewTheftReportService(theftRepo, bikeRepo, loggerAdapter, validate)
	alertService := services.NewAlertService(alertRepo, contactRepo, loggerAdapter, validate)
	securityAlertService := services.NewSecurityAlertService(securityAlertRepo, loggerAdapter, validate)
	contactService := services.NewContactService(contactRepo, loggerAdapter, validate)
	settingsService := services.NewSettingsService(settingsRepo, loggerAdapter, validate)
	profileService := services.NewProfileService(profileRepo, loggerAdapter)
	telemetryService := services.NewTelemetryService(
		bikeRepo, sensorRepo, settingsRepo, statsRepo, securityAlertRepo,
		telemetrySource, loggerAdapter, validate,
	)

	// Identity service client
	identityClient := identity.NewClient(cfg.IdentityService.URL, cfg.IdentityService.APIKey, loggerAdapter)

	// Credential verification
	sessionTokens := http.NewSessionTokenService(cfg.Token.Secret, loggerAdapter)
	verifier := http.NewCredentialVerifier(sessionTokens, identityClient)

	// HTTP Handlers
	authHandler := http.NewAuthHandler(identityClient, loggerAdapter, metrics)
	bikeHandler := http.NewBikeHandler(bikeService, loggerAdapter, metrics)
	theftHandler := http.NewTheftReportHandler(theftService, loggerAdapter, metrics)
	alertHandler := http.NewAlertHandler(alertService, verifier, loggerAdapter, metrics)
	securityAlertHandler := http.NewSecurityAlertHandler(securityAlertService, verifier, loggerAdapter, metrics)
	contactHandler := http.NewContactHandler(contactService, loggerAdapter, metrics)
	settingsHandler := http.NewSettingsHandler(settingsService, profileService, loggerAdapter, metrics)
	telemetryHandler := http.NewTelemetryHandler(telemetryService, verifier, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		verifier,
		loggerAdapter,
		authHandler,
		bikeHandler,
		theftHandler,
		alertHandler,
		securityAlertHandler,
		contactHandler,
		settingsHandler,
		telemetryHandler,
	)
	if err != nil {
		db.Close()
		redisConn.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		DB:           db,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		HTTPRouter:   router,
	}, nil
}

// Run starts the HTTP server in the background so the caller stays free
// to wait for signals and drive Stop.
func (a *App) Run() {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	a.httpServer = a.HTTPRouter.Server(listenAddr)
	go func() {
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			a.Logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()
}

// Stop drains in-flight requests within the context deadline, then closes
// the backing connections.
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.Logger.Error("HTTP server shutdown error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Database close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
