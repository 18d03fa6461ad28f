// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/farrior-homes-api/internal/admin"
	"github.com/carterperez-dev/farrior-homes-api/internal/auth"
	"github.com/carterperez-dev/farrior-homes-api/internal/catalog"
	"github.com/carterperez-dev/farrior-homes-api/internal/config"
	"github.com/carterperez-dev/farrior-homes-api/internal/core"
	"github.com/carterperez-dev/farrior-homes-api/internal/health"
	"github.com/carterperez-dev/farrior-homes-api/internal/maintenance"
	"github.com/carterperez-dev/farrior-homes-api/internal/middleware"
	"github.com/carterperez-dev/farrior-homes-api/internal/notification"
	"github.com/carterperez-dev/farrior-homes-api/internal/payment"
	"github.com/carterperez-dev/farrior-homes-api/internal/property"
	"github.com/carterperez-dev/farrior-homes-api/internal/server"
	"github.com/carterperez-dev/farrior-homes-api/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	logger.Info("mongodb connected",
		"database", cfg.Mongo.Database,
		"max_pool_size", cfg.Mongo.MaxPoolSize,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized", "algorithm", "HS256")

	var federatedVerifier auth.FederatedVerifier
	if cfg.Google.CredentialsFile != "" {
		verifier, verErr := auth.NewFirebaseVerifier(
			ctx,
			cfg.Google.CredentialsFile,
		)
		if verErr != nil {
			return verErr
		}
		federatedVerifier = verifier
		logger.Info("google sign-in verifier initialized")
	} else {
		logger.Info("google sign-in not configured")
	}

	userRepo := user.NewRepository(db)
	propertyRepo := property.NewRepository(db)
	maintenanceRepo := maintenance.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	paymentRepo := payment.NewRepository(db)

	if err := ensureIndexes(ctx, userRepo, notificationRepo, paymentRepo); err != nil {
		return err
	}
	logger.Info("indexes ensured")

	userSvc := user.NewService(userRepo)
	authSvc := auth.NewService(userRepo, jwtManager, federatedVerifier)
	propertySvc := property.NewService(propertyRepo)
	maintenanceSvc := maintenance.NewService(maintenanceRepo)
	catalogSvc := catalog.NewService(catalogRepo)
	notificationSvc := notification.NewService(notificationRepo)

	gateway := payment.NewStripeGateway(cfg.Stripe)
	paymentSvc := payment.NewService(
		paymentRepo,
		userRepo,
		gateway,
		cfg.Stripe,
		cfg.App,
	)

	userHandler := user.NewHandler(userSvc)
	authHandler := auth.NewHandler(authSvc, userSvc)
	propertyHandler := property.NewHandler(propertySvc)
	maintenanceHandler := maintenance.NewHandler(maintenanceSvc)
	catalogHandler := catalog.NewHandler(catalogSvc)
	notificationHandler := notification.NewHandler(notificationSvc)
	paymentHandler := payment.NewHandler(paymentSvc)

	healthHandler := health.NewHandler(db, redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		RedisStats: redis.PoolStats,
		RedisPing:  redis.Ping,
		MongoPing:  db.Ping,
		Version:    cfg.App.Version,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders)
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(jwtManager)
	optionalAuth := middleware.OptionalAuth(jwtManager)

	router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterRoutes(r, authenticator)
		propertyHandler.RegisterRoutes(r, authenticator, optionalAuth)
		maintenanceHandler.RegisterRoutes(r, authenticator)
		catalogHandler.RegisterRoutes(r, authenticator)
		notificationHandler.RegisterRoutes(r, authenticator)
		paymentHandler.RegisterRoutes(r, authenticator)
		adminHandler.RegisterRoutes(r, authenticator)
	})

	reconciler := payment.NewReconciler(
		paymentRepo,
		userRepo,
		cfg.Stripe.ReconcileInterval,
	)
	go reconciler.Run(ctx)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("mongodb close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func ensureIndexes(
	ctx context.Context,
	users user.Repository,
	notifications notification.Repository,
	payments payment.Repository,
) error {
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := notifications.EnsureIndexes(ctx); err != nil {
		return err
	}
	return payments.EnsureIndexes(ctx)
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
