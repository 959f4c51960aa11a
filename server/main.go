package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bandacious/api/routes"
	"bandacious/internal/catalog"
	"bandacious/internal/clock"
	"bandacious/internal/notifications"
	"bandacious/internal/shared/config"
	"bandacious/internal/shared/database"
	"bandacious/internal/shared/middleware"
	"bandacious/pkg/cache"
	"bandacious/pkg/logger"
	"bandacious/pkg/metrics"
	"bandacious/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	appLogger.Info("Starting bandacious",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("commit", GitCommit),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	db, err := database.InitDB(startupCtx, cfg)
	if err != nil {
		appLogger.Error("Failed to connect", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	source, err := catalogSource(cfg, db)
	if err != nil {
		appLogger.Error("Invalid catalog configuration", slog.Any("error", err))
		os.Exit(1)
	}

	appMetrics := metrics.New()

	var cacheService cache.Service
	if db.Redis != nil {
		cacheService = cache.NewService(db.Redis)
	}

	store := catalog.NewStore(nil)
	refresher := catalog.NewRefresher(source, store, clock.NewSystem())
	refresher.SetMetrics(appMetrics)
	if cacheService != nil {
		refresher.SetCacheService(cacheService)
	}

	if cfg.KafkaEnabled() {
		kafkaConfig := notifications.DefaultKafkaProducerConfig()
		kafkaConfig.Brokers = cfg.Kafka.Brokers
		kafkaConfig.CatalogTopic = cfg.Kafka.CatalogTopic
		kafkaConfig.ClientID = cfg.Kafka.ClientID

		publisher, err := notifications.NewKafkaPublisher(kafkaConfig)
		if err != nil {
			appLogger.Error("Failed to initialize Kafka publisher", slog.Any("error", err))
			appLogger.Info("Continuing without catalog notifications")
		} else {
			refresher.SetPublisher(publisher)
			defer publisher.Close()
			appLogger.Info("Catalog notifications enabled", slog.String("topic", cfg.Kafka.CatalogTopic))
		}
	}

	// An untrustworthy catalog must never be served.
	if _, err := refresher.Reload(startupCtx); err != nil {
		if errors.Is(err, catalog.ErrDataIntegrity) {
			appLogger.Error("Catalog failed integrity checks", slog.Any("error", err))
		} else {
			appLogger.Error("Failed to load catalog", slog.Any("error", err))
		}
		os.Exit(1)
	}

	if err := refresher.Start(cfg.Catalog.RefreshCron, cfg.Catalog.ReloadTimeout); err != nil {
		appLogger.Error("Failed to schedule catalog refresh", slog.Any("error", err))
		os.Exit(1)
	}
	defer refresher.Stop()

	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && db.Redis != nil {
		rateLimiter = ratelimit.NewRateLimiter(db.Redis, &ratelimit.Config{
			Enabled:          cfg.RateLimit.Enabled,
			WindowDuration:   cfg.RateLimit.WindowDuration,
			DefaultRequests:  cfg.RateLimit.DefaultRequests,
			PublicRequests:   cfg.RateLimit.PublicRequests,
			CalendarRequests: cfg.RateLimit.CalendarRequests,
			AuthRequests:     cfg.RateLimit.AuthRequests,
			AdminRequests:    cfg.RateLimit.AdminRequests,
			WhitelistedIPs:   cfg.RateLimit.WhitelistedIPs,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	router := setupRouter(cfg, db, store, refresher, cacheService, appMetrics, rateLimiter)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("homepage", fmt.Sprintf("http://localhost:%s/", cfg.Port)),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("catalog_source", source.Name()),
			slog.Bool("redis_cache", db.Redis != nil),
			slog.Bool("rate_limiting", rateLimiter != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func catalogSource(cfg *config.Config, db *database.DB) (catalog.Source, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceBuiltin:
		return catalog.BuiltinSource{}, nil
	case config.CatalogSourceFile:
		if cfg.Catalog.File == "" {
			return nil, errors.New("CATALOG_FILE is required for the file source")
		}
		return catalog.FileSource{Path: cfg.Catalog.File}, nil
	case config.CatalogSourcePostgres:
		return catalog.NewPostgresSource(catalog.NewRepository(db.PostgreSQL)), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

func setupRouter(cfg *config.Config, db *database.DB, store *catalog.Store, refresher *catalog.Refresher,
	cacheService cache.Service, m *metrics.Metrics, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(middleware.RequestID(), RequestLoggerMiddleware(appLogger), gin.Recovery(), metrics.Middleware(m))

	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.HeaderRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
	}

	appRouter := routes.NewRouter(cfg, db, store, refresher)
	appRouter.SetMetrics(m)
	if cacheService != nil {
		appRouter.SetCacheService(cacheService)
	}
	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.LogHTTPRequest(c, time.Since(start))
	}
}
