package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/trinhquocthinh/foodhub/api/controllers"
	"github.com/trinhquocthinh/foodhub/api/routes"
	"github.com/trinhquocthinh/foodhub/internal/cart"
	"github.com/trinhquocthinh/foodhub/internal/catalog"
	checkoutsvc "github.com/trinhquocthinh/foodhub/internal/checkout"
	"github.com/trinhquocthinh/foodhub/internal/sessions"
	"github.com/trinhquocthinh/foodhub/pkg/config"
	"github.com/trinhquocthinh/foodhub/pkg/db"
	"github.com/trinhquocthinh/foodhub/pkg/logger"
	"github.com/trinhquocthinh/foodhub/pkg/metrics"
	"github.com/trinhquocthinh/foodhub/pkg/migrate"
	"github.com/trinhquocthinh/foodhub/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	cartMetrics := metrics.NewCartMetrics(registry)

	healthDeps := map[string]controllers.Pinger{}

	var backend cart.Backend
	switch cfg.Storage.Backend {
	case config.StorageBackendMemory:
		backend = cart.NewMemoryBackend()

	case config.StorageBackendFile:
		fileBackend, err := cart.NewFileBackend(cfg.Storage.FileDir)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap file storage", err)
			os.Exit(1)
		}
		backend = fileBackend

	case config.StorageBackendRedis:
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		redisBackend, err := cart.NewRedisBackend(redisClient, cfg.Cart.BlobTTL)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis storage", err)
			os.Exit(1)
		}
		backend = redisBackend
		healthDeps["redis"] = redisClient

	case config.StorageBackendDatabase:
		dbClient, err := db.New(context.Background(), cfg.DB, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap database", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}()
		if cfg.App.IsDev() {
			sqlDB, err := dbClient.SQLDB()
			if err != nil {
				logg.Error(context.Background(), "failed to resolve sql connection", err)
				os.Exit(1)
			}
			if err := migrate.Run(context.Background(), sqlDB, cfg.DB.Driver, migrate.DefaultDir, "up"); err != nil {
				logg.Error(context.Background(), "failed to run dev migrations", err)
				os.Exit(1)
			}
		}
		dbBackend, err := cart.NewDBBackend(dbClient.DB())
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap database storage", err)
			os.Exit(1)
		}
		backend = dbBackend
		healthDeps["database"] = dbClient

	default:
		logg.Error(context.Background(), "unknown storage backend", nil)
		os.Exit(1)
	}

	cartSessions, err := sessions.NewRegistry(sessions.RegistryParams{
		Backend:         backend,
		Logger:          logg,
		Metrics:         cartMetrics,
		NotificationTTL: cfg.Cart.NotificationTTL,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create session registry", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(cfg.Checkout)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"storage": cfg.Storage.Backend,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:          cfg,
			Logger:          logg,
			Catalog:         catalog.NewStore(),
			Sessions:        cartSessions,
			Checkout:        checkoutService,
			MetricsRegistry: registry,
			HealthDeps:      healthDeps,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
