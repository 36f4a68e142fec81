package main

// @title Place Search Service API
// @version 1.0.0
// @description Searches places near a point through Mapbox (or Google Maps), enriches every match with travel duration and distance, and renders result lists into PDF reports.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	_ "github.com/place-search-service/docs"
	"github.com/place-search-service/internal/config"
	httpDelivery "github.com/place-search-service/internal/delivery/http"
	"github.com/place-search-service/internal/delivery/http/handler"
	"github.com/place-search-service/internal/domain/repository"
	"github.com/place-search-service/internal/infrastructure"
	"github.com/place-search-service/internal/metrics"
	"github.com/place-search-service/internal/pkg/logger"
	"github.com/place-search-service/internal/report"
	"github.com/place-search-service/internal/repository/cache"
	"github.com/place-search-service/internal/repository/filestore"
	"github.com/place-search-service/internal/repository/postgres"
	"github.com/place-search-service/internal/usecase"
	"github.com/place-search-service/internal/worker"
	"github.com/place-search-service/internal/worker/cleanup"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Place Search Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("provider", cfg.Provider),
		zap.Bool("routing", cfg.Search.EnableRouting),
	)

	if !cfg.CredentialConfigured() {
		log.Warn("No upstream credential configured: every search will fail until MAPBOX_ACCESS_TOKEN (or GOOGLE_MAPS_API_KEY for the google provider) is set",
			zap.String("provider", cfg.Provider),
		)
	}

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.NewMetrics(registry)

	// 4. Upstream providers
	providers, err := infrastructure.NewProviders(cfg, log, appMetrics)
	if err != nil {
		log.Fatal("Failed to initialize provider", zap.Error(err))
	}

	checks := make(map[string]handler.HealthChecker)

	// 5. Optional stores
	var historyRepo repository.HistoryRepository
	var redisClient *cache.Redis
	if cfg.RedisEnabled() {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		historyRepo = cache.NewHistoryRepository(redisClient, cfg.History.MaxEntries)
		checks["redis"] = redisClient
	} else {
		log.Info("REDIS_HOST not set, search history disabled")
	}

	var savedRepo repository.SavedSearchRepository
	var db *postgres.DB
	if cfg.DatabaseEnabled() {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = db.Migrate(ctx)
		cancel()
		if err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}

		savedRepo = postgres.NewSavedSearchRepository(db)
		checks["postgres"] = db
	} else {
		log.Info("DB_HOST not set, saved searches disabled")
	}

	store, err := filestore.New(cfg.Report.StaticDir, "/static", cfg.Report.FixedFilename, log)
	if err != nil {
		log.Fatal("Failed to prepare report storage", zap.Error(err))
	}

	log.Info("Repositories initialized")

	workers := worker.NewManager(log)
	if cfg.Report.Retention > 0 {
		workers.Register(cleanup.NewReportJanitor(store, cfg.Report.Retention, cfg.Report.CleanupInterval, log.Named("janitor")))
	}
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	workers.Start(workerCtx)

	// 6. Use cases
	searchUC := usecase.NewSearchUseCase(
		providers.Geocoding,
		providers.Routing,
		historyRepo,
		appMetrics,
		usecase.NewSearchOptions(cfg.Search, cfg.History),
		log.Named("search"),
	)
	reportUC := usecase.NewReportUseCase(
		report.NewRenderer(report.OptionsFromConfig(&cfg.Report)),
		store,
		appMetrics,
		log.Named("report"),
	)
	savedUC := usecase.NewSavedSearchUseCase(savedRepo, searchUC, log.Named("saved_search"))

	log.Info("Use cases initialized")

	// 7. HTTP
	server := httpDelivery.NewServer(
		cfg,
		log,
		registry,
		handler.NewSearchHandler(searchUC, log),
		handler.NewReportHandler(reportUC, log),
		handler.NewHealthHandler(providers.Name, cfg.CredentialConfigured(), checks),
		handler.NewHistoryHandler(searchUC, log),
		handler.NewSavedSearchHandler(savedUC, log),
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := workers.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}
	stopWorkers()

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
