package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/galleryops/artstore-backend/api/routes"
	artworksvc "github.com/galleryops/artstore-backend/internal/artworks"
	movementsvc "github.com/galleryops/artstore-backend/internal/movements"
	reportsvc "github.com/galleryops/artstore-backend/internal/reports"
	"github.com/galleryops/artstore-backend/pkg/config"
	"github.com/galleryops/artstore-backend/pkg/db"
	"github.com/galleryops/artstore-backend/pkg/db/models"
	"github.com/galleryops/artstore-backend/pkg/instance"
	"github.com/galleryops/artstore-backend/pkg/logger"
	"github.com/galleryops/artstore-backend/pkg/metrics"
	"github.com/galleryops/artstore-backend/pkg/migrate"
	pkgredis "github.com/galleryops/artstore-backend/pkg/redis"
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

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}
	// Goose migrations target Postgres; SQLite development databases are kept
	// in shape through AutoMigrate.
	if cfg.DB.IsSQLite() {
		if err := dbClient.DB().AutoMigrate(&models.Artwork{}, &models.Movement{}); err != nil {
			logg.Error(context.Background(), "failed to migrate sqlite schema", err)
			os.Exit(1)
		}
	}

	var redisClient *pkgredis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = pkgredis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, idempotency and report caching disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	relocationMetrics := metrics.NewRelocationMetrics(registry)

	artworkRepo := artworksvc.NewRepository(dbClient.DB())
	movementRepo := movementsvc.NewRepository(dbClient.DB())
	reportRepo := reportsvc.NewRepository(dbClient.DB())

	artworkService, err := artworksvc.NewService(artworkRepo, movementRepo, dbClient, relocationMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create artwork service", err)
		os.Exit(1)
	}
	movementService, err := movementsvc.NewService(movementRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create movement service", err)
		os.Exit(1)
	}

	var reportService reportsvc.Service
	if redisClient != nil {
		reportService, err = reportsvc.NewService(reportRepo, redisClient, cfg.Storage, cfg.Reports)
	} else {
		reportService, err = reportsvc.NewService(reportRepo, nil, cfg.Storage, cfg.Reports)
	}
	if err != nil {
		logg.Error(context.Background(), "failed to create report service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			registry,
			artworkService,
			movementService,
			reportService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
