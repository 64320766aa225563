// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

// Command api is the entry point for the Vitrine content API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Initialize blob storage and the cleanup sweeper.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitrinehq/vitrine/internal/api"
	"github.com/vitrinehq/vitrine/internal/cleanup"
	"github.com/vitrinehq/vitrine/internal/content/company"
	"github.com/vitrinehq/vitrine/internal/content/heromedia"
	"github.com/vitrinehq/vitrine/internal/content/portfolio"
	"github.com/vitrinehq/vitrine/internal/content/product"
	"github.com/vitrinehq/vitrine/internal/content/upload"
	"github.com/vitrinehq/vitrine/internal/platform/config"
	"github.com/vitrinehq/vitrine/internal/platform/constants"
	"github.com/vitrinehq/vitrine/internal/platform/migration"
	pgstore "github.com/vitrinehq/vitrine/internal/platform/postgres"
	redisstore "github.com/vitrinehq/vitrine/internal/platform/redis"
	"github.com/vitrinehq/vitrine/internal/storage"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Blob Storage & Cleanup ─────────────────────────────────────────
	blobs, err := storage.NewS3Store(storage.S3Options{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		Bucket:        cfg.S3Bucket,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.AssetBaseURL,
	}, log)
	must(log, err, "initialize blob storage")

	queue := cleanup.NewQueue(rdb)
	cleaner := storage.NewCleaner(blobs, queue, log)

	sweeper := cleanup.NewSweeper(queue, blobs, log)
	must(log, sweeper.Start(cfg.CleanupSchedule), "start cleanup sweeper")
	defer sweeper.Stop()

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
		CheckBlobStore: func() error {
			return blobs.Ping(context.Background())
		},
	}, log)

	// ── 8. Content Wiring ─────────────────────────────────────────────────
	companyService := company.NewService(company.NewPostgresRepository(pool), cleaner, log)
	heroMediaService := heromedia.NewService(heromedia.NewPostgresRepository(pool), cleaner, log)
	portfolioService := portfolio.NewService(portfolio.NewPostgresRepository(pool), cleaner, log)
	productService := product.NewService(product.NewPostgresRepository(pool), cleaner, log)
	uploadService := upload.NewService(blobs, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Company:   company.NewHandler(companyService),
		HeroMedia: heromedia.NewHandler(heroMediaService),
		Portfolio: portfolio.NewHandler(portfolioService),
		Product:   product.NewHandler(productService),
		Upload:    upload.NewHandler(uploadService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
