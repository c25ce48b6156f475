// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

// Command api is the entry point for the Movira HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
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

	"github.com/trananh/movira/internal/api"
	"github.com/trananh/movira/internal/catalog/film"
	"github.com/trananh/movira/internal/catalog/importer"
	"github.com/trananh/movira/internal/catalog/person"
	"github.com/trananh/movira/internal/catalog/tmdb"
	"github.com/trananh/movira/internal/media/post"
	"github.com/trananh/movira/internal/platform/config"
	"github.com/trananh/movira/internal/platform/constants"
	"github.com/trananh/movira/internal/platform/migration"
	pgstore "github.com/trananh/movira/internal/platform/postgres"
	redisstore "github.com/trananh/movira/internal/platform/redis"
	"github.com/trananh/movira/internal/platform/sec"
	"github.com/trananh/movira/internal/social/comment"
	"github.com/trananh/movira/internal/social/like"
	"github.com/trananh/movira/internal/social/notification"
	"github.com/trananh/movira/internal/social/subject"
	"github.com/trananh/movira/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "movira"))
	slog.SetDefault(log)

	log.Info("[Movira] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "movira"))
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

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	sessionRepository := auth.NewSessionRepository(pool)
	resetTokenRepository := auth.NewResetTokenRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, resetTokenRepository, jwtSvc)
	authHandler := auth.NewHandler(authService)

	subjectResolver := subject.NewPostgresResolver(pool)

	notificationRepository := notification.NewPostgresRepository(pool)
	notificationService := notification.NewService(notificationRepository, log)
	notificationHandler := notification.NewHandler(notificationService)

	postRepository := post.NewPostgresRepository(pool)
	postService := post.NewService(postRepository, log)
	postHandler := post.NewHandler(postService)

	commentRepository := comment.NewPostgresRepository(pool)
	commentService := comment.NewService(commentRepository, subjectResolver, log)
	commentHandler := comment.NewHandler(commentService)

	likeRepository := like.NewPostgresRepository(pool)
	likeThrottle := like.NewRedisThrottle(rdb)
	likeService := like.NewService(likeRepository, subjectResolver, likeThrottle, notificationService, log)
	likeHandler := like.NewHandler(likeService)

	filmRepository := film.NewPostgresRepository(pool)
	filmService := film.NewService(filmRepository, log)
	filmHandler := film.NewHandler(filmService)

	personRepository := person.NewPostgresRepository(pool)
	personService := person.NewService(personRepository, log)
	personHandler := person.NewHandler(personService)

	tmdbClient := tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey)
	importService := importer.NewService(filmRepository, personRepository, tmdbClient, log)
	importHandler := importer.NewHandler(importService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:     liveness,
		Readiness:    readiness,
		Auth:         authHandler,
		Post:         postHandler,
		Comment:      commentHandler,
		Like:         likeHandler,
		Notification: notificationHandler,
		Film:         filmHandler,
		Person:       personHandler,
		Importer:     importHandler,
	}

	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	server := api.NewServer(appCtx, cfg, log, jwtSvc, handlers)

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
