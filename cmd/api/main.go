// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Yomira CMS HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and an optional .env).
//  3. Open the configured store (postgres + migrations, mongo + indexes, or memory).
//  4. Wire repositories, services and HTTP handlers.
//  5. Start HTTP server with graceful shutdown.
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

	"github.com/taibuivan/yomira-cms/internal/api"
	"github.com/taibuivan/yomira-cms/internal/core/comic"
	"github.com/taibuivan/yomira-cms/internal/platform/config"
	"github.com/taibuivan/yomira-cms/internal/platform/constants"
	"github.com/taibuivan/yomira-cms/internal/platform/migration"
	mongostore "github.com/taibuivan/yomira-cms/internal/platform/mongo"
	pgstore "github.com/taibuivan/yomira-cms/internal/platform/postgres"
	"github.com/taibuivan/yomira-cms/internal/platform/sec"
	"github.com/taibuivan/yomira-cms/internal/social/comment"
	"github.com/taibuivan/yomira-cms/internal/users/account"
)

// repositories is the set of stores selected by STORE_DRIVER.
type repositories struct {
	comics   comic.Repository
	users    account.Repository
	comments comment.Repository
	check    func(ctx context.Context) error
	close    func()
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
		slog.String("password_hashing", cfg.PasswordHashing),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Store ──────────────────────────────────────────────────────────
	repos := openStore(startupCtx, cfg, log)
	defer repos.close()

	passwords, err := sec.NewPasswordEncoder(cfg.PasswordHashing)
	must(log, err, "initialize password encoder")

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	comicService := comic.NewService(repos.comics)
	accountService := account.NewService(repos.users, passwords)
	commentService := comment.NewService(repos.comments, comicService, accountService)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		StoreName:  cfg.StoreDriver,
		CheckStore: repos.check,
	}, log)

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	server := api.NewServer(rootCtx, cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Comic:     comic.NewHandler(comicService),
		User:      account.NewHandler(accountService),
		Comment:   comment.NewHandler(commentService),
	})

	// ── 5. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// openStore connects the backend named by cfg.StoreDriver and builds its
// repositories. Failures terminate the process.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) repositories {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		return repositories{
			comics:   comic.NewPostgresRepository(pool),
			users:    account.NewPostgresRepository(pool),
			comments: comment.NewPostgresRepository(pool),
			check:    func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
			close: func() {
				log.Info("closing postgres pool")
				pool.Close()
			},
		}

	case config.DriverMongo:
		client, database, err := mongostore.NewClient(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
		must(log, err, "connect to mongo")

		users := account.NewMongoRepository(database)
		must(log, users.EnsureIndexes(ctx), "create mongo indexes")

		return repositories{
			comics:   comic.NewMongoRepository(database),
			users:    users,
			comments: comment.NewMongoRepository(database),
			check:    func(ctx context.Context) error { return mongostore.Ping(ctx, client) },
			close: func() {
				log.Info("closing mongo client")
				if err := client.Disconnect(context.Background()); err != nil {
					log.Error("mongo disconnect error", slog.Any("error", err))
				}
			},
		}

	default:
		log.Warn("using in-memory store; data is lost on restart")
		return repositories{
			comics:   comic.NewMemoryRepository(),
			users:    account.NewMemoryRepository(),
			comments: comment.NewMemoryRepository(),
			close:    func() {},
		}
	}
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
