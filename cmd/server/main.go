// Package main implements the entry point for the forgetting-curve API
// server, which stores users and the facts they want to retain and
// schedules five review checkpoints for each fact.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/forgetting-curve/api/internal/config"
	"github.com/forgetting-curve/api/internal/platform/cache"
	"github.com/forgetting-curve/api/internal/platform/logger"
	"github.com/forgetting-curve/api/internal/platform/postgres"
	"github.com/forgetting-curve/api/internal/service"
)

func main() {
	// A missing .env file is fine; environment variables may come from
	// anywhere.
	_ = godotenv.Load()

	if err := run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", "error", err)
		}
	}()

	if err := migrateUp(db, cfg.Database.MigrationsDir, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var userCache service.UserCache
	if cfg.Cache.RedisAddr != "" {
		redisCache, err := cache.New(
			cfg.Cache.RedisAddr,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			appLogger,
		)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() {
			if err := redisCache.Close(); err != nil {
				appLogger.Error("failed to close redis client", "error", err)
			}
		}()
		userCache = redisCache
		appLogger.Info("user cache enabled", "addr", cfg.Cache.RedisAddr)
	}

	userStore := postgres.NewUserStore(db, appLogger)
	informationStore := postgres.NewInformationStore(db, appLogger)

	userService := service.NewUserService(db, userStore, informationStore, userCache, appLogger)
	informationService := service.NewInformationService(db, userStore, informationStore, appLogger)

	router := setupRouter(
		userService,
		informationService,
		newSchemaResetter(db, cfg.Database.MigrationsDir, appLogger),
	)

	return serve(cfg, router, appLogger)
}

// openDatabase opens the connection pool and verifies connectivity.
func openDatabase(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established")
	return db, nil
}

// serve starts the HTTP server and blocks until a shutdown signal arrives.
func serve(cfg *config.Config, router http.Handler, logger *slog.Logger) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-shutdownCh:
		logger.Info("shutting down server", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("server shutdown completed")
	return nil
}
