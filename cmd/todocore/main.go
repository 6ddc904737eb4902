// todocore - multi-tenant todo service
//
// This is the main entry point for the todocore application: a small
// HTTP service where users register, manage their own todo items, and
// administrators oversee every account and item.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "todocore/migrations"

	"todocore/internal/api"
	"todocore/internal/auth"
	"todocore/internal/infrastructure/config"
	"todocore/internal/infrastructure/database"
	"todocore/internal/infrastructure/logging"
	"todocore/internal/todo"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting todocore",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Run migrations
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	// Account stack: repository, account service, identity resolver
	userRepo := auth.NewUserRepository(db.DB)
	accounts, err := auth.NewService(userRepo, cfg.Security.JWT.Secret, cfg.AccessTokenTTL())
	if err != nil {
		return fmt.Errorf("creating account service: %w", err)
	}
	resolver := auth.NewResolver(userRepo, cfg.Security.JWT.Secret)

	// Seed demo accounts if configured (development convenience)
	if cfg.Bootstrap.SeedDemoAccounts {
		if seedErr := auth.SeedDemoAccounts(ctx, userRepo, log.Logger); seedErr != nil {
			return fmt.Errorf("seeding demo accounts: %w", seedErr)
		}
	}

	// The WebSocket hub doubles as the todo event notifier, so it is
	// created first and handed to both the todo service and the server.
	hub := api.NewHub(cfg.WebSocket, log)
	go hub.Run(ctx)

	todos := todo.NewService(todo.NewRepository(db.DB), hub)

	server, err := api.New(api.Deps{
		Config:   cfg.API,
		WS:       cfg.WebSocket,
		Security: cfg.Security,
		Logger:   log,
		Accounts: accounts,
		Resolver: resolver,
		Users:    userRepo,
		Todos:    todos,
		Hub:      hub,
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	if startErr := server.Start(ctx); startErr != nil {
		return fmt.Errorf("starting API server: %w", startErr)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	if err := server.HealthCheck(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	log.Info("todocore stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses TODOCORE_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("TODOCORE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
