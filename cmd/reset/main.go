package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/HexBrew_Go/internal/config"
	"github.com/osse101/HexBrew_Go/internal/database"
	"github.com/osse101/HexBrew_Go/internal/logger"
)

const resetTimeout = 2 * time.Minute

func main() {
	skipMigrate := flag.Bool("no-migrate", false, "recreate the database without applying migrations")
	flag.Parse()

	if err := run(*skipMigrate); err != nil {
		slog.Error("Database reset failed", "error", err)
		os.Exit(1)
	}
}

// run drops and recreates the game database, wiping every player, brew and order
func run(skipMigrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "hexbrew-reset", cfg.Version, cfg.Environment, false))

	if cfg.UseMemoryStorage() {
		slog.Info("Memory storage selected, nothing to reset")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	// Connect to the maintenance database so the game database can be dropped
	admin := *cfg
	admin.DBName = "postgres"
	serverPool, err := database.NewPool(ctx, admin.GetDBConnString(), 2, time.Minute, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL server: %w", err)
	}
	defer serverPool.Close()

	dbIdent := pgx.Identifier{cfg.DBName}.Sanitize()

	slog.Info("Terminating existing connections", "database", cfg.DBName)
	if _, err := serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
		slog.Warn("Failed to terminate connections", "error", err)
	}

	if _, err := serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+dbIdent); err != nil {
		return fmt.Errorf("failed to drop database: %w", err)
	}
	if _, err := serverPool.Exec(ctx, "CREATE DATABASE "+dbIdent); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	slog.Info("Database recreated", "database", cfg.DBName)

	if skipMigrate {
		return nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 2, time.Minute, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", cfg.DBName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("Database reset complete", "database", cfg.DBName)
	return nil
}
