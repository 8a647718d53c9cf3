package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/printshelf/printshelf/internal/common"
	repo "github.com/printshelf/printshelf/internal/repository"
)

// dbhealth is a connectivity probe: opens the catalog database from DB_URL,
// pings it and reports the number of cataloged models.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := common.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := repo.Open(ctx, repo.Config{
		DSN:         cfg.Database.DSN,
		MaxConns:    cfg.Database.MaxConns,
		MinConns:    cfg.Database.MinConns,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open failed", "db_url", cfg.Database.DSN, "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := db.HealthCheck(ctx, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("ping failed", "error", err)
		os.Exit(1)
	}

	var models int
	if err := db.SQL.QueryRowContext(ctx, `SELECT COUNT(*) FROM model_files`).Scan(&models); err != nil {
		logger.Error("count query failed", "error", err)
		os.Exit(1)
	}

	logger.Info("database healthy", "db_url", cfg.Database.DSN, "models", models)
}
