package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/knowledgepipe/knowledgepipe/constants"
	"github.com/knowledgepipe/knowledgepipe/internal/common"
	"github.com/knowledgepipe/knowledgepipe/internal/repository"
)

// dbhealth pings the database and prints queue depth per status.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:         cfg.Database.DSN,
		MaxConns:    2,
		MinConns:    1,
		DialTimeout: 3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	jobs := repository.NewJobRepository(entc, logger)
	counts, err := jobs.CountByStatus(ctx)
	if err != nil {
		logger.Error("status counts failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("database OK")
	for _, st := range constants.JobStatuses() {
		fmt.Printf("%-12s %d\n", st, counts[constants.JobStatus(st)])
	}
}
