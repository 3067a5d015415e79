// Command reconcile runs one end-of-day streak reconciliation pass and
// exits. It is intended for manual backfills and for environments where an
// external cron invokes jobs instead of the in-process scheduler.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/luminalearn/streaks/internal/adapter/postgres"
	streakrepo "github.com/luminalearn/streaks/internal/adapter/postgres/streak"
	"github.com/luminalearn/streaks/internal/app"
	"github.com/luminalearn/streaks/internal/config"
	"github.com/luminalearn/streaks/internal/jobs"
	"github.com/luminalearn/streaks/internal/service/streak"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := streak.NewService(
		logger,
		streakrepo.New(pool),
		postgres.NewTxManager(pool),
		cfg.Streak.Milestones,
	)

	scheduler, err := jobs.NewScheduler(logger, svc, jobs.NewLogDispatcher(logger), cfg.Jobs)
	if err != nil {
		logger.Error("build scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	stats := scheduler.RunReconcile(ctx)

	logger.Info("reconcile completed",
		slog.Int("scanned", stats.Scanned),
		slog.Int("frozen", stats.Frozen),
		slog.Int("lost", stats.Lost),
		slog.Int("skipped", stats.Skipped),
		slog.Int("failed", stats.Failed),
	)
	if stats.Failed > 0 {
		os.Exit(1)
	}
}
