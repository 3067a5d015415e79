// Package app wires configuration, logging, storage and the background
// scheduler into a runnable application.
package app

import (
	"context"
	"log/slog"

	"github.com/luminalearn/streaks/internal/adapter/postgres"
	streakrepo "github.com/luminalearn/streaks/internal/adapter/postgres/streak"
	"github.com/luminalearn/streaks/internal/config"
	"github.com/luminalearn/streaks/internal/jobs"
	"github.com/luminalearn/streaks/internal/service/streak"
)

// Run is the application entry point for the background job daemon.
// It loads configuration, connects to the database, builds the streak
// engine and runs the scheduler until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting streak jobs",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("reconcile_spec", cfg.Jobs.ReconcileSpec),
		slog.String("reminder_spec", cfg.Jobs.ReminderSpec),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
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
		return err
	}

	scheduler.Start()
	<-ctx.Done()
	scheduler.Stop()

	logger.Info("streak jobs stopped")
	return nil
}
