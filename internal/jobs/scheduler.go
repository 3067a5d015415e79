// Package jobs runs the scheduled background work: end-of-day streak
// reconciliation and the evening practice reminder sweep. All schedules are
// evaluated in the fixed practice zone (UTC+7).
package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/luminalearn/streaks/internal/config"
	"github.com/luminalearn/streaks/internal/domain"
	"github.com/luminalearn/streaks/internal/service/streak"
)

// streakEngine defines the streak service interface needed by the jobs.
type streakEngine interface {
	Today() domain.CivilDate
	UsersNeedingAutoProcess(ctx context.Context, today domain.CivilDate) []uuid.UUID
	ApplyAutoFreezeOrReset(ctx context.Context, userID uuid.UUID, today domain.CivilDate) (*streak.UpdateResult, error)
	UsersNeedingReminder(ctx context.Context, today domain.CivilDate) ([]domain.ReminderTarget, error)
}

// Scheduler owns the cron instance and the two background jobs.
type Scheduler struct {
	cron        *cron.Cron
	engine      streakEngine
	dispatcher  Dispatcher
	log         *slog.Logger
	concurrency int
}

// NewScheduler creates a scheduler with both jobs registered. The cron specs
// come from config and were validated at load time; an error here means the
// config was not validated.
func NewScheduler(log *slog.Logger, engine streakEngine, dispatcher Dispatcher, cfg config.JobsConfig) (*Scheduler, error) {
	s := &Scheduler{
		cron:        cron.New(cron.WithLocation(domain.PracticeZone)),
		engine:      engine,
		dispatcher:  dispatcher,
		log:         log.With("component", "scheduler"),
		concurrency: cfg.Concurrency,
	}

	if _, err := s.cron.AddFunc(cfg.ReconcileSpec, func() {
		s.RunReconcile(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("register reconcile job: %w", err)
	}

	if _, err := s.cron.AddFunc(cfg.ReminderSpec, func() {
		s.RunReminders(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("register reminder job: %w", err)
	}

	return s, nil
}

// Start begins running the scheduled jobs in background goroutines.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", "timezone", domain.PracticeZone.String())
}

// Stop stops the scheduler and waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}
