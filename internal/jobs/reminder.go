package jobs

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ReminderStats summarizes one reminder sweep.
type ReminderStats struct {
	Targets int
	Sent    int
	Failed  int
}

// RunReminders sends the evening reminder to every user with an active
// streak who has not practiced today. Delivery failures are logged and
// counted; the sweep always finishes.
func (s *Scheduler) RunReminders(ctx context.Context) ReminderStats {
	today := s.engine.Today()

	targets, err := s.engine.UsersNeedingReminder(ctx, today)
	if err != nil {
		s.log.Error("reminder scan failed", "date", today.String(), "error", err)
		return ReminderStats{}
	}

	s.log.Info("reminder sweep started", "date", today.String(), "targets", len(targets))

	var sent, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, target := range targets {
		target := target
		g.Go(func() error {
			if err := s.dispatcher.Dispatch(gctx, target); err != nil {
				failed.Add(1)
				s.log.Warn("reminder delivery failed", "user_id", target.UserID, "error", err)
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	stats := ReminderStats{
		Targets: len(targets),
		Sent:    int(sent.Load()),
		Failed:  int(failed.Load()),
	}

	s.log.Info("reminder sweep finished",
		"date", today.String(),
		"sent", stats.Sent,
		"failed", stats.Failed,
	)
	return stats
}
