package jobs

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/luminalearn/streaks/internal/domain"
)

// ReconcileStats summarizes one reconciliation run.
type ReconcileStats struct {
	Scanned int
	Frozen  int
	Lost    int
	Skipped int
	Failed  int
}

// RunReconcile processes every user who missed yesterday: a freeze token is
// spent where available, otherwise the streak is cleared. One user failing
// must not stop the rest, so per-user errors are logged and counted, never
// returned.
func (s *Scheduler) RunReconcile(ctx context.Context) ReconcileStats {
	today := s.engine.Today()
	ids := s.engine.UsersNeedingAutoProcess(ctx, today)

	s.log.Info("reconcile run started", "date", today.String(), "users", len(ids))

	var frozen, lost, skipped, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, userID := range ids {
		userID := userID
		g.Go(func() error {
			res, err := s.engine.ApplyAutoFreezeOrReset(gctx, userID, today)
			if err != nil {
				failed.Add(1)
				s.log.Warn("reconcile user failed", "user_id", userID, "error", err)
				return nil
			}
			switch res.Event {
			case domain.StreakEventFreezeUsed:
				frozen.Add(1)
			case domain.StreakEventStreakLost:
				lost.Add(1)
			default:
				skipped.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	stats := ReconcileStats{
		Scanned: len(ids),
		Frozen:  int(frozen.Load()),
		Lost:    int(lost.Load()),
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}

	s.log.Info("reconcile run finished",
		"date", today.String(),
		"scanned", stats.Scanned,
		"frozen", stats.Frozen,
		"lost", stats.Lost,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)
	return stats
}
