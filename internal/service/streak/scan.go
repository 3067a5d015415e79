package streak

import (
	"context"

	"github.com/google/uuid"

	"github.com/luminalearn/streaks/internal/domain"
)

// UsersNeedingAutoProcess lists users with an active streak whose last
// practice date is strictly before yesterday, i.e. candidates for the
// end-of-day reconciliation. Users who practiced today or yesterday are
// excluded.
//
// Best-effort: a store failure degrades to an empty list. This is a
// periodic signal, not a user-facing read; the next scheduled run
// self-corrects.
func (s *Service) UsersNeedingAutoProcess(ctx context.Context, today domain.CivilDate) []uuid.UUID {
	// Civil date of last practice < today-1 is equivalent to the practice
	// instant being before midnight of yesterday in the practice zone.
	cutoff := today.AddDays(-1).Time(domain.PracticeZone)

	ids, err := s.repo.ListIdle(ctx, cutoff)
	if err != nil {
		s.log.Warn("idle-user scan failed, skipping cycle", "error", err)
		return nil
	}
	return ids
}
