package streak

import (
	"context"
	"fmt"

	"github.com/luminalearn/streaks/internal/domain"
)

// ComposeReminder builds the motivational reminder line for a user with the
// given streak length and freeze-token balance. Deterministic tiering; each
// tier carries its own marker.
func ComposeReminder(currentStreak, freezeTokens int) string {
	switch {
	case currentStreak >= 30:
		return fmt.Sprintf("🔥 Your %d-day streak is seriously impressive! Don't let it break today. (%d freeze tokens left)",
			currentStreak, freezeTokens)
	case currentStreak >= 7:
		return fmt.Sprintf("⚡ You're on a %d-day run! Keep the momentum going today. (%d freeze tokens left)",
			currentStreak, freezeTokens)
	case currentStreak >= 3:
		return fmt.Sprintf("💪 A %d-day streak is taking shape, keep building it today! (%d freeze tokens left)",
			currentStreak, freezeTokens)
	default:
		return fmt.Sprintf("🌟 You're %d days in. A great start, keep it up! (%d freeze tokens left)",
			currentStreak, freezeTokens)
	}
}

// UsersNeedingReminder lists users with an active streak who have not
// practiced today, each with the reminder message already composed.
// Unlike the idle-user scan this read propagates store failures; the
// scheduled job decides whether a skipped sweep matters.
func (s *Service) UsersNeedingReminder(ctx context.Context, today domain.CivilDate) ([]domain.ReminderTarget, error) {
	since := today.Time(domain.PracticeZone)

	targets, err := s.repo.ListUnpracticed(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("reminder scan: %w", err)
	}

	for i := range targets {
		targets[i].Message = ComposeReminder(targets[i].CurrentStreak, targets[i].FreezeTokens)
	}
	return targets, nil
}
