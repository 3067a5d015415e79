package streak

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/luminalearn/streaks/internal/domain"
)

// ApplyAutoFreezeOrReset reconciles one idle user at the end of a day.
// If the user missed a day, one freeze token is spent to bridge the gap
// (FreezeUsed); with no tokens left the streak is cleared to zero
// (StreakLost, longest streak preserved).
//
// The gap is re-checked here: the idle scan races with live practice
// submissions, so a user who practiced mid-scan comes out as a no-op
// (Success=true, empty Event).
func (s *Service) ApplyAutoFreezeOrReset(ctx context.Context, userID uuid.UUID, today domain.CivilDate) (*UpdateResult, error) {
	var result *UpdateResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := s.repo.GetByUserID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("load streak state for user %s: %w", userID, err)
		}

		if state.CurrentStreak == 0 {
			result = &UpdateResult{Success: true, Message: "no active streak to process"}
			return nil
		}
		last := state.LastPracticeDate()
		if last == nil {
			result = &UpdateResult{Success: true, Message: "no practice recorded"}
			return nil
		}
		if today.DaysSince(*last) <= 1 {
			result = &UpdateResult{Success: true, Message: "streak is safe"}
			return nil
		}

		var (
			event domain.StreakEvent
			msg   string
		)
		if state.FreezeTokens > 0 {
			spendFreezeToken(state)
			event = domain.StreakEventFreezeUsed
			msg = fmt.Sprintf("Freeze token used, your %d-day streak is protected.", state.CurrentStreak)
			s.log.Info("freeze token consumed",
				"user_id", userID,
				"current_streak", state.CurrentStreak,
				"tokens_left", state.FreezeTokens,
			)
		} else {
			state.CurrentStreak = 0
			event = domain.StreakEventStreakLost
			msg = "Your streak is gone. Start a new one today!"
			s.log.Info("streak lost", "user_id", userID)
		}

		if err := s.repo.Save(txCtx, state); err != nil {
			return fmt.Errorf("save streak state for user %s: %w", userID, err)
		}

		result = &UpdateResult{
			Success: true,
			Event:   event,
			Summary: s.buildSummary(state, today),
			Message: msg,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
