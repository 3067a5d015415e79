package streak

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/luminalearn/streaks/internal/domain"
)

// UpdateOnValidPractice records one qualifying practice action for userID on
// today. It loads the streak state, runs the transition, awards the freeze
// token when a milestone is newly crossed, and persists the result.
//
// Repeated calls on the same day are idempotent (MaintainDay, no write).
// Any store failure propagates: this path is user-triggered and must not
// silently succeed with stale data.
func (s *Service) UpdateOnValidPractice(ctx context.Context, userID uuid.UUID, today domain.CivilDate) (*UpdateResult, error) {
	var (
		event          domain.StreakEvent
		next           domain.UserStreakState
		milestoneValue *int
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := s.repo.GetByUserID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("load streak state for user %s: %w", userID, err)
		}

		event, next = Transition(*state, today)

		if event == domain.StreakEventCompleteDay {
			if reached, ok := s.milestones.NewlyReached(state.CurrentStreak, next.CurrentStreak); ok {
				awardMilestoneToken(&next)
				milestoneValue = &reached
				s.log.Info("milestone reached",
					"user_id", userID,
					"milestone", reached,
					"freeze_tokens", next.FreezeTokens,
				)
			}
		}

		if event != domain.StreakEventMaintainDay {
			if err := s.repo.Save(txCtx, &next); err != nil {
				return fmt.Errorf("save streak state for user %s: %w", userID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateResult{
		Success:          true,
		Event:            event,
		Summary:          s.buildSummary(&next, today),
		MilestoneReached: milestoneValue != nil,
		MilestoneValue:   milestoneValue,
		Message:          updateMessage(event, next.CurrentStreak),
	}, nil
}

func updateMessage(event domain.StreakEvent, streak int) string {
	switch event {
	case domain.StreakEventMaintainDay:
		return "You already completed today's goal. See you tomorrow!"
	case domain.StreakEventResetStreak:
		return "Your streak was broken. Starting over from day 1!"
	default:
		if streak == 1 {
			return "Streak started! Come back tomorrow to keep it going."
		}
		return fmt.Sprintf("Great job! %d days in a row 🔥", streak)
	}
}
