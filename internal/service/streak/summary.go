package streak

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/luminalearn/streaks/internal/domain"
)

// Summarize returns the streak read projection for userID. An unknown user
// is not an error: it yields an all-zero summary. A genuine store failure
// propagates, matching the orchestrator's read-path behavior.
func (s *Service) Summarize(ctx context.Context, userID uuid.UUID, today domain.CivilDate) (*domain.StreakSummary, error) {
	state, err := s.repo.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.Warn("summary requested for unknown user", "user_id", userID)
		state = &domain.UserStreakState{UserID: userID}
	case err != nil:
		return nil, fmt.Errorf("load streak state for user %s: %w", userID, err)
	}

	return s.buildSummary(state, today), nil
}

// buildSummary combines stored state with computed milestone fields.
func (s *Service) buildSummary(state *domain.UserStreakState, today domain.CivilDate) *domain.StreakSummary {
	last, next, daysToNext := s.milestones.Lookup(state.CurrentStreak)
	lastDate := state.LastPracticeDate()

	return &domain.StreakSummary{
		CurrentStreak:       state.CurrentStreak,
		LongestStreak:       state.LongestStreak,
		TodayCompleted:      lastDate != nil && lastDate.Equal(today),
		FreezeTokens:        state.FreezeTokens,
		LastMilestone:       last,
		NextMilestone:       next,
		DaysToNextMilestone: daysToNext,
		LastPracticeDate:    lastDate,
	}
}
