package domain

import (
	"time"

	"github.com/google/uuid"
)

// StreakEvent classifies the outcome of a streak mutation.
type StreakEvent string

const (
	// StreakEventCompleteDay: the streak was started or extended by one day.
	StreakEventCompleteDay StreakEvent = "COMPLETE_DAY"
	// StreakEventMaintainDay: practice was already recorded for today; no change.
	StreakEventMaintainDay StreakEvent = "MAINTAIN_DAY"
	// StreakEventResetStreak: the streak restarted at 1 after a gap of two or
	// more days. The longest streak is preserved.
	StreakEventResetStreak StreakEvent = "RESET_STREAK"

	// End-of-day reconciliation outcomes.

	// StreakEventFreezeUsed: a freeze token was spent to forgive a missed day.
	StreakEventFreezeUsed StreakEvent = "FREEZE_USED"
	// StreakEventStreakLost: a day was missed with no tokens left; the streak
	// was cleared to zero.
	StreakEventStreakLost StreakEvent = "STREAK_LOST"
)

// UserStreakState is the streak view onto a user record. The store keeps the
// numeric fields nullable; the repository maps NULL to zero on read, so inside
// the engine zero always means "absent".
type UserStreakState struct {
	UserID         uuid.UUID
	CurrentStreak  int
	LongestStreak  int
	LastPracticeAt *time.Time
	FreezeTokens   int
}

// LastPracticeDate returns the calendar date of the last practice in the
// fixed practice zone, or nil when the user has never practiced.
func (s UserStreakState) LastPracticeDate() *CivilDate {
	if s.LastPracticeAt == nil {
		return nil
	}
	d := PracticeDateOf(*s.LastPracticeAt)
	return &d
}

// StreakSummary is the read projection served to presentation layers.
// Milestone fields are nil when no threshold applies.
type StreakSummary struct {
	CurrentStreak       int
	LongestStreak       int
	TodayCompleted      bool
	FreezeTokens        int
	LastMilestone       *int
	NextMilestone       *int
	DaysToNextMilestone *int
	LastPracticeDate    *CivilDate
}

// ReminderTarget is one user due a practice reminder, with the
// motivational message already composed.
type ReminderTarget struct {
	UserID        uuid.UUID
	Email         string
	Name          string
	CurrentStreak int
	FreezeTokens  int
	Message       string
}
