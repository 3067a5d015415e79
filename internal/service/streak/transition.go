package streak

import "github.com/luminalearn/streaks/internal/domain"

// Transition applies one qualifying practice on today to prev and returns
// the event together with the new state. Pure function: it never reads the
// wall clock, so the same inputs always produce the same result.
//
// Only the calendar date of the previous practice matters; time-of-day is
// ignored at day granularity.
func Transition(prev domain.UserStreakState, today domain.CivilDate) (domain.StreakEvent, domain.UserStreakState) {
	last := prev.LastPracticeDate()
	if last == nil {
		// First-ever practice.
		next := prev
		next.CurrentStreak = 1
		if next.LongestStreak < 1 {
			next.LongestStreak = 1
		}
		stampPractice(&next, today)
		return domain.StreakEventCompleteDay, next
	}

	switch gap := today.DaysSince(*last); {
	case gap == 0:
		// Already counted today. Idempotent: state is returned unchanged.
		return domain.StreakEventMaintainDay, prev

	case gap == 1:
		next := prev
		next.CurrentStreak = prev.CurrentStreak + 1
		if next.CurrentStreak > next.LongestStreak {
			next.LongestStreak = next.CurrentStreak
		}
		stampPractice(&next, today)
		return domain.StreakEventCompleteDay, next

	case gap >= 2:
		// Missed at least one full day. The longest streak is a running
		// maximum and survives the reset.
		next := prev
		next.CurrentStreak = 1
		stampPractice(&next, today)
		return domain.StreakEventResetStreak, next

	default:
		// last practice is recorded after today; never move the state backwards
		return domain.StreakEventMaintainDay, prev
	}
}

// stampPractice records today as the last practice date. Only the civil
// date is meaningful, so the stamp is midnight in the practice zone.
func stampPractice(state *domain.UserStreakState, today domain.CivilDate) {
	t := today.Time(domain.PracticeZone)
	state.LastPracticeAt = &t
}
