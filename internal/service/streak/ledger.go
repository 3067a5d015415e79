package streak

import "github.com/luminalearn/streaks/internal/domain"

// Freeze token accounting. Tokens are awarded when a milestone is newly
// reached and spent only by the end-of-day reconciliation; nothing else in
// the engine may decrement them.

// awardMilestoneToken grants the single freeze token attached to reaching
// a milestone.
func awardMilestoneToken(state *domain.UserStreakState) {
	state.FreezeTokens++
}

// spendFreezeToken consumes one token and credits the earliest missed day
// as practiced: lastPracticeAt advances exactly one civil day. A multi-day
// gap burns one token per reconciliation run, matching the once-per-day
// job cadence, so each token forgives exactly one missed day.
func spendFreezeToken(state *domain.UserStreakState) {
	state.FreezeTokens--
	if d := state.LastPracticeDate(); d != nil {
		t := d.AddDays(1).Time(domain.PracticeZone)
		state.LastPracticeAt = &t
	}
}
