package streak

// Milestones is an ascending set of streak-length thresholds. Reaching a
// threshold for the first time triggers a one-time reward.
type Milestones []int

// DefaultMilestones returns the threshold set the product launched with.
// Deployments can override it via config (streak.milestones).
func DefaultMilestones() Milestones {
	return Milestones{3, 7, 14, 30, 60, 100, 180, 365}
}

// Lookup returns the greatest threshold <= streak, the smallest threshold
// > streak, and the days remaining to the next one. A nil value marks the
// respective field as absent: last is nil below the first threshold, next
// and daysToNext are nil at or past the final threshold.
func (m Milestones) Lookup(streak int) (last, next, daysToNext *int) {
	for _, threshold := range m {
		t := threshold
		if t <= streak {
			last = &t
			continue
		}
		next = &t
		days := t - streak
		daysToNext = &days
		break
	}
	return last, next, daysToNext
}

// NewlyReached reports whether moving from oldStreak to newStreak crossed a
// threshold, and which one. Staying on a threshold does not re-trigger it.
func (m Milestones) NewlyReached(oldStreak, newStreak int) (int, bool) {
	lastOld, _, _ := m.Lookup(oldStreak)
	lastNew, _, _ := m.Lookup(newStreak)
	if lastNew == nil {
		return 0, false
	}
	if lastOld != nil && *lastOld >= *lastNew {
		return 0, false
	}
	return *lastNew, true
}
