package streak

import "github.com/luminalearn/streaks/internal/domain"

// UpdateResult is the outcome of a streak mutation, returned to the caller
// so it can decide about follow-up actions (milestone notification etc.).
type UpdateResult struct {
	Success          bool
	Event            domain.StreakEvent // empty when reconciliation was a no-op
	Summary          *domain.StreakSummary
	MilestoneReached bool
	MilestoneValue   *int // set only when a threshold was newly crossed
	Message          string
}
