package streak

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/luminalearn/streaks/internal/domain"
)

func TestService_ApplyAutoFreezeOrReset_SpendsToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	today := civil(2024, time.March, 10)

	repo := &streakRepoMock{
		GetByUserIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.UserStreakState, error) {
			return &domain.UserStreakState{
				UserID:         id,
				CurrentStreak:  12,
				LongestStreak:  12,
				FreezeTokens:   2,
				LastPracticeAt: practicedOn(today.AddDays(-2)),
			}, nil
		},
		SaveFunc: func(ctx context.Context, state *domain.UserStreakState) error {
			return nil
		},
	}

	res, err := newTestService(repo).ApplyAutoFreezeOrReset(context.Background(), userID, today)
	require.NoError(t, err)

	require.True(t, res.Success)
	require.Equal(t, domain.StreakEventFreezeUsed, res.Event)
	require.Equal(t, 12, res.Summary.CurrentStreak)
	require.Equal(t, 1, res.Summary.FreezeTokens)

	// The token bridges the missed day: lastPracticeAt advanced to yesterday,
	// so a practice later today extends the streak instead of resetting it.
	saved := repo.SaveCalls()[0].State
	require.NotNil(t, saved.LastPracticeDate())
	require.True(t, saved.LastPracticeDate().Equal(today.AddDays(-1)))

	event, next := Transition(*saved, today)
	require.Equal(t, domain.StreakEventCompleteDay, event)
	require.Equal(t, 13, next.CurrentStreak)
}

func TestService_ApplyAutoFreezeOrReset_NoTokensClearsStreak(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	today := civil(2024, time.March, 10)

	repo := &streakRepoMock{
		GetByUserIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.UserStreakState, error) {
			return &domain.UserStreakState{
				UserID:         id,
				CurrentStreak:  12,
				LongestStreak:  20,
				FreezeTokens:   0,
				LastPracticeAt: practicedOn(today.AddDays(-2)),
			}, nil
		},
		SaveFunc: func(ctx context.Context, state *domain.UserStreakState) error {
			return nil
		},
	}

	res, err := newTestService(repo).ApplyAutoFreezeOrReset(context.Background(), userID, today)
	require.NoError(t, err)

	require.Equal(t, domain.StreakEventStreakLost, res.Event)
	require.Equal(t, 0, res.Summary.CurrentStreak)
	require.Equal(t, 20, res.Summary.LongestStreak)
}

func TestService_ApplyAutoFreezeOrReset_NoOpCases(t *testing.T) {
	t.Parallel()

	today := civil(2024, time.March, 10)

	tests := []struct {
		name  string
		state domain.UserStreakState
	}{
		{
			name:  "no active streak",
			state: domain.UserStreakState{},
		},
		{
			name:  "streak without practice date",
			state: domain.UserStreakState{CurrentStreak: 3, LongestStreak: 3},
		},
		{
			name: "practiced today",
			state: domain.UserStreakState{
				CurrentStreak:  3,
				LongestStreak:  3,
				LastPracticeAt: practicedOn(today),
			},
		},
		{
			name: "practiced yesterday",
			state: domain.UserStreakState{
				CurrentStreak:  3,
				LongestStreak:  3,
				LastPracticeAt: practicedOn(today.AddDays(-1)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.state
			repo := &streakRepoMock{
				GetByUserIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.UserStreakState, error) {
					state.UserID = id
					return &state, nil
				},
			}

			res, err := newTestService(repo).ApplyAutoFreezeOrReset(context.Background(), uuid.New(), today)
			require.NoError(t, err)

			require.True(t, res.Success)
			require.Empty(t, res.Event)
			require.Empty(t, repo.SaveCalls(), "no-op reconciliation must not write")
		})
	}
}

func TestService_ApplyAutoFreezeOrReset_StoreFailurePropagates(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("store unavailable")
	repo := &streakRepoMock{
		GetByUserIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.UserStreakState, error) {
			return nil, storeErr
		},
	}

	_, err := newTestService(repo).ApplyAutoFreezeOrReset(context.Background(), uuid.New(), civil(2024, time.March, 10))
	require.ErrorIs(t, err, storeErr)
}

func TestSpendFreezeToken_OneTokenPerMissedDay(t *testing.T) {
	t.Parallel()

	today := civil(2024, time.March, 10)
	state := domain.UserStreakState{
		CurrentStreak:  5,
		LongestStreak:  5,
		FreezeTokens:   2,
		LastPracticeAt: practicedOn(today.AddDays(-3)),
	}

	// Two reconciliation runs bridge two of the missed days.
	spendFreezeToken(&state)
	spendFreezeToken(&state)

	require.Equal(t, 0, state.FreezeTokens)
	require.True(t, state.LastPracticeDate().Equal(today.AddDays(-1)))
}
