package streak

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luminalearn/streaks/internal/domain"
)

var _ streakRepo = &streakRepoMock{}

type streakRepoMock struct {
	GetByUserIDFunc     func(ctx context.Context, userID uuid.UUID) (*domain.UserStreakState, error)
	SaveFunc            func(ctx context.Context, state *domain.UserStreakState) error
	ListIdleFunc        func(ctx context.Context, before time.Time) ([]uuid.UUID, error)
	ListUnpracticedFunc func(ctx context.Context, since time.Time) ([]domain.ReminderTarget, error)

	calls struct {
		GetByUserID []struct {
			UserID uuid.UUID
		}
		Save []struct {
			State *domain.UserStreakState
		}
		ListIdle []struct {
			Before time.Time
		}
		ListUnpracticed []struct {
			Since time.Time
		}
	}
	lockGetByUserID     sync.RWMutex
	lockSave            sync.RWMutex
	lockListIdle        sync.RWMutex
	lockListUnpracticed sync.RWMutex
}

func (mock *streakRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserStreakState, error) {
	if mock.GetByUserIDFunc == nil {
		panic("streakRepoMock.GetByUserIDFunc: method is nil but streakRepo.GetByUserID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *streakRepoMock) GetByUserIDCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *streakRepoMock) Save(ctx context.Context, state *domain.UserStreakState) error {
	if mock.SaveFunc == nil {
		panic("streakRepoMock.SaveFunc: method is nil but streakRepo.Save was just called")
	}
	callInfo := struct {
		State *domain.UserStreakState
	}{State: state}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, state)
}

func (mock *streakRepoMock) SaveCalls() []struct {
	State *domain.UserStreakState
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *streakRepoMock) ListIdle(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	if mock.ListIdleFunc == nil {
		panic("streakRepoMock.ListIdleFunc: method is nil but streakRepo.ListIdle was just called")
	}
	callInfo := struct {
		Before time.Time
	}{Before: before}
	mock.lockListIdle.Lock()
	mock.calls.ListIdle = append(mock.calls.ListIdle, callInfo)
	mock.lockListIdle.Unlock()
	return mock.ListIdleFunc(ctx, before)
}

func (mock *streakRepoMock) ListIdleCalls() []struct {
	Before time.Time
} {
	mock.lockListIdle.RLock()
	calls := mock.calls.ListIdle
	mock.lockListIdle.RUnlock()
	return calls
}

func (mock *streakRepoMock) ListUnpracticed(ctx context.Context, since time.Time) ([]domain.ReminderTarget, error) {
	if mock.ListUnpracticedFunc == nil {
		panic("streakRepoMock.ListUnpracticedFunc: method is nil but streakRepo.ListUnpracticed was just called")
	}
	callInfo := struct {
		Since time.Time
	}{Since: since}
	mock.lockListUnpracticed.Lock()
	mock.calls.ListUnpracticed = append(mock.calls.ListUnpracticed, callInfo)
	mock.lockListUnpracticed.Unlock()
	return mock.ListUnpracticedFunc(ctx, since)
}

func (mock *streakRepoMock) ListUnpracticedCalls() []struct {
	Since time.Time
} {
	mock.lockListUnpracticed.RLock()
	calls := mock.calls.ListUnpracticed
	mock.lockListUnpracticed.RUnlock()
	return calls
}
