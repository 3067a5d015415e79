// Package streak implements the daily practice streak and milestone engine.
//
// The engine answers three questions for a user on a calendar day: did
// practicing today continue, restart or not change the streak; did the event
// cross a milestone threshold and what reward follows; and which users have
// gone idle long enough to need end-of-day reconciliation. All day math uses
// the fixed practice zone (UTC+7), never the host timezone.
package streak

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luminalearn/streaks/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type streakRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserStreakState, error)
	Save(ctx context.Context, state *domain.UserStreakState) error
	ListIdle(ctx context.Context, before time.Time) ([]uuid.UUID, error)
	ListUnpracticed(ctx context.Context, since time.Time) ([]domain.ReminderTarget, error)
}

// txManager defines the transaction manager interface needed by the streak service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the streak business logic. All mutable state lives in
// the store; the Service itself is safe for concurrent use.
type Service struct {
	repo       streakRepo
	tx         txManager
	log        *slog.Logger
	milestones Milestones
	now        func() time.Time
}

// Option configures optional Service behavior.
type Option func(*Service)

// WithNow overrides the wall-clock source. Tests use this to pin "today".
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new streak service. A nil or empty milestones slice
// falls back to DefaultMilestones.
func NewService(log *slog.Logger, repo streakRepo, tx txManager, milestones Milestones, opts ...Option) *Service {
	if len(milestones) == 0 {
		milestones = DefaultMilestones()
	}

	s := &Service{
		repo:       repo,
		tx:         tx,
		log:        log.With("service", "streak"),
		milestones: milestones,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current calendar date in the fixed practice zone.
func (s *Service) Today() domain.CivilDate {
	return domain.PracticeDateOf(s.now())
}
