package jobs

import (
	"context"
	"log/slog"

	"github.com/luminalearn/streaks/internal/domain"
)

// Dispatcher delivers a composed reminder to a user. Implementations decide
// the channel (email, push, chat message).
type Dispatcher interface {
	Dispatch(ctx context.Context, target domain.ReminderTarget) error
}

// LogDispatcher writes reminders to the log instead of sending them.
// It is the default until a real delivery channel is plugged in.
type LogDispatcher struct {
	log *slog.Logger
}

// NewLogDispatcher creates a log-only dispatcher.
func NewLogDispatcher(log *slog.Logger) *LogDispatcher {
	return &LogDispatcher{log: log.With("component", "reminder_dispatcher")}
}

// Dispatch logs the reminder and never fails.
func (d *LogDispatcher) Dispatch(_ context.Context, target domain.ReminderTarget) error {
	d.log.Info("reminder",
		"user_id", target.UserID,
		"email", target.Email,
		"current_streak", target.CurrentStreak,
		"message", target.Message,
	)
	return nil
}
