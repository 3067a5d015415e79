// Package streak implements the streak state repository using PostgreSQL.
//
// Streak state lives in nullable columns on the users table. NULL means the
// user never practiced; the mapping layer folds NULL into zero values so the
// engine never deals with absent counters.
package streak

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/luminalearn/streaks/internal/adapter/postgres"
	"github.com/luminalearn/streaks/internal/domain"
)

const usersTable = "users"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var stateColumns = []string{
	"id",
	"current_streak",
	"longest_streak",
	"last_practice_at",
	"streak_freezes_available",
}

// Repo provides streak state persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new streak repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type stateRow struct {
	ID             uuid.UUID  `db:"id"`
	CurrentStreak  *int       `db:"current_streak"`
	LongestStreak  *int       `db:"longest_streak"`
	LastPracticeAt *time.Time `db:"last_practice_at"`
	FreezeTokens   *int       `db:"streak_freezes_available"`
}

func toDomainState(row stateRow) domain.UserStreakState {
	return domain.UserStreakState{
		UserID:         row.ID,
		CurrentStreak:  intOrZero(row.CurrentStreak),
		LongestStreak:  intOrZero(row.LongestStreak),
		LastPracticeAt: row.LastPracticeAt,
		FreezeTokens:   intOrZero(row.FreezeTokens),
	}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByUserID returns the streak state for a user.
// A user that exists but never practiced comes back with zero counters.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserStreakState, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := psql.Select(stateColumns...).
		From(usersTable).
		Where(squirrel.Eq{"id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row stateRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, mapError(err, "streak state", userID)
	}

	state := toDomainState(row)
	return &state, nil
}

// Save writes the full streak state of a user.
func (r *Repo) Save(ctx context.Context, state *domain.UserStreakState) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := psql.Update(usersTable).
		Set("current_streak", state.CurrentStreak).
		Set("longest_streak", state.LongestStreak).
		Set("last_practice_at", state.LastPracticeAt).
		Set("streak_freezes_available", state.FreezeTokens).
		Where(squirrel.Eq{"id": state.UserID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, "streak state", state.UserID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("streak state %s: %w", state.UserID, domain.ErrNotFound)
	}
	return nil
}

// ListIdle returns the IDs of users with an active streak whose last practice
// happened strictly before the given instant.
func (r *Repo) ListIdle(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := psql.Select("id").
		From(usersTable).
		Where(squirrel.Gt{"current_streak": 0}).
		Where(squirrel.NotEq{"last_practice_at": nil}).
		Where(squirrel.Lt{"last_practice_at": before}).
		OrderBy("id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, q, &ids, sql, args...); err != nil {
		return nil, mapError(err, "idle users", uuid.Nil)
	}
	return ids, nil
}

type reminderRow struct {
	ID            uuid.UUID `db:"id"`
	Email         string    `db:"email"`
	Name          *string   `db:"name"`
	CurrentStreak *int      `db:"current_streak"`
	FreezeTokens  *int      `db:"streak_freezes_available"`
}

// ListUnpracticed returns users with an active streak who have not practiced
// since the given instant, with the contact fields a reminder needs.
func (r *Repo) ListUnpracticed(ctx context.Context, since time.Time) ([]domain.ReminderTarget, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := psql.Select("id", "email", "name", "current_streak", "streak_freezes_available").
		From(usersTable).
		Where(squirrel.Gt{"current_streak": 0}).
		Where(squirrel.Or{
			squirrel.Eq{"last_practice_at": nil},
			squirrel.Lt{"last_practice_at": since},
		}).
		OrderBy("id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []reminderRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, mapError(err, "unpracticed users", uuid.Nil)
	}

	targets := make([]domain.ReminderTarget, 0, len(rows))
	for _, row := range rows {
		name := ""
		if row.Name != nil {
			name = *row.Name
		}
		targets = append(targets, domain.ReminderTarget{
			UserID:        row.ID,
			Email:         row.Email,
			Name:          name,
			CurrentStreak: intOrZero(row.CurrentStreak),
			FreezeTokens:  intOrZero(row.FreezeTokens),
		})
	}
	return targets, nil
}
