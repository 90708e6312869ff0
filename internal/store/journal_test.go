// File: internal/store/journal_test.go
package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"mockmate/internal/database"
	"mockmate/internal/model"
)

func journalScan(id int, title string, now time.Time) func(dest ...any) error {
	return setScan(id, 7, "Tell me about a challenge", title, "Problem Solving",
		"situation", "task", "action", "result", "Go,SQL", "backend,teamwork",
		true, 2, &now, now, now)
}

func TestListJournalEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		rows := &fakeRows{scanFns: []func(dest ...any) error{
			journalScan(1, "first", now),
			journalScan(2, "second", now),
		}}
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "ORDER BY updated_at DESC")
				require.Equal(t, []any{7}, args)
				return rows, nil
			},
		}

		entries, err := ListJournalEntries(ctx, db, 7)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, "first", entries[0].Title)
		require.Equal(t, 2, entries[1].ID)
		require.True(t, rows.closed)
	})

	t.Run("query failure", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return nil, errors.New("connection closed")
			},
		}
		_, err := ListJournalEntries(ctx, db, 7)
		require.ErrorContains(t, err, "ListJournalEntries")
	})

	t.Run("rows error", func(t *testing.T) {
		rows := &fakeRows{err: errors.New("read timeout")}
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return rows, nil },
		}
		_, err := ListJournalEntries(ctx, db, 7)
		require.ErrorContains(t, err, "read timeout")
		require.True(t, rows.closed)
	})
}

func TestSearchJournalEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	rows := &fakeRows{scanFns: []func(dest ...any) error{journalScan(1, "match", now)}}
	db := &database.FakeDB{
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "ILIKE $2")
			require.Equal(t, []any{7, "%deadline%"}, args)
			return rows, nil
		},
	}

	entries, err := SearchJournalEntries(ctx, db, 7, "deadline")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestListRecentJournalEntries(t *testing.T) {
	ctx := context.Background()

	db := &database.FakeDB{
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "ORDER BY created_at DESC LIMIT $2")
			require.Equal(t, []any{7, 5}, args)
			return &fakeRows{}, nil
		},
	}

	entries, err := ListRecentJournalEntries(ctx, db, 7, 5)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestGetJournalEntry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "WHERE id = $1 AND user_id = $2")
				require.Equal(t, []any{3, 7}, args)
				return fakeRow{scanFn: journalScan(3, "entry", now)}
			},
		}
		e, err := GetJournalEntry(ctx, db, 7, 3)
		require.NoError(t, err)
		require.Equal(t, 3, e.ID)
		require.Equal(t, 2, e.TimesReviewed)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return fakeRow{scanFn: func(...any) error { return pgx.ErrNoRows }}
			},
		}
		_, err := GetJournalEntry(ctx, db, 7, 3)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestCreateJournalEntry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "INSERT INTO journal_entries")
			require.Len(t, args, 11)
			return fakeRow{scanFn: setScan(9, 0, now, now)}
		},
	}

	e := &model.JournalEntry{UserID: 7, Title: "entry", IsPrivate: true}
	require.NoError(t, CreateJournalEntry(ctx, db, e))
	require.Equal(t, 9, e.ID)
	require.Zero(t, e.TimesReviewed)
}

func TestUpdateJournalEntry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("success fills stored fields", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "WHERE id = $11 AND user_id = $12")
				require.Contains(t, sql, "RETURNING "+journalColumns)
				require.Len(t, args, 12)
				return fakeRow{scanFn: journalScan(3, "renamed", now)}
			},
		}

		e := &model.JournalEntry{ID: 3, UserID: 7, Title: "renamed"}
		require.NoError(t, UpdateJournalEntry(ctx, db, e))
		require.Equal(t, 2, e.TimesReviewed)
		require.Equal(t, now, e.CreatedAt)
		require.NotNil(t, e.LastReviewed)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return fakeRow{scanFn: func(...any) error { return pgx.ErrNoRows }}
			},
		}
		err := UpdateJournalEntry(ctx, db, &model.JournalEntry{ID: 3, UserID: 7})
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestDeleteJournalEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{3, 7}, args)
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteJournalEntry(ctx, db, 7, 3))
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteJournalEntry(ctx, db, 7, 3), pgx.ErrNoRows)
	})
}

func TestMarkJournalEntryReviewed(t *testing.T) {
	ctx := context.Background()

	db := &database.FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Contains(t, sql, "times_reviewed + 1")
			require.Equal(t, []any{3, 7}, args)
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}
	require.NoError(t, MarkJournalEntryReviewed(ctx, db, 7, 3))
}

func TestGetJournalStats(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	queries := 0
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "SELECT count(*)")
			return fakeRow{scanFn: setScan(4)}
		},
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			queries++
			if queries == 1 {
				require.Contains(t, sql, "GROUP BY category")
				return &fakeRows{scanFns: []func(dest ...any) error{
					setScan("Problem Solving", 3),
					setScan("Leadership", 1),
				}}, nil
			}
			require.Contains(t, sql, "ORDER BY created_at DESC")
			return &fakeRows{scanFns: []func(dest ...any) error{journalScan(1, "recent", now)}}, nil
		},
	}

	stats, err := GetJournalStats(ctx, db, 7)
	require.NoError(t, err)
	require.Equal(t, 4, stats.TotalEntries)
	require.Equal(t, []CategoryCount{{"Problem Solving", 3}, {"Leadership", 1}}, stats.Categories)
	require.Len(t, stats.Recent, 1)
}
