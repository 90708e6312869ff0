// File: internal/store/journal.go
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mockmate/internal/database"
	"mockmate/internal/model"
)

const journalColumns = `id, user_id, question, title, category, situation, task, action, result, skills, tags, is_private, times_reviewed, last_reviewed, created_at, updated_at`

// CategoryCount 單一分類的筆數統計
type CategoryCount struct {
	Category string
	Count    int
}

// JournalStats 使用者的日誌總覽統計
type JournalStats struct {
	TotalEntries int
	Categories   []CategoryCount
	Recent       []model.JournalEntry
}

func scanJournalEntry(row pgx.Row) (*model.JournalEntry, error) {
	e := &model.JournalEntry{}
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Question,
		&e.Title,
		&e.Category,
		&e.Situation,
		&e.Task,
		&e.Action,
		&e.Result,
		&e.Skills,
		&e.Tags,
		&e.IsPrivate,
		&e.TimesReviewed,
		&e.LastReviewed,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func collectJournalEntries(rows pgx.Rows) ([]model.JournalEntry, error) {
	defer rows.Close()

	entries := []model.JournalEntry{}
	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListJournalEntries 列出使用者全部日誌，最近更新在前
func ListJournalEntries(ctx context.Context, db database.DB, userID int) ([]model.JournalEntry, error) {
	rows, err := db.Query(ctx,
		`SELECT `+journalColumns+` FROM journal_entries WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("ListJournalEntries: %w", err)
	}
	entries, err := collectJournalEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("ListJournalEntries: %w", err)
	}
	return entries, nil
}

// ListJournalEntriesByCategory 列出使用者指定分類的日誌
func ListJournalEntriesByCategory(ctx context.Context, db database.DB, userID int, category string) ([]model.JournalEntry, error) {
	rows, err := db.Query(ctx,
		`SELECT `+journalColumns+` FROM journal_entries WHERE user_id = $1 AND category = $2 ORDER BY updated_at DESC`,
		userID, category)
	if err != nil {
		return nil, fmt.Errorf("ListJournalEntriesByCategory: %w", err)
	}
	entries, err := collectJournalEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("ListJournalEntriesByCategory: %w", err)
	}
	return entries, nil
}

// ListRecentJournalEntries 列出最近建立的日誌
func ListRecentJournalEntries(ctx context.Context, db database.DB, userID int, count int) ([]model.JournalEntry, error) {
	rows, err := db.Query(ctx,
		`SELECT `+journalColumns+` FROM journal_entries WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, count)
	if err != nil {
		return nil, fmt.Errorf("ListRecentJournalEntries: %w", err)
	}
	entries, err := collectJournalEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("ListRecentJournalEntries: %w", err)
	}
	return entries, nil
}

// SearchJournalEntries 以關鍵字搜尋使用者日誌的主要文字欄位
func SearchJournalEntries(ctx context.Context, db database.DB, userID int, term string) ([]model.JournalEntry, error) {
	pattern := "%" + term + "%"
	rows, err := db.Query(ctx, `
		SELECT `+journalColumns+` FROM journal_entries
		WHERE user_id = $1 AND (
			title ILIKE $2 OR question ILIKE $2 OR situation ILIKE $2 OR task ILIKE $2
			OR action ILIKE $2 OR result ILIKE $2 OR skills ILIKE $2 OR tags ILIKE $2
		)
		ORDER BY updated_at DESC`,
		userID, pattern)
	if err != nil {
		return nil, fmt.Errorf("SearchJournalEntries: %w", err)
	}
	entries, err := collectJournalEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("SearchJournalEntries: %w", err)
	}
	return entries, nil
}

// ListMostReviewedJournalEntries 列出複習次數最多的日誌
func ListMostReviewedJournalEntries(ctx context.Context, db database.DB, userID int, count int) ([]model.JournalEntry, error) {
	rows, err := db.Query(ctx, `
		SELECT `+journalColumns+` FROM journal_entries
		WHERE user_id = $1
		ORDER BY times_reviewed DESC, last_reviewed DESC NULLS LAST
		LIMIT $2`,
		userID, count)
	if err != nil {
		return nil, fmt.Errorf("ListMostReviewedJournalEntries: %w", err)
	}
	entries, err := collectJournalEntries(rows)
	if err != nil {
		return nil, fmt.Errorf("ListMostReviewedJournalEntries: %w", err)
	}
	return entries, nil
}

// GetJournalEntry 取得使用者的單筆日誌
func GetJournalEntry(ctx context.Context, db database.DB, userID int, id int) (*model.JournalEntry, error) {
	e, err := scanJournalEntry(db.QueryRow(ctx,
		`SELECT `+journalColumns+` FROM journal_entries WHERE id = $1 AND user_id = $2`,
		id, userID))
	if err != nil {
		return nil, fmt.Errorf("GetJournalEntry: %w", err)
	}
	return e, nil
}

// CreateJournalEntry 新增日誌並回填資料庫產生的欄位
func CreateJournalEntry(ctx context.Context, db database.DB, e *model.JournalEntry) error {
	err := db.QueryRow(ctx, `
		INSERT INTO journal_entries (user_id, question, title, category, situation, task, action, result, skills, tags, is_private)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, times_reviewed, created_at, updated_at`,
		e.UserID, e.Question, e.Title, e.Category, e.Situation, e.Task, e.Action, e.Result, e.Skills, e.Tags, e.IsPrivate,
	).Scan(&e.ID, &e.TimesReviewed, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("CreateJournalEntry: %w", err)
	}
	return nil
}

// UpdateJournalEntry 更新使用者的單筆日誌並回填資料庫中的完整資料列，
// 複習次數與建立時間等非請求欄位保持原值
func UpdateJournalEntry(ctx context.Context, db database.DB, e *model.JournalEntry) error {
	updated, err := scanJournalEntry(db.QueryRow(ctx, `
		UPDATE journal_entries
		SET question = $1, title = $2, category = $3, situation = $4, task = $5, action = $6,
			result = $7, skills = $8, tags = $9, is_private = $10, updated_at = now()
		WHERE id = $11 AND user_id = $12
		RETURNING `+journalColumns,
		e.Question, e.Title, e.Category, e.Situation, e.Task, e.Action, e.Result, e.Skills, e.Tags, e.IsPrivate,
		e.ID, e.UserID,
	))
	if err != nil {
		return fmt.Errorf("UpdateJournalEntry: %w", err)
	}
	*e = *updated
	return nil
}

// DeleteJournalEntry 刪除使用者的單筆日誌
func DeleteJournalEntry(ctx context.Context, db database.DB, userID int, id int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("DeleteJournalEntry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteJournalEntry: %w", pgx.ErrNoRows)
	}
	return nil
}

// MarkJournalEntryReviewed 累加複習次數並更新最後複習時間
func MarkJournalEntryReviewed(ctx context.Context, db database.DB, userID int, id int) error {
	_, err := db.Exec(ctx, `
		UPDATE journal_entries
		SET times_reviewed = times_reviewed + 1, last_reviewed = now()
		WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return fmt.Errorf("MarkJournalEntryReviewed: %w", err)
	}
	return nil
}

// GetJournalStats 彙整使用者的日誌統計
func GetJournalStats(ctx context.Context, db database.DB, userID int) (*JournalStats, error) {
	stats := &JournalStats{Categories: []CategoryCount{}}

	err := db.QueryRow(ctx,
		`SELECT count(*) FROM journal_entries WHERE user_id = $1`, userID).Scan(&stats.TotalEntries)
	if err != nil {
		return nil, fmt.Errorf("GetJournalStats: %w", err)
	}

	rows, err := db.Query(ctx, `
		SELECT category, count(*) FROM journal_entries
		WHERE user_id = $1
		GROUP BY category
		ORDER BY count(*) DESC, category`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("GetJournalStats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("GetJournalStats: %w", err)
		}
		stats.Categories = append(stats.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetJournalStats: %w", err)
	}

	recent, err := ListRecentJournalEntries(ctx, db, userID, 3)
	if err != nil {
		return nil, fmt.Errorf("GetJournalStats: %w", err)
	}
	stats.Recent = recent

	return stats, nil
}
