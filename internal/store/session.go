// File: internal/store/session.go
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mockmate/internal/database"
	"mockmate/internal/model"
)

const sessionColumns = `s.id, s.user_id, s.question_id, s.user_answer, s.rating, s.notes, s.response_time_seconds, s.created_at, s.updated_at, q.text, q.category, q.difficulty`

// SessionCategoryStats 單一分類的練習統計
type SessionCategoryStats struct {
	Category      string
	Sessions      int
	Completed     int
	AverageRating float64
}

// InterviewSessionStats 使用者的練習總覽統計
type InterviewSessionStats struct {
	TotalSessions     int
	CompletedSessions int
	CompletionRate    float64
	AverageRating     float64
	Categories        []SessionCategoryStats
	Recent            []model.InterviewSession
}

func scanInterviewSession(row pgx.Row) (*model.InterviewSession, error) {
	s := &model.InterviewSession{}
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.QuestionID,
		&s.UserAnswer,
		&s.Rating,
		&s.Notes,
		&s.ResponseTimeSeconds,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.QuestionText,
		&s.QuestionCategory,
		&s.QuestionDifficulty,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func collectInterviewSessions(rows pgx.Rows) ([]model.InterviewSession, error) {
	defer rows.Close()

	sessions := []model.InterviewSession{}
	for rows.Next() {
		s, err := scanInterviewSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListInterviewSessions 列出使用者全部練習紀錄，最新在前
func ListInterviewSessions(ctx context.Context, db database.DB, userID int) ([]model.InterviewSession, error) {
	rows, err := db.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM interview_sessions s
		JOIN questions q ON q.id = s.question_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("ListInterviewSessions: %w", err)
	}
	sessions, err := collectInterviewSessions(rows)
	if err != nil {
		return nil, fmt.Errorf("ListInterviewSessions: %w", err)
	}
	return sessions, nil
}

// GetInterviewSession 取得使用者的單筆練習紀錄
func GetInterviewSession(ctx context.Context, db database.DB, userID int, id int) (*model.InterviewSession, error) {
	s, err := scanInterviewSession(db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM interview_sessions s
		JOIN questions q ON q.id = s.question_id
		WHERE s.id = $1 AND s.user_id = $2`,
		id, userID))
	if err != nil {
		return nil, fmt.Errorf("GetInterviewSession: %w", err)
	}
	return s, nil
}

// CreateInterviewSession 建立練習紀錄並回填資料庫產生的欄位
func CreateInterviewSession(ctx context.Context, db database.DB, s *model.InterviewSession) error {
	err := db.QueryRow(ctx, `
		INSERT INTO interview_sessions (user_id, question_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`,
		s.UserID, s.QuestionID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("CreateInterviewSession: %w", err)
	}
	return nil
}

// SetInterviewSessionAnswer 寫入作答內容與作答秒數
func SetInterviewSessionAnswer(ctx context.Context, db database.DB, userID int, id int, answer string, responseTimeSeconds *int) error {
	tag, err := db.Exec(ctx, `
		UPDATE interview_sessions
		SET user_answer = $1, response_time_seconds = $2, updated_at = now()
		WHERE id = $3 AND user_id = $4`,
		answer, responseTimeSeconds, id, userID)
	if err != nil {
		return fmt.Errorf("SetInterviewSessionAnswer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("SetInterviewSessionAnswer: %w", pgx.ErrNoRows)
	}
	return nil
}

// RateInterviewSession 寫入自評分數與心得
func RateInterviewSession(ctx context.Context, db database.DB, userID int, id int, rating int, notes *string) error {
	tag, err := db.Exec(ctx, `
		UPDATE interview_sessions
		SET rating = $1, notes = $2, updated_at = now()
		WHERE id = $3 AND user_id = $4`,
		rating, notes, id, userID)
	if err != nil {
		return fmt.Errorf("RateInterviewSession: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("RateInterviewSession: %w", pgx.ErrNoRows)
	}
	return nil
}

// DeleteInterviewSession 刪除使用者的單筆練習紀錄
func DeleteInterviewSession(ctx context.Context, db database.DB, userID int, id int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM interview_sessions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("DeleteInterviewSession: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteInterviewSession: %w", pgx.ErrNoRows)
	}
	return nil
}

// GetInterviewSessionStats 彙整使用者的練習統計，完成率為百分比
func GetInterviewSessionStats(ctx context.Context, db database.DB, userID int) (*InterviewSessionStats, error) {
	stats := &InterviewSessionStats{Categories: []SessionCategoryStats{}}

	err := db.QueryRow(ctx, `
		SELECT count(*),
			count(*) FILTER (WHERE s.user_answer IS NOT NULL AND s.user_answer <> ''),
			coalesce(avg(s.rating), 0)
		FROM interview_sessions s
		WHERE s.user_id = $1`,
		userID).Scan(&stats.TotalSessions, &stats.CompletedSessions, &stats.AverageRating)
	if err != nil {
		return nil, fmt.Errorf("GetInterviewSessionStats: %w", err)
	}
	if stats.TotalSessions > 0 {
		stats.CompletionRate = float64(stats.CompletedSessions) / float64(stats.TotalSessions) * 100
	}

	rows, err := db.Query(ctx, `
		SELECT q.category, count(*),
			count(*) FILTER (WHERE s.user_answer IS NOT NULL AND s.user_answer <> ''),
			coalesce(avg(s.rating), 0)
		FROM interview_sessions s
		JOIN questions q ON q.id = s.question_id
		WHERE s.user_id = $1
		GROUP BY q.category
		ORDER BY count(*) DESC, q.category`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("GetInterviewSessionStats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c SessionCategoryStats
		if err := rows.Scan(&c.Category, &c.Sessions, &c.Completed, &c.AverageRating); err != nil {
			return nil, fmt.Errorf("GetInterviewSessionStats: %w", err)
		}
		stats.Categories = append(stats.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetInterviewSessionStats: %w", err)
	}

	recentRows, err := db.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM interview_sessions s
		JOIN questions q ON q.id = s.question_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC
		LIMIT 5`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("GetInterviewSessionStats: %w", err)
	}
	recent, err := collectInterviewSessions(recentRows)
	if err != nil {
		return nil, fmt.Errorf("GetInterviewSessionStats: %w", err)
	}
	stats.Recent = recent

	return stats, nil
}
