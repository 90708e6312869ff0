// File: internal/store/question.go
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"mockmate/internal/database"
	"mockmate/internal/model"
)

const questionColumns = `id, text, category, difficulty, sample_answer, tips, tags, is_active, created_at, updated_at`

// QuestionFilter 題庫列表的篩選與分頁條件
type QuestionFilter struct {
	Category   string
	Difficulty string
	Tags       []string
	Page       int
	PageSize   int
}

// QuestionCategorySummary 分類資訊加上該分類的現存題數
type QuestionCategorySummary struct {
	model.QuestionCategory
	QuestionCount int
}

// DifficultyCount 單一難度的題數統計
type DifficultyCount struct {
	Difficulty string
	Count      int
}

// QuestionStats 題庫總覽統計
type QuestionStats struct {
	TotalQuestions int
	Categories     []CategoryCount
	Difficulties   []DifficultyCount
}

func scanQuestion(row pgx.Row) (*model.Question, error) {
	q := &model.Question{}
	err := row.Scan(
		&q.ID,
		&q.Text,
		&q.Category,
		&q.Difficulty,
		&q.SampleAnswer,
		&q.Tips,
		&q.Tags,
		&q.IsActive,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func collectQuestions(rows pgx.Rows) ([]model.Question, error) {
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}

// questionFilterWhere 組出 WHERE 子句與對應參數，條件皆不分大小寫
func questionFilterWhere(f QuestionFilter) (string, []any) {
	conds := []string{"is_active"}
	args := []any{}

	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category ILIKE $%d", len(args)))
	}
	if f.Difficulty != "" {
		args = append(args, f.Difficulty)
		conds = append(conds, fmt.Sprintf("difficulty ILIKE $%d", len(args)))
	}
	tagConds := []string{}
	for _, tag := range f.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		args = append(args, "%"+tag+"%")
		tagConds = append(tagConds, fmt.Sprintf("tags ILIKE $%d", len(args)))
	}
	if len(tagConds) > 0 {
		conds = append(conds, "("+strings.Join(tagConds, " OR ")+")")
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

// ListQuestions 依條件列出題目並回傳符合條件的總題數
func ListQuestions(ctx context.Context, db database.DB, f QuestionFilter) ([]model.Question, int, error) {
	where, args := questionFilterWhere(f)

	var total int
	err := db.QueryRow(ctx, `SELECT count(*) FROM questions `+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("ListQuestions: %w", err)
	}

	offset := (f.Page - 1) * f.PageSize
	args = append(args, f.PageSize, offset)
	rows, err := db.Query(ctx, fmt.Sprintf(
		`SELECT `+questionColumns+` FROM questions %s ORDER BY category, id LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListQuestions: %w", err)
	}
	questions, err := collectQuestions(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("ListQuestions: %w", err)
	}
	return questions, total, nil
}

// GetQuestion 取得單一現存題目
func GetQuestion(ctx context.Context, db database.DB, id int) (*model.Question, error) {
	q, err := scanQuestion(db.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = $1 AND is_active`, id))
	if err != nil {
		return nil, fmt.Errorf("GetQuestion: %w", err)
	}
	return q, nil
}

// SearchQuestions 以關鍵字搜尋題目內容、分類與標籤
func SearchQuestions(ctx context.Context, db database.DB, term string) ([]model.Question, error) {
	pattern := "%" + term + "%"
	rows, err := db.Query(ctx, `
		SELECT `+questionColumns+` FROM questions
		WHERE is_active AND (text ILIKE $1 OR category ILIKE $1 OR tags ILIKE $1)
		ORDER BY category, id`,
		pattern)
	if err != nil {
		return nil, fmt.Errorf("SearchQuestions: %w", err)
	}
	questions, err := collectQuestions(rows)
	if err != nil {
		return nil, fmt.Errorf("SearchQuestions: %w", err)
	}
	return questions, nil
}

// RandomQuestions 隨機抽出指定數量的題目，category 為空時不限分類
func RandomQuestions(ctx context.Context, db database.DB, category string, count int) ([]model.Question, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if category != "" {
		rows, err = db.Query(ctx,
			`SELECT `+questionColumns+` FROM questions WHERE is_active AND category ILIKE $1 ORDER BY random() LIMIT $2`,
			category, count)
	} else {
		rows, err = db.Query(ctx,
			`SELECT `+questionColumns+` FROM questions WHERE is_active ORDER BY random() LIMIT $1`,
			count)
	}
	if err != nil {
		return nil, fmt.Errorf("RandomQuestions: %w", err)
	}
	questions, err := collectQuestions(rows)
	if err != nil {
		return nil, fmt.Errorf("RandomQuestions: %w", err)
	}
	return questions, nil
}

// ListQuestionCategories 列出現存分類與各分類題數
func ListQuestionCategories(ctx context.Context, db database.DB) ([]QuestionCategorySummary, error) {
	rows, err := db.Query(ctx, `
		SELECT c.id, c.name, c.description, c.color, c.sort_order, c.is_active,
			(SELECT count(*) FROM questions q WHERE q.category = c.name AND q.is_active)
		FROM question_categories c
		WHERE c.is_active
		ORDER BY c.sort_order, c.name`)
	if err != nil {
		return nil, fmt.Errorf("ListQuestionCategories: %w", err)
	}
	defer rows.Close()

	categories := []QuestionCategorySummary{}
	for rows.Next() {
		var c QuestionCategorySummary
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.SortOrder, &c.IsActive, &c.QuestionCount); err != nil {
			return nil, fmt.Errorf("ListQuestionCategories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListQuestionCategories: %w", err)
	}
	return categories, nil
}

// ListQuestionsByCategory 列出指定分類的題目，依難度排序
func ListQuestionsByCategory(ctx context.Context, db database.DB, name string) ([]model.Question, error) {
	rows, err := db.Query(ctx, `
		SELECT `+questionColumns+` FROM questions
		WHERE is_active AND category ILIKE $1
		ORDER BY difficulty, id`,
		name)
	if err != nil {
		return nil, fmt.Errorf("ListQuestionsByCategory: %w", err)
	}
	questions, err := collectQuestions(rows)
	if err != nil {
		return nil, fmt.Errorf("ListQuestionsByCategory: %w", err)
	}
	return questions, nil
}

// GetQuestionStats 彙整題庫統計
func GetQuestionStats(ctx context.Context, db database.DB) (*QuestionStats, error) {
	stats := &QuestionStats{Categories: []CategoryCount{}, Difficulties: []DifficultyCount{}}

	err := db.QueryRow(ctx, `SELECT count(*) FROM questions WHERE is_active`).Scan(&stats.TotalQuestions)
	if err != nil {
		return nil, fmt.Errorf("GetQuestionStats: %w", err)
	}

	rows, err := db.Query(ctx, `
		SELECT category, count(*) FROM questions
		WHERE is_active
		GROUP BY category
		ORDER BY count(*) DESC, category`)
	if err != nil {
		return nil, fmt.Errorf("GetQuestionStats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("GetQuestionStats: %w", err)
		}
		stats.Categories = append(stats.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetQuestionStats: %w", err)
	}

	diffRows, err := db.Query(ctx, `
		SELECT difficulty, count(*) FROM questions
		WHERE is_active
		GROUP BY difficulty
		ORDER BY count(*) DESC, difficulty`)
	if err != nil {
		return nil, fmt.Errorf("GetQuestionStats: %w", err)
	}
	defer diffRows.Close()
	for diffRows.Next() {
		var d DifficultyCount
		if err := diffRows.Scan(&d.Difficulty, &d.Count); err != nil {
			return nil, fmt.Errorf("GetQuestionStats: %w", err)
		}
		stats.Difficulties = append(stats.Difficulties, d)
	}
	if err := diffRows.Err(); err != nil {
		return nil, fmt.Errorf("GetQuestionStats: %w", err)
	}

	return stats, nil
}
