// File: internal/model/interview_session.go
package model

import "time"

// InterviewSession 單次練習紀錄，連結使用者與題目
type InterviewSession struct {
	ID                  int        `db:"id" json:"id"`
	UserID              int        `db:"user_id" json:"user_id"`
	QuestionID          int        `db:"question_id" json:"question_id"`
	UserAnswer          *string    `db:"user_answer" json:"user_answer,omitempty"`
	Rating              *int       `db:"rating" json:"rating,omitempty"`
	Notes               *string    `db:"notes" json:"notes,omitempty"`
	ResponseTimeSeconds *int       `db:"response_time_seconds" json:"response_time_seconds,omitempty"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`

	// 查詢時由 JOIN 帶出的題目欄位
	QuestionText       string `db:"question_text" json:"-"`
	QuestionCategory   string `db:"question_category" json:"-"`
	QuestionDifficulty string `db:"question_difficulty" json:"-"`
}
