// File: internal/model/journal_entry.go
package model

import "time"

// JournalEntry 使用 STAR 方法紀錄行為面試素材
type JournalEntry struct {
	ID            int        `db:"id" json:"id"`
	UserID        int        `db:"user_id" json:"user_id"`
	Question      string     `db:"question" json:"question"`
	Title         string     `db:"title" json:"title"`
	Category      string     `db:"category" json:"category"`
	Situation     string     `db:"situation" json:"situation"`
	Task          string     `db:"task" json:"task"`
	Action        string     `db:"action" json:"action"`
	Result        string     `db:"result" json:"result"`
	Skills        string     `db:"skills" json:"skills"`
	Tags          string     `db:"tags" json:"tags"`
	IsPrivate     bool       `db:"is_private" json:"is_private"`
	TimesReviewed int        `db:"times_reviewed" json:"times_reviewed"`
	LastReviewed  *time.Time `db:"last_reviewed" json:"last_reviewed,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
