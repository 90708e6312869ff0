// File: internal/model/question.go
package model

import "time"

type Question struct {
	ID           int       `db:"id" json:"id"`
	Text         string    `db:"text" json:"text"`
	Category     string    `db:"category" json:"category"`
	Difficulty   string    `db:"difficulty" json:"difficulty"`
	SampleAnswer *string   `db:"sample_answer" json:"sample_answer,omitempty"`
	Tips         *string   `db:"tips" json:"tips,omitempty"`
	Tags         string    `db:"tags" json:"tags"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type QuestionCategory struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
	Color       string  `db:"color" json:"color"`
	SortOrder   int     `db:"sort_order" json:"sort_order"`
	IsActive    bool    `db:"is_active" json:"is_active"`
}
