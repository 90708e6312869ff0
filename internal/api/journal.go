// File: internal/api/journal.go
package api

import (
	"time"

	"mockmate/internal/model"
	"mockmate/internal/store"
)

// JournalEntryRequest 建立與更新日誌共用的請求
// 未帶 is_private 時預設為私人
type JournalEntryRequest struct {
	Question  string   `json:"question" validate:"required" example:"Tell me about a time you missed a deadline"`
	Title     string   `json:"title" validate:"required" example:"Shipping the migration late"`
	Category  string   `json:"category" validate:"required" example:"Problem Solving"`
	Situation string   `json:"situation" validate:"required"`
	Task      string   `json:"task" validate:"required"`
	Action    string   `json:"action" validate:"required"`
	Result    string   `json:"result" validate:"required"`
	Skills    string   `json:"skills" example:"Go,PostgreSQL"`
	Tags      []string `json:"tags" example:"backend,deadline"`
	IsPrivate *bool    `json:"is_private,omitempty"`
}

// ToModel 轉成儲存層使用的實體
func (r JournalEntryRequest) ToModel(userID int) *model.JournalEntry {
	isPrivate := true
	if r.IsPrivate != nil {
		isPrivate = *r.IsPrivate
	}
	return &model.JournalEntry{
		UserID:    userID,
		Question:  r.Question,
		Title:     r.Title,
		Category:  r.Category,
		Situation: r.Situation,
		Task:      r.Task,
		Action:    r.Action,
		Result:    r.Result,
		Skills:    r.Skills,
		Tags:      joinTags(r.Tags),
		IsPrivate: isPrivate,
	}
}

type JournalEntryResponse struct {
	ID            int        `json:"id" example:"3"`
	Question      string     `json:"question"`
	Title         string     `json:"title"`
	Category      string     `json:"category"`
	Situation     string     `json:"situation"`
	Task          string     `json:"task"`
	Action        string     `json:"action"`
	Result        string     `json:"result"`
	Skills        string     `json:"skills"`
	Tags          []string   `json:"tags"`
	IsPrivate     bool       `json:"is_private"`
	TimesReviewed int        `json:"times_reviewed" example:"2"`
	LastReviewed  *time.Time `json:"last_reviewed,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// JournalSummaryResponse 統計中使用的精簡日誌摘要
type JournalSummaryResponse struct {
	ID        int       `json:"id" example:"3"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type JournalStatsResponse struct {
	TotalEntries int                      `json:"total_entries" example:"12"`
	Categories   []CategoryCountResponse  `json:"categories"`
	Recent       []JournalSummaryResponse `json:"recent"`
}

func NewJournalEntryResponse(e *model.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		ID:            e.ID,
		Question:      e.Question,
		Title:         e.Title,
		Category:      e.Category,
		Situation:     e.Situation,
		Task:          e.Task,
		Action:        e.Action,
		Result:        e.Result,
		Skills:        e.Skills,
		Tags:          splitTags(e.Tags),
		IsPrivate:     e.IsPrivate,
		TimesReviewed: e.TimesReviewed,
		LastReviewed:  e.LastReviewed,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func NewJournalEntryResponses(entries []model.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, NewJournalEntryResponse(&entries[i]))
	}
	return out
}

func NewJournalStatsResponse(stats *store.JournalStats) JournalStatsResponse {
	resp := JournalStatsResponse{
		TotalEntries: stats.TotalEntries,
		Categories:   []CategoryCountResponse{},
		Recent:       []JournalSummaryResponse{},
	}
	for _, c := range stats.Categories {
		resp.Categories = append(resp.Categories, CategoryCountResponse{Category: c.Category, Count: c.Count})
	}
	for _, e := range stats.Recent {
		resp.Recent = append(resp.Recent, JournalSummaryResponse{
			ID:        e.ID,
			Title:     e.Title,
			Category:  e.Category,
			CreatedAt: e.CreatedAt,
		})
	}
	return resp
}
