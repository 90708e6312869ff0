// File: internal/api/question.go
package api

import (
	"mockmate/internal/model"
	"mockmate/internal/store"
)

type QuestionResponse struct {
	ID           int      `json:"id" example:"3"`
	Text         string   `json:"text"`
	Category     string   `json:"category" example:"Leadership"`
	Difficulty   string   `json:"difficulty" example:"Medium"`
	SampleAnswer *string  `json:"sample_answer,omitempty"`
	Tips         *string  `json:"tips,omitempty"`
	Tags         []string `json:"tags"`
}

// PaginatedQuestionsResponse 題庫列表回應，total_pages 無條件進位
type PaginatedQuestionsResponse struct {
	Questions  []QuestionResponse `json:"questions"`
	Page       int                `json:"page" example:"1"`
	PageSize   int                `json:"page_size" example:"20"`
	Total      int                `json:"total" example:"14"`
	TotalPages int                `json:"total_pages" example:"1"`
}

type QuestionCategoryResponse struct {
	ID            int     `json:"id" example:"1"`
	Name          string  `json:"name" example:"Leadership"`
	Description   *string `json:"description,omitempty"`
	Color         string  `json:"color" example:"#EF4444"`
	SortOrder     int     `json:"sort_order" example:"1"`
	QuestionCount int     `json:"question_count" example:"3"`
}

type DifficultyCountResponse struct {
	Difficulty string `json:"difficulty" example:"Medium"`
	Count      int    `json:"count" example:"8"`
}

type QuestionStatsResponse struct {
	TotalQuestions int                       `json:"total_questions" example:"14"`
	Categories     []CategoryCountResponse   `json:"categories"`
	Difficulties   []DifficultyCountResponse `json:"difficulties"`
}

func NewQuestionResponse(q *model.Question) QuestionResponse {
	return QuestionResponse{
		ID:           q.ID,
		Text:         q.Text,
		Category:     q.Category,
		Difficulty:   q.Difficulty,
		SampleAnswer: q.SampleAnswer,
		Tips:         q.Tips,
		Tags:         splitTags(q.Tags),
	}
}

func NewQuestionResponses(questions []model.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, NewQuestionResponse(&questions[i]))
	}
	return out
}

func NewPaginatedQuestionsResponse(questions []model.Question, page, pageSize, total int) PaginatedQuestionsResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PaginatedQuestionsResponse{
		Questions:  NewQuestionResponses(questions),
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

func NewQuestionCategoryResponses(categories []store.QuestionCategorySummary) []QuestionCategoryResponse {
	out := make([]QuestionCategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, QuestionCategoryResponse{
			ID:            c.ID,
			Name:          c.Name,
			Description:   c.Description,
			Color:         c.Color,
			SortOrder:     c.SortOrder,
			QuestionCount: c.QuestionCount,
		})
	}
	return out
}

func NewQuestionStatsResponse(stats *store.QuestionStats) QuestionStatsResponse {
	resp := QuestionStatsResponse{
		TotalQuestions: stats.TotalQuestions,
		Categories:     []CategoryCountResponse{},
		Difficulties:   []DifficultyCountResponse{},
	}
	for _, c := range stats.Categories {
		resp.Categories = append(resp.Categories, CategoryCountResponse{Category: c.Category, Count: c.Count})
	}
	for _, d := range stats.Difficulties {
		resp.Difficulties = append(resp.Difficulties, DifficultyCountResponse{Difficulty: d.Difficulty, Count: d.Count})
	}
	return resp
}
