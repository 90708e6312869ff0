// File: internal/api/session.go
package api

import (
	"time"

	"mockmate/internal/model"
	"mockmate/internal/store"
)

type StartSessionRequest struct {
	QuestionID int `json:"question_id" validate:"required,gt=0" example:"3"`
}

type AnswerSessionRequest struct {
	Answer              string `json:"answer" validate:"required"`
	ResponseTimeSeconds *int   `json:"response_time_seconds,omitempty" validate:"omitempty,gte=0" example:"95"`
}

type RateSessionRequest struct {
	Rating int     `json:"rating" validate:"required,min=1,max=5" example:"4"`
	Notes  *string `json:"notes,omitempty"`
}

type InterviewSessionResponse struct {
	ID                  int        `json:"id" example:"11"`
	QuestionID          int        `json:"question_id" example:"3"`
	QuestionText        string     `json:"question_text"`
	QuestionCategory    string     `json:"question_category" example:"Leadership"`
	QuestionDifficulty  string     `json:"question_difficulty" example:"Medium"`
	UserAnswer          *string    `json:"user_answer,omitempty"`
	Rating              *int       `json:"rating,omitempty" example:"4"`
	Notes               *string    `json:"notes,omitempty"`
	ResponseTimeSeconds *int       `json:"response_time_seconds,omitempty" example:"95"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// SessionSummaryResponse 統計中使用的精簡練習摘要
type SessionSummaryResponse struct {
	ID               int       `json:"id" example:"11"`
	QuestionText     string    `json:"question_text"`
	QuestionCategory string    `json:"question_category"`
	Rating           *int      `json:"rating,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type SessionCategoryStatsResponse struct {
	Category      string  `json:"category" example:"Leadership"`
	Sessions      int     `json:"sessions" example:"5"`
	Completed     int     `json:"completed" example:"4"`
	AverageRating float64 `json:"average_rating" example:"4.0"`
}

type InterviewSessionStatsResponse struct {
	TotalSessions     int                            `json:"total_sessions" example:"8"`
	CompletedSessions int                            `json:"completed_sessions" example:"6"`
	CompletionRate    float64                        `json:"completion_rate" example:"75"`
	AverageRating     float64                        `json:"average_rating" example:"3.5"`
	Categories        []SessionCategoryStatsResponse `json:"categories"`
	Recent            []SessionSummaryResponse       `json:"recent"`
}

func NewInterviewSessionResponse(s *model.InterviewSession) InterviewSessionResponse {
	return InterviewSessionResponse{
		ID:                  s.ID,
		QuestionID:          s.QuestionID,
		QuestionText:        s.QuestionText,
		QuestionCategory:    s.QuestionCategory,
		QuestionDifficulty:  s.QuestionDifficulty,
		UserAnswer:          s.UserAnswer,
		Rating:              s.Rating,
		Notes:               s.Notes,
		ResponseTimeSeconds: s.ResponseTimeSeconds,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func NewInterviewSessionResponses(sessions []model.InterviewSession) []InterviewSessionResponse {
	out := make([]InterviewSessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, NewInterviewSessionResponse(&sessions[i]))
	}
	return out
}

func NewInterviewSessionStatsResponse(stats *store.InterviewSessionStats) InterviewSessionStatsResponse {
	resp := InterviewSessionStatsResponse{
		TotalSessions:     stats.TotalSessions,
		CompletedSessions: stats.CompletedSessions,
		CompletionRate:    stats.CompletionRate,
		AverageRating:     stats.AverageRating,
		Categories:        []SessionCategoryStatsResponse{},
		Recent:            []SessionSummaryResponse{},
	}
	for _, c := range stats.Categories {
		resp.Categories = append(resp.Categories, SessionCategoryStatsResponse{
			Category:      c.Category,
			Sessions:      c.Sessions,
			Completed:     c.Completed,
			AverageRating: c.AverageRating,
		})
	}
	for _, s := range stats.Recent {
		resp.Recent = append(resp.Recent, SessionSummaryResponse{
			ID:               s.ID,
			QuestionText:     s.QuestionText,
			QuestionCategory: s.QuestionCategory,
			Rating:           s.Rating,
			CreatedAt:        s.CreatedAt,
		})
	}
	return resp
}
