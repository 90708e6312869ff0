// File: internal/handler/sessions/sessions.go
package sessions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"mockmate/internal/api"
	"mockmate/internal/database"
	"mockmate/internal/middleware"
	"mockmate/internal/model"
	"mockmate/internal/store"
)

// 測試可覆寫的 store 函式
var (
	listInterviewSessions     = store.ListInterviewSessions
	getInterviewSession       = store.GetInterviewSession
	getQuestion               = store.GetQuestion
	createInterviewSession    = store.CreateInterviewSession
	setInterviewSessionAnswer = store.SetInterviewSessionAnswer
	rateInterviewSession      = store.RateInterviewSession
	deleteInterviewSession    = store.DeleteInterviewSession
	getSessionStats           = store.GetInterviewSessionStats
)

func respondError(c echo.Context, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "session not found"})
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal error"})
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// List godoc
// @Summary 列出全部練習紀錄，最新在前
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} api.InterviewSessionResponse
// @Router /api/interviewsessions [get]
func List(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessions, err := listInterviewSessions(c.Request().Context(), db, middleware.UserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewInterviewSessionResponses(sessions))
	}
}

// Get godoc
// @Summary 取得單筆練習紀錄
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "練習 id"
// @Success 200 {object} api.InterviewSessionResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/interviewsessions/{id} [get]
func Get(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		s, err := getInterviewSession(c.Request().Context(), db, middleware.UserID(c), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewInterviewSessionResponse(s))
	}
}

// Start godoc
// @Summary 以指定題目開始一次練習
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.StartSessionRequest true "題目"
// @Success 201 {object} api.InterviewSessionResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/interviewsessions/start [post]
func Start(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(api.StartSessionRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		question, err := getQuestion(ctx, db, req.QuestionID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "question not found"})
			}
			return respondError(c, err)
		}

		session := &model.InterviewSession{
			UserID:     middleware.UserID(c),
			QuestionID: question.ID,
		}
		if err := createInterviewSession(ctx, db, session); err != nil {
			return respondError(c, err)
		}

		session.QuestionText = question.Text
		session.QuestionCategory = question.Category
		session.QuestionDifficulty = question.Difficulty
		return c.JSON(http.StatusCreated, api.NewInterviewSessionResponse(session))
	}
}

// Answer godoc
// @Summary 送出作答內容
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "練習 id"
// @Param request body api.AnswerSessionRequest true "作答"
// @Success 200 {object} api.InterviewSessionResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/interviewsessions/{id}/answer [post]
func Answer(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		req := new(api.AnswerSessionRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		userID := middleware.UserID(c)
		if err := setInterviewSessionAnswer(ctx, db, userID, id, req.Answer, req.ResponseTimeSeconds); err != nil {
			return respondError(c, err)
		}

		s, err := getInterviewSession(ctx, db, userID, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewInterviewSessionResponse(s))
	}
}

// Rate godoc
// @Summary 為練習自評並留下心得
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "練習 id"
// @Param request body api.RateSessionRequest true "評分"
// @Success 200 {object} api.InterviewSessionResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/interviewsessions/{id}/rate [post]
func Rate(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		req := new(api.RateSessionRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		userID := middleware.UserID(c)
		if err := rateInterviewSession(ctx, db, userID, id, req.Rating, req.Notes); err != nil {
			return respondError(c, err)
		}

		s, err := getInterviewSession(ctx, db, userID, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewInterviewSessionResponse(s))
	}
}

// Delete godoc
// @Summary 刪除單筆練習紀錄
// @Tags sessions
// @Security BearerAuth
// @Param id path int true "練習 id"
// @Success 204 "No Content"
// @Failure 404 {object} api.ErrorResponse
// @Router /api/interviewsessions/{id} [delete]
func Delete(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		if err := deleteInterviewSession(c.Request().Context(), db, middleware.UserID(c), id); err != nil {
			return respondError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// Stats godoc
// @Summary 練習總覽統計
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.InterviewSessionStatsResponse
// @Router /api/interviewsessions/stats [get]
func Stats(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := getSessionStats(c.Request().Context(), db, middleware.UserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewInterviewSessionStatsResponse(stats))
	}
}
