// File: internal/handler/questions/questions.go
package questions

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"mockmate/internal/api"
	"mockmate/internal/database"
	"mockmate/internal/store"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// 測試可覆寫的 store 函式
var (
	listQuestions          = store.ListQuestions
	getQuestion            = store.GetQuestion
	searchQuestions        = store.SearchQuestions
	randomQuestions        = store.RandomQuestions
	listQuestionCategories = store.ListQuestionCategories
	listByCategory         = store.ListQuestionsByCategory
	getQuestionStats       = store.GetQuestionStats
)

func respondError(c echo.Context, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "question not found"})
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal error"})
}

// List godoc
// @Summary 依條件分頁列出題目
// @Tags questions
// @Produce json
// @Param category query string false "分類"
// @Param difficulty query string false "難度"
// @Param tags query string false "逗號分隔的標籤"
// @Param page query int false "頁碼，預設 1"
// @Param pageSize query int false "每頁筆數，預設 20"
// @Success 200 {object} api.PaginatedQuestionsResponse
// @Router /api/questions [get]
func List(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter := store.QuestionFilter{
			Category:   c.QueryParam("category"),
			Difficulty: c.QueryParam("difficulty"),
			Page:       defaultPage,
			PageSize:   defaultPageSize,
		}
		if raw := c.QueryParam("tags"); raw != "" {
			filter.Tags = strings.Split(raw, ",")
		}
		if raw := c.QueryParam("page"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid page"})
			}
			filter.Page = n
		}
		if raw := c.QueryParam("pageSize"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 || n > maxPageSize {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid pageSize"})
			}
			filter.PageSize = n
		}

		questions, total, err := listQuestions(c.Request().Context(), db, filter)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewPaginatedQuestionsResponse(questions, filter.Page, filter.PageSize, total))
	}
}

// Get godoc
// @Summary 取得單一題目
// @Tags questions
// @Produce json
// @Param id path int true "題目 id"
// @Success 200 {object} api.QuestionResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/questions/{id} [get]
func Get(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		q, err := getQuestion(c.Request().Context(), db, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewQuestionResponse(q))
	}
}

// Search godoc
// @Summary 以關鍵字搜尋題目
// @Tags questions
// @Produce json
// @Param q query string true "關鍵字"
// @Success 200 {array} api.QuestionResponse
// @Router /api/questions/search [get]
func Search(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		term := c.QueryParam("q")
		if term == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "search term is required"})
		}

		questions, err := searchQuestions(c.Request().Context(), db, term)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewQuestionResponses(questions))
	}
}

// Random godoc
// @Summary 隨機抽題
// @Tags questions
// @Produce json
// @Param category query string false "限定分類"
// @Param count query int false "題數，預設 1"
// @Success 200 {array} api.QuestionResponse
// @Router /api/questions/random [get]
func Random(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		count := 1
		if raw := c.QueryParam("count"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid count"})
			}
			count = n
		}

		questions, err := randomQuestions(c.Request().Context(), db, c.QueryParam("category"), count)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewQuestionResponses(questions))
	}
}

// Categories godoc
// @Summary 列出分類與各分類題數
// @Tags questions
// @Produce json
// @Success 200 {array} api.QuestionCategoryResponse
// @Router /api/questions/categories [get]
func Categories(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		categories, err := listQuestionCategories(c.Request().Context(), db)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewQuestionCategoryResponses(categories))
	}
}

// ByCategory godoc
// @Summary 列出指定分類的題目
// @Tags questions
// @Produce json
// @Param name path string true "分類名稱"
// @Success 200 {array} api.QuestionResponse
// @Router /api/questions/categories/{name} [get]
func ByCategory(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		questions, err := listByCategory(c.Request().Context(), db, c.Param("name"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewQuestionResponses(questions))
	}
}

// Stats godoc
// @Summary 題庫總覽統計
// @Tags questions
// @Produce json
// @Success 200 {object} api.QuestionStatsResponse
// @Router /api/questions/stats [get]
func Stats(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := getQuestionStats(c.Request().Context(), db)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewQuestionStatsResponse(stats))
	}
}
