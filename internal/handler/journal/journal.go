// File: internal/handler/journal/journal.go
package journal

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"mockmate/internal/api"
	"mockmate/internal/database"
	"mockmate/internal/middleware"
	"mockmate/internal/store"
	"mockmate/internal/worker"
)

const defaultRecentCount = 5

// 測試可覆寫的 store 函式
var (
	listJournalEntries             = store.ListJournalEntries
	listJournalEntriesByCategory   = store.ListJournalEntriesByCategory
	listRecentJournalEntries       = store.ListRecentJournalEntries
	searchJournalEntries           = store.SearchJournalEntries
	listMostReviewedJournalEntries = store.ListMostReviewedJournalEntries
	getJournalEntry                = store.GetJournalEntry
	createJournalEntry             = store.CreateJournalEntry
	updateJournalEntry             = store.UpdateJournalEntry
	deleteJournalEntry             = store.DeleteJournalEntry
	markJournalEntryReviewed       = store.MarkJournalEntryReviewed
	getJournalStats                = store.GetJournalStats
)

func respondError(c echo.Context, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "journal entry not found"})
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
// @Summary 列出全部日誌，最近更新在前
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Success 200 {array} api.JournalEntryResponse
// @Router /api/journal [get]
func List(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		entries, err := listJournalEntries(c.Request().Context(), db, middleware.UserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewJournalEntryResponses(entries))
	}
}

// ByCategory godoc
// @Summary 列出指定分類的日誌
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param category path string true "分類名稱"
// @Success 200 {array} api.JournalEntryResponse
// @Router /api/journal/category/{category} [get]
func ByCategory(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		entries, err := listJournalEntriesByCategory(c.Request().Context(), db, middleware.UserID(c), c.Param("category"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewJournalEntryResponses(entries))
	}
}

// Recent godoc
// @Summary 列出最近建立的日誌
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param count query int false "筆數，預設 5"
// @Success 200 {array} api.JournalEntryResponse
// @Router /api/journal/recent [get]
func Recent(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		count := defaultRecentCount
		if raw := c.QueryParam("count"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid count"})
			}
			count = n
		}

		entries, err := listRecentJournalEntries(c.Request().Context(), db, middleware.UserID(c), count)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewJournalEntryResponses(entries))
	}
}

// Search godoc
// @Summary 以關鍵字搜尋日誌
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param q query string true "關鍵字"
// @Success 200 {array} api.JournalEntryResponse
// @Router /api/journal/search [get]
func Search(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		term := c.QueryParam("q")
		if term == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "search term is required"})
		}

		entries, err := searchJournalEntries(c.Request().Context(), db, middleware.UserID(c), term)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewJournalEntryResponses(entries))
	}
}

// MostReviewed godoc
// @Summary 列出複習次數最多的日誌
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param count query int false "筆數，預設 5"
// @Success 200 {array} api.JournalEntryResponse
// @Router /api/journal/most-reviewed [get]
func MostReviewed(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		count := defaultRecentCount
		if raw := c.QueryParam("count"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid count"})
			}
			count = n
		}

		entries, err := listMostReviewedJournalEntries(c.Request().Context(), db, middleware.UserID(c), count)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewJournalEntryResponses(entries))
	}
}

// Get godoc
// @Summary 取得單筆日誌並在背景累加複習次數
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param id path int true "日誌 id"
// @Success 200 {object} api.JournalEntryResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/journal/{id} [get]
func Get(db database.DB, pool worker.Dispatcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		userID := middleware.UserID(c)
		entry, err := getJournalEntry(c.Request().Context(), db, userID, id)
		if err != nil {
			return respondError(c, err)
		}

		// 回應帶累加前的數值，累加本身交給背景工作
		logger := c.Logger()
		pool.Submit(func() {
			if err := markJournalEntryReviewed(context.Background(), db, userID, id); err != nil {
				logger.Errorf("mark reviewed: %v", err)
			}
		})

		return c.JSON(http.StatusOK, api.NewJournalEntryResponse(entry))
	}
}

// Create godoc
// @Summary 新增日誌
// @Tags journal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.JournalEntryRequest true "日誌內容"
// @Success 201 {object} api.JournalEntryResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /api/journal [post]
func Create(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(api.JournalEntryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		entry := req.ToModel(middleware.UserID(c))
		if err := createJournalEntry(c.Request().Context(), db, entry); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, api.NewJournalEntryResponse(entry))
	}
}

// Update godoc
// @Summary 更新單筆日誌
// @Tags journal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "日誌 id"
// @Param request body api.JournalEntryRequest true "日誌內容"
// @Success 200 {object} api.JournalEntryResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/journal/{id} [put]
func Update(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		req := new(api.JournalEntryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		entry := req.ToModel(middleware.UserID(c))
		entry.ID = id
		if err := updateJournalEntry(c.Request().Context(), db, entry); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewJournalEntryResponse(entry))
	}
}

// Delete godoc
// @Summary 刪除單筆日誌
// @Tags journal
// @Security BearerAuth
// @Param id path int true "日誌 id"
// @Success 204 "No Content"
// @Failure 404 {object} api.ErrorResponse
// @Router /api/journal/{id} [delete]
func Delete(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		if err := deleteJournalEntry(c.Request().Context(), db, middleware.UserID(c), id); err != nil {
			return respondError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// Stats godoc
// @Summary 日誌總覽統計
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.JournalStatsResponse
// @Router /api/journal/stats [get]
func Stats(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := getJournalStats(c.Request().Context(), db, middleware.UserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewJournalStatsResponse(stats))
	}
}
