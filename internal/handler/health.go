// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"mockmate/internal/api"
	"mockmate/internal/database"
)

var timeNow = time.Now

// Health godoc
// @Summary 整體健康檢查
// @Tags health
// @Produce json
// @Success 200 {object} api.HealthResponse
// @Failure 503 {object} api.HealthResponse
// @Router /health [get]
func Health(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := "Healthy"
		code := http.StatusOK
		checks := map[string]string{"database": "ok"}

		if err := db.Ping(c.Request().Context()); err != nil {
			c.Logger().Errorf("health ping: %v", err)
			status = "Unhealthy"
			code = http.StatusServiceUnavailable
			checks["database"] = "unavailable"
		}

		return c.JSON(code, api.HealthResponse{
			Status:    status,
			Timestamp: timeNow().UTC(),
			Checks:    checks,
		})
	}
}

// Live godoc
// @Summary 存活探針
// @Tags health
// @Produce json
// @Success 200 {object} api.HealthResponse
// @Router /health/live [get]
func Live() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.HealthResponse{
			Status:    "Alive",
			Timestamp: timeNow().UTC(),
		})
	}
}

// Ready godoc
// @Summary 就緒探針，確認資料庫可連線
// @Tags health
// @Produce json
// @Success 200 {object} api.HealthResponse
// @Failure 503 {object} api.HealthResponse
// @Router /health/ready [get]
func Ready(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			c.Logger().Errorf("ready ping: %v", err)
			return c.JSON(http.StatusServiceUnavailable, api.HealthResponse{
				Status:    "NotReady",
				Timestamp: timeNow().UTC(),
			})
		}
		return c.JSON(http.StatusOK, api.HealthResponse{
			Status:    "Ready",
			Timestamp: timeNow().UTC(),
		})
	}
}
