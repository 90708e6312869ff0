// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"mockmate/internal/cache"
	"mockmate/internal/config"
	"mockmate/internal/database"
	"mockmate/internal/handler"
	"mockmate/internal/handler/auth"
	"mockmate/internal/handler/journal"
	"mockmate/internal/handler/questions"
	"mockmate/internal/handler/sessions"
	"mockmate/internal/middleware"
	"mockmate/internal/worker"
)

// Setup 註冊全部路由，題庫與健康檢查為公開端點
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg *config.Config, pool worker.Dispatcher) {
	e.GET("/health", handler.Health(db))
	e.GET("/health/live", handler.Live())
	e.GET("/health/ready", handler.Ready(db))

	requireAuth := middleware.RequireAuth(cfg, rdb)

	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", auth.Register(db, cfg))
	authGroup.POST("/login", auth.Login(db, cfg))
	authGroup.GET("/profile", auth.GetProfile(db), requireAuth)
	authGroup.PUT("/profile", auth.UpdateProfile(db), requireAuth)
	authGroup.POST("/change-password", auth.ChangePassword(db), requireAuth)
	authGroup.GET("/validate", auth.Validate(db), requireAuth)
	authGroup.POST("/logout", auth.Logout(rdb), requireAuth)

	journalGroup := e.Group("/api/journal", requireAuth)
	journalGroup.GET("", journal.List(db))
	journalGroup.POST("", journal.Create(db))
	journalGroup.GET("/recent", journal.Recent(db))
	journalGroup.GET("/search", journal.Search(db))
	journalGroup.GET("/most-reviewed", journal.MostReviewed(db))
	journalGroup.GET("/stats", journal.Stats(db))
	journalGroup.GET("/category/:category", journal.ByCategory(db))
	journalGroup.GET("/:id", journal.Get(db, pool))
	journalGroup.PUT("/:id", journal.Update(db))
	journalGroup.DELETE("/:id", journal.Delete(db))

	questionGroup := e.Group("/api/questions")
	questionGroup.GET("", questions.List(db))
	questionGroup.GET("/search", questions.Search(db))
	questionGroup.GET("/random", questions.Random(db))
	questionGroup.GET("/categories", questions.Categories(db))
	questionGroup.GET("/categories/:name", questions.ByCategory(db))
	questionGroup.GET("/stats", questions.Stats(db))
	questionGroup.GET("/:id", questions.Get(db))

	sessionGroup := e.Group("/api/interviewsessions", requireAuth)
	sessionGroup.GET("", sessions.List(db))
	sessionGroup.POST("/start", sessions.Start(db))
	sessionGroup.GET("/stats", sessions.Stats(db))
	sessionGroup.GET("/:id", sessions.Get(db))
	sessionGroup.POST("/:id/answer", sessions.Answer(db))
	sessionGroup.POST("/:id/rate", sessions.Rate(db))
	sessionGroup.DELETE("/:id", sessions.Delete(db))
}
