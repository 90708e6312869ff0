// File: internal/handler/auth/auth.go
package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"mockmate/internal/api"
	"mockmate/internal/cache"
	"mockmate/internal/config"
	"mockmate/internal/database"
	"mockmate/internal/middleware"
	"mockmate/internal/service"
)

// 測試可覆寫的服務函式
var (
	registerUser   = service.RegisterUser
	loginUser      = service.LoginUser
	getProfile     = service.GetProfile
	updateProfile  = service.UpdateProfile
	changePassword = service.ChangePassword
	validateUser   = service.ValidateUser
	denyToken      = cache.DenyToken
	timeNow        = time.Now
)

// respondError 把服務層錯誤種類轉成對應的 HTTP 回應
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "user with this email already exists"})
	case errors.Is(err, service.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication failed"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal error"})
	}
}

// Register godoc
// @Summary 註冊新帳號並簽發存取令牌
// @Tags auth
// @Accept json
// @Produce json
// @Param request body api.RegisterRequest true "註冊資料"
// @Success 201 {object} api.AuthResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /api/auth/register [post]
func Register(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(api.RegisterRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, token, err := registerUser(c.Request().Context(), db, cfg.JWT, service.RegisterInput{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Email:      req.Email,
			Password:   req.Password,
			University: req.University,
			StudyField: req.StudyField,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, api.AuthResponse{Token: token, User: api.NewUserResponse(user)})
	}
}

// Login godoc
// @Summary 登入並簽發存取令牌
// @Tags auth
// @Accept json
// @Produce json
// @Param request body api.LoginRequest true "登入資料"
// @Success 200 {object} api.AuthResponse
// @Failure 401 {object} api.ErrorResponse
// @Router /api/auth/login [post]
func Login(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(api.LoginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, token, err := loginUser(c.Request().Context(), db, cfg.JWT, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				// 不區分帳號不存在、停用或密碼錯誤
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid email or password"})
			}
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.AuthResponse{Token: token, User: api.NewUserResponse(user)})
	}
}

// GetProfile godoc
// @Summary 取得個人資料
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.UserResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/auth/profile [get]
func GetProfile(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := getProfile(c.Request().Context(), db, middleware.UserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// UpdateProfile godoc
// @Summary 更新個人資料
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.UpdateProfileRequest true "個人資料"
// @Success 200 {object} api.UserResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/auth/profile [put]
func UpdateProfile(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(api.UpdateProfileRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := updateProfile(c.Request().Context(), db, middleware.UserID(c), service.ProfileInput{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			University: req.University,
			StudyField: req.StudyField,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// ChangePassword godoc
// @Summary 驗證現行密碼後更換新密碼
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body api.ChangePasswordRequest true "新舊密碼"
// @Success 200 {object} api.MessageResponse
// @Failure 401 {object} api.ErrorResponse
// @Router /api/auth/change-password [post]
func ChangePassword(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(api.ChangePasswordRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := changePassword(c.Request().Context(), db, middleware.UserID(c), req.CurrentPassword, req.NewPassword); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "password changed"})
	}
}

// Validate godoc
// @Summary 檢查令牌對應的帳號是否有效
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.ValidateResponse
// @Router /api/auth/validate [get]
func Validate(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		valid, err := validateUser(c.Request().Context(), db, middleware.UserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.ValidateResponse{Valid: valid})
	}
}

// Logout godoc
// @Summary 撤銷目前的存取令牌
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.MessageResponse
// @Router /api/auth/logout [post]
func Logout(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.Claims(c)
		if claims == nil || claims.ExpiresAt == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid token"})
		}

		ttl := claims.ExpiresAt.Time.Sub(timeNow())
		if err := denyToken(c.Request().Context(), rdb, claims.ID, ttl); err != nil {
			c.Logger().Errorf("deny token: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal error"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "logged out"})
	}
}
