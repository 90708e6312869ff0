// File: internal/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"mockmate/internal/api"
	"mockmate/internal/cache"
	"mockmate/internal/config"
	"mockmate/internal/service"
)

// ContextUserKey 驗證後的 claims 放入 echo.Context 的鍵
const ContextUserKey = "auth_claims"

const bearerPrefix = "Bearer "

// 測試可覆寫的驗證函式
var (
	verifyAccessToken = service.VerifyAccessToken
	isTokenDenied     = cache.IsTokenDenied
)

// RequireAuth 驗證 Bearer 令牌並比對撤銷名單，通過後把 claims 放進 context
func RequireAuth(cfg *config.Config, rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, bearerPrefix) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "missing bearer token"})
			}

			claims, err := verifyAccessToken(strings.TrimSpace(auth[len(bearerPrefix):]), cfg.JWT)
			if err != nil || claims.UserID <= 0 {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid token"})
			}

			denied, err := isTokenDenied(c.Request().Context(), rdb, claims.ID)
			if err != nil {
				c.Logger().Errorf("denylist check: %v", err)
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal error"})
			}
			if denied {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid token"})
			}

			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// UserID 取出已驗證的使用者 id，未通過驗證時回傳 0
func UserID(c echo.Context) int {
	claims := Claims(c)
	if claims == nil {
		return 0
	}
	return claims.UserID
}

// Claims 取出已驗證的 claims，未通過驗證時回傳 nil
func Claims(c echo.Context) *service.CustomClaims {
	claims, _ := c.Get(ContextUserKey).(*service.CustomClaims)
	return claims
}
