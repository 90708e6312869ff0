// File: internal/middleware/auth_test.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"mockmate/internal/cache"
	"mockmate/internal/config"
	"mockmate/internal/service"
)

func restoreAuthFns(t *testing.T) {
	origVerify := verifyAccessToken
	origDenied := isTokenDenied
	t.Cleanup(func() {
		verifyAccessToken = origVerify
		isTokenDenied = origDenied
	})
}

func newAuthCtx(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func validClaims() *service.CustomClaims {
	return &service.CustomClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1"},
	}
}

func TestRequireAuth(t *testing.T) {
	cfg := &config.Config{JWT: config.JWT{Secret: "s", Issuer: "i", Audience: "a", ExpiryMinutes: 60}}
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("passes valid token and sets claims", func(t *testing.T) {
		restoreAuthFns(t)
		verifyAccessToken = func(token string, gotCfg config.JWT) (*service.CustomClaims, error) {
			require.Equal(t, "tok", token)
			require.Equal(t, cfg.JWT, gotCfg)
			return validClaims(), nil
		}
		isTokenDenied = func(_ context.Context, _ cache.Cache, jti string) (bool, error) {
			require.Equal(t, "jti-1", jti)
			return false, nil
		}

		c, rec := newAuthCtx(t, "Bearer tok")
		handler := RequireAuth(cfg, &cache.FakeCache{})(func(c echo.Context) error {
			require.Equal(t, 7, UserID(c))
			require.Equal(t, "jti-1", Claims(c).ID)
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		restoreAuthFns(t)
		c, rec := newAuthCtx(t, "")
		require.NoError(t, RequireAuth(cfg, &cache.FakeCache{})(next)(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		restoreAuthFns(t)
		c, rec := newAuthCtx(t, "Basic Zm9vOmJhcg==")
		require.NoError(t, RequireAuth(cfg, &cache.FakeCache{})(next)(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		restoreAuthFns(t)
		verifyAccessToken = func(string, config.JWT) (*service.CustomClaims, error) {
			return nil, service.ErrUnauthenticated
		}

		c, rec := newAuthCtx(t, "Bearer bad")
		require.NoError(t, RequireAuth(cfg, &cache.FakeCache{})(next)(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-positive user id", func(t *testing.T) {
		restoreAuthFns(t)
		verifyAccessToken = func(string, config.JWT) (*service.CustomClaims, error) {
			claims := validClaims()
			claims.UserID = 0
			return claims, nil
		}

		c, rec := newAuthCtx(t, "Bearer tok")
		require.NoError(t, RequireAuth(cfg, &cache.FakeCache{})(next)(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("denylisted token", func(t *testing.T) {
		restoreAuthFns(t)
		verifyAccessToken = func(string, config.JWT) (*service.CustomClaims, error) {
			return validClaims(), nil
		}
		isTokenDenied = func(context.Context, cache.Cache, string) (bool, error) {
			return true, nil
		}

		c, rec := newAuthCtx(t, "Bearer tok")
		require.NoError(t, RequireAuth(cfg, &cache.FakeCache{})(next)(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("denylist infrastructure failure", func(t *testing.T) {
		restoreAuthFns(t)
		verifyAccessToken = func(string, config.JWT) (*service.CustomClaims, error) {
			return validClaims(), nil
		}
		isTokenDenied = func(context.Context, cache.Cache, string) (bool, error) {
			return false, errors.New("connection refused")
		}

		c, rec := newAuthCtx(t, "Bearer tok")
		require.NoError(t, RequireAuth(cfg, &cache.FakeCache{})(next)(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestUserIDWithoutClaims(t *testing.T) {
	c, _ := newAuthCtx(t, "")
	require.Zero(t, UserID(c))
	require.Nil(t, Claims(c))
}
