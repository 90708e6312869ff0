// File: internal/service/token_test.go
package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"mockmate/internal/config"
	"mockmate/internal/model"
)

func testJWTConfig() config.JWT {
	return config.JWT{
		Secret:        "test-secret",
		Issuer:        "MockMateApi",
		Audience:      "MockMateClient",
		ExpiryMinutes: 60,
	}
}

func testUser() *model.User {
	return &model.User{ID: 7, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
}

func TestIssueAccessToken(t *testing.T) {
	origNow := timeNow
	origUUID := uuidNewString
	t.Cleanup(func() {
		timeNow = origNow
		uuidNewString = origUUID
	})

	issued := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return issued }
	uuidNewString = func() string { return "fixed-jti" }

	cfg := testJWTConfig()
	token, err := IssueAccessToken(testUser(), cfg)
	require.NoError(t, err)

	claims, err := VerifyAccessToken(token, cfg)
	require.NoError(t, err)
	require.Equal(t, 7, claims.UserID)
	require.Equal(t, "ada@example.com", claims.Email)
	require.Equal(t, "Ada Lovelace", claims.Name)
	require.Equal(t, "7", claims.Subject)
	require.Equal(t, "MockMateApi", claims.Issuer)
	require.Equal(t, jwt.ClaimStrings{"MockMateClient"}, claims.Audience)
	require.Equal(t, "fixed-jti", claims.ID)
	require.Equal(t, issued.Add(time.Hour), claims.ExpiresAt.Time)
}

func TestVerifyAccessToken(t *testing.T) {
	cfg := testJWTConfig()

	t.Run("valid token", func(t *testing.T) {
		token, err := IssueAccessToken(testUser(), cfg)
		require.NoError(t, err)

		claims, err := VerifyAccessToken(token, cfg)
		require.NoError(t, err)
		require.Equal(t, 7, claims.UserID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := IssueAccessToken(testUser(), cfg)
		require.NoError(t, err)

		bad := cfg
		bad.Secret = "other-secret"
		_, err = VerifyAccessToken(token, bad)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		issuerCfg := cfg
		issuerCfg.Issuer = "SomeoneElse"
		token, err := IssueAccessToken(testUser(), issuerCfg)
		require.NoError(t, err)

		_, err = VerifyAccessToken(token, cfg)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("wrong audience", func(t *testing.T) {
		audCfg := cfg
		audCfg.Audience = "OtherClient"
		token, err := IssueAccessToken(testUser(), audCfg)
		require.NoError(t, err)

		_, err = VerifyAccessToken(token, cfg)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("expired token", func(t *testing.T) {
		origNow := timeNow
		t.Cleanup(func() { timeNow = origNow })
		timeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		token, err := IssueAccessToken(testUser(), cfg)
		require.NoError(t, err)
		timeNow = origNow

		_, err = VerifyAccessToken(token, cfg)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("wrong signing method", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = VerifyAccessToken(unsigned, cfg)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := VerifyAccessToken("not.a.jwt", cfg)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})
}
