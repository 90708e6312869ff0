// File: internal/service/token.go
package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mockmate/internal/config"
	"mockmate/internal/model"
)

// CustomClaims 存取令牌的自訂欄位加上標準欄位
type CustomClaims struct {
	UserID int    `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// 測試可覆寫的時間與 jti 來源
var (
	timeNow       = time.Now
	uuidNewString = uuid.NewString
)

// IssueAccessToken 簽發 HS256 存取令牌，效期與簽章設定皆來自 cfg
func IssueAccessToken(user *model.User, cfg config.JWT) (string, error) {
	now := timeNow()
	claims := CustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.FullName(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ID:        uuidNewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.ExpiryDuration())),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("IssueAccessToken: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken 驗證令牌簽章、發行者、受眾與效期，失敗一律回傳 ErrUnauthenticated
func VerifyAccessToken(tokenString string, cfg config.JWT) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return []byte(cfg.Secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("VerifyAccessToken: %w", ErrUnauthenticated)
	}
	return claims, nil
}
