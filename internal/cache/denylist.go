// File: internal/cache/denylist.go
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistPrefix = "denylist:token:"

// DenyToken 將令牌的 jti 加入撤銷名單，ttl 為令牌剩餘有效時間
func DenyToken(ctx context.Context, c Cache, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// 已過期的令牌不需記錄
		return nil
	}
	return c.Set(ctx, denylistPrefix+jti, "revoked", ttl).Err()
}

// IsTokenDenied 查詢令牌是否已被撤銷
func IsTokenDenied(ctx context.Context, c Cache, jti string) (bool, error) {
	if err := c.Get(ctx, denylistPrefix+jti).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
