// File: internal/cache/cache_test.go
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCachePanicsWithoutFns(t *testing.T) {
	fc := &FakeCache{}
	ctx := context.Background()

	require.PanicsWithValue(t, "unexpected Get", func() { fc.Get(ctx, "k") })
	require.PanicsWithValue(t, "unexpected Set", func() { fc.Set(ctx, "k", "v", time.Minute) })
	require.PanicsWithValue(t, "unexpected Close", func() { _ = fc.Close() })
}

func TestFakeCacheDelegates(t *testing.T) {
	ctx := context.Background()

	getCmd := redis.NewStringResult("v", nil)
	setCmd := redis.NewStatusResult("OK", nil)

	fc := &FakeCache{
		GetFn: func(gotCtx context.Context, key string) *redis.StringCmd {
			require.Equal(t, ctx, gotCtx)
			require.Equal(t, "k", key)
			return getCmd
		},
		SetFn: func(gotCtx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
			require.Equal(t, "k", key)
			require.Equal(t, "v", value)
			require.Equal(t, time.Minute, expiration)
			return setCmd
		},
		CloseFn: func() error { return nil },
	}

	require.Same(t, getCmd, fc.Get(ctx, "k"))
	require.Same(t, setCmd, fc.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, fc.Close())
}
