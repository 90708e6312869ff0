// File: internal/service/password_test.go
package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hash, err := HashPassword("s3cret!")
		require.NoError(t, err)
		require.NotEqual(t, "s3cret!", hash)
		require.True(t, VerifyPassword("s3cret!", hash))
	})

	t.Run("new salt per call", func(t *testing.T) {
		first, err := HashPassword("s3cret!")
		require.NoError(t, err)
		second, err := HashPassword("s3cret!")
		require.NoError(t, err)
		require.NotEqual(t, first, second)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := HashPassword("")
		require.ErrorContains(t, err, "HashPassword")
	})

	t.Run("bcrypt failure", func(t *testing.T) {
		orig := bcryptGenerateFromPassword
		t.Cleanup(func() { bcryptGenerateFromPassword = orig })
		bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
			return nil, errors.New("cost out of range")
		}

		_, err := HashPassword("s3cret!")
		require.ErrorContains(t, err, "cost out of range")
	})
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		require.False(t, VerifyPassword("wrong", hash))
	})

	t.Run("empty password", func(t *testing.T) {
		require.False(t, VerifyPassword("", hash))
	})

	t.Run("empty hash", func(t *testing.T) {
		require.False(t, VerifyPassword("s3cret!", ""))
	})

	t.Run("malformed hash never panics", func(t *testing.T) {
		require.NotPanics(t, func() {
			require.False(t, VerifyPassword("s3cret!", "not-a-bcrypt-digest"))
		})
	})
}
