package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/grimoire-api/internal/redis"
)

func TestNewClient(t *testing.T) {
	t.Run("empty endpoint", func(t *testing.T) {
		_, err := redis.NewClient("", nil)
		assert.Error(t, err)
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := redis.NewClient("redis://:notaport:x/abc", nil)
		assert.Error(t, err)
	})

	t.Run("host and port", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
		require.NoError(t, err)
		defer client.Close()

		require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
		got, err := mr.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("url", func(t *testing.T) {
		mr := miniredis.RunT(t)
		mr.Set("k", "v")

		client, err := redis.NewClient("redis://"+mr.Addr()+"/0", nil)
		require.NoError(t, err)
		defer client.Close()

		got, err := client.Get(context.Background(), "k").Result()
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})
}
