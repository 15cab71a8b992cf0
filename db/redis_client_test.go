package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-hours/db"
)

func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient(context.Background())},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Act
			require.NoError(t, test.client.Set("test-key", "test-value"))
			retrieved, err := test.client.Get("test-key")

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "test-value", retrieved)
		})
	}
}

func TestMockRedisClient_GetMissingKey(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	_, err := client.Get("missing")

	assert.ErrorIs(t, err, db.ErrKeyNotFound)
}

func TestMockRedisClient_KeysAndDel(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	require.NoError(t, client.Set("restaurant_v1:b", "1"))
	require.NoError(t, client.Set("restaurant_v1:a", "2"))
	require.NoError(t, client.Set("other", "3"))

	keys, err := client.Keys("restaurant_v1:*")
	require.NoError(t, err)
	assert.Equal(t, []string{"restaurant_v1:a", "restaurant_v1:b"}, keys)

	require.NoError(t, client.Del(keys...))
	keys, err = client.Keys("*")
	require.NoError(t, err)
	assert.Equal(t, []string{"other"}, keys)
}

func TestMockRedisClient_KeysGlob(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	for _, k := range []string{"restaurant_v1:burger/bar", "restaurant_v1:café", "restaurant_v1:a?b", "restaurant_v2:x"} {
		require.NoError(t, client.Set(k, "1"))
	}

	tests := []struct {
		pattern string
		want    []string
	}{
		{"restaurant_v1:*", []string{"restaurant_v1:a?b", "restaurant_v1:burger/bar", "restaurant_v1:café"}},
		{"restaurant_v1:burger*", []string{"restaurant_v1:burger/bar"}},
		{"restaurant_v?:x", []string{"restaurant_v2:x"}},
		{"restaurant_v[^1]:*", []string{"restaurant_v2:x"}},
		{`restaurant_v1:a\?b`, []string{"restaurant_v1:a?b"}},
		{"restaurant_v1:café", []string{"restaurant_v1:café"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			keys, err := client.Keys(tt.pattern)

			require.NoError(t, err)
			assert.Equal(t, tt.want, keys)
		})
	}
}

func TestMockRedisClient_KeysInvalidPattern(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	_, err := client.Keys("restaurant_v1:[abc")

	assert.Error(t, err)
}

func TestMockRedisClient_PingAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := db.NewMockRedisClient(ctx)
	assert.NoError(t, client.Ping())

	cancel()

	assert.ErrorIs(t, client.Ping(), context.Canceled)
}
