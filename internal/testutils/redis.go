// Package testutils provides shared helpers for tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/netherite-checklist/internal/redis"
)

// CreateTestRedisClient starts a miniredis server and returns a client for it.
// The server is closed when the test ends.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

// CreateTestRedisClientWithData is CreateTestRedisClient with keys preloaded
func CreateTestRedisClientWithData(t *testing.T, data map[string]string) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	client, mr := CreateTestRedisClient(t)
	for k, v := range data {
		require.NoError(t, mr.Set(k, v))
	}
	return client, mr
}
