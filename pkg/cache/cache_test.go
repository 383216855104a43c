package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "portal:"), mr
}

func TestRedisStore_SetNX(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	ok, err := store.SetNX(ctx, "submission:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, mr.Exists("portal:submission:1"))

	ok, err = store.SetNX(ctx, "submission:1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx, "submission:1"))
	ok, err = store.SetNX(ctx, "submission:1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	_, err := store.SetNX(ctx, "revoked:abc", time.Second)
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "revoked:abc")
	require.NoError(t, err)
	assert.True(t, exists)

	mr.FastForward(2 * time.Second)

	exists, err = store.Exists(ctx, "revoked:abc")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewRedisClient_EmptyAddress(t *testing.T) {
	client, err := NewRedisClient(RedisConfig{})
	assert.ErrorIs(t, err, ErrEmptyAddress)
	assert.Nil(t, client)
}

func TestNewRedisClient_Pings(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	ok, _ := store.SetNX(ctx, "k", time.Minute)
	assert.True(t, ok)
	ok, _ = store.SetNX(ctx, "k", time.Minute)
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	exists, _ := store.Exists(ctx, "k")
	assert.False(t, exists)
	ok, _ = store.SetNX(ctx, "k", time.Minute)
	assert.True(t, ok)
}

func TestMemoryStore_ConcurrentSetNX(t *testing.T) {
	store := NewMemoryStore()
	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := store.SetNX(context.Background(), "guard", time.Minute); ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins)
}
