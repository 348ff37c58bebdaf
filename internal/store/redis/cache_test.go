package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

func TestProviderKey(t *testing.T) {
	key := ProviderKey("https://example.com/path?q=1")

	assert.True(t, strings.HasPrefix(key, KeyPrefixProvider))
	assert.Equal(t, key, ProviderKey("https://example.com/path?q=1"))
	assert.NotEqual(t, key, ProviderKey("https://example.com/other"))
}

func TestCacheRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	miss, err := store.GetShortURL(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Empty(t, miss)

	require.NoError(t, store.CacheShortURL(ctx, "https://example.com", "https://tinyurl.com/abc", time.Hour))

	hit, err := store.GetShortURL(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://tinyurl.com/abc", hit)

	require.NoError(t, store.Invalidate(ctx, "https://example.com"))
	gone, err := store.GetShortURL(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Empty(t, gone)
}

func TestCacheTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CacheShortURL(ctx, "https://example.com", "https://tinyurl.com/abc", time.Minute))
	assert.Equal(t, time.Minute, mr.TTL(ProviderKey("https://example.com")))

	mr.FastForward(2 * time.Minute)

	got, err := store.GetShortURL(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCacheDefaultTTL(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, store.CacheShortURL(context.Background(), "https://example.com", "https://tinyurl.com/abc", 0))
	assert.Equal(t, DefaultProviderTTL, mr.TTL(ProviderKey("https://example.com")))
}

func TestCacheUnavailable(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	_, err := store.GetShortURL(context.Background(), "https://example.com")
	assert.Error(t, err)
	assert.Error(t, store.Ping(context.Background()))
}
