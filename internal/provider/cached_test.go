package provider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/jumplink/internal/logger"
)

type mapCache struct {
	mu      sync.Mutex
	entries     map[string]string
	invalidated []string
	getErr      error
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]string)}
}

func (c *mapCache) GetShortURL(_ context.Context, longURL string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.entries[longURL], nil
}

func (c *mapCache) CacheShortURL(_ context.Context, longURL, shortURL string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[longURL] = shortURL
	return nil
}

func (c *mapCache) Invalidate(_ context.Context, longURL string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, longURL)
	delete(c.entries, longURL)
	return nil
}

type countingShortener struct {
	short string
	err   error
	calls int
}

func (s *countingShortener) Shorten(context.Context, string) (string, error) {
	s.calls++
	return s.short, s.err
}

func TestCachedHitSkipsProvider(t *testing.T) {
	next := &countingShortener{short: "https://tinyurl.com/abc"}
	cache := newMapCache()
	c := NewCached(next, cache, time.Hour, logger.NewNop())

	first, err := c.Shorten(context.Background(), "https://example.com")
	require.NoError(t, err)
	second, err := c.Shorten(context.Background(), "https://example.com")
	require.NoError(t, err)

	assert.Equal(t, "https://tinyurl.com/abc", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls)
}

func TestCachedDoesNotStoreFailures(t *testing.T) {
	next := &countingShortener{err: ErrProviderFailure}
	cache := newMapCache()
	c := NewCached(next, cache, time.Hour, logger.NewNop())

	_, err := c.Shorten(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, ErrProviderFailure)
	assert.Empty(t, cache.entries)
}

func TestCachedIgnoresCacheErrors(t *testing.T) {
	next := &countingShortener{short: "https://tinyurl.com/abc"}
	cache := newMapCache()
	cache.getErr = errors.New("redis down")
	c := NewCached(next, cache, time.Hour, logger.NewNop())

	short, err := c.Shorten(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://tinyurl.com/abc", short)
	assert.Equal(t, 1, next.calls)
}

func TestCachedDropsUnusableEntry(t *testing.T) {
	next := &countingShortener{short: "https://tinyurl.com/fresh"}
	cache := newMapCache()
	cache.entries["https://example.com"] = "Error"
	c := NewCached(next, cache, time.Hour, logger.NewNop())

	short, err := c.Shorten(context.Background(), "https://example.com")
	require.NoError(t, err)

	assert.Equal(t, "https://tinyurl.com/fresh", short)
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, []string{"https://example.com"}, cache.invalidated)
	assert.Equal(t, "https://tinyurl.com/fresh", cache.entries["https://example.com"])
}
