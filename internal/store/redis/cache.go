package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultProviderTTL is the default TTL for cached provider results (24 hours)
const DefaultProviderTTL = 24 * time.Hour

// Store caches shortening-provider results in Redis.
type Store struct {
	client *redis.Client
}

// cachedResult is the stored value. The long URL is kept so a hash
// collision is detected instead of returning someone else's short link.
type cachedResult struct {
	LongURL  string    `json:"long_url"`
	ShortURL string    `json:"short_url"`
	CachedAt time.Time `json:"cached_at"`
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// CacheShortURL stores the provider-issued short URL for longURL.
func (s *Store) CacheShortURL(ctx context.Context, longURL, shortURL string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultProviderTTL
	}

	data, err := json.Marshal(cachedResult{
		LongURL:  longURL,
		ShortURL: shortURL,
		CachedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal provider result: %w", err)
	}

	if err := s.client.Set(ctx, ProviderKey(longURL), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache provider result: %w", err)
	}
	return nil
}

// GetShortURL returns the cached short URL for longURL, or "" on a miss.
func (s *Store) GetShortURL(ctx context.Context, longURL string) (string, error) {
	data, err := s.client.Get(ctx, ProviderKey(longURL)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil // Cache miss
		}
		return "", fmt.Errorf("failed to get cached provider result: %w", err)
	}

	var res cachedResult
	if err := json.Unmarshal(data, &res); err != nil {
		return "", fmt.Errorf("failed to unmarshal provider result: %w", err)
	}
	if res.LongURL != longURL {
		return "", nil
	}
	return res.ShortURL, nil
}

// Invalidate removes the cached result for longURL.
func (s *Store) Invalidate(ctx context.Context, longURL string) error {
	if err := s.client.Del(ctx, ProviderKey(longURL)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate provider result: %w", err)
	}
	return nil
}

// Ping reports whether Redis answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
